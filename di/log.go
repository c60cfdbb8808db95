package di

import (
	"sync/atomic"

	"github.com/sghaida/rootdi/logger"
)

var pkgLogger atomic.Pointer[logger.Logger]

// SetLogger routes the package's log output to l. A nil l restores the
// default, the global logger tagged with component "di".
func SetLogger(l *logger.Logger) {
	pkgLogger.Store(l)
}

func log() *logger.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return logger.WithComponent("di")
}
