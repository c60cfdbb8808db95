package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sghaida/rootdi/di"
	"github.com/sghaida/rootdi/logger"
)

// Clock is the time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// GreetingStore records who was greeted. DurableStore is preferred;
// MemoryStore is the fallback when no durable store is configured.
type GreetingStore interface {
	Save(name string)
	Names() []string
}

// DurableStore is not registered by this demo; it exists to show the
// fallback path.
type DurableStore struct{ GreetingStore }

// MemoryStore keeps greetings in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	names []string
}

func (s *MemoryStore) Save(name string) {
	s.mu.Lock()
	s.names = append(s.names, name)
	s.mu.Unlock()
}

func (s *MemoryStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...)
}

// Greeter builds greetings. It is a prototype: each resolution gets its own
// sequence counter.
type Greeter struct {
	Prefix string
	seq    int
}

func (g *Greeter) Greet(name string, at time.Time) string {
	g.seq++
	return fmt.Sprintf("%s, %s! (#%d at %s)", g.Prefix, strings.TrimSpace(name), g.seq, at.Format(time.Kitchen))
}

// Call-site accessors. They resolve against the root on first use.
var (
	clock   = di.Inject[Clock]()
	greeter = di.Inject[*Greeter]()
	store   = di.InjectWithFallback[*DurableStore, *MemoryStore]()
	env     = di.Inject[string](di.InjectNamed("app.env"))
)

func greet(name string) (string, error) {
	g, err := greeter.Get()
	if err != nil {
		return "", err
	}
	c, err := clock.Get()
	if err != nil {
		return "", err
	}
	s, err := store.Get()
	if err != nil {
		return "", err
	}

	var saver GreetingStore
	if d, ok := s.Preferred(); ok {
		saver = d
	} else {
		saver, _ = s.Fallback()
		logger.Debug("durable store not registered", logger.Fields(logger.FieldName, s.Key()))
	}
	saver.Save(name)

	return g.Greet(name, c.Now()) + " [" + env.MustGet() + "]", nil
}
