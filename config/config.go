package config

import (
	"errors"

	"github.com/sghaida/rootdi/logger"
)

// Config is the root configuration.
type Config struct {
	App       AppConfig       `yaml:"app" mapstructure:"app"`
	Logging   logger.Config   `yaml:"logging" mapstructure:"logging"`
	Container ContainerConfig `yaml:"container" mapstructure:"container"`
}

// AppConfig identifies the running binary.
type AppConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	Env  string `yaml:"env" mapstructure:"env"`
}

// ContainerConfig controls composition-root behaviour at startup.
type ContainerConfig struct {
	// WarmOnStart creates every singleton right after the root is built so
	// broken factories fail the process before it serves anything.
	WarmOnStart bool `yaml:"warm_on_start" mapstructure:"warm_on_start"`

	// DumpRegistrations prints the registered modules after startup.
	DumpRegistrations bool `yaml:"dump_registrations" mapstructure:"dump_registrations"`
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return errors.New("app.name must not be empty")
	}
	return c.Logging.Validate()
}
