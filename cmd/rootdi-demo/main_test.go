package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/rootdi/config"
	"github.com/sghaida/rootdi/di"
	"github.com/sghaida/rootdi/logger"
)

// TestRun_WithConfigFile verifies the demo runs end to end from a YAML config file.
func TestRun_WithConfigFile(t *testing.T) {
	prevLogger := logger.GetGlobalLogger()
	t.Cleanup(func() {
		logger.SetGlobalLogger(prevLogger)
		di.ResetRoot()
	})
	di.ResetRoot()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  name: demo-test\n  env: test\nlogging:\n  level: error\n"), 0o600))

	require.NoError(t, run([]string{"-config", path, "-name", "tester"}))

	regs := di.Root().Registrations()
	names := make([]string, 0, len(regs))
	for _, r := range regs {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "app.env")
	assert.Contains(t, names, di.NameOf[*Greeter]())
	assert.Contains(t, names, di.NameOf[Clock]())

	s, err := store.Get()
	require.NoError(t, err)
	mem, ok := s.Fallback()
	require.True(t, ok, "no durable store is registered")
	assert.Equal(t, []string{"tester", "tester"}, mem.Names())
}

// TestRun_BadFlag verifies an unknown flag is reported as an error.
func TestRun_BadFlag(t *testing.T) {
	assert.Error(t, run([]string{"-no-such-flag"}))
}

// TestDumpRegistrations verifies the YAML dump lists every registered module with its type.
func TestDumpRegistrations(t *testing.T) {
	r := di.NewResolver()
	infraModules(config.Config{App: config.AppConfig{Env: "local"}}).BuildInto(r)
	require.NoError(t, r.Warm())

	var buf bytes.Buffer
	require.NoError(t, dumpRegistrations(&buf, r))

	var out struct {
		Modules []struct {
			Name        string `yaml:"name"`
			Scope       string `yaml:"scope"`
			Type        string `yaml:"type"`
			Initialized bool   `yaml:"initialized"`
		} `yaml:"modules"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Modules, 3)
	types := map[string]string{}
	for _, m := range out.Modules {
		assert.Equal(t, "singleton", m.Scope)
		assert.True(t, m.Initialized)
		types[m.Name] = m.Type
	}
	assert.Equal(t, map[string]string{
		"app.env":           "string",
		"*main.MemoryStore": "*main.MemoryStore",
		"main.Clock":        "main.Clock",
	}, types)
}

// TestGreeter_IsPrototype verifies each resolution of the greeter gets a fresh sequence.
func TestGreeter_IsPrototype(t *testing.T) {
	r := di.NewResolver()
	featureModules().BuildInto(r)

	a := di.MustResolve[*Greeter](r)
	b := di.MustResolve[*Greeter](r)
	assert.NotSame(t, a, b)
}
