package di_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/rootdi/di"
)

// TestNewModule_Defaults verifies the default name and scope of a module.
func TestNewModule_Defaults(t *testing.T) {
	t.Parallel()

	called := false
	m := di.NewModule(func() *Counter {
		called = true
		return &Counter{}
	})

	assert.False(t, called, "factory must not run at construction")
	assert.Equal(t, di.NameOf[*Counter](), m.Name())
	assert.Equal(t, di.Prototype, m.Scope())
	assert.Equal(t, di.NameOf[*Counter](), di.TypeName(m.Type()))
}

// TestNewModule_Options verifies Named and scope options are applied.
func TestNewModule_Options(t *testing.T) {
	t.Parallel()

	m := di.NewModule(func() int { return 1 }, di.Named("answer"), di.AsSingleton())
	assert.Equal(t, "answer", m.Name())
	assert.Equal(t, di.Singleton, m.Scope())

	m = di.NewModule(func() int { return 1 }, di.AsSingleton(), di.AsPrototype(), nil)
	assert.Equal(t, di.Prototype, m.Scope())

	m = di.NewModule(func() int { return 1 }, di.WithScope(di.Singleton))
	assert.Equal(t, di.Singleton, m.Scope())
}

// TestProvide_IsSingletonAroundInstance verifies Provide always yields the given instance as a singleton.
func TestProvide_IsSingletonAroundInstance(t *testing.T) {
	t.Parallel()

	repo := &Repo{DSN: "postgres://"}
	m := di.Provide(repo, di.AsPrototype())
	assert.Equal(t, di.Singleton, m.Scope())
	assert.Equal(t, di.NameOf[*Repo](), m.Name())

	r := built(m)
	got, err := di.Resolve[*Repo](r)
	require.NoError(t, err)
	assert.Same(t, repo, got)
}

// TestModules_KeepsOrderAndCopies verifies the builder keeps declaration order and hands out copies.
func TestModules_KeepsOrderAndCopies(t *testing.T) {
	t.Parallel()

	first := di.NewModule(func() int { return 1 }, di.Named("n"))
	second := di.NewModule(func() int { return 2 }, di.Named("n"))

	mods := di.NewModules(first).Add(second)
	list := mods.List()
	require.Len(t, list, 2)
	assert.Equal(t, "n", list[0].Name())

	list[0] = di.Module{}
	assert.Equal(t, "n", mods.List()[0].Name(), "List must return a copy")

	r := di.NewResolver()
	mods.Resolver().BuildInto(r)
	got, err := di.ResolveNamed[int](r, "n")
	require.NoError(t, err)
	assert.Equal(t, 2, got, "later module wins")
}

// TestScope_String verifies scope names, including unknown values.
func TestScope_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "prototype", di.Prototype.String())
	assert.Equal(t, "singleton", di.Singleton.String())
	assert.Equal(t, "scope(7)", di.Scope(7).String())
}
