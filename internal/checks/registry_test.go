package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheck struct {
	root string
	name string
}

func (c *stubCheck) Name() string        { return c.name }
func (c *stubCheck) Description() string { return "stub" }
func (c *stubCheck) CanFix() bool        { return false }
func (c *stubCheck) Run() (*CheckResult, error) {
	return &CheckResult{Check: c.name, Passed: true}, nil
}

func stubFactory(name string) Factory {
	return func(root string) Check {
		return &stubCheck{root: root, name: name}
	}
}

func TestRegistryOrder(t *testing.T) {
	registry := NewRegistry()
	registry.Register(stubFactory("one"))
	registry.Register(stubFactory("two"))
	registry.Register(stubFactory("three"))

	factories := registry.Factories()
	require.Len(t, factories, 3)

	instances := registry.Instantiate("/tmp/project")
	require.Len(t, instances, 3)
	assert.Equal(t, "one", instances[0].Name())
	assert.Equal(t, "two", instances[1].Name())
	assert.Equal(t, "three", instances[2].Name())
}

func TestRegistryInstantiatePassesRoot(t *testing.T) {
	registry := NewRegistry()
	registry.Register(stubFactory("rooted"))

	instances := registry.Instantiate("/some/project")
	require.Len(t, instances, 1)

	stub, ok := instances[0].(*stubCheck)
	require.True(t, ok)
	assert.Equal(t, "/some/project", stub.root)
}

func TestRegistryFactoriesIsACopy(t *testing.T) {
	registry := NewRegistry()
	registry.Register(stubFactory("only"))

	factories := registry.Factories()
	factories[0] = stubFactory("mutated")

	instances := registry.Instantiate(".")
	require.Len(t, instances, 1)
	assert.Equal(t, "only", instances[0].Name())
}
