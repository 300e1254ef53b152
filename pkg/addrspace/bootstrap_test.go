package addrspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaspace/uaspace/pkg/ua"
)

// newBootstrappedStore returns a Store seeded with namespace 0,
// the shared fixture every other addrspace test builds on.
func newBootstrappedStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	require.True(t, Bootstrap(store).IsGood())
	return store
}

func TestBootstrapInsertsWellKnownTypes(t *testing.T) {
	store := newBootstrappedStore(t)

	for _, id := range []ua.NodeID{
		IDReferences, IDHierarchicalReferences, IDHasChild, IDOrganizes,
		IDHasEventSource, IDHasTypeDefinition, IDAggregates, IDHasSubtype,
		IDHasProperty, IDHasComponent, IDBaseDataType, IDBaseObjectType,
		IDBaseVariableType, IDBaseDataVariableType, IDPropertyType,
	} {
		_, ok := store.Get(id)
		assert.True(t, ok, "expected %s to exist after Bootstrap", id.String())
	}
}

func TestBootstrapReferenceTypeHierarchy(t *testing.T) {
	store := newBootstrappedStore(t)

	assert.True(t, IsSubtypeOf(store, IDHasComponent, IDHasChild))
	assert.True(t, IsSubtypeOf(store, IDHasComponent, IDAggregates))
	assert.True(t, IsSubtypeOf(store, IDHasComponent, IDReferences))
	assert.True(t, IsSubtypeOf(store, IDHasProperty, IDAggregates))
	assert.True(t, IsSubtypeOf(store, IDHasSubtype, IDHasChild))
	assert.True(t, IsSubtypeOf(store, IDOrganizes, IDHierarchicalReferences))

	assert.False(t, IsSubtypeOf(store, IDOrganizes, IDAggregates))
}

func TestBootstrapBaseTypesAreWellFormed(t *testing.T) {
	store := newBootstrappedStore(t)

	baseObjectType, _ := store.Get(IDBaseObjectType)
	assert.False(t, baseObjectType.IsAbstract())

	baseVariableType, _ := store.Get(IDBaseVariableType)
	assert.True(t, baseVariableType.IsAbstract())

	assert.True(t, IsSubtypeOf(store, IDBaseDataVariableType, IDBaseVariableType))
	assert.True(t, IsSubtypeOf(store, IDPropertyType, IDBaseDataVariableType))
}
