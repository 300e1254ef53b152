package addrspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaspace/uaspace/pkg/ua"
)

func TestIsSubtypeOfReflexive(t *testing.T) {
	store := newBootstrappedStore(t)
	assert.True(t, IsSubtypeOf(store, IDHasComponent, IDHasComponent))
}

func TestIsSubtypeOfUnrelatedTypes(t *testing.T) {
	store := newBootstrappedStore(t)
	assert.False(t, IsSubtypeOf(store, IDHasProperty, IDHasEventSource))
}

func TestTypeHierarchyMostDerivedFirst(t *testing.T) {
	store := newBootstrappedStore(t)
	chain := TypeHierarchy(store, IDPropertyType, true)

	require.True(t, len(chain) >= 3)
	assert.True(t, chain[0].Equal(IDPropertyType))
	assert.True(t, chain[1].Equal(IDBaseDataVariableType))
	assert.True(t, chain[len(chain)-1].Equal(IDBaseVariableType))
}

func TestTypeHierarchyExcludeSelf(t *testing.T) {
	store := newBootstrappedStore(t)
	chain := TypeHierarchy(store, IDPropertyType, false)

	for _, id := range chain {
		assert.False(t, id.Equal(IDPropertyType))
	}
	assert.True(t, chain[0].Equal(IDBaseDataVariableType))
}

func TestIsNodeInTreeNoMatchingRoot(t *testing.T) {
	store := newBootstrappedStore(t)
	found := IsNodeInTree(store, IDHasComponent, []ua.NodeID{IDHasEventSource}, []ua.NodeID{IDHasSubtype})
	assert.False(t, found)
}
