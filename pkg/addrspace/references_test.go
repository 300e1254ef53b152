package addrspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaspace/uaspace/pkg/ua"
)

func insertBareObject(t *testing.T, store *Store, id ua.NodeID) {
	t.Helper()
	n := NewNode(ua.ClassObject)
	n.NodeID = id
	_, status := store.Insert(n)
	require.True(t, status.IsGood())
}

func TestAddReferenceIsBidirectional(t *testing.T) {
	store := newBootstrappedStore(t)
	a := ua.NewNumericNodeID(1, 1)
	b := ua.NewNumericNodeID(1, 2)
	insertBareObject(t, store, a)
	insertBareObject(t, store, b)

	status := AddReference(store, ReferenceItem{
		SourceID:        a,
		ReferenceTypeID: IDOrganizes,
		IsForward:       true,
		TargetID:        ua.Local(b),
	})
	require.True(t, status.IsGood())

	nodeA, _ := store.Get(a)
	nodeB, _ := store.Get(b)
	assert.Equal(t, 1, len(nodeA.References))
	assert.False(t, nodeA.References[0].IsInverse)
	assert.Equal(t, 1, len(nodeB.References))
	assert.True(t, nodeB.References[0].IsInverse)
	assert.True(t, nodeB.References[0].Target.NodeID.Equal(a))
}

func TestAddReferenceRollsBackOnBadTarget(t *testing.T) {
	store := newBootstrappedStore(t)
	a := ua.NewNumericNodeID(1, 1)
	insertBareObject(t, store, a)

	missing := ua.NewNumericNodeID(1, 999)
	status := AddReference(store, ReferenceItem{
		SourceID:        a,
		ReferenceTypeID: IDOrganizes,
		IsForward:       true,
		TargetID:        ua.Local(missing),
	})
	assert.True(t, status.IsBad())

	nodeA, _ := store.Get(a)
	assert.Empty(t, nodeA.References)
}

func TestAddReferenceRejectsCrossServerURI(t *testing.T) {
	store := newBootstrappedStore(t)
	a := ua.NewNumericNodeID(1, 1)
	insertBareObject(t, store, a)

	status := AddReference(store, ReferenceItem{
		SourceID:        a,
		ReferenceTypeID: IDOrganizes,
		IsForward:       true,
		TargetID:        ua.Local(ua.NewNumericNodeID(1, 2)),
		TargetServerURI: "opc.tcp://other-server",
	})
	assert.Equal(t, ua.BadNotImplemented, status)
}

func TestAddReferenceSkipsInverseForRemoteTarget(t *testing.T) {
	store := newBootstrappedStore(t)
	a := ua.NewNumericNodeID(1, 1)
	insertBareObject(t, store, a)

	remote := ua.ExpandedNodeID{NodeID: ua.NewNumericNodeID(1, 2), ServerIndex: 7}
	status := AddReference(store, ReferenceItem{
		SourceID:        a,
		ReferenceTypeID: IDOrganizes,
		IsForward:       true,
		TargetID:        remote,
	})
	require.True(t, status.IsGood())

	nodeA, _ := store.Get(a)
	assert.Equal(t, 1, len(nodeA.References))
}

func TestDeleteReferenceRemovesBothSides(t *testing.T) {
	store := newBootstrappedStore(t)
	a := ua.NewNumericNodeID(1, 1)
	b := ua.NewNumericNodeID(1, 2)
	insertBareObject(t, store, a)
	insertBareObject(t, store, b)

	item := ReferenceItem{SourceID: a, ReferenceTypeID: IDOrganizes, IsForward: true, TargetID: ua.Local(b)}
	require.True(t, AddReference(store, item).IsGood())

	status := DeleteReference(store, item, true, true)
	require.True(t, status.IsGood())

	nodeA, _ := store.Get(a)
	nodeB, _ := store.Get(b)
	assert.Empty(t, nodeA.References)
	assert.Empty(t, nodeB.References)
}

func TestDeleteReferencePermissiveSwallowsPeerMismatch(t *testing.T) {
	store := newBootstrappedStore(t)
	a := ua.NewNumericNodeID(1, 1)
	b := ua.NewNumericNodeID(1, 2)
	insertBareObject(t, store, a)
	insertBareObject(t, store, b)

	item := ReferenceItem{SourceID: a, ReferenceTypeID: IDOrganizes, IsForward: true, TargetID: ua.Local(b)}
	// Only add the source-side half, simulating a pre-existing asymmetry.
	require.True(t, store.Mutate(a, MutateOp{
		Kind:      OpAddEdge,
		Edge:      ua.ReferenceEdge{ReferenceTypeID: IDOrganizes, Target: ua.Local(b)},
		IsForward: true,
	}).IsGood())

	status := DeleteReference(store, item, true, false)
	assert.True(t, status.IsGood())
}

func TestDeleteReferenceStrictSurfacesPeerMismatch(t *testing.T) {
	store := newBootstrappedStore(t)
	a := ua.NewNumericNodeID(1, 1)
	b := ua.NewNumericNodeID(1, 2)
	insertBareObject(t, store, a)
	insertBareObject(t, store, b)

	item := ReferenceItem{SourceID: a, ReferenceTypeID: IDOrganizes, IsForward: true, TargetID: ua.Local(b)}
	require.True(t, store.Mutate(a, MutateOp{
		Kind:      OpAddEdge,
		Edge:      ua.ReferenceEdge{ReferenceTypeID: IDOrganizes, Target: ua.Local(b)},
		IsForward: true,
	}).IsGood())

	status := DeleteReference(store, item, true, true)
	assert.Equal(t, ua.UncertainReferenceNotDeleted, status)
}
