package addrspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaspace/uaspace/pkg/ua"
)

func TestDeleteNodeRemovesNodeAndEdges(t *testing.T) {
	_, orch := newTestOrchestrator(t)
	parent := NewNode(ua.ClassObject)
	parentID, status := orch.AddNode(parent, ua.NodeID{}, ua.NodeID{}, ua.NodeID{}, nil)
	require.True(t, status.IsGood())

	child := NewNode(ua.ClassObject)
	childID, status := orch.AddNode(child, parentID, IDHasComponent, ua.NodeID{}, nil)
	require.True(t, status.IsGood())

	require.True(t, orch.DeleteNode(childID, true).IsGood())

	_, ok := orch.Store.Get(childID)
	assert.False(t, ok)

	parentNode, _ := orch.Store.Get(parentID)
	for _, e := range parentNode.References {
		assert.False(t, e.ReferenceTypeID.Equal(IDHasComponent) && e.Target.NodeID.Equal(childID))
	}
}

func TestDeleteNodeUnknownID(t *testing.T) {
	_, orch := newTestOrchestrator(t)
	status := orch.DeleteNode(ua.NewNumericNodeID(1, 999), true)
	assert.Equal(t, ua.BadNodeIdUnknown, status)
}

func TestDeleteNodeRunsDestructorChain(t *testing.T) {
	store, orch := newTestOrchestrator(t)

	var destructed []string
	baseType := NewNode(ua.ClassObjectType)
	baseType.NodeID = ua.NewNumericNodeID(1, 1)
	baseType.BrowseName = "BaseMachineType"
	baseType.ObjectType.Lifecycle.Destructor = func(id ua.NodeID, handle any) {
		destructed = append(destructed, "base")
	}
	_, status := store.Insert(baseType)
	require.True(t, status.IsGood())
	require.True(t, AddReference(store, ReferenceItem{
		SourceID: baseType.NodeID, ReferenceTypeID: IDHasSubtype, IsForward: false, TargetID: ua.Local(IDBaseObjectType),
	}).IsGood())

	derivedType := NewNode(ua.ClassObjectType)
	derivedType.NodeID = ua.NewNumericNodeID(1, 2)
	derivedType.BrowseName = "PumpType"
	derivedType.ObjectType.Lifecycle.Destructor = func(id ua.NodeID, handle any) {
		destructed = append(destructed, "derived")
	}
	_, status = store.Insert(derivedType)
	require.True(t, status.IsGood())
	require.True(t, AddReference(store, ReferenceItem{
		SourceID: derivedType.NodeID, ReferenceTypeID: IDHasSubtype, IsForward: false, TargetID: ua.Local(baseType.NodeID),
	}).IsGood())

	instance := NewNode(ua.ClassObject)
	instanceID, status := orch.AddNode(instance, ua.NodeID{}, ua.NodeID{}, derivedType.NodeID, nil)
	require.True(t, status.IsGood())

	require.True(t, orch.DeleteNode(instanceID, true).IsGood())
	assert.Equal(t, []string{"derived", "base"}, destructed)
}
