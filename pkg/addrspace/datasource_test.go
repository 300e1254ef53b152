package addrspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaspace/uaspace/pkg/ua"
)

func TestAddDataSourceVariableNode(t *testing.T) {
	_, orch := newTestOrchestrator(t)
	parent := NewNode(ua.ClassObject)
	parentID, status := orch.AddNode(parent, ua.NodeID{}, ua.NodeID{}, ua.NodeID{}, nil)
	require.True(t, status.IsGood())

	reads := 0
	source := ua.DataSource{
		Read: func(id ua.NodeID) (ua.Value, ua.StatusCode) {
			reads++
			return ua.Value{DataType: IDBaseDataType, Scalar: int64(7)}, ua.Good
		},
	}

	node := NewNode(ua.ClassVariable)
	node.BrowseName = "Live"
	id, status := orch.AddDataSourceVariableNode(node, parentID, IDHasComponent, ua.NodeID{}, source, nil)
	require.True(t, status.IsGood())

	live, ok := orch.Store.Get(id)
	require.True(t, ok)
	assert.Equal(t, ua.SourceDataSource, live.Variable.ValueSource)
	assert.Equal(t, 1, reads) // typecheck's readValueAttribute exercised the source once
}

func TestAddDataSourceVariableNodeRejectsWrongClass(t *testing.T) {
	_, orch := newTestOrchestrator(t)
	node := NewNode(ua.ClassObject)
	_, status := orch.AddDataSourceVariableNode(node, ua.NodeID{}, ua.NodeID{}, ua.NodeID{}, ua.DataSource{}, nil)
	assert.Equal(t, ua.BadNodeClassInvalid, status)
}

func TestAddMethodNodeCreatesArgumentVariables(t *testing.T) {
	_, orch := newTestOrchestrator(t)
	parent := NewNode(ua.ClassObject)
	parentID, status := orch.AddNode(parent, ua.NodeID{}, ua.NodeID{}, ua.NodeID{}, nil)
	require.True(t, status.IsGood())

	callback := func(objectID ua.NodeID, inputs []ua.Value) ([]ua.Value, ua.StatusCode) {
		return nil, ua.Good
	}

	method := NewNode(ua.ClassMethod)
	method.BrowseName = "Reset"
	methodID, status := orch.AddMethodNode(method, parentID, IDHasComponent, callback, nil)
	require.True(t, status.IsGood())

	_, ok := findAggregateByBrowseName(orch.Store, methodID, "InputArguments")
	assert.True(t, ok)
	_, ok = findAggregateByBrowseName(orch.Store, methodID, "OutputArguments")
	assert.True(t, ok)

	live, _ := orch.Store.Get(methodID)
	assert.NotNil(t, live.Method.AttachedMethod)
}

func TestAddMethodNodeRejectsWrongClass(t *testing.T) {
	_, orch := newTestOrchestrator(t)
	node := NewNode(ua.ClassObject)
	_, status := orch.AddMethodNode(node, ua.NodeID{}, ua.NodeID{}, nil, nil)
	assert.Equal(t, ua.BadNodeClassInvalid, status)
}
