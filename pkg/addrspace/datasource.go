package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// AddDataSourceVariableNode adds a Variable node backed by a
// DataSource rather than inline data, reading the source once before
// type-checking so the value can be validated (spec §6). Grounded on
// the C source's UA_Server_addDataSourceVariableNode; this
// implementation acquires the writer lock exactly once per mutation,
// fixing the double-RCU-acquisition bug the design notes call out
// (spec §9 "Open question — duplicate RCU lock acquisition").
func (o *Orchestrator) AddDataSourceVariableNode(
	node *ua.Node,
	parentID, refTypeID, typeDefID ua.NodeID,
	source ua.DataSource,
	cb InstantiationCallback,
) (ua.NodeID, ua.StatusCode) {
	if node.Class != ua.ClassVariable || node.Variable == nil {
		return ua.NodeID{}, ua.BadNodeClassInvalid
	}
	node.Variable.DataSource = source
	node.Variable.ValueSource = ua.SourceDataSource

	id, status := o.Begin(node)
	if status.IsBad() {
		return ua.NodeID{}, status
	}
	status = o.Finish(id, node.Class, parentID, refTypeID, typeDefID, cb)
	if status.IsBad() {
		return ua.NodeID{}, status
	}
	return id, ua.Good
}

// AddMethodNode adds a Method node and synthesizes its
// InputArguments/OutputArguments Variable children of type
// PropertyType, connected by HasProperty (spec §6). Both child adds
// propagate their status, fixing the C source's addMethodNode, which
// the design notes flag for discarding these results (spec §9 "Open
// question — unchecked child adds").
func (o *Orchestrator) AddMethodNode(
	node *ua.Node,
	parentID, refTypeID ua.NodeID,
	callback func(objectID ua.NodeID, inputs []ua.Value) ([]ua.Value, ua.StatusCode),
	handle any,
) (ua.NodeID, ua.StatusCode) {
	if node.Class != ua.ClassMethod || node.Method == nil {
		return ua.NodeID{}, ua.BadNodeClassInvalid
	}
	node.Method.AttachedMethod = callback
	node.Method.MethodHandle = handle

	id, status := o.Begin(node)
	if status.IsBad() {
		return ua.NodeID{}, status
	}
	status = o.Finish(id, node.Class, parentID, refTypeID, ua.NodeID{}, nil)
	if status.IsBad() {
		return ua.NodeID{}, status
	}

	if status := o.addArgumentsVariable(id, "InputArguments", 10000); status.IsBad() {
		o.rollback(id)
		return ua.NodeID{}, status
	}
	if status := o.addArgumentsVariable(id, "OutputArguments", 0); status.IsBad() {
		o.rollback(id)
		return ua.NodeID{}, status
	}

	return id, ua.Good
}

// addArgumentsVariable adds one of the two Argument-array children a
// Method node carries. minimumSamplingInterval is set to 10000ms on
// InputArguments only, matching the C source's comment: "some clients
// subscribe to it".
func (o *Orchestrator) addArgumentsVariable(methodID ua.NodeID, browseName string, minimumSamplingInterval float64) ua.StatusCode {
	argNode := NewNode(ua.ClassVariable)
	argNode.BrowseName = browseName
	argNode.DisplayName = browseName
	argNode.Variable.DataType = IDBaseDataType
	argNode.Variable.ValueRank = 1
	argNode.Variable.MinimumSamplingInterval = minimumSamplingInterval
	argNode.Variable.Value = ua.Value{DataType: IDBaseDataType, ValueRank: 1, IsArray: true, Array: []any{}}

	_, status := o.AddNode(argNode, methodID, IDHasProperty, IDPropertyType, nil)
	return status
}
