package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// InstantiationCallback is invoked once instantiation completes
// successfully, receiving the new node, its resolved type definition,
// and the instance handle produced by the type's constructor (nil for
// non-Object classes or types without one) (spec §4.G step 6).
type InstantiationCallback func(newNodeID, typeID ua.NodeID, handle any)

// Orchestrator bundles a Store with the configuration the AddNode and
// DeleteNode orchestrators need: the number of configured namespaces
// (for Begin's bounds check) and the strict/permissive
// delete-references switch (spec §9 "Open question").
type Orchestrator struct {
	Store                  *Store
	NamespaceCount         int
	StrictDeleteReferences bool
}

// NewOrchestrator returns an Orchestrator over store with namespaceCount
// configured namespaces and permissive delete-reference semantics,
// matching the C source's default behavior (spec §9).
func NewOrchestrator(store *Store, namespaceCount int) *Orchestrator {
	return &Orchestrator{Store: store, NamespaceCount: namespaceCount}
}

// Begin validates node's namespace index and inserts it into the
// store, returning the assigned id (spec §4.H "begin").
func (o *Orchestrator) Begin(node *ua.Node) (ua.NodeID, ua.StatusCode) {
	if int(node.NodeID.NamespaceIndex) >= o.NamespaceCount {
		return ua.NodeID{}, ua.BadNodeIdInvalid
	}
	return o.Store.Insert(node)
}

// Finish runs the validate-default-typecheck-instantiate-attach
// sequence of spec §4.H "finish", rolling the node back via
// DeleteNode on any failure, a failed parent-reference check included.
func (o *Orchestrator) Finish(
	id ua.NodeID,
	class ua.NodeClass,
	parentID, refTypeID, typeDefID ua.NodeID,
	cb InstantiationCallback,
) ua.StatusCode {
	isOrphanObject := class == ua.ClassObject && parentID.IsNull() && refTypeID.IsNull()

	// Step 1: parent-reference validation, unless this is an orphan
	// object (spec §4.H step 1, §4.E final paragraph).
	if !isOrphanObject {
		status := CheckParentReference(o.Store, class, parentID, refTypeID)
		if status.IsBad() {
			o.rollback(id)
			return status
		}
	}

	// Step 2: default the type definition.
	if typeDefID.IsNull() {
		switch class {
		case ua.ClassVariable:
			typeDefID = IDBaseDataVariableType
		case ua.ClassObject:
			typeDefID = IDBaseObjectType
		}
	}

	// Step 3: type-check Variable/VariableType nodes.
	if class == ua.ClassVariable || class == ua.ClassVariableType {
		typeParent := typeDefID
		if class == ua.ClassVariableType {
			typeParent = parentID
		}
		status := o.Store.Mutate(id, MutateOp{Kind: OpTypeCheck, TypeDef: typeParent})
		if status.IsBad() {
			o.rollback(id)
			return status
		}
	}

	// Step 4: instantiate.
	if status := Instantiate(o, id, class, typeDefID, cb); status.IsBad() {
		o.rollback(id)
		return status
	}

	// Step 5: attach the new node to its parent with an inverse edge
	// (spec §4.H step 5 — "inverse" here because the edge direction
	// encodes "parent points to me").
	if !parentID.IsNull() {
		status := AddReference(o.Store, ReferenceItem{
			SourceID:        id,
			ReferenceTypeID: refTypeID,
			IsForward:       false,
			TargetID:        ua.Local(parentID),
		})
		if status.IsBad() {
			o.rollback(id)
			return status
		}
	}

	return ua.Good
}

// rollback deletes a partially-constructed node, swallowing its own
// failure per spec §7 (the caller already has the root-cause status).
func (o *Orchestrator) rollback(id ua.NodeID) {
	o.DeleteNode(id, true)
}

// AddNode is the convenience entry point combining Begin and Finish,
// cleaning up on failure (spec §4.H).
func (o *Orchestrator) AddNode(
	node *ua.Node,
	parentID, refTypeID, typeDefID ua.NodeID,
	cb InstantiationCallback,
) (ua.NodeID, ua.StatusCode) {
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
