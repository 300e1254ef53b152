package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// DeleteNode runs object destructors, optionally unwinds reference
// edges, then removes the node from the store (spec §4.I). Grounded
// on the C source's deleteNode helper chain behind
// UA_Server_deleteNode.
func (o *Orchestrator) DeleteNode(id ua.NodeID, deleteReferences bool) ua.StatusCode {
	node, ok := o.Store.Get(id)
	if !ok {
		return ua.BadNodeIdUnknown
	}

	if node.Class == ua.ClassObject {
		runDestructors(o.Store, node)
	}

	if deleteReferences {
		unwindReferences(o.Store, node, o.StrictDeleteReferences)
	}

	return o.Store.Remove(id)
}

// runDestructors invokes the destructor of every ObjectType reachable
// upward from node via hasSubtype (spec §4.I, §3 lifecycle rule,
// §8 property 7 "destructor coverage"). Multiple destructors along the
// chain are all called, most-derived type first.
func runDestructors(store *Store, node *ua.Node) {
	var handle any
	if node.Object != nil {
		handle = node.Object.InstanceHandle
	}

	typeID, ok := objectTypeOf(node)
	if !ok {
		return
	}
	for _, ancestor := range TypeHierarchy(store, typeID, true) {
		typeNode, ok := store.Get(ancestor)
		if !ok || typeNode.ObjectType == nil || typeNode.ObjectType.Lifecycle.Destructor == nil {
			continue
		}
		typeNode.ObjectType.Lifecycle.Destructor(node.NodeID, handle)
	}
}

// objectTypeOf returns the type this object instance points at via a
// forward HasTypeDefinition edge.
func objectTypeOf(node *ua.Node) (ua.NodeID, bool) {
	for _, edge := range node.References {
		if !edge.IsInverse && edge.ReferenceTypeID.Equal(IDHasTypeDefinition) && edge.Target.IsLocal() {
			return edge.Target.NodeID, true
		}
	}
	return ua.NodeID{}, false
}

// unwindReferences asks every peer of node's outgoing edges to drop
// the matching peer-side edge, with flipped orientation. Consistency
// checks are not performed here by default (spec §4.I, §9); in strict
// mode a missing peer edge is logged loudly but the deletion still
// proceeds (deleting the node is not itself abortable by a
// delete-reference inconsistency).
func unwindReferences(store *Store, node *ua.Node, strict bool) {
	for _, edge := range node.References {
		if !edge.Target.IsLocal() {
			continue
		}
		peerEdge := ua.ReferenceEdge{ReferenceTypeID: edge.ReferenceTypeID, Target: ua.Local(node.NodeID)}
		status := store.Mutate(edge.Target.NodeID, MutateOp{Kind: OpDeleteEdge, Edge: peerEdge, IsForward: edge.IsInverse})
		if !status.IsGood() && strict {
			logRollbackFailure("DeleteNode unwind", edge.Target.NodeID, status)
		}
	}
}
