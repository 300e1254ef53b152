package addrspace

import (
	"github.com/uaspace/uaspace/internal/ualog"
	"github.com/uaspace/uaspace/pkg/ua"
)

// addOneWay appends one edge to node's adjacency list (spec §4.B).
// isForward is from the perspective of the node being edited: a
// forward edge on this node stores IsInverse = false.
func addOneWay(node *ua.Node, item ua.ReferenceEdge, isForward bool) {
	item.IsInverse = !isForward
	node.AddReference(item)
}

// deleteOneWay removes the first edge on node matching (target,
// referenceTypeId, orientation) (spec §4.B). Orientation matches iff
// isForward != edge.IsInverse. Returns UncertainReferenceNotDeleted if
// no matching edge exists.
func deleteOneWay(node *ua.Node, item ua.ReferenceEdge, isForward bool) ua.StatusCode {
	item.IsInverse = !isForward
	if node.RemoveReference(item) {
		return ua.Good
	}
	return ua.UncertainReferenceNotDeleted
}

// ReferenceItem is the caller-facing description of a reference to add
// or remove, the Go shape of the service-request AddReferencesItem /
// DeleteReferencesItem (spec §6).
type ReferenceItem struct {
	SourceID        ua.NodeID
	ReferenceTypeID ua.NodeID
	IsForward       bool
	TargetID        ua.ExpandedNodeID

	// TargetServerURI, when non-empty, marks the target as belonging to
	// a different OPC UA server than TargetID.ServerIndex alone would
	// indicate; AddReference rejects this shape as NotImplemented
	// (spec §4.C step 1), matching the C source's lack of cross-server
	// reference support.
	TargetServerURI string
}

// AddReference maintains invariant 3 (bidirectional symmetry) by
// adding the forward edge on Source and the inverse edge on Target,
// rolling the source-side edge back if the target-side add fails
// (spec §4.C). Grounded on the teacher's transaction rollback pattern
// (pkg/storage/transaction.go) generalized from a WAL buffer to a
// single compensating delete. Takes a Mutator rather than a concrete
// *Store so a delegated pkg/extnamespace.ExternalNamespace can stand
// in for either side of the reference (spec §1/§6).
func AddReference(store Mutator, item ReferenceItem) ua.StatusCode {
	if item.TargetServerURI != "" {
		return ua.BadNotImplemented
	}

	forwardEdge := ua.ReferenceEdge{ReferenceTypeID: item.ReferenceTypeID, Target: item.TargetID}
	status := store.Mutate(item.SourceID, MutateOp{Kind: OpAddEdge, Edge: forwardEdge, IsForward: item.IsForward})
	if status.IsBad() {
		return status
	}

	if !item.TargetID.IsLocal() {
		// Remote targets have no inverse edge to maintain locally
		// (spec §3 invariant 3 exemption).
		return ua.Good
	}

	inverseEdge := ua.ReferenceEdge{ReferenceTypeID: item.ReferenceTypeID, Target: ua.Local(item.SourceID)}
	status = store.Mutate(item.TargetID.NodeID, MutateOp{Kind: OpAddEdge, Edge: inverseEdge, IsForward: !item.IsForward})
	if status.IsBad() {
		// Best-effort rollback of the source-side edge; its own
		// failure is swallowed so the caller sees the root cause
		// (spec §4.C step 4, §7).
		rollback := store.Mutate(item.SourceID, MutateOp{Kind: OpDeleteEdge, Edge: forwardEdge, IsForward: item.IsForward})
		if rollback.IsBad() {
			logRollbackFailure("AddReference", item.SourceID, rollback)
		}
		return status
	}
	return ua.Good
}

// DeleteReference removes the source-side edge and, if
// deleteBidirectional is set and the target is local, the peer edge
// too. Inconsistency between the two sides is not fatal by default
// (spec §4.C, §9 "Open question — delete-references without
// consistency check"); set strict to get UncertainReferenceNotDeleted
// surfaced instead of swallowed when a side is missing. Takes a
// Mutator for the same delegation reason as AddReference.
func DeleteReference(store Mutator, item ReferenceItem, deleteBidirectional bool, strict bool) ua.StatusCode {
	forwardEdge := ua.ReferenceEdge{ReferenceTypeID: item.ReferenceTypeID, Target: item.TargetID}
	status := store.Mutate(item.SourceID, MutateOp{Kind: OpDeleteEdge, Edge: forwardEdge, IsForward: item.IsForward})

	if !deleteBidirectional || !item.TargetID.IsLocal() {
		return status
	}

	inverseEdge := ua.ReferenceEdge{ReferenceTypeID: item.ReferenceTypeID, Target: ua.Local(item.SourceID)}
	peerStatus := store.Mutate(item.TargetID.NodeID, MutateOp{Kind: OpDeleteEdge, Edge: inverseEdge, IsForward: !item.IsForward})

	if strict {
		if !status.IsGood() {
			return status
		}
		return peerStatus
	}
	if peerStatus.IsBad() {
		logRollbackFailure("DeleteReference peer", item.TargetID.NodeID, peerStatus)
	}
	return status
}

func logRollbackFailure(op string, id ua.NodeID, status ua.StatusCode) {
	// centralizing this keeps the "swallow but log" policy (spec §7)
	// in one place instead of repeated at every call site.
	logger := rollbackLogger
	logger(op, id, status)
}

// rollbackLogger is a package variable so tests can swap in a spy to
// observe swallowed failures without parsing log output.
var rollbackLogger = defaultRollbackLogger

func defaultRollbackLogger(op string, id ua.NodeID, status ua.StatusCode) {
	ualog.Warn("best-effort compensation failed, surfacing root cause instead", ualog.Fields{
		"op": op, "node": id.String(), "compensationStatus": status.String(),
	})
}
