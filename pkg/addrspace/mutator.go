package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// MutateKind discriminates a MutateOp. Closed over the seven commands
// the core ever needs to perform against a single node.
type MutateKind int

const (
	OpAddEdge MutateKind = iota
	OpDeleteEdge
	OpSetValue
	OpSetDataSource
	OpSetLifecycle
	OpSetMethodCallback
	OpTypeCheck
)

// MutateOp is a closed sum type of the commands a Mutator can apply to
// one node, replacing the C source's opaque UA_EditNodeCallback
// function pointer with an enumerated command object (spec §9,
// "model this as a trait/interface NodeMutator with a single
// mutate(id, op) method; the op is an enumerated command rather than
// an opaque function pointer"). Exactly one of the payload fields is
// meaningful, selected by Kind.
type MutateOp struct {
	Kind MutateKind

	Edge ua.ReferenceEdge // OpAddEdge / OpDeleteEdge
	IsForward bool        // OpAddEdge / OpDeleteEdge: orientation as seen by the node being edited

	Value ua.Value // OpSetValue

	DataSource ua.DataSource // OpSetDataSource

	Lifecycle ua.Lifecycle // OpSetLifecycle

	MethodCallback func(objectID ua.NodeID, inputs []ua.Value) ([]ua.Value, ua.StatusCode) // OpSetMethodCallback
	MethodHandle   any

	TypeDef ua.NodeID // OpTypeCheck: the variable-type (or, for a VariableType node, the parent) to check against
}

// Mutator is the single seam through which every node mutation in
// this package flows. Store is the default, in-process implementation;
// pkg/extnamespace.ExternalNamespace is an alternative that redirects
// mutation to a Badger-backed external namespace, demonstrating the
// delegation hook spec §1/§6 call out without building a full
// external-namespace protocol. AddReference/DeleteReference (the
// reference service) take a Mutator rather than a concrete *Store so
// that delegation hook is actually reachable.
type Mutator interface {
	Mutate(id ua.NodeID, op MutateOp) ua.StatusCode
}

// NodeReader is the minimal read access the type-hierarchy and
// type-check logic needs: look a node up by id. Store's own (locking)
// Get satisfies it for every ordinary caller. Store.Mutate's
// OpTypeCheck dispatch substitutes lockFreeReader instead, since it
// runs inside Store.Edit's writer critical section and sync.RWMutex is
// not reentrant — taking the read lock a second time from the same
// goroutine that holds the write lock deadlocks rather than blocking
// briefly.
type NodeReader interface {
	Get(id ua.NodeID) (*ua.Node, bool)
}

// Mutate implements Mutator for Store by dispatching each MutateKind
// to the matching Edit callback. It is the concrete realization of
// the addOneWay/deleteOneWay/typeCheck/etc. helpers as the design
// note's enumerated-command shape. references.go and the AddNode
// orchestrator reach nodes only through Mutate; instantiate.go calls
// Store.Edit directly to run a type's constructor, which has no
// MutateKind of its own.
func (s *Store) Mutate(id ua.NodeID, op MutateOp) ua.StatusCode {
	switch op.Kind {
	case OpAddEdge:
		return s.Edit(id, func(n *ua.Node, _ any) ua.StatusCode {
			addOneWay(n, op.Edge, op.IsForward)
			return ua.Good
		}, nil)
	case OpDeleteEdge:
		return s.Edit(id, func(n *ua.Node, _ any) ua.StatusCode {
			return deleteOneWay(n, op.Edge, op.IsForward)
		}, nil)
	case OpSetValue:
		return s.Edit(id, func(n *ua.Node, _ any) ua.StatusCode {
			vb := n.VariableFields()
			if vb == nil {
				return ua.BadNodeClassInvalid
			}
			vb.Value = op.Value
			vb.ValueSource = ua.SourceData
			if n.Class == ua.ClassVariable && vb.OnValueChange != nil {
				vb.OnValueChange(id, op.Value)
			}
			return ua.Good
		}, nil)
	case OpSetDataSource:
		return s.Edit(id, func(n *ua.Node, _ any) ua.StatusCode {
			vb := n.VariableFields()
			if vb == nil {
				return ua.BadNodeClassInvalid
			}
			vb.DataSource = op.DataSource
			vb.ValueSource = ua.SourceDataSource
			return ua.Good
		}, nil)
	case OpSetLifecycle:
		return s.Edit(id, func(n *ua.Node, _ any) ua.StatusCode {
			if n.Class != ua.ClassObjectType || n.ObjectType == nil {
				return ua.BadNodeClassInvalid
			}
			n.ObjectType.Lifecycle = op.Lifecycle
			return ua.Good
		}, nil)
	case OpSetMethodCallback:
		return s.Edit(id, func(n *ua.Node, _ any) ua.StatusCode {
			if n.Class != ua.ClassMethod || n.Method == nil {
				return ua.BadNodeClassInvalid
			}
			n.Method.AttachedMethod = op.MethodCallback
			n.Method.MethodHandle = op.MethodHandle
			return ua.Good
		}, nil)
	case OpTypeCheck:
		return s.Edit(id, func(n *ua.Node, _ any) ua.StatusCode {
			return typeCheckVariableNode(lockFreeReader{s}, n, op.TypeDef)
		}, nil)
	default:
		return ua.BadNodeAttributesInvalid
	}
}
