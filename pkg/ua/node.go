package ua

// ReferenceEdge is one typed, directed arc out of a node's adjacency
// list (spec §3). IsInverse means the logical reference points *into*
// this node — the forward half of the same logical reference lives on
// the peer (spec §3 invariant 3).
type ReferenceEdge struct {
	ReferenceTypeID NodeID
	Target          ExpandedNodeID
	IsInverse       bool
}

// Header carries the fields common to all eight node classes (spec
// §3). It is embedded in Node rather than duplicated per class.
type Header struct {
	NodeID        NodeID
	BrowseName    string
	DisplayName   string
	Description   string
	WriteMask     uint32
	UserWriteMask uint32
	References    []ReferenceEdge
}

// ObjectBody holds the fields specific to an Object node.
type ObjectBody struct {
	EventNotifier  byte
	InstanceHandle any // opaque, produced by the type's constructor
}

// ObjectTypeBody holds the fields specific to an ObjectType node.
type ObjectTypeBody struct {
	IsAbstract bool
	Lifecycle  Lifecycle `json:"-"` // constructor/destructor closures do not survive a JSON round-trip (see pkg/extnamespace)
}

// Lifecycle is the constructor/destructor pair an ObjectType may carry
// (spec §3, §4.G, §4.I). Both run synchronously inside the writer's
// critical section (spec §5) and must not re-enter the public API.
type Lifecycle struct {
	Constructor func(instanceID NodeID) (instanceHandle any, status StatusCode)
	Destructor  func(instanceID NodeID, instanceHandle any)
}

// VariableBody holds the fields shared between Variable and
// VariableType nodes' value shape (spec §3). Variable additionally
// carries AccessLevel/UserAccessLevel/Historizing/MinimumSamplingInterval,
// which VariableType does not.
type VariableBody struct {
	DataType        NodeID
	ValueRank       ValueRank
	ArrayDimensions []uint32

	AccessLevel             byte
	UserAccessLevel         byte
	Historizing             bool
	MinimumSamplingInterval float64

	ValueSource ValueSource
	Value       Value
	DataSource  DataSource `json:"-"` // Read/Write closures do not survive a JSON round-trip (see pkg/extnamespace)

	// OnValueChange, if set, is invoked after a successful write to an
	// inline-data Variable's value, synchronously (spec §3, §5).
	OnValueChange func(id NodeID, v Value) `json:"-"`
}

// VariableTypeBody holds the fields specific to a VariableType node.
type VariableTypeBody struct {
	VariableBody
	IsAbstract bool
}

// ReferenceTypeBody holds the fields specific to a ReferenceType node.
type ReferenceTypeBody struct {
	IsAbstract  bool
	Symmetric   bool
	InverseName string
}

// DataTypeBody holds the fields specific to a DataType node.
type DataTypeBody struct {
	IsAbstract bool
}

// ViewBody holds the fields specific to a View node.
type ViewBody struct {
	ContainsNoLoops bool
	EventNotifier   byte
}

// MethodBody holds the fields specific to a Method node.
type MethodBody struct {
	Executable     bool
	AttachedMethod func(objectID NodeID, inputs []Value) (outputs []Value, status StatusCode) `json:"-"`
	MethodHandle   any
}

// Node is a tagged union over the eight OPC UA node classes (spec §3).
// Class selects which of the Body pointers is populated; exactly one
// is non-nil for any well-formed node, and addrspace.NewNode enforces
// that invariant at construction. Representing the union as one
// pointer field per class (rather than a single `any` payload) keeps
// the common case of reading node.Object.EventNotifier free of a type
// assertion, at the cost of seven always-nil pointers per node —
// cheap relative to the Properties maps a property-graph node like
// the teacher's carries.
type Node struct {
	Header
	Class NodeClass

	Object        *ObjectBody
	Variable      *VariableBody
	Method        *MethodBody
	ObjectType    *ObjectTypeBody
	VariableType  *VariableTypeBody
	ReferenceType *ReferenceTypeBody
	DataType      *DataTypeBody
	View          *ViewBody
}

// Clone returns a deep copy of n, used by NodeStore.GetCopy to seed a
// new instance's child from a type member template (spec §4.A, §4.G).
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.References = append([]ReferenceEdge(nil), n.References...)

	switch n.Class {
	case ClassObject:
		if n.Object != nil {
			b := *n.Object
			c.Object = &b
		}
	case ClassVariable:
		if n.Variable != nil {
			b := *n.Variable
			b.ArrayDimensions = append([]uint32(nil), n.Variable.ArrayDimensions...)
			c.Variable = &b
		}
	case ClassMethod:
		if n.Method != nil {
			b := *n.Method
			c.Method = &b
		}
	case ClassObjectType:
		if n.ObjectType != nil {
			b := *n.ObjectType
			c.ObjectType = &b
		}
	case ClassVariableType:
		if n.VariableType != nil {
			b := *n.VariableType
			b.ArrayDimensions = append([]uint32(nil), n.VariableType.ArrayDimensions...)
			c.VariableType = &b
		}
	case ClassReferenceType:
		if n.ReferenceType != nil {
			b := *n.ReferenceType
			c.ReferenceType = &b
		}
	case ClassDataType:
		if n.DataType != nil {
			b := *n.DataType
			c.DataType = &b
		}
	case ClassView:
		if n.View != nil {
			b := *n.View
			c.View = &b
		}
	}
	return &c
}

// IsAbstract reports a node's abstract flag, defined only for the
// classes that carry one; all other classes report false.
func (n *Node) IsAbstract() bool {
	switch n.Class {
	case ClassObjectType:
		return n.ObjectType != nil && n.ObjectType.IsAbstract
	case ClassVariableType:
		return n.VariableType != nil && n.VariableType.IsAbstract
	case ClassReferenceType:
		return n.ReferenceType != nil && n.ReferenceType.IsAbstract
	case ClassDataType:
		return n.DataType != nil && n.DataType.IsAbstract
	default:
		return false
	}
}

// VariableFields returns the shared value-shape fields for a Variable
// or VariableType node, or nil for any other class.
func (n *Node) VariableFields() *VariableBody {
	switch n.Class {
	case ClassVariable:
		return n.Variable
	case ClassVariableType:
		if n.VariableType == nil {
			return nil
		}
		return &n.VariableType.VariableBody
	default:
		return nil
	}
}

// AddReference appends an edge to the node's adjacency list (the core
// primitive addOneWay builds on top of, spec §4.B).
func (n *Node) AddReference(e ReferenceEdge) {
	n.References = append(n.References, e)
}

// RemoveReference deletes the first edge matching e's referenceTypeId,
// target, and orientation, swap-removing it with the tail. It reports
// whether a matching edge was found, the counterpart addOneWay's
// delete-side callers (in-process and delegated alike) build on top
// of.
func (n *Node) RemoveReference(e ReferenceEdge) bool {
	refs := n.References
	for i, existing := range refs {
		if existing.IsInverse == e.IsInverse &&
			existing.ReferenceTypeID.Equal(e.ReferenceTypeID) &&
			existing.Target.NodeID.Equal(e.Target.NodeID) &&
			existing.Target.ServerIndex == e.Target.ServerIndex {
			last := len(refs) - 1
			refs[i] = refs[last]
			refs = refs[:last]
			if len(refs) == 0 {
				refs = nil
			}
			n.References = refs
			return true
		}
	}
	return false
}
