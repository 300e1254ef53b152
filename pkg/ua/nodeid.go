// Package ua holds the wire-independent OPC UA value types shared across
// the address-space core: node identifiers, status codes, node classes,
// and the reference/value primitives built on top of them.
//
// Nothing in this package talks to a NodeStore or enforces any of the
// address space's structural invariants — it only defines the shapes
// those invariants are stated about. See package addrspace for the
// behavior.
package ua

import "fmt"

// IDKind tags which representation a NodeID carries.
//
// OPC UA identifiers come in four flavors; which one a given NodeID
// uses is fixed at construction and never changes.
type IDKind int

const (
	IDNumeric IDKind = iota
	IDString
	IDGUID
	IDOpaque
)

func (k IDKind) String() string {
	switch k {
	case IDNumeric:
		return "numeric"
	case IDString:
		return "string"
	case IDGUID:
		return "guid"
	case IDOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// NodeID is a namespace-qualified node identifier.
//
// Equality is structural: two NodeIDs are equal iff their namespace
// index, kind, and identifier value all match. NodeID is a comparable
// value type (safe to compare with == and to use as a map key); an
// opaque identifier keeps its bytes in a string for that reason.
//
// Example:
//
//	id := ua.NewNumericNodeID(0, 58) // ns=0;i=58 (BaseObjectType)
//	if id.Kind == ua.IDNumeric { ... }
type NodeID struct {
	NamespaceIndex uint16
	Kind           IDKind

	Numeric  uint32
	StringID string
	GUID     [16]byte
	Opaque   string
}

// NewNumericNodeID builds a numeric NodeID, the common case for
// standard (namespace 0) and generated server-side identifiers.
func NewNumericNodeID(ns uint16, id uint32) NodeID {
	return NodeID{NamespaceIndex: ns, Kind: IDNumeric, Numeric: id}
}

// NewStringNodeID builds a string NodeID.
func NewStringNodeID(ns uint16, id string) NodeID {
	return NodeID{NamespaceIndex: ns, Kind: IDString, StringID: id}
}

// IsNull reports whether id is the zero NodeID (ns=0, numeric 0), the
// sentinel OPC UA uses for "no id"/"not set".
func (id NodeID) IsNull() bool {
	return id.NamespaceIndex == 0 && id.Kind == IDNumeric && id.Numeric == 0
}

// IsUnassigned reports whether id carries no identifier value yet
// regardless of namespace — the condition NodeStore.Insert treats as
// "allocate a fresh numeric id", matching the C source's
// UA_NodeId_isNull check on a requested id whose namespace has
// already been set to the destination's (spec §4.A, §4.G
// copyChildren: "their node id is cleared but the namespace index is
// set to dst's namespace").
func (id NodeID) IsUnassigned() bool {
	return id.Kind == IDNumeric && id.Numeric == 0
}

// Equal reports structural equality, comparing only the identifier
// field that Kind selects.
func (id NodeID) Equal(other NodeID) bool {
	if id.NamespaceIndex != other.NamespaceIndex || id.Kind != other.Kind {
		return false
	}
	switch id.Kind {
	case IDNumeric:
		return id.Numeric == other.Numeric
	case IDString:
		return id.StringID == other.StringID
	case IDGUID:
		return id.GUID == other.GUID
	case IDOpaque:
		if len(id.Opaque) != len(other.Opaque) {
			return false
		}
		for i := range id.Opaque {
			if id.Opaque[i] != other.Opaque[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (id NodeID) String() string {
	switch id.Kind {
	case IDNumeric:
		return fmt.Sprintf("ns=%d;i=%d", id.NamespaceIndex, id.Numeric)
	case IDString:
		return fmt.Sprintf("ns=%d;s=%s", id.NamespaceIndex, id.StringID)
	case IDGUID:
		return fmt.Sprintf("ns=%d;g=%x", id.NamespaceIndex, id.GUID)
	case IDOpaque:
		return fmt.Sprintf("ns=%d;b=%x", id.NamespaceIndex, id.Opaque)
	default:
		return "ns=?;invalid"
	}
}

// ExpandedNodeID is a NodeID plus an optional cross-server indirection.
//
// ServerIndex == 0 means "local" (the common case); a non-zero index
// together with a non-empty NamespaceURI identifies a node living in a
// different OPC UA server, which this core never dereferences itself —
// external-namespace delegation (see pkg/extnamespace) is the only
// place that interprets a non-local ExpandedNodeID.
type ExpandedNodeID struct {
	NodeID       NodeID
	NamespaceURI string
	ServerIndex  uint32
}

// IsLocal reports whether this reference target lives in this server.
func (e ExpandedNodeID) IsLocal() bool {
	return e.ServerIndex == 0
}

// Local builds a local ExpandedNodeID from a plain NodeID.
func Local(id NodeID) ExpandedNodeID {
	return ExpandedNodeID{NodeID: id}
}

func (e ExpandedNodeID) String() string {
	if e.ServerIndex == 0 {
		return e.NodeID.String()
	}
	return fmt.Sprintf("svr=%d;%s", e.ServerIndex, e.NodeID.String())
}
