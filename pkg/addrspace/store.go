// Package addrspace implements the OPC UA address-space node-management
// core: a typed, graph-structured store of Nodes and the
// AddNodes/AddReferences/DeleteNodes/DeleteReferences orchestrators
// defined over it.
//
// The package assumes the single-writer discipline of spec §5: callers
// take Store's writer lock (via Edit, or implicitly through the
// AddNode/DeleteNode/AddReference/DeleteReference orchestrators) before
// mutating, and user-supplied callbacks run synchronously inside that
// critical section. Store itself does not serialize a fleet of
// concurrent writers beyond the one RWMutex — that is deliberate; the
// spec treats "one writer at a time" as the whole of the concurrency
// model.
package addrspace

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/uaspace/uaspace/internal/ualog"
	"github.com/uaspace/uaspace/pkg/ua"
)

// Store errors not already covered by a ua.StatusCode. These surface
// at Go API boundaries (e.g. a nil Node passed to Insert); the
// orchestrators translate structural failures into status codes
// instead of returning these directly.
var (
	ErrNilNode  = fmt.Errorf("addrspace: nil node")
	ErrNotFound = fmt.Errorf("addrspace: node not found")
)

// Store is the NodeStore of spec §4.A: a map from NodeID to Node,
// guarded by a single RWMutex standing in for the C source's
// process-wide RCU lock (spec §5, §9). Grounded on the teacher's
// MemoryEngine (pkg/storage/memory.go) — same shape (map + RWMutex +
// deep-copy-on-read), generalized from a labeled-property-graph node
// to the OPC UA tagged-union Node.
type Store struct {
	mu    sync.RWMutex
	nodes map[ua.NodeID]*ua.Node

	// nextNumeric hands out numeric ids per namespace when a caller
	// requests id allocation (nil NodeID on Insert).
	nextNumeric map[uint16]*uint64

	// writing guards against callback re-entrancy: a callback invoked
	// from inside Edit must not call back into the public API, since
	// that would deadlock against a single RWMutex. A nested Edit (and
	// so a nested Mutate) panics instead of deadlocking silently, which
	// surfaces the bug in tests instead of hanging the suite (spec §5,
	// §9). The flag is not tied to a goroutine: an Edit started from
	// another goroutine while one is in progress panics the same way,
	// and a callback that calls Get, Insert, Remove or Count still
	// deadlocks.
	writing atomic.Bool
}

// NewStore returns an empty NodeStore. Reads may run concurrently;
// writes must come one at a time (see the writing field).
func NewStore() *Store {
	return &Store{
		nodes:       make(map[ua.NodeID]*ua.Node),
		nextNumeric: make(map[uint16]*uint64),
	}
}

// NewNode returns a zero-initialized, class-tagged node template
// (spec §4.A "newNode"), with the Body pointer for Class pre-allocated
// so callers can fill in attributes directly.
func NewNode(class ua.NodeClass) *ua.Node {
	n := &ua.Node{Class: class}
	switch class {
	case ua.ClassObject:
		n.Object = &ua.ObjectBody{}
	case ua.ClassVariable:
		n.Variable = &ua.VariableBody{}
	case ua.ClassMethod:
		n.Method = &ua.MethodBody{}
	case ua.ClassObjectType:
		n.ObjectType = &ua.ObjectTypeBody{}
	case ua.ClassVariableType:
		n.VariableType = &ua.VariableTypeBody{}
	case ua.ClassReferenceType:
		n.ReferenceType = &ua.ReferenceTypeBody{}
	case ua.ClassDataType:
		n.DataType = &ua.DataTypeBody{}
	case ua.ClassView:
		n.View = &ua.ViewBody{}
	}
	return n
}

// Insert adds node to the store, allocating a fresh numeric id in the
// node's declared namespace when node.NodeID is null (spec §4.A). It
// takes ownership of node: callers must not retain a reference to the
// value they passed in and mutate it afterwards without going through
// Edit.
func (s *Store) Insert(node *ua.Node) (ua.NodeID, ua.StatusCode) {
	if node == nil {
		return ua.NodeID{}, ua.BadNodeAttributesInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if node.NodeID.IsUnassigned() {
		node.NodeID = s.allocateLocked(node.NodeID.NamespaceIndex)
	}

	if _, exists := s.nodes[node.NodeID]; exists {
		return ua.NodeID{}, ua.BadNodeIdInvalid
	}

	s.nodes[node.NodeID] = node
	return node.NodeID, ua.Good
}

// allocateLocked returns a fresh numeric NodeID in ns that does not
// already occur in the store. Must be called with mu held.
func (s *Store) allocateLocked(ns uint16) ua.NodeID {
	counter, ok := s.nextNumeric[ns]
	if !ok {
		v := uint64(1000) // leave room below for well-known ns0 ids
		counter = &v
		s.nextNumeric[ns] = counter
	}
	for {
		id := ua.NewNumericNodeID(ns, uint32(*counter))
		*counter++
		if _, exists := s.nodes[id]; !exists {
			return id
		}
	}
}

// Get returns an immutable view of the node at id. The returned
// pointer must not be mutated by the caller — use Edit for that — but
// unlike GetCopy it is not deep-copied, so concurrent Get calls share
// memory cheaply for the common read-only-traversal case (spec §4.A).
func (s *Store) Get(id ua.NodeID) (*ua.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	return n, ok
}

// GetCopy returns a deep clone of the node at id, used by the
// instantiator to seed a new child from a type member template (spec
// §4.A, §4.G).
func (s *Store) GetCopy(id ua.NodeID) (*ua.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}

// Remove deletes the node at id. It does not touch any other node's
// reference edges — callers (the DeleteNode orchestrator) are
// responsible for that (spec §4.I).
func (s *Store) Remove(id ua.NodeID) ua.StatusCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[id]; !ok {
		return ua.BadNodeIdUnknown
	}
	delete(s.nodes, id)
	return ua.Good
}

// EditFunc is the callback Edit invokes under the writer lock. ctx is
// caller-supplied context threaded through unchanged (the Go
// equivalent of the C source's opaque void* context, without the
// variadic-cast story since Go closures already capture their
// context).
type EditFunc func(node *ua.Node, ctx any) ua.StatusCode

// Edit obtains a mutable borrow of the node at id and invokes fn under
// the single-writer lock, propagating fn's return status (spec §4.A).
// This is the only supported path to mutating a stored node. Store.Mutate
// dispatches onto it; an external namespace (pkg/extnamespace)
// implements Mutator itself and does not go through Edit.
func (s *Store) Edit(id ua.NodeID, fn EditFunc, ctx any) ua.StatusCode {
	if !s.writing.CompareAndSwap(false, true) {
		panic("addrspace: Store.Edit called re-entrantly from inside a callback")
	}
	defer s.writing.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.nodes[id]
	if !ok {
		return ua.BadNodeIdUnknown
	}
	status := fn(node, ctx)
	if status.IsBad() {
		ualog.Debug("edit callback returned bad status", ualog.Fields{"node": id.String(), "status": status.String()})
	}
	return status
}

// Count returns the number of nodes currently stored, mainly useful
// for tests asserting round-trip invariants (spec §8 property 4).
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// lockFreeReader reads directly from a Store's node map without taking
// mu. It is only safe to use from a goroutine that already holds mu
// exclusively — namely Store.Edit's callback, which is where
// Store.Mutate's OpTypeCheck dispatch uses it to satisfy
// typeCheckVariableNode's NodeReader dependency without re-entering
// the (non-reentrant) RWMutex it is already inside.
type lockFreeReader struct{ s *Store }

func (r lockFreeReader) Get(id ua.NodeID) (*ua.Node, bool) {
	n, ok := r.s.nodes[id]
	return n, ok
}
