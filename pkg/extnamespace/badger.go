// Package extnamespace provides a Badger-backed ExternalNamespace: a
// Mutator implementation that delegates node storage and mutation to a
// separate, possibly slower or remote, backing store instead of the
// in-memory addrspace.Store (spec §1, §6 "external namespace
// delegation").
//
// Grounded on the teacher's pkg/storage/badger.go BadgerEngine: same
// options struct, same in-memory-for-tests knob, same JSON-encode-a-Go-
// struct-into-a-keyed-KV persistence strategy, generalized from a
// labeled-property-graph node to ua.Node.
package extnamespace

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/uaspace/uaspace/pkg/addrspace"
	"github.com/uaspace/uaspace/pkg/ua"
)

// Options configures an ExternalNamespace.
type Options struct {
	// DataDir is the directory Badger stores its files in. Ignored
	// when InMemory is set.
	DataDir string

	// InMemory runs Badger in memory-only mode, useful for tests that
	// want persistence semantics without touching disk.
	InMemory bool
}

// ExternalNamespace stores a slice of the address space's nodes in a
// Badger-backed key/value database instead of addrspace.Store's map,
// standing in for the C source's pluggable "external namespace" hook
// (spec §1). It implements addrspace.Mutator, so the reference service
// (addrspace.AddReference/DeleteReference) can treat it interchangeably
// with a Store. The AddNode/DeleteNode orchestrators work on an
// *addrspace.Store only and do not accept an ExternalNamespace.
type ExternalNamespace struct {
	db *badger.DB
}

// Open opens (or creates) the Badger database backing ns.
func Open(opts Options) (*ExternalNamespace, error) {
	badgerOpts := badger.DefaultOptions(opts.DataDir).WithLogger(nil)
	if opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("extnamespace: opening badger: %w", err)
	}
	return &ExternalNamespace{db: db}, nil
}

// OpenInMemory opens an ExternalNamespace that keeps no data on disk,
// mirroring the teacher's NewBadgerEngineInMemory for tests.
func OpenInMemory() (*ExternalNamespace, error) {
	return Open(Options{InMemory: true})
}

// Close releases the underlying Badger database.
func (ns *ExternalNamespace) Close() error {
	return ns.db.Close()
}

func nodeKey(id ua.NodeID) []byte {
	return []byte("node:" + id.String())
}

// Put stores node under its own NodeID, the delegation-side equivalent
// of addrspace.Store.Insert — the orchestrators never allocate ids
// into an external namespace themselves (spec §6: "a server never
// generates identifiers inside someone else's namespace").
func (ns *ExternalNamespace) Put(node *ua.Node) ua.StatusCode {
	if node == nil || node.NodeID.IsUnassigned() {
		return ua.BadNodeIdInvalid
	}
	payload, err := json.Marshal(node)
	if err != nil {
		return ua.BadNodeAttributesInvalid
	}
	err = ns.db.Update(func(txn *badger.Txn) error {
		return txn.Set(nodeKey(node.NodeID), payload)
	})
	if err != nil {
		return ua.BadOutOfMemory
	}
	return ua.Good
}

// Get retrieves the node stored at id, decoding it fresh from Badger
// on every call (no in-process cache — delegation is allowed to be
// slower than the local store; spec §6).
func (ns *ExternalNamespace) Get(id ua.NodeID) (*ua.Node, bool) {
	var node ua.Node
	err := ns.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(nodeKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &node)
		})
	})
	if err != nil {
		return nil, false
	}
	return &node, true
}

// Remove deletes the node at id.
func (ns *ExternalNamespace) Remove(id ua.NodeID) ua.StatusCode {
	err := ns.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(nodeKey(id))
	})
	if err != nil {
		return ua.BadNodeIdUnknown
	}
	return ua.Good
}

// Mutate implements addrspace.Mutator by round-tripping the node
// through Badger: read-modify-write under a single transaction, the
// same read-copy-update shape addrspace.Store.Edit uses under its
// RWMutex, except the "lock" here is Badger's own transaction
// isolation (spec §6).
func (ns *ExternalNamespace) Mutate(id ua.NodeID, op addrspace.MutateOp) ua.StatusCode {
	var result ua.StatusCode
	err := ns.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(nodeKey(id))
		if err != nil {
			result = ua.BadNodeIdUnknown
			return nil
		}
		var node ua.Node
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &node)
		}); err != nil {
			result = ua.BadNodeAttributesInvalid
			return nil
		}

		result = applyMutation(&node, op)
		if result.IsBad() {
			return nil
		}

		payload, err := json.Marshal(&node)
		if err != nil {
			result = ua.BadNodeAttributesInvalid
			return nil
		}
		return txn.Set(nodeKey(id), payload)
	})
	if err != nil {
		return ua.BadOutOfMemory
	}
	return result
}

// applyMutation covers the subset of MutateKind operations meaningful
// for an external namespace: reference and value edits. Lifecycle and
// method-callback mutations carry function values that cannot survive
// a JSON round-trip, so they return BadNotImplemented here rather than
// silently dropping the callback (spec §6, §9 — delegated namespaces
// are not expected to host constructors/destructors of their own).
func applyMutation(node *ua.Node, op addrspace.MutateOp) ua.StatusCode {
	switch op.Kind {
	case addrspace.OpAddEdge:
		edge := op.Edge
		edge.IsInverse = !op.IsForward
		node.AddReference(edge)
		return ua.Good
	case addrspace.OpDeleteEdge:
		edge := op.Edge
		edge.IsInverse = !op.IsForward
		if node.RemoveReference(edge) {
			return ua.Good
		}
		return ua.UncertainReferenceNotDeleted
	case addrspace.OpSetValue:
		vb := node.VariableFields()
		if vb == nil {
			return ua.BadNodeClassInvalid
		}
		vb.Value = op.Value
		vb.ValueSource = ua.SourceData
		return ua.Good
	case addrspace.OpSetLifecycle, addrspace.OpSetMethodCallback, addrspace.OpSetDataSource:
		return ua.BadNotImplemented
	default:
		return ua.BadNotImplemented
	}
}
