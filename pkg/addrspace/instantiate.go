package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// Instantiate resolves typeID, copies the aggregated children of the
// type and every supertype onto newNodeID, attaches HasTypeDefinition,
// runs the type's constructor for Objects, and fires cb (spec §4.G).
// Only Object and Variable nodes are instantiated; every other class
// returns Good immediately. Grounded on the C source's
// instantiateNode/copyChildNodes pair.
func Instantiate(o *Orchestrator, newNodeID ua.NodeID, class ua.NodeClass, typeID ua.NodeID, cb InstantiationCallback) ua.StatusCode {
	if class != ua.ClassObject && class != ua.ClassVariable {
		return ua.Good
	}

	typeNode, ok := o.Store.Get(typeID)
	if !ok {
		return ua.BadTypeDefinitionInvalid
	}
	switch class {
	case ua.ClassVariable:
		if typeNode.Class != ua.ClassVariableType || typeNode.IsAbstract() {
			return ua.BadTypeDefinitionInvalid
		}
	case ua.ClassObject:
		if typeNode.Class != ua.ClassObjectType || typeNode.IsAbstract() {
			return ua.BadTypeDefinitionInvalid
		}
	}

	// TypeHierarchy(includeSelf=true) returns [type, supertype,
	// grandsupertype, ...] — most-derived first. Copying in that order
	// means the most-derived type's children land under newNodeID
	// first; when an ancestor later tries to add a same-browseName
	// child, copyChildren finds the already-seeded one and merges
	// missing grandchildren into it instead of overwriting it (spec
	// §4.G step 3, §8 property 5).
	chain := TypeHierarchy(o.Store, typeID, true)
	var status ua.StatusCode
	for _, ancestor := range chain {
		if s := copyChildren(o, ancestor, newNodeID, cb); s.IsBad() {
			status = s
			break
		}
	}
	if status.IsBad() {
		return status
	}

	var handle any
	if typeNode.Class == ua.ClassObjectType && typeNode.ObjectType != nil && typeNode.ObjectType.Lifecycle.Constructor != nil {
		ctor := typeNode.ObjectType.Lifecycle.Constructor
		status = o.Store.Edit(newNodeID, func(n *ua.Node, _ any) ua.StatusCode {
			if n.Object == nil || n.Object.InstanceHandle != nil {
				return ua.Good
			}
			h, cs := ctor(n.NodeID)
			if cs.IsBad() {
				return cs
			}
			n.Object.InstanceHandle = h
			handle = h
			return ua.Good
		}, nil)
		if status.IsBad() {
			return status
		}
	}

	status = AddReference(o.Store, ReferenceItem{
		SourceID:        newNodeID,
		ReferenceTypeID: IDHasTypeDefinition,
		IsForward:       true,
		TargetID:        ua.Local(typeID),
	})
	if status.IsBad() {
		return status
	}

	if cb != nil {
		cb(newNodeID, typeID, handle)
	}
	return ua.Good
}

// aggregateChild describes one child discovered by enumerating a
// node's Aggregates-closure forward edges restricted to
// Object/Variable/Method (spec §4.G copyChildren).
type aggregateChild struct {
	ReferenceTypeID ua.NodeID
	Target          ua.NodeID
	Class           ua.NodeClass
	BrowseName      string
}

// aggregateChildren enumerates src's children along the Aggregates
// reference-type closure (subtypes included — HasComponent,
// HasProperty — via IsSubtypeOf), restricted to Object/Variable/Method.
func aggregateChildren(store *Store, src ua.NodeID) []aggregateChild {
	node, ok := store.Get(src)
	if !ok {
		return nil
	}
	var children []aggregateChild
	for _, edge := range node.References {
		if edge.IsInverse || !edge.Target.IsLocal() {
			continue
		}
		if !edge.ReferenceTypeID.Equal(IDAggregates) && !IsSubtypeOf(store, edge.ReferenceTypeID, IDAggregates) {
			continue
		}
		target, ok := store.Get(edge.Target.NodeID)
		if !ok {
			continue
		}
		if target.Class != ua.ClassObject && target.Class != ua.ClassVariable && target.Class != ua.ClassMethod {
			continue
		}
		children = append(children, aggregateChild{
			ReferenceTypeID: edge.ReferenceTypeID,
			Target:          edge.Target.NodeID,
			Class:           target.Class,
			BrowseName:      target.BrowseName,
		})
	}
	return children
}

// findAggregateByBrowseName looks for an existing Aggregates-closure
// forward child of dst with the given browseName (spec §4.G
// copyChildren, "same-browseName aggregate already under dst").
func findAggregateByBrowseName(store *Store, dst ua.NodeID, browseName string) (ua.NodeID, bool) {
	for _, c := range aggregateChildren(store, dst) {
		if c.BrowseName == browseName {
			return c.Target, true
		}
	}
	return ua.NodeID{}, false
}

// getNodeType returns the type a node points at via a forward
// HasTypeDefinition edge, used when re-entering AddNode for a cloned
// child so its own instantiation runs against the right type (spec
// §4.G copyChildren "the new node's type is looked up via
// getNodeType").
func getNodeType(store *Store, node *ua.Node) (ua.NodeID, bool) {
	for _, edge := range node.References {
		if !edge.IsInverse && edge.ReferenceTypeID.Equal(IDHasTypeDefinition) && edge.Target.IsLocal() {
			return edge.Target.NodeID, true
		}
	}
	return ua.NodeID{}, false
}

// copyChildren implements spec §4.G's merge-with-existing recursion:
// for each aggregate child of src, either merge into an existing child
// of dst with the same browseName (copying in only the grandchildren it
// lacks) or deep-clone the child under dst (Method references are
// shared, never cloned).
func copyChildren(o *Orchestrator, src, dst ua.NodeID, cb InstantiationCallback) ua.StatusCode {
	for _, child := range aggregateChildren(o.Store, src) {
		existing, found := findAggregateByBrowseName(o.Store, dst, child.BrowseName)
		if !found {
			if child.Class == ua.ClassMethod {
				status := AddReference(o.Store, ReferenceItem{
					SourceID:        dst,
					ReferenceTypeID: child.ReferenceTypeID,
					IsForward:       true,
					TargetID:        ua.Local(child.Target),
				})
				if status.IsBad() {
					return status
				}
				continue
			}

			template, ok := o.Store.GetCopy(child.Target)
			if !ok {
				return ua.BadNodeIdInvalid
			}

			var typeDef ua.NodeID
			if typeNode, ok := getNodeType(o.Store, template); ok {
				typeDef = typeNode
			}

			// The clone must not carry the template's own relational
			// edges (its children, its inverse pointer to the type it
			// came from) — those belong to the template, not the new
			// instance member. AddNode/Instantiate rebuild the real
			// edge set from scratch: HasTypeDefinition, a fresh copy
			// of this child's own aggregated members, and the parent
			// attachment below.
			template.NodeID = ua.NodeID{NamespaceIndex: dst.NamespaceIndex}
			template.References = nil

			_, status := o.AddNode(template, dst, child.ReferenceTypeID, typeDef, cb)
			if status.IsBad() {
				return status
			}
			continue
		}

		if child.Class == ua.ClassObject || child.Class == ua.ClassVariable {
			if status := copyChildren(o, child.Target, existing, cb); status.IsBad() {
				return status
			}
		}
	}
	return ua.Good
}
