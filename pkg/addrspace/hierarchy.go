package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// IsNodeInTree performs a breadth-first search from start against the
// transitive closure of reference types in via, following edges in
// the inverse direction (i.e. "is start a (sub)type of something in
// rootSet" walks up inbound hasSubtype edges). It returns true iff any
// member of rootSet is reached. A visited set makes the search
// tolerant of cycles even though the graph is expected acyclic by
// construction (spec §4.D). Grounded on the C source's isNodeInTree.
func IsNodeInTree(store NodeReader, start ua.NodeID, rootSet []ua.NodeID, via []ua.NodeID) bool {
	for _, root := range rootSet {
		if start.Equal(root) {
			return true
		}
	}

	viaSet := make(map[ua.NodeID]struct{}, len(via))
	for _, v := range via {
		viaSet[v] = struct{}{}
	}

	visited := map[ua.NodeID]struct{}{start: {}}
	queue := []ua.NodeID{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node, ok := store.Get(current)
		if !ok {
			continue
		}

		for _, edge := range node.References {
			if !edge.IsInverse {
				// Walking "up" means following edges where this node
				// is the target of a forward reference from the
				// parent, i.e. an inbound edge recorded here as
				// inverse.
				continue
			}
			if _, ok := viaSet[edge.ReferenceTypeID]; !ok {
				continue
			}
			if !edge.Target.IsLocal() {
				continue
			}
			next := edge.Target.NodeID
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}

			for _, root := range rootSet {
				if next.Equal(root) {
					return true
				}
			}
			queue = append(queue, next)
		}
	}
	return false
}

// IsSubtypeOf is the common case of IsNodeInTree: is candidate the
// same type as, or a (transitive) subtype of, ancestor via hasSubtype?
func IsSubtypeOf(store NodeReader, candidate, ancestor ua.NodeID) bool {
	return IsNodeInTree(store, candidate, []ua.NodeID{ancestor}, []ua.NodeID{IDHasSubtype})
}

// TypeHierarchy returns the supertype chain of typeNode, most-specific
// first, via successive inbound hasSubtype edges (spec §4.D). The
// instantiator processes this chain so a more-derived type's
// aggregated members take precedence over an ancestor's (spec §4.G
// step 3).
func TypeHierarchy(store NodeReader, typeNode ua.NodeID, includeSelf bool) []ua.NodeID {
	chain := make([]ua.NodeID, 0, 4)
	if includeSelf {
		chain = append(chain, typeNode)
	}

	current := typeNode
	visited := map[ua.NodeID]struct{}{typeNode: {}}
	for {
		node, ok := store.Get(current)
		if !ok {
			break
		}
		super, found := supertypeOf(node)
		if !found {
			break
		}
		if _, seen := visited[super]; seen {
			break // cycle guard; the graph is expected acyclic (spec §4.D)
		}
		visited[super] = struct{}{}
		chain = append(chain, super)
		current = super
	}
	return chain
}

// supertypeOf returns the node this type node points to via its first
// inbound hasSubtype edge. Where a node has more than one (Bootstrap
// gives HasComponent and HasProperty two), the later ones are not
// followed.
func supertypeOf(node *ua.Node) (ua.NodeID, bool) {
	for _, edge := range node.References {
		if edge.IsInverse && edge.ReferenceTypeID.Equal(IDHasSubtype) && edge.Target.IsLocal() {
			return edge.Target.NodeID, true
		}
	}
	return ua.NodeID{}, false
}
