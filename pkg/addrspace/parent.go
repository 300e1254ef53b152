package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// CheckParentReference validates whether referenceTypeID may connect a
// new node of class nodeClass to parentID, per the rules of spec
// §4.E. Grounded on the C source's checkParentReference.
func CheckParentReference(store *Store, nodeClass ua.NodeClass, parentID, referenceTypeID ua.NodeID) ua.StatusCode {
	parent, ok := store.Get(parentID)
	if !ok {
		return ua.BadParentNodeIdInvalid
	}

	refType, ok := store.Get(referenceTypeID)
	if !ok || refType.Class != ua.ClassReferenceType {
		return ua.BadReferenceTypeIdInvalid
	}

	if refType.ReferenceType != nil && refType.ReferenceType.IsAbstract {
		return ua.BadReferenceNotAllowed
	}

	if nodeClass.IsTypeClass() {
		if !referenceTypeID.Equal(IDHasSubtype) {
			return ua.BadReferenceNotAllowed
		}
		if parent.Class != nodeClass {
			return ua.BadParentNodeIdInvalid
		}
		return ua.Good
	}

	// IsSubtypeOf is non-strict: it also matches referenceTypeID itself.
	if !IsSubtypeOf(store, referenceTypeID, IDHierarchicalReferences) {
		return ua.BadReferenceTypeIdInvalid
	}
	return ua.Good
}
