package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// Bootstrap seeds store with the minimal namespace-0 scaffolding the
// orchestrators assume already exists: the reference-type hierarchy
// (References at the root, HasChild/HasSubtype/Aggregates/Organizes/
// HasTypeDefinition/HasComponent/HasProperty/HasEventSource below it)
// and the base type nodes AddNode's defaulting logic points at
// (BaseObjectType, BaseVariableType, BaseDataVariableType,
// BaseDataType, PropertyType).
//
// A real OPC UA server loads this from the standard-defined NodeSet2
// XML; this core has no XML importer (out of scope), so Bootstrap
// inserts the same well-known ids (pkg/addrspace/well_known.go)
// directly via Store.Insert, bypassing the AddNode orchestrator the
// way a server's own namespace-0 generation code does — there is no
// parent to validate a reference type's own definition against.
func Bootstrap(store *Store) ua.StatusCode {
	refType := func(id ua.NodeID, name string, abstract, symmetric bool, inverseName string) *ua.Node {
		n := NewNode(ua.ClassReferenceType)
		n.NodeID = id
		n.BrowseName = name
		n.DisplayName = name
		n.ReferenceType.IsAbstract = abstract
		n.ReferenceType.Symmetric = symmetric
		n.ReferenceType.InverseName = inverseName
		return n
	}

	refs := []*ua.Node{
		refType(IDReferences, "References", true, true, "References"),
		refType(IDHierarchicalReferences, "HierarchicalReferences", true, false, "InverseHierarchicalReferences"),
		refType(IDHasChild, "HasChild", true, false, "ChildOf"),
		refType(IDOrganizes, "Organizes", false, false, "OrganizedBy"),
		refType(IDHasEventSource, "HasEventSource", false, false, "EventSourceOf"),
		refType(IDHasTypeDefinition, "HasTypeDefinition", false, false, "TypeDefinitionOf"),
		refType(IDAggregates, "Aggregates", true, false, "AggregatedBy"),
		refType(IDHasSubtype, "HasSubtype", false, false, "SubtypeOf"),
		refType(IDHasProperty, "HasProperty", false, false, "PropertyOf"),
		refType(IDHasComponent, "HasComponent", false, false, "ComponentOf"),
	}
	for _, n := range refs {
		if _, status := store.Insert(n); status.IsBad() {
			return status
		}
	}

	// Reference-type subtype skeleton: HierarchicalReferences and
	// Aggregates are subtypes of References; HasChild/Organizes/
	// HasEventSource are subtypes of HierarchicalReferences;
	// HasTypeDefinition is a subtype of HierarchicalReferences;
	// HasSubtype/HasComponent are subtypes of HasChild; HasProperty is
	// a subtype of HasComponent; HasComponent/HasProperty are also
	// subtypes of Aggregates.
	subtype := func(child, parent ua.NodeID) ua.StatusCode {
		return AddReference(store, ReferenceItem{
			SourceID:        child,
			ReferenceTypeID: IDHasSubtype,
			IsForward:       false,
			TargetID:        ua.Local(parent),
		})
	}
	edges := [][2]ua.NodeID{
		{IDHierarchicalReferences, IDReferences},
		{IDAggregates, IDReferences},
		{IDHasChild, IDHierarchicalReferences},
		{IDOrganizes, IDHierarchicalReferences},
		{IDHasEventSource, IDHierarchicalReferences},
		{IDHasTypeDefinition, IDHierarchicalReferences},
		{IDHasSubtype, IDHasChild},
		{IDHasComponent, IDHasChild},
		{IDHasProperty, IDHasComponent},
	}
	for _, e := range edges {
		if status := subtype(e[0], e[1]); status.IsBad() {
			return status
		}
	}
	// HasComponent/HasProperty are also Aggregates subtypes (multiple
	// inheritance of reference types is allowed; IsSubtypeOf walks
	// every inverse HasSubtype edge, not just the first).
	if status := subtype(IDHasComponent, IDAggregates); status.IsBad() {
		return status
	}
	if status := subtype(IDHasProperty, IDAggregates); status.IsBad() {
		return status
	}

	// Base data type.
	dataType := NewNode(ua.ClassDataType)
	dataType.NodeID = IDBaseDataType
	dataType.BrowseName = "BaseDataType"
	dataType.DisplayName = "BaseDataType"
	dataType.DataType.IsAbstract = true
	if _, status := store.Insert(dataType); status.IsBad() {
		return status
	}

	// Base object type, not abstract so it can be instantiated
	// directly by AddNode's default-type-definition logic.
	baseObjectType := NewNode(ua.ClassObjectType)
	baseObjectType.NodeID = IDBaseObjectType
	baseObjectType.BrowseName = "BaseObjectType"
	baseObjectType.DisplayName = "BaseObjectType"
	if _, status := store.Insert(baseObjectType); status.IsBad() {
		return status
	}

	// Base variable type, abstract — concrete variables use
	// BaseDataVariableType or an application-defined subtype instead.
	baseVariableType := NewNode(ua.ClassVariableType)
	baseVariableType.NodeID = IDBaseVariableType
	baseVariableType.BrowseName = "BaseVariableType"
	baseVariableType.DisplayName = "BaseVariableType"
	baseVariableType.VariableType.IsAbstract = true
	baseVariableType.VariableType.DataType = IDBaseDataType
	baseVariableType.VariableType.ValueRank = ua.ValueRankAny
	if _, status := store.Insert(baseVariableType); status.IsBad() {
		return status
	}

	baseDataVariableType := NewNode(ua.ClassVariableType)
	baseDataVariableType.NodeID = IDBaseDataVariableType
	baseDataVariableType.BrowseName = "BaseDataVariableType"
	baseDataVariableType.DisplayName = "BaseDataVariableType"
	baseDataVariableType.VariableType.DataType = IDBaseDataType
	baseDataVariableType.VariableType.ValueRank = ua.ValueRankAny
	if _, status := store.Insert(baseDataVariableType); status.IsBad() {
		return status
	}
	if status := subtype(IDBaseDataVariableType, IDBaseVariableType); status.IsBad() {
		return status
	}

	propertyType := NewNode(ua.ClassVariableType)
	propertyType.NodeID = IDPropertyType
	propertyType.BrowseName = "PropertyType"
	propertyType.DisplayName = "PropertyType"
	propertyType.VariableType.DataType = IDBaseDataType
	propertyType.VariableType.ValueRank = ua.ValueRankAny
	if _, status := store.Insert(propertyType); status.IsBad() {
		return status
	}
	if status := subtype(IDPropertyType, IDBaseDataVariableType); status.IsBad() {
		return status
	}

	return ua.Good
}
