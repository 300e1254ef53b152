package addrspace

import "github.com/uaspace/uaspace/pkg/ua"

// Well-known namespace-0 identifiers the core's validators and
// orchestrators reason about directly. Numeric values match the OPC
// UA Part 6 NodeId assignments used throughout the C reference
// implementation's UA_NS0ID_* constants.
var (
	IDReferences              = ua.NewNumericNodeID(0, 31)
	IDHierarchicalReferences  = ua.NewNumericNodeID(0, 33)
	IDHasChild                = ua.NewNumericNodeID(0, 34)
	IDOrganizes               = ua.NewNumericNodeID(0, 35)
	IDHasEventSource          = ua.NewNumericNodeID(0, 36)
	IDHasTypeDefinition       = ua.NewNumericNodeID(0, 40)
	IDAggregates              = ua.NewNumericNodeID(0, 44)
	IDHasSubtype              = ua.NewNumericNodeID(0, 45)
	IDHasProperty             = ua.NewNumericNodeID(0, 46)
	IDHasComponent            = ua.NewNumericNodeID(0, 47)

	IDBaseDataType         = ua.NewNumericNodeID(0, 24)
	IDBaseObjectType       = ua.NewNumericNodeID(0, 58)
	IDBaseVariableType     = ua.NewNumericNodeID(0, 62)
	IDBaseDataVariableType = ua.NewNumericNodeID(0, 63)
	IDPropertyType         = ua.NewNumericNodeID(0, 68)

	// Built-in numeric scalar types, used by typeCheckValue to decide
	// when a scalar value is worth numerically normalizing.
	IDInt32   = ua.NewNumericNodeID(0, 6)
	IDUInt32  = ua.NewNumericNodeID(0, 7)
	IDInt64   = ua.NewNumericNodeID(0, 8)
	IDUInt64  = ua.NewNumericNodeID(0, 9)
	IDFloat   = ua.NewNumericNodeID(0, 10)
	IDDouble  = ua.NewNumericNodeID(0, 11)
)
