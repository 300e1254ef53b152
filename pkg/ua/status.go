package ua

// StatusCode is the OPC UA status-code space, narrowed to the subset the
// address-space core produces (spec §7). Good is the zero value so a
// freshly zeroed StatusCode reads as success, matching how the C source
// treats UA_STATUSCODE_GOOD (0).
type StatusCode uint32

// IsGood reports whether s is exactly Good, i.e. the call
// succeeded. The OPC UA spec reserves the top bits for Bad/Uncertain;
// this core only ever produces Good or Bad codes, never Uncertain,
// except UncertainReferenceNotDeleted which is Uncertain by name but
// historically treated as non-fatal by callers — check IsBad instead
// of !IsGood when you need "did this actually fail".
func (s StatusCode) IsGood() bool { return s == Good }

// IsBad reports whether this is a Bad_* status code.
func (s StatusCode) IsBad() bool { return s&0x80000000 != 0 }

func (s StatusCode) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "BadUnknown"
}

func (s StatusCode) Error() string { return s.String() }

const (
	Good StatusCode = 0

	// Structural
	BadNodeIdInvalid         StatusCode = 0x80330000
	BadNodeIdUnknown         StatusCode = 0x80340000
	BadNodeClassInvalid      StatusCode = 0x805F0000
	BadParentNodeIdInvalid   StatusCode = 0x805B0000
	BadReferenceTypeIdInvalid StatusCode = 0x804C0000
	BadReferenceNotAllowed   StatusCode = 0x805C0000

	// Typing
	BadTypeDefinitionInvalid StatusCode = 0x80630000
	BadTypeMismatch          StatusCode = 0x80740000
	BadNodeAttributesInvalid StatusCode = 0x80620000

	// Resource
	BadOutOfMemory StatusCode = 0x80030000

	// Semantic
	BadNothingToDo                 StatusCode = 0x800F0000
	BadNotImplemented               StatusCode = 0x80400000
	UncertainReferenceNotDeleted    StatusCode = 0x40BC0000
)

var statusNames = map[StatusCode]string{
	Good:                         "Good",
	BadNodeIdInvalid:             "BadNodeIdInvalid",
	BadNodeIdUnknown:             "BadNodeIdUnknown",
	BadNodeClassInvalid:          "BadNodeClassInvalid",
	BadParentNodeIdInvalid:       "BadParentNodeIdInvalid",
	BadReferenceTypeIdInvalid:    "BadReferenceTypeIdInvalid",
	BadReferenceNotAllowed:       "BadReferenceNotAllowed",
	BadTypeDefinitionInvalid:     "BadTypeDefinitionInvalid",
	BadTypeMismatch:              "BadTypeMismatch",
	BadNodeAttributesInvalid:     "BadNodeAttributesInvalid",
	BadOutOfMemory:               "BadOutOfMemory",
	BadNothingToDo:               "BadNothingToDo",
	BadNotImplemented:            "BadNotImplemented",
	UncertainReferenceNotDeleted: "UncertainReferenceNotDeleted",
}

// NodeClass enumerates the eight node classes of the OPC UA information
// model. It is the discriminant of the Node tagged union in node.go.
type NodeClass int

const (
	ClassObject NodeClass = iota + 1
	ClassVariable
	ClassMethod
	ClassObjectType
	ClassVariableType
	ClassReferenceType
	ClassDataType
	ClassView
)

func (c NodeClass) String() string {
	switch c {
	case ClassObject:
		return "Object"
	case ClassVariable:
		return "Variable"
	case ClassMethod:
		return "Method"
	case ClassObjectType:
		return "ObjectType"
	case ClassVariableType:
		return "VariableType"
	case ClassReferenceType:
		return "ReferenceType"
	case ClassDataType:
		return "DataType"
	case ClassView:
		return "View"
	default:
		return "Unspecified"
	}
}

// IsTypeClass reports whether c is one of the four "type" node classes
// (DataType, VariableType, ObjectType, ReferenceType), which the
// parent-reference validator (spec §4.E rule 4) treats specially.
func (c NodeClass) IsTypeClass() bool {
	switch c {
	case ClassDataType, ClassVariableType, ClassObjectType, ClassReferenceType:
		return true
	default:
		return false
	}
}
