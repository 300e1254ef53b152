package ua

// ValueRank encodes the scalar/array shape of a Variable's value.
//
// Special codes below zero mirror the OPC UA spec exactly:
//
//	ScalarOrOneDimension = -3
//	Any                  = -2
//	Scalar               = -1
//	OneOrMoreDimensions  =  0 (unset/unspecified in this core's bootstrap path)
//	N (>=1)              = exactly N array dimensions
type ValueRank int32

const (
	ValueRankScalarOrOneDimension ValueRank = -3
	ValueRankAny                  ValueRank = -2
	ValueRankScalar               ValueRank = -1
	ValueRankUnspecified          ValueRank = 0
)

// StorageMode marks how a Value's underlying data is owned, mirroring
// the C source's UA_VARIANT_DATA / DATA_NODELETE storage-type marker
// (spec §5, "value payloads follow a variant discipline"). Go's GC
// makes the distinction unnecessary for memory safety, but it is kept
// because it documents intent: a Borrowed value must not be mutated in
// place by its holder, and a DoNotDelete value was synthesized
// in-place by the type checker and must not be freed twice by a
// caller that also owns a reference to it.
type StorageMode int

const (
	Owned StorageMode = iota
	Borrowed
	DoNotDelete
)

// Value is a minimal Variant: a dynamically typed payload tagged with
// its declared DataType, shape, and ownership mode. It stands in for
// the wire-level Variant encoding, which is out of scope (§1).
type Value struct {
	DataType  NodeID
	ValueRank ValueRank
	IsArray   bool
	Scalar    any
	Array     []any
	Storage   StorageMode
}

// IsEmpty reports whether the value carries no data, the condition the
// type checker's "synthesize a null value" workaround (§4.F step 5)
// triggers on.
func (v Value) IsEmpty() bool {
	return v.Scalar == nil && v.Array == nil
}

// DataSource is the pluggable pair backing a Variable whose
// ValueSource is DataSource rather than inline Data (spec §3).
//
// Read is called synchronously inside the writer's critical section
// (spec §5) and must not block or re-enter the core's public API.
type DataSource struct {
	Read  func(id NodeID) (Value, StatusCode)
	Write func(id NodeID, v Value) StatusCode

	// Handle is an opaque pointer the data source's own Read/Write
	// closures may capture over; the core never inspects it.
	Handle any
}

// ValueSource discriminates a Variable's value storage, a two-armed
// tagged union in spirit (spec §3, §9 "Value variants").
type ValueSource int

const (
	SourceData ValueSource = iota
	SourceDataSource
)
