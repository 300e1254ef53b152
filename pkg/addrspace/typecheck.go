package addrspace

import (
	"github.com/uaspace/uaspace/internal/ualog"
	"github.com/uaspace/uaspace/pkg/convert"
	"github.com/uaspace/uaspace/pkg/ua"
)

// typeCheckVariableNode validates a Variable or VariableType node's
// dataType/valueRank/arrayDimensions/value against typeDef, the
// declared variable type (for Variable) or the type's parent (for
// VariableType) (spec §4.F). It runs inside Store.Edit via the
// OpTypeCheck mutation, so node is the live, mutable node being
// edited, and store is a lock-free NodeReader rather than *Store
// itself — Store.Edit already holds the writer lock, and sync.RWMutex
// is not reentrant, so a second, locking Get from in here would
// deadlock. Grounded on the C source's typeCheckVariableNode.
func typeCheckVariableNode(store NodeReader, node *ua.Node, typeDef ua.NodeID) ua.StatusCode {
	vb := node.VariableFields()
	if vb == nil {
		return ua.Good
	}

	// Step 1: default a missing dataType to BaseDataType (logged).
	if vb.DataType.IsNull() {
		ualog.Info("variable has no dataType; defaulting to BaseDataType", ualog.Fields{"node": node.NodeID.String()})
		vb.DataType = IDBaseDataType
	}

	// Step 2: bootstrap exemption for BaseDataVariableType itself.
	if node.NodeID.Equal(IDBaseDataVariableType) {
		return ua.Good
	}

	// Step 3: resolve and validate the variable type.
	vt, ok := store.Get(typeDef)
	if !ok || vt.Class != ua.ClassVariableType {
		return ua.BadTypeDefinitionInvalid
	}
	if node.Class == ua.ClassVariable && vt.IsAbstract() {
		return ua.BadTypeDefinitionInvalid
	}
	vtBody := vt.VariableFields()
	if vtBody == nil {
		return ua.BadTypeDefinitionInvalid
	}

	// Step 4: dataType must be a (non-strict) subtype of vt.dataType.
	if !IsSubtypeOf(store, vb.DataType, vtBody.DataType) {
		return ua.BadTypeMismatch
	}

	// Step 5: read the current value (possibly via data source);
	// synthesize a null value if empty and the dataType is concrete. A
	// dataType with no node in the store counts as concrete.
	value, status := readValueAttribute(vb, node.NodeID)
	if status.IsBad() {
		return status
	}
	dtNode, dtKnown := store.Get(vb.DataType)
	concrete := !dtKnown || !dtNode.IsAbstract()
	if value.IsEmpty() && concrete {
		ualog.Info("variable value empty; synthesizing null value", ualog.Fields{"node": node.NodeID.String()})
		synthesized := synthesizeNullValue(vb.DataType, vb.ValueRank)
		if vb.ValueSource == ua.SourceData {
			vb.Value = synthesized
			vb.Value.Storage = ua.DoNotDelete
		}
		value = synthesized
	}

	// Step 6: derive effective array dimension count.
	arrayDims := len(vb.ArrayDimensions)
	if arrayDims == 0 {
		if !value.IsArray && vb.ValueRank == ua.ValueRankUnspecified {
			ualog.Info("valueRank unset on scalar value; adopting variable type's valueRank", ualog.Fields{"node": node.NodeID.String()})
			vb.ValueRank = vtBody.ValueRank
		} else if value.IsArray && vb.ValueRank == 1 {
			arrayDims = 1
		}
	}

	if status := compatibleValueRankArrayDimensions(vb.ValueRank, arrayDims); status.IsBad() {
		return status
	}
	if status := compatibleValueRanks(vb.ValueRank, vtBody.ValueRank); status.IsBad() {
		return status
	}
	if status := compatibleArrayDimensions(vb.ArrayDimensions, vtBody.ArrayDimensions); status.IsBad() {
		return status
	}

	if vb.ValueSource == ua.SourceData {
		coerced, status := typeCheckValue(vb.DataType, vb.ValueRank, vb.ArrayDimensions, vb.Value)
		if status.IsBad() {
			return status
		}
		vb.Value = coerced
	}
	return ua.Good
}

// readValueAttribute returns the variable's current value, reading
// through its DataSource if ValueSource is SourceDataSource (spec
// §4.F step 5).
func readValueAttribute(vb *ua.VariableBody, id ua.NodeID) (ua.Value, ua.StatusCode) {
	if vb.ValueSource == ua.SourceDataSource {
		if vb.DataSource.Read == nil {
			return ua.Value{}, ua.Good
		}
		return vb.DataSource.Read(id)
	}
	return vb.Value, ua.Good
}

// synthesizeNullValue builds the "empty array" or "zero scalar"
// placeholder value the type checker installs when a variable's
// value is empty but its dataType is concrete (spec §4.F step 5).
func synthesizeNullValue(dataType ua.NodeID, valueRank ua.ValueRank) ua.Value {
	if valueRank == 1 {
		return ua.Value{DataType: dataType, ValueRank: valueRank, IsArray: true, Array: []any{}}
	}
	return ua.Value{DataType: dataType, ValueRank: valueRank, Scalar: zeroValueFor(dataType)}
}

// zeroValueFor returns a zero-initialized scalar for the built-in
// numeric types typeCheckValue also normalizes; unrecognized types get
// a nil scalar, matching the C source's UA_init over the type's memory
// layout for types this core does not special-case.
func zeroValueFor(dataType ua.NodeID) any {
	switch dataType {
	case IDInt32, IDUInt32, IDInt64, IDUInt64:
		return int64(0)
	case IDFloat, IDDouble:
		return float64(0)
	default:
		return nil
	}
}

// typeCheckValue coerces a scalar value to the Go numeric
// representation its declared dataType calls for, using
// pkg/convert's widening helpers (adapted from the teacher's
// convert.ToFloat64/ToInt64). Non-numeric and array values pass
// through unchanged — this core's in-memory Value stores `any`
// rather than a wire-typed buffer, so there is no struct layout to
// reinterpret the way the C source's UA_Variant coercion does; the
// one piece of real normalization worth doing at this layer is
// accepting an int literal for a Double field, or vice versa, instead
// of rejecting it as a type mismatch.
func typeCheckValue(dataType ua.NodeID, valueRank ua.ValueRank, _ []uint32, value ua.Value) (ua.Value, ua.StatusCode) {
	if value.IsArray || value.Scalar == nil {
		return value, ua.Good
	}
	switch dataType {
	case IDFloat, IDDouble:
		f, ok := convert.ToFloat64(value.Scalar)
		if !ok {
			return value, ua.BadTypeMismatch
		}
		value.Scalar = f
	case IDInt32, IDUInt32, IDInt64, IDUInt64:
		i, ok := convert.ToInt64(value.Scalar)
		if !ok {
			return value, ua.BadTypeMismatch
		}
		value.Scalar = i
	}
	return value, ua.Good
}

// compatibleValueRankArrayDimensions checks valueRank against the
// number of array dimensions actually present (spec §4.F step 7,
// supplementing spec.md by naming the predicate the C source factors
// out as its own function).
func compatibleValueRankArrayDimensions(valueRank ua.ValueRank, arrayDimsLen int) ua.StatusCode {
	switch {
	case valueRank == ua.ValueRankScalarOrOneDimension:
		if arrayDimsLen > 1 {
			return ua.BadTypeMismatch
		}
	case valueRank == ua.ValueRankAny:
		// no constraint
	case valueRank == ua.ValueRankScalar:
		if arrayDimsLen != 0 {
			return ua.BadTypeMismatch
		}
	case valueRank == ua.ValueRankUnspecified:
		// no constraint; "one or more dimensions, unconstrained"
	case valueRank >= 1:
		if arrayDimsLen != int(valueRank) {
			return ua.BadTypeMismatch
		}
	default:
		return ua.BadTypeMismatch
	}
	return ua.Good
}

// compatibleValueRanks checks a node's valueRank against its variable
// type's valueRank (spec §4.F step 8).
func compatibleValueRanks(nodeRank, typeRank ua.ValueRank) ua.StatusCode {
	if typeRank == ua.ValueRankAny {
		return ua.Good
	}
	if typeRank == ua.ValueRankScalarOrOneDimension {
		if nodeRank == ua.ValueRankScalar || nodeRank == 1 || nodeRank == ua.ValueRankScalarOrOneDimension {
			return ua.Good
		}
		return ua.BadTypeMismatch
	}
	if nodeRank == typeRank {
		return ua.Good
	}
	return ua.BadTypeMismatch
}

// compatibleArrayDimensions checks pointwise equality where both sides
// specify a dimension; 0 on the variable-type side means
// "unconstrained" for that dimension (spec §4.F step 9).
func compatibleArrayDimensions(nodeDims, typeDims []uint32) ua.StatusCode {
	if len(typeDims) == 0 {
		return ua.Good
	}
	if len(nodeDims) == 0 {
		return ua.Good
	}
	if len(nodeDims) != len(typeDims) {
		return ua.BadTypeMismatch
	}
	for i, td := range typeDims {
		if td == 0 {
			continue
		}
		if nodeDims[i] != td {
			return ua.BadTypeMismatch
		}
	}
	return ua.Good
}
