package ua

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueIsEmpty(t *testing.T) {
	assert.True(t, Value{}.IsEmpty())
	assert.False(t, Value{Scalar: int64(0)}.IsEmpty())
	assert.False(t, Value{Array: []any{}}.IsEmpty())
}

func TestValueRankConstants(t *testing.T) {
	assert.Equal(t, ValueRank(-3), ValueRankScalarOrOneDimension)
	assert.Equal(t, ValueRank(-2), ValueRankAny)
	assert.Equal(t, ValueRank(-1), ValueRankScalar)
	assert.Equal(t, ValueRank(0), ValueRankUnspecified)
}

func TestStorageModeZeroValueIsOwned(t *testing.T) {
	var v Value
	assert.Equal(t, Owned, v.Storage)
}
