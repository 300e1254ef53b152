package ua

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeIDEqual(t *testing.T) {
	a := NewNumericNodeID(1, 100)
	b := NewNumericNodeID(1, 100)
	c := NewNumericNodeID(2, 100)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	opaqueA := NodeID{Kind: IDOpaque, Opaque: string([]byte{1, 2, 3})}
	opaqueB := NodeID{Kind: IDOpaque, Opaque: string([]byte{1, 2, 3})}
	opaqueC := NodeID{Kind: IDOpaque, Opaque: string([]byte{1, 2, 4})}
	assert.True(t, opaqueA.Equal(opaqueB))
	assert.False(t, opaqueA.Equal(opaqueC))
}

func TestNodeIDIsNull(t *testing.T) {
	assert.True(t, NodeID{}.IsNull())
	assert.False(t, NewNumericNodeID(0, 1).IsNull())
	assert.False(t, NewNumericNodeID(1, 0).IsNull())
}

func TestNodeIDIsUnassigned(t *testing.T) {
	assert.True(t, NodeID{NamespaceIndex: 3}.IsUnassigned())
	assert.False(t, NewNumericNodeID(3, 1000).IsUnassigned())
	assert.False(t, NewStringNodeID(3, "x").IsUnassigned())
}

func TestExpandedNodeIDLocal(t *testing.T) {
	id := NewNumericNodeID(1, 42)
	e := Local(id)
	assert.True(t, e.IsLocal())
	assert.Equal(t, id, e.NodeID)

	remote := ExpandedNodeID{NodeID: id, ServerIndex: 2}
	assert.False(t, remote.IsLocal())
}

func TestNodeIDString(t *testing.T) {
	assert.Equal(t, "ns=0;i=58", NewNumericNodeID(0, 58).String())
	assert.Equal(t, "ns=1;s=Temperature", NewStringNodeID(1, "Temperature").String())
}
