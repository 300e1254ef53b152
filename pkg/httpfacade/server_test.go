package httpfacade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaspace/uaspace/pkg/ua"
)

func TestParseNodeID(t *testing.T) {
	id, err := parseNodeID("ns=1;i=1001")
	require.NoError(t, err)
	assert.Equal(t, ua.NewNumericNodeID(1, 1001), id)

	id, err = parseNodeID("ns=2;s=Temperature")
	require.NoError(t, err)
	assert.Equal(t, ua.NewStringNodeID(2, "Temperature"), id)

	id, err = parseNodeID("i=58")
	require.NoError(t, err)
	assert.Equal(t, ua.NewNumericNodeID(0, 58), id)

	_, err = parseNodeID("garbage")
	assert.ErrorIs(t, err, errInvalidNodeID)
}
