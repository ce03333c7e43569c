package nanorpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReply(t *testing.T) {
	reply, err := decodeReply([]byte(`{"balance":"100","pending":"0"}`))
	require.NoError(t, err)
	assert.Equal(t, "100", reply.String("balance"))
	assert.Equal(t, "0", reply.String("pending"))
	assert.Empty(t, reply.NodeError())
}

func TestDecodeReplyMalformed(t *testing.T) {
	_, err := decodeReply([]byte(`not json`))
	require.Error(t, err)
}

func TestReplyNodeError(t *testing.T) {
	reply, err := decodeReply([]byte(`{"error":"Wallet is locked"}`))
	require.NoError(t, err)
	assert.Equal(t, "Wallet is locked", reply.NodeError())
}

func TestReplyAccessors(t *testing.T) {
	reply, err := decodeReply([]byte(`{"block":{"type":"state"},"count":"7"}`))
	require.NoError(t, err)

	assert.Equal(t, "7", reply.String("count"))
	assert.Empty(t, reply.String("missing"))
	assert.Empty(t, reply.String("block"), "non-string value reads as empty")

	m := reply.Map("block")
	require.NotNil(t, m)
	assert.Equal(t, "state", m["type"])
	assert.Nil(t, reply.Map("count"))
	assert.Nil(t, reply.Map("missing"))
}
