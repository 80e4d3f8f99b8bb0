package proxier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func incoming(pairs ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(pairs...))
}

func TestClientIDExtraction(t *testing.T) {
	assert.Equal(t, "c1", clientID(incoming(clientIDKey, "c1")))
	assert.Empty(t, clientID(incoming("other", "x")))
	assert.Empty(t, clientID(context.Background()))
}

func TestReconnectingParse(t *testing.T) {
	assert.True(t, reconnecting(incoming(reconnectingKey, "True")))
	assert.True(t, reconnecting(incoming(reconnectingKey, "true")))
	assert.True(t, reconnecting(incoming(reconnectingKey, "1")))
	assert.False(t, reconnecting(incoming(reconnectingKey, "False")))
	assert.False(t, reconnecting(incoming(clientIDKey, "c1")))
	assert.False(t, reconnecting(context.Background()))
}

func TestDatapathOutgoingCtx(t *testing.T) {
	ctx := datapathOutgoingCtx(incoming(clientIDKey, "c1", "extra", "kept"), "c1", true)
	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"c1"}, md.Get(clientIDKey))
	// The backend parses Python-style stringified booleans, capitalized.
	assert.Equal(t, []string{"True"}, md.Get(reconnectingKey))
	assert.Equal(t, []string{"kept"}, md.Get("extra"))

	ctx = datapathOutgoingCtx(incoming(clientIDKey, "c1"), "c1", false)
	md, ok = metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"False"}, md.Get(reconnectingKey))
}
