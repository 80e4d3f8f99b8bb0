package proxier

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClientCancelTranslation(t *testing.T) {
	assert.True(t, isClientCancel(status.Error(codes.Canceled, "context canceled")))

	// Only the bare status counts; other error shapes keep propagating.
	assert.False(t, isClientCancel(context.Canceled))
	assert.False(t, isClientCancel(io.EOF))
	assert.False(t, isClientCancel(status.Error(codes.Unavailable, "nope")))
}

func TestPropagateRecoverability(t *testing.T) {
	err, recoverable := propagate(status.Error(codes.Unavailable, "backend restarting"))
	assert.True(t, recoverable)
	assert.Equal(t, codes.Unavailable, status.Code(err))

	err, recoverable = propagate(status.Error(codes.Internal, "boom"))
	assert.False(t, recoverable)
	assert.Equal(t, codes.Internal, status.Code(err))

	err, recoverable = propagate(errors.New("plain failure"))
	assert.False(t, recoverable)
	assert.Equal(t, codes.Unknown, status.Code(err))
}
