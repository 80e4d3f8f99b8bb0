package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"
)

func TestBackendSetResultFirstCallWins(t *testing.T) {
	b := newBackend(23000, nil)
	assert.False(t, b.Ready())

	b.SetResult(nil)
	assert.True(t, b.Ready())
	require.NoError(t, b.WaitReady(context.Background()))

	// A later failure must not change the outcome.
	b.SetResult(errors.New("too late"))
	assert.NoError(t, b.WaitReady(context.Background()))
}

func TestBackendWaitReadyFailure(t *testing.T) {
	b := newBackend(23000, nil)
	go func() {
		time.Sleep(10 * time.Millisecond)
		b.SetResult(errors.New("spawn blew up"))
	}()
	err := b.WaitReady(context.Background())
	assert.ErrorIs(t, err, ErrStartupFailed)
}

func TestBackendWaitReadyHonorsContext(t *testing.T) {
	b := newBackend(23000, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := b.WaitReady(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBackendKillBeforeAttachIsNoop(t *testing.T) {
	b := newBackend(23000, nil)
	b.Kill()

	_, exited := b.PollExit()
	assert.False(t, exited)
}

func TestBackendAttachCollectsExitCode(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	b := newBackend(23000, nil)

	cmd := dexec.CommandContext(ctx, "sh", "-c", "exit 3")
	require.NoError(t, cmd.Start())
	b.Attach(cmd)

	require.Eventually(t, func() bool {
		_, exited := b.PollExit()
		return exited
	}, 5*time.Second, 10*time.Millisecond)

	code, exited := b.PollExit()
	assert.True(t, exited)
	assert.Equal(t, 3, code)
}
