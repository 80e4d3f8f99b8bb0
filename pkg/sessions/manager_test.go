package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/pkg/cluster"
)

type nullEnvs struct{}

func (nullEnvs) GetOrCreate(_ context.Context, _, _ string, _ uint16) (string, error) {
	return "", nil
}

func testManager(t *testing.T, ctx context.Context) *Manager {
	t.Helper()
	return NewManager(ctx, Config{
		PortLo:         28300,
		PortHi:         28310,
		ChannelTimeout: 200 * time.Millisecond,
	}, cluster.NewInfo("10.0.0.1:6379", t.TempDir(), nil), nullEnvs{})
}

func TestManagerRegisterDuplicate(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := testManager(t, ctx)

	b, err := m.Register("c1")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, b, m.Lookup("c1"))

	_, err = m.Register("c1")
	assert.ErrorIs(t, err, ErrDuplicateClient)
}

func TestManagerReRegisterAfterCleanup(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := testManager(t, ctx)

	start := time.Now()
	_, err := m.Register("c1")
	require.NoError(t, err)
	m.RecordNew("c1", start)
	assert.Equal(t, 1, m.NumClients())

	assert.True(t, m.FinalizeStream(ctx, "c1", start))
	assert.Equal(t, 0, m.NumClients())
	assert.Nil(t, m.Lookup("c1"))
	assert.Len(t, m.ports.Free(), 10)

	_, err = m.Register("c1")
	assert.NoError(t, err)
}

func TestManagerFinalizeSkipsNewerStream(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := testManager(t, ctx)

	oldStart := time.Now()
	_, err := m.Register("c1")
	require.NoError(t, err)
	m.RecordNew("c1", oldStart)

	// A reconnect moves last-seen forward; the old stream's finalization
	// must then leave the session alone.
	newStart := oldStart.Add(time.Second)
	assert.True(t, m.TouchSeen("c1", newStart))

	assert.False(t, m.FinalizeStream(ctx, "c1", oldStart))
	assert.Equal(t, 1, m.NumClients())
	assert.NotNil(t, m.Lookup("c1"))

	assert.True(t, m.FinalizeStream(ctx, "c1", newStart))
	assert.Equal(t, 0, m.NumClients())
}

func TestManagerTouchSeenAfterCleanup(t *testing.T) {
	m := testManager(t, dlog.NewTestContext(t, false))

	assert.False(t, m.TouchSeen("gone", time.Now()))
	assert.Equal(t, 0, m.NumClients())
	assert.Nil(t, m.Lookup("gone"))
}

func TestManagerChannelForUnknownClient(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := testManager(t, ctx)
	assert.Nil(t, m.ChannelFor(ctx, "nobody"))
}

func TestManagerChannelForStartupFailure(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := testManager(t, ctx)

	b, err := m.Register("c1")
	require.NoError(t, err)
	assert.False(t, m.HasChannel("c1"))

	b.SetResult(ErrStartupFailed)
	assert.True(t, m.HasChannel("c1"))
	assert.Nil(t, m.ChannelFor(ctx, "c1"))
}

func TestManagerStartSpawnFailure(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := NewManager(ctx, Config{
		PortLo: 28320,
		PortHi: 28330,
		Python: "raygate-no-such-interpreter",
	}, cluster.NewInfo("10.0.0.1:6379", t.TempDir(), nil), nullEnvs{})

	b, err := m.Register("c1")
	require.NoError(t, err)

	running, err := m.Start(ctx, "c1", JobSpec{})
	assert.False(t, running)
	assert.Error(t, err)
	assert.ErrorIs(t, b.WaitReady(ctx), ErrStartupFailed)
}

func TestManagerReaperReclaimsExitedBackend(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := testManager(t, ctx)

	b, err := m.Register("c1")
	require.NoError(t, err)

	cmd := dexec.CommandContext(ctx, "sh", "-c", "exit 0")
	require.NoError(t, cmd.Start())
	b.Attach(cmd)
	b.SetResult(nil)

	require.Eventually(t, func() bool {
		_, exited := b.PollExit()
		return exited
	}, 5*time.Second, 10*time.Millisecond)

	m.reap(ctx)
	assert.Nil(t, m.Lookup("c1"))
	assert.Len(t, m.ports.Free(), 10)
}

func TestManagerReaperDropsSessionBookkeeping(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := testManager(t, ctx)

	b, err := m.Register("c1")
	require.NoError(t, err)
	m.RecordNew("c1", time.Now())
	m.SetGrace("c1", 30)

	cmd := dexec.CommandContext(ctx, "sh", "-c", "exit 0")
	require.NoError(t, cmd.Start())
	b.Attach(cmd)
	b.SetResult(nil)

	require.Eventually(t, func() bool {
		_, exited := b.PollExit()
		return exited
	}, 5*time.Second, 10*time.Millisecond)

	m.reap(ctx)
	assert.Equal(t, 0, m.NumClients())
	assert.False(t, m.TouchSeen("c1", time.Now()))
	_, ok := m.Grace("c1")
	assert.False(t, ok)
}

func TestManagerShutdownAll(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	m := testManager(t, ctx)

	b1, err := m.Register("c1")
	require.NoError(t, err)
	b2, err := m.Register("c2")
	require.NoError(t, err)

	m.ShutdownAll(ctx)
	assert.ErrorIs(t, b1.WaitReady(ctx), ErrStartupFailed)
	assert.ErrorIs(t, b2.WaitReady(ctx), ErrStartupFailed)
}
