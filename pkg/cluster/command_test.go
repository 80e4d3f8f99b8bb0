package cluster

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/dlib/dlog"
)

func TestServerCmdArgs(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	cmd := ServerCmd{
		Address:           "10.0.0.1:6379",
		Port:              23005,
		RuntimeEnvContext: "ctx-xyz",
		RedisPassword:     "hunter2",
	}.Build(ctx)

	assert.Equal(t, []string{
		"python",
		"-m", "ray.util.client.server",
		"--address=10.0.0.1:6379",
		"--host=127.0.0.1",
		"--port=23005",
		"--mode=specific-server",
		"--serialized-runtime-env-context=ctx-xyz",
		"--redis-password=hunter2",
	}, cmd.Args)
}

func TestServerCmdOmitsEmptyFlags(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	cmd := ServerCmd{Address: "10.0.0.1:6379", Port: 23006}.Build(ctx)
	assert.NotContains(t, cmd.Args, "--serialized-runtime-env-context=")
	for _, a := range cmd.Args {
		assert.NotContains(t, a, "--redis-")
	}
}

func TestOutputFilesNaming(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	stdout, stderr, err := OutputFiles(dir, 23007)
	require.NoError(t, err)
	defer stdout.Close()
	defer stderr.Close()

	_, err = os.Stat(filepath.Join(dir, "ray_client_server_23007.out"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "ray_client_server_23007.err"))
	assert.NoError(t, err)
}

func TestInfoLazyBootstrap(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	calls := 0
	info := NewInfo("", "", func(context.Context) (string, string, error) {
		calls++
		return "10.0.0.2:6379", "/tmp/bootstrapped", nil
	})

	addr, err := info.Address(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2:6379", addr)

	logDir, err := info.LogDir(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bootstrapped", logDir)

	// Bootstrap ran exactly once.
	assert.Equal(t, 1, calls)
}

func TestInfoStaticAddressSkipsBootstrap(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	info := NewInfo("10.0.0.1:6379", "/tmp/static", func(context.Context) (string, string, error) {
		t.Error("bootstrap must not run with a static address")
		return "", "", nil
	})

	addr, err := info.Address(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:6379", addr)
}
