package runtimeenv

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/rpc/agentrpc"
)

func testProvisioner(url string) *Provisioner {
	p := NewProvisioner(url)
	p.initialInterval = time.Millisecond
	return p
}

func replyWith(t *testing.T, w http.ResponseWriter, reply *agentrpc.GetOrCreateRuntimeEnvReply) {
	t.Helper()
	body, err := proto.Marshal(reply)
	require.NoError(t, err)
	_, _ = w.Write(body)
}

func TestGetOrCreateRetriesThenSucceeds(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req agentrpc.GetOrCreateRuntimeEnvRequest
		require.NoError(t, proto.Unmarshal(body, &req))
		assert.Equal(t, []byte("ray_client_server_23001"), req.GetJobId())
		assert.Equal(t, "client_server", req.GetSourceProcess())
		assert.Equal(t, `{"pip":["requests"]}`, req.GetSerializedRuntimeEnv())

		replyWith(t, w, &agentrpc.GetOrCreateRuntimeEnvReply{
			Status:                      agentrpc.AgentRpcStatus_AGENT_RPC_STATUS_OK,
			SerializedRuntimeEnvContext: "ctx-xyz",
		})
	}))
	defer srv.Close()

	p := testProvisioner(srv.URL)
	envContext, err := p.GetOrCreate(ctx, `{"pip":["requests"]}`, "", 23001)
	require.NoError(t, err)
	assert.Equal(t, "ctx-xyz", envContext)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetOrCreateFailedReplyAbortsImmediately(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		replyWith(t, w, &agentrpc.GetOrCreateRuntimeEnvReply{
			Status:       agentrpc.AgentRpcStatus_AGENT_RPC_STATUS_FAILED,
			ErrorMessage: "bad env",
		})
	}))
	defer srv.Close()

	p := testProvisioner(srv.URL)
	_, err := p.GetOrCreate(ctx, `{"pip":["nope"]}`, "", 23002)
	assert.ErrorIs(t, err, ErrAgentFailed)
	assert.ErrorContains(t, err, "bad env")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrCreateUnknownStatusIsFatal(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		replyWith(t, w, &agentrpc.GetOrCreateRuntimeEnvReply{
			Status: agentrpc.AgentRpcStatus_AGENT_RPC_STATUS_UNSPECIFIED,
		})
	}))
	defer srv.Close()

	p := testProvisioner(srv.URL)
	_, err := p.GetOrCreate(ctx, `{"pip":["x"]}`, "", 23003)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAgentUnreachable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrCreateExhaustsRetries(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := testProvisioner(srv.URL)
	_, err := p.GetOrCreate(ctx, `{"pip":["x"]}`, "", 23004)
	assert.ErrorIs(t, err, ErrAgentUnreachable)
	// Initial attempt plus five retries.
	assert.Equal(t, int32(6), atomic.LoadInt32(&calls))
}

func TestGetOrCreateSkipsEmptyEnv(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("agent must not be called for an empty runtime env")
	}))
	defer srv.Close()

	p := testProvisioner(srv.URL)
	for _, env := range []string{"", "{}"} {
		envContext, err := p.GetOrCreate(ctx, env, "", 23005)
		require.NoError(t, err)
		assert.Empty(t, envContext)
	}
}
