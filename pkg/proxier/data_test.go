package proxier

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/pkg/cluster"
	"github.com/raygate/raygate/pkg/sessions"
	"github.com/raygate/raygate/rpc/clientrpc"
)

type noEnvs struct{}

func (noEnvs) GetOrCreate(_ context.Context, _, _ string, _ uint16) (string, error) {
	return "", nil
}

type failingEnvs struct{}

func (failingEnvs) GetOrCreate(_ context.Context, _, _ string, _ uint16) (string, error) {
	return "", errors.New("agent rejected the env")
}

func testDataServer(t *testing.T, ctx context.Context) (*dataServer, *sessions.Manager) {
	t.Helper()
	mgr := sessions.NewManager(ctx, sessions.Config{
		PortLo: 28400,
		PortHi: 28410,
	}, cluster.NewInfo("10.0.0.1:6379", t.TempDir(), nil), noEnvs{})
	return newDataServer(ctx, mgr, make(chan struct{})), mgr
}

func TestPrepInitIsARoundTrip(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	s, _ := testDataServer(t, ctx)

	in := &clientrpc.InitRequest{
		JobConfig:            []byte{0x80, 0x04, 0x95, 0x01},
		InitKwargsJson:       `{"namespace":"ns"}`,
		ReconnectGracePeriod: 30,
	}
	out, spec, err := s.prepInit(in)
	require.NoError(t, err)
	assert.Equal(t, in.GetJobConfig(), out.GetJobConfig())
	assert.Equal(t, in.GetInitKwargsJson(), out.GetInitKwargsJson())
	assert.Equal(t, in.GetReconnectGracePeriod(), out.GetReconnectGracePeriod())
	assert.Equal(t, in.GetJobConfig(), spec.Config)
}

func TestJobSpecExtractsRuntimeEnv(t *testing.T) {
	init := &clientrpc.InitRequest{
		InitKwargsJson: `{"runtime_env":{"pip":["requests"]},"runtime_env_config":{"setup_timeout_seconds":60}}`,
	}
	spec := jobSpecFromInit(init, nil)
	assert.Equal(t, `{"pip":["requests"]}`, spec.SerializedRuntimeEnv)
	assert.Equal(t, `{"setup_timeout_seconds":60}`, spec.RuntimeEnvConfig)
}

func TestJobSpecToleratesOpaqueKwargs(t *testing.T) {
	spec := jobSpecFromInit(&clientrpc.InitRequest{InitKwargsJson: "not json"}, []byte("cfg"))
	assert.Empty(t, spec.SerializedRuntimeEnv)
	assert.Equal(t, []byte("cfg"), spec.Config)
}

func TestObserveResponseRewritesNumClients(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	s, mgr := testDataServer(t, ctx)
	mgr.RecordNew("c1", time.Now())
	mgr.RecordNew("c2", time.Now())

	resp := &clientrpc.DataResponse{
		Type: &clientrpc.DataResponse_ConnectionInfo{
			ConnectionInfo: &clientrpc.ConnectionInfoResponse{NumClients: 1},
		},
	}
	cleanup := s.observeResponse(resp)
	assert.False(t, cleanup)
	assert.Equal(t, int32(2), resp.GetConnectionInfo().GetNumClients())
}

func TestObserveResponseLatchesCleanup(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	s, _ := testDataServer(t, ctx)

	cleanup := s.observeResponse(&clientrpc.DataResponse{
		Type: &clientrpc.DataResponse_ConnectionCleanup{
			ConnectionCleanup: &clientrpc.ConnectionCleanupResponse{},
		},
	})
	assert.True(t, cleanup)

	cleanup = s.observeResponse(&clientrpc.DataResponse{
		Type: &clientrpc.DataResponse_Get{Get: &clientrpc.GetResponse{Valid: true}},
	})
	assert.False(t, cleanup)
}

func TestFinalizeDecrementsOnce(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	s, mgr := testDataServer(t, ctx)

	start := time.Now()
	_, err := mgr.Register("c1")
	require.NoError(t, err)
	mgr.RecordNew("c1", start)
	mgr.SetGrace("c1", 0)

	cleanup := false
	s.finalize("c1", start, &cleanup)
	assert.Equal(t, 0, mgr.NumClients())

	// A second finalization of the same stream is a no-op.
	s.finalize("c1", start, &cleanup)
	assert.Equal(t, 0, mgr.NumClients())
}

func TestFailLatchesCleanupOnUnrecoverableError(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	s, mgr := testDataServer(t, ctx)

	start := time.Now()
	_, err := mgr.Register("c1")
	require.NoError(t, err)
	mgr.RecordNew("c1", start)
	mgr.SetGrace("c1", 30)

	cleanup := false
	perr := s.fail(ctx, "c1", status.Error(codes.Unavailable, "backend restarting"), &cleanup)
	assert.Equal(t, codes.Unavailable, status.Code(perr))
	assert.False(t, cleanup)

	perr = s.fail(ctx, "c1", status.Error(codes.Internal, "boom"), &cleanup)
	assert.Equal(t, codes.Internal, status.Code(perr))
	assert.True(t, cleanup)
}

func TestFailDoesNotResurrectCleanedSession(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	s, mgr := testDataServer(t, ctx)

	start := time.Now()
	_, err := mgr.Register("c1")
	require.NoError(t, err)
	mgr.RecordNew("c1", start)
	mgr.SetGrace("c1", 30)

	// Another stream finalized the session while this one was still
	// forwarding.
	require.True(t, mgr.FinalizeStream(ctx, "c1", start))

	cleanup := false
	_ = s.fail(ctx, "c1", status.Error(codes.Internal, "boom"), &cleanup)
	assert.True(t, cleanup)
	_, ok := mgr.Grace("c1")
	assert.False(t, ok)
}

func TestDatapathInitFailureRepliesWithDiagnostic(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	mgr := sessions.NewManager(ctx, sessions.Config{
		PortLo: 28440,
		PortHi: 28450,
	}, cluster.NewInfo("10.0.0.1:6379", t.TempDir(), nil), failingEnvs{})
	s := newDataServer(ctx, mgr, make(chan struct{}))

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	clientrpc.RegisterRayletDataStreamerServer(srv, s)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	cctx := metadata.AppendToOutgoingContext(ctx, clientIDKey, "c1")
	stream, err := clientrpc.NewRayletDataStreamerClient(conn).Datapath(cctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&clientrpc.DataRequest{
		ReqId: 7,
		Type: &clientrpc.DataRequest_Init{
			Init: &clientrpc.InitRequest{InitKwargsJson: `{"runtime_env":{"pip":["x"]}}`},
		},
	}))

	resp, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, int32(7), resp.GetReqId())
	require.NotNil(t, resp.GetInit())
	assert.False(t, resp.GetInit().GetOk())
	assert.Contains(t, resp.GetInit().GetMsg(), "agent rejected the env")

	// The failure is the only response; the stream then ends cleanly.
	_, err = stream.Recv()
	assert.Equal(t, io.EOF, err)

	assert.Equal(t, 0, mgr.NumClients())
	assert.Nil(t, mgr.Lookup("c1"))
}

func TestFinalizeGraceInterruptedByShutdown(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	mgr := sessions.NewManager(ctx, sessions.Config{
		PortLo: 28420,
		PortHi: 28430,
	}, cluster.NewInfo("10.0.0.1:6379", t.TempDir(), nil), noEnvs{})
	stopped := make(chan struct{})
	s := newDataServer(ctx, mgr, stopped)

	start := time.Now()
	mgr.RecordNew("c1", start)
	mgr.SetGrace("c1", 3600)

	done := make(chan struct{})
	go func() {
		cleanup := false
		s.finalize("c1", start, &cleanup)
		close(done)
	}()
	close(stopped)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("finalize did not return after shutdown signal")
	}
	assert.Equal(t, 0, mgr.NumClients())
}
