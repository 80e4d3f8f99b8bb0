package proxier

import (
	"context"
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

	"github.com/raygate/raygate/rpc/clientrpc"
)

func testLogsClient(t *testing.T, s *logsServer) clientrpc.RayletLogStreamerClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	clientrpc.RegisterRayletLogStreamerServer(srv, s)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return clientrpc.NewRayletLogStreamerClient(conn)
}

func TestLogstreamWithoutBackendIsNotFound(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	s := newLogsServer(absentSessions{})
	s.channelAttempts = 3
	s.channelRetryInterval = time.Millisecond

	cctx := metadata.AppendToOutgoingContext(ctx, clientIDKey, "c1")
	stream, err := testLogsClient(t, s).Logstream(cctx)
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestLogstreamWithoutClientIDEndsCleanly(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)

	stream, err := testLogsClient(t, newLogsServer(panickySessions{})).Logstream(ctx)
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.Equal(t, io.EOF, err)
}
