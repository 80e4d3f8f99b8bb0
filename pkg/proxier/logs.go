package proxier

import (
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/rpc/clientrpc"
)

const (
	// The log client races the data client at session start, so the channel
	// may not exist yet when the log stream arrives.
	logChannelAttempts      = 5
	logChannelRetryInterval = 2 * time.Second
)

// logsServer terminates the log-streaming service and forwards it verbatim.
type logsServer struct {
	sessions SessionChannels

	channelAttempts      int
	channelRetryInterval time.Duration
}

func newLogsServer(sessions SessionChannels) *logsServer {
	return &logsServer{
		sessions:             sessions,
		channelAttempts:      logChannelAttempts,
		channelRetryInterval: logChannelRetryInterval,
	}
}

func (s *logsServer) Logstream(stream clientrpc.RayletLogStreamer_LogstreamServer) error {
	ctx := stream.Context()
	id := clientID(ctx)
	if id == "" {
		dlog.Warnf(ctx, "log stream opened without client_id metadata")
		return nil
	}

	var conn *grpc.ClientConn
	for i := 0; i < s.channelAttempts; i++ {
		if conn = s.sessions.ChannelFor(ctx, id); conn != nil {
			break
		}
		dlog.Debugf(ctx, "log stream for client %s is waiting for a channel (attempt %d/%d)",
			id, i+1, s.channelAttempts)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.channelRetryInterval):
		}
	}
	if conn == nil {
		return status.Errorf(codes.NotFound, "no channel for client %s", id)
	}

	backend, err := clientrpc.NewRayletLogStreamerClient(conn).Logstream(outgoingCtx(ctx))
	if err != nil {
		perr, _ := propagate(err)
		return perr
	}

	go func() {
		for {
			req, err := stream.Recv()
			if err != nil {
				if err != io.EOF && !isClientCancel(err) {
					dlog.Debugf(ctx, "log request pump for client %s: %v", id, err)
				}
				_ = backend.CloseSend()
				return
			}
			if err := backend.Send(req); err != nil {
				return
			}
		}
	}()

	for {
		data, err := backend.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			perr, _ := propagate(err)
			return perr
		}
		if err := stream.Send(data); err != nil {
			return err
		}
	}
}
