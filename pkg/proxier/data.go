package proxier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/pkg/sessions"
	"github.com/raygate/raygate/rpc/clientrpc"
)

// JobPrepFunc is the environment-prep hook applied to the opaque job config
// carried in a session's init message. The default is the identity; the hook
// must not depend on interpreting the payload.
type JobPrepFunc func(jobConfig []byte) ([]byte, error)

// dataServer terminates the Datapath service, the session entry point: the
// first stream for a client registers and starts its backend, and the stream
// end starts the reconnect grace countdown.
type dataServer struct {
	sessions *sessions.Manager
	prep     JobPrepFunc

	// baseCtx outlives individual streams; finalization logs through it after
	// the stream context is gone.
	baseCtx context.Context

	// stopped wakes all grace-period waits on proxier shutdown.
	stopped <-chan struct{}
}

func newDataServer(baseCtx context.Context, mgr *sessions.Manager, stopped <-chan struct{}) *dataServer {
	return &dataServer{
		sessions: mgr,
		prep:     func(jobConfig []byte) ([]byte, error) { return jobConfig, nil },
		baseCtx:  baseCtx,
		stopped:  stopped,
	}
}

// jobSpecFromInit pulls the runtime-env description out of the init kwargs.
// The job config itself stays opaque.
func jobSpecFromInit(init *clientrpc.InitRequest, config []byte) sessions.JobSpec {
	spec := sessions.JobSpec{Config: config}
	var kwargs map[string]json.RawMessage
	if err := json.Unmarshal([]byte(init.GetInitKwargsJson()), &kwargs); err == nil {
		if env, ok := kwargs["runtime_env"]; ok {
			spec.SerializedRuntimeEnv = string(env)
		}
		if cfg, ok := kwargs["runtime_env_config"]; ok {
			spec.RuntimeEnvConfig = string(cfg)
		}
	}
	return spec
}

// prepInit runs the job config through the prep hook and rebuilds the init
// message around the result, preserving the init kwargs and the grace period.
func (s *dataServer) prepInit(init *clientrpc.InitRequest) (*clientrpc.InitRequest, sessions.JobSpec, error) {
	config, err := s.prep(init.GetJobConfig())
	if err != nil {
		return nil, sessions.JobSpec{}, err
	}
	mutated := &clientrpc.InitRequest{
		JobConfig:            config,
		InitKwargsJson:       init.GetInitKwargsJson(),
		ReconnectGracePeriod: init.GetReconnectGracePeriod(),
	}
	return mutated, jobSpecFromInit(init, config), nil
}

func (s *dataServer) Datapath(stream clientrpc.RayletDataStreamer_DatapathServer) error {
	ctx := stream.Context()
	id := clientID(ctx)
	if id == "" {
		dlog.Warnf(ctx, "datapath stream opened without client_id metadata")
		return nil
	}
	recon := reconnecting(ctx)
	startTime := time.Now()

	if recon {
		if !s.sessions.TouchSeen(id, startTime) {
			return status.Errorf(codes.NotFound, "session for client %s already cleaned up", id)
		}
		dlog.Infof(ctx, "client %s reconnected", id)
	} else {
		if _, err := s.sessions.Register(id); err != nil {
			if errors.Is(err, sessions.ErrDuplicateClient) {
				return status.Error(codes.AlreadyExists, err.Error())
			}
			return status.Error(codes.Internal, err.Error())
		}
		s.sessions.RecordNew(id, startTime)
		dlog.Infof(ctx, "new session for client %s", id)
	}

	cleanupRequested := false
	defer s.finalize(id, startTime, &cleanupRequested)

	var firstReq *clientrpc.DataRequest
	if !recon {
		req, err := stream.Recv()
		if err != nil {
			if err == io.EOF || isClientCancel(err) {
				return nil
			}
			return err
		}
		init := req.GetInit()
		if init == nil {
			return status.Error(codes.FailedPrecondition, "first datapath message must be an init request")
		}
		s.sessions.SetGrace(id, init.GetReconnectGracePeriod())

		mutated, spec, err := s.prepInit(init)
		if err == nil {
			var running bool
			running, err = s.sessions.Start(ctx, id, spec)
			if err == nil && !running {
				err = sessions.ErrStartupFailed
			}
		}
		if err != nil {
			dlog.Errorf(ctx, "session init for client %s failed: %v", id, err)
			_ = stream.Send(&clientrpc.DataResponse{
				ReqId: req.GetReqId(),
				Type: &clientrpc.DataResponse_Init{
					Init: &clientrpc.InitResponse{Ok: false, Msg: err.Error()},
				},
			})
			return nil
		}
		firstReq = &clientrpc.DataRequest{
			ReqId: req.GetReqId(),
			Type:  &clientrpc.DataRequest_Init{Init: mutated},
		}
	}

	conn := s.sessions.ChannelFor(ctx, id)
	if conn == nil {
		return status.Errorf(codes.NotFound, "no channel for client %s", id)
	}

	backend, err := clientrpc.NewRayletDataStreamerClient(conn).Datapath(datapathOutgoingCtx(ctx, id, recon))
	if err != nil {
		return s.fail(ctx, id, err, &cleanupRequested)
	}

	go func() {
		if firstReq != nil {
			if err := backend.Send(firstReq); err != nil {
				return
			}
		}
		for {
			req, err := stream.Recv()
			if err != nil {
				if err != io.EOF && !isClientCancel(err) {
					dlog.Debugf(ctx, "datapath request pump for client %s: %v", id, err)
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
		resp, err := backend.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return s.fail(ctx, id, err, &cleanupRequested)
		}
		if s.observeResponse(resp) {
			cleanupRequested = true
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

// observeResponse inspects a backend response before it is forwarded. It
// rewrites the num_clients of a connection_info response, since the backend
// only ever sees one client, and reports whether the backend explicitly
// requested cleanup.
func (s *dataServer) observeResponse(resp *clientrpc.DataResponse) (cleanupRequested bool) {
	switch t := resp.Type.(type) {
	case *clientrpc.DataResponse_ConnectionCleanup:
		return true
	case *clientrpc.DataResponse_ConnectionInfo:
		t.ConnectionInfo.NumClients = int32(s.sessions.NumClients())
	}
	return false
}

// fail propagates a forwarding error to the caller. An unrecoverable error
// also latches the cleanup request so finalization skips the reconnect grace
// wait. The latch is local to the stream; a session another stream already
// cleaned up stays untouched.
func (s *dataServer) fail(ctx context.Context, id string, err error, cleanupRequested *bool) error {
	perr, recoverable := propagate(err)
	if !recoverable {
		dlog.Warnf(ctx, "unrecoverable datapath error for client %s: %v", id, err)
		*cleanupRequested = true
	} else {
		dlog.Infof(ctx, "recoverable datapath error for client %s: %v", id, err)
	}
	return perr
}

// finalize always runs when a Datapath stream ends. Unless the backend
// explicitly requested cleanup, it waits out the client's reconnect grace
// period (interruptible by shutdown) before handing cleanup to the manager,
// which skips it when a newer stream took the session over.
func (s *dataServer) finalize(id string, startTime time.Time, cleanupRequested *bool) {
	ctx := s.baseCtx
	if !*cleanupRequested {
		if grace, ok := s.sessions.Grace(id); ok && grace > 0 {
			dlog.Debugf(ctx, "waiting up to %ds for client %s to reconnect", grace, id)
			select {
			case <-time.After(time.Duration(grace) * time.Second):
			case <-s.stopped:
			}
		}
	}
	s.sessions.FinalizeStream(ctx, id, startTime)
}
