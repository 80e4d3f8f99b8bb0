package proxier

import (
	"context"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/raygate/raygate/pkg/kv"
	"github.com/raygate/raygate/rpc/clientrpc"
)

// SessionChannels is the slice of the session manager that the driver and
// log servicers need.
type SessionChannels interface {
	ChannelFor(ctx context.Context, clientID string) *grpc.ClientConn
	HasChannel(clientID string) bool
}

// driverServer terminates the control service. Every RPC is forwarded onto
// the caller's backend, except the PING cluster-info variant (answered
// locally) and the KV operations, which fall back to the shared internal KV
// while the caller has no backend yet.
type driverServer struct {
	sessions SessionChannels
	kv       kv.Store
}

func newDriverServer(sessions SessionChannels, store kv.Store) *driverServer {
	return &driverServer{sessions: sessions, kv: store}
}

// stub resolves the caller's backend channel and returns a stub plus the
// outgoing context carrying the caller's metadata.
func (s *driverServer) stub(ctx context.Context) (clientrpc.RayletDriverClient, context.Context, error) {
	id := clientID(ctx)
	if id == "" {
		return nil, nil, status.Error(codes.NotFound, "missing client_id metadata")
	}
	conn := s.sessions.ChannelFor(ctx, id)
	if conn == nil {
		return nil, nil, status.Errorf(codes.NotFound, "no channel for client %s", id)
	}
	return clientrpc.NewRayletDriverClient(conn), outgoingCtx(ctx), nil
}

// preSession reports whether the caller has no backend yet, in which case KV
// operations are answered from the shared store.
func (s *driverServer) preSession(ctx context.Context) bool {
	id := clientID(ctx)
	return id == "" || !s.sessions.HasChannel(id)
}

func (s *driverServer) Init(ctx context.Context, req *clientrpc.InitRequest) (*clientrpc.InitResponse, error) {
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.Init(octx, req)
}

func (s *driverServer) PutObject(ctx context.Context, req *clientrpc.PutRequest) (*clientrpc.PutResponse, error) {
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.PutObject(octx, req)
}

func (s *driverServer) GetObject(req *clientrpc.GetRequest, caller clientrpc.RayletDriver_GetObjectServer) error {
	stub, octx, err := s.stub(caller.Context())
	if err != nil {
		return err
	}
	backend, err := stub.GetObject(octx, req)
	if err != nil {
		perr, _ := propagate(err)
		return perr
	}
	for {
		resp, err := backend.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			perr, _ := propagate(err)
			return perr
		}
		if err := caller.Send(resp); err != nil {
			return err
		}
	}
}

func (s *driverServer) WaitObject(ctx context.Context, req *clientrpc.WaitRequest) (*clientrpc.WaitResponse, error) {
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.WaitObject(octx, req)
}

func (s *driverServer) Schedule(ctx context.Context, req *clientrpc.ClientTask) (*clientrpc.ClientTaskTicket, error) {
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.Schedule(octx, req)
}

func (s *driverServer) Terminate(ctx context.Context, req *clientrpc.TerminateRequest) (*clientrpc.TerminateResponse, error) {
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.Terminate(octx, req)
}

func (s *driverServer) ClusterInfo(ctx context.Context, req *clientrpc.ClusterInfoRequest) (*clientrpc.ClusterInfoResponse, error) {
	// Pings are answered without a backend so that the initial handshake
	// never blocks on session setup.
	if req.GetType() == clientrpc.ClusterInfoType_PING {
		return &clientrpc.ClusterInfoResponse{Json: "{}"}, nil
	}
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.ClusterInfo(octx, req)
}

func (s *driverServer) ListNamedActors(ctx context.Context, req *clientrpc.ClientListNamedActorsRequest) (*clientrpc.ClientListNamedActorsResponse, error) {
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.ListNamedActors(octx, req)
}

func (s *driverServer) store() (kv.Store, error) {
	if s.kv == nil {
		return nil, status.Error(codes.Unavailable, "no internal kv store configured")
	}
	return s.kv, nil
}

func (s *driverServer) KVPut(ctx context.Context, req *clientrpc.KVPutRequest) (*clientrpc.KVPutResponse, error) {
	if s.preSession(ctx) {
		store, err := s.store()
		if err != nil {
			return nil, err
		}
		exists, err := store.Put(ctx, req.GetKey(), req.GetValue(), req.GetOverwrite())
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &clientrpc.KVPutResponse{AlreadyExists: exists}, nil
	}
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.KVPut(octx, req)
}

func (s *driverServer) KVGet(ctx context.Context, req *clientrpc.KVGetRequest) (*clientrpc.KVGetResponse, error) {
	if s.preSession(ctx) {
		store, err := s.store()
		if err != nil {
			return nil, err
		}
		value, err := store.Get(ctx, req.GetKey())
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &clientrpc.KVGetResponse{Value: value}, nil
	}
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.KVGet(octx, req)
}

func (s *driverServer) KVDel(ctx context.Context, req *clientrpc.KVDelRequest) (*clientrpc.KVDelResponse, error) {
	if s.preSession(ctx) {
		store, err := s.store()
		if err != nil {
			return nil, err
		}
		if err := store.Del(ctx, req.GetKey()); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &clientrpc.KVDelResponse{}, nil
	}
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.KVDel(octx, req)
}

func (s *driverServer) KVList(ctx context.Context, req *clientrpc.KVListRequest) (*clientrpc.KVListResponse, error) {
	if s.preSession(ctx) {
		store, err := s.store()
		if err != nil {
			return nil, err
		}
		keys, err := store.List(ctx, req.GetPrefix())
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &clientrpc.KVListResponse{Keys: keys}, nil
	}
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.KVList(octx, req)
}

func (s *driverServer) KVExists(ctx context.Context, req *clientrpc.KVExistsRequest) (*clientrpc.KVExistsResponse, error) {
	if s.preSession(ctx) {
		store, err := s.store()
		if err != nil {
			return nil, err
		}
		exists, err := store.Exists(ctx, req.GetKey())
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &clientrpc.KVExistsResponse{Exists: exists}, nil
	}
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.KVExists(octx, req)
}

func (s *driverServer) PinRuntimeEnvURI(ctx context.Context, req *clientrpc.ClientPinRuntimeEnvURIRequest) (*clientrpc.ClientPinRuntimeEnvURIResponse, error) {
	if s.preSession(ctx) {
		store, err := s.store()
		if err != nil {
			return nil, err
		}
		if err := store.PinRuntimeEnvURI(ctx, req.GetUri(), req.GetExpirationS()); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &clientrpc.ClientPinRuntimeEnvURIResponse{}, nil
	}
	stub, octx, err := s.stub(ctx)
	if err != nil {
		return nil, err
	}
	return stub.PinRuntimeEnvURI(octx, req)
}
