// gRPC client and server code for the services declared in rayclient.proto,
// maintained by hand alongside the message bindings.

package clientrpc

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	RayletDriver_Init_FullMethodName             = "/raygate.clientrpc.RayletDriver/Init"
	RayletDriver_PutObject_FullMethodName        = "/raygate.clientrpc.RayletDriver/PutObject"
	RayletDriver_GetObject_FullMethodName        = "/raygate.clientrpc.RayletDriver/GetObject"
	RayletDriver_WaitObject_FullMethodName       = "/raygate.clientrpc.RayletDriver/WaitObject"
	RayletDriver_Schedule_FullMethodName         = "/raygate.clientrpc.RayletDriver/Schedule"
	RayletDriver_Terminate_FullMethodName        = "/raygate.clientrpc.RayletDriver/Terminate"
	RayletDriver_ClusterInfo_FullMethodName      = "/raygate.clientrpc.RayletDriver/ClusterInfo"
	RayletDriver_ListNamedActors_FullMethodName  = "/raygate.clientrpc.RayletDriver/ListNamedActors"
	RayletDriver_KVPut_FullMethodName            = "/raygate.clientrpc.RayletDriver/KVPut"
	RayletDriver_KVGet_FullMethodName            = "/raygate.clientrpc.RayletDriver/KVGet"
	RayletDriver_KVDel_FullMethodName            = "/raygate.clientrpc.RayletDriver/KVDel"
	RayletDriver_KVList_FullMethodName           = "/raygate.clientrpc.RayletDriver/KVList"
	RayletDriver_KVExists_FullMethodName         = "/raygate.clientrpc.RayletDriver/KVExists"
	RayletDriver_PinRuntimeEnvURI_FullMethodName = "/raygate.clientrpc.RayletDriver/PinRuntimeEnvURI"

	RayletDataStreamer_Datapath_FullMethodName = "/raygate.clientrpc.RayletDataStreamer/Datapath"

	RayletLogStreamer_Logstream_FullMethodName = "/raygate.clientrpc.RayletLogStreamer/Logstream"
)

// RayletDriverClient is the client API for the RayletDriver service.
type RayletDriverClient interface {
	Init(ctx context.Context, in *InitRequest, opts ...grpc.CallOption) (*InitResponse, error)
	PutObject(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*PutResponse, error)
	GetObject(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (RayletDriver_GetObjectClient, error)
	WaitObject(ctx context.Context, in *WaitRequest, opts ...grpc.CallOption) (*WaitResponse, error)
	Schedule(ctx context.Context, in *ClientTask, opts ...grpc.CallOption) (*ClientTaskTicket, error)
	Terminate(ctx context.Context, in *TerminateRequest, opts ...grpc.CallOption) (*TerminateResponse, error)
	ClusterInfo(ctx context.Context, in *ClusterInfoRequest, opts ...grpc.CallOption) (*ClusterInfoResponse, error)
	ListNamedActors(ctx context.Context, in *ClientListNamedActorsRequest, opts ...grpc.CallOption) (*ClientListNamedActorsResponse, error)
	KVPut(ctx context.Context, in *KVPutRequest, opts ...grpc.CallOption) (*KVPutResponse, error)
	KVGet(ctx context.Context, in *KVGetRequest, opts ...grpc.CallOption) (*KVGetResponse, error)
	KVDel(ctx context.Context, in *KVDelRequest, opts ...grpc.CallOption) (*KVDelResponse, error)
	KVList(ctx context.Context, in *KVListRequest, opts ...grpc.CallOption) (*KVListResponse, error)
	KVExists(ctx context.Context, in *KVExistsRequest, opts ...grpc.CallOption) (*KVExistsResponse, error)
	PinRuntimeEnvURI(ctx context.Context, in *ClientPinRuntimeEnvURIRequest, opts ...grpc.CallOption) (*ClientPinRuntimeEnvURIResponse, error)
}

type rayletDriverClient struct {
	cc grpc.ClientConnInterface
}

func NewRayletDriverClient(cc grpc.ClientConnInterface) RayletDriverClient {
	return &rayletDriverClient{cc}
}

func (c *rayletDriverClient) Init(ctx context.Context, in *InitRequest, opts ...grpc.CallOption) (*InitResponse, error) {
	out := new(InitResponse)
	err := c.cc.Invoke(ctx, RayletDriver_Init_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) PutObject(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*PutResponse, error) {
	out := new(PutResponse)
	err := c.cc.Invoke(ctx, RayletDriver_PutObject_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) GetObject(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (RayletDriver_GetObjectClient, error) {
	stream, err := c.cc.NewStream(ctx, &RayletDriver_ServiceDesc.Streams[0], RayletDriver_GetObject_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &rayletDriverGetObjectClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type RayletDriver_GetObjectClient interface {
	Recv() (*GetResponse, error)
	grpc.ClientStream
}

type rayletDriverGetObjectClient struct {
	grpc.ClientStream
}

func (x *rayletDriverGetObjectClient) Recv() (*GetResponse, error) {
	m := new(GetResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *rayletDriverClient) WaitObject(ctx context.Context, in *WaitRequest, opts ...grpc.CallOption) (*WaitResponse, error) {
	out := new(WaitResponse)
	err := c.cc.Invoke(ctx, RayletDriver_WaitObject_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) Schedule(ctx context.Context, in *ClientTask, opts ...grpc.CallOption) (*ClientTaskTicket, error) {
	out := new(ClientTaskTicket)
	err := c.cc.Invoke(ctx, RayletDriver_Schedule_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) Terminate(ctx context.Context, in *TerminateRequest, opts ...grpc.CallOption) (*TerminateResponse, error) {
	out := new(TerminateResponse)
	err := c.cc.Invoke(ctx, RayletDriver_Terminate_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) ClusterInfo(ctx context.Context, in *ClusterInfoRequest, opts ...grpc.CallOption) (*ClusterInfoResponse, error) {
	out := new(ClusterInfoResponse)
	err := c.cc.Invoke(ctx, RayletDriver_ClusterInfo_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) ListNamedActors(ctx context.Context, in *ClientListNamedActorsRequest, opts ...grpc.CallOption) (*ClientListNamedActorsResponse, error) {
	out := new(ClientListNamedActorsResponse)
	err := c.cc.Invoke(ctx, RayletDriver_ListNamedActors_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) KVPut(ctx context.Context, in *KVPutRequest, opts ...grpc.CallOption) (*KVPutResponse, error) {
	out := new(KVPutResponse)
	err := c.cc.Invoke(ctx, RayletDriver_KVPut_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) KVGet(ctx context.Context, in *KVGetRequest, opts ...grpc.CallOption) (*KVGetResponse, error) {
	out := new(KVGetResponse)
	err := c.cc.Invoke(ctx, RayletDriver_KVGet_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) KVDel(ctx context.Context, in *KVDelRequest, opts ...grpc.CallOption) (*KVDelResponse, error) {
	out := new(KVDelResponse)
	err := c.cc.Invoke(ctx, RayletDriver_KVDel_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) KVList(ctx context.Context, in *KVListRequest, opts ...grpc.CallOption) (*KVListResponse, error) {
	out := new(KVListResponse)
	err := c.cc.Invoke(ctx, RayletDriver_KVList_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) KVExists(ctx context.Context, in *KVExistsRequest, opts ...grpc.CallOption) (*KVExistsResponse, error) {
	out := new(KVExistsResponse)
	err := c.cc.Invoke(ctx, RayletDriver_KVExists_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rayletDriverClient) PinRuntimeEnvURI(ctx context.Context, in *ClientPinRuntimeEnvURIRequest, opts ...grpc.CallOption) (*ClientPinRuntimeEnvURIResponse, error) {
	out := new(ClientPinRuntimeEnvURIResponse)
	err := c.cc.Invoke(ctx, RayletDriver_PinRuntimeEnvURI_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RayletDriverServer is the server API for the RayletDriver service.
type RayletDriverServer interface {
	Init(context.Context, *InitRequest) (*InitResponse, error)
	PutObject(context.Context, *PutRequest) (*PutResponse, error)
	GetObject(*GetRequest, RayletDriver_GetObjectServer) error
	WaitObject(context.Context, *WaitRequest) (*WaitResponse, error)
	Schedule(context.Context, *ClientTask) (*ClientTaskTicket, error)
	Terminate(context.Context, *TerminateRequest) (*TerminateResponse, error)
	ClusterInfo(context.Context, *ClusterInfoRequest) (*ClusterInfoResponse, error)
	ListNamedActors(context.Context, *ClientListNamedActorsRequest) (*ClientListNamedActorsResponse, error)
	KVPut(context.Context, *KVPutRequest) (*KVPutResponse, error)
	KVGet(context.Context, *KVGetRequest) (*KVGetResponse, error)
	KVDel(context.Context, *KVDelRequest) (*KVDelResponse, error)
	KVList(context.Context, *KVListRequest) (*KVListResponse, error)
	KVExists(context.Context, *KVExistsRequest) (*KVExistsResponse, error)
	PinRuntimeEnvURI(context.Context, *ClientPinRuntimeEnvURIRequest) (*ClientPinRuntimeEnvURIResponse, error)
}

// UnimplementedRayletDriverServer can be embedded to have forward compatible
// implementations.
type UnimplementedRayletDriverServer struct{}

func (UnimplementedRayletDriverServer) Init(context.Context, *InitRequest) (*InitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Init not implemented")
}

func (UnimplementedRayletDriverServer) PutObject(context.Context, *PutRequest) (*PutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PutObject not implemented")
}

func (UnimplementedRayletDriverServer) GetObject(*GetRequest, RayletDriver_GetObjectServer) error {
	return status.Errorf(codes.Unimplemented, "method GetObject not implemented")
}

func (UnimplementedRayletDriverServer) WaitObject(context.Context, *WaitRequest) (*WaitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method WaitObject not implemented")
}

func (UnimplementedRayletDriverServer) Schedule(context.Context, *ClientTask) (*ClientTaskTicket, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Schedule not implemented")
}

func (UnimplementedRayletDriverServer) Terminate(context.Context, *TerminateRequest) (*TerminateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Terminate not implemented")
}

func (UnimplementedRayletDriverServer) ClusterInfo(context.Context, *ClusterInfoRequest) (*ClusterInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClusterInfo not implemented")
}

func (UnimplementedRayletDriverServer) ListNamedActors(context.Context, *ClientListNamedActorsRequest) (*ClientListNamedActorsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListNamedActors not implemented")
}

func (UnimplementedRayletDriverServer) KVPut(context.Context, *KVPutRequest) (*KVPutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KVPut not implemented")
}

func (UnimplementedRayletDriverServer) KVGet(context.Context, *KVGetRequest) (*KVGetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KVGet not implemented")
}

func (UnimplementedRayletDriverServer) KVDel(context.Context, *KVDelRequest) (*KVDelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KVDel not implemented")
}

func (UnimplementedRayletDriverServer) KVList(context.Context, *KVListRequest) (*KVListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KVList not implemented")
}

func (UnimplementedRayletDriverServer) KVExists(context.Context, *KVExistsRequest) (*KVExistsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KVExists not implemented")
}

func (UnimplementedRayletDriverServer) PinRuntimeEnvURI(context.Context, *ClientPinRuntimeEnvURIRequest) (*ClientPinRuntimeEnvURIResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PinRuntimeEnvURI not implemented")
}

func RegisterRayletDriverServer(s grpc.ServiceRegistrar, srv RayletDriverServer) {
	s.RegisterService(&RayletDriver_ServiceDesc, srv)
}

func _RayletDriver_Init_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).Init(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_Init_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).Init(ctx, req.(*InitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_PutObject_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).PutObject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_PutObject_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).PutObject(ctx, req.(*PutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_GetObject_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GetRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RayletDriverServer).GetObject(m, &rayletDriverGetObjectServer{ServerStream: stream})
}

type RayletDriver_GetObjectServer interface {
	Send(*GetResponse) error
	grpc.ServerStream
}

type rayletDriverGetObjectServer struct {
	grpc.ServerStream
}

func (x *rayletDriverGetObjectServer) Send(m *GetResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _RayletDriver_WaitObject_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WaitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).WaitObject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_WaitObject_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).WaitObject(ctx, req.(*WaitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_Schedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClientTask)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).Schedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_Schedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).Schedule(ctx, req.(*ClientTask))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_Terminate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TerminateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).Terminate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_Terminate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).Terminate(ctx, req.(*TerminateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_ClusterInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClusterInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).ClusterInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_ClusterInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).ClusterInfo(ctx, req.(*ClusterInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_ListNamedActors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClientListNamedActorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).ListNamedActors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_ListNamedActors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).ListNamedActors(ctx, req.(*ClientListNamedActorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_KVPut_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KVPutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).KVPut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_KVPut_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).KVPut(ctx, req.(*KVPutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_KVGet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KVGetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).KVGet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_KVGet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).KVGet(ctx, req.(*KVGetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_KVDel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KVDelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).KVDel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_KVDel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).KVDel(ctx, req.(*KVDelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_KVList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KVListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).KVList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_KVList_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).KVList(ctx, req.(*KVListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_KVExists_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KVExistsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).KVExists(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_KVExists_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).KVExists(ctx, req.(*KVExistsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RayletDriver_PinRuntimeEnvURI_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClientPinRuntimeEnvURIRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RayletDriverServer).PinRuntimeEnvURI(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RayletDriver_PinRuntimeEnvURI_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RayletDriverServer).PinRuntimeEnvURI(ctx, req.(*ClientPinRuntimeEnvURIRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var RayletDriver_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "raygate.clientrpc.RayletDriver",
	HandlerType: (*RayletDriverServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Init",
			Handler:    _RayletDriver_Init_Handler,
		},
		{
			MethodName: "PutObject",
			Handler:    _RayletDriver_PutObject_Handler,
		},
		{
			MethodName: "WaitObject",
			Handler:    _RayletDriver_WaitObject_Handler,
		},
		{
			MethodName: "Schedule",
			Handler:    _RayletDriver_Schedule_Handler,
		},
		{
			MethodName: "Terminate",
			Handler:    _RayletDriver_Terminate_Handler,
		},
		{
			MethodName: "ClusterInfo",
			Handler:    _RayletDriver_ClusterInfo_Handler,
		},
		{
			MethodName: "ListNamedActors",
			Handler:    _RayletDriver_ListNamedActors_Handler,
		},
		{
			MethodName: "KVPut",
			Handler:    _RayletDriver_KVPut_Handler,
		},
		{
			MethodName: "KVGet",
			Handler:    _RayletDriver_KVGet_Handler,
		},
		{
			MethodName: "KVDel",
			Handler:    _RayletDriver_KVDel_Handler,
		},
		{
			MethodName: "KVList",
			Handler:    _RayletDriver_KVList_Handler,
		},
		{
			MethodName: "KVExists",
			Handler:    _RayletDriver_KVExists_Handler,
		},
		{
			MethodName: "PinRuntimeEnvURI",
			Handler:    _RayletDriver_PinRuntimeEnvURI_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetObject",
			Handler:       _RayletDriver_GetObject_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "rpc/clientrpc/rayclient.proto",
}

// RayletDataStreamerClient is the client API for the RayletDataStreamer
// service.
type RayletDataStreamerClient interface {
	Datapath(ctx context.Context, opts ...grpc.CallOption) (RayletDataStreamer_DatapathClient, error)
}

type rayletDataStreamerClient struct {
	cc grpc.ClientConnInterface
}

func NewRayletDataStreamerClient(cc grpc.ClientConnInterface) RayletDataStreamerClient {
	return &rayletDataStreamerClient{cc}
}

func (c *rayletDataStreamerClient) Datapath(ctx context.Context, opts ...grpc.CallOption) (RayletDataStreamer_DatapathClient, error) {
	stream, err := c.cc.NewStream(ctx, &RayletDataStreamer_ServiceDesc.Streams[0], RayletDataStreamer_Datapath_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &rayletDataStreamerDatapathClient{ClientStream: stream}, nil
}

type RayletDataStreamer_DatapathClient interface {
	Send(*DataRequest) error
	Recv() (*DataResponse, error)
	grpc.ClientStream
}

type rayletDataStreamerDatapathClient struct {
	grpc.ClientStream
}

func (x *rayletDataStreamerDatapathClient) Send(m *DataRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *rayletDataStreamerDatapathClient) Recv() (*DataResponse, error) {
	m := new(DataResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RayletDataStreamerServer is the server API for the RayletDataStreamer
// service.
type RayletDataStreamerServer interface {
	Datapath(RayletDataStreamer_DatapathServer) error
}

// UnimplementedRayletDataStreamerServer can be embedded to have forward
// compatible implementations.
type UnimplementedRayletDataStreamerServer struct{}

func (UnimplementedRayletDataStreamerServer) Datapath(RayletDataStreamer_DatapathServer) error {
	return status.Errorf(codes.Unimplemented, "method Datapath not implemented")
}

func RegisterRayletDataStreamerServer(s grpc.ServiceRegistrar, srv RayletDataStreamerServer) {
	s.RegisterService(&RayletDataStreamer_ServiceDesc, srv)
}

func _RayletDataStreamer_Datapath_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(RayletDataStreamerServer).Datapath(&rayletDataStreamerDatapathServer{ServerStream: stream})
}

type RayletDataStreamer_DatapathServer interface {
	Send(*DataResponse) error
	Recv() (*DataRequest, error)
	grpc.ServerStream
}

type rayletDataStreamerDatapathServer struct {
	grpc.ServerStream
}

func (x *rayletDataStreamerDatapathServer) Send(m *DataResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *rayletDataStreamerDatapathServer) Recv() (*DataRequest, error) {
	m := new(DataRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var RayletDataStreamer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "raygate.clientrpc.RayletDataStreamer",
	HandlerType: (*RayletDataStreamerServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Datapath",
			Handler:       _RayletDataStreamer_Datapath_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "rpc/clientrpc/rayclient.proto",
}

// RayletLogStreamerClient is the client API for the RayletLogStreamer service.
type RayletLogStreamerClient interface {
	Logstream(ctx context.Context, opts ...grpc.CallOption) (RayletLogStreamer_LogstreamClient, error)
}

type rayletLogStreamerClient struct {
	cc grpc.ClientConnInterface
}

func NewRayletLogStreamerClient(cc grpc.ClientConnInterface) RayletLogStreamerClient {
	return &rayletLogStreamerClient{cc}
}

func (c *rayletLogStreamerClient) Logstream(ctx context.Context, opts ...grpc.CallOption) (RayletLogStreamer_LogstreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &RayletLogStreamer_ServiceDesc.Streams[0], RayletLogStreamer_Logstream_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &rayletLogStreamerLogstreamClient{ClientStream: stream}, nil
}

type RayletLogStreamer_LogstreamClient interface {
	Send(*LogSettingsRequest) error
	Recv() (*LogData, error)
	grpc.ClientStream
}

type rayletLogStreamerLogstreamClient struct {
	grpc.ClientStream
}

func (x *rayletLogStreamerLogstreamClient) Send(m *LogSettingsRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *rayletLogStreamerLogstreamClient) Recv() (*LogData, error) {
	m := new(LogData)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RayletLogStreamerServer is the server API for the RayletLogStreamer service.
type RayletLogStreamerServer interface {
	Logstream(RayletLogStreamer_LogstreamServer) error
}

// UnimplementedRayletLogStreamerServer can be embedded to have forward
// compatible implementations.
type UnimplementedRayletLogStreamerServer struct{}

func (UnimplementedRayletLogStreamerServer) Logstream(RayletLogStreamer_LogstreamServer) error {
	return status.Errorf(codes.Unimplemented, "method Logstream not implemented")
}

func RegisterRayletLogStreamerServer(s grpc.ServiceRegistrar, srv RayletLogStreamerServer) {
	s.RegisterService(&RayletLogStreamer_ServiceDesc, srv)
}

func _RayletLogStreamer_Logstream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(RayletLogStreamerServer).Logstream(&rayletLogStreamerLogstreamServer{ServerStream: stream})
}

type RayletLogStreamer_LogstreamServer interface {
	Send(*LogData) error
	Recv() (*LogSettingsRequest, error)
	grpc.ServerStream
}

type rayletLogStreamerLogstreamServer struct {
	grpc.ServerStream
}

func (x *rayletLogStreamerLogstreamServer) Send(m *LogData) error {
	return x.ServerStream.SendMsg(m)
}

func (x *rayletLogStreamerLogstreamServer) Recv() (*LogSettingsRequest, error) {
	m := new(LogSettingsRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var RayletLogStreamer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "raygate.clientrpc.RayletLogStreamer",
	HandlerType: (*RayletLogStreamerServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Logstream",
			Handler:       _RayletLogStreamer_Logstream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "rpc/clientrpc/rayclient.proto",
}
