// Go bindings for rayclient.proto, maintained in the legacy
// github.com/golang/protobuf style (field tags carry the wire schema) so the
// package has no build-time dependency on protoc.

package clientrpc

import (
	proto "github.com/golang/protobuf/proto"
)

type ClusterInfoType int32

const (
	ClusterInfoType_IS_INITIALIZED      ClusterInfoType = 0
	ClusterInfoType_NODES               ClusterInfoType = 1
	ClusterInfoType_CLUSTER_RESOURCES   ClusterInfoType = 2
	ClusterInfoType_AVAILABLE_RESOURCES ClusterInfoType = 3
	ClusterInfoType_RUNTIME_CONTEXT     ClusterInfoType = 4
	ClusterInfoType_TIMELINE            ClusterInfoType = 5
	ClusterInfoType_PING                ClusterInfoType = 6
)

var ClusterInfoType_name = map[int32]string{
	0: "IS_INITIALIZED",
	1: "NODES",
	2: "CLUSTER_RESOURCES",
	3: "AVAILABLE_RESOURCES",
	4: "RUNTIME_CONTEXT",
	5: "TIMELINE",
	6: "PING",
}

var ClusterInfoType_value = map[string]int32{
	"IS_INITIALIZED":      0,
	"NODES":               1,
	"CLUSTER_RESOURCES":   2,
	"AVAILABLE_RESOURCES": 3,
	"RUNTIME_CONTEXT":     4,
	"TIMELINE":            5,
	"PING":                6,
}

func (x ClusterInfoType) String() string {
	return proto.EnumName(ClusterInfoType_name, int32(x))
}

type InitRequest struct {
	JobConfig            []byte `protobuf:"bytes,1,opt,name=job_config,json=jobConfig,proto3" json:"job_config,omitempty"`
	InitKwargsJson       string `protobuf:"bytes,2,opt,name=init_kwargs_json,json=initKwargsJson,proto3" json:"init_kwargs_json,omitempty"`
	ReconnectGracePeriod uint32 `protobuf:"varint,3,opt,name=reconnect_grace_period,json=reconnectGracePeriod,proto3" json:"reconnect_grace_period,omitempty"`
}

func (m *InitRequest) Reset()         { *m = InitRequest{} }
func (m *InitRequest) String() string { return proto.CompactTextString(m) }
func (*InitRequest) ProtoMessage()    {}

func (m *InitRequest) GetJobConfig() []byte {
	if m != nil {
		return m.JobConfig
	}
	return nil
}

func (m *InitRequest) GetInitKwargsJson() string {
	if m != nil {
		return m.InitKwargsJson
	}
	return ""
}

func (m *InitRequest) GetReconnectGracePeriod() uint32 {
	if m != nil {
		return m.ReconnectGracePeriod
	}
	return 0
}

type InitResponse struct {
	Ok  bool   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Msg string `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *InitResponse) Reset()         { *m = InitResponse{} }
func (m *InitResponse) String() string { return proto.CompactTextString(m) }
func (*InitResponse) ProtoMessage()    {}

func (m *InitResponse) GetOk() bool {
	if m != nil {
		return m.Ok
	}
	return false
}

func (m *InitResponse) GetMsg() string {
	if m != nil {
		return m.Msg
	}
	return ""
}

type GetRequest struct {
	Ids          [][]byte `protobuf:"bytes,1,rep,name=ids,proto3" json:"ids,omitempty"`
	Timeout      float64  `protobuf:"fixed64,2,opt,name=timeout,proto3" json:"timeout,omitempty"`
	Asynchronous bool     `protobuf:"varint,3,opt,name=asynchronous,proto3" json:"asynchronous,omitempty"`
	StartChunkId int32    `protobuf:"varint,4,opt,name=start_chunk_id,json=startChunkId,proto3" json:"start_chunk_id,omitempty"`
}

func (m *GetRequest) Reset()         { *m = GetRequest{} }
func (m *GetRequest) String() string { return proto.CompactTextString(m) }
func (*GetRequest) ProtoMessage()    {}

func (m *GetRequest) GetIds() [][]byte {
	if m != nil {
		return m.Ids
	}
	return nil
}

func (m *GetRequest) GetTimeout() float64 {
	if m != nil {
		return m.Timeout
	}
	return 0
}

func (m *GetRequest) GetAsynchronous() bool {
	if m != nil {
		return m.Asynchronous
	}
	return false
}

func (m *GetRequest) GetStartChunkId() int32 {
	if m != nil {
		return m.StartChunkId
	}
	return 0
}

type GetResponse struct {
	Valid       bool   `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	Data        []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	Error       string `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	ChunkId     int32  `protobuf:"varint,4,opt,name=chunk_id,json=chunkId,proto3" json:"chunk_id,omitempty"`
	TotalChunks int32  `protobuf:"varint,5,opt,name=total_chunks,json=totalChunks,proto3" json:"total_chunks,omitempty"`
	TotalSize   uint64 `protobuf:"varint,6,opt,name=total_size,json=totalSize,proto3" json:"total_size,omitempty"`
}

func (m *GetResponse) Reset()         { *m = GetResponse{} }
func (m *GetResponse) String() string { return proto.CompactTextString(m) }
func (*GetResponse) ProtoMessage()    {}

func (m *GetResponse) GetValid() bool {
	if m != nil {
		return m.Valid
	}
	return false
}

func (m *GetResponse) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *GetResponse) GetError() string {
	if m != nil {
		return m.Error
	}
	return ""
}

func (m *GetResponse) GetChunkId() int32 {
	if m != nil {
		return m.ChunkId
	}
	return 0
}

func (m *GetResponse) GetTotalChunks() int32 {
	if m != nil {
		return m.TotalChunks
	}
	return 0
}

func (m *GetResponse) GetTotalSize() uint64 {
	if m != nil {
		return m.TotalSize
	}
	return 0
}

type PutRequest struct {
	Data         []byte   `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	ClientRefIds [][]byte `protobuf:"bytes,2,rep,name=client_ref_ids,json=clientRefIds,proto3" json:"client_ref_ids,omitempty"`
	ChunkId      int32    `protobuf:"varint,3,opt,name=chunk_id,json=chunkId,proto3" json:"chunk_id,omitempty"`
	TotalChunks  int32    `protobuf:"varint,4,opt,name=total_chunks,json=totalChunks,proto3" json:"total_chunks,omitempty"`
	TotalSize    uint64   `protobuf:"varint,5,opt,name=total_size,json=totalSize,proto3" json:"total_size,omitempty"`
}

func (m *PutRequest) Reset()         { *m = PutRequest{} }
func (m *PutRequest) String() string { return proto.CompactTextString(m) }
func (*PutRequest) ProtoMessage()    {}

func (m *PutRequest) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *PutRequest) GetClientRefIds() [][]byte {
	if m != nil {
		return m.ClientRefIds
	}
	return nil
}

func (m *PutRequest) GetChunkId() int32 {
	if m != nil {
		return m.ChunkId
	}
	return 0
}

func (m *PutRequest) GetTotalChunks() int32 {
	if m != nil {
		return m.TotalChunks
	}
	return 0
}

func (m *PutRequest) GetTotalSize() uint64 {
	if m != nil {
		return m.TotalSize
	}
	return 0
}

type PutResponse struct {
	Id    []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Valid bool   `protobuf:"varint,2,opt,name=valid,proto3" json:"valid,omitempty"`
	Error string `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *PutResponse) Reset()         { *m = PutResponse{} }
func (m *PutResponse) String() string { return proto.CompactTextString(m) }
func (*PutResponse) ProtoMessage()    {}

func (m *PutResponse) GetId() []byte {
	if m != nil {
		return m.Id
	}
	return nil
}

func (m *PutResponse) GetValid() bool {
	if m != nil {
		return m.Valid
	}
	return false
}

func (m *PutResponse) GetError() string {
	if m != nil {
		return m.Error
	}
	return ""
}

type WaitRequest struct {
	ObjectIds  [][]byte `protobuf:"bytes,1,rep,name=object_ids,json=objectIds,proto3" json:"object_ids,omitempty"`
	NumReturns int64    `protobuf:"varint,2,opt,name=num_returns,json=numReturns,proto3" json:"num_returns,omitempty"`
	Timeout    float64  `protobuf:"fixed64,3,opt,name=timeout,proto3" json:"timeout,omitempty"`
}

func (m *WaitRequest) Reset()         { *m = WaitRequest{} }
func (m *WaitRequest) String() string { return proto.CompactTextString(m) }
func (*WaitRequest) ProtoMessage()    {}

func (m *WaitRequest) GetObjectIds() [][]byte {
	if m != nil {
		return m.ObjectIds
	}
	return nil
}

func (m *WaitRequest) GetNumReturns() int64 {
	if m != nil {
		return m.NumReturns
	}
	return 0
}

func (m *WaitRequest) GetTimeout() float64 {
	if m != nil {
		return m.Timeout
	}
	return 0
}

type WaitResponse struct {
	Valid              bool     `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	ReadyObjectIds     [][]byte `protobuf:"bytes,2,rep,name=ready_object_ids,json=readyObjectIds,proto3" json:"ready_object_ids,omitempty"`
	RemainingObjectIds [][]byte `protobuf:"bytes,3,rep,name=remaining_object_ids,json=remainingObjectIds,proto3" json:"remaining_object_ids,omitempty"`
}

func (m *WaitResponse) Reset()         { *m = WaitResponse{} }
func (m *WaitResponse) String() string { return proto.CompactTextString(m) }
func (*WaitResponse) ProtoMessage()    {}

func (m *WaitResponse) GetValid() bool {
	if m != nil {
		return m.Valid
	}
	return false
}

func (m *WaitResponse) GetReadyObjectIds() [][]byte {
	if m != nil {
		return m.ReadyObjectIds
	}
	return nil
}

func (m *WaitResponse) GetRemainingObjectIds() [][]byte {
	if m != nil {
		return m.RemainingObjectIds
	}
	return nil
}

type ClientTask struct {
	Name      string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	PayloadId []byte   `protobuf:"bytes,2,opt,name=payload_id,json=payloadId,proto3" json:"payload_id,omitempty"`
	Args      [][]byte `protobuf:"bytes,3,rep,name=args,proto3" json:"args,omitempty"`
	ClientId  string   `protobuf:"bytes,4,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
}

func (m *ClientTask) Reset()         { *m = ClientTask{} }
func (m *ClientTask) String() string { return proto.CompactTextString(m) }
func (*ClientTask) ProtoMessage()    {}

func (m *ClientTask) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *ClientTask) GetPayloadId() []byte {
	if m != nil {
		return m.PayloadId
	}
	return nil
}

func (m *ClientTask) GetArgs() [][]byte {
	if m != nil {
		return m.Args
	}
	return nil
}

func (m *ClientTask) GetClientId() string {
	if m != nil {
		return m.ClientId
	}
	return ""
}

type ClientTaskTicket struct {
	Valid     bool     `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	ReturnIds [][]byte `protobuf:"bytes,2,rep,name=return_ids,json=returnIds,proto3" json:"return_ids,omitempty"`
	Error     string   `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *ClientTaskTicket) Reset()         { *m = ClientTaskTicket{} }
func (m *ClientTaskTicket) String() string { return proto.CompactTextString(m) }
func (*ClientTaskTicket) ProtoMessage()    {}

func (m *ClientTaskTicket) GetValid() bool {
	if m != nil {
		return m.Valid
	}
	return false
}

func (m *ClientTaskTicket) GetReturnIds() [][]byte {
	if m != nil {
		return m.ReturnIds
	}
	return nil
}

func (m *ClientTaskTicket) GetError() string {
	if m != nil {
		return m.Error
	}
	return ""
}

type TerminateRequest struct {
	Id      []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	IsActor bool   `protobuf:"varint,2,opt,name=is_actor,json=isActor,proto3" json:"is_actor,omitempty"`
}

func (m *TerminateRequest) Reset()         { *m = TerminateRequest{} }
func (m *TerminateRequest) String() string { return proto.CompactTextString(m) }
func (*TerminateRequest) ProtoMessage()    {}

func (m *TerminateRequest) GetId() []byte {
	if m != nil {
		return m.Id
	}
	return nil
}

func (m *TerminateRequest) GetIsActor() bool {
	if m != nil {
		return m.IsActor
	}
	return false
}

type TerminateResponse struct {
	Ok bool `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
}

func (m *TerminateResponse) Reset()         { *m = TerminateResponse{} }
func (m *TerminateResponse) String() string { return proto.CompactTextString(m) }
func (*TerminateResponse) ProtoMessage()    {}

func (m *TerminateResponse) GetOk() bool {
	if m != nil {
		return m.Ok
	}
	return false
}

type ClusterInfoRequest struct {
	Type ClusterInfoType `protobuf:"varint,1,opt,name=type,proto3,enum=raygate.clientrpc.ClusterInfoType" json:"type,omitempty"`
}

func (m *ClusterInfoRequest) Reset()         { *m = ClusterInfoRequest{} }
func (m *ClusterInfoRequest) String() string { return proto.CompactTextString(m) }
func (*ClusterInfoRequest) ProtoMessage()    {}

func (m *ClusterInfoRequest) GetType() ClusterInfoType {
	if m != nil {
		return m.Type
	}
	return ClusterInfoType_IS_INITIALIZED
}

type ClusterInfoResponse struct {
	Json string `protobuf:"bytes,1,opt,name=json,proto3" json:"json,omitempty"`
}

func (m *ClusterInfoResponse) Reset()         { *m = ClusterInfoResponse{} }
func (m *ClusterInfoResponse) String() string { return proto.CompactTextString(m) }
func (*ClusterInfoResponse) ProtoMessage()    {}

func (m *ClusterInfoResponse) GetJson() string {
	if m != nil {
		return m.Json
	}
	return ""
}

type ClientListNamedActorsRequest struct {
	AllNamespaces bool `protobuf:"varint,1,opt,name=all_namespaces,json=allNamespaces,proto3" json:"all_namespaces,omitempty"`
}

func (m *ClientListNamedActorsRequest) Reset()         { *m = ClientListNamedActorsRequest{} }
func (m *ClientListNamedActorsRequest) String() string { return proto.CompactTextString(m) }
func (*ClientListNamedActorsRequest) ProtoMessage()    {}

func (m *ClientListNamedActorsRequest) GetAllNamespaces() bool {
	if m != nil {
		return m.AllNamespaces
	}
	return false
}

type ClientListNamedActorsResponse struct {
	ActorsJson string `protobuf:"bytes,1,opt,name=actors_json,json=actorsJson,proto3" json:"actors_json,omitempty"`
}

func (m *ClientListNamedActorsResponse) Reset()         { *m = ClientListNamedActorsResponse{} }
func (m *ClientListNamedActorsResponse) String() string { return proto.CompactTextString(m) }
func (*ClientListNamedActorsResponse) ProtoMessage()    {}

func (m *ClientListNamedActorsResponse) GetActorsJson() string {
	if m != nil {
		return m.ActorsJson
	}
	return ""
}

type KVPutRequest struct {
	Key       []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value     []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Overwrite bool   `protobuf:"varint,3,opt,name=overwrite,proto3" json:"overwrite,omitempty"`
}

func (m *KVPutRequest) Reset()         { *m = KVPutRequest{} }
func (m *KVPutRequest) String() string { return proto.CompactTextString(m) }
func (*KVPutRequest) ProtoMessage()    {}

func (m *KVPutRequest) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *KVPutRequest) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

func (m *KVPutRequest) GetOverwrite() bool {
	if m != nil {
		return m.Overwrite
	}
	return false
}

type KVPutResponse struct {
	AlreadyExists bool `protobuf:"varint,1,opt,name=already_exists,json=alreadyExists,proto3" json:"already_exists,omitempty"`
}

func (m *KVPutResponse) Reset()         { *m = KVPutResponse{} }
func (m *KVPutResponse) String() string { return proto.CompactTextString(m) }
func (*KVPutResponse) ProtoMessage()    {}

func (m *KVPutResponse) GetAlreadyExists() bool {
	if m != nil {
		return m.AlreadyExists
	}
	return false
}

type KVGetRequest struct {
	Key []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *KVGetRequest) Reset()         { *m = KVGetRequest{} }
func (m *KVGetRequest) String() string { return proto.CompactTextString(m) }
func (*KVGetRequest) ProtoMessage()    {}

func (m *KVGetRequest) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

type KVGetResponse struct {
	Value []byte `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KVGetResponse) Reset()         { *m = KVGetResponse{} }
func (m *KVGetResponse) String() string { return proto.CompactTextString(m) }
func (*KVGetResponse) ProtoMessage()    {}

func (m *KVGetResponse) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type KVDelRequest struct {
	Key []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *KVDelRequest) Reset()         { *m = KVDelRequest{} }
func (m *KVDelRequest) String() string { return proto.CompactTextString(m) }
func (*KVDelRequest) ProtoMessage()    {}

func (m *KVDelRequest) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

type KVDelResponse struct {
}

func (m *KVDelResponse) Reset()         { *m = KVDelResponse{} }
func (m *KVDelResponse) String() string { return proto.CompactTextString(m) }
func (*KVDelResponse) ProtoMessage()    {}

type KVListRequest struct {
	Prefix []byte `protobuf:"bytes,1,opt,name=prefix,proto3" json:"prefix,omitempty"`
}

func (m *KVListRequest) Reset()         { *m = KVListRequest{} }
func (m *KVListRequest) String() string { return proto.CompactTextString(m) }
func (*KVListRequest) ProtoMessage()    {}

func (m *KVListRequest) GetPrefix() []byte {
	if m != nil {
		return m.Prefix
	}
	return nil
}

type KVListResponse struct {
	Keys [][]byte `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *KVListResponse) Reset()         { *m = KVListResponse{} }
func (m *KVListResponse) String() string { return proto.CompactTextString(m) }
func (*KVListResponse) ProtoMessage()    {}

func (m *KVListResponse) GetKeys() [][]byte {
	if m != nil {
		return m.Keys
	}
	return nil
}

type KVExistsRequest struct {
	Key []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *KVExistsRequest) Reset()         { *m = KVExistsRequest{} }
func (m *KVExistsRequest) String() string { return proto.CompactTextString(m) }
func (*KVExistsRequest) ProtoMessage()    {}

func (m *KVExistsRequest) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

type KVExistsResponse struct {
	Exists bool `protobuf:"varint,1,opt,name=exists,proto3" json:"exists,omitempty"`
}

func (m *KVExistsResponse) Reset()         { *m = KVExistsResponse{} }
func (m *KVExistsResponse) String() string { return proto.CompactTextString(m) }
func (*KVExistsResponse) ProtoMessage()    {}

func (m *KVExistsResponse) GetExists() bool {
	if m != nil {
		return m.Exists
	}
	return false
}

type ClientPinRuntimeEnvURIRequest struct {
	Uri         string `protobuf:"bytes,1,opt,name=uri,proto3" json:"uri,omitempty"`
	ExpirationS int32  `protobuf:"varint,2,opt,name=expiration_s,json=expirationS,proto3" json:"expiration_s,omitempty"`
}

func (m *ClientPinRuntimeEnvURIRequest) Reset()         { *m = ClientPinRuntimeEnvURIRequest{} }
func (m *ClientPinRuntimeEnvURIRequest) String() string { return proto.CompactTextString(m) }
func (*ClientPinRuntimeEnvURIRequest) ProtoMessage()    {}

func (m *ClientPinRuntimeEnvURIRequest) GetUri() string {
	if m != nil {
		return m.Uri
	}
	return ""
}

func (m *ClientPinRuntimeEnvURIRequest) GetExpirationS() int32 {
	if m != nil {
		return m.ExpirationS
	}
	return 0
}

type ClientPinRuntimeEnvURIResponse struct {
}

func (m *ClientPinRuntimeEnvURIResponse) Reset()         { *m = ClientPinRuntimeEnvURIResponse{} }
func (m *ClientPinRuntimeEnvURIResponse) String() string { return proto.CompactTextString(m) }
func (*ClientPinRuntimeEnvURIResponse) ProtoMessage()    {}

type ConnectionInfoRequest struct {
}

func (m *ConnectionInfoRequest) Reset()         { *m = ConnectionInfoRequest{} }
func (m *ConnectionInfoRequest) String() string { return proto.CompactTextString(m) }
func (*ConnectionInfoRequest) ProtoMessage()    {}

type ConnectionInfoResponse struct {
	NumClients      int32  `protobuf:"varint,1,opt,name=num_clients,json=numClients,proto3" json:"num_clients,omitempty"`
	ServerVersion   string `protobuf:"bytes,2,opt,name=server_version,json=serverVersion,proto3" json:"server_version,omitempty"`
	ProtocolVersion string `protobuf:"bytes,3,opt,name=protocol_version,json=protocolVersion,proto3" json:"protocol_version,omitempty"`
}

func (m *ConnectionInfoResponse) Reset()         { *m = ConnectionInfoResponse{} }
func (m *ConnectionInfoResponse) String() string { return proto.CompactTextString(m) }
func (*ConnectionInfoResponse) ProtoMessage()    {}

func (m *ConnectionInfoResponse) GetNumClients() int32 {
	if m != nil {
		return m.NumClients
	}
	return 0
}

func (m *ConnectionInfoResponse) GetServerVersion() string {
	if m != nil {
		return m.ServerVersion
	}
	return ""
}

func (m *ConnectionInfoResponse) GetProtocolVersion() string {
	if m != nil {
		return m.ProtocolVersion
	}
	return ""
}

type ConnectionCleanupRequest struct {
}

func (m *ConnectionCleanupRequest) Reset()         { *m = ConnectionCleanupRequest{} }
func (m *ConnectionCleanupRequest) String() string { return proto.CompactTextString(m) }
func (*ConnectionCleanupRequest) ProtoMessage()    {}

type ConnectionCleanupResponse struct {
}

func (m *ConnectionCleanupResponse) Reset()         { *m = ConnectionCleanupResponse{} }
func (m *ConnectionCleanupResponse) String() string { return proto.CompactTextString(m) }
func (*ConnectionCleanupResponse) ProtoMessage()    {}

type AcknowledgeRequest struct {
	ReqId int32 `protobuf:"varint,1,opt,name=req_id,json=reqId,proto3" json:"req_id,omitempty"`
}

func (m *AcknowledgeRequest) Reset()         { *m = AcknowledgeRequest{} }
func (m *AcknowledgeRequest) String() string { return proto.CompactTextString(m) }
func (*AcknowledgeRequest) ProtoMessage()    {}

func (m *AcknowledgeRequest) GetReqId() int32 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

type ReleaseRequest struct {
	Ids [][]byte `protobuf:"bytes,1,rep,name=ids,proto3" json:"ids,omitempty"`
}

func (m *ReleaseRequest) Reset()         { *m = ReleaseRequest{} }
func (m *ReleaseRequest) String() string { return proto.CompactTextString(m) }
func (*ReleaseRequest) ProtoMessage()    {}

func (m *ReleaseRequest) GetIds() [][]byte {
	if m != nil {
		return m.Ids
	}
	return nil
}

type ReleaseResponse struct {
	Ok []bool `protobuf:"varint,1,rep,packed,name=ok,proto3" json:"ok,omitempty"`
}

func (m *ReleaseResponse) Reset()         { *m = ReleaseResponse{} }
func (m *ReleaseResponse) String() string { return proto.CompactTextString(m) }
func (*ReleaseResponse) ProtoMessage()    {}

func (m *ReleaseResponse) GetOk() []bool {
	if m != nil {
		return m.Ok
	}
	return nil
}

type DataRequest struct {
	ReqId int32 `protobuf:"varint,1,opt,name=req_id,json=reqId,proto3" json:"req_id,omitempty"`
	// Types that are valid to be assigned to Type:
	//	*DataRequest_Init
	//	*DataRequest_Get
	//	*DataRequest_Put
	//	*DataRequest_Release
	//	*DataRequest_ConnectionInfo
	//	*DataRequest_Acknowledge
	//	*DataRequest_ConnectionCleanup
	Type isDataRequest_Type `protobuf_oneof:"type"`
}

func (m *DataRequest) Reset()         { *m = DataRequest{} }
func (m *DataRequest) String() string { return proto.CompactTextString(m) }
func (*DataRequest) ProtoMessage()    {}

type isDataRequest_Type interface {
	isDataRequest_Type()
}

type DataRequest_Init struct {
	Init *InitRequest `protobuf:"bytes,2,opt,name=init,proto3,oneof"`
}

type DataRequest_Get struct {
	Get *GetRequest `protobuf:"bytes,3,opt,name=get,proto3,oneof"`
}

type DataRequest_Put struct {
	Put *PutRequest `protobuf:"bytes,4,opt,name=put,proto3,oneof"`
}

type DataRequest_Release struct {
	Release *ReleaseRequest `protobuf:"bytes,5,opt,name=release,proto3,oneof"`
}

type DataRequest_ConnectionInfo struct {
	ConnectionInfo *ConnectionInfoRequest `protobuf:"bytes,6,opt,name=connection_info,json=connectionInfo,proto3,oneof"`
}

type DataRequest_Acknowledge struct {
	Acknowledge *AcknowledgeRequest `protobuf:"bytes,7,opt,name=acknowledge,proto3,oneof"`
}

type DataRequest_ConnectionCleanup struct {
	ConnectionCleanup *ConnectionCleanupRequest `protobuf:"bytes,8,opt,name=connection_cleanup,json=connectionCleanup,proto3,oneof"`
}

func (*DataRequest_Init) isDataRequest_Type()              {}
func (*DataRequest_Get) isDataRequest_Type()               {}
func (*DataRequest_Put) isDataRequest_Type()               {}
func (*DataRequest_Release) isDataRequest_Type()           {}
func (*DataRequest_ConnectionInfo) isDataRequest_Type()    {}
func (*DataRequest_Acknowledge) isDataRequest_Type()       {}
func (*DataRequest_ConnectionCleanup) isDataRequest_Type() {}

func (m *DataRequest) GetReqId() int32 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *DataRequest) GetType() isDataRequest_Type {
	if m != nil {
		return m.Type
	}
	return nil
}

func (m *DataRequest) GetInit() *InitRequest {
	if x, ok := m.GetType().(*DataRequest_Init); ok {
		return x.Init
	}
	return nil
}

func (m *DataRequest) GetGet() *GetRequest {
	if x, ok := m.GetType().(*DataRequest_Get); ok {
		return x.Get
	}
	return nil
}

func (m *DataRequest) GetPut() *PutRequest {
	if x, ok := m.GetType().(*DataRequest_Put); ok {
		return x.Put
	}
	return nil
}

func (m *DataRequest) GetRelease() *ReleaseRequest {
	if x, ok := m.GetType().(*DataRequest_Release); ok {
		return x.Release
	}
	return nil
}

func (m *DataRequest) GetConnectionInfo() *ConnectionInfoRequest {
	if x, ok := m.GetType().(*DataRequest_ConnectionInfo); ok {
		return x.ConnectionInfo
	}
	return nil
}

func (m *DataRequest) GetAcknowledge() *AcknowledgeRequest {
	if x, ok := m.GetType().(*DataRequest_Acknowledge); ok {
		return x.Acknowledge
	}
	return nil
}

func (m *DataRequest) GetConnectionCleanup() *ConnectionCleanupRequest {
	if x, ok := m.GetType().(*DataRequest_ConnectionCleanup); ok {
		return x.ConnectionCleanup
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*DataRequest) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*DataRequest_Init)(nil),
		(*DataRequest_Get)(nil),
		(*DataRequest_Put)(nil),
		(*DataRequest_Release)(nil),
		(*DataRequest_ConnectionInfo)(nil),
		(*DataRequest_Acknowledge)(nil),
		(*DataRequest_ConnectionCleanup)(nil),
	}
}

type DataResponse struct {
	ReqId int32 `protobuf:"varint,1,opt,name=req_id,json=reqId,proto3" json:"req_id,omitempty"`
	// Types that are valid to be assigned to Type:
	//	*DataResponse_Init
	//	*DataResponse_Get
	//	*DataResponse_Put
	//	*DataResponse_Release
	//	*DataResponse_ConnectionInfo
	//	*DataResponse_ConnectionCleanup
	Type isDataResponse_Type `protobuf_oneof:"type"`
}

func (m *DataResponse) Reset()         { *m = DataResponse{} }
func (m *DataResponse) String() string { return proto.CompactTextString(m) }
func (*DataResponse) ProtoMessage()    {}

type isDataResponse_Type interface {
	isDataResponse_Type()
}

type DataResponse_Init struct {
	Init *InitResponse `protobuf:"bytes,2,opt,name=init,proto3,oneof"`
}

type DataResponse_Get struct {
	Get *GetResponse `protobuf:"bytes,3,opt,name=get,proto3,oneof"`
}

type DataResponse_Put struct {
	Put *PutResponse `protobuf:"bytes,4,opt,name=put,proto3,oneof"`
}

type DataResponse_Release struct {
	Release *ReleaseResponse `protobuf:"bytes,5,opt,name=release,proto3,oneof"`
}

type DataResponse_ConnectionInfo struct {
	ConnectionInfo *ConnectionInfoResponse `protobuf:"bytes,6,opt,name=connection_info,json=connectionInfo,proto3,oneof"`
}

type DataResponse_ConnectionCleanup struct {
	ConnectionCleanup *ConnectionCleanupResponse `protobuf:"bytes,8,opt,name=connection_cleanup,json=connectionCleanup,proto3,oneof"`
}

func (*DataResponse_Init) isDataResponse_Type()              {}
func (*DataResponse_Get) isDataResponse_Type()               {}
func (*DataResponse_Put) isDataResponse_Type()               {}
func (*DataResponse_Release) isDataResponse_Type()           {}
func (*DataResponse_ConnectionInfo) isDataResponse_Type()    {}
func (*DataResponse_ConnectionCleanup) isDataResponse_Type() {}

func (m *DataResponse) GetReqId() int32 {
	if m != nil {
		return m.ReqId
	}
	return 0
}

func (m *DataResponse) GetType() isDataResponse_Type {
	if m != nil {
		return m.Type
	}
	return nil
}

func (m *DataResponse) GetInit() *InitResponse {
	if x, ok := m.GetType().(*DataResponse_Init); ok {
		return x.Init
	}
	return nil
}

func (m *DataResponse) GetGet() *GetResponse {
	if x, ok := m.GetType().(*DataResponse_Get); ok {
		return x.Get
	}
	return nil
}

func (m *DataResponse) GetPut() *PutResponse {
	if x, ok := m.GetType().(*DataResponse_Put); ok {
		return x.Put
	}
	return nil
}

func (m *DataResponse) GetRelease() *ReleaseResponse {
	if x, ok := m.GetType().(*DataResponse_Release); ok {
		return x.Release
	}
	return nil
}

func (m *DataResponse) GetConnectionInfo() *ConnectionInfoResponse {
	if x, ok := m.GetType().(*DataResponse_ConnectionInfo); ok {
		return x.ConnectionInfo
	}
	return nil
}

func (m *DataResponse) GetConnectionCleanup() *ConnectionCleanupResponse {
	if x, ok := m.GetType().(*DataResponse_ConnectionCleanup); ok {
		return x.ConnectionCleanup
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*DataResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*DataResponse_Init)(nil),
		(*DataResponse_Get)(nil),
		(*DataResponse_Put)(nil),
		(*DataResponse_Release)(nil),
		(*DataResponse_ConnectionInfo)(nil),
		(*DataResponse_ConnectionCleanup)(nil),
	}
}

type LogSettingsRequest struct {
	Enabled  bool  `protobuf:"varint,1,opt,name=enabled,proto3" json:"enabled,omitempty"`
	LogLevel int32 `protobuf:"varint,2,opt,name=log_level,json=logLevel,proto3" json:"log_level,omitempty"`
}

func (m *LogSettingsRequest) Reset()         { *m = LogSettingsRequest{} }
func (m *LogSettingsRequest) String() string { return proto.CompactTextString(m) }
func (*LogSettingsRequest) ProtoMessage()    {}

func (m *LogSettingsRequest) GetEnabled() bool {
	if m != nil {
		return m.Enabled
	}
	return false
}

func (m *LogSettingsRequest) GetLogLevel() int32 {
	if m != nil {
		return m.LogLevel
	}
	return 0
}

type LogData struct {
	Msg   string `protobuf:"bytes,1,opt,name=msg,proto3" json:"msg,omitempty"`
	Level int32  `protobuf:"varint,2,opt,name=level,proto3" json:"level,omitempty"`
	Name  string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *LogData) Reset()         { *m = LogData{} }
func (m *LogData) String() string { return proto.CompactTextString(m) }
func (*LogData) ProtoMessage()    {}

func (m *LogData) GetMsg() string {
	if m != nil {
		return m.Msg
	}
	return ""
}

func (m *LogData) GetLevel() int32 {
	if m != nil {
		return m.Level
	}
	return 0
}

func (m *LogData) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func init() {
	proto.RegisterEnum("raygate.clientrpc.ClusterInfoType", ClusterInfoType_name, ClusterInfoType_value)
	proto.RegisterType((*InitRequest)(nil), "raygate.clientrpc.InitRequest")
	proto.RegisterType((*InitResponse)(nil), "raygate.clientrpc.InitResponse")
	proto.RegisterType((*GetRequest)(nil), "raygate.clientrpc.GetRequest")
	proto.RegisterType((*GetResponse)(nil), "raygate.clientrpc.GetResponse")
	proto.RegisterType((*PutRequest)(nil), "raygate.clientrpc.PutRequest")
	proto.RegisterType((*PutResponse)(nil), "raygate.clientrpc.PutResponse")
	proto.RegisterType((*WaitRequest)(nil), "raygate.clientrpc.WaitRequest")
	proto.RegisterType((*WaitResponse)(nil), "raygate.clientrpc.WaitResponse")
	proto.RegisterType((*ClientTask)(nil), "raygate.clientrpc.ClientTask")
	proto.RegisterType((*ClientTaskTicket)(nil), "raygate.clientrpc.ClientTaskTicket")
	proto.RegisterType((*TerminateRequest)(nil), "raygate.clientrpc.TerminateRequest")
	proto.RegisterType((*TerminateResponse)(nil), "raygate.clientrpc.TerminateResponse")
	proto.RegisterType((*ClusterInfoRequest)(nil), "raygate.clientrpc.ClusterInfoRequest")
	proto.RegisterType((*ClusterInfoResponse)(nil), "raygate.clientrpc.ClusterInfoResponse")
	proto.RegisterType((*ClientListNamedActorsRequest)(nil), "raygate.clientrpc.ClientListNamedActorsRequest")
	proto.RegisterType((*ClientListNamedActorsResponse)(nil), "raygate.clientrpc.ClientListNamedActorsResponse")
	proto.RegisterType((*KVPutRequest)(nil), "raygate.clientrpc.KVPutRequest")
	proto.RegisterType((*KVPutResponse)(nil), "raygate.clientrpc.KVPutResponse")
	proto.RegisterType((*KVGetRequest)(nil), "raygate.clientrpc.KVGetRequest")
	proto.RegisterType((*KVGetResponse)(nil), "raygate.clientrpc.KVGetResponse")
	proto.RegisterType((*KVDelRequest)(nil), "raygate.clientrpc.KVDelRequest")
	proto.RegisterType((*KVDelResponse)(nil), "raygate.clientrpc.KVDelResponse")
	proto.RegisterType((*KVListRequest)(nil), "raygate.clientrpc.KVListRequest")
	proto.RegisterType((*KVListResponse)(nil), "raygate.clientrpc.KVListResponse")
	proto.RegisterType((*KVExistsRequest)(nil), "raygate.clientrpc.KVExistsRequest")
	proto.RegisterType((*KVExistsResponse)(nil), "raygate.clientrpc.KVExistsResponse")
	proto.RegisterType((*ClientPinRuntimeEnvURIRequest)(nil), "raygate.clientrpc.ClientPinRuntimeEnvURIRequest")
	proto.RegisterType((*ClientPinRuntimeEnvURIResponse)(nil), "raygate.clientrpc.ClientPinRuntimeEnvURIResponse")
	proto.RegisterType((*ConnectionInfoRequest)(nil), "raygate.clientrpc.ConnectionInfoRequest")
	proto.RegisterType((*ConnectionInfoResponse)(nil), "raygate.clientrpc.ConnectionInfoResponse")
	proto.RegisterType((*ConnectionCleanupRequest)(nil), "raygate.clientrpc.ConnectionCleanupRequest")
	proto.RegisterType((*ConnectionCleanupResponse)(nil), "raygate.clientrpc.ConnectionCleanupResponse")
	proto.RegisterType((*AcknowledgeRequest)(nil), "raygate.clientrpc.AcknowledgeRequest")
	proto.RegisterType((*ReleaseRequest)(nil), "raygate.clientrpc.ReleaseRequest")
	proto.RegisterType((*ReleaseResponse)(nil), "raygate.clientrpc.ReleaseResponse")
	proto.RegisterType((*DataRequest)(nil), "raygate.clientrpc.DataRequest")
	proto.RegisterType((*DataResponse)(nil), "raygate.clientrpc.DataResponse")
	proto.RegisterType((*LogSettingsRequest)(nil), "raygate.clientrpc.LogSettingsRequest")
	proto.RegisterType((*LogData)(nil), "raygate.clientrpc.LogData")
}
