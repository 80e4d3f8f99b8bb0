// Go bindings for runtime_env_agent.proto, maintained in the legacy
// github.com/golang/protobuf style. These messages never travel over gRPC;
// they are serialized into the body of an HTTP POST to the agent.

package agentrpc

import (
	proto "github.com/golang/protobuf/proto"
)

type AgentRpcStatus int32

const (
	AgentRpcStatus_AGENT_RPC_STATUS_UNSPECIFIED AgentRpcStatus = 0
	AgentRpcStatus_AGENT_RPC_STATUS_OK          AgentRpcStatus = 1
	AgentRpcStatus_AGENT_RPC_STATUS_FAILED      AgentRpcStatus = 2
)

var AgentRpcStatus_name = map[int32]string{
	0: "AGENT_RPC_STATUS_UNSPECIFIED",
	1: "AGENT_RPC_STATUS_OK",
	2: "AGENT_RPC_STATUS_FAILED",
}

var AgentRpcStatus_value = map[string]int32{
	"AGENT_RPC_STATUS_UNSPECIFIED": 0,
	"AGENT_RPC_STATUS_OK":          1,
	"AGENT_RPC_STATUS_FAILED":      2,
}

func (x AgentRpcStatus) String() string {
	return proto.EnumName(AgentRpcStatus_name, int32(x))
}

type GetOrCreateRuntimeEnvRequest struct {
	SerializedRuntimeEnv string `protobuf:"bytes,1,opt,name=serialized_runtime_env,json=serializedRuntimeEnv,proto3" json:"serialized_runtime_env,omitempty"`
	RuntimeEnvConfig     string `protobuf:"bytes,2,opt,name=runtime_env_config,json=runtimeEnvConfig,proto3" json:"runtime_env_config,omitempty"`
	JobId                []byte `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	SourceProcess        string `protobuf:"bytes,4,opt,name=source_process,json=sourceProcess,proto3" json:"source_process,omitempty"`
}

func (m *GetOrCreateRuntimeEnvRequest) Reset()         { *m = GetOrCreateRuntimeEnvRequest{} }
func (m *GetOrCreateRuntimeEnvRequest) String() string { return proto.CompactTextString(m) }
func (*GetOrCreateRuntimeEnvRequest) ProtoMessage()    {}

func (m *GetOrCreateRuntimeEnvRequest) GetSerializedRuntimeEnv() string {
	if m != nil {
		return m.SerializedRuntimeEnv
	}
	return ""
}

func (m *GetOrCreateRuntimeEnvRequest) GetRuntimeEnvConfig() string {
	if m != nil {
		return m.RuntimeEnvConfig
	}
	return ""
}

func (m *GetOrCreateRuntimeEnvRequest) GetJobId() []byte {
	if m != nil {
		return m.JobId
	}
	return nil
}

func (m *GetOrCreateRuntimeEnvRequest) GetSourceProcess() string {
	if m != nil {
		return m.SourceProcess
	}
	return ""
}

type GetOrCreateRuntimeEnvReply struct {
	Status                      AgentRpcStatus `protobuf:"varint,1,opt,name=status,proto3,enum=raygate.agentrpc.AgentRpcStatus" json:"status,omitempty"`
	ErrorMessage                string         `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	SerializedRuntimeEnvContext string         `protobuf:"bytes,3,opt,name=serialized_runtime_env_context,json=serializedRuntimeEnvContext,proto3" json:"serialized_runtime_env_context,omitempty"`
}

func (m *GetOrCreateRuntimeEnvReply) Reset()         { *m = GetOrCreateRuntimeEnvReply{} }
func (m *GetOrCreateRuntimeEnvReply) String() string { return proto.CompactTextString(m) }
func (*GetOrCreateRuntimeEnvReply) ProtoMessage()    {}

func (m *GetOrCreateRuntimeEnvReply) GetStatus() AgentRpcStatus {
	if m != nil {
		return m.Status
	}
	return AgentRpcStatus_AGENT_RPC_STATUS_UNSPECIFIED
}

func (m *GetOrCreateRuntimeEnvReply) GetErrorMessage() string {
	if m != nil {
		return m.ErrorMessage
	}
	return ""
}

func (m *GetOrCreateRuntimeEnvReply) GetSerializedRuntimeEnvContext() string {
	if m != nil {
		return m.SerializedRuntimeEnvContext
	}
	return ""
}

func init() {
	proto.RegisterEnum("raygate.agentrpc.AgentRpcStatus", AgentRpcStatus_name, AgentRpcStatus_value)
	proto.RegisterType((*GetOrCreateRuntimeEnvRequest)(nil), "raygate.agentrpc.GetOrCreateRuntimeEnvRequest")
	proto.RegisterType((*GetOrCreateRuntimeEnvReply)(nil), "raygate.agentrpc.GetOrCreateRuntimeEnvReply")
}
