// Package runtimeenv asks the cluster's runtime-env agent to materialize a
// client's runtime environment before that client's backend server is
// launched.
package runtimeenv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/golang/protobuf/proto"

	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/rpc/agentrpc"
)

var (
	// ErrAgentUnreachable means the agent never produced a reply within the
	// retry budget.
	ErrAgentUnreachable = errors.New("runtime env agent unreachable")

	// ErrAgentFailed means the agent replied that the environment cannot be
	// created. This is final; retrying will not help.
	ErrAgentFailed = errors.New("runtime env creation failed")
)

const (
	creationPath = "/get_or_create_runtime_env"

	// The per-attempt HTTP timeout is deliberately unbounded; the agent is a
	// node-local service and environment creation can legitimately take
	// minutes.
	initialInterval = 500 * time.Millisecond
	maxRetries      = 5
)

// Provisioner issues get-or-create calls against one agent.
type Provisioner struct {
	agentURL string
	client   *http.Client

	initialInterval time.Duration
	maxRetries      uint64
}

// NewProvisioner returns a Provisioner for the agent at agentURL, e.g.
// "http://127.0.0.1:52365".
func NewProvisioner(agentURL string) *Provisioner {
	return &Provisioner{
		agentURL:        agentURL,
		client:          &http.Client{},
		initialInterval: initialInterval,
		maxRetries:      maxRetries,
	}
}

// GetOrCreate materializes serializedEnv and returns the serialized runtime
// env context to hand to the backend on port. An empty or "{}" environment
// skips the agent and yields the default context. Transport failures are
// retried with exponential backoff (0.5s initial, doubled, 5 retries); a
// FAILED reply aborts immediately.
func (p *Provisioner) GetOrCreate(ctx context.Context, serializedEnv, envConfig string, port uint16) (string, error) {
	if serializedEnv == "" || serializedEnv == "{}" {
		return "", nil
	}

	body, err := proto.Marshal(&agentrpc.GetOrCreateRuntimeEnvRequest{
		SerializedRuntimeEnv: serializedEnv,
		RuntimeEnvConfig:     envConfig,
		JobId:                []byte(fmt.Sprintf("ray_client_server_%d", port)),
		SourceProcess:        "client_server",
	})
	if err != nil {
		return "", fmt.Errorf("marshal runtime env request: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.initialInterval
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	var envContext string
	operation := func() error {
		var err error
		envContext, err = p.post(ctx, body)
		return err
	}
	notify := func(err error, wait time.Duration) {
		dlog.Warnf(ctx, "runtime env agent request failed (retrying in %s): %v", wait, err)
	}
	err = backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(bo, p.maxRetries), ctx), notify)
	if err != nil {
		if errors.Is(err, ErrAgentFailed) || errors.Is(err, errBadStatus) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrAgentUnreachable, err)
	}
	return envContext, nil
}

var errBadStatus = errors.New("unexpected runtime env agent status")

func (p *Provisioner) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.agentURL+creationPath, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("agent returned HTTP %d", resp.StatusCode)
	}
	replyBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var reply agentrpc.GetOrCreateRuntimeEnvReply
	if err := proto.Unmarshal(replyBody, &reply); err != nil {
		return "", backoff.Permanent(fmt.Errorf("unmarshal runtime env reply: %w", err))
	}
	switch reply.GetStatus() {
	case agentrpc.AgentRpcStatus_AGENT_RPC_STATUS_OK:
		return reply.GetSerializedRuntimeEnvContext(), nil
	case agentrpc.AgentRpcStatus_AGENT_RPC_STATUS_FAILED:
		return "", backoff.Permanent(fmt.Errorf("%w: %s", ErrAgentFailed, reply.GetErrorMessage()))
	default:
		return "", backoff.Permanent(fmt.Errorf("%w: %v", errBadStatus, reply.GetStatus()))
	}
}
