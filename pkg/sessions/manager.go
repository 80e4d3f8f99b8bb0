// Package sessions owns the per-client backend servers: port allocation,
// spawn and readiness verification, channel lookup, reconnect bookkeeping,
// and reclamation of dead backends.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/pkg/cluster"
	"github.com/raygate/raygate/pkg/proc"
)

// ErrDuplicateClient means Register was called for a client id that already
// has a live backend.
var ErrDuplicateClient = errors.New("client already has a backend")

const (
	DefaultPortLo = 23000
	DefaultPortHi = 24000

	defaultChannelTimeout = 30 * time.Second
	defaultReapInterval   = 30 * time.Second

	// How often the readiness loop re-inspects a freshly spawned child's
	// command line while waiting for the shim to exec into the server.
	cmdlineCheckInterval = 500 * time.Millisecond
)

// JobSpec is what the data servicer extracts from a session's init message.
// Config stays opaque; the runtime env fields drive provisioning.
type JobSpec struct {
	Config               []byte
	SerializedRuntimeEnv string
	RuntimeEnvConfig     string
}

// EnvProvisioner materializes a runtime environment and returns the context
// string handed to the spawned backend.
type EnvProvisioner interface {
	GetOrCreate(ctx context.Context, serializedEnv, envConfig string, port uint16) (string, error)
}

type Config struct {
	PortLo         uint16
	PortHi         uint16
	ChannelTimeout time.Duration
	ReapInterval   time.Duration
	Python         string
	RedisUsername  string
	RedisPassword  string
}

func (c *Config) withDefaults() {
	if c.PortLo == 0 && c.PortHi == 0 {
		c.PortLo = DefaultPortLo
		c.PortHi = DefaultPortHi
	}
	if c.ChannelTimeout == 0 {
		c.ChannelTimeout = defaultChannelTimeout
	}
	if c.ReapInterval == 0 {
		c.ReapInterval = defaultReapInterval
	}
}

// Manager is the session table. One mutex guards the backend map, the free
// port list, and the stream bookkeeping maps; it is never held across a
// blocking wait.
type Manager struct {
	cfg     Config
	cluster *cluster.Info
	envs    EnvProvisioner

	// procCtx bounds the lifetime of spawned backends; it is the server's
	// context, not any single stream's.
	procCtx context.Context

	mu         sync.Mutex
	servers    map[string]*Backend
	ports      *PortPool
	lastSeen   map[string]time.Time
	graces     map[string]uint32
	numClients int
}

func NewManager(procCtx context.Context, cfg Config, clusterInfo *cluster.Info, envs EnvProvisioner) *Manager {
	cfg.withDefaults()
	return &Manager{
		cfg:      cfg,
		cluster:  clusterInfo,
		envs:     envs,
		procCtx:  procCtx,
		servers:  make(map[string]*Backend),
		ports:    NewPortPool(cfg.PortLo, cfg.PortHi),
		lastSeen: make(map[string]time.Time),
		graces:   make(map[string]uint32),
	}
}

// Register allocates a port, opens the channel, and installs a fresh Backend
// for clientID.
func (m *Manager) Register(clientID string) (*Backend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.servers[clientID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateClient, clientID)
	}
	port, err := m.ports.Acquire()
	if err != nil {
		return nil, err
	}
	conn, err := grpc.NewClient(
		fmt.Sprintf("127.0.0.1:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		m.ports.Release(port)
		return nil, err
	}
	b := newBackend(port, conn)
	m.servers[clientID] = b
	return b, nil
}

// Start provisions the client's runtime environment, spawns the backend
// server, waits for the child's command line to identify the server binary
// (a shim may exec in between), and resolves the backend's process future.
// The returned bool reports whether the process is running.
func (m *Manager) Start(ctx context.Context, clientID string, spec JobSpec) (bool, error) {
	b := m.Lookup(clientID)
	if b == nil {
		return false, fmt.Errorf("client %s is not registered", clientID)
	}

	fail := func(err error) (bool, error) {
		b.SetResult(err)
		return false, err
	}

	envContext, err := m.envs.GetOrCreate(ctx, spec.SerializedRuntimeEnv, spec.RuntimeEnvConfig, b.Port)
	if err != nil {
		return fail(fmt.Errorf("provision runtime env for client %s: %w", clientID, err))
	}
	address, err := m.cluster.Address(ctx)
	if err != nil {
		return fail(err)
	}
	logDir, err := m.cluster.LogDir(ctx)
	if err != nil {
		return fail(err)
	}
	stdout, stderr, err := cluster.OutputFiles(logDir, b.Port)
	if err != nil {
		return fail(fmt.Errorf("open backend output files: %w", err))
	}

	cmd := cluster.ServerCmd{
		Python:            m.cfg.Python,
		Address:           address,
		Port:              b.Port,
		RuntimeEnvContext: envContext,
		RedisUsername:     m.cfg.RedisUsername,
		RedisPassword:     m.cfg.RedisPassword,
	}.Build(m.procCtx)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		_ = stdout.Close()
		_ = stderr.Close()
		return fail(fmt.Errorf("spawn backend for client %s: %w", clientID, err))
	}
	b.Attach(cmd, stdout, stderr)
	dlog.Infof(ctx, "spawned backend for client %s on port %d (pid %d)", clientID, b.Port, b.Pid())

	for {
		if code, exited := b.PollExit(); exited {
			dlog.Errorf(ctx, "backend for client %s exited with code %d before becoming ready", clientID, code)
			b.SetResult(ErrStartupFailed)
			return false, nil
		}
		ok, err := proc.CommandLineContains(ctx, b.Pid(), cluster.ServerCmdline)
		if err == nil && ok {
			b.SetResult(nil)
			dlog.Infof(ctx, "backend for client %s is ready", clientID)
			return true, nil
		}
		select {
		case <-ctx.Done():
			return fail(ctx.Err())
		case <-time.After(cmdlineCheckInterval):
		}
	}
}

// Lookup returns the Backend for clientID, or nil.
func (m *Manager) Lookup(clientID string) *Backend {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.servers[clientID]
}

// ChannelFor blocks until the backend for clientID is ready and its channel
// has connected, bounded by the channel timeout. It returns nil when the
// client is unknown, startup failed, or the deadline passed.
func (m *Manager) ChannelFor(ctx context.Context, clientID string) *grpc.ClientConn {
	b := m.Lookup(clientID)
	if b == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, m.cfg.ChannelTimeout)
	defer cancel()
	if err := b.WaitReady(ctx); err != nil {
		dlog.Warnf(ctx, "backend for client %s did not become ready: %v", clientID, err)
		return nil
	}
	conn := b.Channel()
	for {
		s := conn.GetState()
		if s == connectivity.Ready {
			return conn
		}
		if s == connectivity.Idle {
			conn.Connect()
		}
		if !conn.WaitForStateChange(ctx, s) {
			dlog.Warnf(ctx, "timed out waiting for channel to client %s backend on port %d", clientID, b.Port)
			return nil
		}
	}
}

// HasChannel reports whether clientID has a backend whose process future is
// resolved.
func (m *Manager) HasChannel(clientID string) bool {
	b := m.Lookup(clientID)
	return b != nil && b.Ready()
}

// TouchSeen moves the stream-start timestamp for a reconnecting client
// forward. It reports false when the session is already cleaned up.
func (m *Manager) TouchSeen(clientID string, t time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lastSeen[clientID]; !ok {
		return false
	}
	m.lastSeen[clientID] = t
	return true
}

// RecordNew records the stream start of a new session and bumps the client
// count.
func (m *Manager) RecordNew(clientID string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSeen[clientID] = t
	m.numClients++
}

// SetGrace records the reconnect grace period a client declared at init.
func (m *Manager) SetGrace(clientID string, seconds uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.graces[clientID] = seconds
}

// Grace returns the recorded reconnect grace period for clientID.
func (m *Manager) Grace(clientID string) (uint32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.graces[clientID]
	return g, ok
}

// NumClients returns the number of live sessions.
func (m *Manager) NumClients() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.numClients
}

// FinalizeStream performs end-of-stream cleanup for the Datapath stream that
// started at startTime. It is a no-op when another path already cleaned the
// session up, or when a newer stream for the same client has since started
// (i.e. a reconnect won the race). It reports whether cleanup happened.
func (m *Manager) FinalizeStream(ctx context.Context, clientID string, startTime time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	last, ok := m.lastSeen[clientID]
	if !ok {
		return false
	}
	if last.After(startTime) {
		dlog.Debugf(ctx, "client %s reconnected, skipping cleanup of the old stream", clientID)
		return false
	}
	m.numClients--
	delete(m.lastSeen, clientID)
	delete(m.graces, clientID)
	if b, ok := m.servers[clientID]; ok {
		// Unblocks any servicer still waiting for readiness.
		b.SetResult(ErrStartupFailed)
		m.removeLocked(ctx, clientID, b)
	}
	dlog.Infof(ctx, "cleaned up session of client %s", clientID)
	return true
}

func (m *Manager) removeLocked(ctx context.Context, clientID string, b *Backend) {
	b.Kill()
	if err := b.Channel().Close(); err != nil {
		dlog.Debugf(ctx, "closing channel to client %s backend: %v", clientID, err)
	}
	delete(m.servers, clientID)
	m.ports.Release(b.Port)
}

// Reaper periodically removes backends whose process has exited, returns
// their ports to the pool, and drops their stream bookkeeping. It runs until
// ctx is done; a failing pass is logged and the loop continues.
func (m *Manager) Reaper(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.ReapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.reap(ctx)
		}
	}
}

func (m *Manager) reap(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			dlog.Errorf(ctx, "reaper pass failed: %v", r)
		}
	}()
	m.mu.Lock()
	ids := make([]string, 0, len(m.servers))
	for id := range m.servers {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	for _, id := range ids {
		m.mu.Lock()
		if b, ok := m.servers[id]; ok {
			if code, exited := b.PollExit(); exited {
				dlog.Infof(ctx, "reaping client %s backend on port %d (exit code %d)", id, b.Port, code)
				m.removeLocked(ctx, id, b)
				// Dropping the bookkeeping refuses reconnects to the dead
				// backend; a still-active stream's finalization becomes a
				// no-op.
				if _, ok := m.lastSeen[id]; ok {
					delete(m.lastSeen, id)
					delete(m.graces, id)
					m.numClients--
				}
			}
		}
		m.mu.Unlock()
	}
}

// ShutdownAll force-kills every backend. The safety net for platforms where
// children do not die with the proxier.
func (m *Manager) ShutdownAll(ctx context.Context) {
	m.mu.Lock()
	backends := make([]*Backend, 0, len(m.servers))
	for _, b := range m.servers {
		backends = append(backends, b)
	}
	m.mu.Unlock()
	dlog.Infof(ctx, "shutting down %d backend(s)", len(backends))
	for _, b := range backends {
		b.SetResult(ErrStartupFailed)
		b.Kill()
	}
}
