package sessions

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"

	"google.golang.org/grpc"

	"github.com/datawire/dlib/dexec"
)

// ErrStartupFailed is the failure sentinel of a Backend's process future.
var ErrStartupFailed = errors.New("backend server failed to start")

// Backend represents one spawned per-client server: its port, a one-shot
// future that resolves once the child is known to be running (or known to
// have failed), and a pre-opened gRPC channel to 127.0.0.1:port.
//
// The channel exists from registration but is only usable once the future
// resolves successfully.
type Backend struct {
	Port uint16

	conn     *grpc.ClientConn
	resolved chan struct{}

	mu       sync.Mutex
	done     bool
	failure  error
	cmd      *dexec.Cmd
	exited   bool
	exitCode int
}

func newBackend(port uint16, conn *grpc.ClientConn) *Backend {
	return &Backend{
		Port:     port,
		conn:     conn,
		resolved: make(chan struct{}),
	}
}

// Channel returns the client channel to the backend.
func (b *Backend) Channel() *grpc.ClientConn {
	return b.conn
}

// Attach stores the spawned process and starts collecting its exit status.
// The given closers (stdio files) are closed once the process exits.
func (b *Backend) Attach(cmd *dexec.Cmd, closers ...io.Closer) {
	b.mu.Lock()
	b.cmd = cmd
	b.mu.Unlock()
	go func() {
		err := cmd.Wait()
		code := 0
		if err != nil {
			var ee *exec.ExitError
			if errors.As(err, &ee) {
				code = ee.ExitCode()
			} else {
				code = -1
			}
		}
		b.mu.Lock()
		b.exited = true
		b.exitCode = code
		b.mu.Unlock()
		for _, c := range closers {
			_ = c.Close()
		}
	}()
}

// SetResult resolves the process future; a nil err resolves to running, a
// non-nil err to the failure sentinel. The first call wins and later calls
// are ignored.
func (b *Backend) SetResult(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	b.done = true
	b.failure = err
	close(b.resolved)
}

// Ready reports, without blocking, whether the process future has resolved
// (to either outcome).
func (b *Backend) Ready() bool {
	select {
	case <-b.resolved:
		return true
	default:
		return false
	}
}

// WaitReady blocks until the future resolves or ctx is done. It returns
// ErrStartupFailed when the future resolved to the failure sentinel.
func (b *Backend) WaitReady(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.resolved:
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failure != nil {
		return ErrStartupFailed
	}
	return nil
}

// PollExit reports whether the attached process has exited, and with what
// code. A backend with no attached process reports still-running.
func (b *Backend) PollExit() (code int, exited bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.exitCode, b.exited
}

// Pid returns the attached process id, or 0 when nothing is attached.
func (b *Backend) Pid() int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cmd == nil || b.cmd.Process == nil {
		return 0
	}
	return int32(b.cmd.Process.Pid)
}

// Kill force-kills the attached process. It is a best-effort no-op when no
// process is attached or the process already exited.
func (b *Backend) Kill() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cmd == nil || b.cmd.Process == nil || b.exited {
		return
	}
	_ = b.cmd.Process.Kill()
}
