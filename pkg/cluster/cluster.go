// Package cluster provides the proxier's view of the compute cluster it
// fronts: the bootstrap address, the per-session log directory, and the
// command line used to launch a per-client backend server.
package cluster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/datawire/dlib/dlog"
)

// BootstrapFunc produces the cluster address and the session log directory.
// It is invoked at most once, on first use.
type BootstrapFunc func(ctx context.Context) (address, logDir string, err error)

// Info caches the cluster address and log directory. When no static address
// is configured, bootstrap is triggered lazily so that a proxier fronting an
// already-running cluster starts without touching it.
type Info struct {
	mu        sync.Mutex
	address   string
	logDir    string
	bootstrap BootstrapFunc
	done      bool
}

func NewInfo(address, logDir string, bootstrap BootstrapFunc) *Info {
	return &Info{
		address:   address,
		logDir:    logDir,
		bootstrap: bootstrap,
		done:      address != "",
	}
}

func (i *Info) resolve(ctx context.Context) error {
	if i.done {
		return nil
	}
	if i.bootstrap == nil {
		return fmt.Errorf("no cluster address configured and no bootstrap available")
	}
	dlog.Infof(ctx, "no cluster address configured, bootstrapping")
	address, logDir, err := i.bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("cluster bootstrap: %w", err)
	}
	i.address = address
	if logDir != "" {
		i.logDir = logDir
	}
	i.done = true
	dlog.Infof(ctx, "cluster bootstrapped at %s", address)
	return nil
}

// Address returns the cluster address, bootstrapping on first use.
func (i *Info) Address(ctx context.Context) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.resolve(ctx); err != nil {
		return "", err
	}
	return i.address, nil
}

// LogDir returns the directory that backend stdio files are written to,
// bootstrapping on first use.
func (i *Info) LogDir(ctx context.Context) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.resolve(ctx); err != nil {
		return "", err
	}
	return i.logDir, nil
}

// OutputFiles opens (creating if necessary) the stdout and stderr files for
// the backend listening on port. The caller owns both files.
func OutputFiles(logDir string, port uint16) (stdout, stderr *os.File, err error) {
	if err = os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, err
	}
	stdout, err = os.OpenFile(
		filepath.Join(logDir, fmt.Sprintf("ray_client_server_%d.out", port)),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	stderr, err = os.OpenFile(
		filepath.Join(logDir, fmt.Sprintf("ray_client_server_%d.err", port)),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		_ = stdout.Close()
		return nil, nil, err
	}
	return stdout, stderr, nil
}
