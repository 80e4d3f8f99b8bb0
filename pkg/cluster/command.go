package cluster

import (
	"context"
	"fmt"

	"github.com/datawire/dlib/dexec"

	"github.com/raygate/raygate/pkg/proc"
)

// ServerCmdline is the substring that identifies a fully execed backend
// server process. The readiness check after spawn waits for the child's
// command line to contain it.
const ServerCmdline = "-m ray.util.client.server"

// ServerCmd describes one backend server launch.
type ServerCmd struct {
	// Python is the interpreter used to launch the backend module. Defaults
	// to "python".
	Python string

	Address           string
	Host              string
	Port              uint16
	RuntimeEnvContext string
	RedisUsername     string
	RedisPassword     string
}

// Build assembles the dexec command for this launch. The command is bound to
// ctx and dies with the proxier on platforms that support it.
func (s ServerCmd) Build(ctx context.Context) *dexec.Cmd {
	python := s.Python
	if python == "" {
		python = "python"
	}
	host := s.Host
	if host == "" {
		host = "127.0.0.1"
	}
	args := []string{
		"-m", "ray.util.client.server",
		"--address=" + s.Address,
		"--host=" + host,
		fmt.Sprintf("--port=%d", s.Port),
		"--mode=specific-server",
	}
	if s.RuntimeEnvContext != "" {
		args = append(args, "--serialized-runtime-env-context="+s.RuntimeEnvContext)
	}
	if s.RedisUsername != "" {
		args = append(args, "--redis-username="+s.RedisUsername)
	}
	if s.RedisPassword != "" {
		args = append(args, "--redis-password="+s.RedisPassword)
	}
	cmd := dexec.CommandContext(ctx, python, args...)
	cmd.SysProcAttr = proc.FateSharingAttrs()
	return cmd
}
