package proxier

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Env is the process environment of the proxier.
type Env struct {
	LogLevel   string `env:"RAYGATE_LOG_LEVEL,default=info"`
	ServerPort uint16 `env:"RAYGATE_SERVER_PORT,default=10001"`

	// ClusterAddress is the address of the cluster the backends attach to.
	// When empty, bootstrap is triggered lazily on first session.
	ClusterAddress string `env:"RAYGATE_CLUSTER_ADDRESS"`
	SessionLogDir  string `env:"RAYGATE_SESSION_LOG_DIR,default=/tmp/raygate/sessions"`

	RuntimeEnvAgentAddress string `env:"RAYGATE_RUNTIME_ENV_AGENT_ADDRESS,default=http://127.0.0.1:52365"`

	RedisAddress  string `env:"RAYGATE_REDIS_ADDRESS"`
	RedisUsername string `env:"RAYGATE_REDIS_USERNAME"`
	RedisPassword string `env:"RAYGATE_REDIS_PASSWORD"`

	PythonExecutable string `env:"RAYGATE_PYTHON_EXECUTABLE,default=python"`

	PortRangeLo    uint16        `env:"RAYGATE_PORT_RANGE_LO,default=23000"`
	PortRangeHi    uint16        `env:"RAYGATE_PORT_RANGE_HI,default=24000"`
	ChannelTimeout time.Duration `env:"RAYGATE_CHANNEL_TIMEOUT,default=30s"`
	ReapInterval   time.Duration `env:"RAYGATE_REAP_INTERVAL,default=30s"`
}

type envKey struct{}

// LoadEnv parses the process environment and returns a context that carries
// it.
func LoadEnv(ctx context.Context) (context.Context, error) {
	var env Env
	if err := envconfig.Process(ctx, &env); err != nil {
		return ctx, err
	}
	return WithEnv(ctx, &env), nil
}

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

func GetEnv(ctx context.Context) *Env {
	env, ok := ctx.Value(envKey{}).(*Env)
	if !ok {
		return nil
	}
	return env
}
