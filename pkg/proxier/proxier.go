// Package proxier wires the client-session proxier together: the gRPC
// listener with its three forwarded services, the session manager and its
// reaper, and the shutdown path.
package proxier

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/pkg/cluster"
	"github.com/raygate/raygate/pkg/kv"
	"github.com/raygate/raygate/pkg/runtimeenv"
	"github.com/raygate/raygate/pkg/sessions"
	"github.com/raygate/raygate/pkg/version"
	"github.com/raygate/raygate/rpc/clientrpc"
)

// Main starts the proxier and blocks until it terminates.
func Main(ctx context.Context, _ ...string) error {
	dlog.Infof(ctx, "raygate %s [uid = %s]", version.Version, uuid.New().String())

	ctx, err := LoadEnv(ctx)
	if err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	env := GetEnv(ctx)

	clusterInfo := cluster.NewInfo(env.ClusterAddress, env.SessionLogDir, nil)
	provisioner := runtimeenv.NewProvisioner(env.RuntimeEnvAgentAddress)
	mgr := sessions.NewManager(ctx, sessions.Config{
		PortLo:         env.PortRangeLo,
		PortHi:         env.PortRangeHi,
		ChannelTimeout: env.ChannelTimeout,
		ReapInterval:   env.ReapInterval,
		Python:         env.PythonExecutable,
		RedisUsername:  env.RedisUsername,
		RedisPassword:  env.RedisPassword,
	}, clusterInfo, provisioner)

	var store kv.Store
	if env.RedisAddress != "" {
		store = kv.NewRedisStore(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	} else {
		dlog.Infof(ctx, "no redis address configured, pre-session kv operations will fail")
	}

	stopped := make(chan struct{})
	grpcServer := grpc.NewServer()
	clientrpc.RegisterRayletDriverServer(grpcServer, newDriverServer(mgr, store))
	clientrpc.RegisterRayletDataStreamerServer(grpcServer, newDataServer(ctx, mgr, stopped))
	clientrpc.RegisterRayletLogStreamerServer(grpcServer, newLogsServer(mgr))
	healthpb.RegisterHealthServer(grpcServer, health.NewServer())

	g := dgroup.NewGroup(ctx, dgroup.GroupConfig{
		EnableSignalHandling: true,
	})

	g.Go("session-reaper", mgr.Reaper)

	g.Go("grpc-listener", func(ctx context.Context) error {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", env.ServerPort))
		if err != nil {
			return err
		}
		dlog.Infof(ctx, "listening on %s", lis.Addr())
		go func() {
			<-ctx.Done()
			// Wakes all grace-period waits so sessions finish promptly.
			close(stopped)
			grpcServer.Stop()
		}()
		err = grpcServer.Serve(lis)
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	err = g.Wait()
	mgr.ShutdownAll(ctx)
	return err
}
