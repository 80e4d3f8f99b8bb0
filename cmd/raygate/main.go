package main

import (
	"context"
	"os"

	"github.com/datawire/dlib/dlog"

	"github.com/raygate/raygate/pkg/log"
	"github.com/raygate/raygate/pkg/proxier"
)

func main() {
	ctx := context.Background()
	ctx = log.MakeBaseLogger(ctx, os.Getenv("RAYGATE_LOG_LEVEL"))

	if err := proxier.Main(ctx, os.Args[1:]...); err != nil {
		dlog.Errorf(ctx, "quit: %v", err)
		os.Exit(1)
	}
}
