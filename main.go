package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"toolkit/cmd"
	"toolkit/internal/build"
)

// main is the entry point for the toolkit. It initializes build
// information, installs signal handling so long sweeps can be
// interrupted, and hands control to the CLI.
func main() {
	// Initialize build information including version, commit hash, and build time
	build.Initialize()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx)
	stop()

	// No deferred cleanup may follow: os.Exit skips defers.
	os.Exit(code)
}
