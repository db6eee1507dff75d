// Command cli is the operator tool for the banking service: seeding,
// registration and account housekeeping straight against the database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amirasaad/banking/infra/initializer"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/fatih/color"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		os.Exit(2)
	}
	if err := run(os.Args[1:]); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := newCLI(app.New(deps, cfg), os.Stdout, os.Stdin)
	return c.execute(ctx, args)
}
