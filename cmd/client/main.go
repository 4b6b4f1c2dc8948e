package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/solarsync/internal/client/auth"
	"github.com/iudanet/solarsync/internal/client/cli"
	"github.com/iudanet/solarsync/internal/client/iocli"
	"github.com/iudanet/solarsync/internal/client/storage/boltdb"
	"github.com/iudanet/solarsync/internal/config"
	"github.com/iudanet/solarsync/internal/platform/otel"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFiles(".env"); err != nil {
		return err
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	showVersion := flag.Bool("version", false, "Show version information")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		cli.PrintUsage(os.Stderr)
	}
	flag.Parse()

	args := flag.Args()
	switch {
	case *showVersion || (len(args) > 0 && args[0] == "version"):
		printVersion()
		return nil
	case len(args) > 0 && args[0] == "help":
		cli.PrintUsage(os.Stdout)
		return nil
	case len(args) == 0:
		cli.PrintUsage(os.Stderr)
		return errors.New("missing command")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, "solarsync-client", Version, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to flush traces", "error", err)
		}
	}()

	// Открываем BoltDB storage
	db, err := boltdb.New(ctx, cfg.DBPath, boltdb.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	a := &app{cfg: cfg, db: db, logger: logger}
	defer a.close()

	c := cli.New(iocli.NewStdio(), auth.NewService(db, logger), a.connect, cli.Options{
		APIURL:     cfg.APIURL,
		BaseID:     cfg.BaseID,
		Token:      cfg.APIToken,
		Passphrase: cfg.Passphrase,
	})

	err = c.Run(ctx, args[0], args[1:])
	if errors.Is(err, cli.ErrUnknownCommand) {
		cli.PrintUsage(os.Stderr)
	}
	return err
}

func printVersion() {
	fmt.Printf("SolarSync Field Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
