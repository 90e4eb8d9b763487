package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kvisle/herald/internal/commands"
	"github.com/kvisle/herald/internal/config"
	"github.com/kvisle/herald/internal/discord"
	"github.com/kvisle/herald/internal/logging"
	"github.com/kvisle/herald/internal/storage"
	"github.com/kvisle/herald/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg)
	log.Info().Str("app", version.AppName).Msg("starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(ctx, cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	// Close waits for the store's workers, which only exit once ctx is
	// cancelled.
	defer func() {
		cancel()
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("closing storage")
		}
	}()

	// A malformed command tree is a programming error; refuse to start.
	cmds, err := commands.New()
	if err != nil {
		return fmt.Errorf("command registry: %w", err)
	}
	log.Info().Int("commands", len(cmds)).Msg("registry validated")

	errCh := make(chan error, 1)
	go func() {
		errCh <- discord.Run(ctx, cfg, store, cmds, log)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("bot: %w", err)
		}
	}

	log.Info().Msg("exited cleanly")
	return nil
}
