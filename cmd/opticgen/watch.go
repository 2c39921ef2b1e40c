package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/authcorp/optics/internal/watch"
)

func newWatchCmd() *cobra.Command {
	flags := &generateFlags{}
	var delay = watch.DefaultDelay

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate optics whenever the input file changes",
		Long: `Generate optics once, then again every time the input file or the
configuration file is saved. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, flags, delay)
		},
	}

	addGenerateFlags(cmd, flags)
	cmd.Flags().DurationVar(&delay, "delay", delay, "Time to wait for writes to settle before regenerating")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, flags *generateFlags, delay time.Duration) error {
	if flags.file == "" {
		return errors.New("no input file: pass --file or run from go generate")
	}
	if err := runGenerate(cmd, flags); err != nil {
		return err
	}

	files := []string{flags.file}
	if flags.configPath != "" {
		files = append(files, flags.configPath)
	}

	w, err := watch.New(files, delay, func(changed []string) error {
		logger.Info("regenerating", zap.Strings("changed", changed))
		return runGenerate(cmd, flags)
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", flags.file)
	return w.Run(ctx)
}
