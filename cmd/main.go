package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"crowd-escrow/internal/config"
)

// signalExit is returned by serve after a graceful shutdown so main can exit
// with the conventional 128+signal status.
type signalExit struct {
	sig syscall.Signal
}

func (e signalExit) Error() string {
	return fmt.Sprintf("stopped by %s", e.sig)
}

// main is the entry point of crowd-escrow. It dispatches to the serve,
// migrate and seed commands; serve runs when no command is given.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	err := newRootCmd().Execute()
	var stopped signalExit
	switch {
	case errors.As(err, &stopped):
		exitCode = 128 + int(stopped.sig)
	case err != nil:
		slog.Error("command failed", slog.Any("error", err))
	default:
		exitCode = 0
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var seed bool

	root := &cobra.Command{
		Use:   "crowd-escrow",
		Short: "Crowdfunding escrow service",
		Long: `crowd-escrow custodies donations for crowdfunding campaigns, pays the
creator when a campaign reaches its goal and refunds donors when it does not.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.init(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), seed)
		},
	}
	root.Flags().BoolVar(&seed, "seed", false, "Seed demo data before serving")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), seed)
		},
	}
	serveCmd.Flags().BoolVar(&seed, "seed", false, "Seed demo data before serving")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.migrate(cmd.Context())
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Mint demo balances and open demo campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.seed(cmd.Context())
		},
	}

	root.AddCommand(serveCmd, migrateCmd, seedCmd)
	return root
}
