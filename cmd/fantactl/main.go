// Command fantactl runs auction maintenance tasks against the local database.
//
// Usage:
//
//	fantactl import quotazioni ./quotazioni.csv
//	fantactl import giocatori ./listone.csv
//	fantactl backup --out ./backup.csv
//	fantactl restore ./backup.csv
//	fantactl stats lega --top 10
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/fantacalcio/internal/app"
	"github.com/riskibarqy/fantacalcio/internal/config"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "fantactl",
		Short:        "Fantacalcio auction maintenance CLI",
		SilenceUsage: true,
	}

	root.AddCommand(importCmd())
	root.AddCommand(backupCmd())
	root.AddCommand(restoreCmd())
	root.AddCommand(statsCmd())
	return root
}

type runFunc func(ctx context.Context, svc *app.Services, logger *logging.Logger) error

// runWithServices opens the configured database, applies migrations and hands
// the wired services to fn.
func runWithServices(fn runFunc) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewConsole(cfg.LogLevel, logging.WithOutput(os.Stderr))
	defer func() { _ = logger.Sync() }()

	db, err := app.OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	return fn(ctx, app.NewServices(db, cfg, logger), logger)
}

func printJSON(w io.Writer, v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
