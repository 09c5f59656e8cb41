package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riskibarqy/fantacalcio/internal/app"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/riskibarqy/fantacalcio/internal/usecase"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a CSV file",
	}
	cmd.AddCommand(importFileCmd("quotazioni", "Merge quotations from CSV", func(ctx context.Context, svc *app.Services, f *os.File) (usecase.ImportReport, error) {
		return svc.Import.ImportQuotations(ctx, f)
	}))
	cmd.AddCommand(importFileCmd("giocatori", "Import players from CSV", func(ctx context.Context, svc *app.Services, f *os.File) (usecase.ImportReport, error) {
		return svc.Import.ImportPlayers(ctx, f)
	}))
	return cmd
}

func importFileCmd(use, short string, run func(context.Context, *app.Services, *os.File) (usecase.ImportReport, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(func(ctx context.Context, svc *app.Services, logger *logging.Logger) error {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()

				report, err := run(ctx, svc, f)
				if err != nil {
					return err
				}
				logger.Info("import finished",
					"file", args[0],
					"total", report.Summary.Total,
					"successful", report.Summary.Successful,
					"failed", report.Summary.Failed,
				)
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
}

func backupCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a full backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(func(ctx context.Context, svc *app.Services, logger *logging.Logger) error {
				b, err := svc.Backup.CreateBackup(ctx)
				if err != nil {
					return err
				}

				target := outPath
				if target == "" {
					target = b.FileName
				}
				if dir := filepath.Dir(target); dir != "." {
					if err := os.MkdirAll(dir, 0o755); err != nil {
						return fmt.Errorf("create %s: %w", dir, err)
					}
				}
				if err := os.WriteFile(target, b.Content, 0o600); err != nil {
					return fmt.Errorf("write backup: %w", err)
				}

				logger.Info("backup written", "file", target, "bytes", len(b.Content), "run_id", b.RunID)
				return printJSON(cmd.OutOrStdout(), b.Rows)
			})
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default: backup_<timestamp>.csv)")
	return cmd
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the database with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(func(ctx context.Context, svc *app.Services, logger *logging.Logger) error {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()

				summary, err := svc.Backup.Restore(ctx, f)
				if err != nil {
					return err
				}
				logger.Info("restore finished", "file", args[0], "skipped_sections", len(summary.Skipped))
				return printJSON(cmd.OutOrStdout(), summary)
			})
		},
	}
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print auction statistics",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "general",
		Short: "League-wide overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(func(ctx context.Context, svc *app.Services, _ *logging.Logger) error {
				out, err := svc.Statistics.General(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	})

	var top int
	league := &cobra.Command{
		Use:   "lega",
		Short: "Per-role and per-team breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(func(ctx context.Context, svc *app.Services, _ *logging.Logger) error {
				out, err := svc.Statistics.League(ctx, top)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
	league.Flags().IntVar(&top, "top", 0, "Players per role in the ranking (0 uses STATS_TOP_N)")
	cmd.AddCommand(league)

	var sortBy, order string
	comparative := &cobra.Command{
		Use:   "comparative",
		Short: "Team comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithServices(func(ctx context.Context, svc *app.Services, _ *logging.Logger) error {
				out, err := svc.Statistics.Comparative(ctx, sortBy, order)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
	comparative.Flags().StringVar(&sortBy, "sort", "", "spesa_totale|numero_giocatori|prezzo_medio|efficienza|budget_residuo")
	comparative.Flags().StringVar(&order, "order", "", "asc|desc")
	cmd.AddCommand(comparative)

	return cmd
}
