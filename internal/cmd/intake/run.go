package intake

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/turbolytics/scrivener/internal/config"
)

func newRunCommand() *cobra.Command {
	var configPath string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Processes the configured source path once. Files are validated, normalized and preserved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger, _ := zap.NewDevelopment()
			defer logger.Sync()
			l := logger.Named("scrivener.intake")

			rid := uuid.Must(uuid.NewUUID())
			l.Info("starting intake run", zap.String("run_id", rid.String()))

			c, err := config.NewScrivenerFromFile(configPath)
			if err != nil {
				return err
			}

			if dryRun {
				c.Intake.Preserver.Type = "stdout"
			}

			i, err := config.InitializeIntake(c, l, rid.String())
			if err != nil {
				return err
			}

			cat, err := i.Run(ctx, rid)
			if err != nil {
				return err
			}

			l.Info("intake run complete",
				zap.Int("num_files", len(cat.Files)),
				zap.Int("num_rows", cat.NumRows),
				zap.Bool("success", cat.Success),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print cleaned output instead of preserving it")
	cmd.MarkFlagRequired("config")

	return cmd
}
