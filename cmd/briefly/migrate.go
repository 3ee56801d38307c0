package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/config"
	"github.com/at-ishikawa/briefly/internal/datasync"
	"github.com/at-ishikawa/briefly/internal/kvstore"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateImportCommand())

	return migrateCmd
}

func newMigrateImportCommand() *cobra.Command {
	var (
		dryRun         bool
		updateExisting bool
		from           = StorageDriverFlag(config.StorageDriverFile)
		to             = StorageDriverFlag(config.StorageDriverSQLite)
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy saved sets and the study streak from one storage driver into another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			if from == to {
				return fmt.Errorf("--from and --to are both %q", from)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			app := bootstrap.New()
			defer func() {
				err = errors.Join(err, app.Shutdown(context.Background()))
			}()

			source, err := openStore(ctx, app, cfg, from)
			if err != nil {
				return err
			}
			target, err := openStore(ctx, app, cfg, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(source, target, out)
			result, err := importer.Import(ctx, datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			})
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}

			fmt.Fprintln(out, "\nImport Summary:")
			if dryRun {
				fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			fmt.Fprintf(out, "  Flashcard sets: %d new, %d skipped, %d updated\n", result.FlashcardSetsNew, result.FlashcardSetsSkipped, result.FlashcardSetsUpdated)
			fmt.Fprintf(out, "  Quiz sets:      %d new, %d skipped, %d updated\n", result.QuizSetsNew, result.QuizSetsSkipped, result.QuizSetsUpdated)
			fmt.Fprintf(out, "  Study streak:   imported=%t\n", result.StreakImported)
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "Storage driver to read from")
	cmd.Flags().Var(&to, "to", "Storage driver to write to")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the target store")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Overwrite sets that exist in both stores with the source version")
	return cmd
}

func openStore(ctx context.Context, app *bootstrap.App, cfg *config.Config, driver StorageDriverFlag) (*kvstore.Store, error) {
	storage := cfg.Storage
	storage.Driver = string(driver)
	medium, err := bootstrap.OpenMedium(ctx, app, storage, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.OpenMedium(%s) > %w", driver, err)
	}
	return kvstore.New(medium), nil
}
