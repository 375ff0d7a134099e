package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"turnero/internal/domain/catalog"
	"turnero/internal/infrastructure/database"
	"turnero/internal/infrastructure/persistence/seeds"
	"turnero/internal/infrastructure/repository"
	"turnero/internal/interfaces/cli/bootstrap"
	"turnero/internal/shared/constants"
)

var (
	opts bootstrap.Options
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the level, subject and municipality catalogs",
		Long: `Upsert catalog entries from a YAML file. Without --file the catalogs bundled
with the binary are loaded. Entries are matched by key, so seeding twice is safe.`,
		RunE: runSeed,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog seed file (YAML)")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	written, err := seedCatalogs(cmd.Context(), repository.NewCatalogRepository(database.Get()), file, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	log.Infow("catalogs seeded", "entries", written, "file", file)
	return nil
}

func seedCatalogs(ctx context.Context, repo catalog.Repository, path string, out io.Writer) (int, error) {
	var (
		f   *seeds.CatalogFile
		err error
	)
	if path == "" {
		f, err = seeds.DefaultCatalogFile()
	} else {
		f, err = seeds.LoadCatalogFile(path)
	}
	if err != nil {
		return 0, err
	}

	written, err := seeds.SeedCatalogs(ctx, repo, f)
	if err != nil {
		return written, fmt.Errorf("seeding stopped after %d entries: %w", written, err)
	}

	fmt.Fprintf(out, "Seeded %d catalog entries\n", written)
	return written, nil
}
