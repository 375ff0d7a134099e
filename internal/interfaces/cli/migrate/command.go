package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"turnero/internal/infrastructure/config"
	"turnero/internal/infrastructure/database"
	"turnero/internal/infrastructure/migration"
	"turnero/internal/interfaces/cli/bootstrap"
	"turnero/internal/shared/constants"
)

var (
	opts    bootstrap.Options
	name    string
	dialect string
	steps   int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty SQL migration file for one dialect.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dialect, "dialect", "d", database.DriverMySQL, "Script dialect directory (mysql, sqlite)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", opts.ResolveEnv())

	strategy := migration.NewGooseStrategy(migration.DefaultScriptsPath)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	_, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", opts.ResolveEnv(), "steps", steps)

	strategy := migration.NewGooseStrategy(migration.DefaultScriptsPath)
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy(migration.DefaultScriptsPath)
	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", opts.ResolveEnv())
	fmt.Fprintf(out, "  Driver:          %s\n", driverLabel(cfg))
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	if dialect != database.DriverMySQL && dialect != database.DriverSQLite {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	_, log, err := bootstrap.LoadConfig(opts)
	if err != nil {
		return err
	}

	strategy := migration.NewGooseStrategy(migration.DefaultScriptsPath)
	if err := strategy.Create(dialect, name); err != nil {
		return err
	}

	log.Infow("migration created successfully", "name", name, "dialect", dialect)
	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created for %s\n", name, dialect)
	return nil
}

func driverLabel(cfg *config.Config) string {
	if cfg.Database.Driver == "" {
		return database.DriverMySQL
	}
	return cfg.Database.Driver
}
