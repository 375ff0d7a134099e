package main

import (
	"os"

	"github.com/spf13/cobra"

	"turnero/internal/interfaces/cli/admin"
	"turnero/internal/interfaces/cli/migrate"
	"turnero/internal/interfaces/cli/seed"
	"turnero/internal/interfaces/cli/server"
	"turnero/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "turnero",
		Short:        "Turnero - municipal turn ticket service",
		Long:         `Turnero issues numbered turn tickets to citizens and serves the admin panel API, with migration, seeding and account tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
		seed.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
