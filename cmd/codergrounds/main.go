package main

import (
	"os"

	"github.com/spf13/cobra"

	"codergrounds/internal/interfaces/cli/migrate"
	"codergrounds/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "codergrounds",
		Short: "codergrounds - a multi-tenant code playground backend",
		Long:  `codergrounds serves the playground API: accounts, OAuth login, token sessions, playgrounds, files, and code executions.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
