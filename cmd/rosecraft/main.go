package main

import (
	"os"

	"github.com/spf13/cobra"

	"rosecraft/internal/interfaces/cli/migrate"
	"rosecraft/internal/interfaces/cli/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosecraft",
		Short: "Rosecraft - print shop order management",
		Long:  `Rosecraft manages print shop job tickets from intake through pricing, payment, production workflow, and stock consumption.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
