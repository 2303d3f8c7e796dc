package main

import (
	"fmt"
	"os"

	"werkbon/internal/cli"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "planning",
		Short: "Werkbon operator tool",
		Long: `Operator tool for the werkbon backend: print a technician's planning,
create accounts and maintain the material catalog.`,
	}

	rootCmd.AddCommand(cli.PlanningCmd())
	rootCmd.AddCommand(cli.UserCmd())
	rootCmd.AddCommand(cli.CatalogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
