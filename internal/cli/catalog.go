package cli

import (
	"context"
	"fmt"

	"werkbon/internal/app/ds"

	"github.com/spf13/cobra"
)

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage catalog items",
	}
	cmd.AddCommand(catalogAddCmd(), catalogListCmd())
	return cmd
}

func catalogAddCmd() *cobra.Command {
	var (
		number string
		unit   string
		price  float64
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an active catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := ds.CatalogItem{Name: args[0], Active: true}
			if number != "" {
				item.CatalogNumber = &number
			}
			if unit != "" {
				item.Unit = &unit
			}
			if cmd.Flags().Changed("price") {
				item.Price = &price
			}

			repo, err := openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.CreateCatalogItem(context.Background(), &item); err != nil {
				return fmt.Errorf("failed to create catalog item: %w", err)
			}
			fmt.Printf("%s %s (%s)\n", completedColor.Sprint("✓"), item.Name, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "Catalog number")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit, e.g. st or m")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")

	return cmd
}

func catalogListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active catalog items",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			items, err := repo.ListActiveCatalogItems(context.Background(), query)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), emptyColor.Sprint("no catalog items"))
				return nil
			}
			for _, item := range items {
				number := ""
				if item.CatalogNumber != nil {
					number = *item.CatalogNumber
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s %-10s %s\n", item.ID, number, item.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter on name or catalog number")
	return cmd
}
