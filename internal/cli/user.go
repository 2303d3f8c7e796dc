package cli

import (
	"context"
	"fmt"

	"werkbon/internal/app/handler"

	"github.com/spf13/cobra"
)

// UserCmd returns the user command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(userCreateCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var (
		email    string
		password string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account, optionally linked to a technician",
		Long: `Create a sign-in account. With --name the account is linked to a new
technician of that name, who can then edit their own work orders.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}
			hash, err := handler.HashPassword(password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			repo, err := openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx := context.Background()
			user, err := repo.CreateUser(ctx, email, hash)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Printf("%s user %s (%s)\n", completedColor.Sprint("✓"), user.Email, user.ID)

			if name == "" {
				return nil
			}
			tech, err := repo.CreateTechnician(ctx, user.ID, name)
			if err != nil {
				return fmt.Errorf("failed to create technician: %w", err)
			}
			fmt.Printf("%s technician %s (%s)\n", completedColor.Sprint("✓"), tech.Name, tech.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Sign-in email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (min. 8 characters)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Technician name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
