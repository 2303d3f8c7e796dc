package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"werkbon/internal/app/dsn"
	"werkbon/internal/app/planning"
	"werkbon/internal/app/repository"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func openRepository() (*repository.Repository, error) {
	_ = godotenv.Load()
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		return nil, fmt.Errorf("database is not configured, check DB_HOST")
	}
	repo, err := repository.New(dsnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return repo, nil
}

// PlanningCmd returns the planning command
func PlanningCmd() *cobra.Command {
	var (
		email    string
		view     string
		offset   int
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the planning grid of a technician",
		Long: `Print the planning of the technician linked to --email.

Views: day, workweek (default) and fullweek. --offset moves the view by
days (day view) or weeks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := planning.ParseView(view, offset)
			if err != nil {
				return err
			}

			repo, err := openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx := context.Background()
			user, err := repo.GetUserByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("failed to find user %s: %w", email, err)
			}
			tech, err := repo.FindTechnicianByUserID(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to find technician: %w", err)
			}
			technicianID := ""
			if tech != nil {
				technicianID = tech.ID
				fmt.Printf("Monteur: %s\n", tech.Name)
			} else {
				fmt.Fprintf(os.Stderr, "%s is not linked to a technician\n", email)
			}

			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("unknown timezone %q: %w", timezone, err)
			}
			p, err := planning.NewAggregator(repo, loc).Planning(ctx, technicianID, v)
			if err != nil {
				return err
			}
			RenderPlanning(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email of the technician's account")
	cmd.Flags().StringVarP(&view, "view", "v", string(planning.ModeWorkWeek), "day, workweek or fullweek")
	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "Days or weeks from today")
	cmd.Flags().StringVar(&timezone, "tz", "Europe/Amsterdam", "Timezone that decides what today is")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
