package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafabene/kundlivision-backend/internal/infrastructure/catalogdata"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			if err := postgres.Migrate(rt.db); err != nil {
				return err
			}
			rt.logger.Info("database migrated")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the twelve rashis from the embedded zodiac catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			if err := postgres.Migrate(rt.db); err != nil {
				return err
			}

			catalog, err := catalogdata.Load()
			if err != nil {
				return err
			}

			rashis := services.NewRashiService(
				postgres.NewRashiRepository(rt.db),
				postgres.NewUnitOfWork(rt.db),
				rt.logger,
			)

			count, err := rashis.Seed(cmd.Context(), catalog)
			if err != nil {
				return fmt.Errorf("seed stopped after %d rashis: %w", count, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rashis\n", count)
			return nil
		},
	}
}

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <email>",
		Short: "Grant admin access to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()

			// só o repositório participa da promoção
			authService := services.NewAuthService(postgres.NewUserRepository(rt.db), nil, nil, nil, rt.logger)

			user, err := authService.Promote(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to promote %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now an admin\n", user.Username, user.Email)
			return nil
		},
	}
}
