package main

import (
	"github.com/spf13/cobra"

	applog "guesthouse/internal/log"
	"guesthouse/internal/repos"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and insert default content, property, room and admin account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		applog.SetLogger(applog.New(cfg.AppEnv, cmd.OutOrStdout()))

		db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := repos.Seed(cmd.Context(), db, seedOptions(cfg)); err != nil {
			return err
		}
		applog.L().Info().Str("driver", cfg.DBDriver).Msg("seed complete")
		return nil
	},
}
