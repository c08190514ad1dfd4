package main

import (
	"fmt"

	"github.com/Anirudh646/dfghjkddfghj/database"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
	migrate       bool
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the admin account, or promote an existing user",
	Long:  "Create the admin account that reads captured leads. Defaults come from ADMIN_EMAIL and ADMIN_PASSWORD.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminEmail == "" {
			adminEmail = env.ADMIN_EMAIL
		}
		if adminPassword == "" {
			adminPassword = env.ADMIN_PASSWORD
		}

		db, closeDB, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB()

		if migrate {
			if err := database.NewGORMStore(db).Init(); err != nil {
				return err
			}
		}

		created, err := database.NewSeeder(db).SeedAdminUser(adminEmail, adminPassword)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s\n", adminEmail)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is an admin\n", adminEmail)
		}
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email (default $ADMIN_EMAIL)")
	seedAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (default $ADMIN_PASSWORD)")
	seedAdminCmd.Flags().BoolVar(&migrate, "migrate", false, "run AutoMigrate first")
}
