// Command admissionctl is the operator CLI: it seeds the admin account, reads
// captured leads and prints the knowledge base the counselor answers from.
package main

import (
	"fmt"
	"os"

	"github.com/Anirudh646/dfghjkddfghj/config"
	"github.com/Anirudh646/dfghjkddfghj/database"
	"github.com/Anirudh646/dfghjkddfghj/utils"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	jsonOutput bool
	env        *config.EnviornmentVariable
)

var rootCmd = &cobra.Command{
	Use:           "admissionctl <command>",
	Short:         "Operate the admission counselor API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = config.LoadENV()
		var err error
		if env, err = config.Get(); err != nil {
			return err
		}
		_, err = utils.NewLogger(env.IsProduction())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.AddCommand(seedAdminCmd, leadsCmd, catalogCmd)
}

// openDB connects to Postgres for commands that need it
func openDB() (*gorm.DB, func(), error) {
	store, err := database.StartGORM(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return store.GetDB(), func() { _ = store.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
