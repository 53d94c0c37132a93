package commands

import (
	"fmt"
	"os"

	"retailapi/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	dbURL   string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "retailctl",
	Short: "Operator tools for the retail API",
	Long: `retailctl bundles one-off operator tasks for the retail API database.

The database URL defaults to $DATABASE_URL.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", os.Getenv("DATABASE_URL"), "Database connection URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Without --db or DATABASE_URL, fall back to the server configuration (.env, defaults).
	cobra.OnInitialize(func() {
		if dbURL != "" {
			return
		}
		if cfg, err := config.Load(); err == nil {
			dbURL = cfg.DatabaseURL
		}
	})
}
