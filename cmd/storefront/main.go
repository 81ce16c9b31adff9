// cmd/storefront/main.go
package main

import (
	"fmt"
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/logging"
)

var (
	// Global flags
	configFile string

	// Loaded in PersistentPreRunE
	v      = viper.New()
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront - books admin, dealer locator and product catalog",
	Long: `Storefront serves three modules from one binary:

  books admin      create, inspect, update and delete books on the remote books API
  dealer locator   search the dealer network by text and service
  product catalog  search the catalog by text and category

Run "storefront serve" for the web UI, or use the subcommands directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, configFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (default: ./config.yaml if present)")
	flags.String("books-url", "", "Base URL of the books API")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (json or console)")

	_ = v.BindPFlag("books.api_url", flags.Lookup("books-url"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(dealersCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
