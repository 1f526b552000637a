// Package cli contains all halcyonctl commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halcyon-ai/halcyon/client"
	"github.com/halcyon-ai/halcyon/internal/output"
)

var (
	cfgFile string
	verbose bool
	noColor bool
	api     *client.Client
	printer *output.Printer
	logger  *slog.Logger
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "halcyonctl",
	Short: "Halcyon site and admin console",
	Long: `halcyonctl talks to the Halcyon platform API: browse the news feed,
manage a site account, and run the executive admin console.

Example usage:
  halcyonctl news --search robotics   # Search published articles
  halcyonctl login                    # Sign in to the site
  halcyonctl admin login              # Open the executive console
  halcyonctl admin stats              # Dashboard counters`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string baked in at build time.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.halcyonctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (default http://localhost:8080)")

	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".halcyonctl")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("HALCYON")
	viper.AutomaticEnv()
	viper.SetDefault("api_url", "http://localhost:8080")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	printer = output.NewPrinter(!noColor)
	api = client.New(viper.GetString("api_url"), stateDir(), logger)

	logger.Debug("configuration loaded", "api_url", viper.GetString("api_url"))
	return nil
}

// stateDir is where realm credentials are persisted between runs.
func stateDir() string {
	if dir := viper.GetString("state_dir"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "halcyonctl")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the halcyonctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("halcyonctl " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
