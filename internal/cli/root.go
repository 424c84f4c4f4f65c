package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"stevenson/internal/config"
	"stevenson/internal/logging"
)

const appName = "stevenson"

// version is overridden at build time with -ldflags "-X stevenson/internal/cli.version=...".
var version = "dev"

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stevenson",
	Short: "Stevenson screen weather readings",
	Long: `Derives relative humidity, heat index and wind chill from the raw
measurements of a Stevenson screen reading: air temperature, dew point,
wind speed and total rain over the last 24 hours.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
		slog.SetDefault(logging.New(cfg, version, appName))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
}
