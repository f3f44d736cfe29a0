// internal/cli/root.go
package pluginperf

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ledraw1/pluginperf/internal/appconfig"
	"github.com/ledraw1/pluginperf/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pluginperf",
	Short: "pluginperf — real-time processing cost benchmarks for audio plugins",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// If the user did NOT set a flag, copy the config value into the flag
		// so both pflags and viper reflect the same, final value.
		for _, name := range []string{"debug", "json", "systemInfo", "live"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}
		for _, name := range []string{"bufferSizes", "precision", "csv", "logFile"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		for _, name := range []string{"sampleRate", "channels", "warmupRuns", "timedRuns"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.Itoa(viper.GetInt(name)))
			}
		}

		// Materialize the fully merged configuration (flags > config >
		// defaults) so other packages get a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/pluginperf.json", "config file (e.g., config/pluginperf.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Int("sampleRate", 48000, "sample rate in Hz, e.g. 44100|48000|96000")
	rootCmd.PersistentFlags().Int("channels", 2, "channel count for the processing bus")
	rootCmd.PersistentFlags().String("bufferSizes", appconfig.DefaultBufferSizes, "comma-separated buffer sizes to sweep")
	rootCmd.PersistentFlags().Int("warmupRuns", 40, "warmup iterations per buffer size")
	rootCmd.PersistentFlags().Int("timedRuns", 400, "timed iterations per buffer size")
	rootCmd.PersistentFlags().String("precision", "32", "processing precision: 32 or 64")
	rootCmd.PersistentFlags().String("csv", "", "write per-size results to this CSV file")
	rootCmd.PersistentFlags().Bool("json", false, "write a JSON run document under pluginperfData/benchmarks")
	rootCmd.PersistentFlags().Bool("systemInfo", false, "attach host hardware details to exports")
	rootCmd.PersistentFlags().Bool("live", false, "render sweep progress in a live terminal view")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("sampleRate", rootCmd.PersistentFlags().Lookup("sampleRate"))
	_ = viper.BindPFlag("channels", rootCmd.PersistentFlags().Lookup("channels"))
	_ = viper.BindPFlag("bufferSizes", rootCmd.PersistentFlags().Lookup("bufferSizes"))
	_ = viper.BindPFlag("warmupRuns", rootCmd.PersistentFlags().Lookup("warmupRuns"))
	_ = viper.BindPFlag("timedRuns", rootCmd.PersistentFlags().Lookup("timedRuns"))
	_ = viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
	_ = viper.BindPFlag("csv", rootCmd.PersistentFlags().Lookup("csv"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("systemInfo", rootCmd.PersistentFlags().Lookup("systemInfo"))
	_ = viper.BindPFlag("live", rootCmd.PersistentFlags().Lookup("live"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults. A missing file
// is fine; defaults and flags cover every setting.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
