package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lexaudit",
	Short: "Lexaudit - contradiction & bias diagnostics for legal claim sets",
	Long: `Lexaudit analyzes a pool of atomic factual claims extracted from a
corpus of legal documents and produces two derived artifacts:

- contradictions: claim pairs whose content conflicts under one of eight
  classification rules (direct, temporal, self, modality shift, value,
  attribution, quotation, omission)
- bias signals: statistically anomalous language patterns (certainty,
  negativity, extremity, entity-attribution skew) relative to a
  calibrated baseline for the document type

Lexaudit does not determine what is true. It flags statements that cannot
both be true and language that deviates from its document type's norm.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lexaudit v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.lexaudit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.lexaudit")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match LEXAUDIT_*
	viper.SetEnvPrefix("LEXAUDIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger; --verbose lifts the level to debug
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "lexaudit",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// defaultBaselinesPath resolves the baseline store location
func defaultBaselinesPath() string {
	if path := viper.GetString("baselines.path"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.lexaudit/baselines.yaml"
}
