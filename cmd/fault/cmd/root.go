package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/fault/core/config"
	"github.com/msto63/fault/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fault",
	Short: "fault - typed failure taxonomy with centralized dispatch",
	Long: `fault demonstrates a closed failure taxonomy with context-preserving
propagation and a centralized dispatcher.

Commands:
  fetch    - fetch a URL through the demo client and dispatch its failures
  version  - print version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig assembles the effective configuration: defaults, then the config
// file if given, then environment overrides, then flags
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Format = "console"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildLogger creates the process logger from the validated configuration
func buildLogger(cfg *config.Config) (*log.Logger, error) {
	logCfg, err := cfg.LoggerConfig()
	if err != nil {
		return nil, err
	}
	logCfg.Output = os.Stderr
	return log.NewWithConfig(logCfg), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
