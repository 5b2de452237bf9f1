package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	outputFmt string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "hw05",
	Short: "hw05 — log analyzer and contact assistant",
	Long: `hw05 bundles two small console utilities:

  logs  counts log entries by severity level and optionally lists
        the entries at a chosen level
  bot   an interactive assistant for managing a contact book`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.hw05.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format: text, json")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".hw05")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("output", "text")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
