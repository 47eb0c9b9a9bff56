package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/swapi/cmd/swapi/commands"
	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = constants.Version
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "swapi",
	Short: "Star Wars catalog CLI",
	Long: `A command-line interface for browsing the Star Wars catalog.

Fetch people, planets, species, starships, vehicles and films, follow their
cross-references, or serve the resolved views over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.swapi/config.yml)")
	rootCmd.PersistentFlags().String("base-url", constants.DefaultBaseURL, "catalog base URL")
	rootCmd.PersistentFlags().String("output", constants.OutputTable, "output format (table, json, yaml, markdown)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Duration("timeout", constants.DefaultHTTPTimeout, "HTTP request timeout")
	rootCmd.PersistentFlags().Int("retry-max", constants.DefaultRetryMax, "maximum transport retries (0 disables retries)")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("retry_max", rootCmd.PersistentFlags().Lookup("retry-max"))

	viper.SetDefault("serve_addr", constants.DefaultServeAddr)

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewTypesCommand())
	rootCmd.AddCommand(commands.NewGetCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.swapi/config.yml
		viper.AddConfigPath(filepath.Join(home, ".swapi"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match, e.g. SWAPI_BASE_URL
	viper.SetEnvPrefix("SWAPI")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
