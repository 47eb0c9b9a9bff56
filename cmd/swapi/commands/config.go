package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/pkg/swapiclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	BaseURL   string `json:"base_url"   yaml:"base_url"`
	Output    string `json:"output"     yaml:"output"`
	Timeout   string `json:"timeout"    yaml:"timeout"`
	Verbose   bool   `json:"verbose"    yaml:"verbose"`
	RetryMax  int    `json:"retry_max"  yaml:"retry_max"`
	ServeAddr string `json:"serve_addr" yaml:"serve_addr"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage swapi CLI configuration stored in $HOME/.swapi/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			format, err := outputFormat()
			if err != nil {
				return err
			}

			switch format {
			case constants.OutputJSON:
				return writeJSON(cmd.OutOrStdout(), config)
			case constants.OutputYAML:
				return writeYAML(cmd.OutOrStdout(), config)
			default:
				return displayConfigTable(cmd.OutOrStdout(), config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Keys: base_url, output, timeout, verbose,
retry_max, serve_addr.`,
		Example: `  swapi config set base_url https://swapi.dev/api
  swapi config set retry_max 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			if err := setConfigValue(config, key, value); err != nil {
				return err
			}

			path, err := saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			hint(cmd.OutOrStdout(), "Set %s to %q in %s", key, value, path)

			return nil
		},
	}
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		BaseURL:   viper.GetString("base_url"),
		Output:    viper.GetString("output"),
		Timeout:   viper.GetDuration("timeout").String(),
		Verbose:   viper.GetBool("verbose"),
		RetryMax:  viper.GetInt("retry_max"),
		ServeAddr: viper.GetString("serve_addr"),
	}
}

// setConfigValue validates and applies one key.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "base_url":
		config.BaseURL = swapiclient.NormalizeEndpoint(value)
	case "output":
		switch value {
		case constants.OutputTable, constants.OutputJSON, constants.OutputYAML, constants.OutputMarkdown:
			config.Output = value
		default:
			return fmt.Errorf("%w: output %q", constants.ErrInvalidConfigValue, value)
		}
	case "timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout <= 0 {
			return fmt.Errorf("%w: timeout %q", constants.ErrInvalidConfigValue, value)
		}

		config.Timeout = timeout.String()
	case "verbose":
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: verbose %q", constants.ErrInvalidConfigValue, value)
		}

		config.Verbose = verbose
	case "retry_max":
		retryMax, err := strconv.Atoi(value)
		if err != nil || retryMax < 0 {
			return fmt.Errorf("%w: retry_max %q", constants.ErrInvalidConfigValue, value)
		}

		config.RetryMax = retryMax
	case "serve_addr":
		config.ServeAddr = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// saveConfig writes the configuration file and returns its path.
func saveConfig(config *Config) (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", constants.ErrNoHomeDirectory, err)
		}

		configFile = filepath.Join(home, ".swapi", "config.yml")
	}

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	heading(w, "Configuration")

	return renderTable(w, []string{"Property", "Value"}, [][]string{
		{"Base URL", config.BaseURL},
		{"Output", config.Output},
		{"Timeout", config.Timeout},
		{"Verbose", strconv.FormatBool(config.Verbose)},
		{"Retry Max", strconv.Itoa(config.RetryMax)},
		{"Serve Address", config.ServeAddr},
	})
}
