package commands

import (
	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the swapi CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version   string `json:"version"    yaml:"version"`
				Commit    string `json:"commit"     yaml:"commit"`
				Built     string `json:"built"      yaml:"built"`
				UserAgent string `json:"user_agent" yaml:"user_agent"`
			}

			versionInfo := VersionInfo{
				Version:   version,
				Commit:    commit,
				Built:     date,
				UserAgent: constants.DefaultUserAgent,
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			switch format {
			case constants.OutputJSON:
				return writeJSON(cmd.OutOrStdout(), versionInfo)
			case constants.OutputYAML:
				return writeYAML(cmd.OutOrStdout(), versionInfo)
			default:
				return renderTable(cmd.OutOrStdout(), []string{"Property", "Value"}, [][]string{
					{"Version", version},
					{"Commit", commit},
					{"Built", date},
					{"User-Agent", constants.DefaultUserAgent},
				})
			}
		},
	}
}
