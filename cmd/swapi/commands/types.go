package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"github.com/spf13/cobra"
)

// NewTypesCommand creates the types command.
func NewTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the catalog's collections",
		Long:  "List the collections served at the catalog base URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			client, logger, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			root, err := client.Root(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch catalog root: %w", err)
			}

			return writeRoot(cmd.OutOrStdout(), format, root)
		},
	}
}

func writeRoot(w io.Writer, format string, root swapi.Root) error {
	types := make([]string, 0, len(root))
	for entityType := range root {
		types = append(types, string(entityType))
	}

	sort.Strings(types)

	switch format {
	case constants.OutputJSON:
		return writeJSON(w, root)
	case constants.OutputYAML:
		return writeYAML(w, root)
	case constants.OutputMarkdown:
		for _, name := range types {
			_, _ = fmt.Fprintf(w, "- [%s](%s)\n", name, root[swapi.EntityType(name)])
		}

		return nil
	}

	rows := make([][]string, 0, len(types))
	for _, name := range types {
		rows = append(rows, []string{name, root[swapi.EntityType(name)]})
	}

	return renderTable(w, []string{"Type", "URL"}, rows)
}
