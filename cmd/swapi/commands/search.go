package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/internal/view"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var (
		page int
		all  bool
	)

	cmd := &cobra.Command{
		Use:     "search TYPE [QUERY]",
		Aliases: []string{"list", "ls"},
		Short:   "Search a collection",
		Long: `Search a collection by name (or title, for films). Without a query the
whole collection is listed page by page.`,
		Example: `  swapi search people sky
  swapi search starships --page 2
  swapi search planets --all --output json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, err := parseTypeArg(args[0])
			if err != nil {
				return err
			}

			if page < 1 {
				return fmt.Errorf("%w: %d", constants.ErrInvalidPageFlag, page)
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 1 {
				query = args[1]
			}

			client, logger, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			builder := view.NewBuilder(client, view.WithLogger(logger))

			var list *view.ListView
			if all {
				list, err = builder.ListAll(cmd.Context(), entityType, query)
			} else {
				list, err = builder.List(cmd.Context(), entityType, query, page)
			}

			if err != nil {
				return fmt.Errorf("failed to search %s: %w", entityType, err)
			}

			return writeList(cmd.OutOrStdout(), format, list)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	return cmd
}

func writeList(w io.Writer, format string, list *view.ListView) error {
	switch format {
	case constants.OutputJSON:
		return writeJSON(w, list)
	case constants.OutputYAML:
		return writeYAML(w, list)
	case constants.OutputMarkdown:
		_, err := io.WriteString(w, view.Markdown(list))

		return err
	}

	if list.Message != "" {
		hint(w, "%s", list.Message)

		return nil
	}

	rows := make([][]string, 0, len(list.Items))
	for _, item := range list.Items {
		rows = append(rows, []string{item.ID, item.Name, truncate(item.Summary)})
	}

	if err := renderTable(w, []string{"ID", "Name", "Details"}, rows); err != nil {
		return err
	}

	footer := []string{fmt.Sprintf("Page %d of %d, %d results", list.Page, list.TotalPages, list.Count)}
	if list.NextPage > 0 {
		footer = append(footer, fmt.Sprintf("next: --page %d", list.NextPage))
	}

	hint(w, "%s", strings.Join(footer, "; "))

	return nil
}
