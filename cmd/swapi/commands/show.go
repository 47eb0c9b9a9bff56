package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/internal/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWordWrap = 80

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "show TYPE ID",
		Short: "Show an entity with its references resolved",
		Long: `Show an entity together with the names of everything it references.
References that cannot be fetched are shown as "Unknown <Type>".

The table format renders markdown in the terminal; use --output markdown for
the raw markdown.`,
		Example: `  swapi show films 1
  swapi show person 1 --output json
  swapi show https://swapi.py4e.com/api/species/3/`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, id, err := parseEntityArgs(args)
			if err != nil {
				return err
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			client, logger, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			builder := view.NewBuilder(client, view.WithLogger(logger), view.WithConcurrency(concurrency))

			page, err := builder.Detail(cmd.Context(), entityType, id)
			if err != nil {
				return fmt.Errorf("failed to show %s: %w", entityType.Singular(), err)
			}

			if err := writePage(cmd.OutOrStdout(), format, page); err != nil {
				return err
			}

			if notFound, ok := page.(*view.NotFound); ok {
				return fmt.Errorf("%w: %s", constants.ErrEntityNotFound, notFound.Cause)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "maximum in-flight reference fetches per group (0 means unlimited)")

	return cmd
}

func writePage(w io.Writer, format string, page view.Page) error {
	switch format {
	case constants.OutputJSON:
		return writeJSON(w, page)
	case constants.OutputYAML:
		return writeYAML(w, page)
	case constants.OutputMarkdown:
		_, err := io.WriteString(w, view.Markdown(page))

		return err
	}

	markdown := view.Markdown(page)

	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		_, err := io.WriteString(w, markdown)

		return err
	}

	rendered, err := renderMarkdown(markdown, terminalWidth(file))
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, rendered)

	return err
}

// renderMarkdown renders markdown for terminal display.
func renderMarkdown(content string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return strings.TrimRight(rendered, "\n") + "\n", nil
}

func terminalWidth(file *os.File) int {
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultWordWrap
	}

	return min(width, defaultWordWrap*2)
}
