// Package commands implements the swapi CLI commands.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/internal/logging"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"github.com/fivetwenty-io/swapi/pkg/swapiclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// JSON formatting.
	defaultJSONIndent = 2

	// Ellipsis marks truncated table cells.
	ellipsis = "…"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE81F")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// outputFormat returns the configured output format.
func outputFormat() (string, error) {
	format := strings.ToLower(strings.TrimSpace(viper.GetString("output")))
	if format == "" {
		return constants.OutputTable, nil
	}

	switch format {
	case constants.OutputTable, constants.OutputJSON, constants.OutputYAML, constants.OutputMarkdown:
		return format, nil
	}

	return "", fmt.Errorf("%w: %q", constants.ErrUnsupportedOutput, format)
}

// newLogger builds the zap logger. Verbose output lowers the level to debug.
func newLogger() (*logging.ZapLogger, error) {
	return logging.NewZapLogger(viper.GetBool("verbose"))
}

// clientConfig assembles a swapi.Config from flags, environment and config file.
func clientConfig(logger swapi.Logger) *swapi.Config {
	return &swapi.Config{
		BaseURL:      viper.GetString("base_url"),
		HTTPTimeout:  viper.GetDuration("timeout"),
		RetryMax:     viper.GetInt("retry_max"),
		RetryWaitMin: constants.DefaultRetryWaitMin,
		RetryWaitMax: constants.DefaultRetryWaitMax,
		Debug:        viper.GetBool("verbose"),
		Logger:       logger,
	}
}

// createClient builds the catalog client and the logger it reports to.
// Callers must Sync the logger.
func createClient(ctx context.Context) (swapi.Client, *logging.ZapLogger, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	client, err := swapiclient.New(ctx, clientConfig(logger))
	if err != nil {
		_ = logger.Sync()

		return nil, nil, err
	}

	return client, logger, nil
}

// parseTypeArg parses the entity type positional argument.
func parseTypeArg(arg string) (swapi.EntityType, error) {
	entityType, err := swapi.ParseEntityType(arg)
	if err != nil {
		return "", fmt.Errorf("%w (expected one of %s)", err, typeNames())
	}

	return entityType, nil
}

// parseEntityArgs accepts either TYPE ID or a single full locator such as
// https://swapi.py4e.com/api/people/1/.
func parseEntityArgs(args []string) (swapi.EntityType, string, error) {
	if len(args) == 1 {
		locator, err := swapi.ParseLocator(args[0])
		if err != nil {
			return "", "", fmt.Errorf("expected TYPE ID or an entity URL: %w", err)
		}

		return locator.Type, locator.ID, nil
	}

	entityType, err := parseTypeArg(args[0])
	if err != nil {
		return "", "", err
	}

	return entityType, args[1], nil
}

func typeNames() string {
	names := make([]string, 0, len(swapi.AllTypes()))
	for _, entityType := range swapi.AllTypes() {
		names = append(names, string(entityType))
	}

	return strings.Join(names, ", ")
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, value any) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// renderTable writes a table with the given header and rows.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)

	cells := make([]any, 0, len(header))
	for _, cell := range header {
		cells = append(cells, cell)
	}

	table.Header(cells...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// entityRows flattens an entity into sorted field/value rows.
func entityRows(entity any) ([][]string, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entity: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode entity: %w", err)
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, cellValue(fields[key])})
	}

	return rows, nil
}

func cellValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return truncate(v)
	case []any:
		return fmt.Sprintf("%d references", len(v))
	default:
		return truncate(fmt.Sprint(v))
	}
}

func truncate(value string) string {
	value = strings.Join(strings.Fields(value), " ")

	runes := []rune(value)
	if len(runes) <= constants.SummaryMaxLength {
		return value
	}

	return string(runes[:constants.SummaryMaxLength-1]) + ellipsis
}

func hint(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

func heading(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, accentStyle.Render(text))
}
