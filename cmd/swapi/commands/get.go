package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TYPE ID",
		Short: "Fetch a single entity",
		Long: `Fetch a single entity as served by the catalog, without following its
references. TYPE is one of people, planets, species, starships, vehicles or films.
A full entity URL may be given instead of TYPE ID.`,
		Example: `  swapi get people 1
  swapi get film 4 --output json
  swapi get https://swapi.py4e.com/api/planets/1/`,
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

			entity, err := fetchEntity(cmd.Context(), client, entityType, id)
			if err != nil {
				if swapi.IsNotFound(err) {
					return fmt.Errorf("%w: %s %q: %w", constants.ErrEntityNotFound, entityType.Singular(), id, err)
				}

				return fmt.Errorf("failed to get %s: %w", entityType.Singular(), err)
			}

			return writeEntity(cmd.OutOrStdout(), format, entity)
		},
	}
}

// fetchEntity fetches one entity of any type.
func fetchEntity(ctx context.Context, client swapi.Client, entityType swapi.EntityType, id string) (swapi.Entity, error) {
	switch entityType {
	case swapi.TypePeople:
		return get(ctx, client.People(), id)
	case swapi.TypePlanets:
		return get(ctx, client.Planets(), id)
	case swapi.TypeSpecies:
		return get(ctx, client.Species(), id)
	case swapi.TypeStarships:
		return get(ctx, client.Starships(), id)
	case swapi.TypeVehicles:
		return get(ctx, client.Vehicles(), id)
	case swapi.TypeFilms:
		return get(ctx, client.Films(), id)
	default:
		return nil, fmt.Errorf("%w: %q", swapi.ErrUnknownEntityType, entityType)
	}
}

func get[T swapi.Entity](ctx context.Context, getter swapi.Getter[T], id string) (swapi.Entity, error) {
	entity, err := getter.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return *entity, nil
}

func writeEntity(w io.Writer, format string, entity swapi.Entity) error {
	switch format {
	case constants.OutputJSON:
		return writeJSON(w, entity)
	case constants.OutputYAML:
		return writeYAML(w, entity)
	case constants.OutputMarkdown:
		rows, err := entityRows(entity)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(w, "# %s\n\n| Field | Value |\n| --- | --- |\n", entity.DisplayName())
		for _, row := range rows {
			_, _ = fmt.Fprintf(w, "| %s | %s |\n", row[0], row[1])
		}

		return nil
	default:
		rows, err := entityRows(entity)
		if err != nil {
			return err
		}

		heading(w, entity.DisplayName())

		return renderTable(w, []string{"Field", "Value"}, rows)
	}
}
