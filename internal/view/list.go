package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
)

// List builds one page of a collection, optionally filtered by query.
// Upstream failures are returned as errors.
func (b *Builder) List(ctx context.Context, entityType swapi.EntityType, query string, page int) (*ListView, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: %d", swapi.ErrInvalidPage, page)
	}

	params := swapi.NewQueryParams().WithSearch(strings.TrimSpace(query)).WithPage(page)

	return b.list(ctx, entityType, params, false)
}

// ListAll follows every next page of a collection and returns all matches
// as a single page.
func (b *Builder) ListAll(ctx context.Context, entityType swapi.EntityType, query string) (*ListView, error) {
	params := swapi.NewQueryParams().WithSearch(strings.TrimSpace(query))

	return b.list(ctx, entityType, params, true)
}

func (b *Builder) list(ctx context.Context, entityType swapi.EntityType, params *swapi.QueryParams, all bool) (*ListView, error) {
	switch entityType {
	case swapi.TypePeople:
		return listOf(ctx, b.client.People(), entityType, params, all, func(p swapi.Person) string {
			return joinSummary(titleCase(p.Gender), formatValue(p.BirthYear))
		})
	case swapi.TypePlanets:
		return listOf(ctx, b.client.Planets(), entityType, params, all, func(p swapi.Planet) string {
			return joinSummary(titleCase(p.Climate), titleCase(p.Terrain))
		})
	case swapi.TypeSpecies:
		return listOf(ctx, b.client.Species(), entityType, params, all, func(s swapi.Species) string {
			return joinSummary(titleCase(s.Classification), formatValue(s.Language))
		})
	case swapi.TypeStarships:
		return listOf(ctx, b.client.Starships(), entityType, params, all, func(s swapi.Starship) string {
			return joinSummary(s.Model, titleCase(s.StarshipClass))
		})
	case swapi.TypeVehicles:
		return listOf(ctx, b.client.Vehicles(), entityType, params, all, func(v swapi.Vehicle) string {
			return joinSummary(v.Model, titleCase(v.VehicleClass))
		})
	case swapi.TypeFilms:
		return listOf(ctx, b.client.Films(), entityType, params, all, func(f swapi.Film) string {
			return joinSummary(episodeLabel(f.EpisodeID), formatDate(f.ReleaseDate))
		})
	default:
		return nil, fmt.Errorf("%w: %q", swapi.ErrUnknownEntityType, entityType)
	}
}

func listOf[T swapi.Entity](
	ctx context.Context,
	searcher swapi.Searcher[T],
	entityType swapi.EntityType,
	params *swapi.QueryParams,
	all bool,
	summarize func(T) string,
) (*ListView, error) {
	if !all {
		return listPage(ctx, searcher, entityType, params, summarize)
	}

	results, err := swapi.FetchAllPages(ctx, searcher, params, swapi.DefaultPaginationOptions())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", entityType, err)
	}

	collection := &swapi.Collection[T]{Count: len(results), Results: results}

	list := newListView(entityType, params, collection, summarize)
	list.TotalPages = min(list.TotalPages, 1)

	return list, nil
}

func listPage[T swapi.Entity](
	ctx context.Context,
	searcher swapi.Searcher[T],
	entityType swapi.EntityType,
	params *swapi.QueryParams,
	summarize func(T) string,
) (*ListView, error) {
	collection, err := searcher.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", entityType, err)
	}

	return newListView(entityType, params, collection, summarize), nil
}

func newListView[T swapi.Entity](
	entityType swapi.EntityType,
	params *swapi.QueryParams,
	collection *swapi.Collection[T],
	summarize func(T) string,
) *ListView {
	list := &ListView{
		Kind:       KindList,
		Type:       entityType,
		Query:      params.Search,
		Page:       params.EffectivePage(),
		TotalPages: swapi.TotalPages(collection.Count, constants.DefaultPageSize),
		Count:      collection.Count,
		Items:      make([]ListItem, 0, len(collection.Results)),
	}

	if prev, ok := collection.PreviousPage(); ok {
		list.PrevPage = prev
	}

	if next, ok := collection.NextPage(); ok {
		list.NextPage = next
	}

	for i, item := range collection.Results {
		id, ok := swapi.ExtractID(item.SelfURL())
		if !ok {
			id = strconv.Itoa((list.Page-1)*constants.DefaultPageSize + i + 1)
		}

		list.Items = append(list.Items, ListItem{
			ID:      id,
			Name:    item.DisplayName(),
			Summary: summarize(item),
			Link:    detailLink(entityType, id),
		})
	}

	if len(list.Items) == 0 {
		list.Message = emptyMessage(entityType, list.Query)
	}

	return list
}

func emptyMessage(entityType swapi.EntityType, query string) string {
	if query == "" {
		return fmt.Sprintf("No %s found.", entityType)
	}

	return fmt.Sprintf("No %s found matching %q.", entityType, query)
}
