package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/swapi/internal/http"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	TraceAttributeEntityType string = "swapi.entity-type"
	TraceAttributeEntityID   string = "swapi.entity-id"
	TraceAttributeSearch     string = "swapi.search"
	TraceAttributePage       string = "swapi.page"
)

var tracer = otel.Tracer("swapi-client")

// ResourceClient implements swapi.ResourceClient for one entity type. The
// entity type selects both the collection path and the validation shape.
type ResourceClient[T any] struct {
	httpClient *http.Client
	entityType swapi.EntityType
	shape      swapi.Shape
}

// NewResourceClient creates a resource client for entityType.
func NewResourceClient[T any](httpClient *http.Client, entityType swapi.EntityType) (*ResourceClient[T], error) {
	shape, err := swapi.ShapeFor(entityType)
	if err != nil {
		return nil, err
	}

	return &ResourceClient[T]{
		httpClient: httpClient,
		entityType: entityType,
		shape:      shape,
	}, nil
}

func mustResourceClient[T any](httpClient *http.Client, entityType swapi.EntityType) *ResourceClient[T] {
	client, err := NewResourceClient[T](httpClient, entityType)
	if err != nil {
		panic(err)
	}

	return client
}

// NewPeopleClient creates a client for people.
func NewPeopleClient(httpClient *http.Client) *ResourceClient[swapi.Person] {
	return mustResourceClient[swapi.Person](httpClient, swapi.TypePeople)
}

// NewPlanetsClient creates a client for planets.
func NewPlanetsClient(httpClient *http.Client) *ResourceClient[swapi.Planet] {
	return mustResourceClient[swapi.Planet](httpClient, swapi.TypePlanets)
}

// NewSpeciesClient creates a client for species.
func NewSpeciesClient(httpClient *http.Client) *ResourceClient[swapi.Species] {
	return mustResourceClient[swapi.Species](httpClient, swapi.TypeSpecies)
}

// NewStarshipsClient creates a client for starships.
func NewStarshipsClient(httpClient *http.Client) *ResourceClient[swapi.Starship] {
	return mustResourceClient[swapi.Starship](httpClient, swapi.TypeStarships)
}

// NewVehiclesClient creates a client for vehicles.
func NewVehiclesClient(httpClient *http.Client) *ResourceClient[swapi.Vehicle] {
	return mustResourceClient[swapi.Vehicle](httpClient, swapi.TypeVehicles)
}

// NewFilmsClient creates a client for films.
func NewFilmsClient(httpClient *http.Client) *ResourceClient[swapi.Film] {
	return mustResourceClient[swapi.Film](httpClient, swapi.TypeFilms)
}

// Type implements swapi.ResourceClient.Type.
func (c *ResourceClient[T]) Type() swapi.EntityType {
	return c.entityType
}

// Get implements swapi.ResourceClient.Get.
func (c *ResourceClient[T]) Get(ctx context.Context, id string) (*T, error) {
	var err error

	id = strings.TrimSpace(id)

	ctx, span := tracer.Start(ctx, "get-"+c.shape.Entity,
		trace.WithAttributes(attribute.String(TraceAttributeEntityType, string(c.entityType))),
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id)),
	)
	defer func() { recordAnyErrorAndEndSpan(err, span) }()

	if id == "" {
		err = fmt.Errorf("getting %s: %w", c.shape.Entity, swapi.ErrIDRequired)

		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.entityType.Path()+url.PathEscape(id)+"/", nil)
	if err != nil {
		err = fmt.Errorf("getting %s %s: %w", c.shape.Entity, id, err)

		return nil, err
	}

	err = c.shape.Validate(resp.Body)
	if err != nil {
		err = fmt.Errorf("validating %s %s: %w", c.shape.Entity, id, err)

		return nil, err
	}

	var entity T

	err = json.Unmarshal(resp.Body, &entity)
	if err != nil {
		err = fmt.Errorf("parsing %s response: %w", c.shape.Entity, err)

		return nil, err
	}

	return &entity, nil
}

// Search implements swapi.ResourceClient.Search.
func (c *ResourceClient[T]) Search(ctx context.Context, params *swapi.QueryParams) (*swapi.Collection[T], error) {
	var err error

	if params == nil {
		params = swapi.NewQueryParams()
	}

	ctx, span := tracer.Start(ctx, "search-"+string(c.entityType),
		trace.WithAttributes(attribute.String(TraceAttributeEntityType, string(c.entityType))),
		trace.WithAttributes(attribute.String(TraceAttributeSearch, params.Search)),
		trace.WithAttributes(attribute.Int(TraceAttributePage, params.EffectivePage())),
	)
	defer func() { recordAnyErrorAndEndSpan(err, span) }()

	resp, err := c.httpClient.Get(ctx, c.entityType.Path(), params.ToValues())
	if err != nil {
		err = fmt.Errorf("searching %s: %w", c.entityType, err)

		return nil, err
	}

	err = c.shape.ValidateCollection(resp.Body)
	if err != nil {
		err = fmt.Errorf("validating %s page: %w", c.entityType, err)

		return nil, err
	}

	var collection swapi.Collection[T]

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		err = fmt.Errorf("parsing %s list response: %w", c.entityType, err)

		return nil, err
	}

	if collection.Results == nil {
		collection.Results = []T{}
	}

	return &collection, nil
}

// List implements swapi.ResourceClient.List.
func (c *ResourceClient[T]) List(ctx context.Context, page int) (*swapi.Collection[T], error) {
	return c.Search(ctx, swapi.NewQueryParams().WithPage(page))
}

// ExtractID implements swapi.ResourceClient.ExtractID.
func (c *ResourceClient[T]) ExtractID(locator string) (string, bool) {
	return swapi.ExtractID(locator)
}

func recordAnyErrorAndEndSpan(err error, span trace.Span) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
