package swapi

import (
	"context"
	"time"
)

// Getter fetches a single entity by id.
type Getter[T any] interface {
	Type() EntityType
	Get(ctx context.Context, id string) (*T, error)
}

// Searcher fetches collection pages.
type Searcher[T any] interface {
	Search(ctx context.Context, params *QueryParams) (*Collection[T], error)
}

// ResourceClient defines operations on one entity type.
type ResourceClient[T any] interface {
	Getter[T]
	Searcher[T]

	// List returns one page of the unfiltered collection.
	List(ctx context.Context, page int) (*Collection[T], error)
	// ExtractID returns the id encoded in a locator.
	ExtractID(locator string) (string, bool)
}

type (
	PeopleClient    = ResourceClient[Person]
	PlanetsClient   = ResourceClient[Planet]
	SpeciesClient   = ResourceClient[Species]
	StarshipsClient = ResourceClient[Starship]
	VehiclesClient  = ResourceClient[Vehicle]
	FilmsClient     = ResourceClient[Film]
)

// Root maps each collection of the catalog to its locator, as served by the
// base path.
type Root map[EntityType]string

// Client provides access to every resource client of the catalog.
type Client interface {
	// Root fetches the collection index served at the base path.
	Root(ctx context.Context) (Root, error)

	People() PeopleClient
	Planets() PlanetsClient
	Species() SpeciesClient
	Starships() StarshipsClient
	Vehicles() VehiclesClient
	Films() FilmsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NoopLogger discards every message.
type NoopLogger struct{}

func (NoopLogger) Debug(string, map[string]interface{}) {}
func (NoopLogger) Info(string, map[string]interface{})  {}
func (NoopLogger) Warn(string, map[string]interface{})  {}
func (NoopLogger) Error(string, map[string]interface{}) {}

// Config represents client configuration for building a swapi.Client.
//
// # Retries
//
// Retries are disabled by default: a failed fetch is reported to the caller
// as-is. Setting RetryMax above zero opts in to transport retries for
// connection errors, 429 and 5xx responses, with exponential backoff bounded
// by RetryWaitMin and RetryWaitMax.
//
// # Timeouts
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods. HTTPTimeout bounds every request regardless of context.
type Config struct {
	// BaseURL: base path of the catalog (e.g., "https://swapi.py4e.com/api").
	// swapiclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present. Empty selects the public mirror.
	BaseURL string

	// HTTPTimeout: overall timeout of a single HTTP request. Zero selects the default.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of transport retries. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and the resolver.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
