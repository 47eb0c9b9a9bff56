package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/internal/http"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
)

// Client implements the swapi.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     swapi.Logger

	// Resource clients
	people    swapi.PeopleClient
	planets   swapi.PlanetsClient
	species   swapi.SpeciesClient
	starships swapi.StarshipsClient
	vehicles  swapi.VehiclesClient
	films     swapi.FilmsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *swapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new catalog client.
func New(config *swapi.Config) (*Client, error) {
	if config == nil {
		return nil, swapi.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, swapi.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	return NewWithHTTPClient(httpClient, config.Logger), nil
}

// NewWithHTTPClient creates a catalog client on top of an existing transport.
func NewWithHTTPClient(httpClient *http.Client, logger swapi.Logger) *Client {
	if logger == nil {
		logger = swapi.NoopLogger{}
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     logger,
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.people = NewPeopleClient(c.httpClient)
	c.planets = NewPlanetsClient(c.httpClient)
	c.species = NewSpeciesClient(c.httpClient)
	c.starships = NewStarshipsClient(c.httpClient)
	c.vehicles = NewVehiclesClient(c.httpClient)
	c.films = NewFilmsClient(c.httpClient)
}

// BaseURL returns the catalog base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Logger returns the configured logger.
func (c *Client) Logger() swapi.Logger {
	return c.logger
}

// Root implements swapi.Client.Root. Unknown keys are ignored.
func (c *Client) Root(ctx context.Context) (swapi.Root, error) {
	resp, err := c.httpClient.Get(ctx, "/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting root: %w", err)
	}

	var raw map[string]string

	err = json.Unmarshal(resp.Body, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing root response: %w", err)
	}

	root := make(swapi.Root, len(raw))

	for key, locator := range raw {
		entityType := swapi.EntityType(key)
		if entityType.Valid() {
			root[entityType] = locator
		}
	}

	return root, nil
}

// People implements swapi.Client.People.
func (c *Client) People() swapi.PeopleClient {
	return c.people
}

// Planets implements swapi.Client.Planets.
func (c *Client) Planets() swapi.PlanetsClient {
	return c.planets
}

// Species implements swapi.Client.Species.
func (c *Client) Species() swapi.SpeciesClient {
	return c.species
}

// Starships implements swapi.Client.Starships.
func (c *Client) Starships() swapi.StarshipsClient {
	return c.starships
}

// Vehicles implements swapi.Client.Vehicles.
func (c *Client) Vehicles() swapi.VehiclesClient {
	return c.vehicles
}

// Films implements swapi.Client.Films.
func (c *Client) Films() swapi.FilmsClient {
	return c.films
}

// loggerAdapter adapts swapi.Logger to http.Logger.
type loggerAdapter struct {
	logger swapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
