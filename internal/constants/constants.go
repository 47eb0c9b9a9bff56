package constants

import "time"

// Catalog endpoint.
const (
	// DefaultBaseURL is the public catalog mirror.
	DefaultBaseURL = "https://swapi.py4e.com/api"

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "swapi-go/" + Version

	// Version is the client version reported by `swapi version`.
	Version = "0.1.0"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second

	// ServerReadHeaderTimeout bounds header reads of the HTTP service.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerShutdownTimeout bounds graceful shutdown of the HTTP service.
	ServerShutdownTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless RetryMax is configured.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination.
const (
	// DefaultPageSize is the number of results per catalog page.
	DefaultPageSize = 10
)

// Display caps of detail views.
const (
	FilmCharacterCap  = 8
	FilmPlanetCap     = 8
	FilmStarshipCap   = 3
	FilmVehicleCap    = 3
	PlanetResidentCap = 5
	SpeciesPeopleCap  = 5
	PersonFilmCap     = 5
)

// HTTP service.
const (
	// DefaultServeAddr is the listen address of `swapi serve`.
	DefaultServeAddr = ":8080"

	// ServiceName names the HTTP service in traces.
	ServiceName = "swapi"

	// RequestIDHeader carries the request id.
	RequestIDHeader = "X-Request-ID"
)

// Output formats.
const (
	OutputTable    = "table"
	OutputJSON     = "json"
	OutputYAML     = "yaml"
	OutputMarkdown = "markdown"
)

// Table formatting.
const (
	// SummaryMaxLength truncates long cells in tables.
	SummaryMaxLength = 60
)
