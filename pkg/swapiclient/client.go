package swapiclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/swapi/internal/client"
	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
)

// New creates a new catalog client. An empty BaseURL selects the public mirror.
func New(ctx context.Context, config *swapi.Config) (swapi.Client, error) {
	if config == nil {
		return nil, swapi.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeEndpoint(config.BaseURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithEndpoint creates a client for baseURL with default settings.
func NewWithEndpoint(ctx context.Context, baseURL string) (swapi.Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, swapi.ErrBaseURLRequired
	}

	return New(ctx, &swapi.Config{BaseURL: baseURL})
}

// NewDefault creates a client for the public mirror.
func NewDefault() (swapi.Client, error) {
	return New(context.Background(), &swapi.Config{})
}

// NormalizeEndpoint trims trailing slashes and adds "https://" when no scheme
// is present. An empty endpoint yields the public mirror.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return constants.DefaultBaseURL
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
