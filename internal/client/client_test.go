package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/fivetwenty-io/swapi/internal/client"
	swapihttp "github.com/fivetwenty-io/swapi/internal/http"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, swapi.ErrConfigRequired)
	})

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		_, err := New(&swapi.Config{})
		require.ErrorIs(t, err, swapi.ErrBaseURLRequired)
	})

	t.Run("creates client with defaults", func(t *testing.T) {
		t.Parallel()

		client, err := New(&swapi.Config{BaseURL: "https://swapi.example.com/api"})
		require.NoError(t, err)
		assert.Equal(t, "https://swapi.example.com/api", client.BaseURL())
		assert.IsType(t, swapi.NoopLogger{}, client.Logger())
	})

	t.Run("creates client with transport settings", func(t *testing.T) {
		t.Parallel()

		client, err := New(&swapi.Config{
			BaseURL:     "https://swapi.example.com/api",
			UserAgent:   "test-agent/1.0",
			HTTPTimeout: 5 * time.Second,
			RetryMax:    2,
			Debug:       true,
		})
		require.NoError(t, err)
		assert.NotNil(t, client.People())
		assert.NotNil(t, client.Films())
	})
}

func TestClient_RootIgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"people": "https://swapi.example.com/api/people/",
			"films": "https://swapi.example.com/api/films/",
			"droids": "https://swapi.example.com/api/droids/"
		}`))
	}))
	defer server.Close()

	client := NewWithHTTPClient(swapihttp.NewClient(server.URL), nil)

	root, err := client.Root(context.Background())
	require.NoError(t, err)
	assert.Equal(t, swapi.Root{
		swapi.TypePeople: "https://swapi.example.com/api/people/",
		swapi.TypeFilms:  "https://swapi.example.com/api/films/",
	}, root)
}

func TestClient_RootMalformed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewWithHTTPClient(swapihttp.NewClient(server.URL), nil)

	_, err := client.Root(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing root response")
}

func TestClient_RootUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWithHTTPClient(swapihttp.NewClient(server.URL), nil)

	_, err := client.Root(context.Background())
	require.Error(t, err)
	assert.True(t, swapi.IsStatus(err, http.StatusBadGateway))
}
