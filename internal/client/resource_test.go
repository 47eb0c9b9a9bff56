package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/swapi/internal/client"
	"github.com/fivetwenty-io/swapi/internal/fake"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*client.Client, *fake.Catalog) {
	t.Helper()

	catalog := fake.NewCatalog()
	t.Cleanup(catalog.Close)

	c, err := client.New(&swapi.Config{BaseURL: catalog.BaseURL()})
	require.NoError(t, err)

	return c, catalog
}

func TestResourceClient_Get(t *testing.T) {
	t.Parallel()

	c, catalog := newTestClient(t)

	tests := []struct {
		name    string
		fetch   func(ctx context.Context) (string, error)
		want    string
		wantReq string
	}{
		{
			name: "person",
			fetch: func(ctx context.Context) (string, error) {
				p, err := c.People().Get(ctx, "1")
				if err != nil {
					return "", err
				}

				return p.Name, nil
			},
			want:    "Luke Skywalker",
			wantReq: "/people/1/",
		},
		{
			name: "planet",
			fetch: func(ctx context.Context) (string, error) {
				p, err := c.Planets().Get(ctx, "2")
				if err != nil {
					return "", err
				}

				return p.Name, nil
			},
			want:    "Alderaan",
			wantReq: "/planets/2/",
		},
		{
			name: "species with null homeworld",
			fetch: func(ctx context.Context) (string, error) {
				s, err := c.Species().Get(ctx, "2")
				if err != nil {
					return "", err
				}

				return s.Name + ":" + s.HomeworldLocator(), nil
			},
			want:    "Droid:",
			wantReq: "/species/2/",
		},
		{
			name: "starship",
			fetch: func(ctx context.Context) (string, error) {
				s, err := c.Starships().Get(ctx, "12")
				if err != nil {
					return "", err
				}

				return s.Name, nil
			},
			want:    "X-wing",
			wantReq: "/starships/12/",
		},
		{
			name: "vehicle",
			fetch: func(ctx context.Context) (string, error) {
				v, err := c.Vehicles().Get(ctx, "4")
				if err != nil {
					return "", err
				}

				return v.Name, nil
			},
			want:    "Sand Crawler",
			wantReq: "/vehicles/4/",
		},
		{
			name: "film",
			fetch: func(ctx context.Context) (string, error) {
				f, err := c.Films().Get(ctx, "1")
				if err != nil {
					return "", err
				}

				return f.Title, nil
			},
			want:    "A New Hope",
			wantReq: "/films/1/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fetch(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, catalog.Requests(), tt.wantReq)
		})
	}
}

func TestResourceClient_GetErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		c, catalog := newTestClient(t)

		_, err := c.People().Get(context.Background(), "  ")
		require.ErrorIs(t, err, swapi.ErrIDRequired)
		assert.Empty(t, catalog.Requests())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t)

		person, err := c.People().Get(context.Background(), "999")
		require.Error(t, err)
		assert.Nil(t, person)
		assert.True(t, swapi.IsNotFound(err))
		assert.Contains(t, err.Error(), "API error: 404 Not Found")
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		c, catalog := newTestClient(t)
		catalog.Fail(swapi.TypePlanets, "1", http.StatusInternalServerError)

		_, err := c.Planets().Get(context.Background(), "1")
		require.Error(t, err)
		assert.True(t, swapi.IsStatus(err, http.StatusInternalServerError))
		assert.Equal(t, 1, catalog.RequestCount("/planets/1/"))
	})

	t.Run("shape mismatch", func(t *testing.T) {
		t.Parallel()

		c, catalog := newTestClient(t)
		catalog.PutRaw(swapi.TypePeople, "1", []byte(`{"name":"Luke Skywalker","height":172}`))

		person, err := c.People().Get(context.Background(), "1")
		require.Error(t, err)
		assert.Nil(t, person)
		assert.True(t, swapi.IsValidationError(err))
		assert.Contains(t, err.Error(), "height: expected string, got number")
	})
}

func TestResourceClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("first page omits page parameter", func(t *testing.T) {
		t.Parallel()

		c, catalog := newTestClient(t)

		page, err := c.People().Search(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 12, page.Count)
		assert.Len(t, page.Results, 10)
		assert.True(t, page.HasNext())
		assert.Equal(t, []string{"/people/"}, catalog.Requests())
	})

	t.Run("search and page", func(t *testing.T) {
		t.Parallel()

		c, catalog := newTestClient(t)

		page, err := c.People().List(context.Background(), 2)
		require.NoError(t, err)
		assert.Len(t, page.Results, 2)
		assert.False(t, page.HasNext())

		previous, ok := page.PreviousPage()
		assert.True(t, ok)
		assert.Equal(t, 1, previous)

		found, err := c.People().Search(context.Background(), swapi.NewQueryParams().WithSearch("sky"))
		require.NoError(t, err)
		require.Len(t, found.Results, 2)
		assert.Equal(t, "Luke Skywalker", found.Results[0].Name)
		assert.Equal(t, "Anakin Skywalker", found.Results[1].Name)

		assert.Equal(t, []string{"/people/?page=2", "/people/?search=sky"}, catalog.Requests())
	})

	t.Run("empty results", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t)

		found, err := c.Films().Search(context.Background(), swapi.NewQueryParams().WithSearch("phantom"))
		require.NoError(t, err)
		assert.Equal(t, 0, found.Count)
		assert.NotNil(t, found.Results)
		assert.Empty(t, found.Results)
	})

	t.Run("invalid result in page", func(t *testing.T) {
		t.Parallel()

		c, catalog := newTestClient(t)
		catalog.PutRaw(swapi.TypeVehicles, "4", []byte(`{"name":"Sand Crawler"}`))

		_, err := c.Vehicles().Search(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, swapi.IsValidationError(err))
		assert.Contains(t, err.Error(), "results[0].model")
	})

	t.Run("collection failure", func(t *testing.T) {
		t.Parallel()

		c, catalog := newTestClient(t)
		catalog.FailCollection(swapi.TypeStarships, http.StatusServiceUnavailable)

		_, err := c.Starships().Search(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, swapi.IsStatus(err, http.StatusServiceUnavailable))
	})
}

func TestResourceClient_FetchAllPages(t *testing.T) {
	t.Parallel()

	c, catalog := newTestClient(t)

	people, err := swapi.FetchAllPages[swapi.Person](context.Background(), c.People(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, people, 12)
	assert.Equal(t, []string{"/people/", "/people/?page=2"}, catalog.Requests())
}

func TestResourceClient_ResolveThroughClient(t *testing.T) {
	t.Parallel()

	c, catalog := newTestClient(t)
	catalog.Fail(swapi.TypePlanets, "2", http.StatusInternalServerError)

	film, err := c.Films().Get(context.Background(), "1")
	require.NoError(t, err)

	planets, err := swapi.Resolve(context.Background(), c.Planets(), film.Planets)
	require.NoError(t, err)
	require.Len(t, planets, 3)

	assert.Equal(t, "Tatooine", planets[0].Label)
	assert.Equal(t, "Unknown Planet", planets[1].Label)
	assert.Equal(t, "Yavin IV", planets[2].Label)
}

func TestResourceClient_ExtractIDAndType(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)

	id, ok := c.Films().ExtractID("https://swapi.py4e.com/api/films/3/")
	assert.True(t, ok)
	assert.Equal(t, "3", id)
	assert.Equal(t, swapi.TypeFilms, c.Films().Type())
}

func TestClient_Root(t *testing.T) {
	t.Parallel()

	c, catalog := newTestClient(t)

	root, err := c.Root(context.Background())
	require.NoError(t, err)
	assert.Len(t, root, 6)
	assert.Equal(t, catalog.BaseURL()+"/films/", root[swapi.TypeFilms])
	assert.Equal(t, []string{"/"}, catalog.Requests())
}

func TestResourceClient_ValidatedEntitiesRevalidate(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		entityType swapi.EntityType
		get        func() (any, error)
	}{
		{"person", swapi.TypePeople, func() (any, error) { return c.People().Get(ctx, "1") }},
		{"planet", swapi.TypePlanets, func() (any, error) { return c.Planets().Get(ctx, "1") }},
		{"species", swapi.TypeSpecies, func() (any, error) { return c.Species().Get(ctx, "1") }},
		{"species without homeworld", swapi.TypeSpecies, func() (any, error) { return c.Species().Get(ctx, "2") }},
		{"starship", swapi.TypeStarships, func() (any, error) { return c.Starships().Get(ctx, "12") }},
		{"vehicle", swapi.TypeVehicles, func() (any, error) { return c.Vehicles().Get(ctx, "4") }},
		{"film", swapi.TypeFilms, func() (any, error) { return c.Films().Get(ctx, "1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entity, err := tt.get()
			require.NoError(t, err)

			data, err := json.Marshal(entity)
			require.NoError(t, err)

			shape, err := swapi.ShapeFor(tt.entityType)
			require.NoError(t, err)
			require.NoError(t, shape.Validate(data))
		})
	}

	t.Run("null homeworld is kept", func(t *testing.T) {
		t.Parallel()

		species, err := c.Species().Get(ctx, "2")
		require.NoError(t, err)

		data, err := json.Marshal(species)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"homeworld":null`)
	})
}
