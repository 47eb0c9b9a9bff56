package view_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/swapi/internal/client"
	"github.com/fivetwenty-io/swapi/internal/fake"
	"github.com/fivetwenty-io/swapi/internal/logging"
	"github.com/fivetwenty-io/swapi/internal/view"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestBuilder(t *testing.T, opts ...view.Option) (*view.Builder, *fake.Catalog) {
	t.Helper()

	catalog := fake.NewCatalog()
	t.Cleanup(catalog.Close)

	c, err := client.New(&swapi.Config{BaseURL: catalog.BaseURL()})
	require.NoError(t, err)

	return view.NewBuilder(c, opts...), catalog
}

func detailOf(t *testing.T, page view.Page) *view.Detail {
	t.Helper()

	detail, ok := page.(*view.Detail)
	require.True(t, ok, "expected *view.Detail, got %T", page)

	return detail
}

func TestBuilder_Film(t *testing.T) { //nolint:funlen
	t.Parallel()

	builder, catalog := newTestBuilder(t)

	page, err := builder.Film(context.Background(), "1")
	require.NoError(t, err)

	detail := detailOf(t, page)
	assert.Equal(t, view.KindDetail, detail.Kind)
	assert.Equal(t, "A New Hope", detail.Title)
	assert.Equal(t, "Episode IV · 1977", detail.Subtitle)
	assert.Equal(t, "/films", detail.BackLink)
	assert.Equal(t, "It is a period of civil war. Rebel spaceships, striking from a hidden base, have won their first victory against the evil Galactic Empire.", detail.Text)

	releaseDate, ok := detail.Attribute("Release date")
	require.True(t, ok)
	assert.Equal(t, "May 25, 1977", releaseDate)

	tests := []struct {
		title string
		total int
		items int
		more  int
		first string
	}{
		{"Characters", 10, 8, 2, "Luke Skywalker"},
		{"Planets", 3, 3, 0, "Tatooine"},
		{"Starships", 5, 3, 2, "CR90 corvette"},
		{"Vehicles", 4, 3, 1, "Sand Crawler"},
		{"Species", 2, 2, 0, "Human"},
	}

	require.Len(t, detail.Groups, len(tests))

	for i, tt := range tests {
		group := detail.Groups[i]
		assert.Equal(t, tt.title, group.Title)
		assert.Equal(t, tt.total, group.Total, tt.title)
		assert.Len(t, group.Items, tt.items, tt.title)
		assert.Equal(t, tt.more, group.More, tt.title)
		assert.Equal(t, tt.first, group.Items[0].Name, tt.title)
		assert.True(t, group.Items[0].Resolved, tt.title)
	}

	characters, _ := detail.Group("Characters")
	assert.Equal(t, "…and 2 more", characters.MoreText())
	assert.Equal(t, "/people/1", characters.Items[0].Link)
	assert.Equal(t, "R5-D4", characters.Items[7].Name)

	// Capped references are never fetched.
	assert.Zero(t, catalog.RequestCount("/people/9/"))
	assert.Zero(t, catalog.RequestCount("/people/10/"))
	assert.Zero(t, catalog.RequestCount("/starships/9/"))
	assert.Zero(t, catalog.RequestCount("/vehicles/8/"))
}

func TestBuilder_PersonWithFailedHomeworld(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	builder, catalog := newTestBuilder(t, view.WithLogger(logging.NewZapLoggerFrom(zap.New(core))))
	catalog.Fail(swapi.TypePlanets, "1", http.StatusInternalServerError)

	page, err := builder.Person(context.Background(), "1")
	require.NoError(t, err)

	detail := detailOf(t, page)
	assert.Equal(t, "Luke Skywalker", detail.Title)

	height, _ := detail.Attribute("Height")
	assert.Equal(t, "172 cm", height)

	homeworld, ok := detail.Group("Homeworld")
	require.True(t, ok)
	require.Len(t, homeworld.Items, 1)
	assert.Equal(t, "Unknown Planet", homeworld.Items[0].Name)
	assert.False(t, homeworld.Items[0].Resolved)
	assert.Empty(t, homeworld.Items[0].Link)

	vehicles, _ := detail.Group("Vehicles")
	require.Len(t, vehicles.Items, 2)
	assert.Equal(t, "T-16 skyhopper", vehicles.Items[0].Name)
	assert.Equal(t, "X-34 landspeeder", vehicles.Items[1].Name)

	unresolved := logs.FilterMessage("reference unresolved").AllUntimed()
	require.Len(t, unresolved, 1)
	assert.Equal(t, "planets", unresolved[0].ContextMap()["type"])
}

func TestBuilder_SpeciesWithoutHomeworld(t *testing.T) {
	t.Parallel()

	builder, catalog := newTestBuilder(t)

	page, err := builder.Species(context.Background(), "2")
	require.NoError(t, err)

	detail := detailOf(t, page)
	homeworld, _ := detail.Group("Homeworld")
	require.Len(t, homeworld.Items, 1)
	assert.Equal(t, "Unknown Planet", homeworld.Items[0].Name)
	assert.Zero(t, catalog.RequestCount("/planets/"))

	lifespan, _ := detail.Attribute("Average lifespan")
	assert.Equal(t, "Indefinite", lifespan)
}

func TestBuilder_SpeciesPeopleCap(t *testing.T) {
	t.Parallel()

	builder, _ := newTestBuilder(t)

	page, err := builder.Species(context.Background(), "1")
	require.NoError(t, err)

	people, _ := detailOf(t, page).Group("People")
	assert.Equal(t, 9, people.Total)
	assert.Len(t, people.Items, 5)
	assert.Equal(t, 4, people.More)
}

func TestBuilder_NotFound(t *testing.T) {
	t.Parallel()

	builder, _ := newTestBuilder(t)

	page, err := builder.Detail(context.Background(), swapi.TypePeople, "99")
	require.NoError(t, err)

	notFound, ok := page.(*view.NotFound)
	require.True(t, ok, "expected *view.NotFound, got %T", page)
	assert.Equal(t, view.KindNotFound, notFound.Kind)
	assert.Equal(t, "Person not found", notFound.Title)
	assert.Equal(t, `We couldn't find the person with ID "99".`, notFound.Message)
	assert.Equal(t, "/people", notFound.BackLink)
	assert.True(t, swapi.IsNotFound(notFound.Err()))
}

func TestBuilder_Detail(t *testing.T) {
	t.Parallel()

	builder, _ := newTestBuilder(t)

	tests := []struct {
		entityType swapi.EntityType
		id         string
		title      string
		groups     []string
	}{
		{swapi.TypePeople, "5", "Leia Organa", []string{"Homeworld", "Films", "Species", "Vehicles", "Starships"}},
		{swapi.TypePlanets, "2", "Alderaan", []string{"Residents", "Films"}},
		{swapi.TypeSpecies, "1", "Human", []string{"Homeworld", "People", "Films"}},
		{swapi.TypeStarships, "12", "X-wing", []string{"Pilots", "Films"}},
		{swapi.TypeVehicles, "6", "T-16 skyhopper", []string{"Pilots", "Films"}},
		{swapi.TypeFilms, "2", "The Empire Strikes Back", []string{"Characters", "Planets", "Starships", "Vehicles", "Species"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.entityType), func(t *testing.T) {
			t.Parallel()

			page, err := builder.Detail(context.Background(), tt.entityType, tt.id)
			require.NoError(t, err)

			detail := detailOf(t, page)
			assert.Equal(t, tt.title, detail.Heading())
			assert.Equal(t, tt.id, detail.ID)

			titles := make([]string, 0, len(detail.Groups))
			for _, group := range detail.Groups {
				titles = append(titles, group.Title)
			}

			assert.Equal(t, tt.groups, titles)
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		_, err := builder.Detail(context.Background(), swapi.EntityType("droids"), "1")
		require.ErrorIs(t, err, swapi.ErrUnknownEntityType)
	})
}

func TestBuilder_InvalidConcurrency(t *testing.T) {
	t.Parallel()

	builder, _ := newTestBuilder(t, view.WithConcurrency(-1))

	_, err := builder.Planet(context.Background(), "1")
	require.ErrorIs(t, err, swapi.ErrInvalidConcurrency)
}

func TestBuilder_PilotsWithConcurrencyCap(t *testing.T) {
	t.Parallel()

	builder, _ := newTestBuilder(t, view.WithConcurrency(1))

	page, err := builder.Starship(context.Background(), "12")
	require.NoError(t, err)

	pilots, _ := detailOf(t, page).Group("Pilots")
	require.Len(t, pilots.Items, 2)
	assert.Equal(t, "Luke Skywalker", pilots.Items[0].Name)
	assert.Equal(t, "Biggs Darklighter", pilots.Items[1].Name)

	cost, _ := detailOf(t, page).Attribute("Cost")
	assert.Equal(t, "149,999 credits", cost)
}

func TestBuilder_PersonFilmCap(t *testing.T) {
	t.Parallel()

	builder, catalog := newTestBuilder(t)

	films := make([]string, 0, 7)
	for id := 1; id <= 7; id++ {
		films = append(films, catalog.Locator(swapi.TypeFilms, id))
	}

	catalog.Put(swapi.TypePeople, "20", swapi.Person{
		Resource:  swapi.Resource{URL: catalog.Locator(swapi.TypePeople, 20)},
		Name:      "Wedge Antilles",
		Height:    "170",
		Mass:      "77",
		HairColor: "brown",
		SkinColor: "fair",
		EyeColor:  "hazel",
		BirthYear: "21BBY",
		Gender:    "male",
		Homeworld: catalog.Locator(swapi.TypePlanets, 1),
		Films:     films,
		Species:   []string{},
		Vehicles:  []string{},
		Starships: []string{},
	})

	page, err := builder.Person(context.Background(), "20")
	require.NoError(t, err)

	group, ok := detailOf(t, page).Group("Films")
	require.True(t, ok)
	assert.Equal(t, 7, group.Total)
	assert.Len(t, group.Items, 5)
	assert.Equal(t, 2, group.More)
	assert.Equal(t, "…and 2 more", group.MoreText())
	assert.Equal(t, "A New Hope", group.Items[0].Name)

	assert.Zero(t, catalog.RequestCount("/films/6/"))
	assert.Zero(t, catalog.RequestCount("/films/7/"))
}
