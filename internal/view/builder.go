package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/pkg/swapi"
	"golang.org/x/sync/errgroup"
)

// Builder composes views from catalog fetches.
type Builder struct {
	client      swapi.Client
	logger      swapi.Logger
	concurrency int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger that receives fallback and not-found events.
func WithLogger(logger swapi.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithConcurrency caps in-flight fetches per reference group. Zero means
// no cap.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		b.concurrency = n
	}
}

// NewBuilder creates a view builder over client.
func NewBuilder(client swapi.Client, opts ...Option) *Builder {
	builder := &Builder{
		client: client,
		logger: swapi.NoopLogger{},
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder
}

// Detail builds the detail view of any entity type. A failed root fetch
// yields a *NotFound page; only an unknown type or an invalid resolver
// configuration is returned as an error.
func (b *Builder) Detail(ctx context.Context, entityType swapi.EntityType, id string) (Page, error) {
	switch entityType {
	case swapi.TypePeople:
		return b.Person(ctx, id)
	case swapi.TypePlanets:
		return b.Planet(ctx, id)
	case swapi.TypeSpecies:
		return b.Species(ctx, id)
	case swapi.TypeStarships:
		return b.Starship(ctx, id)
	case swapi.TypeVehicles:
		return b.Vehicle(ctx, id)
	case swapi.TypeFilms:
		return b.Film(ctx, id)
	default:
		return nil, fmt.Errorf("%w: %q", swapi.ErrUnknownEntityType, entityType)
	}
}

// Person builds the detail view of a person.
func (b *Builder) Person(ctx context.Context, id string) (Page, error) {
	person, err := b.client.People().Get(ctx, id)
	if err != nil {
		return b.notFound(swapi.TypePeople, id, err), nil
	}

	detail := newDetail(swapi.TypePeople, idOf(person.Resource, id), person.Name)
	detail.Attributes = []Attribute{
		{Label: "Height", Value: withUnit(person.Height, "cm")},
		{Label: "Mass", Value: withUnit(person.Mass, "kg")},
		{Label: "Hair color", Value: titleCase(person.HairColor)},
		{Label: "Skin color", Value: titleCase(person.SkinColor)},
		{Label: "Eye color", Value: titleCase(person.EyeColor)},
		{Label: "Birth year", Value: formatValue(person.BirthYear)},
		{Label: "Gender", Value: titleCase(person.Gender)},
	}

	return b.withGroups(ctx, detail,
		refs("Homeworld", b.client.Planets(), []string{person.Homeworld}, 0),
		refs("Films", b.client.Films(), person.Films, constants.PersonFilmCap),
		refs("Species", b.client.Species(), person.Species, 0),
		refs("Vehicles", b.client.Vehicles(), person.Vehicles, 0),
		refs("Starships", b.client.Starships(), person.Starships, 0),
	)
}

// Planet builds the detail view of a planet.
func (b *Builder) Planet(ctx context.Context, id string) (Page, error) {
	planet, err := b.client.Planets().Get(ctx, id)
	if err != nil {
		return b.notFound(swapi.TypePlanets, id, err), nil
	}

	detail := newDetail(swapi.TypePlanets, idOf(planet.Resource, id), planet.Name)
	detail.Subtitle = titleCase(planet.Climate)
	detail.Attributes = []Attribute{
		{Label: "Diameter", Value: withUnit(planet.Diameter, "km")},
		{Label: "Rotation period", Value: withUnit(planet.RotationPeriod, "hours")},
		{Label: "Orbital period", Value: withUnit(planet.OrbitalPeriod, "days")},
		{Label: "Gravity", Value: formatValue(planet.Gravity)},
		{Label: "Population", Value: formatNumber(planet.Population)},
		{Label: "Climate", Value: titleCase(planet.Climate)},
		{Label: "Terrain", Value: titleCase(planet.Terrain)},
		{Label: "Surface water", Value: withUnit(planet.SurfaceWater, "%")},
	}

	return b.withGroups(ctx, detail,
		refs("Residents", b.client.People(), planet.Residents, constants.PlanetResidentCap),
		refs("Films", b.client.Films(), planet.Films, 0),
	)
}

// Species builds the detail view of a species. A species without a
// homeworld shows the planet fallback.
func (b *Builder) Species(ctx context.Context, id string) (Page, error) {
	species, err := b.client.Species().Get(ctx, id)
	if err != nil {
		return b.notFound(swapi.TypeSpecies, id, err), nil
	}

	detail := newDetail(swapi.TypeSpecies, idOf(species.Resource, id), species.Name)
	detail.Subtitle = titleCase(species.Classification)
	detail.Attributes = []Attribute{
		{Label: "Classification", Value: titleCase(species.Classification)},
		{Label: "Designation", Value: titleCase(species.Designation)},
		{Label: "Average height", Value: withUnit(species.AverageHeight, "cm")},
		{Label: "Average lifespan", Value: withUnit(species.AverageLifespan, "years")},
		{Label: "Eye colors", Value: titleCase(species.EyeColors)},
		{Label: "Hair colors", Value: titleCase(species.HairColors)},
		{Label: "Skin colors", Value: titleCase(species.SkinColors)},
		{Label: "Language", Value: formatValue(species.Language)},
	}

	return b.withGroups(ctx, detail,
		refs("Homeworld", b.client.Planets(), []string{species.HomeworldLocator()}, 0),
		refs("People", b.client.People(), species.People, constants.SpeciesPeopleCap),
		refs("Films", b.client.Films(), species.Films, 0),
	)
}

// Starship builds the detail view of a starship.
func (b *Builder) Starship(ctx context.Context, id string) (Page, error) {
	starship, err := b.client.Starships().Get(ctx, id)
	if err != nil {
		return b.notFound(swapi.TypeStarships, id, err), nil
	}

	detail := newDetail(swapi.TypeStarships, idOf(starship.Resource, id), starship.Name)
	detail.Subtitle = starship.Model
	detail.Attributes = []Attribute{
		{Label: "Model", Value: formatValue(starship.Model)},
		{Label: "Class", Value: titleCase(starship.StarshipClass)},
		{Label: "Manufacturer", Value: formatValue(starship.Manufacturer)},
		{Label: "Cost", Value: withUnit(starship.CostInCredits, "credits")},
		{Label: "Length", Value: withUnit(starship.Length, "m")},
		{Label: "Crew", Value: formatNumber(starship.Crew)},
		{Label: "Passengers", Value: formatNumber(starship.Passengers)},
		{Label: "Max atmosphering speed", Value: formatNumber(starship.MaxAtmospheringSpeed)},
		{Label: "Hyperdrive rating", Value: formatValue(starship.HyperdriveRating)},
		{Label: "MGLT", Value: formatValue(starship.MGLT)},
		{Label: "Cargo capacity", Value: withUnit(starship.CargoCapacity, "kg")},
		{Label: "Consumables", Value: formatValue(starship.Consumables)},
	}

	return b.withGroups(ctx, detail,
		refs("Pilots", b.client.People(), starship.Pilots, 0),
		refs("Films", b.client.Films(), starship.Films, 0),
	)
}

// Vehicle builds the detail view of a vehicle.
func (b *Builder) Vehicle(ctx context.Context, id string) (Page, error) {
	vehicle, err := b.client.Vehicles().Get(ctx, id)
	if err != nil {
		return b.notFound(swapi.TypeVehicles, id, err), nil
	}

	detail := newDetail(swapi.TypeVehicles, idOf(vehicle.Resource, id), vehicle.Name)
	detail.Subtitle = vehicle.Model
	detail.Attributes = []Attribute{
		{Label: "Model", Value: formatValue(vehicle.Model)},
		{Label: "Class", Value: titleCase(vehicle.VehicleClass)},
		{Label: "Manufacturer", Value: formatValue(vehicle.Manufacturer)},
		{Label: "Cost", Value: withUnit(vehicle.CostInCredits, "credits")},
		{Label: "Length", Value: withUnit(vehicle.Length, "m")},
		{Label: "Crew", Value: formatNumber(vehicle.Crew)},
		{Label: "Passengers", Value: formatNumber(vehicle.Passengers)},
		{Label: "Max atmosphering speed", Value: formatNumber(vehicle.MaxAtmospheringSpeed)},
		{Label: "Cargo capacity", Value: withUnit(vehicle.CargoCapacity, "kg")},
		{Label: "Consumables", Value: formatValue(vehicle.Consumables)},
	}

	return b.withGroups(ctx, detail,
		refs("Pilots", b.client.People(), vehicle.Pilots, 0),
		refs("Films", b.client.Films(), vehicle.Films, 0),
	)
}

// Film builds the detail view of a film.
func (b *Builder) Film(ctx context.Context, id string) (Page, error) {
	film, err := b.client.Films().Get(ctx, id)
	if err != nil {
		return b.notFound(swapi.TypeFilms, id, err), nil
	}

	detail := newDetail(swapi.TypeFilms, idOf(film.Resource, id), film.Title)
	detail.Subtitle = joinSummary(episodeLabel(film.EpisodeID), yearOf(film.ReleaseDate))
	detail.Text = crawlText(film.OpeningCrawl)
	detail.Attributes = []Attribute{
		{Label: "Episode", Value: fmt.Sprintf("%d", film.EpisodeID)},
		{Label: "Director", Value: formatValue(film.Director)},
		{Label: "Producer", Value: formatValue(film.Producer)},
		{Label: "Release date", Value: formatDate(film.ReleaseDate)},
	}

	return b.withGroups(ctx, detail,
		refs("Characters", b.client.People(), film.Characters, constants.FilmCharacterCap),
		refs("Planets", b.client.Planets(), film.Planets, constants.FilmPlanetCap),
		refs("Starships", b.client.Starships(), film.Starships, constants.FilmStarshipCap),
		refs("Vehicles", b.client.Vehicles(), film.Vehicles, constants.FilmVehicleCap),
		refs("Species", b.client.Species(), film.Species, 0),
	)
}

// groupFunc resolves one reference group.
type groupFunc func(ctx context.Context, opts ...swapi.ResolveOption) (RefGroup, error)

// refs returns a groupFunc resolving at most limit of locators through
// getter. A zero limit resolves them all.
func refs[T swapi.Entity](title string, getter swapi.Getter[T], locators []string, limit int) groupFunc {
	return func(ctx context.Context, opts ...swapi.ResolveOption) (RefGroup, error) {
		resolved, err := swapi.Resolve(ctx, getter, locators, append(opts, swapi.WithLimit(limit))...)
		if err != nil {
			return RefGroup{}, fmt.Errorf("resolving %s: %w", strings.ToLower(title), err)
		}

		group := RefGroup{
			Title: title,
			Type:  getter.Type(),
			Total: len(locators),
			Items: make([]Ref, 0, len(resolved)),
			More:  len(locators) - len(resolved),
		}

		for _, result := range resolved {
			group.Items = append(group.Items, toRef(getter.Type(), result))
		}

		return group, nil
	}
}

func toRef[T any](entityType swapi.EntityType, result swapi.Resolved[T]) Ref {
	ref := Ref{
		ID:       result.ID,
		Name:     result.Label,
		Locator:  result.Locator,
		Resolved: result.OK(),
	}

	if ref.Resolved {
		ref.Link = detailLink(entityType, result.ID)
	}

	return ref
}

// withGroups resolves every group of a detail view concurrently and keeps
// them in declaration order.
func (b *Builder) withGroups(ctx context.Context, detail *Detail, groups ...groupFunc) (Page, error) {
	opts := []swapi.ResolveOption{
		swapi.WithConcurrency(b.concurrency),
		swapi.WithResolveLogger(b.logger),
	}

	resolved := make([]RefGroup, len(groups))

	g, gctx := errgroup.WithContext(ctx)

	for i, group := range groups {
		g.Go(func() error {
			result, err := group(gctx, opts...)
			if err != nil {
				return err
			}

			resolved[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building %s view: %w", detail.Type.Singular(), err)
	}

	detail.Groups = resolved

	return detail, nil
}

func (b *Builder) notFound(entityType swapi.EntityType, id string, cause error) *NotFound {
	b.logger.Warn("resource not found", map[string]interface{}{
		"type":  string(entityType),
		"id":    id,
		"error": cause.Error(),
	})

	return NewNotFound(entityType, strings.TrimSpace(id), cause)
}

func newDetail(entityType swapi.EntityType, id, title string) *Detail {
	return &Detail{
		Kind:     KindDetail,
		Type:     entityType,
		ID:       id,
		Title:    title,
		BackLink: listLink(entityType),
	}
}

// idOf prefers the id encoded in the entity's own locator.
func idOf(resource swapi.Resource, requested string) string {
	if id := resource.ID(); id != "" {
		return id
	}

	return strings.TrimSpace(requested)
}

var episodeNumerals = []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}

func episodeLabel(episode int) string {
	if episode > 0 && episode < len(episodeNumerals) {
		return "Episode " + episodeNumerals[episode]
	}

	if episode > 0 {
		return fmt.Sprintf("Episode %d", episode)
	}

	return ""
}
