package swapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// EntityType identifies one of the catalog's resource collections.
type EntityType string

const (
	TypePeople    EntityType = "people"
	TypePlanets   EntityType = "planets"
	TypeSpecies   EntityType = "species"
	TypeStarships EntityType = "starships"
	TypeVehicles  EntityType = "vehicles"
	TypeFilms     EntityType = "films"
)

// AllTypes returns every entity type in catalog order.
func AllTypes() []EntityType {
	return []EntityType{TypePeople, TypePlanets, TypeSpecies, TypeStarships, TypeVehicles, TypeFilms}
}

var singularNames = map[EntityType]string{
	TypePeople:    "Person",
	TypePlanets:   "Planet",
	TypeSpecies:   "Species",
	TypeStarships: "Starship",
	TypeVehicles:  "Vehicle",
	TypeFilms:     "Film",
}

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	_, ok := singularNames[t]

	return ok
}

// Path returns the collection path of the type, e.g. "/people/".
func (t EntityType) Path() string {
	return "/" + string(t) + "/"
}

// Singular returns the display name of a single entity of this type.
func (t EntityType) Singular() string {
	if name, ok := singularNames[t]; ok {
		return name
	}

	return "Resource"
}

// String implements fmt.Stringer.
func (t EntityType) String() string {
	return string(t)
}

// ParseEntityType accepts plural or singular type names, case-insensitively.
func ParseEntityType(name string) (EntityType, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	switch normalized {
	case "people", "person", "character", "characters":
		return TypePeople, nil
	case "planets", "planet":
		return TypePlanets, nil
	case "species":
		return TypeSpecies, nil
	case "starships", "starship":
		return TypeStarships, nil
	case "vehicles", "vehicle":
		return TypeVehicles, nil
	case "films", "film":
		return TypeFilms, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownEntityType, name)
}

// Entity is implemented by every catalog record.
type Entity interface {
	DisplayName() string
	SelfURL() string
}

// Resource holds the identity and audit fields shared by all entities.
type Resource struct {
	Created string `json:"created" yaml:"created"`
	Edited  string `json:"edited"  yaml:"edited"`
	URL     string `json:"url"     yaml:"url"`
}

// SelfURL returns the entity's own locator.
func (r Resource) SelfURL() string {
	return r.URL
}

// ID returns the numeric identifier encoded in the self locator.
func (r Resource) ID() string {
	id, _ := ExtractID(r.URL)

	return id
}

// Person is a character of the Star Wars universe.
type Person struct {
	Resource

	Name      string   `json:"name"       yaml:"name"`
	Height    string   `json:"height"     yaml:"height"`
	Mass      string   `json:"mass"       yaml:"mass"`
	HairColor string   `json:"hair_color" yaml:"hair_color"`
	SkinColor string   `json:"skin_color" yaml:"skin_color"`
	EyeColor  string   `json:"eye_color"  yaml:"eye_color"`
	BirthYear string   `json:"birth_year" yaml:"birth_year"`
	Gender    string   `json:"gender"     yaml:"gender"`
	Homeworld string   `json:"homeworld"  yaml:"homeworld"`
	Films     []string `json:"films"      yaml:"films"`
	Species   []string `json:"species"    yaml:"species"`
	Vehicles  []string `json:"vehicles"   yaml:"vehicles"`
	Starships []string `json:"starships"  yaml:"starships"`
}

// DisplayName implements Entity.
func (p Person) DisplayName() string { return p.Name }

// Planet is a planetary body.
type Planet struct {
	Resource

	Name           string   `json:"name"            yaml:"name"`
	Diameter       string   `json:"diameter"        yaml:"diameter"`
	RotationPeriod string   `json:"rotation_period" yaml:"rotation_period"`
	OrbitalPeriod  string   `json:"orbital_period"  yaml:"orbital_period"`
	Gravity        string   `json:"gravity"         yaml:"gravity"`
	Population     string   `json:"population"      yaml:"population"`
	Climate        string   `json:"climate"         yaml:"climate"`
	Terrain        string   `json:"terrain"         yaml:"terrain"`
	SurfaceWater   string   `json:"surface_water"   yaml:"surface_water"`
	Residents      []string `json:"residents"       yaml:"residents"`
	Films          []string `json:"films"           yaml:"films"`
}

// DisplayName implements Entity.
func (p Planet) DisplayName() string { return p.Name }

// Species is a type of person or character.
type Species struct {
	Resource

	Name            string   `json:"name"             yaml:"name"`
	Classification  string   `json:"classification"   yaml:"classification"`
	Designation     string   `json:"designation"      yaml:"designation"`
	AverageHeight   string   `json:"average_height"   yaml:"average_height"`
	AverageLifespan string   `json:"average_lifespan" yaml:"average_lifespan"`
	EyeColors       string   `json:"eye_colors"       yaml:"eye_colors"`
	HairColors      string   `json:"hair_colors"      yaml:"hair_colors"`
	SkinColors      string   `json:"skin_colors"      yaml:"skin_colors"`
	Language        string   `json:"language"         yaml:"language"`
	Homeworld       *string  `json:"homeworld"        yaml:"homeworld"`
	People          []string `json:"people"           yaml:"people"`
	Films           []string `json:"films"            yaml:"films"`
}

// DisplayName implements Entity.
func (s Species) DisplayName() string { return s.Name }

// HomeworldLocator returns the homeworld locator or "" when the species has none.
func (s Species) HomeworldLocator() string {
	if s.Homeworld == nil {
		return ""
	}

	return *s.Homeworld
}

// Starship is a hyperdrive-capable vessel.
type Starship struct {
	Resource

	Name                 string   `json:"name"                   yaml:"name"`
	Model                string   `json:"model"                  yaml:"model"`
	StarshipClass        string   `json:"starship_class"         yaml:"starship_class"`
	Manufacturer         string   `json:"manufacturer"           yaml:"manufacturer"`
	CostInCredits        string   `json:"cost_in_credits"        yaml:"cost_in_credits"`
	Length               string   `json:"length"                 yaml:"length"`
	Crew                 string   `json:"crew"                   yaml:"crew"`
	Passengers           string   `json:"passengers"             yaml:"passengers"`
	MaxAtmospheringSpeed string   `json:"max_atmosphering_speed" yaml:"max_atmosphering_speed"`
	HyperdriveRating     string   `json:"hyperdrive_rating"      yaml:"hyperdrive_rating"`
	MGLT                 string   `json:"MGLT"                   yaml:"MGLT"`
	CargoCapacity        string   `json:"cargo_capacity"         yaml:"cargo_capacity"`
	Consumables          string   `json:"consumables"            yaml:"consumables"`
	Films                []string `json:"films"                  yaml:"films"`
	Pilots               []string `json:"pilots"                 yaml:"pilots"`
}

// DisplayName implements Entity.
func (s Starship) DisplayName() string { return s.Name }

// Vehicle is a vessel without hyperdrive capability.
type Vehicle struct {
	Resource

	Name                 string   `json:"name"                   yaml:"name"`
	Model                string   `json:"model"                  yaml:"model"`
	VehicleClass         string   `json:"vehicle_class"          yaml:"vehicle_class"`
	Manufacturer         string   `json:"manufacturer"           yaml:"manufacturer"`
	CostInCredits        string   `json:"cost_in_credits"        yaml:"cost_in_credits"`
	Length               string   `json:"length"                 yaml:"length"`
	Crew                 string   `json:"crew"                   yaml:"crew"`
	Passengers           string   `json:"passengers"             yaml:"passengers"`
	MaxAtmospheringSpeed string   `json:"max_atmosphering_speed" yaml:"max_atmosphering_speed"`
	CargoCapacity        string   `json:"cargo_capacity"         yaml:"cargo_capacity"`
	Consumables          string   `json:"consumables"            yaml:"consumables"`
	Films                []string `json:"films"                  yaml:"films"`
	Pilots               []string `json:"pilots"                 yaml:"pilots"`
}

// DisplayName implements Entity.
func (v Vehicle) DisplayName() string { return v.Name }

// Film is a Star Wars film.
type Film struct {
	Resource

	Title        string   `json:"title"         yaml:"title"`
	EpisodeID    int      `json:"episode_id"    yaml:"episode_id"`
	OpeningCrawl string   `json:"opening_crawl" yaml:"opening_crawl"`
	Director     string   `json:"director"      yaml:"director"`
	Producer     string   `json:"producer"      yaml:"producer"`
	ReleaseDate  string   `json:"release_date"  yaml:"release_date"`
	Characters   []string `json:"characters"    yaml:"characters"`
	Planets      []string `json:"planets"       yaml:"planets"`
	Starships    []string `json:"starships"     yaml:"starships"`
	Vehicles     []string `json:"vehicles"      yaml:"vehicles"`
	Species      []string `json:"species"       yaml:"species"`
}

// DisplayName implements Entity.
func (f Film) DisplayName() string { return f.Title }

// Collection is one page of a collection response.
type Collection[T any] struct {
	Count    int     `json:"count"    yaml:"count"`
	Next     *string `json:"next"     yaml:"next"`
	Previous *string `json:"previous" yaml:"previous"`
	Results  []T     `json:"results"  yaml:"results"`
}

// HasNext reports whether a further page exists.
func (c *Collection[T]) HasNext() bool {
	return c.Next != nil && *c.Next != ""
}

// NextPage returns the page number encoded in the next locator.
func (c *Collection[T]) NextPage() (int, bool) {
	if !c.HasNext() {
		return 0, false
	}

	return pageFromLocator(*c.Next)
}

// PreviousPage returns the page number encoded in the previous locator.
// A previous locator without a page parameter points at page 1.
func (c *Collection[T]) PreviousPage() (int, bool) {
	if c.Previous == nil || *c.Previous == "" {
		return 0, false
	}

	return pageFromLocator(*c.Previous)
}

func pageFromLocator(locator string) (int, bool) {
	parsed, err := url.Parse(locator)
	if err != nil {
		return 0, false
	}

	raw := parsed.Query().Get("page")
	if raw == "" {
		return 1, true
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}

	return page, true
}
