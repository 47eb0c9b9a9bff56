package fake

import (
	"strconv"

	"github.com/fivetwenty-io/swapi/pkg/swapi"
)

var peopleNames = []string{
	"Luke Skywalker", "C-3PO", "R2-D2", "Darth Vader", "Leia Organa", "Owen Lars",
	"Beru Whitesun lars", "R5-D4", "Biggs Darklighter", "Obi-Wan Kenobi", "Anakin Skywalker", "Wilhuff Tarkin",
}

func (c *Catalog) resource(entityType swapi.EntityType, id int) swapi.Resource {
	return swapi.Resource{Created: created, Edited: edited, URL: c.Locator(entityType, id)}
}

func (c *Catalog) locators(entityType swapi.EntityType, ids ...int) []string {
	locators := make([]string, 0, len(ids))
	for _, id := range ids {
		locators = append(locators, c.Locator(entityType, id))
	}

	return locators
}

func (c *Catalog) seed() {
	c.seedPeople()
	c.seedPlanets()
	c.seedSpecies()
	c.seedStarships()
	c.seedVehicles()
	c.seedFilms()
}

func (c *Catalog) seedPeople() {
	for i, name := range peopleNames {
		id := i + 1
		person := swapi.Person{
			Resource:  c.resource(swapi.TypePeople, id),
			Name:      name,
			Height:    "172",
			Mass:      "77",
			HairColor: "blond",
			SkinColor: "fair",
			EyeColor:  "blue",
			BirthYear: "19BBY",
			Gender:    "male",
			Homeworld: c.Locator(swapi.TypePlanets, 1),
			Films:     c.locators(swapi.TypeFilms, 1),
			Species:   []string{},
			Vehicles:  []string{},
			Starships: []string{},
		}

		switch id {
		case 1:
			person.Films = c.locators(swapi.TypeFilms, 1, 2)
			person.Species = c.locators(swapi.TypeSpecies, 1)
			person.Vehicles = c.locators(swapi.TypeVehicles, 6, 7)
			person.Starships = c.locators(swapi.TypeStarships, 12)
		case 2, 3, 8:
			person.Species = c.locators(swapi.TypeSpecies, 2)
			person.Gender = "n/a"
		case 5:
			person.Homeworld = c.Locator(swapi.TypePlanets, 2)
			person.Gender = "female"
		}

		c.Put(swapi.TypePeople, strconv.Itoa(id), person)
	}
}

func (c *Catalog) seedPlanets() {
	c.Put(swapi.TypePlanets, "1", swapi.Planet{
		Resource:       c.resource(swapi.TypePlanets, 1),
		Name:           "Tatooine",
		Diameter:       "10465",
		RotationPeriod: "23",
		OrbitalPeriod:  "304",
		Gravity:        "1 standard",
		Population:     "200000",
		Climate:        "arid",
		Terrain:        "desert",
		SurfaceWater:   "1",
		Residents:      c.locators(swapi.TypePeople, 1, 2, 4, 6, 7, 8, 9, 11),
		Films:          c.locators(swapi.TypeFilms, 1),
	})
	c.Put(swapi.TypePlanets, "2", swapi.Planet{
		Resource:       c.resource(swapi.TypePlanets, 2),
		Name:           "Alderaan",
		Diameter:       "12500",
		RotationPeriod: "24",
		OrbitalPeriod:  "364",
		Gravity:        "1 standard",
		Population:     "2000000000",
		Climate:        "temperate",
		Terrain:        "grasslands, mountains",
		SurfaceWater:   "40",
		Residents:      c.locators(swapi.TypePeople, 5, 12),
		Films:          c.locators(swapi.TypeFilms, 1),
	})
	c.Put(swapi.TypePlanets, "3", swapi.Planet{
		Resource:       c.resource(swapi.TypePlanets, 3),
		Name:           "Yavin IV",
		Diameter:       "10200",
		RotationPeriod: "24",
		OrbitalPeriod:  "4818",
		Gravity:        "1 standard",
		Population:     "1000",
		Climate:        "temperate, tropical",
		Terrain:        "jungle, rainforests",
		SurfaceWater:   "8",
		Residents:      []string{},
		Films:          c.locators(swapi.TypeFilms, 1),
	})
}

func (c *Catalog) seedSpecies() {
	homeworld := c.Locator(swapi.TypePlanets, 2)

	c.Put(swapi.TypeSpecies, "1", swapi.Species{
		Resource:        c.resource(swapi.TypeSpecies, 1),
		Name:            "Human",
		Classification:  "mammal",
		Designation:     "sentient",
		AverageHeight:   "180",
		AverageLifespan: "120",
		EyeColors:       "brown, blue, green, hazel, grey, amber",
		HairColors:      "blonde, brown, black, red",
		SkinColors:      "caucasian, black, asian, hispanic",
		Language:        "Galactic Basic",
		Homeworld:       &homeworld,
		People:          c.locators(swapi.TypePeople, 1, 4, 5, 6, 7, 9, 10, 11, 12),
		Films:           c.locators(swapi.TypeFilms, 1, 2),
	})
	c.Put(swapi.TypeSpecies, "2", swapi.Species{
		Resource:        c.resource(swapi.TypeSpecies, 2),
		Name:            "Droid",
		Classification:  "artificial",
		Designation:     "sentient",
		AverageHeight:   "n/a",
		AverageLifespan: "indefinite",
		EyeColors:       "n/a",
		HairColors:      "n/a",
		SkinColors:      "n/a",
		Language:        "n/a",
		Homeworld:       nil,
		People:          c.locators(swapi.TypePeople, 2, 3, 8),
		Films:           c.locators(swapi.TypeFilms, 1, 2),
	})
}

func (c *Catalog) seedStarships() {
	ships := []struct {
		id           int
		name, model  string
		class, maker string
		cost         string
		pilots       []int
	}{
		{2, "CR90 corvette", "CR90 corvette", "corvette", "Corellian Engineering Corporation", "3500000", nil},
		{3, "Star Destroyer", "Imperial I-class Star Destroyer", "Star Destroyer", "Kuat Drive Yards", "150000000", nil},
		{5, "Sentinel-class landing craft", "Sentinel-class landing craft", "landing craft", "Sienar Fleet Systems", "240000", nil},
		{9, "Death Star", "DS-1 Orbital Battle Station", "Deep Space Mobile Battlestation", "Imperial Department of Military Research", "1000000000000", nil},
		{12, "X-wing", "T-65 X-wing", "Starfighter", "Incom Corporation", "149999", []int{1, 9}},
	}

	for _, ship := range ships {
		c.Put(swapi.TypeStarships, strconv.Itoa(ship.id), swapi.Starship{
			Resource:             c.resource(swapi.TypeStarships, ship.id),
			Name:                 ship.name,
			Model:                ship.model,
			StarshipClass:        ship.class,
			Manufacturer:         ship.maker,
			CostInCredits:        ship.cost,
			Length:               "12.5",
			Crew:                 "1",
			Passengers:           "0",
			MaxAtmospheringSpeed: "1050",
			HyperdriveRating:     "1.0",
			MGLT:                 "100",
			CargoCapacity:        "110",
			Consumables:          "1 week",
			Films:                c.locators(swapi.TypeFilms, 1),
			Pilots:               c.locators(swapi.TypePeople, ship.pilots...),
		})
	}
}

func (c *Catalog) seedVehicles() {
	vehicles := []struct {
		id          int
		name, model string
		class       string
		pilots      []int
	}{
		{4, "Sand Crawler", "Digger Crawler", "wheeled", nil},
		{6, "T-16 skyhopper", "T-16 skyhopper", "repulsorcraft", []int{1}},
		{7, "X-34 landspeeder", "X-34 landspeeder", "repulsorcraft", []int{1}},
		{8, "TIE/LN starfighter", "Twin Ion Engine/Ln Starfighter", "starfighter", nil},
	}

	for _, vehicle := range vehicles {
		c.Put(swapi.TypeVehicles, strconv.Itoa(vehicle.id), swapi.Vehicle{
			Resource:             c.resource(swapi.TypeVehicles, vehicle.id),
			Name:                 vehicle.name,
			Model:                vehicle.model,
			VehicleClass:         vehicle.class,
			Manufacturer:         "Corellia Mining Corporation",
			CostInCredits:        "unknown",
			Length:               "36.8",
			Crew:                 "46",
			Passengers:           "30",
			MaxAtmospheringSpeed: "30",
			CargoCapacity:        "50000",
			Consumables:          "2 months",
			Films:                c.locators(swapi.TypeFilms, 1),
			Pilots:               c.locators(swapi.TypePeople, vehicle.pilots...),
		})
	}
}

func (c *Catalog) seedFilms() {
	c.Put(swapi.TypeFilms, "1", swapi.Film{
		Resource:     c.resource(swapi.TypeFilms, 1),
		Title:        "A New Hope",
		EpisodeID:    4,
		OpeningCrawl: "It is a period of civil war.\r\nRebel spaceships, striking\r\nfrom a hidden base, have won\r\ntheir first victory against\r\nthe evil Galactic Empire.",
		Director:     "George Lucas",
		Producer:     "Gary Kurtz, Rick McCallum",
		ReleaseDate:  "1977-05-25",
		Characters:   c.locators(swapi.TypePeople, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
		Planets:      c.locators(swapi.TypePlanets, 1, 2, 3),
		Starships:    c.locators(swapi.TypeStarships, 2, 3, 5, 9, 12),
		Vehicles:     c.locators(swapi.TypeVehicles, 4, 6, 7, 8),
		Species:      c.locators(swapi.TypeSpecies, 1, 2),
	})
	c.Put(swapi.TypeFilms, "2", swapi.Film{
		Resource:     c.resource(swapi.TypeFilms, 2),
		Title:        "The Empire Strikes Back",
		EpisodeID:    5,
		OpeningCrawl: "It is a dark time for the\r\nRebellion.",
		Director:     "Irvin Kershner",
		Producer:     "Gary Kurtz, Rick McCallum",
		ReleaseDate:  "1980-05-17",
		Characters:   c.locators(swapi.TypePeople, 1, 2, 3, 4, 5),
		Planets:      []string{},
		Starships:    c.locators(swapi.TypeStarships, 3, 12),
		Vehicles:     c.locators(swapi.TypeVehicles, 8),
		Species:      c.locators(swapi.TypeSpecies, 1, 2),
	})
}
