package swapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the JSON kind a field must have.
type Kind int

const (
	KindString Kind = iota
	KindNullableString
	KindNumber
	KindStringList
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNullableString:
		return "string or null"
	case KindNumber:
		return "number"
	case KindStringList:
		return "array of strings"
	default:
		return "unknown"
	}
}

// Field is one required field of an entity shape.
type Field struct {
	Name string
	Kind Kind
}

// Shape is the declared field set of an entity type.
type Shape struct {
	Entity string
	Fields []Field
}

// Validate checks that data is a JSON object carrying every field of the
// shape with the declared kind. Unknown extra fields are permitted.
func (s Shape) Validate(data []byte) error {
	issues := s.check(data, "")
	if len(issues) > 0 {
		return &ValidationError{Entity: s.Entity, Issues: issues}
	}

	return nil
}

// ValidateCollection checks a collection page whose results must each match
// the shape.
func (s Shape) ValidateCollection(data []byte) error {
	var envelope map[string]json.RawMessage

	err := decodeObject(data, &envelope)
	if err != nil {
		return &ValidationError{Entity: s.Entity + " collection", Issues: []Issue{{Message: err.Error()}}}
	}

	var issues []Issue

	issues = append(issues, checkField(envelope, Field{Name: "count", Kind: KindNumber}, "")...)
	issues = append(issues, checkField(envelope, Field{Name: "next", Kind: KindNullableString}, "")...)
	issues = append(issues, checkField(envelope, Field{Name: "previous", Kind: KindNullableString}, "")...)

	raw, ok := envelope["results"]

	switch {
	case !ok:
		issues = append(issues, Issue{Path: "results", Message: "required field is missing"})
	case jsonKind(raw) != '[':
		issues = append(issues, Issue{Path: "results", Message: "expected array, got " + describe(raw)})
	default:
		var results []json.RawMessage

		err = json.Unmarshal(raw, &results)
		if err != nil {
			issues = append(issues, Issue{Path: "results", Message: err.Error()})

			break
		}

		for i, result := range results {
			issues = append(issues, s.check(result, fmt.Sprintf("results[%d].", i))...)
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Entity: s.Entity + " collection", Issues: issues}
	}

	return nil
}

func (s Shape) check(data []byte, prefix string) []Issue {
	var object map[string]json.RawMessage

	err := decodeObject(data, &object)
	if err != nil {
		return []Issue{{Path: trimDot(prefix), Message: err.Error()}}
	}

	var issues []Issue
	for _, field := range s.Fields {
		issues = append(issues, checkField(object, field, prefix)...)
	}

	return issues
}

func decodeObject(data []byte, into *map[string]json.RawMessage) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrEmptyResponse
	}

	if trimmed[0] != '{' {
		return fmt.Errorf("expected object, got %s", describe(trimmed))
	}

	err := json.Unmarshal(trimmed, into)
	if err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}

	return nil
}

func checkField(object map[string]json.RawMessage, field Field, prefix string) []Issue {
	path := prefix + field.Name

	raw, ok := object[field.Name]
	if !ok {
		return []Issue{{Path: path, Message: "required field is missing"}}
	}

	kind := jsonKind(raw)

	switch field.Kind {
	case KindString:
		if kind != '"' {
			return []Issue{{Path: path, Message: "expected string, got " + describe(raw)}}
		}
	case KindNullableString:
		if kind != '"' && kind != 'n' {
			return []Issue{{Path: path, Message: "expected string or null, got " + describe(raw)}}
		}
	case KindNumber:
		if kind != '0' {
			return []Issue{{Path: path, Message: "expected number, got " + describe(raw)}}
		}
	case KindStringList:
		if kind != '[' {
			return []Issue{{Path: path, Message: "expected array, got " + describe(raw)}}
		}

		var items []json.RawMessage

		err := json.Unmarshal(raw, &items)
		if err != nil {
			return []Issue{{Path: path, Message: err.Error()}}
		}

		var issues []Issue
		for i, item := range items {
			if jsonKind(item) != '"' {
				issues = append(issues, Issue{
					Path:    fmt.Sprintf("%s[%d]", path, i),
					Message: "expected string, got " + describe(item),
				})
			}
		}

		return issues
	}

	return nil
}

// jsonKind classifies a raw JSON value by its first byte: '"' string,
// '0' number, '[' array, '{' object, 'n' null, 'b' boolean, 0 invalid.
func jsonKind(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}

	switch c := trimmed[0]; {
	case c == '"', c == '[', c == '{':
		return c
	case c == 'n':
		return 'n'
	case c == 't', c == 'f':
		return 'b'
	case c == '-', c >= '0' && c <= '9':
		return '0'
	default:
		return 0
	}
}

func describe(raw []byte) string {
	switch jsonKind(raw) {
	case '"':
		return "string"
	case '0':
		return "number"
	case '[':
		return "array"
	case '{':
		return "object"
	case 'n':
		return "null"
	case 'b':
		return "boolean"
	default:
		return "invalid JSON"
	}
}

func trimDot(prefix string) string {
	if prefix != "" && prefix[len(prefix)-1] == '.' {
		return prefix[:len(prefix)-1]
	}

	return prefix
}

func stringFields(names ...string) []Field {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Kind: KindString})
	}

	return fields
}

func withKinds(fields []Field, extra ...Field) []Field {
	return append(fields, extra...)
}

var auditFields = stringFields("created", "edited", "url")

var shapes = map[EntityType]Shape{
	TypePeople: {
		Entity: "person",
		Fields: withKinds(
			stringFields("name", "height", "mass", "hair_color", "skin_color", "eye_color", "birth_year", "gender", "homeworld"),
			append([]Field{
				{Name: "films", Kind: KindStringList},
				{Name: "species", Kind: KindStringList},
				{Name: "vehicles", Kind: KindStringList},
				{Name: "starships", Kind: KindStringList},
			}, auditFields...)...,
		),
	},
	TypePlanets: {
		Entity: "planet",
		Fields: withKinds(
			stringFields("name", "diameter", "rotation_period", "orbital_period", "gravity", "population", "climate", "terrain", "surface_water"),
			append([]Field{
				{Name: "residents", Kind: KindStringList},
				{Name: "films", Kind: KindStringList},
			}, auditFields...)...,
		),
	},
	TypeSpecies: {
		Entity: "species",
		Fields: withKinds(
			stringFields("name", "classification", "designation", "average_height", "average_lifespan", "eye_colors", "hair_colors", "skin_colors", "language"),
			append([]Field{
				{Name: "homeworld", Kind: KindNullableString},
				{Name: "people", Kind: KindStringList},
				{Name: "films", Kind: KindStringList},
			}, auditFields...)...,
		),
	},
	TypeStarships: {
		Entity: "starship",
		Fields: withKinds(
			stringFields("name", "model", "starship_class", "manufacturer", "cost_in_credits", "length", "crew", "passengers",
				"max_atmosphering_speed", "hyperdrive_rating", "MGLT", "cargo_capacity", "consumables"),
			append([]Field{
				{Name: "films", Kind: KindStringList},
				{Name: "pilots", Kind: KindStringList},
			}, auditFields...)...,
		),
	},
	TypeVehicles: {
		Entity: "vehicle",
		Fields: withKinds(
			stringFields("name", "model", "vehicle_class", "manufacturer", "cost_in_credits", "length", "crew", "passengers",
				"max_atmosphering_speed", "cargo_capacity", "consumables"),
			append([]Field{
				{Name: "films", Kind: KindStringList},
				{Name: "pilots", Kind: KindStringList},
			}, auditFields...)...,
		),
	},
	TypeFilms: {
		Entity: "film",
		Fields: withKinds(
			[]Field{
				{Name: "title", Kind: KindString},
				{Name: "episode_id", Kind: KindNumber},
				{Name: "opening_crawl", Kind: KindString},
				{Name: "director", Kind: KindString},
				{Name: "producer", Kind: KindString},
				{Name: "release_date", Kind: KindString},
			},
			append([]Field{
				{Name: "characters", Kind: KindStringList},
				{Name: "planets", Kind: KindStringList},
				{Name: "starships", Kind: KindStringList},
				{Name: "vehicles", Kind: KindStringList},
				{Name: "species", Kind: KindStringList},
			}, auditFields...)...,
		),
	},
}

// ShapeFor returns the declared shape of an entity type.
func ShapeFor(entityType EntityType) (Shape, error) {
	shape, ok := shapes[entityType]
	if !ok {
		return Shape{}, fmt.Errorf("%w: %q", ErrUnknownEntityType, string(entityType))
	}

	return shape, nil
}
