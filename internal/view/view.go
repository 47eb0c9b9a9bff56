// Package view composes resource fetches and reference resolution into the
// detail, list and not-found views shown by the CLI and the HTTP service.
package view

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/swapi/pkg/swapi"
)

// Page kinds.
const (
	KindDetail   = "detail"
	KindNotFound = "not_found"
	KindList     = "list"
)

// Page is a renderable view.
type Page interface {
	Heading() string
	Markdown() string
}

// Attribute is one labelled scalar of a detail view.
type Attribute struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Ref is one resolved (or fallback) reference.
type Ref struct {
	ID       string `json:"id,omitempty"   yaml:"id,omitempty"`
	Name     string `json:"name"           yaml:"name"`
	Locator  string `json:"locator"        yaml:"locator"`
	Link     string `json:"link,omitempty" yaml:"link,omitempty"`
	Resolved bool   `json:"resolved"       yaml:"resolved"`
}

// RefGroup is a titled list of references, possibly capped.
type RefGroup struct {
	Title string           `json:"title" yaml:"title"`
	Type  swapi.EntityType `json:"type"  yaml:"type"`
	Total int              `json:"total" yaml:"total"`
	Items []Ref            `json:"items" yaml:"items"`
	More  int              `json:"more"  yaml:"more"`
}

// MoreText returns the "…and N more" summary of a capped group, or "".
func (g RefGroup) MoreText() string {
	if g.More <= 0 {
		return ""
	}

	return fmt.Sprintf("…and %d more", g.More)
}

// Detail is the view of a single entity with its resolved references.
type Detail struct {
	Kind       string           `json:"kind"                yaml:"kind"`
	Type       swapi.EntityType `json:"type"                yaml:"type"`
	ID         string           `json:"id"                  yaml:"id"`
	Title      string           `json:"title"               yaml:"title"`
	Subtitle   string           `json:"subtitle,omitempty"  yaml:"subtitle,omitempty"`
	Attributes []Attribute      `json:"attributes"          yaml:"attributes"`
	Text       string           `json:"text,omitempty"      yaml:"text,omitempty"`
	Groups     []RefGroup       `json:"groups"              yaml:"groups"`
	BackLink   string           `json:"back_link"           yaml:"back_link"`
}

// Heading implements Page.
func (d *Detail) Heading() string {
	return d.Title
}

// Group returns the group with the given title.
func (d *Detail) Group(title string) (RefGroup, bool) {
	for _, group := range d.Groups {
		if group.Title == title {
			return group, true
		}
	}

	return RefGroup{}, false
}

// Attribute returns the value of the attribute with the given label.
func (d *Detail) Attribute(label string) (string, bool) {
	for _, attribute := range d.Attributes {
		if attribute.Label == label {
			return attribute.Value, true
		}
	}

	return "", false
}

// NotFound is shown when the root resource of a detail view cannot be fetched.
type NotFound struct {
	Kind     string           `json:"kind"            yaml:"kind"`
	Type     swapi.EntityType `json:"type"            yaml:"type"`
	ID       string           `json:"id"              yaml:"id"`
	Title    string           `json:"title"           yaml:"title"`
	Message  string           `json:"message"         yaml:"message"`
	BackLink string           `json:"back_link"       yaml:"back_link"`
	Cause    string           `json:"cause,omitempty" yaml:"cause,omitempty"`

	err error
}

// NewNotFound builds the not-found view for an entity.
func NewNotFound(entityType swapi.EntityType, id string, cause error) *NotFound {
	singular := entityType.Singular()

	notFound := &NotFound{
		Kind:     KindNotFound,
		Type:     entityType,
		ID:       id,
		Title:    singular + " not found",
		Message:  fmt.Sprintf("We couldn't find the %s with ID %q.", strings.ToLower(singular), id),
		BackLink: listLink(entityType),
		err:      cause,
	}

	if cause != nil {
		notFound.Cause = cause.Error()
	}

	return notFound
}

// Heading implements Page.
func (n *NotFound) Heading() string {
	return n.Title
}

// Err returns the fetch error that produced the view.
func (n *NotFound) Err() error {
	return n.err
}

// ListItem is one row of a list view.
type ListItem struct {
	ID      string `json:"id"      yaml:"id"`
	Name    string `json:"name"    yaml:"name"`
	Summary string `json:"summary" yaml:"summary"`
	Link    string `json:"link"    yaml:"link"`
}

// ListView is one page of a collection.
type ListView struct {
	Kind       string           `json:"kind"              yaml:"kind"`
	Type       swapi.EntityType `json:"type"              yaml:"type"`
	Query      string           `json:"query,omitempty"   yaml:"query,omitempty"`
	Page       int              `json:"page"              yaml:"page"`
	TotalPages int              `json:"total_pages"       yaml:"total_pages"`
	Count      int              `json:"count"             yaml:"count"`
	PrevPage   int              `json:"prev_page,omitempty" yaml:"prev_page,omitempty"`
	NextPage   int              `json:"next_page,omitempty" yaml:"next_page,omitempty"`
	Items      []ListItem       `json:"items"             yaml:"items"`
	Message    string           `json:"message,omitempty" yaml:"message,omitempty"`
}

// Heading implements Page.
func (l *ListView) Heading() string {
	return titleCase(string(l.Type))
}

// PageLink returns the list link of a page, omitting page 1 and an empty query.
func (l *ListView) PageLink(page int) string {
	link := listLink(l.Type)

	params := make([]string, 0, 2)
	if l.Query != "" {
		params = append(params, "search="+urlQueryEscape(l.Query))
	}

	if page > 1 {
		params = append(params, fmt.Sprintf("page=%d", page))
	}

	if len(params) == 0 {
		return link
	}

	return link + "?" + strings.Join(params, "&")
}

func listLink(entityType swapi.EntityType) string {
	return "/" + string(entityType)
}

func detailLink(entityType swapi.EntityType, id string) string {
	return listLink(entityType) + "/" + id
}
