// Package fake serves an in-memory copy of a small slice of the catalog over
// httptest, for tests of every layer above the transport.
package fake

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fivetwenty-io/swapi/pkg/swapi"
)

const (
	apiPrefix = "/api"
	created   = "2014-12-09T13:50:51.644000Z"
	edited    = "2014-12-20T21:17:56.891000Z"
)

// Catalog is a fake catalog server.
type Catalog struct {
	server *httptest.Server

	mu       sync.Mutex
	records  map[swapi.EntityType]map[string][]byte
	failures map[string]int
	requests []string
}

// NewCatalog starts a catalog server seeded with fixtures.
func NewCatalog() *Catalog {
	catalog := &Catalog{
		records:  make(map[swapi.EntityType]map[string][]byte),
		failures: make(map[string]int),
	}

	for _, entityType := range swapi.AllTypes() {
		catalog.records[entityType] = make(map[string][]byte)
	}

	catalog.server = httptest.NewServer(http.HandlerFunc(catalog.serveHTTP))
	catalog.seed()

	return catalog
}

// Close shuts the server down.
func (c *Catalog) Close() {
	c.server.Close()
}

// BaseURL returns the catalog base path, e.g. "http://127.0.0.1:4321/api".
func (c *Catalog) BaseURL() string {
	return c.server.URL + apiPrefix
}

// Locator returns the full locator of an entity.
func (c *Catalog) Locator(entityType swapi.EntityType, id int) string {
	return fmt.Sprintf("%s/%s/%d/", c.BaseURL(), entityType, id)
}

// Put stores an entity, replacing any existing record with the same id.
func (c *Catalog) Put(entityType swapi.EntityType, id string, entity any) {
	data, err := json.Marshal(entity)
	if err != nil {
		panic(err)
	}

	c.PutRaw(entityType, id, data)
}

// PutRaw stores a raw JSON document as the record for id.
func (c *Catalog) PutRaw(entityType swapi.EntityType, id string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records[entityType][id] = data
}

// Delete removes a record so that fetching it yields 404.
func (c *Catalog) Delete(entityType swapi.EntityType, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.records[entityType], id)
}

// Fail makes every request for the entity answer with status.
func (c *Catalog) Fail(entityType swapi.EntityType, id string, status int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failures[string(entityType)+"/"+id] = status
}

// FailCollection makes every collection request for the type answer with status.
func (c *Catalog) FailCollection(entityType swapi.EntityType, status int) {
	c.Fail(entityType, "", status)
}

// Requests returns the request URIs served so far, relative to the base path.
func (c *Catalog) Requests() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.requests...)
}

// RequestCount returns how many requests hit paths with the given prefix.
func (c *Catalog) RequestCount(prefix string) int {
	count := 0

	for _, request := range c.Requests() {
		if strings.HasPrefix(request, prefix) {
			count++
		}
	}

	return count
}

func (c *Catalog) serveHTTP(writer http.ResponseWriter, request *http.Request) {
	relative := strings.TrimPrefix(request.URL.Path, apiPrefix)

	c.mu.Lock()
	c.requests = append(c.requests, relative+queryString(request.URL))
	c.mu.Unlock()

	if request.Method != http.MethodGet {
		writeJSON(writer, http.StatusMethodNotAllowed, map[string]string{"detail": "Method not allowed"})

		return
	}

	segments := strings.FieldsFunc(relative, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		root := make(map[string]string)
		for _, entityType := range swapi.AllTypes() {
			root[string(entityType)] = fmt.Sprintf("%s/%s/", c.BaseURL(), entityType)
		}

		writeJSON(writer, http.StatusOK, root)

		return
	}

	if len(segments) > 2 {
		writeJSON(writer, http.StatusNotFound, map[string]string{"detail": "Not found"})

		return
	}

	entityType := swapi.EntityType(segments[0])
	if !entityType.Valid() {
		writeJSON(writer, http.StatusNotFound, map[string]string{"detail": "Not found"})

		return
	}

	id := ""
	if len(segments) == 2 {
		id = segments[1]
	}

	c.mu.Lock()
	status, failing := c.failures[string(entityType)+"/"+id]
	c.mu.Unlock()

	if failing {
		writeJSON(writer, status, map[string]string{"detail": http.StatusText(status)})

		return
	}

	if id == "" {
		c.serveCollection(writer, request, entityType)

		return
	}

	c.mu.Lock()
	record, ok := c.records[entityType][id]
	c.mu.Unlock()

	if !ok {
		writeJSON(writer, http.StatusNotFound, map[string]string{"detail": "Not found"})

		return
	}

	writer.Header().Set("Content-Type", "application/json")
	_, _ = writer.Write(record)
}

func (c *Catalog) serveCollection(writer http.ResponseWriter, request *http.Request, entityType swapi.EntityType) {
	search := strings.ToLower(request.URL.Query().Get("search"))

	page := 1
	if raw := request.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJSON(writer, http.StatusNotFound, map[string]string{"detail": "Invalid page."})

			return
		}

		page = parsed
	}

	matches := c.matching(entityType, search)

	start := (page - 1) * swapi.PageSize
	if start > 0 && start >= len(matches) {
		writeJSON(writer, http.StatusNotFound, map[string]string{"detail": "Invalid page."})

		return
	}

	end := min(start+swapi.PageSize, len(matches))

	results := make([]json.RawMessage, 0, end-start)
	for _, record := range matches[start:end] {
		results = append(results, record)
	}

	var next, previous *string

	if end < len(matches) {
		link := c.pageLink(entityType, search, page+1)
		next = &link
	}

	if page > 1 {
		link := c.pageLink(entityType, search, page-1)
		previous = &link
	}

	writeJSON(writer, http.StatusOK, map[string]any{
		"count":    len(matches),
		"next":     next,
		"previous": previous,
		"results":  results,
	})
}

func (c *Catalog) matching(entityType swapi.EntityType, search string) [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int, 0, len(c.records[entityType]))
	for id := range c.records[entityType] {
		n, err := strconv.Atoi(id)
		if err == nil {
			ids = append(ids, n)
		}
	}

	sort.Ints(ids)

	matches := make([][]byte, 0, len(ids))

	for _, id := range ids {
		record := c.records[entityType][strconv.Itoa(id)]
		if search == "" || strings.Contains(strings.ToLower(displayName(record)), search) {
			matches = append(matches, record)
		}
	}

	return matches
}

func (c *Catalog) pageLink(entityType swapi.EntityType, search string, page int) string {
	values := url.Values{}
	if search != "" {
		values.Set("search", search)
	}

	values.Set("page", strconv.Itoa(page))

	return fmt.Sprintf("%s/%s/?%s", c.BaseURL(), entityType, values.Encode())
}

func displayName(record []byte) string {
	var named struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}

	_ = json.Unmarshal(record, &named)

	if named.Title != "" {
		return named.Title
	}

	return named.Name
}

func queryString(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}

	return "?" + u.RawQuery
}

func writeJSON(writer http.ResponseWriter, status int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}
