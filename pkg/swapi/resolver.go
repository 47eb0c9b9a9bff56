package swapi

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Resolved is the outcome of resolving one reference locator.
type Resolved[T any] struct {
	Locator string
	ID      string
	Value   *T
	Label   string
	Err     error
}

// OK reports whether the reference was fetched successfully.
func (r Resolved[T]) OK() bool {
	return r.Value != nil && r.Err == nil
}

// FallbackLabel returns the placeholder label used for an unresolved
// reference of the given type, e.g. "Unknown Planet".
func FallbackLabel(entityType EntityType) string {
	return "Unknown " + entityType.Singular()
}

type resolveOptions struct {
	limit       int
	concurrency int
	logger      Logger
}

// ResolveOption configures Resolve.
type ResolveOption func(*resolveOptions)

// WithLimit resolves only the first n locators. Zero means no limit.
func WithLimit(n int) ResolveOption {
	return func(o *resolveOptions) {
		o.limit = n
	}
}

// WithConcurrency caps the number of in-flight fetches. Zero means every
// fetch is dispatched at once.
func WithConcurrency(n int) ResolveOption {
	return func(o *resolveOptions) {
		o.concurrency = n
	}
}

// WithResolveLogger sets the logger that receives one warning per fallback.
func WithResolveLogger(logger Logger) ResolveOption {
	return func(o *resolveOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Resolve fetches every locator through getter concurrently and returns one
// Resolved per locator in input order.
//
// A locator that has no extractable id, or whose fetch fails, yields a
// fallback entry labelled FallbackLabel(getter.Type()) with Err set. Such
// failures never fail the batch; only invalid arguments are returned as
// errors. An empty input yields an empty result without any fetch.
func Resolve[T Entity](ctx context.Context, getter Getter[T], locators []string, opts ...ResolveOption) ([]Resolved[T], error) {
	if getter == nil {
		return nil, ErrNilGetter
	}

	options := resolveOptions{logger: NoopLogger{}}
	for _, opt := range opts {
		opt(&options)
	}

	if options.limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResolveLimit, options.limit)
	}

	if options.concurrency < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidConcurrency, options.concurrency)
	}

	if options.limit > 0 && len(locators) > options.limit {
		locators = locators[:options.limit]
	}

	results := make([]Resolved[T], len(locators))
	if len(locators) == 0 {
		return results, nil
	}

	var group errgroup.Group
	if options.concurrency > 0 {
		group.SetLimit(options.concurrency)
	}

	for i, locator := range locators {
		id, ok := ExtractID(locator)
		if !ok {
			results[i] = fallback[T](getter.Type(), locator, "", fmt.Errorf("%w: %q", ErrUnresolvableLocator, locator), options.logger)

			continue
		}

		group.Go(func() error {
			results[i] = resolveID(ctx, getter, locator, id, options.logger)

			return nil
		})
	}

	_ = group.Wait()

	return results, nil
}

// ResolveOne resolves a single locator with the same fallback policy as
// Resolve. An empty locator yields a fallback without any fetch.
func ResolveOne[T Entity](ctx context.Context, getter Getter[T], locator string, opts ...ResolveOption) (Resolved[T], error) {
	results, err := Resolve(ctx, getter, []string{locator}, opts...)
	if err != nil {
		return Resolved[T]{}, err
	}

	return results[0], nil
}

func resolveID[T Entity](ctx context.Context, getter Getter[T], locator, id string, logger Logger) Resolved[T] {
	value, err := getter.Get(ctx, id)
	if err != nil {
		return fallback[T](getter.Type(), locator, id, err, logger)
	}

	if value == nil {
		return fallback[T](getter.Type(), locator, id, ErrEmptyResponse, logger)
	}

	return Resolved[T]{
		Locator: locator,
		ID:      id,
		Value:   value,
		Label:   (*value).DisplayName(),
	}
}

func fallback[T any](entityType EntityType, locator, id string, err error, logger Logger) Resolved[T] {
	logger.Warn("reference unresolved", map[string]interface{}{
		"type":    string(entityType),
		"locator": locator,
		"error":   err.Error(),
	})

	return Resolved[T]{
		Locator: locator,
		ID:      id,
		Label:   FallbackLabel(entityType),
		Err:     err,
	}
}
