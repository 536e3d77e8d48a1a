package invariant

import (
	"context"
	"fmt"

	"github.com/gofhir/fhirpath"

	"github.com/gofhir/models/cache"
)

// Evaluator evaluates a FHIRPath expression against an encoded resource.
// It returns true if the rule holds.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string, resource []byte) (bool, error)
}

type compiled struct {
	expr *fhirpath.Expression
	err  error
}

// FHIRPathEvaluator evaluates expressions with github.com/gofhir/fhirpath.
// Compiled expressions, and compile failures, are kept in an LRU cache.
type FHIRPathEvaluator struct {
	cache *cache.Cache[string, compiled]
}

// NewFHIRPathEvaluator creates an evaluator caching up to capacity compiled
// expressions. A non-positive capacity uses cache.DefaultCapacity.
func NewFHIRPathEvaluator(capacity int) *FHIRPathEvaluator {
	return &FHIRPathEvaluator{cache: cache.New[string, compiled](capacity)}
}

// Compile returns the compiled form of expression.
func (e *FHIRPathEvaluator) Compile(expression string) (*fhirpath.Expression, error) {
	c := e.cache.GetOrSet(expression, func() compiled {
		expr, err := fhirpath.Compile(expression)
		return compiled{expr: expr, err: err}
	})
	return c.expr, c.err
}

// Evaluate compiles (or reuses) expression and evaluates it with resource
// as focus. An empty result counts as satisfied.
func (e *FHIRPathEvaluator) Evaluate(ctx context.Context, expression string, resource []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	expr, err := e.Compile(expression)
	if err != nil {
		return false, fmt.Errorf("compile %q: %w", expression, err)
	}
	result, err := expr.Evaluate(resource)
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", expression, err)
	}
	return passed(result), nil
}

func passed(result fhirpath.Collection) bool {
	if result.Empty() {
		return true
	}
	b, err := result.ToBoolean()
	if err != nil {
		// a non-boolean singleton or list is truthy
		return true
	}
	return b
}

// CacheStats returns the statistics of the compiled expression cache.
func (e *FHIRPathEvaluator) CacheStats() cache.Stats {
	return e.cache.Stats()
}

// ClearCache drops all compiled expressions.
func (e *FHIRPathEvaluator) ClearCache() {
	e.cache.Clear()
}

var _ Evaluator = (*FHIRPathEvaluator)(nil)
