package invariant

import (
	"context"
	"fmt"
	"sync"

	fm "github.com/gofhir/models"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/r4"
)

// Checker evaluates invariants against resources.
// It is safe for concurrent use.
type Checker struct {
	eval     Evaluator
	log      *logger.Logger
	builtins bool

	mu         sync.RWMutex
	invariants []Invariant
}

// Option configures a Checker.
type Option func(*Checker)

// WithEvaluator replaces the FHIRPath evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(c *Checker) {
		if e != nil {
			c.eval = e
		}
	}
}

// WithLogger sets the logger used for evaluation failures.
func WithLogger(l *logger.Logger) Option {
	return func(c *Checker) {
		if l == nil {
			l = logger.Nop()
		}
		c.log = l
	}
}

// WithInvariants adds caller-provided invariants.
func WithInvariants(invs ...Invariant) Option {
	return func(c *Checker) {
		c.invariants = append(c.invariants, invs...)
	}
}

// WithoutBuiltins disables the built-in R4 invariants.
func WithoutBuiltins() Option {
	return func(c *Checker) {
		c.builtins = false
	}
}

// NewChecker creates a Checker with the built-in invariants plus any given
// through options.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		log:      logger.Default(),
		builtins: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.eval == nil {
		c.eval = NewFHIRPathEvaluator(0)
	}
	if c.builtins {
		c.invariants = append(Builtins(), c.invariants...)
	}
	return c
}

// Add registers more invariants.
func (c *Checker) Add(invs ...Invariant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invariants = append(c.invariants, invs...)
}

// For returns the invariants checked for resourceType, in registration order.
func (c *Checker) For(resourceType string) []Invariant {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Invariant
	for _, inv := range c.invariants {
		if inv.AppliesTo(resourceType) {
			out = append(out, inv)
		}
	}
	return out
}

// Check evaluates the invariants that apply to the resource in data. A
// document without a usable resourceType yields the matching decode issue.
// Evaluation failures are reported as warnings; they never make the result
// invalid on their own.
func (c *Checker) Check(ctx context.Context, data []byte) *fm.Result {
	rt, err := fm.ResourceType(data)
	if err != nil {
		return fm.ResultFromError(err)
	}

	result := fm.NewResult()
	result.ResourceType = rt

	for _, inv := range c.For(rt) {
		if err := ctx.Err(); err != nil {
			result.AddIssue(fm.IssueFromError(err))
			return result
		}

		ok, err := c.eval.Evaluate(ctx, inv.Expression, data)
		if err != nil {
			c.log.Debug("invariant %s on %s: %v", inv.Key, rt, err)
			result.AddIssue(fm.Warning(fm.IssueTypeProcessing).
				Diagnostics(fmt.Sprintf("Error evaluating constraint %s: %v", inv.Key, err)).
				At(inv.location(rt)).
				Constraint(inv.Key).
				Build())
			continue
		}
		if !ok {
			result.AddIssue(fm.NewIssue(inv.severity(), fm.IssueTypeInvariant).
				Diagnostics(fmt.Sprintf("Constraint failed: %s: '%s'", inv.Key, inv.Human)).
				At(inv.location(rt)).
				Constraint(inv.Key).
				Build())
		}
	}
	return result
}

// CheckResource encodes r and checks it.
func (c *Checker) CheckResource(ctx context.Context, r r4.Resource) *fm.Result {
	return c.Check(ctx, fm.Encode(r))
}
