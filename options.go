package fhirmodels

import (
	"runtime"

	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/pkg/logger"
)

// Option configures a Decoder.
type Option func(*Options)

// Options holds all configuration for a Decoder.
type Options struct {
	// Version selects the structure set. Only R4 is supported.
	Version FHIRVersion

	// Strict rejects members that the structure does not define.
	Strict bool

	// CheckModifiers rejects modifierExtension URLs that are not listed in
	// UnderstoodModifiers.
	CheckModifiers      bool
	UnderstoodModifiers []string

	// WorkerCount bounds parallel decoding in batch and stream helpers.
	WorkerCount int

	Logger  *logger.Logger
	Metrics *Metrics
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Version:     R4,
		WorkerCount: runtime.NumCPU(),
		Logger:      logger.Default(),
	}
}

// WithVersion selects the FHIR version.
func WithVersion(v FHIRVersion) Option {
	return func(o *Options) {
		o.Version = v
	}
}

// WithStrict enables rejection of unknown elements.
func WithStrict(enable bool) Option {
	return func(o *Options) {
		o.Strict = enable
	}
}

// WithModifierCheck enables modifierExtension checking.
func WithModifierCheck(enable bool) Option {
	return func(o *Options) {
		o.CheckModifiers = enable
	}
}

// WithUnderstoodModifiers adds modifier extension URLs the caller handles.
// It does not enable checking by itself.
func WithUnderstoodModifiers(urls ...string) Option {
	return func(o *Options) {
		o.UnderstoodModifiers = append(o.UnderstoodModifiers, urls...)
	}
}

// WithWorkerCount sets the number of workers for batch decoding.
// Defaults to runtime.NumCPU().
func WithWorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logger.Nop()
		}
		o.Logger = l
	}
}

// WithMetrics records decode and encode statistics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// StrictOptions returns options that reject anything the structures do
// not describe.
func StrictOptions() []Option {
	return []Option{
		WithStrict(true),
		WithModifierCheck(true),
	}
}

// codecOptions converts to the options understood by the codec.
func (o *Options) codecOptions() *codec.Options {
	co := &codec.Options{
		DisallowUnknownElements: o.Strict,
		CheckModifierExtensions: o.CheckModifiers,
	}
	if len(o.UnderstoodModifiers) > 0 {
		co.UnderstoodModifiers = make(map[string]struct{}, len(o.UnderstoodModifiers))
		for _, u := range o.UnderstoodModifiers {
			co.UnderstoodModifiers[u] = struct{}{}
		}
	}
	return co
}
