// Package motion implements the closed-loop drive and rotate tasks.
package motion

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/semi/internal/core/domain"
)

// Option configures a motion task.
type Option func(*options)

type options struct {
	clock    clockwork.Clock
	timeout  *time.Duration
	gradient *domain.ValueGradient
	coast    *domain.CoastDistance
	name     string
}

func buildOptions(opts []Option) options {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock measures timeouts on clock instead of the wall clock.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithTimeout overrides the configured timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = &d }
}

// WithGradient overrides the configured throttle or speed gradient.
func WithGradient(g domain.ValueGradient) Option {
	return func(o *options) { o.gradient = &g }
}

// WithCoast cuts power early once the model predicts the remaining distance
// will be covered while coasting. Empty models are ignored.
func WithCoast(model *domain.CoastDistance) Option {
	return func(o *options) { o.coast = model }
}

// WithName overrides the task name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func (o options) timeoutOr(d time.Duration) time.Duration {
	if o.timeout != nil {
		return *o.timeout
	}
	return d
}

func (o options) gradientOr(g domain.ValueGradient) domain.ValueGradient {
	if o.gradient != nil {
		return *o.gradient
	}
	return g
}

// coastCovers reports whether coasting at the current rate is predicted to
// cover remaining. The rate is only read when a model is attached. Below the
// slowest calibrated speed the vehicle is treated as coasting nowhere, so a
// task starting from rest always drives.
func coastCovers(model *domain.CoastDistance, rate func() float64, remaining float64) bool {
	if model == nil || model.Len() == 0 {
		return false
	}
	speed := abs(rate())
	if speed < minCoastSpeed || speed < model.Samples()[0].Speed {
		return false
	}
	return model.Distance(speed, 0) >= remaining
}

// minCoastSpeed is the rate below which the vehicle counts as stationary.
const minCoastSpeed = 1e-3

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clampUnit(v float64) float64 {
	return domain.Clamp(v, -1, 1)
}
