package domain

import (
	"math"

	"go.trai.ch/zerr"
)

// ValueGradient is a piecewise-linear throttle profile. Below RangeStart it yields Minimum,
// above RangeStart+Range it yields Maximum, and in between it ramps linearly.
type ValueGradient struct {
	Minimum    float64
	Maximum    float64
	Range      float64
	RangeStart float64
}

// NewValueGradient validates the parameters and returns the gradient.
// It requires 0 <= minimum <= maximum <= 1, range > 0 and rangeStart >= 0.
func NewValueGradient(minimum, maximum, rng, rangeStart float64) (ValueGradient, error) {
	valid := minimum >= 0 && minimum <= maximum && maximum <= 1 &&
		rng > 0 && !math.IsInf(rng, 0) &&
		rangeStart >= 0 && !math.IsInf(rangeStart, 0)
	if !valid {
		err := zerr.With(zerr.Wrap(ErrInvalidGradient, "new value gradient"), "minimum", minimum)
		err = zerr.With(err, "maximum", maximum)
		err = zerr.With(err, "range", rng)
		return ValueGradient{}, zerr.With(err, "range_start", rangeStart)
	}
	return ValueGradient{
		Minimum:    minimum,
		Maximum:    maximum,
		Range:      rng,
		RangeStart: rangeStart,
	}, nil
}

// ConstantGradient returns a gradient that always yields value.
func ConstantGradient(value float64) (ValueGradient, error) {
	return NewValueGradient(value, value, 1, 0)
}

// Interpolate maps the units remaining onto the gradient.
func (g ValueGradient) Interpolate(remaining float64) float64 {
	if remaining < g.RangeStart {
		return g.Minimum
	}
	if remaining > g.RangeStart+g.Range {
		return g.Maximum
	}
	return Lerp(g.Minimum, g.Maximum, Clamp((remaining-g.RangeStart)/g.Range, 0, 1))
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// SquareKeepSign squares v while preserving its sign.
func SquareKeepSign(v float64) float64 {
	return math.Copysign(v*v, v)
}

// WithinTolerance reports whether a and b differ by at most tolerance.
func WithinTolerance(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
