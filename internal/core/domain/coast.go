package domain

import (
	"encoding/json"
	"math"
	"slices"

	"go.trai.ch/zerr"
)

// CoastSample is one calibrated point: the speed at power cutoff and the distance
// (or angle) travelled afterwards.
type CoastSample struct {
	Speed    float64 `json:"speed"`
	Distance float64 `json:"distance"`
}

// CoastDistance maps cutoff speed to coast distance. Entries are kept sorted by speed.
// The zero value is an empty model ready to use.
type CoastDistance struct {
	samples []CoastSample
}

// NewCoastDistance creates an empty model.
func NewCoastDistance() *CoastDistance {
	return &CoastDistance{}
}

// Populate inserts or overwrites the mapping for speed.
func (c *CoastDistance) Populate(speed, distance float64) error {
	if speed < 0 || math.IsNaN(speed) || math.IsInf(speed, 0) || math.IsNaN(distance) || math.IsInf(distance, 0) {
		err := zerr.With(zerr.Wrap(ErrInvalidCoastSample, "populate"), "speed", speed)
		return zerr.With(err, "distance", distance)
	}

	i, found := c.search(speed)
	if found {
		c.samples[i].Distance = distance
		return nil
	}
	c.samples = slices.Insert(c.samples, i, CoastSample{Speed: speed, Distance: distance})
	return nil
}

// Has reports whether a mapping exists for exactly this speed.
func (c *CoastDistance) Has(speed float64) bool {
	_, found := c.search(speed)
	return found
}

// Len returns the number of populated speeds.
func (c *CoastDistance) Len() int {
	return len(c.samples)
}

// Samples returns a copy of the mapping in ascending speed order.
func (c *CoastDistance) Samples() []CoastSample {
	return slices.Clone(c.samples)
}

// Distance returns the coast distance for speed, interpolating between the nearest
// populated speeds. Speeds outside the populated range are clamped to the nearest
// bound; def is returned when the model is empty.
func (c *CoastDistance) Distance(speed, def float64) float64 {
	if len(c.samples) == 0 {
		return def
	}

	i, found := c.search(speed)
	if found {
		return c.samples[i].Distance
	}
	// i is the index of the least key greater than speed.
	if i == 0 {
		return c.samples[0].Distance
	}
	if i == len(c.samples) {
		return c.samples[len(c.samples)-1].Distance
	}

	lower, upper := c.samples[i-1], c.samples[i]
	return Lerp(lower.Distance, upper.Distance, (speed-lower.Speed)/(upper.Speed-lower.Speed))
}

// Clone returns an independent copy of the model.
func (c *CoastDistance) Clone() *CoastDistance {
	return &CoastDistance{samples: slices.Clone(c.samples)}
}

func (c *CoastDistance) search(speed float64) (int, bool) {
	return slices.BinarySearchFunc(c.samples, speed, func(s CoastSample, target float64) int {
		switch {
		case s.Speed < target:
			return -1
		case s.Speed > target:
			return 1
		default:
			return 0
		}
	})
}

type coastDocument struct {
	Mapping []CoastSample `json:"mapping"`
}

// MarshalJSON encodes the model as {"mapping":[{"speed":..,"distance":..},...]}.
func (c *CoastDistance) MarshalJSON() ([]byte, error) {
	doc := coastDocument{Mapping: c.samples}
	if doc.Mapping == nil {
		doc.Mapping = []CoastSample{}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON replaces the model with the decoded mapping.
func (c *CoastDistance) UnmarshalJSON(data []byte) error {
	var doc coastDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return zerr.With(zerr.Wrap(ErrMalformedCoastModel, "decode"), "cause", err.Error())
	}

	decoded := &CoastDistance{}
	for _, s := range doc.Mapping {
		if err := decoded.Populate(s.Speed, s.Distance); err != nil {
			return zerr.With(zerr.Wrap(ErrMalformedCoastModel, "decode"), "cause", err.Error())
		}
	}
	c.samples = decoded.samples
	return nil
}

// ParseCoastDistance decodes a model from its JSON form.
func ParseCoastDistance(data string) (*CoastDistance, error) {
	c := NewCoastDistance()
	if err := c.UnmarshalJSON([]byte(data)); err != nil {
		return nil, err
	}
	return c, nil
}
