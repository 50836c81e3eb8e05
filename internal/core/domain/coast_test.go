package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/core/domain"
)

func TestCoastDistance_Lookup(t *testing.T) {
	c := domain.NewCoastDistance()
	assert.InDelta(t, 7.0, c.Distance(1, 7), 0, "empty model returns the default")

	require.NoError(t, c.Populate(2.0, 0.5))
	require.NoError(t, c.Populate(1.0, 0.2))

	assert.True(t, c.Has(1.0))
	assert.False(t, c.Has(1.5))
	assert.InDelta(t, 0.2, c.Distance(1.0, 0), 1e-12)
	assert.InDelta(t, 0.35, c.Distance(1.5, 0), 1e-12)
	assert.InDelta(t, 0.2, c.Distance(0.5, 0), 1e-12, "below range uses the lowest entry")
	assert.InDelta(t, 0.5, c.Distance(3.0, 0), 1e-12, "above range uses the highest entry")
}

func TestCoastDistance_PopulateOverwrites(t *testing.T) {
	c := domain.NewCoastDistance()
	require.NoError(t, c.Populate(1.0, 0.2))
	require.NoError(t, c.Populate(1.0, 0.3))

	assert.Equal(t, 1, c.Len())
	assert.InDelta(t, 0.3, c.Distance(1.0, 0), 1e-12)
}

func TestCoastDistance_PopulateInvalid(t *testing.T) {
	c := domain.NewCoastDistance()
	require.ErrorIs(t, c.Populate(-1, 0.2), domain.ErrInvalidCoastSample)
	require.ErrorIs(t, c.Populate(math.NaN(), 0.2), domain.ErrInvalidCoastSample)
	require.ErrorIs(t, c.Populate(1, math.Inf(1)), domain.ErrInvalidCoastSample)
	assert.Equal(t, 0, c.Len())
}

func TestCoastDistance_JSONRoundTrip(t *testing.T) {
	c := domain.NewCoastDistance()
	require.NoError(t, c.Populate(3.0, 0.9))
	require.NoError(t, c.Populate(1.0, 0.2))

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mapping":[{"speed":1,"distance":0.2},{"speed":3,"distance":0.9}]}`, string(data))

	parsed, err := domain.ParseCoastDistance(string(data))
	require.NoError(t, err)
	assert.Equal(t, c.Samples(), parsed.Samples())

	empty, err := json.Marshal(domain.NewCoastDistance())
	require.NoError(t, err)
	assert.JSONEq(t, `{"mapping":[]}`, string(empty))
}

func TestParseCoastDistance_Malformed(t *testing.T) {
	for _, raw := range []string{`{"mapping":`, `[]`, `{"mapping":[{"speed":-1,"distance":0}]}`} {
		_, err := domain.ParseCoastDistance(raw)
		require.ErrorIs(t, err, domain.ErrMalformedCoastModel, raw)
	}
}

func TestCoastDistance_CloneIsIndependent(t *testing.T) {
	c := domain.NewCoastDistance()
	require.NoError(t, c.Populate(1.0, 0.2))

	clone := c.Clone()
	require.NoError(t, clone.Populate(2.0, 0.4))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, clone.Len())
}
