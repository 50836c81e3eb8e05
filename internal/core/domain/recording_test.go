package domain_test

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/core/domain"
)

func sampleRecording() *domain.Recording {
	r := domain.NewRecording(20 * time.Millisecond)
	r.Add(domain.RecordedAction{Forward: 0.5, Turn: -0.25, Aux: 1})
	r.Add(domain.RecordedAction{Forward: -1, Turn: 0.75, Aux: 0})
	return r
}

func TestRecording_BinaryLayout(t *testing.T) {
	data, err := sampleRecording().MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 4+2*24)

	assert.Equal(t, uint32(2), binary.BigEndian.Uint32(data))
	// Each action is written turn, forward, aux.
	assert.InDelta(t, -0.25, math.Float64frombits(binary.BigEndian.Uint64(data[4:])), 0)
	assert.InDelta(t, 0.5, math.Float64frombits(binary.BigEndian.Uint64(data[12:])), 0)
	assert.InDelta(t, 1.0, math.Float64frombits(binary.BigEndian.Uint64(data[20:])), 0)
	assert.InDelta(t, 0.75, math.Float64frombits(binary.BigEndian.Uint64(data[28:])), 0)
}

func TestRecording_RoundTrip(t *testing.T) {
	original := sampleRecording()

	encoded, err := domain.EncodeRecording(original)
	require.NoError(t, err)

	decoded, err := domain.DecodeRecording(encoded, original.Period())
	require.NoError(t, err)
	assert.Equal(t, original.Actions(), decoded.Actions())
	assert.Equal(t, original.Fingerprint(), decoded.Fingerprint())
	assert.Equal(t, 40*time.Millisecond, decoded.Duration())
}

func TestRecording_EmptyRoundTrip(t *testing.T) {
	encoded, err := domain.EncodeRecording(domain.NewRecording(time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, "AAAAAA==", encoded)

	decoded, err := domain.DecodeRecording(encoded, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Len())
}

func TestRecording_UnmarshalMalformed(t *testing.T) {
	negative := make([]byte, 4)
	binary.BigEndian.PutUint32(negative, 0xFFFFFFFF)

	good, err := sampleRecording().MarshalBinary()
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "short header", data: []byte{0, 0}},
		{name: "negative count", data: negative},
		{name: "truncated", data: good[:len(good)-1]},
		{name: "trailing bytes", data: append(append([]byte{}, good...), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewRecording(time.Millisecond)
			require.ErrorIs(t, r.UnmarshalBinary(tt.data), domain.ErrMalformedRecording)
		})
	}

	_, err = domain.DecodeRecording("not base64!", time.Millisecond)
	require.ErrorIs(t, err, domain.ErrMalformedRecording)
}

func TestNewRecordedAction(t *testing.T) {
	a := domain.NewRecordedAction(-0.5, 0.5, -0.5, true)
	assert.Equal(t, domain.RecordedAction{Forward: -0.25, Turn: 0.25, Aux: -0.5}, a)
	assert.False(t, a.IsEmpty())
	assert.True(t, domain.NewRecordedAction(0, 0, 0, false).IsEmpty())
}

func TestPlayback(t *testing.T) {
	r := sampleRecording()
	p := domain.NewPlayback(r)
	r.Add(domain.RecordedAction{Forward: 1})

	assert.Equal(t, 2, p.Remaining())
	first, ok := p.Step()
	require.True(t, ok)
	assert.InDelta(t, 0.5, first.Forward, 0)

	_, ok = p.Step()
	require.True(t, ok)
	assert.True(t, p.Done())

	last, ok := p.Step()
	assert.False(t, ok)
	assert.True(t, last.IsEmpty())
	assert.Equal(t, 0, p.Remaining())

	assert.True(t, domain.NewPlayback(domain.NewRecording(time.Millisecond)).Done())
}
