package script_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/adapters/script"
	"go.trai.ch/semi/internal/core/domain"
)

const doc = `
steps:
  - duration: 100ms
    forward: 0.5
  - duration: 50ms
    forward: -0.25
    turn: 0.1
    aux: 1
`

func TestScript_Walk(t *testing.T) {
	s, err := script.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 150*time.Millisecond, s.Duration())

	assert.Equal(t, domain.OperatorSample{Forward: 0.5}, s.Sample())
	s.Poll(60 * time.Millisecond)
	assert.Equal(t, domain.OperatorSample{Forward: 0.5}, s.Sample())
	s.Poll(40 * time.Millisecond)
	assert.Equal(t, domain.OperatorSample{Forward: -0.25, Turn: 0.1, Aux: 1}, s.Sample())
	assert.False(t, s.Done())

	s.Poll(50 * time.Millisecond)
	assert.True(t, s.Done())
	assert.Equal(t, domain.OperatorSample{}, s.Sample())
}

func TestParse_Errors(t *testing.T) {
	_, err := script.Parse([]byte("steps: [forward"))
	assert.Error(t, err)

	_, err = script.Parse([]byte("steps:\n  - forward: 1\n"))
	assert.True(t, errors.Is(err, domain.ErrInvalidScript))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := script.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = script.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestScript_Empty(t *testing.T) {
	s, err := script.Parse([]byte("steps: []"))
	require.NoError(t, err)
	assert.True(t, s.Done())
	assert.Equal(t, domain.OperatorSample{}, s.Sample())
}
