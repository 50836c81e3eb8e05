package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/core/domain"
)

func TestResource(t *testing.T) {
	assert.Equal(t, domain.ResourceDrivetrain, domain.NewResource("drivetrain"))
	assert.NotEqual(t, domain.ResourceDrivetrain, domain.ResourceAuxiliary)
	assert.Equal(t, "auxiliary", domain.ResourceAuxiliary.String())
	assert.Empty(t, domain.Resource{}.String())

	data, err := json.Marshal([]domain.Resource{domain.ResourceDrivetrain})
	require.NoError(t, err)
	assert.JSONEq(t, `["drivetrain"]`, string(data))

	var decoded []domain.Resource
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []domain.Resource{domain.ResourceDrivetrain}, decoded)
}

func TestOverlaps(t *testing.T) {
	drive := []domain.Resource{domain.ResourceDrivetrain}
	both := []domain.Resource{domain.ResourceAuxiliary, domain.ResourceDrivetrain}
	aux := []domain.Resource{domain.ResourceAuxiliary}

	assert.True(t, domain.Overlaps(drive, both))
	assert.False(t, domain.Overlaps(drive, aux))
	assert.False(t, domain.Overlaps(nil, both))
}

func TestTaskState(t *testing.T) {
	assert.True(t, domain.TaskFinished.IsTerminal())
	assert.True(t, domain.TaskInterrupted.IsTerminal())
	assert.False(t, domain.TaskRunning.IsTerminal())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
}
