package progrock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/adapters/telemetry/progrock"
	"go.trai.ch/semi/internal/core/domain"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Lifecycle(t *testing.T) {
	recorder := progrock.New()

	finished := recorder.Record("drive-straight [0a1b2c3d]")
	finished.Log(domain.LogLevelInfo, "initialized")
	finished.Complete(nil)

	interrupted := recorder.Record("rotate [4e5f6a7b]")
	interrupted.Log(domain.LogLevelWarn, "displaced")
	interrupted.Complete(errors.New("task interrupted"))

	require.NoError(t, recorder.Close())
}
