package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/semi/internal/adapters/telemetry"
	"go.trai.ch/semi/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	v := tel.Record("anything")
	assert.NotPanics(t, func() {
		v.Log(domain.LogLevelError, "ignored")
		v.Complete(errors.New("ignored"))
	})
	assert.NoError(t, tel.Close())
}
