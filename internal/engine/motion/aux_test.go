package motion_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/core/ports/mocks"
	"go.trai.ch/semi/internal/engine/motion"
	"go.uber.org/mock/gomock"
)

func TestAuxMotor_RunsUntilTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	aux := mocks.NewMockAuxiliary(ctrl)
	clock := clockwork.NewFakeClock()

	gomock.InOrder(
		aux.EXPECT().SetSpeed(1.0).Times(2),
		aux.EXPECT().Stop(),
	)

	a := motion.NewAuxMotor(ports.Hardware{Auxiliary: aux}, 1.5, time.Second, motion.WithClock(clock))
	assert.Equal(t, []domain.Resource{domain.ResourceAuxiliary}, a.Requirements())
	assert.Equal(t, "aux(1.50,1s)", a.Name())

	a.Initialize()
	a.Execute()
	assert.False(t, a.IsFinished())

	clock.Advance(500 * time.Millisecond)
	a.Execute()
	assert.False(t, a.IsFinished())

	clock.Advance(500 * time.Millisecond)
	assert.True(t, a.IsFinished())
	a.End()
}

func TestAuxMotor_InterruptedStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	aux := mocks.NewMockAuxiliary(ctrl)
	aux.EXPECT().SetSpeed(-0.5)
	aux.EXPECT().Stop()

	a := motion.NewAuxMotor(ports.Hardware{Auxiliary: aux}, -0.5, time.Minute, motion.WithName("eject"))
	assert.Equal(t, "eject", a.Name())
	a.Initialize()
	a.Execute()
	a.Interrupted()
}

func TestAuxMotor_NonPositiveDuration(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		a := motion.NewAuxMotor(ports.Hardware{Auxiliary: &auxMotors{}}, 1, d)
		a.Initialize()
		assert.True(t, a.IsFinished(), d)
	}
}
