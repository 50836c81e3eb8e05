package calibration

import (
	"encoding/json"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/task"
	"go.trai.ch/zerr"
)

// Option configures a calibration.
type Option func(*Calibration)

// WithClock measures run-up, settle and timeouts on clock.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Calibration) { c.clock = clock }
}

// WithPersist overrides whether a completed model is saved.
func WithPersist(persist bool) Option {
	return func(c *Calibration) { c.persist = persist }
}

// Calibration runs the populate legs in sequence. The model it builds is
// installed, and optionally persisted, only when every leg ran to completion.
type Calibration struct {
	kind    Kind
	seq     *task.Sequence
	models  *Models
	store   ports.PreferenceStore
	key     string
	persist bool
	log     ports.Logger
	clock   clockwork.Clock

	inUse     *domain.CoastDistance
	result    *domain.CoastDistance
	installed bool
}

// NewDriveCalibration builds the drive-coast calibration: one leg per
// configured throttle, alternating forward and reverse.
func NewDriveCalibration(
	hw ports.Hardware,
	cfg domain.Config,
	models *Models,
	store ports.PreferenceStore,
	log ports.Logger,
	opts ...Option,
) *Calibration {
	return newCalibration(KindDrive, hw, cfg, models, store, log, opts)
}

// NewRotateCalibration builds the rotate-coast calibration: one leg per
// configured throttle, alternating clockwise and counter-clockwise.
func NewRotateCalibration(
	hw ports.Hardware,
	cfg domain.Config,
	models *Models,
	store ports.PreferenceStore,
	log ports.Logger,
	opts ...Option,
) *Calibration {
	return newCalibration(KindRotate, hw, cfg, models, store, log, opts)
}

func newCalibration(
	kind Kind,
	hw ports.Hardware,
	cfg domain.Config,
	models *Models,
	store ports.PreferenceStore,
	log ports.Logger,
	opts []Option,
) *Calibration {
	c := &Calibration{
		kind:    kind,
		models:  models,
		store:   store,
		key:     kind.Key(cfg.Keys),
		persist: cfg.Calibration.Persist,
		log:     log,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}

	tolerance := cfg.Calibration.DriveRateTolerance
	if kind == KindRotate {
		tolerance = cfg.Calibration.RotateRateTolerance
	}

	legs := make([]task.Task, 0, len(cfg.Calibration.Throttles))
	for i, throttle := range cfg.Calibration.Throttles {
		direction := 1.0
		if i%2 == 1 {
			direction = -1
		}
		legs = append(legs, &populate{
			kind:       kind,
			gyro:       hw.Gyro,
			drivetrain: hw.Drivetrain,
			log:        log,
			clock:      c.clock,
			sink:       c.record,
			direction:  direction,
			throttle:   abs(throttle),
			setpoint:   abs(cfg.Calibration.DriveDistance),
			runUp:      cfg.Calibration.RotateTime,
			correction: cfg.Drive.GyroCorrection,
			tolerance:  tolerance,
			settle:     cfg.Calibration.Settle,
			timeout:    task.NewTimeout(c.clock, cfg.Calibration.Timeout),
		})
	}
	c.seq = task.NewSequence(c.Name(), legs...)
	return c
}

// Name implements task.Task.
func (c *Calibration) Name() string {
	return c.kind.String() + "-coast-calibration"
}

// Requirements implements task.Task.
func (c *Calibration) Requirements() []domain.Resource {
	return c.seq.Requirements()
}

// Initialize starts a fresh in-progress model.
func (c *Calibration) Initialize() {
	c.inUse = domain.NewCoastDistance()
	c.result = nil
	c.installed = false
	c.log.Info(fmt.Sprintf("starting %s coast calibration (persist=%t)", c.kind, c.persist))
	c.seq.Initialize()
}

// Execute implements task.Task.
func (c *Calibration) Execute() { c.seq.Execute() }

// IsFinished implements task.Task.
func (c *Calibration) IsFinished() bool { return c.seq.IsFinished() }

// End installs and persists the model when every leg completed.
func (c *Calibration) End() {
	c.seq.End()
	if !c.seq.Completed() {
		c.discard()
		return
	}

	c.result, c.inUse = c.inUse, nil
	if c.result.Len() == 0 {
		c.log.Warn(fmt.Sprintf("%s coast calibration produced no samples; keeping the installed model", c.kind))
		return
	}

	c.models.Install(c.kind, c.result)
	c.installed = true
	if c.persist {
		if err := SaveModel(c.store, c.key, c.result); err != nil {
			c.log.Error(err)
		}
	}

	summary, _ := json.Marshal(c.result)
	c.log.Info(fmt.Sprintf("finished %s coast calibration: %s", c.kind, summary))
}

// Interrupted discards the in-progress model.
func (c *Calibration) Interrupted() {
	c.seq.Interrupted()
	c.discard()
}

func (c *Calibration) discard() {
	c.inUse = nil
	c.result = nil
	err := zerr.With(zerr.Wrap(domain.ErrCalibrationIncomplete, "model discarded"), "calibration", c.Name())
	c.log.Error(err)
}

// record is the sink of the populate legs.
func (c *Calibration) record(speed, distance float64) {
	if c.inUse == nil {
		return
	}
	if err := c.inUse.Populate(speed, distance); err != nil {
		c.log.Error(err)
		return
	}
	c.log.Info(fmt.Sprintf("%s coast: populated speed=%.3f distance=%.3f", c.kind, speed, distance))
}

// Result returns the model of the last completed run, or nil.
func (c *Calibration) Result() *domain.CoastDistance { return c.result }

// Installed reports whether the last run replaced the live model.
func (c *Calibration) Installed() bool { return c.installed }
