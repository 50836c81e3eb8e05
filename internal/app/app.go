// Package app implements the application layer for semi.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/calibration"
	"go.trai.ch/semi/internal/engine/motion"
	"go.trai.ch/semi/internal/engine/recorder"
	"go.trai.ch/semi/internal/engine/scheduler"
	"go.trai.ch/semi/internal/engine/task"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Operator is a scripted or live operator that knows when it is finished.
type Operator interface {
	ports.OperatorInput
	ports.Poller
	Done() bool
}

// App owns the scheduler and the hardware table, and drives the tick loop.
type App struct {
	cfg       domain.Config
	hw        ports.Hardware
	scheduler *scheduler.Scheduler
	store     ports.PreferenceStore
	models    *calibration.Models
	logger    ports.Logger
	clock     clockwork.Clock
}

// New creates a new App instance. Persisted coast models are loaded from store.
func New(
	cfg domain.Config,
	hw ports.Hardware,
	sched *scheduler.Scheduler,
	store ports.PreferenceStore,
	logger ports.Logger,
) *App {
	return &App{
		cfg:       cfg,
		hw:        hw,
		scheduler: sched,
		store:     store,
		models:    calibration.LoadModels(store, cfg.Keys, logger),
		logger:    logger,
		clock:     clockwork.NewRealClock(),
	}
}

// WithClock sets the clock used by the tick loop and every task built by the app.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// Config returns the effective configuration.
func (a *App) Config() domain.Config {
	return a.cfg
}

// Models returns the installed coast models.
func (a *App) Models() *calibration.Models {
	return a.models
}

// Drive runs a single drive-straight maneuver. A nil gradient uses the
// configured throttle.
func (a *App) Drive(ctx context.Context, distance float64, gradient *domain.ValueGradient) error {
	opts := []motion.Option{
		motion.WithClock(a.clock),
		motion.WithCoast(a.models.Drive()),
	}
	if gradient != nil {
		opts = append(opts, motion.WithGradient(*gradient))
	}
	return a.Run(ctx, a.hw.Pollers, motion.NewDriveStraight(a.hw, a.cfg.Drive, distance, opts...))
}

// Rotate runs a single in-place rotation by degrees.
func (a *App) Rotate(ctx context.Context, degrees float64) error {
	return a.Run(ctx, a.hw.Pollers, motion.NewRotate(a.hw, a.cfg.Rotate, degrees,
		motion.WithClock(a.clock),
		motion.WithCoast(a.models.Rotate()),
	))
}

// Auto runs the autonomous completion routine for side.
func (a *App) Auto(ctx context.Context, side motion.Side) error {
	routine := motion.NewRoutine("auto-"+side.String(), a.hw, a.cfg,
		motion.CompletionSteps(side),
		a.models.Drive(), a.models.Rotate(),
		motion.WithClock(a.clock),
	)
	return a.Run(ctx, a.hw.Pollers, routine)
}

// Deliver drives from the alliance station to the assigned plate and, when
// deliver is set and the plate is reachable, releases the cube.
func (a *App) Deliver(ctx context.Context, alliance motion.Alliance, plate motion.Side, deliver bool) error {
	if deliver && !motion.CanDeliver(alliance, plate) {
		a.logger.Warn(fmt.Sprintf("%s plate unreachable from %s station, driving only", plate, alliance))
	}
	routine := motion.NewRoutine("deliver-"+alliance.String()+"-"+plate.String(), a.hw, a.cfg,
		motion.DeliverSteps(alliance, plate, deliver),
		a.models.Drive(), a.models.Rotate(),
		motion.WithClock(a.clock),
	)
	return a.Run(ctx, a.hw.Pollers, routine)
}

// Aux runs the auxiliary motors at speed for d.
func (a *App) Aux(ctx context.Context, speed float64, d time.Duration) error {
	return a.Run(ctx, a.hw.Pollers, motion.NewAuxMotor(a.hw, speed, d, motion.WithClock(a.clock)))
}

// Calibrate runs the coast calibration for kind and returns the resulting
// model. Nothing is installed unless every leg completed.
func (a *App) Calibrate(ctx context.Context, kind calibration.Kind, persist bool) (*domain.CoastDistance, error) {
	opts := []calibration.Option{
		calibration.WithClock(a.clock),
		calibration.WithPersist(persist),
	}

	var c *calibration.Calibration
	switch kind {
	case calibration.KindDrive:
		c = calibration.NewDriveCalibration(a.hw, a.cfg, a.models, a.store, a.logger, opts...)
	case calibration.KindRotate:
		c = calibration.NewRotateCalibration(a.hw, a.cfg, a.models, a.store, a.logger, opts...)
	default:
		return nil, zerr.With(zerr.New("unknown calibration kind"), "kind", int(kind))
	}

	if err := a.Run(ctx, a.hw.Pollers, c); err != nil {
		return nil, err
	}
	if !c.Installed() {
		return nil, zerr.With(zerr.Wrap(domain.ErrCalibrationIncomplete, "calibrate"), "kind", kind.String())
	}
	return c.Result(), nil
}

// Record drives the vehicle from op while sampling its controls, then
// stores the recording for playback.
func (a *App) Record(ctx context.Context, op Operator, squared bool) (*domain.Recording, error) {
	hw := a.hw
	hw.Input = op
	pollers := append(append([]ports.Poller{}, a.hw.Pollers...), op)

	rec := recorder.NewRecorder(op, a.cfg.Period, squared, a.logger)
	if err := a.Run(ctx, pollers, recorder.NewTeleop(hw, squared, op.Done), rec.Task(op.Done)); err != nil {
		return nil, err
	}

	last := rec.Last()
	if err := recorder.Save(a.store, a.cfg.Keys.Playback, last, a.logger); err != nil {
		return nil, err
	}
	return last, nil
}

// Playback replays the stored recording.
func (a *App) Playback(ctx context.Context) error {
	rec := recorder.Load(a.store, a.cfg.Keys.Playback, a.cfg.Period, a.logger)
	if rec == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoRecording, "playback"), "key", a.cfg.Keys.Playback)
	}
	return a.Run(ctx, a.hw.Pollers, recorder.NewPlayer(a.hw, rec))
}

// Run schedules tasks and ticks the scheduler once per period until every
// task has left the active set or ctx is cancelled. On cancellation the
// scheduler is disabled, which interrupts whatever is still running.
func (a *App) Run(ctx context.Context, pollers []ports.Poller, tasks ...task.Task) error {
	a.scheduler.Enable()
	for _, t := range tasks {
		a.scheduler.Schedule(t)
	}

	g, ctx := errgroup.WithContext(ctx)
	stopped := make(chan struct{})

	g.Go(func() error {
		defer close(stopped)
		return a.loop(ctx, pollers)
	})

	g.Go(func() error {
		<-stopped
		a.scheduler.Disable()
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "run cancelled")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	for _, t := range tasks {
		if a.scheduler.State(t) == domain.TaskInterrupted {
			return zerr.With(zerr.Wrap(domain.ErrTaskInterrupted, "run"), "task", t.Name())
		}
	}
	return nil
}

func (a *App) loop(ctx context.Context, pollers []ports.Poller) error {
	ticker := a.clock.NewTicker(a.cfg.Period)
	defer ticker.Stop()

	last := a.clock.Now()
	ticks := 0
	for {
		select {
		case <-ctx.Done():
			a.logger.Warn(fmt.Sprintf("stopping after %d ticks", ticks))
			return nil
		case now := <-ticker.Chan():
			a.tick(pollers, now.Sub(last))
			last = now
			ticks++
			if a.scheduler.Idle() {
				a.logger.Info(fmt.Sprintf("finished in %d ticks (%s)", ticks, time.Duration(ticks)*a.cfg.Period))
				return nil
			}
		}
	}
}

// tick runs the tasks against the current inputs, then advances the pollers
// by dt. Sampling first keeps the first period of a scripted input.
func (a *App) tick(pollers []ports.Poller, dt time.Duration) {
	a.scheduler.Tick()
	for _, p := range pollers {
		p.Poll(dt)
	}
}
