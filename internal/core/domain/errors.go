package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidGradient is returned when a value gradient is constructed with out-of-range parameters.
	ErrInvalidGradient = zerr.New("invalid value gradient")

	// ErrInvalidCoastSample is returned when a coast sample has a negative or non-finite speed.
	ErrInvalidCoastSample = zerr.New("invalid coast sample")

	// ErrInvalidConfig is returned when the loaded configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrMalformedCoastModel is returned when a persisted coast model cannot be decoded.
	ErrMalformedCoastModel = zerr.New("malformed coast distance model")

	// ErrMalformedRecording is returned when a recording blob does not match the binary layout.
	ErrMalformedRecording = zerr.New("malformed recording")

	// ErrCalibrationIncomplete is reported when a calibration sequence is interrupted before completion.
	ErrCalibrationIncomplete = zerr.New("calibration incomplete")

	// ErrTaskInterrupted marks a task run that ended through its interruption path.
	ErrTaskInterrupted = zerr.New("task interrupted")

	// ErrTaskPanicked is reported when a task lifecycle call panics.
	ErrTaskPanicked = zerr.New("task panicked")

	// ErrNoRecording is returned when playback is requested but no recording is loaded.
	ErrNoRecording = zerr.New("no recording loaded")

	// ErrUnknownPreferenceDriver is returned when the configured preference store driver is not supported.
	ErrUnknownPreferenceDriver = zerr.New("unknown preference store driver")

	// ErrInvalidScript is returned when an operator script has a step without a positive duration.
	ErrInvalidScript = zerr.New("invalid operator script")

	// ErrInvalidPosition is returned when a starting station or plate side is not recognised.
	ErrInvalidPosition = zerr.New("invalid field position")
)
