package domain

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

const (
	recordingHeaderSize = 4
	recordedActionSize  = 24
)

// OperatorSample is one reading of the operator's controls.
type OperatorSample struct {
	Forward float64 `yaml:"forward"`
	Turn    float64 `yaml:"turn"`
	Aux     float64 `yaml:"aux"`
}

// RecordedAction is an immutable forward/turn/auxiliary triple captured on one tick.
type RecordedAction struct {
	Forward float64
	Turn    float64
	Aux     float64
}

// NewRecordedAction builds an action. When squared is set, forward and turn are
// squared keeping their sign; aux is never shaped.
func NewRecordedAction(forward, turn, aux float64, squared bool) RecordedAction {
	if squared {
		forward = SquareKeepSign(forward)
		turn = SquareKeepSign(turn)
	}
	return RecordedAction{Forward: forward, Turn: turn, Aux: aux}
}

// IsEmpty reports whether every field is zero.
func (a RecordedAction) IsEmpty() bool {
	return a.Forward == 0 && a.Turn == 0 && a.Aux == 0
}

// Recording is an append-only sequence of actions sampled once per tick period.
type Recording struct {
	period  time.Duration
	actions []RecordedAction
}

// NewRecording creates an empty recording for the given tick period.
func NewRecording(period time.Duration) *Recording {
	return &Recording{period: period}
}

// Period returns the tick period the recording was sampled at.
func (r *Recording) Period() time.Duration {
	return r.period
}

// Add appends an action.
func (r *Recording) Add(action RecordedAction) {
	r.actions = append(r.actions, action)
}

// Len returns the number of actions.
func (r *Recording) Len() int {
	return len(r.actions)
}

// At returns the i-th action.
func (r *Recording) At(i int) RecordedAction {
	return r.actions[i]
}

// Actions returns a copy of the recorded actions.
func (r *Recording) Actions() []RecordedAction {
	return slices.Clone(r.actions)
}

// Duration returns period × number of actions.
func (r *Recording) Duration() time.Duration {
	return r.period * time.Duration(len(r.actions))
}

// Copy returns an independent snapshot.
func (r *Recording) Copy() *Recording {
	return &Recording{period: r.period, actions: slices.Clone(r.actions)}
}

// MarshalBinary encodes the recording as a big-endian int32 count followed by
// count triples of float64 in (turn, forward, aux) order.
func (r *Recording) MarshalBinary() ([]byte, error) {
	if len(r.actions) > math.MaxInt32 {
		return nil, zerr.With(zerr.Wrap(ErrMalformedRecording, "encode"), "actions", len(r.actions))
	}

	buf := make([]byte, recordingHeaderSize+recordedActionSize*len(r.actions))
	binary.BigEndian.PutUint32(buf, uint32(len(r.actions))) //nolint:gosec // bounded above
	off := recordingHeaderSize
	for _, a := range r.actions {
		binary.BigEndian.PutUint64(buf[off:], math.Float64bits(a.Turn))
		binary.BigEndian.PutUint64(buf[off+8:], math.Float64bits(a.Forward))
		binary.BigEndian.PutUint64(buf[off+16:], math.Float64bits(a.Aux))
		off += recordedActionSize
	}
	return buf, nil
}

// UnmarshalBinary replaces the recorded actions with the decoded ones.
// The period is left untouched. The blob must hold exactly the declared count.
func (r *Recording) UnmarshalBinary(data []byte) error {
	if len(data) < recordingHeaderSize {
		return zerr.With(zerr.Wrap(ErrMalformedRecording, "decode header"), "length", len(data))
	}

	count := int32(binary.BigEndian.Uint32(data)) //nolint:gosec // sign is checked below
	if count < 0 {
		return zerr.With(zerr.Wrap(ErrMalformedRecording, "decode header"), "count", count)
	}
	if want := recordingHeaderSize + recordedActionSize*int(count); len(data) != want {
		err := zerr.With(zerr.Wrap(ErrMalformedRecording, "decode actions"), "count", count)
		err = zerr.With(err, "length", len(data))
		return zerr.With(err, "expected_length", want)
	}

	actions := make([]RecordedAction, count)
	off := recordingHeaderSize
	for i := range actions {
		actions[i] = RecordedAction{
			Turn:    math.Float64frombits(binary.BigEndian.Uint64(data[off:])),
			Forward: math.Float64frombits(binary.BigEndian.Uint64(data[off+8:])),
			Aux:     math.Float64frombits(binary.BigEndian.Uint64(data[off+16:])),
		}
		off += recordedActionSize
	}
	r.actions = actions
	return nil
}

// EncodeRecording returns the base64 form of the binary layout.
func EncodeRecording(r *Recording) (string, error) {
	data, err := r.MarshalBinary()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeRecording parses the base64 form produced by EncodeRecording.
func DecodeRecording(s string, period time.Duration) (*Recording, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrMalformedRecording, "decode base64"), "cause", err.Error())
	}
	r := NewRecording(period)
	if err := r.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return r, nil
}

// Fingerprint returns an xxhash digest of the binary layout, used to identify a
// recording in logs without dumping it.
func (r *Recording) Fingerprint() uint64 {
	data, err := r.MarshalBinary()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// Playback replays a private copy of a recording, one action per Step.
// It is single-pass: once exhausted a new Playback is needed to start over.
type Playback struct {
	recording *Recording
	cursor    int
}

// NewPlayback snapshots r for replay.
func NewPlayback(r *Recording) *Playback {
	return &Playback{recording: r.Copy()}
}

// Step returns the next action and advances, or false once every action was consumed.
func (p *Playback) Step() (RecordedAction, bool) {
	if p.Done() {
		return RecordedAction{}, false
	}
	a := p.recording.actions[p.cursor]
	p.cursor++
	return a, true
}

// Done reports whether all actions have been returned.
func (p *Playback) Done() bool {
	return p.cursor >= len(p.recording.actions)
}

// Remaining returns the number of actions not yet stepped.
func (p *Playback) Remaining() int {
	return len(p.recording.actions) - p.cursor
}
