// Package calibration measures how far the vehicle coasts after power is cut,
// and owns the live coast models used by the motion tasks.
package calibration

import (
	"sync"

	"go.trai.ch/semi/internal/core/domain"
)

// Kind distinguishes the two coast models.
type Kind int

// Coast model kinds.
const (
	KindDrive Kind = iota
	KindRotate
)

// String returns "drive" or "rotate".
func (k Kind) String() string {
	if k == KindRotate {
		return "rotate"
	}
	return "drive"
}

// Key returns the preference key the model of this kind is stored under.
func (k Kind) Key(keys domain.PreferenceKeys) string {
	if k == KindRotate {
		return keys.RotateCoast
	}
	return keys.DriveCoast
}

// Models holds the live coast models. Installed models are never mutated;
// readers may keep the returned pointer.
type Models struct {
	mu     sync.RWMutex
	drive  *domain.CoastDistance
	rotate *domain.CoastDistance
}

// NewModels creates a holder with empty models.
func NewModels() *Models {
	return &Models{
		drive:  domain.NewCoastDistance(),
		rotate: domain.NewCoastDistance(),
	}
}

// Get returns the installed model of kind k.
func (m *Models) Get(k Kind) *domain.CoastDistance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if k == KindRotate {
		return m.rotate
	}
	return m.drive
}

// Drive returns the installed drive model.
func (m *Models) Drive() *domain.CoastDistance { return m.Get(KindDrive) }

// Rotate returns the installed rotate model.
func (m *Models) Rotate() *domain.CoastDistance { return m.Get(KindRotate) }

// Install replaces the model of kind k. Nil installs an empty model.
func (m *Models) Install(k Kind, model *domain.CoastDistance) {
	if model == nil {
		model = domain.NewCoastDistance()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if k == KindRotate {
		m.rotate = model
		return
	}
	m.drive = model
}
