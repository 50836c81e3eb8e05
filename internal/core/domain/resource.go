package domain

import "unique"

// Resource identifies an actuator or subsystem that a task needs exclusively.
// It wraps a unique.Handle so that requirement checks compare handles instead of strings.
type Resource struct {
	h unique.Handle[string]
}

// NewResource interns name as a Resource.
func NewResource(name string) Resource {
	return Resource{h: unique.Make(name)}
}

var (
	// ResourceDrivetrain is the left/right drive motor pair.
	ResourceDrivetrain = NewResource("drivetrain")
	// ResourceAuxiliary is the intake/ramp motor group.
	ResourceAuxiliary = NewResource("auxiliary")
)

// String returns the resource name.
func (r Resource) String() string {
	var zero unique.Handle[string]
	if r.h == zero {
		return ""
	}
	return r.h.Value()
}

// Overlaps reports whether the two requirement sets share a resource.
func Overlaps(a, b []Resource) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
