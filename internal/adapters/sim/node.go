package sim

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
)

// NodeID is the unique identifier for the simulated hardware Graft node.
const NodeID graft.ID = "adapter.hardware"

// neutral is an operator that never touches the controls.
type neutral struct{}

func (neutral) Sample() domain.OperatorSample { return domain.OperatorSample{} }

// Hardware builds the resource table around a simulated vehicle.
func Hardware(v *Vehicle, input ports.OperatorInput) ports.Hardware {
	if input == nil {
		input = neutral{}
	}
	hw := ports.Hardware{
		Gyro:       v.Gyro(),
		Drivetrain: v,
		Auxiliary:  v.Auxiliary(),
		Input:      input,
		Pollers:    []ports.Poller{v},
	}
	if p, ok := input.(ports.Poller); ok {
		hw.Pollers = append(hw.Pollers, p)
	}
	return hw
}

func init() {
	graft.Register(graft.Node[ports.Hardware]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hardware, error) {
			return Hardware(NewVehicle(DefaultParams()), nil), nil
		},
	})
}
