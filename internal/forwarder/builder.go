// internal/forwarder/builder.go
package forwarder

import (
	"errors"

	cfg "github.com/tamzrod/sensorwire/internal/config"
)

// BuildPlan converts the forward config into a Plan.
// Assumes config has already passed validation (spans checked there).
func BuildPlan(f *cfg.ForwardConfig) (Plan, error) {
	if f == nil {
		return Plan{}, errors.New("forwarder: forward config required")
	}

	plan := Plan{
		UnitID: f.UnitID,
		Slaves: make(map[uint8]SlaveMapping, len(f.Slaves)),
	}

	for _, s := range f.Slaves {
		plan.Slaves[s.SlaveAddress] = SlaveMapping{
			BaseAddress: s.BaseAddress,
			Quantity:    s.Quantity,
		}
	}

	return plan, nil
}
