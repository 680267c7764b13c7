package i

import (
	"context"

	"github.com/beka-birhanu/mazepilot/solver"
)

// Solver advances the robot by at most one committed move per call.
type Solver interface {
	Next(ctx context.Context) (solver.StepResult, error)
	Name() string
}
