package i

import "github.com/beka-birhanu/mazepilot/solver"

// Renderer consumes tick results for display. Implementations must never
// mutate core state; they only read what the StepResult carries.
type Renderer interface {
	// Frame draws the outcome of one tick.
	Frame(res solver.StepResult)
}
