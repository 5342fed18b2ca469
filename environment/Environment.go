// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/mdpeval/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes should end
type Ender interface {
	// End determines whether an episode should end at the argument
	// TimeStep. If so, End modifies the TimeStep so that it is the last
	// TimeStep of the episode.
	End(*ts.TimeStep) bool
}

// Environment implements a simulated environment
type Environment interface {
	// Reset resets the environment between episodes and returns the
	// first TimeStep of the new episode
	Reset() ts.TimeStep

	// Step takes one step in the environment, returning the resulting
	// TimeStep and whether or not the episode has ended
	Step(action mat.Vector) (ts.TimeStep, bool, error)

	// LastTimeStep returns the most recent TimeStep of the environment
	LastTimeStep() ts.TimeStep

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
