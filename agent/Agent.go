// Package agent defines the interfaces of agents which act in
// environments
package agent

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/mdpeval/timestep"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Given the TimeStep
// most recently returned by an environment, a Policy returns the
// action to take next.
type Policy interface {
	SelectAction(t ts.TimeStep) *mat.VecDense
}
