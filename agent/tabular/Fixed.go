// Package tabular implements policies over environments with a finite
// number of states, where observations hold the index of the current
// state
package tabular

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/mdpeval/timestep"
)

// Fixed is a deterministic policy which always takes the same action
// in each state. It never learns.
type Fixed struct {
	actions []int
}

// NewFixed returns a new Fixed policy which selects action actions[s]
// in state s
func NewFixed(actions []int) (*Fixed, error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("newFixed: an action is needed for at " +
			"least one state")
	}
	for s, a := range actions {
		if a < 0 {
			return nil, fmt.Errorf("newFixed: action %d of state %d is "+
				"negative", a, s)
		}
	}

	return &Fixed{append([]int(nil), actions...)}, nil
}

// SelectAction returns the action of the state held in the TimeStep's
// observation. SelectAction panics if the policy has no action for the
// state.
func (f *Fixed) SelectAction(t ts.TimeStep) *mat.VecDense {
	s := int(t.Observation.AtVec(0))
	if s < 0 || s >= len(f.actions) {
		panic(fmt.Sprintf("selectAction: no action for state %d", s))
	}
	return mat.NewVecDense(1, []float64{float64(f.actions[s])})
}

// Action returns the index of the action taken in state s
func (f *Fixed) Action(s int) int {
	return f.actions[s]
}
