package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Column indices of the matrix representation of an Action
const (
	ProbabilityCol int = iota
	RewardCol
	NextStateCol
	actionCols
)

// Dense returns the action as a matrix with one row per outcome. The
// columns hold the probability, reward, and next state of the outcome,
// in that order.
func (a Action) Dense() *mat.Dense {
	if len(a) == 0 {
		panic("dense: cannot convert an action with no outcomes")
	}

	d := mat.NewDense(len(a), actionCols, nil)
	for i, o := range a {
		d.Set(i, ProbabilityCol, o.Probability)
		d.Set(i, RewardCol, o.Reward)
		d.Set(i, NextStateCol, float64(o.NextState))
	}
	return d
}

// ActionFromDense constructs an Action from its matrix representation,
// as returned by Action.Dense. The next state column must hold
// non-negative integers. Probabilities are copied as-is and are not
// checked to form a distribution.
func ActionFromDense(m mat.Matrix) (Action, error) {
	r, c := m.Dims()
	if c != actionCols {
		return nil, fmt.Errorf("actionFromDense: expected %d columns, got %d",
			actionCols, c)
	}

	action := make(Action, r)
	for i := range action {
		next := m.At(i, NextStateCol)
		if next < 0 || next != math.Trunc(next) {
			return nil, fmt.Errorf("actionFromDense: next state %v of "+
				"outcome %d is not a non-negative integer", next, i)
		}

		action[i] = Outcome{
			Probability: m.At(i, ProbabilityCol),
			Reward:      m.At(i, RewardCol),
			NextState:   int(next),
		}
	}
	return action, nil
}

// Dense returns the QMatrix as a matrix with one row per state and one
// column per action. An error is returned if the QMatrix is empty or
// if the states do not all have the same number of actions.
func (q QMatrix) Dense() (*mat.Dense, error) {
	if len(q) == 0 || len(q[0]) == 0 {
		return nil, fmt.Errorf("dense: cannot convert an empty QMatrix")
	}

	cols := len(q[0])
	d := mat.NewDense(len(q), cols, nil)
	for s, row := range q {
		if len(row) != cols {
			return nil, fmt.Errorf("dense: state %d has %d actions, "+
				"state 0 has %d", s, len(row), cols)
		}
		d.SetRow(s, row)
	}
	return d, nil
}
