package mdp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TransitionMatrix returns the state transition matrix of the Markov
// chain induced by the policy. Element (s, s') is the total probability
// of moving from state s to state s' when following the policy.
func TransitionMatrix(policy Policy) *mat.Dense {
	n := len(policy)
	if n == 0 {
		panic("transitionMatrix: policy must select an action in at " +
			"least one state")
	}

	p := mat.NewDense(n, n, nil)
	for s, action := range policy {
		for _, o := range action {
			p.Set(s, o.NextState, p.At(s, o.NextState)+o.Probability)
		}
	}
	return p
}

// ExpectedReward returns the expected immediate reward of each state
// when following the policy
func ExpectedReward(policy Policy) *mat.VecDense {
	n := len(policy)
	if n == 0 {
		panic("expectedReward: policy must select an action in at " +
			"least one state")
	}

	r := mat.NewVecDense(n, nil)
	for s, action := range policy {
		r.SetVec(s, action.ExpectedReward())
	}
	return r
}

// Solve computes the exact discounted value of each state under the
// policy by solving the linear system
//
//	(I - discount * P) v = r
//
// where P is the policy's transition matrix and r its expected reward.
// This is the fixed point that Evaluate approaches as the number of
// iterations grows, provided discount < 1. An error is returned if the
// system is singular or badly conditioned, as it is when discount = 1.
func Solve(policy Policy, discount float64) (*mat.VecDense, error) {
	p := TransitionMatrix(policy)
	r := ExpectedReward(policy)

	n := len(policy)
	a := mat.NewDense(n, n, nil)
	a.Scale(-discount, p)
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+1.0)
	}

	var v mat.VecDense
	if err := v.SolveVec(a, r); err != nil {
		return nil, fmt.Errorf("solve: could not solve for values with "+
			"discount %v: %w", discount, err)
	}
	return &v, nil
}
