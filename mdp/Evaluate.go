package mdp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Evaluate computes the discounted value of each state under the
// deterministic policy using iterations synchronous sweeps of the
// Bellman expectation backup:
//
//	V_0[s]     = 0
//	V_{k+1}[s] = Σ p * (r + discount * V_k[s'])
//
// where the sum is over the outcomes (p, r, s') of policy[s]. Every
// state of a sweep is computed from the complete previous vector, and
// a fresh vector is allocated for each sweep. Exactly iterations sweeps
// are performed; there is no convergence check. With zero iterations
// the returned vector is all zeros.
//
// The number of states is len(policy). If some outcome refers to a
// next state outside [0, len(policy)), Evaluate panics with an index
// out of range error. The discount is not validated and the outcome
// probabilities are not checked to sum to 1.
func Evaluate(policy Policy, discount float64, iterations int) *mat.VecDense {
	checkEvaluationArgs(len(policy), iterations)

	return mat.NewVecDense(len(policy), evaluate(policy, discount, iterations))
}

// evaluate performs the sweeps of Evaluate on raw slices
func evaluate(policy Policy, discount float64, iterations int) []float64 {
	n := len(policy)
	q := make([]float64, n)

	for i := 0; i < iterations; i++ {
		newq := make([]float64, n)
		for s, action := range policy {
			newq[s] = backup(action, q, discount)
		}
		q = newq
	}
	return q
}

// checkEvaluationArgs panics if a policy with states states cannot be
// evaluated for iterations sweeps
func checkEvaluationArgs(states, iterations int) {
	if states == 0 {
		panic("evaluate: policy must select an action in at least one state")
	}
	if iterations < 0 {
		panic(fmt.Sprintf("evaluate: iterations must be non-negative, "+
			"have %d", iterations))
	}
}
