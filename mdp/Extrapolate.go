package mdp

// Extrapolate computes the value of every action of every state of m
// when the policy is followed after that first action.
//
// The policy is evaluated once with Evaluate(policy, discount,
// iterations), and the resulting values V are used as the continuation
// value of a single backup of each action:
//
//	Q[s][a] = Σ p * (r + discount * V[s'])
//
// This is not a maximizing backup: the policy is never changed. The
// returned QMatrix has the same shape as m, which may be ragged.
//
// Extrapolate panics if any outcome of m or of the policy refers to a
// next state outside [0, len(policy)).
func Extrapolate(m MDP, policy Policy, discount float64,
	iterations int) QMatrix {
	checkEvaluationArgs(len(policy), iterations)

	v := evaluate(policy, discount, iterations)
	return extrapolate(m, v, discount)
}

// extrapolate performs a single backup of every action in m using the
// continuation values v
func extrapolate(m MDP, v []float64, discount float64) QMatrix {
	q := make(QMatrix, len(m))
	for s := range m {
		q[s] = extrapolateState(m[s], v, discount)
	}
	return q
}

func extrapolateState(actions []Action, v []float64, discount float64) []float64 {
	values := make([]float64, len(actions))
	for a, action := range actions {
		values[a] = backup(action, v, discount)
	}
	return values
}
