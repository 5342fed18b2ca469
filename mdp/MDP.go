package mdp

import "fmt"

// MDP is the action table of a finite MDP. MDP[s] holds the actions
// available in state s. States are identified by their index in
// [0, NumStates()).
//
// The table may be ragged: different states may have different numbers
// of actions, and different actions may have different numbers of
// outcomes. The Generator always produces uniform tables.
type MDP [][]Action

// NumStates returns the number of states in the MDP
func (m MDP) NumStates() int {
	return len(m)
}

// NumActions returns the number of actions available in state s
func (m MDP) NumActions(s int) int {
	return len(m[s])
}

// Uniform returns whether every state has the same number of actions
// and every action the same number of outcomes. If so, those counts are
// returned as well.
func (m MDP) Uniform() (actions, outcomes int, ok bool) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, false
	}

	actions, outcomes = len(m[0]), len(m[0][0])
	for _, state := range m {
		if len(state) != actions {
			return 0, 0, false
		}
		for _, action := range state {
			if len(action) != outcomes {
				return 0, 0, false
			}
		}
	}
	return actions, outcomes, true
}

// Policy returns the deterministic policy which selects action
// indices[s] in state s. The returned Policy shares its Actions with
// the MDP.
func (m MDP) Policy(indices []int) (Policy, error) {
	if len(indices) != len(m) {
		return nil, fmt.Errorf("policy: expected %d action indices, got %d",
			len(m), len(indices))
	}

	policy := make(Policy, len(m))
	for s, a := range indices {
		if a < 0 || a >= len(m[s]) {
			return nil, fmt.Errorf("policy: action index %d out of range "+
				"[0, %d) in state %d", a, len(m[s]), s)
		}
		policy[s] = m[s][a]
	}
	return policy, nil
}

// Policy is a deterministic policy, holding the single action selected
// in each state. Policy[s] is the action taken in state s, and so the
// number of states is len(Policy).
type Policy []Action

// QMatrix holds state-action values. QMatrix[s][a] is the value of
// taking action a in state s and thereafter following some fixed
// policy.
type QMatrix [][]float64

// At returns the value of action a in state s
func (q QMatrix) At(s, a int) float64 {
	return q[s][a]
}
