package mdp

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bounds on the randomly generated quantities. Outcome weights are
// drawn uniformly from the integers [MinWeight, MaxWeight] before being
// normalized, and rewards are drawn uniformly from [MinReward,
// MaxReward).
const (
	MinWeight int     = 1
	MaxWeight int     = 4
	MinReward float64 = -1.0
	MaxReward float64 = 1.0
)

// Generator generates random MDPs and random deterministic policies.
// All randomness is drawn from a single source, so two Generators
// created with the same seed produce identical streams of MDPs and
// policies, provided the same sequence of calls is made on each.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	seed   uint64
	rng    *rand.Rand
	reward distuv.Uniform
}

// NewGenerator returns a new Generator seeded with seed
func NewGenerator(seed uint64) *Generator {
	source := rand.NewSource(seed)

	return &Generator{
		seed:   seed,
		rng:    rand.New(source),
		reward: distuv.Uniform{Min: MinReward, Max: MaxReward, Src: source},
	}
}

// Seed returns the seed the Generator was created with
func (g *Generator) Seed() uint64 {
	return g.seed
}

// GenerateAction generates a random action with nOutcomes outcomes in
// an MDP with nStates states.
//
// The weights of all outcomes are drawn first and normalized by their
// sum. Then, for each outcome in turn, a reward is drawn uniformly from
// [MinReward, MaxReward) followed by a next state drawn uniformly from
// [0, nStates). GenerateAction panics if nStates < 1 or nOutcomes < 1.
func (g *Generator) GenerateAction(nStates, nOutcomes int) Action {
	if nStates < 1 {
		panic(fmt.Sprintf("generateAction: nStates must be at least 1, "+
			"have %d", nStates))
	}
	if nOutcomes < 1 {
		panic(fmt.Sprintf("generateAction: nOutcomes must be at least 1, "+
			"have %d", nOutcomes))
	}

	weights := make([]float64, nOutcomes)
	for i := range weights {
		weights[i] = float64(MinWeight + g.rng.Intn(MaxWeight-MinWeight+1))
	}
	sum := floats.Sum(weights)
	for i := range weights {
		weights[i] /= sum
	}

	action := make(Action, nOutcomes)
	for i := range action {
		reward := g.reward.Rand()
		next := g.rng.Intn(nStates)
		action[i] = Outcome{Probability: weights[i], Reward: reward,
			NextState: next}
	}
	return action
}

// GenerateMDP generates a random MDP with nStates states, each of
// which has nActions actions of nOutcomes outcomes each. GenerateMDP
// panics if any argument is less than 1.
func (g *Generator) GenerateMDP(nStates, nActions, nOutcomes int) MDP {
	if nStates < 1 {
		panic(fmt.Sprintf("generateMDP: nStates must be at least 1, "+
			"have %d", nStates))
	}
	if nActions < 1 {
		panic(fmt.Sprintf("generateMDP: nActions must be at least 1, "+
			"have %d", nActions))
	}

	m := make(MDP, nStates)
	for s := range m {
		m[s] = make([]Action, nActions)
		for a := range m[s] {
			m[s][a] = g.GenerateAction(nStates, nOutcomes)
		}
	}
	return m
}

// SamplePolicyIndices selects, for each state of m, one action index
// uniformly at random. SamplePolicyIndices panics if some state has no
// actions.
func (g *Generator) SamplePolicyIndices(m MDP) []int {
	indices := make([]int, len(m))
	for s := range m {
		if len(m[s]) == 0 {
			panic(fmt.Sprintf("samplePolicy: state %d has no actions", s))
		}
		indices[s] = g.rng.Intn(len(m[s]))
	}
	return indices
}

// SamplePolicy returns a deterministic policy for m which selects one
// of the actions in each state uniformly at random. SamplePolicy panics
// if some state has no actions.
func (g *Generator) SamplePolicy(m MDP) Policy {
	policy, err := m.Policy(g.SamplePolicyIndices(m))
	if err != nil {
		panic(fmt.Sprintf("samplePolicy: %v", err))
	}
	return policy
}
