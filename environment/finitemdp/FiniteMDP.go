// Package finitemdp implements an environment which samples
// trajectories from a finite MDP
package finitemdp

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/mdpeval/environment"
	"github.com/samuelfneumann/mdpeval/mdp"
	ts "github.com/samuelfneumann/mdpeval/timestep"
)

// FiniteMDP is an environment whose dynamics are given by an mdp.MDP.
//
// Observations are 1-vectors holding the index of the current state,
// and actions are 1-vectors holding the index of the action to take in
// the current state. Taking an action samples one of its outcomes
// according to the outcome probabilities; the outcome's reward is
// returned and the environment moves to the outcome's next state.
//
// The MDPs in package mdp have no terminal states, so episodes end only
// when the environment's Ender says so.
type FiniteMDP struct {
	environment.Starter
	environment.Ender
	m           mdp.MDP
	state       int
	discount    float64
	source      rand.Source
	currentStep ts.TimeStep
}

// New creates a new FiniteMDP environment. Starting states are sampled
// from s and episodes are ended by e. The first TimeStep of the
// environment is also returned.
func New(m mdp.MDP, s environment.Starter, e environment.Ender,
	discount float64, seed uint64) (*FiniteMDP, ts.TimeStep, error) {
	if len(m) == 0 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: MDP has no states")
	}
	for state := range m {
		if len(m[state]) == 0 {
			return nil, ts.TimeStep{}, fmt.Errorf("new: state %d has no "+
				"actions", state)
		}
	}

	f := &FiniteMDP{
		Starter:  s,
		Ender:    e,
		m:        m,
		discount: discount,
		source:   rand.NewSource(seed),
	}
	return f, f.Reset(), nil
}

// Reset resets the environment to a starting state sampled from its
// Starter and returns the first TimeStep of the new episode. Reset
// panics if the Starter samples a state which is not in the MDP.
func (f *FiniteMDP) Reset() ts.TimeStep {
	start := int(f.Start().AtVec(0))
	if start < 0 || start >= len(f.m) {
		panic(fmt.Sprintf("reset: starting state %d out of range [0, %d)",
			start, len(f.m)))
	}
	f.state = start

	step := ts.New(ts.First, 0.0, f.discount, f.observation(), 0)
	f.currentStep = step
	return step
}

// Step takes the action with index action.AtVec(0) in the current
// state, returning the next TimeStep and whether the episode has ended.
// An error is returned if the action index is not valid in the current
// state or if the sampled outcome leads outside of the MDP.
func (f *FiniteMDP) Step(action mat.Vector) (ts.TimeStep, bool, error) {
	actions := f.m[f.state]
	valid := environment.NewScalarSpec(environment.Action, 0,
		float64(len(actions)-1), environment.Discrete)
	if !valid.Contains(action) {
		return ts.TimeStep{}, false, fmt.Errorf("step: action %v not "+
			"in %v of state %d", mat.Formatted(action.T(), mat.Squeeze()),
			valid, f.state)
	}

	outcome, err := f.sample(actions[int(action.AtVec(0))])
	if err != nil {
		return ts.TimeStep{}, false, err
	}
	f.state = outcome.NextState

	number := f.currentStep.Number + 1
	step := ts.New(ts.Mid, outcome.Reward, f.discount, f.observation(),
		number)
	f.End(&step)

	f.currentStep = step
	return step, step.Last(), nil
}

// sample samples an outcome of an action
func (f *FiniteMDP) sample(action mdp.Action) (mdp.Outcome, error) {
	weights := make([]float64, len(action))
	for i, o := range action {
		weights[i] = o.Probability
	}
	dist := distuv.NewCategorical(weights, f.source)
	outcome := action[int(dist.Rand())]

	if outcome.NextState < 0 || outcome.NextState >= len(f.m) {
		return mdp.Outcome{}, fmt.Errorf("step: next state %d out of range "+
			"[0, %d)", outcome.NextState, len(f.m))
	}
	return outcome, nil
}

// State returns the index of the current state
func (f *FiniteMDP) State() int {
	return f.state
}

// LastTimeStep returns the last TimeStep that occurred in the
// environment
func (f *FiniteMDP) LastTimeStep() ts.TimeStep {
	return f.currentStep
}

func (f *FiniteMDP) observation() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(f.state)})
}

// ObservationSpec returns the observation specification of the
// environment
func (f *FiniteMDP) ObservationSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Observation, 0,
		float64(len(f.m)-1), environment.Discrete)
}

// ActionSpec returns the action specification of the environment. The
// upper bound is that of the state with the most actions.
func (f *FiniteMDP) ActionSpec() environment.Spec {
	actions := 0
	for _, state := range f.m {
		if len(state) > actions {
			actions = len(state)
		}
	}
	return environment.NewScalarSpec(environment.Action, 0,
		float64(actions-1), environment.Discrete)
}

// RewardSpec returns the reward specification of the environment
func (f *FiniteMDP) RewardSpec() environment.Spec {
	min, max := math.Inf(1), math.Inf(-1)
	for _, state := range f.m {
		for _, action := range state {
			for _, o := range action {
				min = math.Min(min, o.Reward)
				max = math.Max(max, o.Reward)
			}
		}
	}
	return environment.NewScalarSpec(environment.Reward, min, max,
		environment.Continuous)
}

// DiscountSpec returns the discount specification of the environment
func (f *FiniteMDP) DiscountSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Discount, f.discount,
		f.discount, environment.Continuous)
}

func (f *FiniteMDP) String() string {
	return fmt.Sprintf("FiniteMDP | States: %d  |  At: %d  |  Discount: %.2f",
		len(f.m), f.state, f.discount)
}
