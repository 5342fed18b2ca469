package tracker

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	ts "github.com/samuelfneumann/mdpeval/timestep"
)

// StartReturn tracks and saves the discounted return of each episode
// in an experiment, grouped by the state the episode started in. The
// observation of the first TimeStep of each episode must hold the index
// of the starting state, as it does for finitemdp environments.
//
// Each reward is weighted by the product of the discounts of the
// TimeSteps after the first and before the reward's own TimeStep. With
// a constant discount γ the return is Σ γ^(k-1) r_k, where r_k is the
// reward of the k-th action taken in the episode.
//
// Note: An episode must finish for this Tracker to save its return.
// If the last episode in an experiment does not finish, that episode's
// return is discarded.
type StartReturn struct {
	lastTimeStep  int
	startState    int
	weight        float64
	currentReturn float64
	returns       map[int][]float64
	filename      string
}

// NewStartReturn creates and returns a new *StartReturn Tracker which
// saves its data to filename
func NewStartReturn(filename string) *StartReturn {
	return &StartReturn{
		lastTimeStep: -1,
		returns:      make(map[int][]float64),
		filename:     filename,
	}
}

// Track tracks the rewards seen on a timestep. By calling this method
// on every timestep, the Tracker accumulates the discounted return of
// the current episode, storing it under the episode's starting state
// once the last timestep of the episode is seen.
//
// Track panics if it is called for non-sequential timesteps within an
// episode
func (r *StartReturn) Track(step ts.TimeStep) {
	// A first timestep discards any unfinished episode
	if step.First() {
		r.startState = int(step.Observation.AtVec(0))
		r.currentReturn = 0.0
		r.weight = 1.0
		r.lastTimeStep = step.Number
		return
	}

	if r.lastTimeStep < 0 || r.lastTimeStep+1 != step.Number {
		panic(fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number))
	}

	r.currentReturn += r.weight * step.Reward
	r.weight *= step.Discount

	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	// Episode has ended, save the return and begin tracking the
	// return for a new episode
	r.returns[r.startState] = append(r.returns[r.startState],
		r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Returns returns the returns of all finished episodes which started
// in state s
func (r *StartReturn) Returns(s int) []float64 {
	return append([]float64(nil), r.returns[s]...)
}

// Estimates returns the mean return of the finished episodes starting
// in each of the states [0, states), along with the number of episodes
// each mean was computed from. The mean of a state with no finished
// episodes is NaN.
func (r *StartReturn) Estimates(states int) (*mat.VecDense, []int) {
	means := mat.NewVecDense(states, nil)
	counts := make([]int, states)

	for s := 0; s < states; s++ {
		returns := r.returns[s]
		counts[s] = len(returns)
		if len(returns) == 0 {
			means.SetVec(s, math.NaN())
			continue
		}
		means.SetVec(s, stat.Mean(returns, nil))
	}
	return means, counts
}

// Save saves the returns tracked by the StartReturn Tracker to disk
func (r *StartReturn) Save() error {
	return save(r.filename, r.returns)
}

// LoadStartReturns loads the returns saved by a StartReturn Tracker,
// keyed by starting state
func LoadStartReturns(filename string) (map[int][]float64, error) {
	var data map[int][]float64
	if err := load(filename, &data); err != nil {
		return nil, err
	}
	return data, nil
}
