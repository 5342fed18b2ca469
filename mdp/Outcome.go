// Package mdp implements finite Markov Decision Processes represented as
// ragged tables of transition outcomes, random generation of such MDPs
// and of deterministic policies, and iterative evaluation of the state
// and state-action values of a fixed deterministic policy.
//
// An MDP is indexed first by state, then by the actions available in
// that state. Each action is a list of Outcomes, each of which gives a
// probability of receiving some reward and transitioning to some next
// state. Nothing in this package checks that the probabilities of an
// action sum to 1. Actions produced by a Generator always do; actions
// built by any other producer are trusted to.
package mdp

import "fmt"

// Outcome is a single possible result of taking an action: with
// probability Probability the agent receives Reward and moves to
// NextState.
type Outcome struct {
	Probability float64
	Reward      float64
	NextState   int
}

// String implements the fmt.Stringer interface
func (o Outcome) String() string {
	return fmt.Sprintf("(p: %.3f, r: %.3f, s': %d)", o.Probability, o.Reward,
		o.NextState)
}

// Action is a distribution over (reward, next state) pairs. The order
// of the outcomes is significant: expectations are always accumulated
// in this order.
type Action []Outcome

// Len returns the number of outcomes of the action
func (a Action) Len() int {
	return len(a)
}

// ExpectedReward returns the expected immediate reward of taking the
// action
func (a Action) ExpectedReward() float64 {
	var r float64
	for _, o := range a {
		r += o.Probability * o.Reward
	}
	return r
}

// backup returns the expected one-step return of an action when the
// continuation value of each state is given by v.
//
// backup panics if any outcome's next state is out of range of v.
func backup(a Action, v []float64, discount float64) float64 {
	var acc float64
	for _, o := range a {
		acc += o.Probability * (o.Reward + discount*v[o.NextState])
	}
	return acc
}
