package experiment_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/mdpeval/agent/tabular"
	"github.com/samuelfneumann/mdpeval/environment"
	"github.com/samuelfneumann/mdpeval/environment/finitemdp"
	"github.com/samuelfneumann/mdpeval/experiment"
	"github.com/samuelfneumann/mdpeval/experiment/tracker"
	"github.com/samuelfneumann/mdpeval/mdp"
)

// runMonteCarlo runs episodes episodes of cutoff steps each of the
// policy in m, starting uniformly at random, and returns the Tracker
// holding the returns
func runMonteCarlo(t *testing.T, m mdp.MDP, indices []int, discount float64,
	cutoff, episodes int, seed uint64) *tracker.StartReturn {
	t.Helper()

	starter, err := environment.NewUniformCategoricalStarter(len(m), seed)
	if err != nil {
		t.Fatal(err)
	}
	env, _, err := finitemdp.New(m, starter, environment.NewStepLimit(cutoff),
		discount, seed)
	if err != nil {
		t.Fatal(err)
	}
	policy, err := tabular.NewFixed(indices)
	if err != nil {
		t.Fatal(err)
	}

	returns := tracker.NewStartReturn(filepath.Join(t.TempDir(), "data.bin"))
	e := experiment.NewOnline(env, policy, uint(cutoff*episodes), returns)
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if e.Steps() != uint(cutoff*episodes) {
		t.Errorf("expected %v steps, got %v", cutoff*episodes, e.Steps())
	}
	if err := e.Save(); err != nil {
		t.Fatal(err)
	}
	return returns
}

func TestOnlineDeterministicMatchesEvaluate(t *testing.T) {
	// Deterministic dynamics make every return from a state identical
	m := mdp.MDP{
		{{{Probability: 1, Reward: 1, NextState: 1}}},
		{{{Probability: 1, Reward: -0.5, NextState: 2}}, {{Probability: 1, Reward: 0, NextState: 0}}},
		{{{Probability: 1, Reward: 0.25, NextState: 0}}},
	}
	indices := []int{0, 0, 0}
	policy, err := m.Policy(indices)
	if err != nil {
		t.Fatal(err)
	}

	const discount, cutoff, episodes = 0.9, 20, 60
	returns := runMonteCarlo(t, m, indices, discount, cutoff, episodes, 11)
	estimates, counts := returns.Estimates(len(m))

	// The expected return of an episode truncated after cutoff steps is
	// the value after cutoff sweeps
	want := mdp.Evaluate(policy, discount, cutoff)

	total := 0
	for s := range m {
		total += counts[s]
		if counts[s] == 0 {
			continue
		}
		if math.Abs(estimates.AtVec(s)-want.AtVec(s)) > 1e-9 {
			t.Errorf("state %v: return %v != value %v", s, estimates.AtVec(s),
				want.AtVec(s))
		}
	}
	if total != episodes {
		t.Errorf("expected %v finished episodes, got %v", episodes, total)
	}
}

func TestOnlineRandomMatchesEvaluate(t *testing.T) {
	g := mdp.NewGenerator(2718)
	m := g.GenerateMDP(4, 3, 3)
	indices := g.SamplePolicyIndices(m)
	policy, err := m.Policy(indices)
	if err != nil {
		t.Fatal(err)
	}

	// Returns are bounded by 1 / (1 - discount) = 2 in magnitude, so
	// with hundreds of episodes per state the mean is well within the
	// tolerance
	const discount, cutoff, episodes = 0.5, 30, 3000
	returns := runMonteCarlo(t, m, indices, discount, cutoff, episodes, 3)
	estimates, counts := returns.Estimates(len(m))
	want := mdp.Evaluate(policy, discount, cutoff)

	for s := range m {
		if counts[s] < 500 {
			t.Fatalf("state %v: only %v episodes", s, counts[s])
		}
		if math.Abs(estimates.AtVec(s)-want.AtVec(s)) > 0.25 {
			t.Errorf("state %v: return %v too far from value %v", s,
				estimates.AtVec(s), want.AtVec(s))
		}
	}
}

func TestOnlineUnfinishedEpisode(t *testing.T) {
	m := mdp.NewGenerator(1).GenerateMDP(3, 2, 2)
	starter, err := environment.NewUniformCategoricalStarter(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	env, _, err := finitemdp.New(m, starter, environment.NewStepLimit(10),
		0.9, 1)
	if err != nil {
		t.Fatal(err)
	}
	policy, err := tabular.NewFixed([]int{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	returns := tracker.NewStartReturn(filepath.Join(t.TempDir(), "data.bin"))
	e := experiment.NewOnline(env, policy, 25)
	e.Register(returns)
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}

	// Two full episodes of 10 steps, the third is cut off after 5
	_, counts := returns.Estimates(3)
	if total := counts[0] + counts[1] + counts[2]; total != 2 {
		t.Errorf("expected 2 finished episodes, got %v", total)
	}
}

func TestOnlineStepError(t *testing.T) {
	m := mdp.MDP{{{{Probability: 1, Reward: 0, NextState: 0}}}}
	starter, err := environment.NewUniformCategoricalStarter(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	env, _, err := finitemdp.New(m, starter, environment.NewStepLimit(5),
		0.9, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Action 3 does not exist
	policy, err := tabular.NewFixed([]int{3})
	if err != nil {
		t.Fatal(err)
	}
	if err := experiment.NewOnline(env, policy, 10).Run(); err == nil {
		t.Error("expected error selecting a nonexistent action")
	}
}
