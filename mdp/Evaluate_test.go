package mdp

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// copyPolicy returns a deep copy of a policy
func copyPolicy(policy Policy) Policy {
	c := make(Policy, len(policy))
	for s, action := range policy {
		c[s] = append(Action(nil), action...)
	}
	return c
}

func TestEvaluateImmediateReward(t *testing.T) {
	policy := Policy{
		{{Probability: 1.0, Reward: 5.0, NextState: 0}},
		{{Probability: 1.0, Reward: -2.0, NextState: 1}},
	}

	for _, iterations := range []int{1, 2, 10} {
		v := Evaluate(policy, 0.0, iterations)
		want := []float64{5.0, -2.0}
		if !floats.Equal(v.RawVector().Data, want) {
			t.Errorf("iterations %v: expected %v, got %v", iterations, want,
				v.RawVector().Data)
		}
	}
}

func TestEvaluateZeroIterations(t *testing.T) {
	m := NewGenerator(5).GenerateMDP(7, 2, 3)
	policy := NewGenerator(6).SamplePolicy(m)

	for _, discount := range []float64{0.0, 0.5, 0.99, 1.5} {
		v := Evaluate(policy, discount, 0)
		if v.Len() != len(policy) {
			t.Fatalf("expected length %v, got %v", len(policy), v.Len())
		}
		if !floats.Equal(v.RawVector().Data, make([]float64, len(policy))) {
			t.Errorf("discount %v: expected zeros, got %v", discount,
				v.RawVector().Data)
		}
	}
}

func TestEvaluateHandComputed(t *testing.T) {
	policy := Policy{
		{{1.0, 1.0, 1}},
		{{0.5, 0.0, 0}, {0.5, 2.0, 1}},
	}

	// V_1 = [1, 1]
	// V_2 = [1 + 0.5 * 1, 0.5 * (0 + 0.5 * 1) + 0.5 * (2 + 0.5 * 1)]
	tests := []struct {
		iterations int
		want       []float64
	}{
		{1, []float64{1.0, 1.0}},
		{2, []float64{1.5, 1.5}},
	}

	for _, test := range tests {
		v := Evaluate(policy, 0.5, test.iterations)
		if !floats.EqualApprox(v.RawVector().Data, test.want, 1e-12) {
			t.Errorf("iterations %v: expected %v, got %v", test.iterations,
				test.want, v.RawVector().Data)
		}
	}
}

func TestEvaluateConvergence(t *testing.T) {
	const discount = 0.9
	g := NewGenerator(42)
	m := g.GenerateMDP(25, 4, 5)
	policy := g.SamplePolicy(m)

	v50 := Evaluate(policy, discount, 50)
	v100 := Evaluate(policy, discount, 100)

	// Rewards lie in [-1, 1), so sweeps after the 50th can change any
	// value by less than discount^50 / (1 - discount)
	bound := math.Pow(discount, 50) / (1 - discount)

	var diff mat.VecDense
	diff.SubVec(v100, v50)
	if norm := mat.Norm(&diff, math.Inf(1)); norm > bound {
		t.Errorf("difference between 50 and 100 iterations %v exceeds %v",
			norm, bound)
	}

	v200 := Evaluate(policy, discount, 200)
	var later mat.VecDense
	later.SubVec(v200, v100)
	if mat.Norm(&later, math.Inf(1)) > mat.Norm(&diff, math.Inf(1)) {
		t.Error("value difference did not shrink with more iterations")
	}
}

func TestEvaluateMatchesSolve(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		g := NewGenerator(seed)
		m := g.GenerateMDP(12, 3, 4)
		policy := g.SamplePolicy(m)

		for _, discount := range []float64{0.0, 0.5, 0.9} {
			iterative := Evaluate(policy, discount, 1000)
			exact, err := Solve(policy, discount)
			if err != nil {
				t.Fatalf("seed %v: %v", seed, err)
			}
			if !mat.EqualApprox(iterative, exact, 1e-8) {
				t.Errorf("seed %v discount %v: iterative %v != exact %v", seed,
					discount, mat.Formatted(iterative.T()),
					mat.Formatted(exact.T()))
			}
		}
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	g := NewGenerator(9)
	m := g.GenerateMDP(8, 3, 3)
	policy := g.SamplePolicy(m)
	before := copyPolicy(policy)

	Evaluate(policy, 0.9, 20)
	if !reflect.DeepEqual(policy, before) {
		t.Error("evaluate modified the policy")
	}
}

func TestEvaluateLength(t *testing.T) {
	g := NewGenerator(13)
	for _, n := range []int{1, 2, 17} {
		m := g.GenerateMDP(n, 2, 2)
		if v := Evaluate(g.SamplePolicy(m), 0.9, 3); v.Len() != n {
			t.Errorf("expected length %v, got %v", n, v.Len())
		}
	}
}

func TestEvaluatePanics(t *testing.T) {
	outOfRange := Policy{
		{{1.0, 1.0, 0}},
		{{1.0, 1.0, 2}},
	}
	assertPanics(t, "next state out of range", func() {
		Evaluate(outOfRange, 0.9, 1)
	})
	assertPanics(t, "negative next state", func() {
		Evaluate(Policy{{{1.0, 1.0, -1}}}, 0.9, 1)
	})
	assertPanics(t, "negative iterations", func() {
		Evaluate(Policy{{{1.0, 1.0, 0}}}, 0.9, -1)
	})
	assertPanics(t, "empty policy", func() {
		Evaluate(Policy{}, 0.9, 1)
	})
}

func BenchmarkEvaluate(b *testing.B) {
	g := NewGenerator(1)
	m := g.GenerateMDP(500, 10, 10)
	policy := g.SamplePolicy(m)

	for i := 0; i < b.N; i++ {
		Evaluate(policy, 0.99, 100)
	}
}
