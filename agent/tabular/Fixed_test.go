package tabular

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/mdpeval/timestep"
)

func TestFixed(t *testing.T) {
	actions := []int{2, 0, 1}
	p, err := NewFixed(actions)
	if err != nil {
		t.Fatal(err)
	}
	actions[0] = 5

	want := []int{2, 0, 1}
	for s := range want {
		step := ts.New(ts.Mid, 0, 1, mat.NewVecDense(1, []float64{float64(s)}), 1)
		got := p.SelectAction(step)
		if got.Len() != 1 || int(got.AtVec(0)) != want[s] {
			t.Errorf("state %v: expected action %v, got %v", s, want[s],
				got.RawVector().Data)
		}
		if p.Action(s) != want[s] {
			t.Errorf("state %v: expected action %v, got %v", s, want[s],
				p.Action(s))
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown state")
		}
	}()
	p.SelectAction(ts.New(ts.Mid, 0, 1, mat.NewVecDense(1, []float64{3}), 1))
}

func TestNewFixedErrors(t *testing.T) {
	if _, err := NewFixed(nil); err == nil {
		t.Error("expected error for empty policy")
	}
	if _, err := NewFixed([]int{0, -1}); err == nil {
		t.Error("expected error for negative action")
	}
}
