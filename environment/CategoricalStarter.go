package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as 1-vectors holding a
// state index sampled from a categorical distribution over
// (0, 1, 2, ... N-1).
type CategoricalStarter struct {
	seed uint64
	rand distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter which samples
// state i with probability proportional to weights[i]
func NewCategoricalStarter(weights []float64, seed uint64) (CategoricalStarter, error) {
	if len(weights) == 0 {
		return CategoricalStarter{}, fmt.Errorf("newCategoricalStarter: " +
			"at least one starting state is needed")
	}
	for i, w := range weights {
		if w < 0 {
			return CategoricalStarter{}, fmt.Errorf("newCategoricalStarter: "+
				"weight %v of state %v is negative", w, i)
		}
	}
	if floats.Sum(weights) <= 0 {
		return CategoricalStarter{}, fmt.Errorf("newCategoricalStarter: " +
			"weights must not all be zero")
	}

	source := rand.NewSource(seed)
	return CategoricalStarter{seed, distuv.NewCategorical(weights, source)}, nil
}

// NewUniformCategoricalStarter returns a new CategoricalStarter which
// samples each of the states (0, 1, 2, ... states-1) with equal
// probability
func NewUniformCategoricalStarter(states int, seed uint64) (CategoricalStarter, error) {
	weights := make([]float64, states)
	for i := range weights {
		weights[i] = 1.0 / float64(states)
	}
	return NewCategoricalStarter(weights, seed)
}

// Start returns a starting state vector
func (c CategoricalStarter) Start() *mat.VecDense {
	return mat.NewVecDense(1, []float64{c.rand.Rand()})
}
