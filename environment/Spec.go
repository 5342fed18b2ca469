package environment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an acion, an observation, a discount, or a reward
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	case Discount:
		return "Discount"
	case Reward:
		return "Reward"
	}
	return fmt.Sprintf("SpecType(%d)", int(s))
}

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec tells the type, shape, and bounds of the actions, observations,
// discounts, or rewards of an environment. Bounds are inclusive.
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec constructs a new environment specification. The shape, lower
// bound, and upper bound must all have the same length.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() || shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("newSpec: shape length %v must match bounds "+
			"lengths %v and %v", shape.Len(), lowerBound.Len(),
			upperBound.Len()))
	}
	for i := 0; i < shape.Len(); i++ {
		if lowerBound.AtVec(i) > upperBound.AtVec(i) {
			panic(fmt.Sprintf("newSpec: lower bound %v exceeds upper "+
				"bound %v at %d", lowerBound.AtVec(i), upperBound.AtVec(i), i))
		}
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// NewScalarSpec constructs a specification of a single value bounded
// by [lower, upper]
func NewScalarSpec(t SpecType, lower, upper float64,
	cardinality Cardinality) Spec {
	return NewSpec(
		mat.NewVecDense(1, nil),
		t,
		mat.NewVecDense(1, []float64{lower}),
		mat.NewVecDense(1, []float64{upper}),
		cardinality,
	)
}

// Contains returns whether v has the shape of the Spec and lies within
// its bounds. Values of Discrete Specs must also be integers.
func (s Spec) Contains(v mat.Vector) bool {
	if v.Len() != s.Shape.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		x := v.AtVec(i)
		if x < s.LowerBound.AtVec(i) || x > s.UpperBound.AtVec(i) {
			return false
		}
		if s.Cardinality == Discrete && x != math.Trunc(x) {
			return false
		}
	}
	return true
}

func (s Spec) String() string {
	return fmt.Sprintf("%v Spec | %v | [%v, %v]", s.Type, s.Cardinality,
		mat.Formatted(s.LowerBound.T(), mat.Squeeze()),
		mat.Formatted(s.UpperBound.T(), mat.Squeeze()))
}
