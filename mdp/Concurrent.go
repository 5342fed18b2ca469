package mdp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// EvaluateConcurrent computes the same values as Evaluate, splitting
// the states of each sweep into contiguous chunks which are backed up
// by up to workers goroutines. Every sweep reads only the vector
// produced by the previous sweep, and all chunks of a sweep complete
// before the next sweep begins, so the result is identical to that of
// Evaluate.
//
// The context is checked before each sweep. If it is cancelled,
// EvaluateConcurrent returns the context's error.
func EvaluateConcurrent(ctx context.Context, policy Policy, discount float64,
	iterations, workers int) (*mat.VecDense, error) {
	if workers < 1 {
		return nil, fmt.Errorf("evaluateConcurrent: workers must be "+
			"positive, have %d", workers)
	}
	checkEvaluationArgs(len(policy), iterations)

	q, err := evaluateConcurrent(ctx, policy, discount, iterations, workers)
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(len(policy), q), nil
}

// ExtrapolateConcurrent computes the same QMatrix as Extrapolate,
// running both the policy evaluation and the final backup of all
// actions over up to workers goroutines.
func ExtrapolateConcurrent(ctx context.Context, m MDP, policy Policy,
	discount float64, iterations, workers int) (QMatrix, error) {
	if workers < 1 {
		return nil, fmt.Errorf("extrapolateConcurrent: workers must be "+
			"positive, have %d", workers)
	}
	checkEvaluationArgs(len(policy), iterations)

	v, err := evaluateConcurrent(ctx, policy, discount, iterations, workers)
	if err != nil {
		return nil, err
	}

	q := make(QMatrix, len(m))
	err = inChunks(ctx, len(m), workers, func(start, end int) {
		for s := start; s < end; s++ {
			q[s] = extrapolateState(m[s], v, discount)
		}
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func evaluateConcurrent(ctx context.Context, policy Policy, discount float64,
	iterations, workers int) ([]float64, error) {
	n := len(policy)
	q := make([]float64, n)

	for i := 0; i < iterations; i++ {
		newq := make([]float64, n)
		err := inChunks(ctx, n, workers, func(start, end int) {
			for s := start; s < end; s++ {
				newq[s] = backup(policy[s], q, discount)
			}
		})
		if err != nil {
			return nil, err
		}
		q = newq
	}
	return q, nil
}

// inChunks splits [0, n) into at most workers contiguous chunks and
// calls f on each chunk in its own goroutine, returning once all calls
// have finished. A panic in f is not recovered.
func inChunks(ctx context.Context, n, workers int,
	f func(start, end int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += size {
		start, end := start, start+size
		if end > n {
			end = n
		}
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	return g.Wait()
}
