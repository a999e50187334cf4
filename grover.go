package qcircuit

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

const groverQubits = 2

// GroverIterations is the optimal iteration count ⌊π/4·√N⌋ for N items.
func GroverIterations(n int) int {
	return int(math.Floor(math.Pi / 4 * math.Sqrt(float64(n))))
}

// GroverResult is the trace plus the search outcome.
type GroverResult struct {
	Trace
	Target            int
	Iterations        int
	Measured          int
	TargetProbability float64
	Found             bool
}

// groverOracle negates the amplitude of target.
func groverOracle(dimension, target int) *Matrix {
	m := Identity(dimension)
	m.dense.Set(target, target, -1)
	return m
}

/*
Grover searches the four basis states of a two-qubit register for target.
Iterations of zero selects the optimal count; each iteration applies the phase
oracle and the diffuser H⊗H · (negate |00⟩) · H⊗H.
*/
func Grover(target, iterations int, rng RandomSource) (*GroverResult, error) {
	dimension := 1 << groverQubits
	if target < 0 || target >= dimension {
		return nil, errors.Wrapf(ErrInvalidAlgorithmParameter, "target %d not in [0, %d)", target, dimension)
	}
	if iterations < 0 {
		return nil, errors.Wrapf(ErrInvalidAlgorithmParameter, "iterations %d is negative", iterations)
	}
	if iterations == 0 {
		iterations = GroverIterations(dimension)
	}

	reg, err := NewRegister(groverQubits)
	if err != nil {
		return nil, err
	}

	t := newTracer(AlgorithmGrover, reg)
	t.record("init |00⟩", "Search register starts in |00⟩")

	hh := Hadamard().Tensor(Hadamard())
	if err := t.operator("H⊗H", hh, "Uniform superposition over all four items"); err != nil {
		return nil, err
	}

	oracle := groverOracle(dimension, target)
	reflectZero := groverOracle(dimension, 0)

	for i := 1; i <= iterations; i++ {
		if err := t.operator(
			fmt.Sprintf("oracle #%d", i), oracle,
			fmt.Sprintf("Mark |%s⟩ by flipping its sign", BasisLabel(target, groverQubits)),
		); err != nil {
			return nil, err
		}

		for _, s := range []struct {
			name string
			m    *Matrix
			why  string
		}{
			{"H⊗H", hh, "Diffuser: leave the computational basis"},
			{"negate |00⟩", reflectZero, "Diffuser: reflect about |00⟩"},
			{"H⊗H", hh, "Diffuser: return, completing inversion about the mean"},
		} {
			if err := t.operator(fmt.Sprintf("%s #%d", s.name, i), s.m, s.why); err != nil {
				return nil, err
			}
		}
	}

	targetProbability := reg.Probabilities()[target]
	measured := reg.MeasureAll(rng)
	t.record("measure all", "Read out the amplified index")

	found := measured == target
	t.trace.Outcomes = []int{measured}
	t.trace.Correct = found
	t.trace.Interpretation = fmt.Sprintf(
		"measured |%s⟩, target |%s⟩ had probability %.4f",
		BasisLabel(measured, groverQubits), BasisLabel(target, groverQubits), targetProbability,
	)

	return &GroverResult{
		Trace:             t.trace,
		Target:            target,
		Iterations:        iterations,
		Measured:          measured,
		TargetProbability: targetProbability,
		Found:             found,
	}, nil
}
