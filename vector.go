package qcircuit

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// probabilities returns |v_i|² for every component.
func probabilities(v []Complex) []float64 {
	probs := make([]float64, len(v))
	for i, c := range v {
		probs[i] = c.AbsSquared()
	}
	return probs
}

// Norm is the Euclidean length of v.
func Norm(v []Complex) float64 {
	if len(v) == 0 {
		return 0
	}
	return math.Sqrt(floats.Sum(probabilities(v)))
}

// IsNormalized reports whether Σ|v_i|² is within eps of one.
func IsNormalized(v []Complex, eps float64) bool {
	if len(v) == 0 {
		return false
	}
	return math.Abs(floats.Sum(probabilities(v))-1) <= eps
}

/*
Normalize returns a unit-length copy of v. It fails with ErrZeroVector when the
norm is too small to divide by.
*/
func Normalize(v []Complex) ([]Complex, error) {
	norm := Norm(v)
	if norm < divisionEpsilon {
		return nil, errors.Wrapf(ErrZeroVector, "norm %g over %d components", norm, len(v))
	}

	out := make([]Complex, len(v))
	for i, c := range v {
		out[i] = c.Scale(1 / norm)
	}
	return out, nil
}

// InnerProduct computes ⟨a|b⟩ = Σ conj(a_i)·b_i.
func InnerProduct(a, b []Complex) (Complex, error) {
	if len(a) != len(b) {
		return 0, errors.Wrapf(ErrDimensionMismatch, "inner product of %d and %d components", len(a), len(b))
	}

	var sum Complex
	for i := range a {
		sum += a[i].Conj() * b[i]
	}
	return sum, nil
}

/*
TensorProduct returns a ⊗ b. The result is row-major in a's index: component
i·len(b)+j holds a_i·b_j.
*/
func TensorProduct(a, b []Complex) []Complex {
	out := make([]Complex, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, x*y)
		}
	}
	return out
}
