package qcircuit

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

/*
Matrix is a dense square operator over complex amplitudes. Gate generators
build a fresh one per call, so a Matrix is never shared mutable state.
*/
type Matrix struct {
	dense *mat.CDense
}

/*
newMatrix builds an n×n matrix from row-major entries. A size below one is a
programming error and panics with ErrDimensionMismatch rather than inside gonum.
*/
func newMatrix(n int, entries ...Complex) *Matrix {
	if n < 1 {
		panic(errors.Wrapf(ErrDimensionMismatch, "matrix size %d", n))
	}

	data := make([]complex128, n*n)
	for i, e := range entries {
		data[i] = complex128(e)
	}
	return &Matrix{dense: mat.NewCDense(n, n, data)}
}

// NewMatrix builds a matrix from rows, which must form a non-empty square.
func NewMatrix(rows [][]Complex) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.Wrap(ErrDimensionMismatch, "empty matrix")
	}

	entries := make([]Complex, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.Wrapf(ErrDimensionMismatch, "row %d has %d columns, want %d", i, len(row), n)
		}
		entries = append(entries, row...)
	}

	return newMatrix(n, entries...), nil
}

// Identity returns the n×n identity. n must be at least 1; smaller sizes panic.
func Identity(n int) *Matrix {
	m := newMatrix(n)
	for i := 0; i < n; i++ {
		m.dense.Set(i, i, 1)
	}
	return m
}

// Size is the number of rows (and columns).
func (m *Matrix) Size() int {
	r, _ := m.dense.Dims()
	return r
}

func (m *Matrix) At(i, j int) Complex {
	return Complex(m.dense.At(i, j))
}

// Apply returns M·v. The vector length must equal the column count.
func (m *Matrix) Apply(v []Complex) ([]Complex, error) {
	r, c := m.dense.Dims()
	if len(v) != c {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%dx%d matrix applied to %d components", r, c, len(v))
	}

	out := make([]Complex, r)
	for i := 0; i < r; i++ {
		var sum complex128
		for j := 0; j < c; j++ {
			sum += m.dense.At(i, j) * complex128(v[j])
		}
		out[i] = Complex(sum)
	}
	return out, nil
}

/*
Tensor returns the Kronecker product m ⊗ o. Entry (i·p+k, j·p+l) is
m[i][j]·o[k][l] where p is the size of o.
*/
func (m *Matrix) Tensor(o *Matrix) *Matrix {
	n, p := m.Size(), o.Size()
	out := newMatrix(n * p)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := m.dense.At(i, j)
			if a == 0 {
				continue
			}
			for k := 0; k < p; k++ {
				for l := 0; l < p; l++ {
					out.dense.Set(i*p+k, j*p+l, a*o.dense.At(k, l))
				}
			}
		}
	}
	return out
}

// Mul returns the product m·o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	n := m.Size()
	if o.Size() != n {
		return nil, errors.Wrapf(ErrDimensionMismatch, "multiplying %dx%d by %dx%d", n, n, o.Size(), o.Size())
	}

	out := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum complex128
			for k := 0; k < n; k++ {
				sum += m.dense.At(i, k) * o.dense.At(k, j)
			}
			out.dense.Set(i, j, sum)
		}
	}
	return out, nil
}

// Dagger returns the conjugate transpose.
func (m *Matrix) Dagger() *Matrix {
	n := m.Size()
	out := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.dense.Set(j, i, complex128(m.At(i, j).Conj()))
		}
	}
	return out
}

// IsUnitary reports whether M†M equals the identity within eps.
func (m *Matrix) IsUnitary(eps float64) bool {
	product, err := m.Dagger().Mul(m)
	if err != nil {
		return false
	}
	return product.Equal(Identity(m.Size()), eps)
}

// Equal compares entries within eps.
func (m *Matrix) Equal(o *Matrix, eps float64) bool {
	n := m.Size()
	if o.Size() != n {
		return false
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !m.At(i, j).Equal(o.At(i, j), eps) {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) String() string {
	var b strings.Builder
	n := m.Size()
	for i := 0; i < n; i++ {
		cells := make([]string, n)
		for j := 0; j < n; j++ {
			cells[j] = m.At(i, j).String()
		}
		fmt.Fprintf(&b, "[%s]\n", strings.Join(cells, " "))
	}
	return b.String()
}
