package qcircuit

import "math"

/*
ReducedQubit is the state of one qubit of a register with the others traced
out. For a product state the Bloch vector has unit length; entanglement pulls
it inside the sphere.
*/
type ReducedQubit struct {
	Index   int
	P0, P1  float64
	X, Y, Z float64
	Purity  float64
}

// Length is the Bloch vector norm, 1 for a pure reduced state.
func (v ReducedQubit) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Angles returns the Bloch angles of the vector's direction.
func (v ReducedQubit) Angles() (theta, phi float64) {
	length := v.Length()
	if length < DefaultEpsilon {
		return 0, 0
	}

	theta = math.Acos(clamp(v.Z/length, -1, 1))
	if math.Hypot(v.X, v.Y) < DefaultEpsilon {
		return theta, 0
	}

	phi = math.Atan2(v.Y, v.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return theta, phi
}

/*
Qubit rebuilds a lone qubit pointing along the Bloch vector. This is exact only
when Purity is one; for entangled qubits it is the nearest pure direction.
*/
func (v ReducedQubit) Qubit() *Qubit {
	return FromBloch(v.Angles())
}

// reducedDensity returns ρ00, ρ11 and ρ01 for qubit q.
func (r *Register) reducedDensity(q int) (rho00, rho11 float64, rho01 Complex) {
	mask := 1 << q
	for i, amp := range r.amplitudes {
		if i&mask != 0 {
			rho11 += amp.AbsSquared()
			continue
		}
		rho00 += amp.AbsSquared()
		rho01 += amp * r.amplitudes[i|mask].Conj()
	}
	return rho00, rho11, rho01
}

// QubitView traces out every qubit except q.
func (r *Register) QubitView(q int) (ReducedQubit, error) {
	if err := r.checkQubit(q); err != nil {
		return ReducedQubit{}, err
	}

	rho00, rho11, rho01 := r.reducedDensity(q)
	view := ReducedQubit{
		Index: q,
		P0:    rho00,
		P1:    rho11,
		X:     2 * rho01.Re(),
		Y:     -2 * rho01.Im(),
		Z:     rho00 - rho11,
	}
	view.Purity = (1 + view.X*view.X + view.Y*view.Y + view.Z*view.Z) / 2
	return view, nil
}

// reducedEntropy is the von Neumann entropy, in bits, of qubit q's reduced state.
func (r *Register) reducedEntropy(q int) float64 {
	rho00, rho11, rho01 := r.reducedDensity(q)
	gap := math.Sqrt((rho00-rho11)*(rho00-rho11) + 4*rho01.AbsSquared())

	return entropyBits([]float64{
		clamp((1+gap)/2, 0, 1),
		clamp((1-gap)/2, 0, 1),
	})
}

/*
Entanglement returns a value in [0, 1].

For two qubits it is the von Neumann entropy of qubit 0's reduced density
matrix, which is exact for pure states: 0 for product states, 1 for Bell
states. This is not the Shannon entropy of qubit 0's marginal measurement
distribution: |+⟩|+⟩ has a marginal entropy of 1 bit but reports 0 here,
since the off-diagonal coherence shows it is unentangled. For more qubits it
is only a rough witness, the fraction of basis states carrying
non-negligible probability, and says nothing rigorous about entanglement.
A single qubit reports 0.
*/
func (r *Register) Entanglement() float64 {
	switch {
	case r.qubits == 1:
		return 0
	case r.qubits == 2:
		return clamp(r.reducedEntropy(0), 0, 1)
	default:
		occupied := 0
		for _, p := range r.Probabilities() {
			if p > DefaultEpsilon {
				occupied++
			}
		}
		return float64(occupied) / float64(len(r.amplitudes))
	}
}

/*
IsMaximallyEntangled reports whether a two-qubit register has a maximally
mixed reduced state on qubit 0, as every Bell state does.
*/
func IsMaximallyEntangled(r *Register) bool {
	if r.qubits != 2 {
		return false
	}

	const eps = 1e-9
	rho00, rho11, rho01 := r.reducedDensity(0)
	return math.Abs(rho00-0.5) < eps && math.Abs(rho11-0.5) < eps && rho01.Abs() < eps
}
