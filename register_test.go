package qcircuit

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func shouldMatchProbabilities(actual interface{}, expected ...interface{}) string {
	got := actual.([]float64)
	want := expected[0].([]float64)

	if len(got) != len(want) {
		return "length mismatch:\n" + spew.Sdump(got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			return "probabilities differ:\n" + spew.Sdump(got, want)
		}
	}
	return ""
}

func TestNewRegister(t *testing.T) {
	Convey("Given qubit counts", t, func() {
		Convey("Counts outside [1, 20] are rejected", func() {
			for _, n := range []int{0, -1, 21} {
				_, err := NewRegister(n)
				So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)
			}
		})

		Convey("A new register is |00…0⟩", func() {
			reg, err := NewRegister(3)
			So(err, ShouldBeNil)
			So(reg.Dimension(), ShouldEqual, 8)
			So(reg.Probabilities(), shouldMatchProbabilities, []float64{1, 0, 0, 0, 0, 0, 0, 0})
		})

		Convey("Clone does not alias the amplitudes", func() {
			reg, _ := NewRegister(2)
			clone := reg.Clone()
			So(clone.ApplyGate(GateX, 0, 0), ShouldBeNil)

			amp, _ := reg.Amplitude(0)
			So(amp, ShouldEqual, Complex(1))
		})
	})
}

func TestRegisterGates(t *testing.T) {
	Convey("Given a two-qubit register", t, func() {
		reg, err := NewRegister(2)
		So(err, ShouldBeNil)

		Convey("H on qubit 0 then CNOT(0→1) yields Φ+", func() {
			So(reg.ApplyGate(GateH, 0, 0), ShouldBeNil)
			So(reg.ApplyGate(GateCNOT, 0, 0, 1), ShouldBeNil)

			So(reg.Probabilities(), shouldMatchProbabilities, []float64{0.5, 0, 0, 0.5})
			So(reg.Entanglement(), ShouldBeGreaterThan, 0.5)
			So(IsMaximallyEntangled(reg), ShouldBeTrue)
		})

		Convey("X on qubit 1 sets bit 1 of the index", func() {
			So(reg.ApplyGate(GateX, 0, 1), ShouldBeNil)
			amp, _ := reg.Amplitude(2)
			So(amp, ShouldEqual, Complex(1))
		})

		Convey("CNOT respects which qubit is the control", func() {
			So(reg.ApplyGate(GateX, 0, 1), ShouldBeNil)
			So(reg.ApplyGate(GateCNOT, 0, 1, 0), ShouldBeNil)
			So(reg.Probabilities(), shouldMatchProbabilities, []float64{0, 0, 0, 1})
		})

		Convey("SWAP exchanges the qubits", func() {
			So(reg.ApplyGate(GateX, 0, 0), ShouldBeNil)
			So(reg.ApplyGate(GateSWAP, 0, 0, 1), ShouldBeNil)
			So(reg.Probabilities(), shouldMatchProbabilities, []float64{0, 0, 1, 0})
		})

		Convey("Out-of-range and repeated qubits are rejected without changing the state", func() {
			before := reg.Amplitudes()

			So(errors.Is(reg.ApplyGate(GateH, 0, 2), ErrQubitIndexOutOfRange), ShouldBeTrue)
			So(errors.Is(reg.ApplyGate(GateCNOT, 0, 1, 1), ErrInvalidQubitPair), ShouldBeTrue)
			So(errors.Is(reg.ApplyGate(GateCNOT, 0, 0), ErrInvalidArity), ShouldBeTrue)
			So(errors.Is(reg.ApplyGate(GateUnknown, 0, 0), ErrUnknownGate), ShouldBeTrue)
			So(errors.Is(reg.ApplySingleQubitGate(CNOT(), 0), ErrDimensionMismatch), ShouldBeTrue)

			So(reg.Amplitudes(), ShouldResemble, before)
		})

		Convey("Operators that do not preserve the norm are rejected without changing the state", func() {
			So(reg.ApplyGate(GateH, 0, 0), ShouldBeNil)
			before := reg.Amplitudes()

			projector, err := NewMatrix([][]Complex{{1, 0}, {0, 0}})
			So(err, ShouldBeNil)
			So(errors.Is(reg.ApplySingleQubitGate(projector, 0), ErrNonUnitary), ShouldBeTrue)

			doubled := newMatrix(4,
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 1, 1,
				0, 0, 1, 1,
			)
			So(errors.Is(reg.ApplyTwoQubitGate(doubled, 0, 1), ErrNonUnitary), ShouldBeTrue)

			scaled := Identity(4)
			scaled.dense.Set(0, 0, 2)
			scaled.dense.Set(1, 1, 2)
			So(errors.Is(reg.ApplyOperator(scaled), ErrNonUnitary), ShouldBeTrue)
			So(errors.Is(reg.ApplyOperator(Identity(2)), ErrDimensionMismatch), ShouldBeTrue)

			So(reg.Amplitudes(), ShouldResemble, before)
			So(IsNormalized(reg.Amplitudes(), 1e-12), ShouldBeTrue)
		})
	})

	Convey("Given a three-qubit register", t, func() {
		reg, _ := NewRegister(3)

		Convey("A two-qubit gate leaves the third qubit untouched", func() {
			So(reg.ApplyGate(GateX, 0, 1), ShouldBeNil)
			So(reg.ApplyGate(GateH, 0, 2), ShouldBeNil)
			So(reg.ApplyGate(GateCNOT, 0, 1, 0), ShouldBeNil)

			// q0 = 1, q1 = 1, q2 in |+⟩: indices 3 and 7.
			So(reg.Probabilities(), shouldMatchProbabilities, []float64{0, 0, 0, 0.5, 0, 0, 0, 0.5})
		})

		Convey("Single-qubit gates act as I⊗M⊗I", func() {
			So(reg.ApplyGate(GateRy, math.Pi/3, 1), ShouldBeNil)

			op := Identity(2).Tensor(RotationY(math.Pi / 3)).Tensor(Identity(2))
			want, _ := NewRegister(3)
			So(want.ApplyOperator(op), ShouldBeNil)

			f, err := reg.Fidelity(want)
			So(err, ShouldBeNil)
			So(f, ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("Gates preserve the norm", func() {
			for q := 0; q < 3; q++ {
				So(reg.ApplyGate(GateH, 0, q), ShouldBeNil)
				So(reg.ApplyGate(GateT, 0, q), ShouldBeNil)
			}
			So(reg.ApplyGate(GateCH, 0, 0, 2), ShouldBeNil)
			So(reg.ApplyGate(GateRx, 0.7, 1), ShouldBeNil)
			So(IsNormalized(reg.Amplitudes(), 1e-12), ShouldBeTrue)
		})
	})
}

func TestRegisterMeasurement(t *testing.T) {
	Convey("Given Φ+", t, func() {
		reg, _ := BellState(PhiPlus)

		Convey("MeasureAll collapses onto the sampled index", func() {
			index := reg.MeasureAll(NewSequenceSource(0.7))
			So(index, ShouldEqual, 3)
			So(reg.Probabilities(), shouldMatchProbabilities, []float64{0, 0, 0, 1})
		})

		Convey("MeasureAll always returns a valid index onto a basis state", func() {
			rng := NewRandomSource(11)
			for i := 0; i < 50; i++ {
				r := reg.Clone()
				index := r.MeasureAll(rng)
				So(index == 0 || index == 3, ShouldBeTrue)
				So(r.Probabilities()[index], ShouldEqual, 1.0)
			}
		})

		Convey("Measuring one qubit fixes the other", func() {
			outcome, err := reg.MeasureQubit(0, NewSequenceSource(0.9))
			So(err, ShouldBeNil)
			So(outcome, ShouldEqual, 1)

			p, _ := reg.MarginalProbabilities(1)
			So(p[1], ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("An out-of-range qubit is rejected", func() {
			_, err := reg.MeasureQubit(5, NewSequenceSource(0.5))
			So(errors.Is(err, ErrQubitIndexOutOfRange), ShouldBeTrue)
		})
	})

	Convey("Given q0 in |+⟩ and q1 in |+i⟩", t, func() {
		reg, _ := NewRegister(2)
		So(reg.ApplyGate(GateH, 0, 0), ShouldBeNil)
		So(reg.ApplyGate(GateH, 0, 1), ShouldBeNil)
		So(reg.ApplyGate(GateS, 0, 1), ShouldBeNil)

		Convey("Measuring q0 keeps q1's relative phase", func() {
			outcome, err := reg.MeasureQubit(0, NewSequenceSource(0.2))
			So(err, ShouldBeNil)
			So(outcome, ShouldEqual, 0)

			a0, _ := reg.Amplitude(0)
			a2, _ := reg.Amplitude(2)
			So(a0.Equal(NewComplex(1/math.Sqrt2, 0), 1e-12), ShouldBeTrue)
			So(a2.Equal(NewComplex(0, 1/math.Sqrt2), 1e-12), ShouldBeTrue)
			So(IsNormalized(reg.Amplitudes(), 1e-12), ShouldBeTrue)
		})
	})

	Convey("Given a sample past a distribution that sums slightly under one", t, func() {
		So(collapse([]float64{0.5, 0.49999999, 0}, 0.999999999), ShouldEqual, 1)
	})
}

func TestRegisterAmplitudes(t *testing.T) {
	Convey("Given SetAmplitudes", t, func() {
		reg, _ := NewRegister(1)

		Convey("Input is normalized", func() {
			So(reg.SetAmplitudes([]Complex{1, 1}), ShouldBeNil)
			So(reg.Probabilities(), shouldMatchProbabilities, []float64{0.5, 0.5})
		})

		Convey("A zero vector resets to |0⟩", func() {
			So(reg.ApplyGate(GateX, 0, 0), ShouldBeNil)
			So(reg.SetAmplitudes([]Complex{0, 0}), ShouldBeNil)
			So(reg.Probabilities(), shouldMatchProbabilities, []float64{1, 0})
		})

		Convey("A wrong length is rejected", func() {
			So(errors.Is(reg.SetAmplitudes([]Complex{1}), ErrDimensionMismatch), ShouldBeTrue)
		})
	})

	Convey("Given the display string", t, func() {
		reg, _ := BellState(PhiPlus)
		So(reg.String(), ShouldEqual, "(0.7071)|00⟩ + (0.7071)|11⟩")
		So(BasisLabel(2, 3), ShouldEqual, "010")
	})
}
