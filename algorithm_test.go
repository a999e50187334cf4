package qcircuit

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDeutsch(t *testing.T) {
	Convey("Given each oracle", t, func() {
		rng := NewRandomSource(99)

		for _, oracle := range []DeutschOracle{ConstantZero, ConstantOne, BalancedIdentity, BalancedNot} {
			want := "balanced"
			if oracle.IsConstant() {
				want = "constant"
			}

			Convey("The "+oracle.String()+" oracle is classified as "+want+" on every run", func() {
				for run := 0; run < 25; run++ {
					result, err := Deutsch(oracle, rng)
					So(err, ShouldBeNil)
					So(result.Verdict, ShouldEqual, want)
					So(result.Correct, ShouldBeTrue)
					So(result.Interpretation, ShouldEqual, want)
				}
			})
		}

		Convey("The trace records every step in order", func() {
			result, err := Deutsch(BalancedNot, rng)
			So(err, ShouldBeNil)

			ops := make([]string, len(result.Steps))
			for i, s := range result.Steps {
				ops[i] = s.Operation
			}
			So(ops, ShouldResemble, []string{
				"init |0⟩|0⟩", "X(q1)", "H⊗H", "X(q0)", "CNOT(q0→q1)", "X(q0)", "H(q0)", "measure(q0)",
			})
			So(result.Outcomes, ShouldResemble, []int{1})
		})

		Convey("An unknown oracle fails fast", func() {
			_, err := Deutsch(DeutschOracle(9), rng)
			So(errors.Is(err, ErrInvalidAlgorithmParameter), ShouldBeTrue)

			_, err = ParseDeutschOracle("sometimes")
			So(errors.Is(err, ErrInvalidAlgorithmParameter), ShouldBeTrue)
		})

		Convey("Every oracle matrix is unitary", func() {
			for _, oracle := range []DeutschOracle{ConstantZero, ConstantOne, BalancedIdentity, BalancedNot} {
				m, err := oracle.Matrix()
				So(err, ShouldBeNil)
				So(m.IsUnitary(0), ShouldBeTrue)
			}
		})
	})
}

func TestGrover(t *testing.T) {
	Convey("Given a search for index 2 with one iteration", t, func() {
		result, err := Grover(2, 1, NewRandomSource(5))
		So(err, ShouldBeNil)

		Convey("The target beats uniform guessing", func() {
			So(result.TargetProbability, ShouldBeGreaterThan, 0.25)
			So(result.TargetProbability, ShouldAlmostEqual, 1, 1e-9)
		})

		Convey("The measurement finds the target", func() {
			So(result.Measured, ShouldEqual, 2)
			So(result.Found, ShouldBeTrue)
			So(result.Correct, ShouldBeTrue)
		})
	})

	Convey("Given the default iteration count", t, func() {
		So(GroverIterations(4), ShouldEqual, 1)

		for target := 0; target < 4; target++ {
			result, err := Grover(target, 0, NewRandomSource(uint64(target+1)))
			So(err, ShouldBeNil)
			So(result.Iterations, ShouldEqual, 1)
			So(result.Measured, ShouldEqual, target)
		}
	})

	Convey("Given invalid parameters", t, func() {
		for _, target := range []int{-1, 4} {
			_, err := Grover(target, 1, NewRandomSource(1))
			So(errors.Is(err, ErrInvalidAlgorithmParameter), ShouldBeTrue)
		}
		_, err := Grover(1, -2, NewRandomSource(1))
		So(errors.Is(err, ErrInvalidAlgorithmParameter), ShouldBeTrue)
	})
}

func TestBell(t *testing.T) {
	Convey("Given each Bell variant", t, func() {
		rng := NewRandomSource(13)

		for _, v := range []BellVariant{PhiPlus, PhiMinus, PsiPlus, PsiMinus} {
			Convey("The prepared "+v.String()+" state is the closed-form one", func() {
				result, err := Bell(v, rng)
				So(err, ShouldBeNil)
				So(result.MaximallyEntangled, ShouldBeTrue)

				want, _ := BellState(v)
				f, err := result.State.Fidelity(want)
				So(err, ShouldBeNil)
				So(f, ShouldAlmostEqual, 1, 1e-12)
			})
		}

		Convey("Φ outcomes agree and Ψ outcomes disagree", func() {
			for i := 0; i < 20; i++ {
				phi, _ := Bell(PhiPlus, rng)
				So(phi.Outcomes[0], ShouldEqual, phi.Outcomes[1])

				psi, _ := Bell(PsiPlus, rng)
				So(psi.Outcomes[0], ShouldNotEqual, psi.Outcomes[1])
			}
		})

		Convey("Φ+ has exact probabilities", func() {
			result, _ := Bell(PhiPlus, rng)
			So(result.State.Probabilities(), shouldMatchProbabilities, []float64{0.5, 0, 0, 0.5})
		})

		Convey("BellFromBits rejects non-binary bits", func() {
			_, err := BellFromBits(2, 0, rng)
			So(errors.Is(err, ErrInvalidAlgorithmParameter), ShouldBeTrue)

			result, err := BellFromBits(1, 1, rng)
			So(err, ShouldBeNil)
			So(result.Variant, ShouldEqual, PsiMinus)
		})
	})
}

func TestRunAlgorithm(t *testing.T) {
	Convey("Given the algorithm catalog", t, func() {
		So(Algorithms(), ShouldHaveLength, 3)

		Convey("Dispatch reaches every algorithm", func() {
			rng := NewRandomSource(21)

			trace, err := RunAlgorithm(AlgorithmDeutsch, Params{Oracle: BalancedIdentity}, rng)
			So(err, ShouldBeNil)
			So(trace.Interpretation, ShouldEqual, "balanced")

			trace, err = RunAlgorithm(AlgorithmGrover, Params{Target: 3}, rng)
			So(err, ShouldBeNil)
			So(trace.Outcomes, ShouldResemble, []int{3})

			trace, err = RunAlgorithm(AlgorithmBell, Params{Bell: PhiMinus}, rng)
			So(err, ShouldBeNil)
			So(trace.Correct, ShouldBeTrue)
		})

		Convey("An unknown algorithm is rejected", func() {
			_, err := RunAlgorithm(AlgorithmID(0), Params{}, NewRandomSource(1))
			So(errors.Is(err, ErrInvalidAlgorithmParameter), ShouldBeTrue)
		})
	})
}
