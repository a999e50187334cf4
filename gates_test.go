package qcircuit

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatrix(t *testing.T) {
	Convey("Given a 2x2 matrix", t, func() {
		m := PauliX()

		Convey("Applying it to a vector of the wrong length fails", func() {
			_, err := m.Apply([]Complex{1, 0, 0, 0})
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("Applying it to |0⟩ gives |1⟩", func() {
			v, err := m.Apply([]Complex{1, 0})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []Complex{0, 1})
		})

		Convey("The tensor product follows the Kronecker layout", func() {
			k := Identity(2).Tensor(PauliX())
			So(k.Size(), ShouldEqual, 4)
			So(k.At(0, 1), ShouldEqual, Complex(1))
			So(k.At(2, 3), ShouldEqual, Complex(1))
			So(k.At(0, 2), ShouldEqual, Complex(0))
		})

		Convey("Multiplying a Pauli by itself gives the identity", func() {
			p, err := PauliY().Mul(PauliY())
			So(err, ShouldBeNil)
			So(p.Equal(Identity(2), DefaultEpsilon), ShouldBeTrue)

			_, err = m.Mul(CNOT())
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("NewMatrix rejects ragged rows", func() {
			_, err := NewMatrix([][]Complex{{1, 0}, {0}})
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)

			_, err = NewMatrix(nil)
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("Identity panics with a descriptive error below size one", func() {
			So(func() { Identity(-2) }, ShouldPanic)

			var recovered interface{}
			func() {
				defer func() { recovered = recover() }()
				Identity(0)
			}()
			err, ok := recovered.(error)
			So(ok, ShouldBeTrue)
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})
	})
}

func TestGateCatalog(t *testing.T) {
	Convey("Given the gate catalog", t, func() {
		catalog := NewCatalog()

		Convey("Every known gate is unitary", func() {
			for _, info := range catalog.Gates() {
				m, err := info.Kind.Matrix(math.Pi / 3)
				So(err, ShouldBeNil)
				So(m.IsUnitary(1e-12), ShouldBeTrue)
				So(m.Size(), ShouldEqual, 1<<info.Arity)
			}
		})

		Convey("Lookup is case-insensitive and knows aliases", func() {
			So(catalog.Lookup("h").Kind, ShouldEqual, GateH)
			So(catalog.Lookup("cx").Kind, ShouldEqual, GateCNOT)
			So(catalog.Lookup(" SWAP ").Arity, ShouldEqual, 2)
		})

		Convey("Unknown names resolve to the sentinel descriptor", func() {
			info := catalog.Lookup("frobnicate")
			So(info.Kind, ShouldEqual, GateUnknown)
			So(info.Symbol, ShouldEqual, "?")
			So(info.Arity, ShouldEqual, 0)

			_, err := catalog.Matrix("frobnicate", 0)
			So(errors.Is(err, ErrUnknownGate), ShouldBeTrue)
		})

		Convey("Gate kinds round-trip through their names", func() {
			for _, info := range catalog.Gates() {
				text, err := info.Kind.MarshalText()
				So(err, ShouldBeNil)

				var k GateKind
				So(k.UnmarshalText(text), ShouldBeNil)
				So(k, ShouldEqual, info.Kind)
			}
		})

		Convey("Gate names decode without consulting a catalog", func() {
			kind, err := ParseGateKind(" cnot ")
			So(err, ShouldBeNil)
			So(kind, ShouldEqual, GateCNOT)

			var k GateKind
			So(k.UnmarshalText([]byte("sdg")), ShouldBeNil)
			So(k, ShouldEqual, GateSdg)
			So(errors.Is(k.UnmarshalText([]byte("unknown")), ErrUnknownGate), ShouldBeTrue)
			So(k, ShouldEqual, GateSdg)
		})

		Convey("Rotations by π match the Paulis up to a global phase", func() {
			rx := RotationX(math.Pi)
			So(rx.At(0, 1).ApproxEqual(NewComplex(0, -1)), ShouldBeTrue)
			rz := RotationZ(math.Pi)
			So(rz.At(0, 0).ApproxEqual(NewComplex(0, -1)), ShouldBeTrue)
			So(rz.At(1, 1).ApproxEqual(NewComplex(0, 1)), ShouldBeTrue)
		})

		Convey("T squared is S", func() {
			tt, err := PhaseT().Mul(PhaseT())
			So(err, ShouldBeNil)
			So(tt.Equal(PhaseS(), 1e-12), ShouldBeTrue)
		})
	})
}
