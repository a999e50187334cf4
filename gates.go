package qcircuit

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

var invSqrt2 = 1 / math.Sqrt2

// Fixed single-qubit generators.

func IdentityGate() *Matrix { return Identity(2) }

func PauliX() *Matrix { return newMatrix(2, 0, 1, 1, 0) }

func PauliY() *Matrix { return newMatrix(2, 0, NewComplex(0, -1), NewComplex(0, 1), 0) }

func PauliZ() *Matrix { return newMatrix(2, 1, 0, 0, -1) }

func Hadamard() *Matrix {
	h := NewComplex(invSqrt2, 0)
	return newMatrix(2, h, h, h, -h)
}

func PhaseS() *Matrix { return newMatrix(2, 1, 0, 0, NewComplex(0, 1)) }

func PhaseSdg() *Matrix { return newMatrix(2, 1, 0, 0, NewComplex(0, -1)) }

func PhaseT() *Matrix { return newMatrix(2, 1, 0, 0, NewComplex(invSqrt2, invSqrt2)) }

func PhaseTdg() *Matrix { return newMatrix(2, 1, 0, 0, NewComplex(invSqrt2, -invSqrt2)) }

// Parametric single-qubit generators.

func RotationX(theta float64) *Matrix {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return newMatrix(2,
		NewComplex(c, 0), NewComplex(0, -s),
		NewComplex(0, -s), NewComplex(c, 0),
	)
}

func RotationY(theta float64) *Matrix {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	return newMatrix(2,
		NewComplex(c, 0), NewComplex(-s, 0),
		NewComplex(s, 0), NewComplex(c, 0),
	)
}

func RotationZ(theta float64) *Matrix {
	return newMatrix(2,
		FromPolar(1, -theta/2), 0,
		0, FromPolar(1, theta/2),
	)
}

// PhaseShift is diag(1, e^(iθ)).
func PhaseShift(theta float64) *Matrix {
	return newMatrix(2, 1, 0, 0, FromPolar(1, theta))
}

/*
Two-qubit generators. Rows and columns are ordered by the sub-index
(control bit << 1) | target bit, i.e. |00⟩, |01⟩, |10⟩, |11⟩ with the control
written first.
*/

func CNOT() *Matrix {
	return newMatrix(4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	)
}

func ControlledZ() *Matrix {
	return newMatrix(4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	)
}

func Swap() *Matrix {
	return newMatrix(4,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	)
}

func ControlledH() *Matrix {
	h := NewComplex(invSqrt2, 0)
	return newMatrix(4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, h, h,
		0, 0, h, -h,
	)
}

// GateKind enumerates every gate the simulator knows how to apply.
type GateKind int

const (
	GateUnknown GateKind = iota
	GateI
	GateX
	GateY
	GateZ
	GateH
	GateS
	GateSdg
	GateT
	GateTdg
	GateRx
	GateRy
	GateRz
	GatePhase
	GateCNOT
	GateCZ
	GateSWAP
	GateCH
)

// gateKinds lists the known kinds in catalog display order.
func gateKinds() []GateKind {
	return []GateKind{
		GateI, GateX, GateY, GateZ, GateH, GateS, GateSdg, GateT, GateTdg,
		GateRx, GateRy, GateRz, GatePhase,
		GateCNOT, GateCZ, GateSWAP, GateCH,
	}
}

/*
GateInfo describes a gate for lookup and display. The unknown kind resolves to
a descriptor too, with Arity 0, so UI code never has to handle a failed lookup.
*/
type GateInfo struct {
	Kind        GateKind
	Name        string
	Symbol      string
	Arity       int
	Parametric  bool
	Description string
}

// Info returns the descriptor for k.
func (k GateKind) Info() GateInfo {
	switch k {
	case GateI:
		return GateInfo{k, "I", "I", 1, false, "Identity, leaves the qubit unchanged"}
	case GateX:
		return GateInfo{k, "X", "X", 1, false, "Pauli-X, bit flip"}
	case GateY:
		return GateInfo{k, "Y", "Y", 1, false, "Pauli-Y, bit and phase flip"}
	case GateZ:
		return GateInfo{k, "Z", "Z", 1, false, "Pauli-Z, phase flip"}
	case GateH:
		return GateInfo{k, "H", "H", 1, false, "Hadamard, creates equal superposition"}
	case GateS:
		return GateInfo{k, "S", "S", 1, false, "Phase gate, quarter turn about Z"}
	case GateSdg:
		return GateInfo{k, "Sdg", "S†", 1, false, "Inverse phase gate"}
	case GateT:
		return GateInfo{k, "T", "T", 1, false, "π/8 gate, eighth turn about Z"}
	case GateTdg:
		return GateInfo{k, "Tdg", "T†", 1, false, "Inverse π/8 gate"}
	case GateRx:
		return GateInfo{k, "Rx", "Rx", 1, true, "Rotation about the X axis"}
	case GateRy:
		return GateInfo{k, "Ry", "Ry", 1, true, "Rotation about the Y axis"}
	case GateRz:
		return GateInfo{k, "Rz", "Rz", 1, true, "Rotation about the Z axis"}
	case GatePhase:
		return GateInfo{k, "P", "P", 1, true, "Phase shift on |1⟩"}
	case GateCNOT:
		return GateInfo{k, "CNOT", "⊕", 2, false, "Controlled NOT, flips target when control is |1⟩"}
	case GateCZ:
		return GateInfo{k, "CZ", "CZ", 2, false, "Controlled Z, negates |11⟩"}
	case GateSWAP:
		return GateInfo{k, "SWAP", "×", 2, false, "Exchanges two qubits"}
	case GateCH:
		return GateInfo{k, "CH", "CH", 2, false, "Controlled Hadamard"}
	default:
		return GateInfo{GateUnknown, "unknown", "?", 0, false, "Unknown gate"}
	}
}

func (k GateKind) String() string { return k.Info().Name }

// Arity is the number of qubits the gate acts on, 0 for unknown kinds.
func (k GateKind) Arity() int { return k.Info().Arity }

/*
Matrix builds the operator for k. Angle is ignored by fixed gates. Unknown
kinds fail with ErrUnknownGate since there is nothing to apply.
*/
func (k GateKind) Matrix(angle float64) (*Matrix, error) {
	switch k {
	case GateI:
		return IdentityGate(), nil
	case GateX:
		return PauliX(), nil
	case GateY:
		return PauliY(), nil
	case GateZ:
		return PauliZ(), nil
	case GateH:
		return Hadamard(), nil
	case GateS:
		return PhaseS(), nil
	case GateSdg:
		return PhaseSdg(), nil
	case GateT:
		return PhaseT(), nil
	case GateTdg:
		return PhaseTdg(), nil
	case GateRx:
		return RotationX(angle), nil
	case GateRy:
		return RotationY(angle), nil
	case GateRz:
		return RotationZ(angle), nil
	case GatePhase:
		return PhaseShift(angle), nil
	case GateCNOT:
		return CNOT(), nil
	case GateCZ:
		return ControlledZ(), nil
	case GateSWAP:
		return Swap(), nil
	case GateCH:
		return ControlledH(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownGate, "gate kind %d", int(k))
	}
}

func (k GateKind) MarshalText() ([]byte, error) {
	if k == GateUnknown {
		return nil, errors.Wrap(ErrUnknownGate, "cannot encode unknown gate")
	}
	return []byte(k.String()), nil
}

// ParseGateKind matches a display name case-insensitively, without aliases.
func ParseGateKind(name string) (GateKind, error) {
	name = strings.TrimSpace(name)
	for _, k := range gateKinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return GateUnknown, errors.Wrapf(ErrUnknownGate, "%q", name)
}

func (k *GateKind) UnmarshalText(text []byte) error {
	kind, err := ParseGateKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
