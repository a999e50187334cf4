package qcircuit

import "github.com/pkg/errors"

/*
Sentinel errors returned by the simulation core. Callers match them with
errors.Is; context is attached with errors.Wrapf at the point of failure.
*/
var (
	ErrDimensionMismatch         = errors.New("qcircuit: dimension mismatch")
	ErrDivisionByZero            = errors.New("qcircuit: division by zero")
	ErrZeroVector                = errors.New("qcircuit: zero vector cannot be normalized")
	ErrInvalidQubitCount         = errors.New("qcircuit: invalid qubit count")
	ErrQubitIndexOutOfRange      = errors.New("qcircuit: qubit index out of range")
	ErrInvalidQubitPair          = errors.New("qcircuit: control and target must differ")
	ErrInvalidArity              = errors.New("qcircuit: wrong number of target qubits")
	ErrUnknownGate               = errors.New("qcircuit: unknown gate")
	ErrInvalidAlgorithmParameter = errors.New("qcircuit: invalid algorithm parameter")
	ErrInvalidSnapshot           = errors.New("qcircuit: invalid snapshot")
	ErrNonUnitary                = errors.New("qcircuit: operator is not unitary")
)
