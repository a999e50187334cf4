package qcircuit

import (
	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

/*
Step is one entry of an algorithm trace: the operation performed, the register
state right after it, and why the step is there.
*/
type Step struct {
	Operation     string    `json:"operation"`
	State         string    `json:"state"`
	Probabilities []float64 `json:"probabilities"`
	Rationale     string    `json:"rationale"`
}

/*
Trace is the structured record every algorithm returns for display: ordered
steps, the measured outcomes and a human-readable interpretation. Correct
reports whether the interpretation matches the known ground truth.
*/
type Trace struct {
	Algorithm      AlgorithmID `json:"algorithm"`
	Steps          []Step      `json:"steps"`
	Outcomes       []int       `json:"outcomes"`
	Interpretation string      `json:"interpretation"`
	Correct        bool        `json:"correct"`
}

// tracer runs operations on a register and records a Step after each one.
type tracer struct {
	reg   *Register
	trace Trace
}

func newTracer(id AlgorithmID, reg *Register) *tracer {
	return &tracer{reg: reg, trace: Trace{Algorithm: id}}
}

func (t *tracer) record(operation, rationale string) {
	t.trace.Steps = append(t.trace.Steps, Step{
		Operation:     operation,
		State:         t.reg.String(),
		Probabilities: t.reg.Probabilities(),
		Rationale:     rationale,
	})
}

// gate applies one gate and records it, stopping the algorithm on error.
func (t *tracer) gate(kind GateKind, rationale string, targets ...int) error {
	if err := t.reg.ApplyGate(kind, 0, targets...); err != nil {
		return err
	}
	t.record(operationLabel(kind.String(), targets...), rationale)
	return nil
}

func (t *tracer) operator(name string, m *Matrix, rationale string) error {
	if err := t.reg.ApplyOperator(m); err != nil {
		return err
	}
	t.record(name, rationale)
	return nil
}

// AlgorithmID enumerates the built-in textbook procedures.
type AlgorithmID int

const (
	AlgorithmDeutsch AlgorithmID = iota + 1
	AlgorithmGrover
	AlgorithmBell
)

func (id AlgorithmID) String() string {
	switch id {
	case AlgorithmDeutsch:
		return "deutsch"
	case AlgorithmGrover:
		return "grover"
	case AlgorithmBell:
		return "bell"
	default:
		return "unknown"
	}
}

func (id AlgorithmID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// AlgorithmInfo describes an algorithm for listing.
type AlgorithmInfo struct {
	ID          AlgorithmID
	Name        string
	Qubits      int
	Description string
}

// Algorithms lists the built-in algorithms in display order.
func Algorithms() []AlgorithmInfo {
	return []AlgorithmInfo{
		{AlgorithmDeutsch, "Deutsch", 2, "Decides whether f: {0,1} → {0,1} is constant or balanced with one oracle call"},
		{AlgorithmGrover, "Grover", 2, "Finds a marked item among four with amplitude amplification"},
		{AlgorithmBell, "Bell state", 2, "Prepares one of the four maximally entangled two-qubit states"},
	}
}

/*
Params carries the inputs of every algorithm; each one reads only its own
fields.
*/
type Params struct {
	Oracle     DeutschOracle
	Target     int
	Iterations int
	Bell       BellVariant
}

// RunAlgorithm dispatches to the algorithm named by id and returns its trace.
func RunAlgorithm(id AlgorithmID, params Params, rng RandomSource) (Trace, error) {
	errnie.Info("RunAlgorithm - %s, params %+v", id, params)

	switch id {
	case AlgorithmDeutsch:
		result, err := Deutsch(params.Oracle, rng)
		if err != nil {
			return Trace{}, err
		}
		return result.Trace, nil
	case AlgorithmGrover:
		result, err := Grover(params.Target, params.Iterations, rng)
		if err != nil {
			return Trace{}, err
		}
		return result.Trace, nil
	case AlgorithmBell:
		result, err := Bell(params.Bell, rng)
		if err != nil {
			return Trace{}, err
		}
		return result.Trace, nil
	default:
		return Trace{}, errors.Wrapf(ErrInvalidAlgorithmParameter, "algorithm %d", int(id))
	}
}
