package qcircuit

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Operation is one gate placed on specific qubits.
type Operation struct {
	Gate    GateKind `json:"gate"`
	Targets []int    `json:"targets"`
	Angle   float64  `json:"angle,omitempty"`
}

func (op Operation) String() string {
	label := operationLabel(op.Gate.String(), op.Targets...)
	if op.Gate.Info().Parametric {
		return fmt.Sprintf("%s[%.4f]", label, op.Angle)
	}
	return label
}

// operationLabel renders "H(q0)" or "CNOT(q0→q1)".
func operationLabel(name string, targets ...int) string {
	qubits := make([]string, len(targets))
	for i, t := range targets {
		qubits[i] = fmt.Sprintf("q%d", t)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(qubits, "→"))
}

/*
Circuit is an ordered list of gate operations on a fixed number of qubits.
Building it has no effect on any register until Execute or Run is called.
*/
type Circuit struct {
	Qubits int         `json:"qubits"`
	Ops    []Operation `json:"ops"`
}

func NewCircuit(qubits int) *Circuit {
	return &Circuit{Qubits: qubits, Ops: make([]Operation, 0)}
}

// Add appends an operation and returns the circuit for chaining.
func (c *Circuit) Add(kind GateKind, angle float64, targets ...int) *Circuit {
	c.Ops = append(c.Ops, Operation{Gate: kind, Targets: targets, Angle: angle})
	return c
}

func (c *Circuit) H(q int) *Circuit { return c.Add(GateH, 0, q) }
func (c *Circuit) X(q int) *Circuit { return c.Add(GateX, 0, q) }
func (c *Circuit) Z(q int) *Circuit { return c.Add(GateZ, 0, q) }

func (c *Circuit) CNOT(control, target int) *Circuit {
	return c.Add(GateCNOT, 0, control, target)
}

// Validate checks the qubit count and every operation's gate, arity and targets.
func (c *Circuit) Validate() error {
	if c.Qubits < 1 || c.Qubits > MaxQubits {
		return errors.Wrapf(ErrInvalidQubitCount, "%d not in [1, %d]", c.Qubits, MaxQubits)
	}

	for i, op := range c.Ops {
		if op.Gate == GateUnknown {
			return errors.Wrapf(ErrUnknownGate, "operation %d", i)
		}
		if len(op.Targets) != op.Gate.Arity() {
			return errors.Wrapf(ErrInvalidArity, "operation %d: %s takes %d targets, got %d", i, op.Gate, op.Gate.Arity(), len(op.Targets))
		}
		for _, t := range op.Targets {
			if t < 0 || t >= c.Qubits {
				return errors.Wrapf(ErrQubitIndexOutOfRange, "operation %d: qubit %d not in [0, %d)", i, t, c.Qubits)
			}
		}
		if len(op.Targets) == 2 && op.Targets[0] == op.Targets[1] {
			return errors.Wrapf(ErrInvalidQubitPair, "operation %d: qubit %d", i, op.Targets[0])
		}
	}

	return nil
}

/*
Execute applies every operation to reg. The whole circuit is validated first,
so a failure leaves reg untouched.
*/
func (c *Circuit) Execute(reg *Register) error {
	if reg.Qubits() != c.Qubits {
		return errors.Wrapf(ErrDimensionMismatch, "circuit on %d qubits, register has %d", c.Qubits, reg.Qubits())
	}
	if err := c.Validate(); err != nil {
		return err
	}

	for i, op := range c.Ops {
		if err := reg.ApplyGate(op.Gate, op.Angle, op.Targets...); err != nil {
			return errors.Wrapf(err, "operation %d", i)
		}
	}
	return nil
}

// Run executes the circuit on a fresh register.
func (c *Circuit) Run() (*Register, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	reg, err := NewRegister(c.Qubits)
	if err != nil {
		return nil, err
	}
	if err := c.Execute(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (c *Circuit) String() string {
	ops := make([]string, len(c.Ops))
	for i, op := range c.Ops {
		ops[i] = op.String()
	}
	return strings.Join(ops, " · ")
}
