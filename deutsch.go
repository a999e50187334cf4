package qcircuit

import "github.com/pkg/errors"

// DeutschOracle selects the hidden function f: {0,1} → {0,1}.
type DeutschOracle int

const (
	ConstantZero DeutschOracle = iota
	ConstantOne
	BalancedIdentity
	BalancedNot
)

func (o DeutschOracle) String() string {
	switch o {
	case ConstantZero:
		return "constant-0"
	case ConstantOne:
		return "constant-1"
	case BalancedIdentity:
		return "balanced-identity"
	case BalancedNot:
		return "balanced-not"
	default:
		return "unknown"
	}
}

// ParseDeutschOracle accepts the names produced by DeutschOracle.String.
func ParseDeutschOracle(name string) (DeutschOracle, error) {
	for _, o := range []DeutschOracle{ConstantZero, ConstantOne, BalancedIdentity, BalancedNot} {
		if o.String() == name {
			return o, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidAlgorithmParameter, "deutsch oracle %q", name)
}

// IsConstant is the ground truth the algorithm is checked against.
func (o DeutschOracle) IsConstant() bool {
	return o == ConstantZero || o == ConstantOne
}

/*
Matrix returns U_f|x, y⟩ = |x, y ⊕ f(x)⟩ with x on qubit 0 and y on qubit 1,
as a permutation over basis indices x + 2y.
*/
func (o DeutschOracle) Matrix() (*Matrix, error) {
	switch o {
	case ConstantZero:
		return Identity(4), nil
	case ConstantOne:
		return newMatrix(4,
			0, 0, 1, 0,
			0, 0, 0, 1,
			1, 0, 0, 0,
			0, 1, 0, 0,
		), nil
	case BalancedIdentity:
		return newMatrix(4,
			1, 0, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
			0, 1, 0, 0,
		), nil
	case BalancedNot:
		return newMatrix(4,
			0, 0, 1, 0,
			0, 1, 0, 0,
			1, 0, 0, 0,
			0, 0, 0, 1,
		), nil
	default:
		return nil, errors.Wrapf(ErrInvalidAlgorithmParameter, "deutsch oracle %d", int(o))
	}
}

// DeutschResult is the trace plus the classification.
type DeutschResult struct {
	Trace
	Oracle   DeutschOracle
	Measured int
	Verdict  string
}

/*
Deutsch classifies the oracle with a single query. Qubit 0 ends in |f(0)⊕f(1)⟩
by interference, so the measurement is deterministic for every oracle.
*/
func Deutsch(oracle DeutschOracle, rng RandomSource) (*DeutschResult, error) {
	if oracle < ConstantZero || oracle > BalancedNot {
		return nil, errors.Wrapf(ErrInvalidAlgorithmParameter, "deutsch oracle %d", int(oracle))
	}

	reg, err := NewRegister(2)
	if err != nil {
		return nil, err
	}

	t := newTracer(AlgorithmDeutsch, reg)
	t.record("init |0⟩|0⟩", "Both qubits start in |0⟩")

	if err := t.gate(GateX, "Ancilla set to |1⟩ so the oracle kicks its phase back", 1); err != nil {
		return nil, err
	}

	hh := Hadamard().Tensor(Hadamard())
	if err := t.operator("H⊗H", hh, "Input in |+⟩, ancilla in |−⟩"); err != nil {
		return nil, err
	}

	if err := applyDeutschOracle(t, oracle); err != nil {
		return nil, err
	}

	if err := t.gate(GateH, "Interfere the two branches of the input qubit", 0); err != nil {
		return nil, err
	}

	measured, err := reg.MeasureQubit(0, rng)
	if err != nil {
		return nil, err
	}
	t.record(operationLabel("measure", 0), "0 means f(0) = f(1), 1 means f(0) ≠ f(1)")

	verdict := "constant"
	if measured == 1 {
		verdict = "balanced"
	}

	t.trace.Outcomes = []int{measured}
	t.trace.Interpretation = verdict
	t.trace.Correct = (verdict == "constant") == oracle.IsConstant()

	return &DeutschResult{
		Trace:    t.trace,
		Oracle:   oracle,
		Measured: measured,
		Verdict:  verdict,
	}, nil
}

// applyDeutschOracle runs balanced-not as X·CNOT·X and the rest as matrices.
func applyDeutschOracle(t *tracer, oracle DeutschOracle) error {
	if oracle == BalancedNot {
		steps := []struct {
			kind    GateKind
			targets []int
		}{
			{GateX, []int{0}},
			{GateCNOT, []int{0, 1}},
			{GateX, []int{0}},
		}
		for _, s := range steps {
			if err := t.gate(s.kind, "Oracle f(x) = NOT x as X·CNOT·X", s.targets...); err != nil {
				return err
			}
		}
		return nil
	}

	m, err := oracle.Matrix()
	if err != nil {
		return err
	}
	return t.operator("U_f "+oracle.String(), m, "Oracle query, phase (−1)^f(x) on the input")
}
