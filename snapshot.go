package qcircuit

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// AmplitudeSnapshot is one amplitude as a re/im pair.
type AmplitudeSnapshot struct {
	Re float64 `json:"re" msgpack:"re"`
	Im float64 `json:"im" msgpack:"im"`
}

/*
Snapshot is a plain data copy of a state vector, enough to rebuild an
equivalent register. Both fields are always present; there is no versioning.
*/
type Snapshot struct {
	Qubits     int                 `json:"qubits" msgpack:"qubits"`
	Amplitudes []AmplitudeSnapshot `json:"amplitudes" msgpack:"amplitudes"`
}

func snapshotOf(qubits int, v []Complex) Snapshot {
	s := Snapshot{Qubits: qubits, Amplitudes: make([]AmplitudeSnapshot, len(v))}
	for i, c := range v {
		s.Amplitudes[i] = AmplitudeSnapshot{Re: c.Re(), Im: c.Im()}
	}
	return s
}

func (r *Register) Snapshot() Snapshot {
	return snapshotOf(r.qubits, r.amplitudes)
}

func (q *Qubit) Snapshot() Snapshot {
	return snapshotOf(1, q.Vector())
}

func (s Snapshot) vector() []Complex {
	v := make([]Complex, len(s.Amplitudes))
	for i, a := range s.Amplitudes {
		v[i] = NewComplex(a.Re, a.Im)
	}
	return v
}

// Restore rebuilds a register, normalizing the stored amplitudes.
func (s Snapshot) Restore() (*Register, error) {
	r, err := NewRegister(s.Qubits)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	if len(s.Amplitudes) != r.Dimension() {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "%d amplitudes for %d qubits", len(s.Amplitudes), s.Qubits)
	}
	if err := r.SetAmplitudes(s.vector()); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	return r, nil
}

// RestoreQubit rebuilds a lone qubit from a one-qubit snapshot.
func (s Snapshot) RestoreQubit() (*Qubit, error) {
	if s.Qubits != 1 || len(s.Amplitudes) != 2 {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "%d qubits with %d amplitudes is not a single qubit", s.Qubits, len(s.Amplitudes))
	}
	v := s.vector()
	return NewQubit(v[0], v[1]), nil
}

// wireSnapshot drops the binary marshaler methods so msgpack encodes the fields.
type wireSnapshot Snapshot

// MarshalBinary encodes the snapshot with msgpack, for compact undo stacks.
func (s Snapshot) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(wireSnapshot(s))
}

func (s *Snapshot) UnmarshalBinary(data []byte) error {
	var w wireSnapshot
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	*s = Snapshot(w)
	return nil
}

func (r *Register) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}

// UnmarshalJSON replaces the receiver with the decoded state.
func (r *Register) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(ErrInvalidSnapshot, err.Error())
	}

	restored, err := s.Restore()
	if err != nil {
		return err
	}

	*r = *restored
	return nil
}
