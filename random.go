package qcircuit

import (
	"math/rand/v2"
	"time"
)

/*
RandomSource is the only source of nondeterminism in the simulator. It must
return uniform samples in [0, 1). *rand.Rand satisfies it.
*/
type RandomSource interface {
	Float64() float64
}

/*
NewRandomSource returns a PCG generator. A zero seed draws one from the
clock, so separate runs differ.
*/
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

/*
SequenceSource replays a fixed list of samples, wrapping around at the end.
Tests use it to force particular measurement outcomes.
*/
type SequenceSource struct {
	values []float64
	pos    int
}

func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}
