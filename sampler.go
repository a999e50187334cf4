package qcircuit

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
	"golang.org/x/sync/errgroup"
)

/*
Sampler runs a circuit for many shots. The circuit is executed once; every
shot then draws an outcome from the prepared distribution, which is shared
read-only between workers. Each worker owns its random source.
*/
type Sampler struct {
	workers   int
	seed      uint64
	maxQubits int
	metrics   *Metrics
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithWorkers sets how many goroutines draw shots.
func WithWorkers(n int) SamplerOption {
	return func(s *Sampler) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithSeed makes runs reproducible; worker k is seeded with seed+k.
func WithSeed(seed uint64) SamplerOption {
	return func(s *Sampler) {
		s.seed = seed
	}
}

// WithMetrics records runs into m.
func WithMetrics(m *Metrics) SamplerOption {
	return func(s *Sampler) {
		s.metrics = m
	}
}

func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{
		workers:   1,
		maxQubits: MaxQubits,
		metrics:   NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

/*
NewSamplerFromConfig applies the worker count, seed and qubit limit of cfg.
Limits outside [1, MaxQubits] fall back to MaxQubits, so an unnormalized
Config still samples.
*/
func NewSamplerFromConfig(cfg *Config, opts ...SamplerOption) *Sampler {
	s := NewSampler(append([]SamplerOption{WithWorkers(cfg.Workers), WithSeed(cfg.Seed)}, opts...)...)
	if cfg.MaxQubits >= 1 && cfg.MaxQubits <= MaxQubits {
		s.maxQubits = cfg.MaxQubits
	}
	return s
}

func (s *Sampler) Metrics() *Metrics { return s.metrics }

// Run samples shots outcomes of c, honoring ctx between shots.
func (s *Sampler) Run(ctx context.Context, c *Circuit, shots int) (*Histogram, error) {
	start := time.Now()

	histogram, err := s.run(ctx, c, shots)
	s.metrics.recordRun(start, shots, len(c.Ops), err == nil)

	if err != nil {
		return nil, err
	}

	errnie.Info("Sampler.Run - qubits %d, gates %d, shots %d, workers %d", c.Qubits, len(c.Ops), shots, s.workers)
	return histogram, nil
}

func (s *Sampler) run(ctx context.Context, c *Circuit, shots int) (*Histogram, error) {
	if shots < 1 {
		return nil, errors.Wrapf(ErrInvalidAlgorithmParameter, "shots %d", shots)
	}
	if c.Qubits > s.maxQubits {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "circuit has %d qubits, limit is %d", c.Qubits, s.maxQubits)
	}

	prepared, err := c.Run()
	if err != nil {
		return nil, err
	}
	probs := prepared.Probabilities()

	histogram := newHistogram(c.Qubits)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < s.workers; w++ {
		quota := shots / s.workers
		if w < shots%s.workers {
			quota++
		}
		if quota == 0 {
			continue
		}

		rng := s.workerSource(w)

		g.Go(func() error {
			counts := make(map[int]int)
			for i := 0; i < quota; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				counts[collapse(probs, rng.Float64())]++
			}

			mu.Lock()
			histogram.merge(counts)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return histogram, nil
}

func (s *Sampler) workerSource(w int) RandomSource {
	seed := s.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewRandomSource(seed + uint64(w))
}

// Histogram counts sampled basis indices.
type Histogram struct {
	Qubits int         `json:"qubits"`
	Shots  int         `json:"shots"`
	Counts map[int]int `json:"counts"`
}

// HistogramEntry is one observed outcome.
type HistogramEntry struct {
	Index     int     `json:"index"`
	Label     string  `json:"label"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

func newHistogram(qubits int) *Histogram {
	return &Histogram{Qubits: qubits, Counts: make(map[int]int)}
}

func (h *Histogram) merge(counts map[int]int) {
	for index, n := range counts {
		h.Counts[index] += n
		h.Shots += n
	}
}

// Frequency is the observed fraction of shots that landed on index.
func (h *Histogram) Frequency(index int) float64 {
	if h.Shots == 0 {
		return 0
	}
	return float64(h.Counts[index]) / float64(h.Shots)
}

// Probabilities returns the observed frequency of every basis index, in index order.
func (h *Histogram) Probabilities() []float64 {
	probs := make([]float64, 1<<h.Qubits)
	for index := range probs {
		probs[index] = h.Frequency(index)
	}
	return probs
}

// Entries lists observed outcomes in basis-index order.
func (h *Histogram) Entries() []HistogramEntry {
	entries := make([]HistogramEntry, 0, len(h.Counts))
	for index, n := range h.Counts {
		entries = append(entries, HistogramEntry{
			Index:     index,
			Label:     BasisLabel(index, h.Qubits),
			Count:     n,
			Frequency: h.Frequency(index),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Index < entries[j].Index
	})
	return entries
}

// MostFrequent returns the outcome with the highest count, lowest index on ties.
func (h *Histogram) MostFrequent() (index, count int) {
	index = -1
	for _, e := range h.Entries() {
		if e.Count > count {
			index, count = e.Index, e.Count
		}
	}
	return index, count
}
