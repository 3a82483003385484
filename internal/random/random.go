// Package random provides the sampling capability shared by the generator and
// the turn engine, plus seed helpers.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the uniform sampling the simulation depends on.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// New returns a deterministic source for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Script replays fixed draws. Ints feed Intn (reduced modulo n), Floats feed
// Float64. When a list runs out it falls back to Fallback, or to zero draws
// when Fallback is nil.
type Script struct {
	Ints     []int
	Floats   []float64
	Fallback Source
}

// Intn returns the next scripted int in [0, n).
func (s *Script) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with n <= 0")
	}
	if len(s.Ints) == 0 {
		if s.Fallback != nil {
			return s.Fallback.Intn(n)
		}
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next scripted float, clamped into [0, 1).
func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		if s.Fallback != nil {
			return s.Fallback.Float64()
		}
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	switch {
	case v < 0:
		return 0
	case v >= 1:
		return 0.9999999999
	}
	return v
}
