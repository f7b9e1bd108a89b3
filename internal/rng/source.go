// Package rng provides the game's explicit random source. Every draw is
// counted so the stream position can be saved alongside a session and
// restored by reseeding and fast-forwarding.
package rng

import (
	"errors"
	"fmt"
	"math/rand"
)

// MaxDraws bounds the stream position Restore will fast-forward to.
const MaxDraws = 1 << 24

// ErrTooManyDraws is returned by Restore for a position past MaxDraws.
var ErrTooManyDraws = errors.New("rng: draw count out of range")

// State is the persisted position of a Source.
type State struct {
	Seed  int64
	Draws uint64
}

// Source wraps the math/rand generator and counts draws.
type Source struct {
	seed  int64
	draws uint64
	src   rand.Source64
}

var _ rand.Source64 = (*Source)(nil)

// NewSource seeds a fresh counting source.
func NewSource(seed int64) *Source {
	return &Source{seed: seed, src: rand.NewSource(seed).(rand.Source64)}
}

// Restore rebuilds a source at the position recorded in st.
func Restore(st State) (*Source, error) {
	if st.Draws > MaxDraws {
		return nil, fmt.Errorf("%w: %d", ErrTooManyDraws, st.Draws)
	}
	s := NewSource(st.Seed)
	for range st.Draws {
		s.src.Uint64()
	}
	s.draws = st.Draws
	return s, nil
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	s.draws++
	return s.src.Int63()
}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	s.draws++
	return s.src.Uint64()
}

// Seed implements rand.Source. Reseeding resets the draw count.
func (s *Source) Seed(seed int64) {
	s.seed = seed
	s.draws = 0
	s.src.Seed(seed)
}

// State reports the current stream position.
func (s *Source) State() State {
	return State{Seed: s.seed, Draws: s.draws}
}

// New returns a *rand.Rand driven by a counting source, plus the source.
func New(seed int64) (*rand.Rand, *Source) {
	src := NewSource(seed)
	return rand.New(src), src
}
