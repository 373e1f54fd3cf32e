// Package services contains stateless domain services that do not belong to
// a single aggregate.
package services

import (
	"fmt"
	"math/rand"
	"time"
)

// TrackingCodePrefix is the fixed prefix of every generated tracking code.
const TrackingCodePrefix = "ORD"

// TrackingCodeGenerator produces human-readable order tracking codes of the
// form ORD-<unix milliseconds>-<random 0..999>.
//
// The random disambiguator makes collisions astronomically rare within one
// millisecond but does not rule them out; the orders table carries a unique
// index on the code, so a collision surfaces to the caller as a conflict
// rather than silently producing two orders with the same code. There is no
// in-process retry.
type TrackingCodeGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

// NewTrackingCodeGenerator creates a generator backed by the wall clock and
// the default random source.
func NewTrackingCodeGenerator() TrackingCodeGenerator {
	return TrackingCodeGenerator{
		now:  time.Now,
		intn: rand.Intn,
	}
}

// NewTrackingCodeGeneratorWithSources creates a generator with injected time
// and randomness sources for deterministic tests.
func NewTrackingCodeGeneratorWithSources(now func() time.Time, intn func(n int) int) TrackingCodeGenerator {
	return TrackingCodeGenerator{now: now, intn: intn}
}

// Generate returns a new tracking code.
func (g TrackingCodeGenerator) Generate() string {
	return fmt.Sprintf("%s-%d-%d", TrackingCodePrefix, g.now().UnixMilli(), g.intn(1000))
}
