package featurize

import (
	"math"

	"github.com/TuftsBCB/structure"
)

// Renumberer assigns gap-aware residue numbers to the residues of a single
// chain, fed in order.
//
// The first residue gets number 1. Each following residue whose alpha-carbon
// is within BreakDistance of the previous residue's gets the next number.
// Otherwise a break is assumed and the number jumps by the difference in
// sequence numbers, but by at least 2, so that a break is always visible.
type Renumberer struct {
	BreakDistance float64

	started bool
	nb      int
	resSeq  int
	ca      structure.Coords
}

// NewRenumberer returns a renumberer for a fresh chain. A non-positive
// break distance is replaced with DefaultBreakDistance.
func NewRenumberer(breakDistance float64) *Renumberer {
	if breakDistance <= 0 {
		breakDistance = DefaultBreakDistance
	}
	return &Renumberer{BreakDistance: breakDistance}
}

// Reset starts a new chain.
func (r *Renumberer) Reset() {
	r.started = false
	r.nb, r.resSeq = 0, 0
	r.ca = structure.Coords{}
}

// Next returns the number of the residue with sequence number resSeq and
// alpha-carbon ca.
func (r *Renumberer) Next(resSeq int, ca structure.Coords) int {
	switch {
	case !r.started:
		r.started = true
		r.nb = 1
	case distance(r.ca, ca) <= r.BreakDistance:
		r.nb++
	default:
		gap := resSeq - r.resSeq
		if gap < 2 {
			gap = 2
		}
		r.nb += gap
	}
	r.resSeq = resSeq
	r.ca = ca
	return r.nb
}

func distance(a, b structure.Coords) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
