package featurize

import (
	"go.uber.org/zap"
)

// DefaultBreakDistance is the largest alpha-carbon to alpha-carbon distance
// (in the units of the input coordinates, normally Ångströms) at which two
// consecutive residues are still considered bonded.
const DefaultBreakDistance = 4.0

// Options controls normalization. The zero value is usable: every zero field
// takes the default documented on it.
type Options struct {
	// The model to read, as an index into the models of the file (not the
	// model number). Default 0.
	ModelIndex int

	// The biological assembly to build from mmCIF files, as an index into
	// the rows of the assembly generation table. Default 0.
	AssemblyIndex int

	// A structure is rejected when the fraction of UNK residues among all
	// amino acid residues is at least this. Must be in (0, 1]; 0 means 1.0.
	UnknownThreshold float64

	// The CA-CA distance above which a chain break is assumed. 0 means
	// DefaultBreakDistance.
	BreakDistance float64

	// When set, Dataset.BFactorHeavyAtom is filled in.
	BFactors bool

	// Where skipped residues and rejections are reported (at debug level).
	// nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		UnknownThreshold: 1.0,
		BreakDistance:    DefaultBreakDistance,
	}
}

func (o Options) normalize() (Options, error) {
	if o.UnknownThreshold == 0 {
		o.UnknownThreshold = 1.0
	}
	if o.UnknownThreshold < 0 || o.UnknownThreshold > 1 {
		return o, ef("unknown threshold %v is not in (0, 1]",
			o.UnknownThreshold)
	}
	if o.BreakDistance == 0 {
		o.BreakDistance = DefaultBreakDistance
	}
	if o.BreakDistance < 0 {
		return o, ef("break distance %v is negative", o.BreakDistance)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o, nil
}
