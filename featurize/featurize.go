/*
Package featurize turns the residues of a structural model into aligned
per-residue arrays: amino acid types, heavy atom coordinates and masks, and
gap-aware residue numbers.

Only residues that are recognized amino acids and that have all three of the
N, CA and C backbone atoms are kept. Unknown (UNK) residues are never kept,
but count against Options.UnknownThreshold.
*/
package featurize

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/TuftsBCB/structure"

	"github.com/colbyford/PepFlowww/aa"
	"github.com/colbyford/PepFlowww/entity"
)

var (
	ef = fmt.Errorf
	sf = fmt.Sprintf
)

var (
	// ErrNoData is wrapped by every error that means a structure was read
	// fine but has nothing usable in it.
	ErrNoData = errors.New("no usable data")

	// ErrNoResidues means no residue survived filtering.
	ErrNoResidues = fmt.Errorf("%w: no amino acid residues with a complete backbone", ErrNoData)

	// ErrTooManyUnknown means the fraction of UNK residues reached
	// Options.UnknownThreshold.
	ErrTooManyUnknown = fmt.Errorf("%w: too many unknown residues", ErrNoData)

	// ErrDuplicateResidue means two kept residues share a chain, sequence
	// number and insertion code.
	ErrDuplicateResidue = errors.New("duplicate residue")
)

// backbone atoms required for a residue to be kept.
var backbone = []string{"CA", "C", "N"}

type residueRow struct {
	resSeq int
	icode  byte
	resNb  int
	aa     aa.AminoAcid
	pos    [aa.MaxHeavyAtoms]structure.Coords
	mask   [aa.MaxHeavyAtoms]bool
}

// Model normalizes every chain of m. See Chains.
func Model(m *entity.Model, opts Options) (*Dataset, Index, error) {
	return Chains(m.Chains, opts)
}

// Chains normalizes the chains given into a Dataset and its Index.
//
// Chains are visited in order of their identifiers and residues in order of
// sequence number and insertion code, regardless of the order given. Neither
// the chains nor their residues are modified.
//
// When nothing usable is found, the Dataset and Index are nil and the error
// wraps ErrNoData (as either ErrNoResidues or ErrTooManyUnknown).
func Chains(chains []*entity.Chain, opts Options) (*Dataset, Index, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, nil, err
	}
	log := opts.Logger

	sorted := make([]*entity.Chain, len(chains))
	copy(sorted, chains)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	d := &Dataset{}
	countAA, countUnk := 0, 0
	renum := NewRenumberer(opts.BreakDistance)
	for chainNb, chain := range sorted {
		renum.Reset()
		for _, res := range sortedResidues(chain) {
			if !aa.IsAminoAcid(res.Name) {
				continue
			}
			if !res.Has(backbone...) {
				log.Debug("skipping residue without a complete backbone",
					zap.String("residue", res.ResidueID(chain.ID)),
					zap.String("name", res.Name))
				continue
			}
			countAA++
			restype := aa.Parse(res.Name)
			if restype == aa.UNK {
				countUnk++
				continue
			}

			row := residueRow{resSeq: res.SeqNum, icode: res.ICode, aa: restype}
			var bfactor [aa.MaxHeavyAtoms]float64
			row.pos, row.mask, bfactor = ExtractHeavyAtoms(res, restype)
			row.resNb = renum.Next(res.SeqNum, row.pos[aa.BBCA])
			d.append(chain.ID, chainNb, row)
			if opts.BFactors {
				d.BFactorHeavyAtom = append(d.BFactorHeavyAtom, bfactor)
			}
		}
	}

	if d.Len() == 0 {
		log.Debug("rejecting structure", zap.Error(ErrNoResidues))
		return nil, nil, ErrNoResidues
	}
	if frac := float64(countUnk) / float64(countAA); frac >= opts.UnknownThreshold {
		log.Debug("rejecting structure",
			zap.Error(ErrTooManyUnknown),
			zap.Int("unknown", countUnk),
			zap.Int("amino_acids", countAA),
			zap.Float64("threshold", opts.UnknownThreshold))
		return nil, nil, ef("%w (%d of %d, threshold %v)",
			ErrTooManyUnknown, countUnk, countAA, opts.UnknownThreshold)
	}

	idx, err := d.Index()
	if err != nil {
		return nil, nil, err
	}
	log.Debug("normalized structure",
		zap.Int("chains", len(sorted)),
		zap.Int("residues", d.Len()),
		zap.Int("unknown", countUnk))
	return d, idx, nil
}

func sortedResidues(c *entity.Chain) []*entity.Residue {
	residues := make([]*entity.Residue, len(c.Residues))
	copy(residues, c.Residues)
	sort.SliceStable(residues, func(i, j int) bool {
		return entity.Less(residues[i], residues[j])
	})
	return residues
}
