package featurize

import (
	"github.com/TuftsBCB/structure"

	"github.com/colbyford/PepFlowww/aa"
	"github.com/colbyford/PepFlowww/entity"
)

// ExtractHeavyAtoms places the heavy atoms of res into the fixed slots that
// aa.HeavyAtomNames assigns to amino acid a.
//
// Slots that a does not use, or whose atom is missing from res, are left as
// zero coordinates with a false mask. The B-factor of every present atom is
// returned in the same slots.
func ExtractHeavyAtoms(res *entity.Residue, a aa.AminoAcid) (
	pos [aa.MaxHeavyAtoms]structure.Coords,
	mask [aa.MaxHeavyAtoms]bool,
	bfactor [aa.MaxHeavyAtoms]float64,
) {
	if !a.Valid() {
		return
	}
	for slot, name := range aa.HeavyAtomNames[a] {
		if name == "" {
			continue
		}
		if atom, ok := res.Atom(name); ok {
			pos[slot] = atom.Coords
			mask[slot] = true
			bfactor[slot] = atom.BFactor
		}
	}
	return
}
