package featurize

import (
	"github.com/TuftsBCB/structure"
)

// CompareBackbone returns the RMSD between the alpha-carbons of two datasets
// after optimal superposition. Both datasets must have the same number of
// residues, and at least one.
func CompareBackbone(a, b *Dataset) (float64, error) {
	if a.Len() != b.Len() {
		return 0, ef("Datasets have different lengths: %d != %d.",
			a.Len(), b.Len())
	}
	if a.Len() == 0 {
		return 0, ef("Cannot compare empty datasets.")
	}
	return structure.RMSD(a.CaAtoms(), b.CaAtoms()), nil
}
