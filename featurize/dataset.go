package featurize

import (
	"encoding/gob"
	"io"

	"github.com/TuftsBCB/structure"

	"github.com/colbyford/PepFlowww/aa"
)

// Dataset holds one row per retained residue, across all chains, as aligned
// columns. Row i of every column describes the same residue.
type Dataset struct {
	// Author chain identifier.
	ChainID []string

	// 0-based index of the chain in sorted chain order.
	ChainNb []int

	// Residue sequence number and insertion code, as read from the file.
	ResSeq []int
	ICode  []byte

	// Gap-aware residue number, starting at 1 in every chain.
	ResNb []int

	AA []aa.AminoAcid

	// Heavy atom coordinates and presence, slotted by aa.HeavyAtomNames.
	PosHeavyAtom  [][aa.MaxHeavyAtoms]structure.Coords
	MaskHeavyAtom [][aa.MaxHeavyAtoms]bool

	// Only filled in when Options.BFactors is set. Otherwise nil.
	BFactorHeavyAtom [][aa.MaxHeavyAtoms]float64
}

// ResidueKey identifies a residue in a Dataset.
type ResidueKey struct {
	ChainID string
	ResSeq  int
	ICode   byte
}

// Index maps residue identifiers to rows of a Dataset.
type Index map[ResidueKey]int

// Len returns the number of residues (rows).
func (d *Dataset) Len() int {
	return len(d.AA)
}

// Key returns the identifier of row i.
func (d *Dataset) Key(i int) ResidueKey {
	return ResidueKey{ChainID: d.ChainID[i], ResSeq: d.ResSeq[i], ICode: d.ICode[i]}
}

// Index builds the reverse lookup from residue identifiers to rows.
// An error wrapping ErrDuplicateResidue is returned if two rows share an
// identifier.
func (d *Dataset) Index() (Index, error) {
	idx := make(Index, d.Len())
	for i := 0; i < d.Len(); i++ {
		key := d.Key(i)
		if j, ok := idx[key]; ok {
			return nil, ef("%w: %s:%d%c at rows %d and %d",
				ErrDuplicateResidue, key.ChainID, key.ResSeq, key.ICode, j, i)
		}
		idx[key] = i
	}
	return idx, nil
}

// ResidueMask reports, for every row, whether the N, CA and C atoms are all
// present.
func (d *Dataset) ResidueMask() []bool {
	mask := make([]bool, d.Len())
	for i, m := range d.MaskHeavyAtom {
		mask[i] = m[aa.BBN] && m[aa.BBCA] && m[aa.BBC]
	}
	return mask
}

// PosHeavyAtomFlat returns the heavy atom coordinates as a dense row-major
// array of shape [Len(), aa.MaxHeavyAtoms, 3].
func (d *Dataset) PosHeavyAtomFlat() []float32 {
	flat := make([]float32, 0, d.Len()*aa.MaxHeavyAtoms*3)
	for _, row := range d.PosHeavyAtom {
		for _, c := range row {
			flat = append(flat, float32(c.X), float32(c.Y), float32(c.Z))
		}
	}
	return flat
}

// MaskHeavyAtomFlat returns the heavy atom mask as a dense row-major array
// of shape [Len(), aa.MaxHeavyAtoms].
func (d *Dataset) MaskHeavyAtomFlat() []bool {
	flat := make([]bool, 0, d.Len()*aa.MaxHeavyAtoms)
	for _, row := range d.MaskHeavyAtom {
		flat = append(flat, row[:]...)
	}
	return flat
}

// CaAtoms returns the alpha-carbon of every row.
func (d *Dataset) CaAtoms() []structure.Coords {
	cas := make([]structure.Coords, d.Len())
	for i, row := range d.PosHeavyAtom {
		cas[i] = row[aa.BBCA]
	}
	return cas
}

// Save writes the dataset to w.
func (d *Dataset) Save(w io.Writer) error {
	return gob.NewEncoder(w).Encode(*d)
}

// Open loads a dataset previously written by Save.
func Open(r io.Reader) (*Dataset, error) {
	var d *Dataset
	if err := gob.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dataset) append(
	chainID string, chainNb int, res residueRow,
) {
	d.ChainID = append(d.ChainID, chainID)
	d.ChainNb = append(d.ChainNb, chainNb)
	d.ResSeq = append(d.ResSeq, res.resSeq)
	d.ICode = append(d.ICode, res.icode)
	d.ResNb = append(d.ResNb, res.resNb)
	d.AA = append(d.AA, res.aa)
	d.PosHeavyAtom = append(d.PosHeavyAtom, res.pos)
	d.MaskHeavyAtom = append(d.MaskHeavyAtom, res.mask)
}
