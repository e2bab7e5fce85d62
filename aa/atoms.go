package aa

// MaxHeavyAtoms is the number of heavy atom slots every residue gets,
// regardless of its type. Unused slots have an empty name.
const MaxHeavyAtoms = 15

// Slots of the backbone atoms, which are the same for every amino acid.
const (
	BBN   = 0
	BBCA  = 1
	BBC   = 2
	BBO   = 3
	BBCB  = 4
	BBOXT = 14
)

// HeavyAtomNames maps each amino acid to the names of its heavy atoms. The
// position of a name in its row is the slot that atom occupies in every
// array built from it, so rows must never be reordered.
var HeavyAtomNames = [NumTypes][MaxHeavyAtoms]string{
	ALA: {"N", "CA", "C", "O", "CB", "", "", "", "", "", "", "", "", "", "OXT"},
	ARG: {"N", "CA", "C", "O", "CB", "CG", "CD", "NE", "CZ", "NH1", "NH2", "", "", "", "OXT"},
	ASN: {"N", "CA", "C", "O", "CB", "CG", "OD1", "ND2", "", "", "", "", "", "", "OXT"},
	ASP: {"N", "CA", "C", "O", "CB", "CG", "OD1", "OD2", "", "", "", "", "", "", "OXT"},
	CYS: {"N", "CA", "C", "O", "CB", "SG", "", "", "", "", "", "", "", "", "OXT"},
	GLN: {"N", "CA", "C", "O", "CB", "CG", "CD", "OE1", "NE2", "", "", "", "", "", "OXT"},
	GLU: {"N", "CA", "C", "O", "CB", "CG", "CD", "OE1", "OE2", "", "", "", "", "", "OXT"},
	GLY: {"N", "CA", "C", "O", "", "", "", "", "", "", "", "", "", "", "OXT"},
	HIS: {"N", "CA", "C", "O", "CB", "CG", "ND1", "CD2", "CE1", "NE2", "", "", "", "", "OXT"},
	ILE: {"N", "CA", "C", "O", "CB", "CG1", "CG2", "CD1", "", "", "", "", "", "", "OXT"},
	LEU: {"N", "CA", "C", "O", "CB", "CG", "CD1", "CD2", "", "", "", "", "", "", "OXT"},
	LYS: {"N", "CA", "C", "O", "CB", "CG", "CD", "CE", "NZ", "", "", "", "", "", "OXT"},
	MET: {"N", "CA", "C", "O", "CB", "CG", "SD", "CE", "", "", "", "", "", "", "OXT"},
	PHE: {"N", "CA", "C", "O", "CB", "CG", "CD1", "CD2", "CE1", "CE2", "CZ", "", "", "", "OXT"},
	PRO: {"N", "CA", "C", "O", "CB", "CG", "CD", "", "", "", "", "", "", "", "OXT"},
	SER: {"N", "CA", "C", "O", "CB", "OG", "", "", "", "", "", "", "", "", "OXT"},
	THR: {"N", "CA", "C", "O", "CB", "OG1", "CG2", "", "", "", "", "", "", "", "OXT"},
	TRP: {"N", "CA", "C", "O", "CB", "CG", "CD1", "CD2", "NE1", "CE2", "CE3", "CZ2", "CZ3", "CH2", "OXT"},
	TYR: {"N", "CA", "C", "O", "CB", "CG", "CD1", "CD2", "CE1", "CE2", "CZ", "OH", "", "", "OXT"},
	VAL: {"N", "CA", "C", "O", "CB", "CG1", "CG2", "", "", "", "", "", "", "", "OXT"},
	UNK: {},
}

// HeavyAtomSlot returns the slot of the named atom for amino acid a, or -1
// if a has no such heavy atom.
func HeavyAtomSlot(a AminoAcid, name string) int {
	if name == "" || !a.Valid() {
		return -1
	}
	for i, n := range HeavyAtomNames[a] {
		if n == name {
			return i
		}
	}
	return -1
}
