/*
Package aa provides the static amino acid tables used when turning residues
into fixed-layout arrays: a small integer enumeration of the twenty standard
amino acids (plus UNK), the canonical heavy atom slot layout for each of
them and a substitution table for common non-standard residues.

The numeric values of AminoAcid are stable. They are ordered by one letter
code, so that ALA is 0 and TYR is 19, with UNK always last.
*/
package aa

import "fmt"

// AminoAcid is the categorical type of a residue.
type AminoAcid int

const (
	ALA AminoAcid = iota
	CYS
	ASP
	GLU
	PHE
	GLY
	HIS
	ILE
	LYS
	LEU
	MET
	ASN
	PRO
	GLN
	ARG
	SER
	THR
	VAL
	TRP
	TYR
	UNK
)

// NumTypes is the number of amino acid types, including UNK.
const NumTypes = int(UNK) + 1

var threeLetter = [NumTypes]string{
	"ALA", "CYS", "ASP", "GLU", "PHE", "GLY", "HIS", "ILE", "LYS", "LEU",
	"MET", "ASN", "PRO", "GLN", "ARG", "SER", "THR", "VAL", "TRP", "TYR",
	"UNK",
}

var oneLetter = [NumTypes]byte{
	'A', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L',
	'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'Y',
	'X',
}

// byThree and byOne are the reverse of threeLetter and oneLetter. They are
// filled in this package's init function and never written to afterwards.
var (
	byThree = make(map[string]AminoAcid, NumTypes)
	byOne   = make(map[byte]AminoAcid, NumTypes)
)

func init() {
	for i := 0; i < NumTypes; i++ {
		byThree[threeLetter[i]] = AminoAcid(i)
		byOne[oneLetter[i]] = AminoAcid(i)
	}
}

// Parse returns the amino acid named by name. The name may be a standard
// three letter code, a one letter code or a non-standard residue listed in
// Substitutions. Anything else parses to UNK.
func Parse(name string) AminoAcid {
	if a, ok := byThree[name]; ok {
		return a
	}
	if std, ok := Substitutions[name]; ok {
		return byThree[std]
	}
	if len(name) == 1 {
		if a, ok := byOne[name[0]]; ok {
			return a
		}
	}
	return UNK
}

// IsAminoAcid returns true when name is a standard three letter amino acid
// code, UNK or one of the known non-standard residues.
//
// One letter codes are deliberately not accepted here, since nucleotide
// residues in PDB files use single letter names that collide with them.
func IsAminoAcid(name string) bool {
	if _, ok := byThree[name]; ok {
		return true
	}
	_, ok := Substitutions[name]
	return ok
}

// Substitute returns the standard residue that name stands in for. If name
// is not a known non-standard residue, it is returned unchanged.
func Substitute(name string) string {
	if std, ok := Substitutions[name]; ok {
		return std
	}
	return name
}

// ThreeToOne converts a standard three letter code to its one letter code.
// UNK converts to 'X'. Non-standard names are not substituted.
func ThreeToOne(name string) (byte, bool) {
	a, ok := byThree[name]
	if !ok {
		return 0, false
	}
	return oneLetter[a], true
}

// String returns the three letter code.
func (a AminoAcid) String() string {
	if a < 0 || int(a) >= NumTypes {
		return fmt.Sprintf("AminoAcid(%d)", int(a))
	}
	return threeLetter[a]
}

// OneLetter returns the one letter code, or 'X' for UNK and invalid values.
func (a AminoAcid) OneLetter() byte {
	if a < 0 || int(a) >= NumTypes {
		return 'X'
	}
	return oneLetter[a]
}

// Valid returns true if a is one of the defined amino acid values.
func (a AminoAcid) Valid() bool {
	return a >= 0 && int(a) < NumTypes
}
