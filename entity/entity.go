/*
Package entity defines the model -> chain -> residue -> atom tree that the
PDB and PDBx/mmCIF readers produce and that the featurize package consumes.

Values in this package are built once by a reader and treated as read-only
afterwards. Nothing in this repository mutates a tree after it is returned.
*/
package entity

import (
	"fmt"

	"github.com/TuftsBCB/structure"
)

// Model is a single structural model. Most X-ray structures have exactly
// one; NMR entries usually have several.
type Model struct {
	// The model number from the file (usually starting at 1).
	Num int

	// Chains in the order they first appear in the file.
	Chains []*Chain
}

// Chain is a single polymer strand (or the hetero groups that share its
// identifier) within a model.
type Chain struct {
	// The author chain identifier, e.g. "A". It may be more than one
	// character when read from PDBx/mmCIF files.
	ID string

	// Residues in file order.
	Residues []*Residue
}

// Residue is one residue (or hetero group) of a chain. A residue is
// identified within its chain by its sequence number and insertion code.
type Residue struct {
	// The three letter residue name as it appears in the file, e.g. "ALA"
	// or "MSE".
	Name string

	// The author residue sequence number.
	SeqNum int

	// The insertion code, or ' ' when there is none.
	ICode byte

	// Whether this residue was read from HETATM records.
	Het bool

	// Atoms of this residue. Each atom name appears at most once, since
	// readers resolve alternate locations to a single conformer.
	Atoms []Atom
}

// Atom is a single ATOM or HETATM record.
type Atom struct {
	Name      string
	AltLoc    byte
	Element   string
	Occupancy float64
	BFactor   float64
	structure.Coords
}

// Chain returns the chain with the identifier given.
// If such a chain does not exist, nil is returned.
func (m *Model) Chain(id string) *Chain {
	for _, c := range m.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Atom returns the atom with the given name in this residue.
// If one does not exist, false is returned.
func (r *Residue) Atom(name string) (Atom, bool) {
	for _, atom := range r.Atoms {
		if atom.Name == name {
			return atom, true
		}
	}
	return Atom{}, false
}

// Has returns true if every one of the atom names given is present.
func (r *Residue) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := r.Atom(name); !ok {
			return false
		}
	}
	return true
}

// Ca returns the alpha-carbon atom in this residue.
// If one does not exist, nil is returned.
func (r *Residue) Ca() *structure.Coords {
	if atom, ok := r.Atom("CA"); ok {
		return &atom.Coords
	}
	return nil
}

// ResidueID is a printable identifier like "A:42B".
func (r *Residue) ResidueID(chain string) string {
	if r.ICode == ' ' || r.ICode == 0 {
		return fmt.Sprintf("%s:%d", chain, r.SeqNum)
	}
	return fmt.Sprintf("%s:%d%c", chain, r.SeqNum, r.ICode)
}

// Less orders residues by sequence number and then insertion code.
func Less(a, b *Residue) bool {
	if a.SeqNum != b.SeqNum {
		return a.SeqNum < b.SeqNum
	}
	return a.ICode < b.ICode
}

func (a Atom) String() string {
	return fmt.Sprintf("(%s, [%0.3f %0.3f %0.3f], %0.2f)",
		a.Name, a.X, a.Y, a.Z, a.BFactor)
}
