package entity

import (
	"testing"

	"github.com/TuftsBCB/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(model int, chain, res string, num int, icode byte, name string,
	occ float64, x float64) AtomRecord {

	return AtomRecord{
		Model:   model,
		Chain:   chain,
		ResName: res,
		SeqNum:  num,
		ICode:   icode,
		Atom: Atom{
			Name:      name,
			Occupancy: occ,
			Coords:    structure.Coords{X: x},
		},
	}
}

func TestBuilderGroupsResidues(t *testing.T) {
	b := NewBuilder()
	b.Add(rec(1, "A", "ALA", 1, 0, "N", 1, 0))
	b.Add(rec(1, "A", "ALA", 1, 0, "CA", 1, 1))
	b.Add(rec(1, "A", "GLY", 2, 0, "N", 1, 2))
	b.Add(rec(1, "A", "GLY", 2, 'A', "N", 1, 3))
	b.Add(rec(1, "B", "SER", 1, 0, "N", 1, 4))
	b.Add(rec(1, "A", "GLY", 2, 0, "CA", 1, 5))

	models := b.Models()
	require.Len(t, models, 1)
	require.Len(t, models[0].Chains, 2)

	a := models[0].Chain("A")
	require.NotNil(t, a)
	require.Len(t, a.Residues, 3)
	assert.Equal(t, byte(' '), a.Residues[0].ICode)
	assert.Len(t, a.Residues[0].Atoms, 2)
	assert.Len(t, a.Residues[1].Atoms, 2, "late CA joins its residue")
	assert.Equal(t, byte('A'), a.Residues[2].ICode)
	assert.Nil(t, models[0].Chain("Z"))
}

func TestBuilderAltLocs(t *testing.T) {
	b := NewBuilder()
	b.Add(rec(1, "A", "SER", 7, 0, "OG", 0.4, 1))
	b.Add(rec(1, "A", "SER", 7, 0, "OG", 0.6, 2))
	b.Add(rec(1, "A", "SER", 7, 0, "OG", 0.6, 3))

	res := b.Models()[0].Chains[0].Residues[0]
	require.Len(t, res.Atoms, 1)
	assert.Equal(t, 2.0, res.Atoms[0].X)
}

func TestBuilderModelOrder(t *testing.T) {
	b := NewBuilder()
	b.Add(rec(2, "A", "ALA", 1, 0, "CA", 1, 0))
	b.Add(rec(1, "A", "ALA", 1, 0, "CA", 1, 0))
	models := b.Models()
	require.Len(t, models, 2)
	assert.Equal(t, 1, models[0].Num)
	assert.Equal(t, 2, models[1].Num)
}

func TestResidueLookup(t *testing.T) {
	r := &Residue{
		Name:   "ALA",
		SeqNum: 42,
		ICode:  'B',
		Atoms: []Atom{
			{Name: "N"},
			{Name: "CA", Coords: structure.Coords{X: 1, Y: 2, Z: 3}},
		},
	}
	assert.True(t, r.Has("N", "CA"))
	assert.False(t, r.Has("N", "CA", "C"))
	require.NotNil(t, r.Ca())
	assert.Equal(t, 3.0, r.Ca().Z)
	assert.Equal(t, "A:42B", r.ResidueID("A"))

	r.ICode = ' '
	assert.Equal(t, "A:42", r.ResidueID("A"))
}

func TestLess(t *testing.T) {
	a := &Residue{SeqNum: 5, ICode: ' '}
	b := &Residue{SeqNum: 5, ICode: 'A'}
	c := &Residue{SeqNum: 6, ICode: ' '}
	assert.True(t, Less(a, b))
	assert.True(t, Less(b, c))
	assert.False(t, Less(c, a))
}
