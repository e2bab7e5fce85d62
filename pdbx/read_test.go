package pdbx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atomSiteHeader = `loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_alt_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_seq_id
_atom_site.pdbx_PDB_ins_code
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.occupancy
_atom_site.B_iso_or_equiv
_atom_site.auth_seq_id
_atom_site.auth_asym_id
_atom_site.pdbx_PDB_model_num
`

const atomSiteRows = `ATOM 1 N N . ALA A 1 ? 0.000 0.000 0.000 1.00 10.00 5 H 1
ATOM 2 C CA . ALA A 1 ? 1.458 0.000 0.000 1.00 11.00 5 H 1
ATOM 3 C C . ALA A 1 ? 2.009 1.420 0.000 1.00 12.00 5 H 1
ATOM 4 N N . GLY A 2 ? 3.300 1.600 0.000 1.00 13.00 6 H 1
ATOM 5 C CA . GLY A 2 ? 3.900 2.900 0.000 1.00 14.00 6 H 1
ATOM 6 C C . GLY A 2 ? 5.400 2.800 0.000 1.00 15.00 6 H 1
HETATM 7 O O . HOH C . ? 9.000 9.000 9.000 1.00 30.00 101 H 1
ATOM 8 N N . SER B 1 ? 20.000 0.000 0.000 1.00 20.00 1 L 1
ATOM 9 C CA . SER B 1 ? 21.458 0.000 0.000 1.00 21.00 1 L 1
ATOM 10 C C . SER B 1 ? 22.009 1.420 0.000 1.00 22.00 1 L 1
ATOM 11 C CA . ALA A 1 ? -1.000 -2.000 -3.000 1.00 11.00 5 H 2
`

const assemblyLoop = `loop_
_pdbx_struct_assembly_gen.assembly_id
_pdbx_struct_assembly_gen.oper_expression
_pdbx_struct_assembly_gen.asym_id_list
1 1 A,C
2 1 B
`

func testCIF(withAssembly bool) string {
	var b strings.Builder
	b.WriteString("data_1TST\n_entry.id 1TST\n_struct.title 'Test structure'\n#\n")
	if withAssembly {
		b.WriteString(assemblyLoop)
		b.WriteString("#\n")
	}
	b.WriteString(atomSiteHeader)
	b.WriteString(atomSiteRows)
	b.WriteString("#\n")
	return b.String()
}

func TestRead(t *testing.T) {
	e, err := Read(strings.NewReader(testCIF(true)))
	require.NoError(t, err)

	assert.Equal(t, "1TST", e.Id)
	assert.Equal(t, "Test structure", e.Title)
	require.Len(t, e.Models, 2)

	m := e.Models[0]
	assert.Equal(t, 1, m.Num)
	require.Len(t, m.Chains, 2)

	h := m.Chain("H")
	require.NotNil(t, h)
	require.Len(t, h.Residues, 2, "water must be dropped")
	ala := h.Residues[0]
	assert.Equal(t, "ALA", ala.Name)
	assert.Equal(t, 5, ala.SeqNum, "author numbering is used")
	assert.Equal(t, byte(' '), ala.ICode)
	assert.False(t, ala.Het)
	require.True(t, ala.Has("N", "CA", "C"))
	ca, _ := ala.Atom("CA")
	assert.InDelta(t, 1.458, ca.X, 1e-9)
	assert.InDelta(t, 11.0, ca.BFactor, 1e-9)
	assert.Equal(t, "C", ca.Element)

	l := m.Chain("L")
	require.NotNil(t, l)
	assert.Equal(t, "SER", l.Residues[0].Name)

	m2 := e.Models[1]
	assert.Equal(t, 2, m2.Num)
	assert.InDelta(t, -3.0, m2.Chains[0].Residues[0].Atoms[0].Z, 1e-9)
}

func TestAssemblies(t *testing.T) {
	e, err := Read(strings.NewReader(testCIF(true)))
	require.NoError(t, err)

	assemblies, ok := e.Assemblies()
	require.True(t, ok)
	assert.Equal(t, []Assembly{{"A", "C"}, {"B"}}, assemblies)

	l2a := e.LabelToAuth()
	assert.Equal(t, map[string]string{"A": "H", "B": "L", "C": "H"}, l2a)

	chains, err := e.AssemblyChains(e.Models[0], 0)
	require.NoError(t, err)
	require.Len(t, chains, 1, "A and C both map to H")
	assert.Equal(t, "H", chains[0].ID)

	chains, err = e.AssemblyChains(e.Models[0], 1)
	require.NoError(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, "L", chains[0].ID)

	_, err = e.AssemblyChains(e.Models[0], 2)
	assert.True(t, errors.Is(err, ErrAssemblyNotFound))
	_, err = e.AssemblyChains(e.Models[0], -1)
	assert.True(t, errors.Is(err, ErrAssemblyNotFound))
}

func TestAssemblyFallback(t *testing.T) {
	e, err := Read(strings.NewReader(testCIF(false)))
	require.NoError(t, err)

	_, ok := e.Assemblies()
	assert.False(t, ok)

	// Without metadata, any index yields the whole model.
	chains, err := e.AssemblyChains(e.Models[0], 7)
	require.NoError(t, err)
	assert.Len(t, chains, 2)
}

func TestAssemblySingleItem(t *testing.T) {
	data := "data_1TST\n_entry.id 1TST\n" +
		"_pdbx_struct_assembly_gen.assembly_id 1\n" +
		"_pdbx_struct_assembly_gen.oper_expression 1\n" +
		"_pdbx_struct_assembly_gen.asym_id_list A,B\n#\n" +
		atomSiteHeader + atomSiteRows
	e, err := Read(strings.NewReader(data))
	require.NoError(t, err)

	assemblies, ok := e.Assemblies()
	require.True(t, ok)
	assert.Equal(t, []Assembly{{"A", "B"}}, assemblies)

	chains, err := e.AssemblyChains(e.Models[0], 0)
	require.NoError(t, err)
	assert.Len(t, chains, 2)
}

func TestAssemblyUnknownLabel(t *testing.T) {
	data := strings.Replace(testCIF(true), "2 1 B\n", "2 1 Z\n", 1)
	e, err := Read(strings.NewReader(data))
	require.NoError(t, err)

	_, err = e.AssemblyChains(e.Models[0], 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrAssemblyNotFound))
}

func TestReadNoAtoms(t *testing.T) {
	_, err := Read(strings.NewReader("data_1TST\n_entry.id 1TST\n"))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "1tst.cif")
	require.NoError(t, os.WriteFile(fp, []byte(testCIF(true)), 0644))

	e, err := ReadFile(fp)
	require.NoError(t, err)
	assert.Equal(t, "1TST", e.Id)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.cif"))
	assert.Error(t, err)
}

func ExampleEntry_AssemblyChains() {
	e, err := Read(strings.NewReader(testCIF(true)))
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < 2; i++ {
		chains, err := e.AssemblyChains(e.Models[0], i)
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, c := range chains {
			fmt.Printf("assembly %d: chain %s (%d residues)\n",
				i, c.ID, len(c.Residues))
		}
	}
	// Output:
	// assembly 0: chain H (2 residues)
	// assembly 1: chain L (1 residues)
}
