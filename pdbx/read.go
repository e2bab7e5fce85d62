package pdbx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/cif"
	"github.com/TuftsBCB/structure"

	"github.com/colbyford/PepFlowww/entity"
	"github.com/colbyford/PepFlowww/fileio"
)

var (
	ef = fmt.Errorf
	sf = fmt.Sprintf
)

var waters = map[string]bool{"HOH": true, "WAT": true, "DOD": true}

// ReadFile reads the PDBx/mmCIF file at the path given. If the file name ends
// with ".gz", gzip decompression will be used.
func ReadFile(fp string) (*Entry, error) {
	f, err := fileio.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	e, err := Read(f)
	if err != nil {
		return nil, ef("%s: %w", fp, err)
	}
	return e, nil
}

// Read reads exactly one PDB entry from the reader given. If there are 0
// entries or more than 1 entry, an error is returned.
//
// An error is also returned if the reader could not be interpreted as a valid
// PDBx/mmCIF file (which must be a valid CIF file).
//
// This function is useful for reading standard PDBx/mmCIF files obtained from
// the PDB. (But in general, a PDBx/mmCIF file may contain more than one entry.)
func Read(r io.Reader) (*Entry, error) {
	entries, err := ReadAll(r)
	if err != nil {
		return nil, err
	} else if len(entries) != 1 {
		return nil, ef("Expected one PDB entry but got %d.", len(entries))
	}
	return entries[0], nil
}

// ReadAll reads all PDB entries from the reader provided. If you're reading
// PDBx/mmCIF files from the PDB, then use the Read function which guarantees
// the reader given only has a single entry.
//
// An error is returned if the reader could not be interpreted as a valid
// PDBx/mmCIF file (which must be a valid CIF file).
func ReadAll(r io.Reader) ([]*Entry, error) {
	cf, err := cif.Read(r)
	if err != nil {
		return nil, err
	}
	var entries []*Entry
	for _, block := range cf.Blocks {
		e, err := ReadCIFDataBlock(block)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ReadCIFDataBlock converts a PDBx/mmCIF data block to a PDB entry.
// It is exposed in the public interface so that clients can freely mix
// Entry objects and their corresponding underlying data blocks.
//
// An error is returned if the data block given has no usable atom sites.
func ReadCIFDataBlock(b *cif.DataBlock) (*Entry, error) {
	e := &Entry{
		CIF:   b,
		Id:    value(b, "entry.id").String(),
		Title: value(b, "struct.title").String(),
	}
	if err := e.readAtomSites(b); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entry) readAtomSites(b *cif.DataBlock) error {
	atoms := stringsOf(b, "atom_site.label_atom_id")
	if atoms == nil {
		atoms = stringsOf(b, "atom_site.auth_atom_id")
	}
	comps := stringsOf(b, "atom_site.label_comp_id")
	if comps == nil {
		comps = stringsOf(b, "atom_site.auth_comp_id")
	}
	chains := stringsOf(b, "atom_site.auth_asym_id")
	if chains == nil {
		chains = stringsOf(b, "atom_site.label_asym_id")
	}
	seqs, err := intsOf(b, "atom_site.auth_seq_id")
	if err == nil && seqs == nil {
		seqs, err = intsOf(b, "atom_site.label_seq_id")
	}
	if err != nil {
		return err
	}
	xs, errx := floatsOf(b, "atom_site.cartn_x")
	ys, erry := floatsOf(b, "atom_site.cartn_y")
	zs, errz := floatsOf(b, "atom_site.cartn_z")
	for _, err := range []error{errx, erry, errz} {
		if err != nil {
			return err
		}
	}
	if atoms == nil || comps == nil || chains == nil || seqs == nil ||
		xs == nil || ys == nil || zs == nil {
		return ef("The given PDBx/mmCIF data has no ATOM/HETATM records.")
	}

	// Everything below is optional.
	groups := stringsOf(b, "atom_site.group_pdb")
	alts := stringsOf(b, "atom_site.label_alt_id")
	icodes := stringsOf(b, "atom_site.pdbx_pdb_ins_code")
	elems := stringsOf(b, "atom_site.type_symbol")
	models, err := intsOf(b, "atom_site.pdbx_pdb_model_num")
	if err != nil {
		return err
	}
	occs, err := floatsOf(b, "atom_site.occupancy")
	if err != nil {
		return err
	}
	bfacs, err := floatsOf(b, "atom_site.b_iso_or_equiv")
	if err != nil {
		return err
	}

	builder := entity.NewBuilder()
	for i := range atoms {
		if waters[comps[i]] {
			continue
		}
		atom := entity.Atom{
			Name:      atoms[i],
			Occupancy: 1.0,
			Coords:    structure.Coords{X: xs[i], Y: ys[i], Z: zs[i]},
		}
		if alts != nil {
			atom.AltLoc = charOf(alts[i])
		}
		if elems != nil {
			atom.Element = elems[i]
		}
		if occs != nil {
			atom.Occupancy = occs[i]
		}
		if bfacs != nil {
			atom.BFactor = bfacs[i]
		}

		rec := entity.AtomRecord{
			Model:   1,
			Chain:   chains[i],
			ResName: comps[i],
			SeqNum:  seqs[i],
			ICode:   ' ',
			Atom:    atom,
		}
		if models != nil {
			rec.Model = models[i]
		}
		if groups != nil {
			rec.Het = groups[i] == "HETATM"
		}
		if icodes != nil {
			rec.ICode = charOf(icodes[i])
		}
		builder.Add(rec)
	}
	e.Models = builder.Models()
	if len(e.Models) == 0 {
		return ef("The given PDBx/mmCIF data has no ATOM/HETATM records.")
	}
	return nil
}

// value returns the data value tagged by "key". If it does not exist, then
// an empty string is returned (wrapped in a cif.Value).
func value(b *cif.DataBlock, key string) cif.Value {
	if v, ok := b.Items[key]; ok {
		return v
	}
	return cif.AsValue("")
}

// column retrieves the column of data tagged by "key", regardless of whether
// it is declared inside a "loop_" or as a single data item. (If a PDBx file
// has only one row in some category, its tags are not in a loop.)
//
// The second return value is false when the tag does not exist.
func column(b *cif.DataBlock, key string) (cif.ValueLoop, bool) {
	if loop, ok := b.Loops[key]; ok {
		if i, ok := loop.Columns[key]; ok {
			return loop.Values[i], true
		}
		return nil, false
	}
	v, ok := b.Items[key]
	if !ok {
		return nil, false
	}
	switch raw := v.Raw().(type) {
	case string:
		return cif.AsValues([]string{raw}), true
	case int:
		return cif.AsValues([]int{raw}), true
	case float64:
		return cif.AsValues([]float64{raw}), true
	default:
		panic(sf("Unknown value type %T for %s.", raw, key))
	}
}

// stringsOf returns the column tagged by key as strings. Columns that the
// CIF reader typed as numbers are formatted back. nil is returned if the tag
// does not exist.
func stringsOf(b *cif.DataBlock, key string) []string {
	col, ok := column(b, key)
	if !ok {
		return nil
	}
	if strs := col.Strings(); strs != nil {
		return strs
	}
	if ints := col.Ints(); ints != nil {
		strs := make([]string, len(ints))
		for i, n := range ints {
			strs[i] = strconv.Itoa(n)
		}
		return strs
	}
	if floats := col.Floats(); floats != nil {
		strs := make([]string, len(floats))
		for i, f := range floats {
			strs[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return strs
	}
	return nil
}

// intsOf returns the column tagged by key as integers. nil (and no error) is
// returned if the tag does not exist. An error is returned if a value is not
// an integer.
func intsOf(b *cif.DataBlock, key string) ([]int, error) {
	col, ok := column(b, key)
	if !ok {
		return nil, nil
	}
	if ints := col.Ints(); ints != nil {
		return ints, nil
	}
	strs := stringsOf(b, key)
	ints := make([]int, len(strs))
	for i, s := range strs {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, ef("Value '%s' of '%s' (row %d) is not an integer.",
				s, key, i+1)
		}
		ints[i] = n
	}
	return ints, nil
}

// floatsOf is like intsOf, but for floating point columns.
func floatsOf(b *cif.DataBlock, key string) ([]float64, error) {
	col, ok := column(b, key)
	if !ok {
		return nil, nil
	}
	if floats := col.Floats(); floats != nil {
		return floats, nil
	}
	if ints := col.Ints(); ints != nil {
		floats := make([]float64, len(ints))
		for i, n := range ints {
			floats[i] = float64(n)
		}
		return floats, nil
	}
	strs := stringsOf(b, key)
	floats := make([]float64, len(strs))
	for i, s := range strs {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, ef("Value '%s' of '%s' (row %d) is not a number.",
				s, key, i+1)
		}
		floats[i] = f
	}
	return floats, nil
}

// charOf turns a one character CIF value into a byte. Missing ("?") and
// inapplicable (".") values become a blank.
func charOf(s string) byte {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s == "?" || s == "." {
		return ' '
	}
	return s[0]
}
