package featurize

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/TuftsBCB/seq"
	"go.uber.org/zap"

	"github.com/colbyford/PepFlowww/entity"
	"github.com/colbyford/PepFlowww/pdb"
	"github.com/colbyford/PepFlowww/pdbx"
)

// ErrModelNotFound is returned when Options.ModelIndex does not name a model
// of the file.
var ErrModelNotFound = errors.New("model not found")

// Format is a structure file format.
type Format int

const (
	FormatPDB Format = iota
	FormatMMCIF
)

func (f Format) String() string {
	switch f {
	case FormatPDB:
		return "pdb"
	case FormatMMCIF:
		return "cif"
	}
	return sf("Format(%d)", int(f))
}

// ParseFormat converts a format name ("pdb", "cif" or "mmcif") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "pdb", "ent":
		return FormatPDB, nil
	case "cif", "mmcif":
		return FormatMMCIF, nil
	}
	return 0, ef("Unknown structure format '%s'.", name)
}

// FormatOf guesses the format of a file from its extension, ignoring a
// trailing ".gz". Anything that is not ".cif" or ".mmcif" is taken to be PDB.
func FormatOf(fp string) Format {
	name := strings.TrimSuffix(strings.ToLower(fp), ".gz")
	switch filepath.Ext(name) {
	case ".cif", ".mmcif":
		return FormatMMCIF
	}
	return FormatPDB
}

// ParseFile normalizes the structure file at fp, read in the format given.
func ParseFile(fp string, format Format, opts Options) (*Dataset, Index, error) {
	switch format {
	case FormatPDB:
		return ParsePDB(fp, opts)
	case FormatMMCIF:
		return ParseMMCIFAssembly(fp, opts)
	}
	return nil, nil, ef("Unknown structure format %s.", format)
}

// ParsePDB reads the PDB file at fp and normalizes the model at
// opts.ModelIndex.
func ParsePDB(fp string, opts Options) (*Dataset, Index, error) {
	entry, err := pdb.ReadFile(fp)
	if err != nil {
		return nil, nil, err
	}
	m, err := pickModel(fp, entry.Models, opts.ModelIndex)
	if err != nil {
		return nil, nil, err
	}
	if opts.Logger != nil {
		opts.Logger = opts.Logger.With(zap.String("path", fp))
	}
	return Model(m, opts)
}

// ParseMMCIFAssembly reads the PDBx/mmCIF file at fp and normalizes the
// biological assembly at opts.AssemblyIndex of the model at opts.ModelIndex.
// Files without assembly information are normalized in full.
func ParseMMCIFAssembly(fp string, opts Options) (*Dataset, Index, error) {
	entry, err := pdbx.ReadFile(fp)
	if err != nil {
		return nil, nil, err
	}
	m, err := pickModel(fp, entry.Models, opts.ModelIndex)
	if err != nil {
		return nil, nil, err
	}
	chains, err := entry.AssemblyChains(m, opts.AssemblyIndex)
	if err != nil {
		return nil, nil, ef("%s: %w", fp, err)
	}
	if opts.Logger != nil {
		opts.Logger = opts.Logger.With(
			zap.String("path", fp), zap.Int("assembly", opts.AssemblyIndex))
	}
	return Chains(chains, opts)
}

// FastaFromPDB returns the sequence of every chain in the PDB file at fp.
// All models are visited in order; a chain in a later model replaces the
// chain with the same identifier from an earlier model.
func FastaFromPDB(fp string) (map[string]string, error) {
	entry, err := pdb.ReadFile(fp)
	if err != nil {
		return nil, err
	}
	return modelSequences(fp, entry.Models)
}

// FastaEntriesFromPDB is like FastaFromPDB, but names each chain's sequence
// after the entry's ID code (see SequenceEntries).
func FastaEntriesFromPDB(fp string) ([]seq.Sequence, error) {
	entry, err := pdb.ReadFile(fp)
	if err != nil {
		return nil, err
	}
	seqs, err := modelSequences(fp, entry.Models)
	if err != nil {
		return nil, err
	}
	return SequenceEntries(entry.IdCode, seqs), nil
}

func modelSequences(fp string, models []*entity.Model) (map[string]string, error) {
	all := make(map[string]string)
	for _, m := range models {
		seqs, err := Sequences(m)
		if err != nil {
			return nil, ef("%s: %w", fp, err)
		}
		for chain, s := range seqs {
			all[chain] = s
		}
	}
	return all, nil
}

func pickModel(fp string, models []*entity.Model, index int) (*entity.Model, error) {
	if index < 0 || index >= len(models) {
		return nil, ef("%w: %s: index %d (file has %d)",
			ErrModelNotFound, fp, index, len(models))
	}
	return models[index], nil
}
