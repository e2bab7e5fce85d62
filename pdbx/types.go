package pdbx

import (
	"github.com/BurntSushi/cif"

	"github.com/colbyford/PepFlowww/entity"
)

// Entry corresponds to a single data block inside a PDBx/mmCIF formatted file.
// Usually, a file contains only one data block.
//
// Note that an Entry does *not* encapsulate all information in a PDBx/mmCIF
// file. It only holds the coordinates, organized as an entity tree. For this
// reason, access to the raw CIF data block from the file is exposed in this
// type. Assembly metadata is read from it on demand.
type Entry struct {
	// The underlying CIF file. This provides raw access to attributes of a
	// PDBx file that are not captured by the types in this package.
	CIF *cif.DataBlock

	// The PDB identifier corresponding to this entry ("entry.id").
	Id string

	// Corresponds to the "struct.title" item.
	Title string

	// Models ordered by model number ("atom_site.pdbx_pdb_model_num").
	// Chains are identified by their author chain identifier.
	Models []*entity.Model
}

// Assembly is the list of label chain identifiers ("asym" ids) taking part in
// one row of the "pdbx_struct_assembly_gen" category.
type Assembly []string
