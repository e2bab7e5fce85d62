package pdbx

import (
	"errors"
	"strings"

	"github.com/colbyford/PepFlowww/entity"
)

// ErrAssemblyNotFound is returned when an assembly index does not name a row
// of the assembly generation table.
var ErrAssemblyNotFound = errors.New("assembly not found")

// Assemblies returns the rows of "pdbx_struct_assembly_gen.asym_id_list",
// each split into its comma separated label chain identifiers.
//
// The second return value is false when the entry carries no assembly
// metadata at all.
func (e *Entry) Assemblies() ([]Assembly, bool) {
	rows := stringsOf(e.CIF, "pdbx_struct_assembly_gen.asym_id_list")
	if rows == nil {
		return nil, false
	}
	assemblies := make([]Assembly, len(rows))
	for i, row := range rows {
		for _, id := range strings.Split(row, ",") {
			if id = strings.TrimSpace(id); len(id) > 0 {
				assemblies[i] = append(assemblies[i], id)
			}
		}
	}
	return assemblies, true
}

// LabelToAuth maps label chain identifiers ("atom_site.label_asym_id") to
// author chain identifiers ("atom_site.auth_asym_id"). If a label identifier
// is paired with more than one author identifier, the last pairing wins.
//
// A new map is built on every call.
func (e *Entry) LabelToAuth() map[string]string {
	labels := stringsOf(e.CIF, "atom_site.label_asym_id")
	auths := stringsOf(e.CIF, "atom_site.auth_asym_id")
	m := make(map[string]string, 4)
	for i := 0; i < len(labels) && i < len(auths); i++ {
		m[labels[i]] = auths[i]
	}
	return m
}

// AssemblyChains returns the chains of model m that make up the biological
// assembly at index assembly. Each chain appears at most once, in the order
// its first label identifier is listed.
//
// If the entry has no assembly metadata, every chain of m is returned.
//
// An error wrapping ErrAssemblyNotFound is returned if assembly is out of
// range. It is also an error for a label identifier in the assembly to have
// no author chain. Author chains that are missing from m are skipped; this
// happens for chains made only of water, which the readers drop.
func (e *Entry) AssemblyChains(m *entity.Model, assembly int) ([]*entity.Chain, error) {
	assemblies, ok := e.Assemblies()
	if !ok {
		return m.Chains, nil
	}
	if assembly < 0 || assembly >= len(assemblies) {
		return nil, ef("%w: index %d (entry '%s' has %d)",
			ErrAssemblyNotFound, assembly, e.Id, len(assemblies))
	}

	labelToAuth := e.LabelToAuth()
	seen := make(map[string]bool, len(assemblies[assembly]))
	chains := make([]*entity.Chain, 0, len(assemblies[assembly]))
	for _, label := range assemblies[assembly] {
		auth, ok := labelToAuth[label]
		if !ok {
			return nil, ef("Label chain '%s' of assembly %d has no author "+
				"chain in entry '%s'.", label, assembly, e.Id)
		}
		if seen[auth] {
			continue
		}
		seen[auth] = true
		if c := m.Chain(auth); c != nil {
			chains = append(chains, c)
		}
	}
	return chains, nil
}
