package featurize

import (
	"errors"
	"sort"

	"github.com/TuftsBCB/seq"

	"github.com/colbyford/PepFlowww/aa"
	"github.com/colbyford/PepFlowww/entity"
)

// ErrUnmappedResidue means a residue was recognized as an amino acid but has
// no one letter code.
var ErrUnmappedResidue = errors.New("residue has no one letter code")

// Sequences returns the one letter amino acid sequence of every chain in m,
// keyed by chain identifier.
//
// Residues are taken in the order they appear in the chain and no backbone
// atoms are required. Residues that are not amino acids are left out. UNK
// becomes 'X' and non-standard residues become their standard counterpart.
func Sequences(m *entity.Model) (map[string]string, error) {
	seqs := make(map[string]string, len(m.Chains))
	for _, chain := range m.Chains {
		letters := make([]byte, 0, len(chain.Residues))
		for _, res := range chain.Residues {
			if !aa.IsAminoAcid(res.Name) {
				continue
			}
			if res.Name == aa.UNK.String() {
				letters = append(letters, 'X')
				continue
			}
			letter, ok := aa.ThreeToOne(aa.Substitute(res.Name))
			if !ok {
				return nil, ef("%w: %s (%s)",
					ErrUnmappedResidue, res.Name, res.ResidueID(chain.ID))
			}
			letters = append(letters, letter)
		}
		seqs[chain.ID] = string(letters)
	}
	return seqs, nil
}

// SequenceEntries turns the result of Sequences into sequences named
// "<id>_<chain>", ordered by chain identifier.
func SequenceEntries(id string, seqs map[string]string) []seq.Sequence {
	chains := make([]string, 0, len(seqs))
	for chain := range seqs {
		chains = append(chains, chain)
	}
	sort.Strings(chains)

	entries := make([]seq.Sequence, len(chains))
	for i, chain := range chains {
		s := seqs[chain]
		rs := make([]seq.Residue, len(s))
		for j := 0; j < len(s); j++ {
			rs[j] = seq.Residue(s[j])
		}
		entries[i] = seq.Sequence{Name: sf("%s_%s", id, chain), Residues: rs}
	}
	return entries
}
