package entity

import "sort"

// Builder accumulates atom records into models, chains and residues. Both
// structure readers feed it one atom at a time, in file order.
//
// Residues are keyed within a chain by (sequence number, insertion code,
// hetero flag), and keep the order in which they were first seen.
// Alternate locations of the same atom are collapsed to the one with the
// highest occupancy (the first one seen wins ties).
type Builder struct {
	models []*Model
	byNum  map[int]*Model
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{byNum: make(map[int]*Model, 1)}
}

// AtomRecord is everything a reader knows about one atom line.
type AtomRecord struct {
	Model   int
	Chain   string
	ResName string
	SeqNum  int
	ICode   byte
	Het     bool
	Atom    Atom
}

// Add appends a single atom record.
func (b *Builder) Add(rec AtomRecord) {
	if rec.ICode == 0 {
		rec.ICode = ' '
	}
	model := b.model(rec.Model)
	chain := model.Chain(rec.Chain)
	if chain == nil {
		chain = &Chain{ID: rec.Chain, Residues: make([]*Residue, 0, 50)}
		model.Chains = append(model.Chains, chain)
	}

	res := residueFor(chain, rec)
	for i := range res.Atoms {
		if res.Atoms[i].Name == rec.Atom.Name {
			if rec.Atom.Occupancy > res.Atoms[i].Occupancy {
				res.Atoms[i] = rec.Atom
			}
			return
		}
	}
	res.Atoms = append(res.Atoms, rec.Atom)
}

// Models returns the models built so far, ordered by model number.
func (b *Builder) Models() []*Model {
	sort.SliceStable(b.models, func(i, j int) bool {
		return b.models[i].Num < b.models[j].Num
	})
	return b.models
}

func (b *Builder) model(num int) *Model {
	if m, ok := b.byNum[num]; ok {
		return m
	}
	m := &Model{Num: num, Chains: make([]*Chain, 0, 2)}
	b.byNum[num] = m
	b.models = append(b.models, m)
	return m
}

// residueFor finds the residue an atom belongs to, creating it if needed.
// The search runs backwards since atoms of a residue are nearly always
// contiguous in a file.
func residueFor(chain *Chain, rec AtomRecord) *Residue {
	for i := len(chain.Residues) - 1; i >= 0; i-- {
		r := chain.Residues[i]
		if r.SeqNum == rec.SeqNum && r.ICode == rec.ICode && r.Het == rec.Het {
			return r
		}
	}
	r := &Residue{
		Name:   rec.ResName,
		SeqNum: rec.SeqNum,
		ICode:  rec.ICode,
		Het:    rec.Het,
		Atoms:  make([]Atom, 0, 8),
	}
	chain.Residues = append(chain.Residues, r)
	return r
}
