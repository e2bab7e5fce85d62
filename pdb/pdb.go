package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/colbyford/PepFlowww/entity"
	"github.com/colbyford/PepFlowww/fileio"
)

// Entry represents everything read from a single PDB file.
type Entry struct {
	Path           string
	IdCode         string
	Classification string

	// Models ordered by model number. A file without MODEL records has
	// exactly one model, numbered 1.
	Models []*entity.Model
}

var waters = map[string]bool{"HOH": true, "WAT": true, "DOD": true}

type pdbParser struct {
	entry    *Entry
	builder  *entity.Builder
	curModel int
	lineNum  int
	line     []byte
}

// ReadFile reads the PDB file at the path given. If the file name ends with
// ".gz", gzip decompression will be used.
func ReadFile(fp string) (*Entry, error) {
	f, err := fileio.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, fp)
}

// Read reads a PDB entry from r. The path given is only used to name the
// entry (and to guess its ID code when there is no HEADER record).
//
// An error is returned if a numeric column of an ATOM or HETATM record
// cannot be parsed, or if there are no ATOM or HETATM records at all.
func Read(r io.Reader, fp string) (*Entry, error) {
	entry := &Entry{Path: fp}
	p := pdbParser{
		entry:    entry,
		builder:  entity.NewBuilder(),
		curModel: 1,
	}

	// Records are processed in the order they appear. Residue and chain
	// order in the resulting tree is the order of first appearance.
	breader := bufio.NewReaderSize(r, 1000)
	continued := false
	for {
		// Records never exceed 80 columns. Anything that overflows the buffer
		// is junk and its continuation is skipped.
		line, isPrefix, err := breader.ReadLine()
		if err == io.EOF && len(line) == 0 {
			break
		} else if err != nil && err != io.EOF {
			return nil, err
		}
		if continued {
			continued = isPrefix
			continue
		}
		continued = isPrefix

		p.lineNum++
		p.line = line
		if err := p.parseLine(); err != nil {
			return nil, fmt.Errorf("%s: line %d: %s", fp, p.lineNum, err)
		}
	}

	entry.Models = p.builder.Models()
	if len(entry.Models) == 0 {
		return nil, fmt.Errorf("The file '%s' does not appear to be a valid "+
			"PDB file.", fp)
	}

	// If we couldn't find an Id code, inspect the base name of the file path.
	if len(entry.IdCode) == 0 {
		name := path.Base(fp)
		switch {
		case len(name) >= 7 && name[0:3] == "pdb":
			entry.IdCode = name[3:7]
		case len(name) == 7: // cath
			entry.IdCode = name[0:4]
		}
	}
	return entry, nil
}

func (p *pdbParser) parseLine() error {
	var err error

	switch p.cols(1, 6) {
	case "HEADER":
		p.entry.Classification = p.cols(11, 50)
		p.entry.IdCode = p.cols(63, 66)
	case "MODEL":
		p.curModel, err = p.atoi(11, 14)
		if err != nil {
			return err
		}
	case "ATOM":
		return p.parseAtom(false)
	case "HETATM":
		return p.parseAtom(true)
	}
	return nil
}

func (p *pdbParser) parseAtom(het bool) error {
	res := p.cols(18, 20)
	if waters[res] {
		return nil
	}
	seqNum, err := p.atoi(23, 26)
	if err != nil {
		return err
	}

	atom := entity.Atom{
		Name:      p.cols(13, 16),
		AltLoc:    p.at(17),
		Element:   p.cols(77, 78),
		Occupancy: 1.0,
	}
	if atom.X, err = p.atof(31, 38); err != nil {
		return err
	}
	if atom.Y, err = p.atof(39, 46); err != nil {
		return err
	}
	if atom.Z, err = p.atof(47, 54); err != nil {
		return err
	}
	if atom.Occupancy, err = p.atofOr(55, 60, 1.0); err != nil {
		return err
	}
	if atom.BFactor, err = p.atofOr(61, 66, 0.0); err != nil {
		return err
	}

	chain := p.at(22)
	if chain == ' ' || chain == 0 {
		chain = '_'
	}
	p.builder.Add(entity.AtomRecord{
		Model:   p.curModel,
		Chain:   string(chain),
		ResName: res,
		SeqNum:  seqNum,
		ICode:   p.icode(),
		Het:     het,
		Atom:    atom,
	})
	return nil
}

func (p *pdbParser) icode() byte {
	c := p.at(27)
	if c == 0 {
		return ' '
	}
	return c
}

func (p *pdbParser) atoi(start, end int) (int, error) {
	return strconv.Atoi(p.cols(start, end))
}

func (p *pdbParser) atof(start, end int) (float64, error) {
	return strconv.ParseFloat(p.cols(start, end), 64)
}

// atofOr is like atof, except blank columns produce def.
func (p *pdbParser) atofOr(start, end int, def float64) (float64, error) {
	s := p.cols(start, end)
	if len(s) == 0 {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

// cols returns the trimmed text in the 1-indexed, inclusive column range.
func (p *pdbParser) cols(start, end int) string {
	rs, re := start-1, end
	if rs >= len(p.line) || rs < 0 {
		return ""
	}
	if re > len(p.line) {
		re = len(p.line)
	}
	if re < 0 || re < rs {
		return ""
	}
	return string(bytes.TrimSpace(p.line[rs:re]))
}

func (p *pdbParser) at(column int) byte {
	i := column - 1
	if i < 0 || i >= len(p.line) {
		return 0
	}
	return p.line[i]
}

// Name returns the base name of the path of this PDB entry.
func (e *Entry) Name() string {
	return path.Base(e.Path)
}
