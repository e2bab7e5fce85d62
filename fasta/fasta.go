package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/TuftsBCB/seq"
)

// A Reader reads sequences from FASTA encoded input.
//
// If TrustSequences is true, then sequence data will not be checked to make
// sure that it conforms to the NCBI format. (See the Read method for details.)
// By default, TrustSequences is false.
type Reader struct {
	// When set to true, the sequences will not be checked for errors.
	// This may be set at any time.
	TrustSequences bool
	buf            *bufio.Reader
	line           int
	nextHeader     []byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf:  bufio.NewReader(r),
		line: 1,
	}
}

// ReadAll will read all sequences in the FASTA input and return them as a
// slice. If an error is encountered, processing is stopped, and the error is
// returned.
func (r *Reader) ReadAll() ([]seq.Sequence, error) {
	seqs := make([]seq.Sequence, 0, 100)
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// Read will read the next sequence in the FASTA input.
//
// The only characters allowed in the sequence section are a-z, A-Z, * and -.
// Any other character will result in an error. All lower case letters are
// translated to upper case.
//
// Blank lines, leading and trailing whitespace are always ignored (regardless
// of where they are).
//
// It is NOT safe to call this function from multiple goroutines.
func (r *Reader) Read() (seq.Sequence, error) {
	s := seq.Sequence{}
	seenHeader := false

	// The header of this sequence may have been read already, while looking
	// for the end of the last one.
	if r.nextHeader != nil {
		s.Name = trimHeader(r.nextHeader)
		r.nextHeader = nil
		seenHeader = true
	}
	for {
		line, err := r.buf.ReadBytes('\n')
		if err == io.EOF {
			if len(line) == 0 {
				if !seenHeader {
					return seq.Sequence{}, io.EOF
				}
				return s, nil
			}
		} else if err != nil {
			return seq.Sequence{}, err
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			r.line++
			continue
		}

		if !seenHeader {
			if line[0] != '>' {
				return seq.Sequence{}, fmt.Errorf(
					"Error on line %d: Expected '>', got '%c'.", r.line, line[0])
			}
			s.Name = trimHeader(line)
			seenHeader = true
			r.line++
			continue
		} else if line[0] == '>' {
			r.nextHeader = line
			r.line++
			return s, nil
		}

		for _, b := range line {
			if !r.TrustSequences {
				var ok bool
				if b, ok = translate(b); !ok {
					return seq.Sequence{}, fmt.Errorf(
						"Invalid character '%c' on line %d.", b, r.line)
				}
			}
			s.Residues = append(s.Residues, seq.Residue(b))
		}
		r.line++
	}
}

// translate checks that b may appear in a sequence and upper cases it.
func translate(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A', true
	case b >= 'A' && b <= 'Z', b == '*', b == '-':
		return b, true
	}
	return b, false
}

func trimHeader(line []byte) string {
	return string(bytes.TrimSpace(bytes.TrimLeft(line, ">")))
}

// A Writer writes sequences to a FASTA encoded file.
//
// The header text is never wrapped.
type Writer struct {
	// The number of columns to wrap a sequence at. By default, this
	// is set to 60. A value <= 0 will result in no wrapping.
	Columns int
	buf     *bufio.Writer
}

// NewWriter creates a new FASTA writer that can write sequences to an
// io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Columns: 60,
		buf:     bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single sequence to the underlying io.Writer.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(s seq.Sequence) error {
	if _, err := fmt.Fprintf(w.buf, ">%s\n", s.Name); err != nil {
		return err
	}
	cols := w.Columns
	if cols <= 0 {
		cols = len(s.Residues)
	}
	for start := 0; start < len(s.Residues); start += cols {
		end := start + cols
		if end > len(s.Residues) {
			end = len(s.Residues)
		}
		for _, r := range s.Residues[start:end] {
			if err := w.buf.WriteByte(byte(r)); err != nil {
				return err
			}
		}
		if err := w.buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes a slice of sequences to the underyling io.Writer, and
// calls Flush.
func (w *Writer) WriteAll(seqs []seq.Sequence) error {
	for _, s := range seqs {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return w.Flush()
}
