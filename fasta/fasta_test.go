package fasta

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/TuftsBCB/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFastaInput = `>1abc_A
MKTAYIAKQRQISFVKSHFSRQ
>1abc_B
GSHMLEDPVDAFQ
`

func residues(s string) []seq.Residue {
	rs := make([]seq.Residue, len(s))
	for i := range s {
		rs[i] = seq.Residue(s[i])
	}
	return rs
}

func str(rs []seq.Residue) string {
	bs := make([]byte, len(rs))
	for i, r := range rs {
		bs[i] = byte(r)
	}
	return string(bs)
}

func TestReadAll(t *testing.T) {
	all, err := NewReader(strings.NewReader(testFastaInput)).ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "1abc_A", all[0].Name)
	assert.Equal(t, "MKTAYIAKQRQISFVKSHFSRQ", str(all[0].Residues))
	assert.Equal(t, "1abc_B", all[1].Name)
	assert.Equal(t, "GSHMLEDPVDAFQ", str(all[1].Residues))
}

func TestRead(t *testing.T) {
	input := "\n>  first  \nac\n\n  gt*-\n>second\nWY"
	r := NewReader(strings.NewReader(input))

	s, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "first", s.Name)
	assert.Equal(t, "ACGT*-", str(s.Residues))

	s, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, "second", s.Name)
	assert.Equal(t, "WY", str(s.Residues))

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReadErrors(t *testing.T) {
	_, err := NewReader(strings.NewReader("MKT\n")).Read()
	assert.Error(t, err)

	_, err = NewReader(strings.NewReader(">x\nMK1\n")).Read()
	assert.Error(t, err)

	r := NewReader(strings.NewReader(">x\nMK1\n"))
	r.TrustSequences = true
	s, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "MK1", str(s.Residues))
}

func TestReadWrite(t *testing.T) {
	entries, err := NewReader(strings.NewReader(testFastaInput)).ReadAll()
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, NewWriter(buf).WriteAll(entries))
	assert.Equal(t, testFastaInput, buf.String())
}

func TestWriteColumns(t *testing.T) {
	tests := []struct {
		cols int
		want string
	}{
		{0, ">s\nABCDEFG\n"},
		{3, ">s\nABC\nDEF\nG\n"},
		{7, ">s\nABCDEFG\n"},
		{100, ">s\nABCDEFG\n"},
	}
	for _, test := range tests {
		buf := new(bytes.Buffer)
		w := NewWriter(buf)
		w.Columns = test.cols
		require.NoError(t, w.WriteAll([]seq.Sequence{
			{Name: "s", Residues: residues("ABCDEFG")},
		}))
		assert.Equal(t, test.want, buf.String(), "columns %d", test.cols)
	}
}
