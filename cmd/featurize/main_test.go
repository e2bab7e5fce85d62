package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colbyford/PepFlowww/aa"
	"github.com/colbyford/PepFlowww/featurize"
)

func atomLine(serial int, name, res string, chain byte, seqNum int,
	x, y, z float64) string {

	return fmt.Sprintf("ATOM  %5d  %-3s %3s %c%4d    %8.3f%8.3f%8.3f"+
		"  1.00 20.00           %c", serial, name, res, chain, seqNum,
		x, y, z, name[0])
}

// backbone writes N, CA and C records with the CA at x.
func backbone(serial int, res string, chain byte, seqNum int, x float64) []string {
	return []string{
		atomLine(serial, "N", res, chain, seqNum, x-1.2, 0.5, 0),
		atomLine(serial+1, "CA", res, chain, seqNum, x, 0, 0),
		atomLine(serial+2, "C", res, chain, seqNum, x+0.6, 1.4, 0),
	}
}

func testPDB() string {
	lines := []string{"HEADER    PEPTIDE                                 01-JAN-00   1TST"}
	lines = append(lines, "MODEL        1")
	lines = append(lines, backbone(1, "ALA", 'A', 1, 0)...)
	lines = append(lines, backbone(4, "GLY", 'A', 2, 3.8)...)
	lines = append(lines, backbone(7, "UNK", 'A', 3, 7.6)...)
	lines = append(lines, backbone(10, "LYS", 'B', 7, 30)...)
	lines = append(lines, "ENDMDL", "MODEL        2")
	lines = append(lines, backbone(1, "TRP", 'A', 1, 0)...)
	lines = append(lines, "ENDMDL", "END")
	return strings.Join(lines, "\n") + "\n"
}

func writeFile(t *testing.T, dir, name, contents string) string {
	fp := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fp, []byte(contents), 0644))
	return fp
}

func run(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd := newRootCommand(true)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestParseSummary(t *testing.T) {
	fp := writeFile(t, t.TempDir(), "1tst.pdb", testPDB())

	out, err := run("parse", fp)
	require.NoError(t, err)
	assert.Equal(t, fp+": 3 residues\n"+
		"  chain A: 2 residues, res_nb 1-2, AG\n"+
		"  chain B: 1 residues, res_nb 1-1, K\n", out)

	out, err = run("parse", "--model", "1", "--format", "pdb", fp)
	require.NoError(t, err)
	assert.Contains(t, out, "chain A: 1 residues, res_nb 1-1, W")
}

func TestParseOut(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "1tst.pdb", testPDB())
	out := filepath.Join(dir, "1tst.gob")

	_, err := run("parse", "--bfactor", "--out", out, fp)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	d, err := featurize.Open(f)
	require.NoError(t, err)
	assert.Equal(t, []aa.AminoAcid{aa.ALA, aa.GLY, aa.LYS}, d.AA)
	assert.Len(t, d.BFactorHeavyAtom, 3)
}

func TestParseMany(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "1tst.pdb", testPDB())
	second := writeFile(t, dir, "2tst.ent", testPDB())
	outDir := filepath.Join(dir, "out")

	_, err := run("parse", "--workers", "2", "--out", outDir, first, second)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "1tst.gob"))
	assert.FileExists(t, filepath.Join(outDir, "2tst.gob"))

	_, err = run("parse", "--format", "pdb", first, second)
	assert.Error(t, err)
}

func TestParseNoData(t *testing.T) {
	fp := writeFile(t, t.TempDir(), "1tst.pdb", testPDB())

	out, err := run("parse", "--unknown-threshold", "0.25", fp)
	require.NoError(t, err)
	assert.Contains(t, out, "too many unknown residues")

	t.Setenv("FEATURIZE_UNKNOWN_THRESHOLD", "0.25")
	out, err = run("parse", fp)
	require.NoError(t, err)
	assert.Contains(t, out, "too many unknown residues")
}

func TestParseConfigFile(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "1tst.pdb", testPDB())
	config := writeFile(t, dir, "featurize.yaml", "model: 1\nlog-level: warn\n")

	out, err := run("--config", config, "parse", fp)
	require.NoError(t, err)
	assert.Contains(t, out, "chain A: 1 residues, res_nb 1-1, W")

	_, err = run("--config", filepath.Join(dir, "missing.yaml"), "parse", fp)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "1tst.pdb", testPDB())

	_, err := run("parse", filepath.Join(dir, "missing.pdb"))
	assert.Error(t, err)

	_, err = run("parse", "--model", "5", fp)
	assert.Error(t, err)

	_, err = run("--log-level", "loud", "parse", fp)
	assert.Error(t, err)

	_, err = run("parse")
	assert.Error(t, err)
}

func TestFasta(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, dir, "1tst.pdb", testPDB())

	out, err := run("fasta", fp)
	require.NoError(t, err)
	assert.Equal(t, ">1TST_A\nW\n>1TST_B\nK\n", out)

	outFile := filepath.Join(dir, "1tst.fasta")
	_, err = run("fasta", "--out", outFile, fp)
	require.NoError(t, err)
	bs, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, ">1TST_A\nW\n>1TST_B\nK\n", string(bs))
}
