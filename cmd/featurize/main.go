// Command featurize turns PDB and PDBx/mmCIF structures into per-residue
// arrays, and extracts chain sequences as FASTA.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal. It is reported once the logger exists.
	dotenvErr := godotenv.Load()

	cmd := newRootCommand(dotenvErr == nil)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
