package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colbyford/PepFlowww/fasta"
	"github.com/colbyford/PepFlowww/featurize"
)

func newFastaCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fasta [flags] pdb-file",
		Short: "Write the chain sequences of a PDB file as FASTA",
		Long: "fasta writes one sequence per chain, named <id>_<chain>. " +
			"Every model is read;\na chain in a later model replaces the " +
			"same chain from an earlier one.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFasta(cmd.OutOrStdout(), v, args[0])
		},
	}

	f := cmd.Flags()
	f.String("out", "", "FASTA file to write (default: standard output)")
	f.Int("columns", 60, "wrap sequences at this many columns (0: no wrapping)")
	return cmd
}

func runFasta(w io.Writer, v *viper.Viper, fp string) error {
	entries, err := featurize.FastaEntriesFromPDB(fp)
	if err != nil {
		return err
	}

	if out := v.GetString("out"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	fw := fasta.NewWriter(w)
	fw.Columns = v.GetInt("columns")
	return fw.WriteAll(entries)
}
