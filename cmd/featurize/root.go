package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colbyford/PepFlowww/logger"
)

var ef = fmt.Errorf

func newRootCommand(dotenvLoaded bool) *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "featurize",
		Short: "Turn protein structures into per-residue arrays",
		Long: "featurize reads PDB and PDBx/mmCIF files and normalizes their " +
			"amino acid residues\ninto aligned per-residue arrays of types, " +
			"heavy atom coordinates and\ngap-aware residue numbers.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := loadConfig(v); err != nil {
				return err
			}
			level, err := logger.ParseLevel(v.GetString("log-level"))
			if err != nil {
				return err
			}
			if err := logger.InitLogger(level); err != nil {
				return err
			}
			if !dotenvLoaded {
				logger.Debug("No .env found, using local environment")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "YAML file with default flag values")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newParseCommand(v), newFastaCommand(v))
	return cmd
}
