package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/colbyford/PepFlowww/featurize"
	"github.com/colbyford/PepFlowww/logger"
)

func newParseCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] structure [structure ...]",
		Short: "Normalize structures into per-residue arrays",
		Long: "parse normalizes each structure given. With one structure, " +
			"--out names the\nfile the dataset is written to. With several, " +
			"--out names a directory and\neach dataset is written to " +
			"<name>.gob in it. Without --out, a summary is printed.\n\n" +
			"Structures without usable residues are reported and skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), cmd.OutOrStdout(), v, args)
		},
	}

	f := cmd.Flags()
	f.String("format", "", "structure format: pdb or cif (default: from the file name)")
	f.Int("model", 0, "index of the model to read")
	f.Int("assembly", 0, "index of the biological assembly (mmCIF only)")
	f.Float64("unknown-threshold", 1.0,
		"reject structures whose fraction of UNK residues is at least this")
	f.Float64("break-distance", featurize.DefaultBreakDistance,
		"CA-CA distance above which a chain break is assumed")
	f.Bool("bfactor", false, "include heavy atom B-factors")
	f.String("out", "", "file (or directory, for several structures) to write to")
	f.Int("workers", 0, "structures parsed at once (default: number of CPUs)")
	return cmd
}

func runParse(ctx context.Context, w io.Writer, v *viper.Viper, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := options(v)
	out := v.GetString("out")

	var results []featurize.Result
	if name := v.GetString("format"); name != "" {
		if len(paths) > 1 {
			return ef("--format can only be used with a single structure.")
		}
		format, err := featurize.ParseFormat(name)
		if err != nil {
			return err
		}
		d, idx, err := featurize.ParseFile(paths[0], format, opts)
		results = []featurize.Result{{
			Path: paths[0], Dataset: d, Index: idx, Err: err,
		}}
	} else {
		results = featurize.ParseFiles(ctx, paths, opts, v.GetInt("workers"))
	}

	if len(paths) > 1 && out != "" {
		if err := os.MkdirAll(out, 0755); err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if errors.Is(r.Err, featurize.ErrNoData) {
			logger.Warn("skipping structure", zap.String("path", r.Path),
				zap.Error(r.Err))
			fmt.Fprintf(w, "%s: %s\n", r.Path, r.Err)
			continue
		}
		if r.Err != nil {
			logger.Error("could not parse structure",
				zap.String("path", r.Path), zap.Error(r.Err))
			failed++
			continue
		}

		switch {
		case out == "":
			summarize(w, r.Path, r.Dataset)
		case len(paths) == 1:
			if err := save(out, r.Dataset); err != nil {
				return err
			}
		default:
			if err := save(filepath.Join(out, datasetName(r.Path)), r.Dataset); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return ef("%d of %d structures could not be parsed.", failed, len(paths))
	}
	return nil
}

// datasetName turns "/x/1abc.cif.gz" into "1abc.gob".
func datasetName(fp string) string {
	name := strings.TrimSuffix(filepath.Base(fp), ".gz")
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".gob"
}

func save(fp string, d *featurize.Dataset) error {
	f, err := os.Create(fp)
	if err != nil {
		return err
	}
	if err := d.Save(f); err != nil {
		f.Close()
		return ef("Could not write '%s': %w", fp, err)
	}
	return f.Close()
}

func summarize(w io.Writer, fp string, d *featurize.Dataset) {
	fmt.Fprintf(w, "%s: %d residues\n", fp, d.Len())
	for start := 0; start < d.Len(); {
		end := start
		for end < d.Len() && d.ChainNb[end] == d.ChainNb[start] {
			end++
		}
		seq := make([]byte, 0, end-start)
		for _, a := range d.AA[start:end] {
			seq = append(seq, a.OneLetter())
		}
		fmt.Fprintf(w, "  chain %s: %d residues, res_nb %d-%d, %s\n",
			d.ChainID[start], end-start, d.ResNb[start], d.ResNb[end-1], seq)
		start = end
	}
}
