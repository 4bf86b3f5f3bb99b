// Package main provides a command-line confounds extraction tool. It loads
// fMRIprep confounds files, applies a denoising strategy, and writes the
// reduced tables as TSV, optionally with QC charts.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/banshee-data/confounds/internal/confounds"
	"github.com/banshee-data/confounds/internal/confounds/report"
	"github.com/banshee-data/confounds/internal/fsutil"
	"github.com/banshee-data/confounds/internal/table"
)

// Config holds configuration for an extraction run.
type Config struct {
	Inputs       []string
	OutputDir    string
	Strategy     string
	Motion       string
	WMCSF        string
	GlobalSignal string
	PCAMotion    float64
	Report       bool
	Plot         bool
	Scree        bool
	Verbose      bool
}

func main() {
	var cfg Config
	var inputs string

	flag.StringVar(&inputs, "input", "", "comma-separated confounds TSV or preprocessed image paths (required)")
	flag.StringVar(&cfg.OutputDir, "output-dir", "out", "directory for reduced tables and QC output")
	flag.StringVar(&cfg.Strategy, "strategy", "minimal", "denoising strategy: a preset (minimal, minimal_glob) or a comma-separated category list (motion,high_pass,wm_csf,global)")
	flag.StringVar(&cfg.Motion, "motion", "full", "motion expansion mode: basic, derivatives, power2 or full")
	flag.StringVar(&cfg.WMCSF, "wm-csf", "basic", "white matter / CSF expansion mode")
	flag.StringVar(&cfg.GlobalSignal, "global-signal", "basic", "global signal expansion mode")
	flag.Float64Var(&cfg.PCAMotion, "pca-motion", 1, "motion PCA target variance fraction; reduction runs only when strictly between 0 and 1")
	flag.BoolVar(&cfg.Report, "report", false, "write an HTML QC chart per input")
	flag.BoolVar(&cfg.Plot, "plot", false, "write a PNG series plot per input")
	flag.BoolVar(&cfg.Scree, "scree", false, "write a motion PCA scree plot per input")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "log per-input progress")
	flag.Parse()

	if inputs == "" {
		log.Fatal("missing required -input")
	}
	cfg.Inputs = strings.Split(inputs, ",")

	if err := run(cfg, fsutil.OSFileSystem{}); err != nil {
		log.Fatalf("confounds-extract: %v", err)
	}
}

func run(cfg Config, fsys fsutil.FileSystem) error {
	opts, err := buildOptions(cfg, fsys)
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, in := range cfg.Inputs {
		out, err := confounds.Load(confounds.FromPath(in), opts)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}

		stem := inputStem(in)
		tsvPath := filepath.Join(cfg.OutputDir, stem+"_reduced.tsv")
		if err := table.WriteTSV(fsys, tsvPath, out); err != nil {
			return fmt.Errorf("%s: write output: %w", in, err)
		}
		if cfg.Verbose {
			log.Printf("wrote %s (%d columns, %d rows)", tsvPath, out.NumCols(), out.Rows())
		}

		if cfg.Report {
			path := filepath.Join(cfg.OutputDir, stem+"_qc.html")
			if err := report.WriteHTML(fsys, path, out, stem+" confounds"); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
		}
		if cfg.Plot {
			path := filepath.Join(cfg.OutputDir, stem+"_qc.png")
			if err := report.WriteSeriesPNG(fsys, path, out, stem+" confounds"); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
		}
		if cfg.Scree {
			if err := writeScree(cfg, fsys, in, stem, opts); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
		}
	}
	return nil
}

// buildOptions translates flag values into library options.
func buildOptions(cfg Config, fsys fsutil.FileSystem) (confounds.Options, error) {
	opts := confounds.DefaultOptions()
	opts.FS = fsys
	opts.PCAMotion = cfg.PCAMotion
	opts.Strategy = parseStrategy(cfg.Strategy)

	var err error
	if opts.Motion, err = confounds.ParseExpansion(cfg.Motion); err != nil {
		return opts, fmt.Errorf("-motion: %w", err)
	}
	if opts.WMCSF, err = confounds.ParseExpansion(cfg.WMCSF); err != nil {
		return opts, fmt.Errorf("-wm-csf: %w", err)
	}
	if opts.GlobalSignal, err = confounds.ParseExpansion(cfg.GlobalSignal); err != nil {
		return opts, fmt.Errorf("-global-signal: %w", err)
	}
	return opts, nil
}

// parseStrategy treats a comma in the value as an explicit category list;
// anything else is a preset name.
func parseStrategy(s string) confounds.Strategy {
	if strings.Contains(s, ",") {
		return confounds.Categories(strings.Split(s, ",")...)
	}
	return confounds.Preset(s)
}

// writeScree recomputes the motion variance spectrum from the raw table and
// plots it.
func writeScree(cfg Config, fsys fsutil.FileSystem, in, stem string, opts confounds.Options) error {
	raw, err := table.ReadTSV(fsys, in)
	if err != nil {
		return err
	}
	ratios, err := confounds.MotionVarianceRatios(raw, opts.Motion)
	if err != nil {
		return err
	}
	return report.WriteScreePNG(fsys, filepath.Join(cfg.OutputDir, stem+"_scree.png"), ratios)
}

// inputStem strips the directory and the fMRIprep suffix chain from an
// input path, leaving the subject/run identifier.
func inputStem(path string) string {
	base := filepath.Base(table.ResolveConfoundsPath(path))
	base = strings.TrimSuffix(base, ".tsv")
	base = strings.TrimSuffix(base, "_desc-confounds_regressors")
	return base
}
