// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gxf2chrom converts GTF and GFF3 annotations to a .chrom table holding,
// for each identifier, the extent of its CDS records.
//
// Each output line is
//
//	identifier	chromosome	strand	start	end
//
// with zero-based half-open coordinates.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kortschak/gxf2chrom/chrom"
	"github.com/kortschak/gxf2chrom/gxf"
	"github.com/kortschak/gxf2chrom/span"
)

const (
	name       = "gxf2chrom"
	version    = "0.1.0"
	repository = "https://github.com/kortschak/gxf2chrom"
)

func main() {
	err := newCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}

// options holds the resolved command configuration.
type options struct {
	input   string
	output  string
	threads int
	feature string
	region  string
	gff     string
	errors  int
	logMode string
}

func newCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   name + " -i <annotation.gtf[.gz]> -o <out.chrom>",
		Short: "Everything in .chrom from GTF/GFF",
		Long: `gxf2chrom converts GTF/GFF3 files to .chrom format.

For every identifier given by the feature attribute, the minimal start and
maximal end of all its CDS records are written with the chromosome and
strand of the first record seen. Input may be plain, gzip or BGZF
compressed.

Options may also be given in a YAML config file or as GXF2CHROM_*
environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			log, err := newLogger(opts.logMode)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
				return err
			}
			defer log.Sync()

			err = run(opts, log)
			if err != nil {
				log.Errorw("failed", "error", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "path to GTF/GFF file (required)")
	flags.StringP("output", "o", "", "path to output .chrom file (required)")
	flags.IntP("threads", "t", runtime.NumCPU(), "number of threads")
	flags.StringP("feature", "f", "protein_id", "attribute used as the identifier")
	flags.String("region", "", `only output spans overlapping region ("chr", "chr:start" or "chr:start-end", 1-based)`)
	flags.String("gff", "", "also write spans as GFF features to this file")
	flags.Int("errors", 0, "number of unparsable lines to log (-1 for all)")
	flags.String("log-mode", "dev", `logging mode ("dev" or "prod")`)
	flags.String("config", "", "YAML config file")

	v.SetEnvPrefix(strings.ToUpper(name))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.BindPFlags(flags)

	return cmd
}

func loadOptions(v *viper.Viper) (options, error) {
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		err := v.ReadInConfig()
		if err != nil {
			return options{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return options{
		input:   v.GetString("input"),
		output:  v.GetString("output"),
		threads: v.GetInt("threads"),
		feature: v.GetString("feature"),
		region:  v.GetString("region"),
		gff:     v.GetString("gff"),
		errors:  v.GetInt("errors"),
		logMode: v.GetString("log-mode"),
	}, nil
}

func newLogger(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func run(opts options, log *zap.SugaredLogger) error {
	log.Infof("%s v%s", name, version)
	log.Warnf("for any bug/issue contact: %s", repository)

	err := opts.validate(runtime.NumCPU())
	if err != nil {
		return err
	}
	var region *span.Region
	if opts.region != "" {
		r, err := span.ParseRegion(opts.region)
		if err != nil {
			return err
		}
		region = &r
	}
	log.Infow("arguments",
		"input", opts.input,
		"output", opts.output,
		"threads", opts.threads,
		"feature", opts.feature,
	)

	st := time.Now()
	startMem := memUsageMB()

	text, err := gxf.ReadFile(opts.input, opts.threads)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", opts.input, err)
	}
	agg := span.Aggregator{Key: opts.feature, Workers: opts.threads, ErrorLimit: opts.errors}
	table, rep, err := agg.Aggregate(text)
	if err != nil {
		return err
	}
	report(log, rep)

	if region != nil {
		table, err = table.Within(*region)
		if err != nil {
			return err
		}
		log.Infow("restricted to region", "region", opts.region, "identifiers", len(table))
	}

	err = writeFile(opts.output, func(f *os.File) error { return chrom.Write(f, table) })
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", opts.output, err)
	}
	if opts.gff != "" {
		g := chrom.GFF{Source: name, Feature: "CDS_span", Tag: opts.feature}
		err = writeFile(opts.gff, func(f *os.File) error { return g.Write(f, table) })
		if err != nil {
			return fmt.Errorf("failed to write %q: %w", opts.gff, err)
		}
	}

	sum := span.Summarize(table)
	log.Infow("span lengths",
		"identifiers", sum.N,
		"min", sum.Min,
		"median", sum.Median,
		"mean", fmt.Sprintf("%.1f", sum.Mean),
		"max", sum.Max,
	)
	log.Infof("elapsed: %.4f secs", time.Since(st).Seconds())
	log.Infof("memory: %.2f MB", max(memUsageMB()-startMem, 0))
	log.Infof("thank you for using %s!", name)
	return nil
}

func report(log *zap.SugaredLogger, rep span.Report) {
	log.Infow("parsed annotation",
		"lines", rep.Lines,
		"comments", rep.Comments,
		"records", rep.Records,
		"filtered", rep.Filtered,
		"dropped", rep.Dropped,
	)
	for _, e := range rep.Errors {
		log.Warnw("dropped line", "line", e.Line, "error", e.Err)
	}
	for _, c := range rep.Conflicts {
		loci := make([]string, len(c.Loci))
		for i, l := range c.Loci {
			loci[i] = fmt.Sprintf("%s(%c)@%d", l.Chrom, l.Strand, l.Line)
		}
		log.Warnw("inconsistent chromosome or strand, keeping first",
			"id", c.ID,
			"loci", strings.Join(loci, " "),
		)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// memUsageMB returns the memory obtained from the OS by the Go runtime.
func memUsageMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Sys) / (1 << 20)
}
