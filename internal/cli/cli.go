// Package cli implements argument parsing and plain-text report rendering
// for the intake command line tool.
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/opencnc/intake/internal/model"
)

// Options are the parsed command line options.
type Options struct {
	// File is the path of the CAD file to analyze.
	File string

	// Material is an optional material slug or label.
	Material string

	// JSON switches the output from the text report to the raw JSON
	// analysis report.
	JSON bool
}

// ParseArgs parses command line arguments (without the program name).
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}

	fs := flag.NewFlagSet("intake", flag.ContinueOnError)
	fs.StringVar(&opts.File, "file", "", "path of the CAD file to analyze")
	fs.StringVar(&opts.Material, "material", "", "material slug or label (e.g. aluminum-6061)")
	fs.BoolVar(&opts.JSON, "json", false, "emit the raw JSON report instead of text")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.File == "" {
		return nil, fmt.Errorf("-file is required")
	}
	return opts, nil
}

// Render formats an analysis report as a human-readable text block.
func Render(report *model.AnalysisReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "File:     %s\n", report.Filename)
	if !report.Known {
		fmt.Fprintf(&b, "Format:   %s (unrecognized)\n", report.Extension)
		b.WriteString("\nThis extension is not in the CAD format knowledge base.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Format:   %s\n", report.Format.DisplayName)
	fmt.Fprintf(&b, "Class:    %s\n", report.Format.GeometryClass)
	fmt.Fprintf(&b, "Material: %s\n", report.Material.Label)

	if report.Mesh != nil {
		m := report.Mesh
		fmt.Fprintf(&b, "\nTriangles:  %d\n", m.TriangleCount)
		fmt.Fprintf(&b, "Dimensions: %.4g x %.4g x %.4g\n", m.BBoxDims[0], m.BBoxDims[1], m.BBoxDims[2])
		fmt.Fprintf(&b, "Watertight: %v\n", m.IsWatertight)
		if m.ComponentCount != nil {
			fmt.Fprintf(&b, "Components: %d\n", *m.ComponentCount)
		}
	}
	if report.Drawing != nil {
		d := report.Drawing
		fmt.Fprintf(&b, "\nEntities: %d\n", d.TotalEntities)
		fmt.Fprintf(&b, "Layers:   %d\n", d.LayerCount)
		for _, t := range sortedTypes(d.CountsByType) {
			fmt.Fprintf(&b, "  %-12s %d\n", t, d.CountsByType[t])
		}
	}
	if report.Warning != "" {
		fmt.Fprintf(&b, "\nWarning: %s\n", report.Warning)
	}

	if s := report.Score; s != nil {
		fmt.Fprintf(&b, "\nQuote risk:       %d/100 (%s)\n", s.Risk, s.RiskBand.Label)
		fmt.Fprintf(&b, "Quote confidence: %d/100 (%s)\n", s.Confidence, s.ConfidenceBand.Label)
		for _, e := range s.Explanations {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}

	if report.Triage != nil {
		fmt.Fprintf(&b, "\n%s\n", report.Triage.Text())
	}
	return b.String()
}

func sortedTypes(counts map[string]int) []string {
	out := make([]string, 0, len(counts))
	for t := range counts {
		out = append(out, t)
	}
	// Small fixed set; insertion sort keeps output stable.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
