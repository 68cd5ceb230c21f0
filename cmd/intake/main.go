// Command intake analyzes a single CAD file from the command line.
// Usage: go run ./cmd/intake -file part.stl [-material aluminum-6061] [-json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/opencnc/intake/internal/analyzer"
	"github.com/opencnc/intake/internal/cli"
	"github.com/opencnc/intake/internal/logging"
	"github.com/opencnc/intake/internal/model"
)

func main() {
	opts, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parsing arguments: %v", err)
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		log.Fatalf("reading %s: %v", opts.File, err)
	}

	an, err := analyzer.NewDefaultAnalyzer(nil, logging.NewNoopLogger())
	if err != nil {
		log.Fatalf("creating analyzer: %v", err)
	}
	defer an.Close()

	report, err := an.Analyze(context.Background(), &model.AnalysisRequest{
		Filename: filepath.Base(opts.File),
		Material: opts.Material,
		Data:     data,
	})
	if err != nil {
		log.Fatalf("analyzing %s: %v", opts.File, err)
	}

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("encoding report: %v", err)
		}
		return
	}

	fmt.Print(cli.Render(report))
}
