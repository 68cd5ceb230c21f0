package main

import (
	"context"
	"fmt"

	"github.com/opencnc/intake/internal/analyzer"
	"github.com/opencnc/intake/internal/cli"
	"github.com/opencnc/intake/internal/logging"
	"github.com/opencnc/intake/internal/model"
)

// demoSTL is a small ASCII STL: a single open triangle, enough to show the
// mesh pipeline flag a non-watertight upload.
const demoSTL = `solid demo
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 10 0 0
    vertex 0 10 0
  endloop
endfacet
endsolid demo
`

func main() {
	an, err := analyzer.NewDefaultAnalyzer(nil, logging.NewNoopLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer an.Close()

	report, err := an.Analyze(context.Background(), &model.AnalysisRequest{
		Filename: "demo.stl",
		Material: "aluminum-6061",
		Data:     []byte(demoSTL),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Print(cli.Render(report))
}
