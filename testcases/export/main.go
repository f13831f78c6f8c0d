// Command export writes test case definitions to JSON, so that reference
// images can be produced by independent implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/mandelbrot"
	"seehuhn.de/go/mandelbrot/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name          string  `json:"name"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	XMin          float64 `json:"x_min"`
	XMax          float64 `json:"x_max"`
	YMin          float64 `json:"y_min"`
	YMax          float64 `json:"y_max"`
	MaxIterations int     `json:"max_iterations"`
	Orientation   string  `json:"orientation"`
	Inside        string  `json:"inside"`
	FromHue       float64 `json:"from_hue"`
	ToHue         float64 `json:"to_hue"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	cfg := mandelbrot.ExampleConfig(tc)
	return jsonTestCase{
		Name:          category + "_" + tc.Name,
		Width:         cfg.Width,
		Height:        cfg.Height,
		XMin:          cfg.View.LLx,
		XMax:          cfg.View.URx,
		YMin:          cfg.View.LLy,
		YMax:          cfg.View.URy,
		MaxIterations: cfg.MaxIterations,
		Orientation:   cfg.Orientation.String(),
		Inside:        cfg.Palette.Inside.String(),
		FromHue:       cfg.Palette.FromHue,
		ToHue:         cfg.Palette.ToHue,
	}
}
