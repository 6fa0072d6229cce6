// Package report composes the full pipeline: raw CSV text in, sorted
// fixed-width density table out. It is a pure function of its inputs; the
// final write to an output stream belongs to the caller.
package report

import (
	"fmt"

	"github.com/JonMunkholm/citystats/internal/csv"
	"github.com/JonMunkholm/citystats/internal/region"
	"github.com/JonMunkholm/citystats/internal/render"
)

// Options bundles the per-stage configuration for one report run.
type Options struct {
	CSV    csv.Options
	Render render.Options

	// DropLast removes the final data row before sorting, matching the
	// standard reporting pipeline over the bundled dataset.
	DropLast bool
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		CSV:      csv.DefaultOptions(),
		Render:   render.DefaultOptions(),
		DropLast: true,
	}
}

// Collection runs the pipeline through the sort step: parse, map each
// record to a region, optionally drop the last row, then order by
// descending relative density. The returned collection is owned by the
// caller.
func Collection(input string, opts Options) (*region.Collection, error) {
	records, _ := csv.Parse(input, opts.CSV)
	col, err := region.Collect(records)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	if opts.DropLast {
		col.PopLast()
	}
	col.SortByRelativeDensity()
	return col, nil
}

// Generate runs the full pipeline and returns the rendered table text.
func Generate(input string, opts Options) (string, error) {
	col, err := Collection(input, opts)
	if err != nil {
		return "", err
	}
	return render.Table(col, opts.Render), nil
}
