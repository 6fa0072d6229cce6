// Package render lays out a region collection as fixed-width text, one
// line per region.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/JonMunkholm/citystats/internal/region"
)

// Column widths are part of the output contract and must not drift;
// downstream consumers align on exact character offsets.
const (
	cityWidth       = 18
	populationWidth = 10
	areaWidth       = 8
	densityWidth    = 8
	countryWidth    = 18
	relativeWidth   = 6
)

// Options configures the renderer.
type Options struct {
	// RelativeDensity appends a trailing column holding each region's
	// density as a rounded percentage of the collection's maximum.
	RelativeDensity bool
}

// DefaultOptions returns the standard rendering mode, with the relative
// density column enabled.
func DefaultOptions() Options {
	return Options{RelativeDensity: true}
}

// Table renders the collection as newline-joined fixed-width lines.
//
// City is space-padded on the right to 18 characters; population, area,
// and density are right-aligned to 10, 8, and 8; country is right-aligned
// to 18; the optional relative density column is right-aligned to 6. The
// reference maximum for the relative column is taken from the collection's
// contents at render time. The collection is never mutated.
func Table(c *region.Collection, opts Options) string {
	max := c.MaxDensity()

	var b strings.Builder
	for i, r := range c.Regions() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(padRight(r.City, cityWidth))
		b.WriteString(padLeft(formatCount(r.Population), populationWidth))
		b.WriteString(padLeft(formatCount(r.Area), areaWidth))
		b.WriteString(padLeft(formatCount(r.Density), densityWidth))
		b.WriteString(padLeft(r.Country, countryWidth))
		if opts.RelativeDensity {
			b.WriteString(padLeft(formatCount(region.RelativeDensity(r.Density, max)), relativeWidth))
		}
	}
	return b.String()
}

// Fprint renders the collection and emits it to w as a single write.
func Fprint(w io.Writer, c *region.Collection, opts Options) error {
	_, err := io.WriteString(w, Table(c, opts))
	return err
}

// formatCount prints a count field. Sentinel values keep their standard
// spellings ("NaN", "+Inf") instead of faulting.
func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// padLeft right-aligns s in a field of width w. Values longer than the
// field are left as-is.
func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

// padRight left-aligns s in a field of width w.
func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
