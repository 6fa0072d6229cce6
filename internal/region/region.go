// Package region defines the city statistics domain model: the Region
// entity, the mapper from parsed CSV records, and the ordered Collection
// with its density aggregates.
package region

import (
	"fmt"
	"math"

	"github.com/JonMunkholm/citystats/internal/csv"
)

// Region is one city's statistics row. A Region is never modified after
// construction.
//
// Population, Area, and Density carry whole-number counts but are held as
// float64 so that unparseable input can degrade to NaN and downstream
// ratios can reach +/-Inf instead of faulting.
type Region struct {
	City       string  `json:"city"`
	Population float64 `json:"population"`
	Area       float64 `json:"area"`
	Density    float64 `json:"density"`
	Country    string  `json:"country"`
}

// requiredFields lists the columns a record must carry to build a Region.
var requiredFields = [...]string{"city", "population", "area", "density", "country"}

// InvalidRecordError reports a record that is missing a required column,
// typically a ragged row that came up short of the header.
type InvalidRecordError struct {
	Field string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("region: record missing required field %q", e.Field)
}

// FromRecord builds a Region from one parsed CSV record.
//
// city and country pass through verbatim, including any surrounding
// whitespace the parser preserved. Numeric fields use truncating base-10
// parsing: leading whitespace and an optional sign are skipped, then
// digits are consumed until the first non-digit byte ("783.8" parses as
// 783). A value with no leading digits becomes NaN rather than an error,
// so callers needing strict numbers must check for the sentinel.
//
// A field absent from the record entirely is rejected with
// *InvalidRecordError: a row that never carried the column is a broken
// record, not a parseable value.
func FromRecord(rec csv.Record) (Region, error) {
	for _, name := range requiredFields {
		if _, ok := rec[name]; !ok {
			return Region{}, &InvalidRecordError{Field: name}
		}
	}
	return Region{
		City:       rec["city"],
		Population: parseCount(rec["population"]),
		Area:       parseCount(rec["area"]),
		Density:    parseCount(rec["density"]),
		Country:    rec["country"],
	}, nil
}

// RelativeDensity expresses density as a percentage of max, rounded half
// away from zero. A zero max divides out to +Inf for positive densities,
// following floating-point semantics rather than faulting; NaN propagates.
func RelativeDensity(density, max float64) float64 {
	return math.Round(density * 100 / max)
}

// parseCount is the truncating integer parse shared by the numeric fields.
func parseCount(s string) float64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	var n float64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + float64(s[i]-'0')
		i++
	}
	if i == start {
		return math.NaN()
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
