// Package csv implements the minimal delimiter-separated dialect used by
// the city statistics dataset.
//
// Splitting is purely syntactic: rows are split on the exact EOL string
// and fields on the exact separator string. There is no quoting, escaping,
// or trimming, so a field containing the separator or EOL literally cannot
// be represented, and surrounding whitespace reaches the consumer
// verbatim. Every input is accepted; malformed or ragged rows never
// produce an error.
package csv

import "strings"

// Record is one parsed data row, keyed by header name.
type Record map[string]string

// Options configures how raw text is split into rows and fields.
// Resolve defaults once at the boundary via DefaultOptions; the zero value
// of EOL or Separator falls back to the default at parse time.
type Options struct {
	// Headers treats the first row as field names, zipping each data row
	// against it into a Record.
	Headers bool

	// EOL is the row separator, matched literally. Default "\n".
	EOL string

	// Separator is the field separator, matched literally. Default ",".
	Separator string
}

// DefaultOptions returns the dataset's standard dialect: header row on,
// newline rows, comma fields.
func DefaultOptions() Options {
	return Options{Headers: true, EOL: "\n", Separator: ","}
}

func (o Options) resolved() Options {
	if o.EOL == "" {
		o.EOL = "\n"
	}
	if o.Separator == "" {
		o.Separator = ","
	}
	return o
}

// Parse splits text per opts and returns both views of the result: the raw
// table of rows, and — when opts.Headers is set — the data rows zipped
// against the header row into Records (records is nil with Headers off).
//
// The zip is positional and truncating: a row shorter than the header
// leaves the trailing field names absent from its Record, and values
// beyond the header's length are dropped.
//
// An empty input splits into a single empty row; with Headers on that row
// is consumed as the header, so records comes back empty rather than as an
// error.
func Parse(text string, opts Options) (records []Record, rows [][]string) {
	opts = opts.resolved()

	lines := strings.Split(text, opts.EOL)
	rows = make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, opts.Separator)
	}

	if !opts.Headers {
		return nil, rows
	}

	header := rows[0]
	records = make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, rows
}
