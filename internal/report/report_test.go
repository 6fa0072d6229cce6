package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/JonMunkholm/citystats/internal/dataset"
	"github.com/JonMunkholm/citystats/internal/region"
)

const sample = "city,population,area,density,country\n" +
	"A,100,10,20,X\n" +
	"B,200,20,30,Y\n" +
	"C,300,30,25,Z"

func cities(t *testing.T, col *region.Collection) []string {
	t.Helper()
	var out []string
	for _, r := range col.Regions() {
		out = append(out, r.City)
	}
	return out
}

func TestCollection_SortsByRelativeDensity(t *testing.T) {
	opts := DefaultOptions()
	opts.DropLast = false

	col, err := Collection(sample, opts)
	if err != nil {
		t.Fatalf("Collection() error = %v", err)
	}

	got := cities(t, col)
	want := []string{"B", "C", "A"} // densities 30, 25, 20 descending
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("city order = %v, want %v", got, want)
		}
	}
}

func TestCollection_DropLast(t *testing.T) {
	col, err := Collection(sample, DefaultOptions())
	if err != nil {
		t.Fatalf("Collection() error = %v", err)
	}

	if col.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after dropping the final row", col.Len())
	}
	for _, r := range col.Regions() {
		if r.City == "C" {
			t.Error("row C survived, want it dropped before sorting")
		}
	}
}

func TestGenerate_RendersSortedTable(t *testing.T) {
	opts := DefaultOptions()
	opts.DropLast = false

	out, err := Generate(sample, opts)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	wantPrefixes := []string{"B", "C", "A"}
	for i, want := range wantPrefixes {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want city %q first", i, lines[i], want)
		}
		if len(lines[i]) != 68 {
			t.Errorf("line %d length = %d, want 68", i, len(lines[i]))
		}
	}
}

func TestGenerate_InvalidRecord(t *testing.T) {
	input := "city,population,area,density,country\nA,100" // ragged row

	_, err := Generate(input, DefaultOptions())
	if err == nil {
		t.Fatal("Generate() error = nil, want failure for missing fields")
	}

	var invalid *region.InvalidRecordError
	if !errors.As(err, &invalid) {
		t.Errorf("Generate() error = %v, want wrapped *InvalidRecordError", err)
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	out, err := Generate("", DefaultOptions())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "" {
		t.Errorf("Generate(\"\") = %q, want empty output", out)
	}
}

func TestGenerate_BundledDataset(t *testing.T) {
	snap := dataset.Embedded()

	out, err := Generate(snap.Text, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9 (final row dropped)", len(lines))
	}

	wantCities := []string{
		"  Lagos",
		"  Delhi",
		"  New York City",
		"  Sao Paulo",
		"  Tokyo",
		"  Mexico City",
		"  London",
		"  Shanghai",
		"  Istanbul",
	}
	wantRelative := []string{
		"   100", "    83", "    79", "    58", "    45",
		"    44", "    40", "    28", "    19",
	}
	for i, line := range lines {
		if got := strings.TrimRight(line[:18], " "); got != wantCities[i] {
			t.Errorf("line %d city = %q, want %q", i, got, wantCities[i])
		}
		if got := line[62:68]; got != wantRelative[i] {
			t.Errorf("line %d relative density = %q, want %q", i, got, wantRelative[i])
		}
	}
}
