package region

import (
	"errors"
	"math"
	"testing"

	"github.com/JonMunkholm/citystats/internal/csv"
)

func fullRecord() csv.Record {
	return csv.Record{
		"city":       "Shanghai",
		"population": "24256800",
		"area":       "6340",
		"density":    "3826",
		"country":    "China",
	}
}

func TestFromRecord(t *testing.T) {
	r, err := FromRecord(fullRecord())
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}

	if r.City != "Shanghai" {
		t.Errorf("City = %q, want %q", r.City, "Shanghai")
	}
	if r.Population != 24256800 {
		t.Errorf("Population = %v, want 24256800", r.Population)
	}
	if r.Country != "China" {
		t.Errorf("Country = %q, want %q", r.Country, "China")
	}
}

func TestFromRecord_TruncatingParse(t *testing.T) {
	rec := fullRecord()
	rec["population"] = "8000000"
	rec["area"] = "783.8"

	r, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}

	if r.Population != 8000000 {
		t.Errorf("Population = %v, want 8000000", r.Population)
	}
	if r.Area != 783 {
		t.Errorf("Area = %v, want 783 (truncated at first non-digit)", r.Area)
	}
}

func TestFromRecord_UnparseableBecomesNaN(t *testing.T) {
	rec := fullRecord()
	rec["density"] = "n/a"

	r, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord() error = %v, want sentinel instead of failure", err)
	}
	if !math.IsNaN(r.Density) {
		t.Errorf("Density = %v, want NaN", r.Density)
	}
}

func TestFromRecord_MissingFieldFails(t *testing.T) {
	rec := fullRecord()
	delete(rec, "area")

	_, err := FromRecord(rec)
	if err == nil {
		t.Fatal("FromRecord() error = nil, want InvalidRecordError")
	}

	var invalid *InvalidRecordError
	if !errors.As(err, &invalid) {
		t.Fatalf("FromRecord() error = %T, want *InvalidRecordError", err)
	}
	if invalid.Field != "area" {
		t.Errorf("InvalidRecordError.Field = %q, want %q", invalid.Field, "area")
	}
}

func TestFromRecord_PreservesWhitespaceInStrings(t *testing.T) {
	rec := fullRecord()
	rec["city"] = "  Shanghai"

	r, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	if r.City != "  Shanghai" {
		t.Errorf("City = %q, want indentation preserved", r.City)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain integer", "123", 123},
		{"truncates at decimal point", "783.8", 783},
		{"truncates at letter", "42km", 42},
		{"skips leading whitespace", "  99", 99},
		{"negative sign", "-7", -7},
		{"explicit plus sign", "+7", 7},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseCount(tt.input); got != tt.want {
				t.Errorf("parseCount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCount_NaN(t *testing.T) {
	for _, input := range []string{"", "abc", "-", "+", "  ", ".5"} {
		if got := parseCount(input); !math.IsNaN(got) {
			t.Errorf("parseCount(%q) = %v, want NaN", input, got)
		}
	}
}

func TestRelativeDensity(t *testing.T) {
	tests := []struct {
		name    string
		density float64
		max     float64
		want    float64
	}{
		{"half of reference", 200, 400, 50},
		{"equal to reference", 400, 400, 100},
		{"rounds down", 1, 3, 33}, // 33.33...
		{"rounds up", 2, 3, 67},   // 66.66...
		{"zero density", 0, 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeDensity(tt.density, tt.max); got != tt.want {
				t.Errorf("RelativeDensity(%v, %v) = %v, want %v", tt.density, tt.max, got, tt.want)
			}
		})
	}
}

func TestRelativeDensity_ZeroMax(t *testing.T) {
	got := RelativeDensity(200, 0)
	if !math.IsInf(got, 1) {
		t.Errorf("RelativeDensity(200, 0) = %v, want +Inf", got)
	}
}

func TestRelativeDensity_NaNPropagates(t *testing.T) {
	if got := RelativeDensity(math.NaN(), 400); !math.IsNaN(got) {
		t.Errorf("RelativeDensity(NaN, 400) = %v, want NaN", got)
	}
}
