// Package export renders damage reports as JSON, CSV, or GeoJSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatGeoJSON Format = "geojson"
)

// ParseFormat accepts a format name case-insensitively; empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatGeoJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ContentType returns the HTTP media type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatGeoJSON:
		return "application/geo+json"
	default:
		return "application/json"
	}
}

// Write renders the report in the given format.
func Write(w io.Writer, f Format, r domain.Report) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, r.Assessments)
	case FormatGeoJSON:
		return WriteGeoJSON(w, r)
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
