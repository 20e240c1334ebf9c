// Package roster loads building rosters from YAML or JSON files and ships
// the reference roster.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
)

// File is the on-disk roster layout:
//
//	buildings:
//	  - id: "1"
//	    type: wood
//	    location: {lat: 37.78, lon: -122.41}
type File struct {
	Buildings []domain.Building `yaml:"buildings" json:"buildings"`
}

// Format selects the roster file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatForPath picks JSON for ".json" files and YAML otherwise.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads a roster file, choosing the decoder by extension. An empty
// path returns the reference roster.
func Load(path string) ([]domain.Building, error) {
	if path == "" {
		return Reference(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	buildings, err := Decode(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return buildings, nil
}

// Decode parses and validates a roster. Structural type labels are
// normalized; every invalid entry is reported.
func Decode(r io.Reader, format Format) ([]domain.Building, error) {
	var file File
	var err error
	if format == FormatJSON {
		err = json.NewDecoder(r).Decode(&file)
	} else {
		err = yaml.NewDecoder(r).Decode(&file)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty roster")
		}
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if len(file.Buildings) == 0 {
		return nil, errors.New("roster has no buildings")
	}

	var errs []error
	for i := range file.Buildings {
		b := &file.Buildings[i]
		if t, err := domain.ParseStructuralType(string(b.Type)); err == nil {
			b.Type = t
		}
		if err := b.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("buildings[%d]: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return file.Buildings, nil
}

// Encode writes buildings in the File layout as YAML.
func Encode(w io.Writer, buildings []domain.Building) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Buildings: buildings}); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return enc.Close()
}
