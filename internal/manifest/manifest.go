package manifest

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/enumconform/enum"
)

// Manifest is a set of enumerations read from one file.
type Manifest struct {
	Enums []Enum `yaml:"enums" json:"enums"`

	// Source is the file the manifest was read from.
	Source string `yaml:"-" json:"-"`
}

// Enum declares one backed enumeration.
type Enum struct {
	Name string    `yaml:"name" json:"name"`
	Kind enum.Kind `yaml:"kind" json:"kind"`

	// Labels gives every case a label. Cases without one get a label
	// derived from their name. Declaring any label implies Labels.
	Labels bool `yaml:"labels,omitempty" json:"labels,omitempty"`

	Cases []Case `yaml:"cases" json:"cases"`
}

// Case declares one case. Value holds a string for string enumerations
// and an int64 for int enumerations once loaded.
type Case struct {
	Name  string `yaml:"name" json:"name"`
	Value any    `yaml:"value" json:"value"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// Labeled reports whether the enumeration's cases carry labels.
func (e Enum) Labeled() bool {
	if e.Labels {
		return true
	}
	for _, c := range e.Cases {
		if c.Label != "" {
			return true
		}
	}
	return false
}

// Lookup returns the enumeration with the given name.
func (m *Manifest) Lookup(name string) (Enum, bool) {
	for _, e := range m.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return Enum{}, false
}

// Load reads a manifest, choosing the format from the file extension.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: ErrCodeRead, Source: path, Message: fmt.Sprintf("failed to read manifest: %v", err), Err: err}
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	case ".cue":
		return ParseCUE(data, path)
	default:
		return nil, &Error{Code: ErrCodeFormat, Source: path, Message: "unsupported manifest extension (want .yaml, .yml or .cue)"}
	}
}

// IsManifestFile reports whether path has a manifest extension.
func IsManifestFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".cue":
		return true
	}
	return false
}

// Find walks dir and returns all manifest file paths in lexical order.
func Find(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && IsManifestFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

var titler = cases.Title(language.English)

// DeriveLabel turns a case name such as IN_PROGRESS into "In Progress".
func DeriveLabel(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	return titler.String(strings.ToLower(strings.Join(words, " ")))
}

// normalize checks each case value against its enumeration kind,
// converts integers to int64 and fills in derived labels.
func (m *Manifest) normalize() error {
	for i := range m.Enums {
		e := &m.Enums[i]
		labeled := e.Labeled()
		for j := range e.Cases {
			c := &e.Cases[j]
			v, err := normalizeValue(e.Kind, c.Value)
			if err != nil {
				return &Error{
					Code:    ErrCodeInvalidCase,
					Source:  m.Source,
					Message: fmt.Sprintf("enum %s case %s: %v", e.Name, c.Name, err),
				}
			}
			c.Value = v
			if labeled && c.Label == "" {
				c.Label = DeriveLabel(c.Name)
			}
		}
		e.Labels = labeled
	}
	return nil
}

func normalizeValue(kind enum.Kind, v any) (any, error) {
	switch kind {
	case enum.KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case enum.KindInt:
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case uint64:
			if n <= math.MaxInt64 {
				return int64(n), nil
			}
			return nil, fmt.Errorf("value %d overflows int64", n)
		}
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	return nil, fmt.Errorf("value %v (%T) does not match kind %s", v, v, kind)
}
