package examdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the YAML document layout.
type file struct {
	Formats []Format `yaml:"formats"`
}

// Load parses exam formats from a YAML file and validates each one.
func Load(path string) ([]Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exam formats: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML formats document.
func Parse(data []byte) ([]Format, error) {
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse exam formats: %w", err)
	}
	if len(doc.Formats) == 0 {
		return nil, fmt.Errorf("exam formats: no formats defined")
	}

	seen := make(map[string]bool, len(doc.Formats))
	for i := range doc.Formats {
		f := &doc.Formats[i]
		if f.Language == "" {
			f.Language = "fr"
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if seen[f.Code] {
			return nil, fmt.Errorf("exam formats: duplicate code %q", f.Code)
		}
		seen[f.Code] = true
	}
	return doc.Formats, nil
}
