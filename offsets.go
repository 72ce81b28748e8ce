package reassemble

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OffsetTable maps part names to explode offsets. Parts without an explicit
// entry are spread along X: ((index - Center) * Spacing, 0, 0).
type OffsetTable struct {
	Center    int
	Spacing   float64
	Overrides map[string]Vec3
}

type offsetFile struct {
	Spread struct {
		Center  int     `yaml:"center"`
		Spacing float64 `yaml:"spacing"`
	} `yaml:"spread"`
	Overrides map[string][]float64 `yaml:"overrides"`
}

// DefaultOffsetTable returns the offsets of the reference rescue robot.
func DefaultOffsetTable() *OffsetTable {
	return &OffsetTable{
		Center:  4,
		Spacing: 0.4,
		Overrides: map[string]Vec3{
			"armor_part_3": {0.5, 0.3, 0}, // right and up
		},
	}
}

// Offset returns the explode offset for the part at index with the given name.
func (t *OffsetTable) Offset(name string, index int) Vec3 {
	if off, ok := t.Overrides[name]; ok {
		return off
	}
	return Vec3{float64(index-t.Center) * t.Spacing, 0, 0}
}

// ParseOffsetTable decodes a YAML offset table:
//
//	spread:
//	  center: 4
//	  spacing: 0.4
//	overrides:
//	  armor_part_3: [0.5, 0.3, 0]
func ParseOffsetTable(data []byte) (*OffsetTable, error) {
	var f offsetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse offset table: %w", err)
	}
	t := &OffsetTable{
		Center:    f.Spread.Center,
		Spacing:   f.Spread.Spacing,
		Overrides: make(map[string]Vec3, len(f.Overrides)),
	}
	for name, v := range f.Overrides {
		if len(v) != 3 {
			return nil, fmt.Errorf("parse offset table: override %q has %d components, want 3", name, len(v))
		}
		t.Overrides[name] = Vec3{v[0], v[1], v[2]}
	}
	return t, nil
}

// LoadOffsetTable reads and parses a YAML offset table file.
func LoadOffsetTable(path string) (*OffsetTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read offset table %s: %w", path, err)
	}
	return ParseOffsetTable(data)
}
