package defender

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout is a hand-drawn formation. Each row string holds one cell per
// column: S standard, F fast, W swooper, T tank, '.' or ' ' empty.
//
//	name: wedge
//	spacing_x: 60
//	rows:
//	  - "....TT...."
//	  - "...WWWW..."
//	  - "SSSSSSSSSS"
type Layout struct {
	Name     string   `yaml:"name"`
	Rows     []string `yaml:"rows"`
	SpacingX float64  `yaml:"spacing_x"`
	SpacingY float64  `yaml:"spacing_y"`
	StartY   float64  `yaml:"start_y"`
}

// LoadLayout reads a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: failed to read %s: %w", path, err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes and validates a layout document.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: failed to parse: %w", err)
	}
	for r, row := range l.Rows {
		for c, ch := range row {
			if _, _, ok := cellVariant(ch); !ok {
				return nil, fmt.Errorf("layout: row %d col %d: unknown cell %q", r, c, ch)
			}
		}
	}
	if l.SpacingX < 0 || l.SpacingY < 0 || l.StartY < 0 {
		return nil, fmt.Errorf("layout: spacing and start_y must not be negative")
	}
	return &l, nil
}

// Cells counts the occupied cells.
func (l *Layout) Cells() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, row := range l.Rows {
		for _, ch := range row {
			if _, occupied, _ := cellVariant(ch); occupied {
				n++
			}
		}
	}
	return n
}

// width returns the widest row in cells.
func (l *Layout) width() int {
	w := 0
	for _, row := range l.Rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

// cellVariant decodes one layout cell. occupied is false for empty cells.
func cellVariant(ch rune) (v Variant, occupied, ok bool) {
	switch strings.ToUpper(string(ch)) {
	case "S":
		return VariantStandard, true, true
	case "F":
		return VariantFast, true, true
	case "W":
		return VariantSwooper, true, true
	case "T":
		return VariantTank, true, true
	case ".", " ":
		return VariantStandard, false, true
	default:
		return VariantStandard, false, false
	}
}
