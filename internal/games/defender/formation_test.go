package defender

import (
	"testing"

	"github.com/vovakirdan/defender/internal/config"
)

func TestVariantFor(t *testing.T) {
	tests := []struct {
		row, wave int
		want      Variant
	}{
		{0, 1, VariantStandard},
		{1, 1, VariantStandard},
		{0, 2, VariantFast},
		{1, 2, VariantFast},
		{2, 2, VariantStandard},
		{0, 3, VariantTank},
		{1, 3, VariantFast},
		{1, 4, VariantSwooper},
		{4, 9, VariantStandard},
	}

	for _, tt := range tests {
		if got := VariantFor(tt.row, tt.wave); got != tt.want {
			t.Errorf("VariantFor(%d, %d) = %v, expected %v", tt.row, tt.wave, got, tt.want)
		}
	}
}

func TestGridFormation(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	gen := NewGenerator(cfg, 1)

	for wave := 1; wave <= 6; wave++ {
		enemies := gen.Generate(wave)
		if len(enemies) != 50 {
			t.Errorf("wave %d: %d enemies, expected 50", wave, len(enemies))
		}
	}

	enemies := gen.Generate(1)
	first := enemies[0]
	if first.X != 242 || first.Y != 50 {
		t.Errorf("first enemy at (%v,%v), expected (242,50)", first.X, first.Y)
	}
	if first.Direction != 1 {
		t.Errorf("row 0 direction = %v, expected +1", first.Direction)
	}
	last := enemies[9]
	if last.X != 782 {
		t.Errorf("row 0 last x = %v, expected 782", last.X)
	}
	second := enemies[10]
	if second.Y != 100 || second.Direction != -1 {
		t.Errorf("row 1 = (y %v, dir %v), expected (100, -1)", second.Y, second.Direction)
	}
	for _, e := range enemies {
		if e.Variant != VariantStandard || e.Points != 10 || e.HP != 1 {
			t.Fatalf("wave 1 enemy = %+v, expected standard worth 10", e)
		}
	}

	wave3 := gen.Generate(3)
	if wave3[0].Variant != VariantTank || wave3[0].HP != 3 || wave3[0].Points != 50 {
		t.Errorf("wave 3 row 0 = %+v, expected tank with 3 HP worth 50", wave3[0])
	}
	if wave3[10].Variant != VariantFast || wave3[10].Points != 20 {
		t.Errorf("wave 3 row 1 = %+v, expected fast worth 20", wave3[10])
	}
}

func TestGenerateClampsWave(t *testing.T) {
	gen := NewGenerator(config.DefaultDefenderConfig(), 1)
	if got := len(gen.Generate(0)); got != 50 {
		t.Errorf("Generate(0) = %d enemies, expected 50", got)
	}
	if got := len(gen.Generate(-3)); got != 50 {
		t.Errorf("Generate(-3) = %d enemies, expected 50", got)
	}
}

func TestScatteredFormation(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	cfg.Formation.Pattern = config.PatternScattered

	a := NewGenerator(cfg, 42).Generate(2)
	b := NewGenerator(cfg, 42).Generate(2)
	if len(a) != 50 || len(b) != 50 {
		t.Fatalf("scattered counts = %d, %d, expected 50", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("enemy %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := NewGenerator(cfg, 43).Generate(2)
	if a[0].X == c[0].X && a[0].Y == c[0].Y {
		t.Error("different seeds produced the same first enemy")
	}

	for _, e := range a {
		if e.X < 50 || e.X >= 974 {
			t.Errorf("x = %v outside [50, 974)", e.X)
		}
		if e.Y < 50 || e.Y >= 250 {
			t.Errorf("y = %v outside [50, 250)", e.Y)
		}
	}
	if a[0].Direction != 1 || a[1].Direction != -1 {
		t.Errorf("directions = %v, %v, expected alternating +1, -1", a[0].Direction, a[1].Direction)
	}
}

func TestParseLayout(t *testing.T) {
	data := []byte("name: wedge\nrows:\n  - \"..TT..\"\n  - \"sSSSSS\"\n")
	l, err := ParseLayout(data)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	if l.Name != "wedge" {
		t.Errorf("name = %q, expected wedge", l.Name)
	}
	if l.Cells() != 8 {
		t.Errorf("Cells() = %d, expected 8", l.Cells())
	}
	if l.width() != 6 {
		t.Errorf("width() = %d, expected 6", l.width())
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown cell", "rows:\n  - \"SSXS\"\n"},
		{"negative spacing", "spacing_x: -5\nrows:\n  - \"SS\"\n"},
		{"bad yaml", "rows: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLayout([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLayoutFormation(t *testing.T) {
	l, err := ParseLayout([]byte("rows:\n  - \"..TT..\"\n  - \"SSSSSS\"\n"))
	if err != nil {
		t.Fatal(err)
	}

	gen := NewGenerator(config.DefaultDefenderConfig(), 1)
	gen.SetLayout(l)
	if gen.Pattern() != "layout" {
		t.Errorf("Pattern() = %q, expected layout", gen.Pattern())
	}

	enemies := gen.Generate(1)
	if len(enemies) != 8 {
		t.Fatalf("%d enemies, expected 8", len(enemies))
	}
	// Spacing and start fall back to the formation config: startX = (1024-5*60)/2
	if enemies[0].X != 482 || enemies[0].Y != 50 || enemies[0].Variant != VariantTank {
		t.Errorf("first enemy = %+v, expected tank at (482,50)", enemies[0])
	}
	if enemies[2].X != 362 || enemies[2].Y != 100 || enemies[2].Direction != -1 {
		t.Errorf("first row 1 enemy = %+v, expected (362,100) moving left", enemies[2])
	}

	gen.SetLayout(nil)
	if gen.Pattern() != config.PatternGrid {
		t.Errorf("Pattern() after clearing = %q, expected grid", gen.Pattern())
	}

	gen.SetLayout(&Layout{Rows: []string{"...."}})
	if len(gen.Generate(1)) != 50 {
		t.Error("an empty layout should fall back to the grid")
	}
}

func TestShippedWedgeLayout(t *testing.T) {
	l, err := LoadLayout("../../../configs/layouts/wedge.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "wedge" || l.Cells() != 30 {
		t.Errorf("wedge = %q with %d cells, expected 30", l.Name, l.Cells())
	}
}
