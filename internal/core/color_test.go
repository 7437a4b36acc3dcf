package core

import "testing"

func TestColorRGBA(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		if got := c.RGBA(); got.A != 0xff {
			t.Errorf("Color(%d).RGBA() alpha = %d, expected opaque", c, got.A)
		}
	}

	if got, want := Color(200).RGBA(), ColorDefault.RGBA(); got != want {
		t.Errorf("unknown color = %v, expected default %v", got, want)
	}
	if ColorRed.RGBA() == ColorGreen.RGBA() {
		t.Error("red and green should differ")
	}
}
