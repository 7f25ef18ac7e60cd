package core

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	if got := ColorOrange.RGBA(); got != (color.RGBA{0xff, 0x87, 0x00, 0xff}) {
		t.Errorf("ColorOrange.RGBA() = %v", got)
	}
	if got := Color(200).RGBA(); got != ColorDefault.RGBA() {
		t.Errorf("unknown color = %v, want default", got)
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorPurple, "#8700ff"},
		{ColorDarkBlue, "#000087"},
		{ColorBrightRed, "#f14c4c"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%d.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorDim(t *testing.T) {
	got := ColorPurple.Dim(0.5)
	want := color.RGBA{0x43, 0x00, 0x7f, 0xff}
	if got != want {
		t.Errorf("Dim(0.5) = %v, want %v", got, want)
	}
}
