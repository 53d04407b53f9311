package graphics

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#30000000", 0x30000000},
		{"30000000", 0x30000000},
		{"#FF8800", 0xFFFF8800},
		{"#f80", 0xFFFF8800},
		{"#8f80", 0x88FF8800},
		{"  #12345678 ", 0x12345678},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12345", "#GGGGGG", "red", "#123456789"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q): expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := Color(0x30000000).String(); got != "#30000000" {
		t.Errorf("unexpected %q", got)
	}
}

func TestColorAlpha(t *testing.T) {
	c := RGBA8(10, 20, 30, 128)
	if c.Alpha8() != 128 {
		t.Errorf("expected alpha 128, got %d", c.Alpha8())
	}
	if got := c.WithAlpha8(0); got != 0x000A141E {
		t.Errorf("WithAlpha8 should keep channels, got %v", got)
	}
	if got := ColorBlack.ScaleAlpha(0.5).Alpha8(); got != 128 {
		t.Errorf("expected 128, got %d", got)
	}
	if got := ColorBlack.ScaleAlpha(2).Alpha8(); got != 255 {
		t.Errorf("expected factor clamped to 1, got %d", got)
	}
	r, g, b, a := RGB(255, 0, 255).RGBAF()
	if r != 1 || g != 0 || b != 1 || a != 1 {
		t.Errorf("unexpected RGBAF %v %v %v %v", r, g, b, a)
	}
}
