package glasspane

import (
	"math"
	"testing"
)

func colorsClose(a, b Color) bool {
	const tol = 1.0 / 255
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol &&
		math.Abs(a.B-b.B) < tol && math.Abs(a.A-b.A) < tol
}

func TestParseColorHexForms(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", Color{1, 1, 1, 1}},
		{"#000000", Color{0, 0, 0, 1}},
		{"#ff8000", Color{1, 0.502, 0, 1}},
		{"ff8000", Color{1, 0.502, 0, 1}},  // '#' optional
		{"#8cf", Color{0.533, 0.8, 1, 1}},  // shorthand expands per digit
		{"#FF8000", Color{1, 0.502, 0, 1}}, // case-insensitive
		{"#ff000080", Color{1, 0, 0, 0.502}},
		{"#ffffff00", Color{1, 1, 1, 0}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if !colorsClose(got, tt.want) {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorNames(t *testing.T) {
	got, err := ParseColor("White")
	if err != nil || got != ColorWhite {
		t.Errorf("ParseColor(White) = %+v, %v", got, err)
	}
	got, err = ParseColor("  transparent ")
	if err != nil || got.A != 0 {
		t.Errorf("ParseColor(transparent) = %+v, %v, want zero alpha", got, err)
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#ffff", "#gggggg", "notacolor", "#12345"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}

func TestPanelColorResolve(t *testing.T) {
	if got := (PanelColor{}).resolve(); got != ColorWhite {
		t.Errorf("zero PanelColor = %+v, want white", got)
	}
	if got := ColorValue(Color{1, 0, 0, 1}).resolve(); got != (Color{1, 0, 0, 1}) {
		t.Errorf("ColorValue round trip = %+v", got)
	}
	if got := ColorString("blue").resolve(); got != (Color{0, 0, 1, 1}) {
		t.Errorf("ColorString(blue) = %+v", got)
	}
	// Unparseable strings warn and fall back rather than failing panel setup.
	if got := ColorString("#nope").resolve(); got != ColorWhite {
		t.Errorf("bad string resolve = %+v, want white fallback", got)
	}
}
