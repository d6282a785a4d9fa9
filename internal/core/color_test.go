package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#e6e6e6", RGB(230, 230, 230), false},
		{"3c3c3c", RGB(60, 60, 60), false},
		{" #FF0000 ", RGB(255, 0, 0), false},
		{"#fff", Color{}, true},
		{"#gggggg", Color{}, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	if h := RGB(60, 60, 60).Hex(); h != "#3c3c3c" {
		t.Errorf("Hex() = %q, expected #3c3c3c", h)
	}
	if !(Color{}).IsDefault() {
		t.Error("zero Color should be the default color")
	}
	if (Color{}).Hex() != "" {
		t.Error("default color should have empty hex")
	}
}
