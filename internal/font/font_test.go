package font

import "testing"

func TestGlyph(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		ok   bool
	}{
		{"space", ' ', true},
		{"letter", 'A', true},
		{"tilde", '~', true},
		{"escape", 0x1b, false},
		{"delete", 0x7f, false},
		{"box drawing", '─', false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Glyph(tt.r); ok != tt.ok {
				t.Errorf("Glyph(%q) ok = %v, want %v", tt.r, ok, tt.ok)
			}
		})
	}
}

func TestGlyph_Bits(t *testing.T) {
	space, _ := Glyph(' ')
	if space != ([8]byte{}) {
		t.Errorf("space should be blank, got %v", space)
	}

	// Underscore is a full bottom row and nothing else.
	under, _ := Glyph('_')
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			want := row == 7
			if Lit(under, col, row) != want {
				t.Fatalf("underscore pixel (%d,%d) = %v, want %v", col, row, !want, want)
			}
		}
	}

	// '1' leans right: the stem sits at columns 2-3 and the flag at column 1.
	one, _ := Glyph('1')
	if !Lit(one, 2, 3) || !Lit(one, 3, 3) || Lit(one, 6, 3) {
		t.Errorf("unexpected stem for '1': %08b", one[3])
	}
	if !Lit(one, 1, 1) {
		t.Errorf("'1' flag should light column 1: %08b", one[1])
	}
}
