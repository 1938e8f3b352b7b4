package hint

import "testing"

func TestReveal(t *testing.T) {
	tests := []struct {
		best  string
		level Level
		want  string
	}{
		{"elephant", Small, "....hant"},
		{"elephant", Big, "eleph..."},
		{"elephant", Full, "elephant"},
		{"elephant", None, ""},
		{"cat", Small, ".at"},
		{"cat", Big, "ca."},
		{"a", Small, "a"},
		{"a", Big, "a"},
		{"", Small, ""},
		{"", Big, ""},
		{"über", Small, "..er"},
		{"über", Big, "übe."},
	}

	for _, tt := range tests {
		t.Run(tt.best+"/"+tt.level.String(), func(t *testing.T) {
			got := Reveal(tt.best, tt.level)
			if got != tt.want {
				t.Errorf("Reveal(%q, %s) = %q, want %q", tt.best, tt.level, got, tt.want)
			}
			if tt.level != None && len([]rune(got)) != len([]rune(tt.best)) {
				t.Errorf("Reveal(%q, %s) has %d runes, want %d", tt.best, tt.level, len([]rune(got)), len([]rune(tt.best)))
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel Level
		wantRest  string
	}{
		{"Paris", None, "Paris"},
		{"!Paris", Small, "Paris"},
		{"!!Paris", Big, "Paris"},
		{"!!!Paris", Full, "Paris"},
		{"!!!!Paris", Full, "!Paris"},
		{"!", Small, ""},
		{"", None, ""},
		{"Par!s", None, "Par!s"},
		{"! Paris", Small, " Paris"},
	}

	for _, tt := range tests {
		level, rest := Parse(tt.line)
		if level != tt.wantLevel || rest != tt.wantRest {
			t.Errorf("Parse(%q) = (%s, %q), want (%s, %q)", tt.line, level, rest, tt.wantLevel, tt.wantRest)
		}
	}
}
