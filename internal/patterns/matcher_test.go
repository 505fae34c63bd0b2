package patterns

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		patterns  []string
		exclusion bool
		expected  bool
	}{
		{"Star pattern", "building.ymap", []string{"*.ymap"}, false, true},
		{"No pattern matches", "building.ybn", []string{"*.ymap"}, false, false},
		{"Second pattern matches", "building.ybn", []string{"*.ymap", "*.ybn"}, false, true},
		{"Question mark", "a1.ytd", []string{"a?.ytd"}, false, true},
		{"Character class", "hi_b.ydr", []string{"hi_[abc].ydr"}, false, true},
		{"Character class miss", "hi_d.ydr", []string{"hi_[abc].ydr"}, false, false},
		{"Empty pattern list", "building.ymap", nil, false, false},
		{"No extension", "readme", []string{"*.ymap"}, false, false},
		{"Lodlights kept without exclusion", "lodlights_01.ymap", []string{"*.ymap"}, false, true},
		{"Lodlights excluded", "lodlights_01.ymap", []string{"*.ymap"}, true, false},
		{"VW excluded", "vw_lights.ymap", []string{"*.ymap"}, true, false},
		{"Exclusion beats explicit include", "vw_lights.ymap", []string{"vw_*.ymap", "*.ymap"}, true, false},
		{"Exclusion beats explicit include reversed", "lodlights_x.ymap", []string{"*.ymap", "lodlights*.ymap"}, true, false},
		{"Normal map survives exclusion", "normal.ymap", []string{"*.ymap"}, true, true},
		{"Exclusion only applies to ymap", "vw_texture.ytd", []string{"*.ytd"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.filename, tt.patterns, tt.exclusion); got != tt.expected {
				t.Errorf("Match(%q, %v, %v) = %v, want %v", tt.filename, tt.patterns, tt.exclusion, got, tt.expected)
			}
		})
	}
}

func TestNewMatcher(t *testing.T) {
	m, err := NewMatcher([]string{"*.YMAP", " ", "*.ybn"}, true)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}

	if got := m.Patterns(); len(got) != 2 || got[0] != "*.ymap" || got[1] != "*.ybn" {
		t.Errorf("Patterns() = %v, want [*.ymap *.ybn]", got)
	}
	if !m.LightMapExclusion() {
		t.Error("LightMapExclusion() = false, want true")
	}
	if !m.Matches("building.ymap") {
		t.Error("Matches(building.ymap) = false, want true")
	}
	if m.Matches("lodlights_medium.ymap") {
		t.Error("Matches(lodlights_medium.ymap) = true, want false")
	}
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	tests := []string{"[abc", "maps/*.ymap", `maps\*.ymap`, "*.{ymap,ybn}", "{a}.ymap"}

	for _, p := range tests {
		t.Run(p, func(t *testing.T) {
			if _, err := NewMatcher([]string{p}, false); err == nil {
				t.Errorf("NewMatcher(%q) expected error, got nil", p)
			}
		})
	}
}

func TestIsLightMap(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"lodlights.ymap", true},
		{"lodlights_small001.ymap", true},
		{"vw_anything.ymap", true},
		{"my_lodlights.ymap", false},
		{"vw_anything.ybn", false},
		{"vwx.ymap", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := IsLightMap(tt.filename); got != tt.expected {
				t.Errorf("IsLightMap(%q) = %v, want %v", tt.filename, got, tt.expected)
			}
		})
	}
}
