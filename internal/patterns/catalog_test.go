package patterns

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if c.Len() != 11 {
		t.Errorf("Len() = %d, want 11", c.Len())
	}
	if !c.HasLightMapToggle() {
		t.Error("HasLightMapToggle() = false, want true")
	}

	patterns := c.Patterns()
	if len(patterns) != 10 {
		t.Errorf("Patterns() returned %d entries, want 10", len(patterns))
	}
	for _, p := range patterns {
		if p == LightMapKey {
			t.Error("Patterns() must not contain the light-map toggle")
		}
	}

	recommended, exclusion := c.Recommended()
	want := []string{"*.ymap", "*.ybn", "*.ymt", "*.ytd"}
	if !reflect.DeepEqual(recommended, want) {
		t.Errorf("Recommended() = %v, want %v", recommended, want)
	}
	if exclusion {
		t.Error("Recommended() should keep light maps")
	}
}

func TestCatalog_Immutable(t *testing.T) {
	entries := []Entry{{Pattern: "*.YMAP", Description: "maps"}}
	c := NewCatalog(entries)
	entries[0].Pattern = "*.ybn"

	got := c.Entries()
	if got[0].Pattern != "*.ymap" {
		t.Errorf("catalog changed after source mutation: %v", got)
	}

	got[0].Pattern = "*.ytd"
	if c.Entries()[0].Pattern != "*.ymap" {
		t.Error("Entries() must return a copy")
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	e, ok := c.Lookup("*.YBN")
	if !ok {
		t.Fatal("Lookup(*.YBN) not found")
	}
	if e.Description != "Bounds/Collision Data" {
		t.Errorf("Lookup(*.YBN).Description = %q", e.Description)
	}

	if _, ok := c.Lookup("*.txt"); ok {
		t.Error("Lookup(*.txt) should not be found")
	}
}

func TestLoadCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.yaml")
	content := `patterns:
  - pattern: "*.YMAP"
    description: Maps
    recommended: true
  - pattern: light_ymaps
    description: Light maps
    recommended: false
  - pattern: "*.ydr"
    description: Drawables
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	if got := c.Patterns(); !reflect.DeepEqual(got, []string{"*.ymap", "*.ydr"}) {
		t.Errorf("Patterns() = %v", got)
	}

	recommended, exclusion := c.Recommended()
	if !reflect.DeepEqual(recommended, []string{"*.ymap"}) {
		t.Errorf("Recommended() = %v, want [*.ymap]", recommended)
	}
	if !exclusion {
		t.Error("unrecommended light-map toggle should default to exclusion")
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Empty", "patterns: []\n"},
		{"Missing pattern", "patterns:\n  - description: nothing\n"},
		{"Bad glob", "patterns:\n  - pattern: \"[x\"\n"},
		{"Bad yaml", "patterns: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write catalog: %v", err)
			}
			if _, err := LoadCatalog(path); err == nil {
				t.Error("LoadCatalog() expected error, got nil")
			}
		})
	}
}

func TestLoadCatalog_Default(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog(\"\") error = %v", err)
	}
	if c.Len() != DefaultCatalog().Len() {
		t.Errorf("LoadCatalog(\"\") returned %d entries", c.Len())
	}
}

func TestResolve(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name        string
		selected    []string
		exclusion   bool
		wantSearch  []string
		wantIgnored []string
	}{
		{
			name:        "Maps including light maps",
			selected:    []string{"*.ybn", "*.ymap"},
			wantSearch:  []string{YmapWithLightMaps, "*.ybn"},
			wantIgnored: []string{"*.ymt", "*.ytd", "*.ydr", "*.ydd", "*.ytyp", "*.ycd", "*.ynv", "*.ypt"},
		},
		{
			name:        "Maps excluding light maps",
			selected:    []string{"*.ymap"},
			exclusion:   true,
			wantSearch:  []string{"*.ymap"},
			wantIgnored: []string{"*.ybn", "*.ymt", "*.ytd", "*.ydr", "*.ydd", "*.ytyp", "*.ycd", "*.ynv", "*.ypt", LightMapsIgnored},
		},
		{
			name:        "Custom pattern",
			selected:    []string{"*.meta", "*.ypt", "*.meta"},
			wantSearch:  []string{"*.ypt", "*.meta"},
			wantIgnored: []string{"*.ymap", "*.ybn", "*.ymt", "*.ytd", "*.ydr", "*.ydd", "*.ytyp", "*.ycd", "*.ynv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searched, ignored := Resolve(c, tt.selected, tt.exclusion)
			if !reflect.DeepEqual(searched, tt.wantSearch) {
				t.Errorf("searched = %v, want %v", searched, tt.wantSearch)
			}
			if !reflect.DeepEqual(ignored, tt.wantIgnored) {
				t.Errorf("ignored = %v, want %v", ignored, tt.wantIgnored)
			}
		})
	}
}
