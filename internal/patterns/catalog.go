// Package patterns holds the file-type vocabulary offered to users and the
// matcher that decides which files take part in a scan.
package patterns

import "strings"

// LightMapKey identifies the light-map toggle in a catalog
const LightMapKey = "light_ymaps"

// Entry is one selectable item of the vocabulary
type Entry struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
	Recommended bool   `yaml:"recommended"`
}

// IsLightMapToggle reports whether the entry is the light-map toggle rather than a glob
func (e Entry) IsLightMapToggle() bool {
	return e.Pattern == LightMapKey
}

// Catalog is an immutable ordered vocabulary of include patterns
type Catalog struct {
	entries []Entry
}

// NewCatalog copies entries into a catalog
func NewCatalog(entries []Entry) *Catalog {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	for i := range cp {
		if !cp[i].IsLightMapToggle() {
			cp[i].Pattern = strings.ToLower(cp[i].Pattern)
		}
	}
	return &Catalog{entries: cp}
}

// DefaultCatalog returns the built-in map asset vocabulary
func DefaultCatalog() *Catalog {
	return NewCatalog([]Entry{
		{Pattern: "*.ymap", Description: "Map Data (Map Placement/Details)", Recommended: true},
		{Pattern: LightMapKey, Description: "Light Map Files (lodlights*.ymap / vw_*.ymap)", Recommended: true},
		{Pattern: "*.ybn", Description: "Bounds/Collision Data", Recommended: true},
		{Pattern: "*.ymt", Description: "Meta/Config Files", Recommended: true},
		{Pattern: "*.ytd", Description: "Textures Dictionary", Recommended: true},
		{Pattern: "*.ydr", Description: "Drawable (3D Models)"},
		{Pattern: "*.ydd", Description: "Drawable Dictionary (Model Container)"},
		{Pattern: "*.ytyp", Description: "Types/Manifest (Map/MLO Definitions)"},
		{Pattern: "*.ycd", Description: "Clip Dictionary (Animations)"},
		{Pattern: "*.ynv", Description: "Navigation Mesh (AI Navigation)"},
		{Pattern: "*.ypt", Description: "Particle Effects (FX)"},
	})
}

// Entries returns a copy of all entries in order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Patterns returns the glob entries, without the light-map toggle
func (c *Catalog) Patterns() []string {
	var out []string
	for _, e := range c.entries {
		if !e.IsLightMapToggle() {
			out = append(out, e.Pattern)
		}
	}
	return out
}

// Recommended returns the default selection: recommended globs, and whether
// light maps should be excluded (the toggle is recommended to keep them)
func (c *Catalog) Recommended() (patterns []string, lightMapExclusion bool) {
	lightMapExclusion = false
	for _, e := range c.entries {
		if e.IsLightMapToggle() {
			lightMapExclusion = !e.Recommended
			continue
		}
		if e.Recommended {
			patterns = append(patterns, e.Pattern)
		}
	}
	return patterns, lightMapExclusion
}

// Lookup finds an entry by pattern
func (c *Catalog) Lookup(pattern string) (Entry, bool) {
	pattern = strings.ToLower(pattern)
	for _, e := range c.entries {
		if e.Pattern == pattern {
			return e, true
		}
	}
	return Entry{}, false
}

// HasLightMapToggle reports whether the catalog offers the light-map option
func (c *Catalog) HasLightMapToggle() bool {
	_, ok := c.Lookup(LightMapKey)
	return ok
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}
