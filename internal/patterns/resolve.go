package patterns

// Display labels used in searched/ignored lists
const (
	YmapWithLightMaps = "*.ymap (including light maps)"
	LightMapsIgnored  = "lodlights*.ymap / vw_*.ymap"
)

// Resolve derives the "patterns searched" and "patterns ignored" lists shown
// in reports. Catalog patterns keep catalog order; custom patterns follow in
// the order given.
func Resolve(catalog *Catalog, selected []string, lightMapExclusion bool) (searched, ignored []string) {
	chosen := make(map[string]bool, len(selected))
	for _, p := range selected {
		chosen[p] = true
	}

	inCatalog := make(map[string]bool)
	for _, p := range catalog.Patterns() {
		inCatalog[p] = true
		if chosen[p] {
			searched = append(searched, displayName(p, lightMapExclusion))
		} else {
			ignored = append(ignored, p)
		}
	}

	seen := make(map[string]bool)
	for _, p := range selected {
		if inCatalog[p] || seen[p] {
			continue
		}
		seen[p] = true
		searched = append(searched, displayName(p, lightMapExclusion))
	}

	if lightMapExclusion {
		ignored = append(ignored, LightMapsIgnored)
	}

	return searched, ignored
}

func displayName(pattern string, lightMapExclusion bool) string {
	if pattern == "*.ymap" && !lightMapExclusion {
		return YmapWithLightMaps
	}
	return pattern
}
