package models

import "sort"

// GroupKind tells whether same-named files differ or are identical
type GroupKind string

const (
	KindConflict  GroupKind = "conflict"
	KindDuplicate GroupKind = "duplicate"
)

// CollisionGroup is every file sharing one lower-cased basename
type CollisionGroup struct {
	Filename       string        `json:"filename" yaml:"filename"`
	Extension      string        `json:"extension" yaml:"extension"`
	Kind           GroupKind     `json:"kind" yaml:"kind"`
	DistinctHashes int           `json:"distinct_hashes" yaml:"distinct_hashes"`
	Records        []*FileRecord `json:"records" yaml:"records"` // discovery order; the first is the representative
}

// ExtensionBucket holds the groups for one upper-cased extension (".YMAP", or "" for none)
type ExtensionBucket struct {
	Extension  string                     `json:"extension" yaml:"extension"`
	Conflicts  map[string]*CollisionGroup `json:"conflicts" yaml:"conflicts"`
	Duplicates map[string]*CollisionGroup `json:"duplicates" yaml:"duplicates"`
}

// NewExtensionBucket creates an empty bucket
func NewExtensionBucket(ext string) *ExtensionBucket {
	return &ExtensionBucket{
		Extension:  ext,
		Conflicts:  make(map[string]*CollisionGroup),
		Duplicates: make(map[string]*CollisionGroup),
	}
}

// IsEmpty reports whether the bucket has no groups
func (b *ExtensionBucket) IsEmpty() bool {
	return len(b.Conflicts) == 0 && len(b.Duplicates) == 0
}

// SortedConflicts returns conflict groups ordered by filename
func (b *ExtensionBucket) SortedConflicts() []*CollisionGroup {
	return sortGroups(b.Conflicts)
}

// SortedDuplicates returns duplicate groups ordered by filename
func (b *ExtensionBucket) SortedDuplicates() []*CollisionGroup {
	return sortGroups(b.Duplicates)
}

func sortGroups(m map[string]*CollisionGroup) []*CollisionGroup {
	out := make([]*CollisionGroup, 0, len(m))
	for _, g := range m {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Filename < out[j].Filename })
	return out
}

// Classification maps upper-cased extension to its bucket
type Classification struct {
	Buckets map[string]*ExtensionBucket `json:"buckets" yaml:"buckets"`
}

// NewClassification creates an empty classification
func NewClassification() *Classification {
	return &Classification{Buckets: make(map[string]*ExtensionBucket)}
}

// Add files a group under its extension bucket
func (c *Classification) Add(g *CollisionGroup) {
	bucket, ok := c.Buckets[g.Extension]
	if !ok {
		bucket = NewExtensionBucket(g.Extension)
		c.Buckets[g.Extension] = bucket
	}
	switch g.Kind {
	case KindConflict:
		bucket.Conflicts[g.Filename] = g
	case KindDuplicate:
		bucket.Duplicates[g.Filename] = g
	}
}

// Extensions returns the non-empty bucket keys in sorted order
func (c *Classification) Extensions() []string {
	exts := make([]string, 0, len(c.Buckets))
	for ext, b := range c.Buckets {
		if !b.IsEmpty() {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// IsEmpty reports whether nothing collided
func (c *Classification) IsEmpty() bool {
	return len(c.Extensions()) == 0
}

// TotalConflicts counts filenames with two or more distinct digests
func (c *Classification) TotalConflicts() int {
	n := 0
	for _, b := range c.Buckets {
		n += len(b.Conflicts)
	}
	return n
}

// TotalDuplicates counts filenames whose copies all share one digest
func (c *Classification) TotalDuplicates() int {
	n := 0
	for _, b := range c.Buckets {
		n += len(b.Duplicates)
	}
	return n
}

// ConflictingVersions sums the distinct digests over all conflict groups
func (c *Classification) ConflictingVersions() int {
	n := 0
	for _, b := range c.Buckets {
		for _, g := range b.Conflicts {
			n += g.DistinctHashes
		}
	}
	return n
}

// ConflictGroups returns every conflict group ordered by extension, then filename
func (c *Classification) ConflictGroups() []*CollisionGroup {
	var out []*CollisionGroup
	for _, ext := range c.Extensions() {
		out = append(out, c.Buckets[ext].SortedConflicts()...)
	}
	return out
}

// DuplicateGroups returns every duplicate group ordered by extension, then filename
func (c *Classification) DuplicateGroups() []*CollisionGroup {
	var out []*CollisionGroup
	for _, ext := range c.Extensions() {
		out = append(out, c.Buckets[ext].SortedDuplicates()...)
	}
	return out
}
