package report

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IvanShishkin/collider/pkg/models"
	"github.com/dustin/go-humanize"
)

// None is shown for an empty pattern list
const None = "NONE"

// Document is the renderer-neutral view of a scan
type Document struct {
	GeneratedAt     time.Time
	TargetDirectory string
	Searched        []string
	Ignored         []string
	Sections        []Section
	Results         *models.ScanResults

	TotalConflicts      int
	TotalDuplicates     int
	ConflictingVersions int
}

// Section holds the groups of one extension bucket, ordered by filename
type Section struct {
	Extension  string
	Conflicts  []Group
	Duplicates []Group
}

// Group is a collision group flattened into display rows
type Group struct {
	Filename       string
	DistinctHashes int
	Rows           []Row
}

// Row is one file of a group. Only the first row of a group carries the label.
type Row struct {
	Representative bool
	Label          string
	Resource       string
	Path           string
	RelativePath   string
	Dir            string
	Hash           string
	Size           string
}

// NewDocument builds the document for results as of now
func NewDocument(results *models.ScanResults, now time.Time) *Document {
	doc := &Document{
		GeneratedAt:     now,
		TargetDirectory: results.ScanPath,
		Searched:        results.SearchedPatterns,
		Ignored:         results.IgnoredPatterns,
		Results:         results,
	}

	c := results.Classification
	if c == nil {
		return doc
	}

	doc.TotalConflicts = c.TotalConflicts()
	doc.TotalDuplicates = c.TotalDuplicates()
	doc.ConflictingVersions = c.ConflictingVersions()

	for _, ext := range c.Extensions() {
		bucket := c.Buckets[ext]
		doc.Sections = append(doc.Sections, Section{
			Extension:  ext,
			Conflicts:  toGroups(bucket.SortedConflicts()),
			Duplicates: toGroups(bucket.SortedDuplicates()),
		})
	}
	return doc
}

// HasCollisions reports whether any section has groups
func (d *Document) HasCollisions() bool {
	return len(d.Sections) > 0
}

// SearchedText is the comma-joined searched list, or NONE
func (d *Document) SearchedText() string {
	return joinOrNone(d.Searched)
}

// IgnoredText is the comma-joined ignored list, or NONE
func (d *Document) IgnoredText() string {
	return joinOrNone(d.Ignored)
}

// SectionTitle returns the heading for an extension bucket
func SectionTitle(ext string) string {
	if ext == "" {
		return "(no extension) Collisions"
	}
	return ext + " Collisions"
}

func toGroups(groups []*models.CollisionGroup) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		grp := Group{Filename: g.Filename, DistinctHashes: g.DistinctHashes}
		for i, r := range g.Records {
			row := Row{
				Representative: i == 0,
				Resource:       r.Resource,
				Path:           r.Path,
				RelativePath:   displayPath(r),
				Dir:            filepath.Dir(r.Path) + string(os.PathSeparator),
				Hash:           r.Hash,
				Size:           humanize.Bytes(uint64(r.Size)),
			}
			if i == 0 {
				row.Label = g.Filename
			}
			grp.Rows = append(grp.Rows, row)
		}
		out = append(out, grp)
	}
	return out
}

func displayPath(r *models.FileRecord) string {
	if r.RelativePath != "" {
		return r.RelativePath
	}
	return r.Path
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return None
	}
	return strings.Join(items, ", ")
}
