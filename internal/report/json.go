package report

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/IvanShishkin/collider/pkg/models"
	"gopkg.in/yaml.v3"
)

// Summary carries the collision totals
type Summary struct {
	TotalConflicts      int `json:"total_conflicts" yaml:"total_conflicts"`
	TotalDuplicates     int `json:"total_duplicates" yaml:"total_duplicates"`
	ConflictingVersions int `json:"conflicting_versions" yaml:"conflicting_versions"`
}

// StructuredReport is the machine-readable report for JSON and YAML output
type StructuredReport struct {
	GeneratedAt time.Time           `json:"generated_at" yaml:"generated_at"`
	Summary     Summary             `json:"summary" yaml:"summary"`
	Scan        *models.ScanResults `json:"scan" yaml:"scan"`
}

func newStructuredReport(doc *Document) *StructuredReport {
	return &StructuredReport{
		GeneratedAt: doc.GeneratedAt,
		Summary: Summary{
			TotalConflicts:      doc.TotalConflicts,
			TotalDuplicates:     doc.TotalDuplicates,
			ConflictingVersions: doc.ConflictingVersions,
		},
		Scan: doc.Results,
	}
}

// renderJSON generates a JSON report
func renderJSON(doc *Document) ([]byte, error) {
	return json.MarshalIndent(newStructuredReport(doc), "", "  ")
}

// renderYAML generates a YAML report
func renderYAML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newStructuredReport(doc)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
