package models

// Resource labels used when a file has no top-level subdirectory under the scan root.
const (
	ResourceRoot    = "ROOT_DIR"
	ResourceUnknown = "UNKNOWN_RESOURCE"
)

// CandidateFile is a file that passed the pattern filter during the walk
type CandidateFile struct {
	Path         string `json:"path" yaml:"path"`                   // Path as walked (root joined with relative path)
	RelativePath string `json:"relative_path" yaml:"relative_path"` // Path relative to scan root
	LowerName    string `json:"-" yaml:"-"`                         // Lower-cased base name, the grouping key
	Resource     string `json:"resource" yaml:"resource"`           // First path segment under root
	Size         int64  `json:"size" yaml:"size"`                   // Size reported by the walk
	Seq          int    `json:"-" yaml:"-"`                         // Discovery order
}

// FileRecord is a candidate whose content digest was computed successfully
type FileRecord struct {
	CandidateFile `yaml:",inline"`
	Hash          string `json:"hash" yaml:"hash"`
}
