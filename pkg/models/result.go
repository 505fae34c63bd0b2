package models

import "time"

// ScanResults contains the complete scan results
type ScanResults struct {
	// Summary
	ScanID       string        `json:"scan_id" yaml:"scan_id"`
	StartTime    time.Time     `json:"start_time" yaml:"start_time"`
	EndTime      time.Time     `json:"end_time" yaml:"end_time"`
	Duration     time.Duration `json:"duration" yaml:"duration"`
	ScanPath     string        `json:"scan_path" yaml:"scan_path"`
	TotalFiles   int           `json:"total_files" yaml:"total_files"`     // regular files visited
	MatchedFiles int           `json:"matched_files" yaml:"matched_files"` // files passing the pattern filter
	HashedFiles  int           `json:"hashed_files" yaml:"hashed_files"`
	SkippedFiles int           `json:"skipped_files" yaml:"skipped_files"` // matched but unreadable

	// Unreadable files dropped from grouping
	SkippedPaths []string `json:"skipped_paths,omitempty" yaml:"skipped_paths,omitempty"`

	// Configuration as resolved for display
	HashAlgorithm    string   `json:"hash_algorithm" yaml:"hash_algorithm"`
	SearchedPatterns []string `json:"patterns_searched" yaml:"patterns_searched"`
	IgnoredPatterns  []string `json:"patterns_ignored" yaml:"patterns_ignored"`

	// Statistics
	BytesHashed int64 `json:"bytes_hashed" yaml:"bytes_hashed"`
	WorkersUsed int   `json:"workers_used" yaml:"workers_used"`

	Classification *Classification `json:"classification" yaml:"classification"`

	// Report path
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// TotalConflicts returns the number of conflicting filenames
func (r *ScanResults) TotalConflicts() int {
	if r.Classification == nil {
		return 0
	}
	return r.Classification.TotalConflicts()
}

// TotalDuplicates returns the number of duplicated filenames
func (r *ScanResults) TotalDuplicates() int {
	if r.Classification == nil {
		return 0
	}
	return r.Classification.TotalDuplicates()
}
