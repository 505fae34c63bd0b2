package core

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/IvanShishkin/collider/internal/config"
	"github.com/IvanShishkin/collider/internal/filesystem"
	"github.com/IvanShishkin/collider/internal/patterns"
	"github.com/IvanShishkin/collider/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scanner is the collision scanner engine
type Scanner struct {
	config           *config.Config
	logger           *zap.Logger
	catalog          *patterns.Catalog
	progressCallback ProgressCallback
	mu               sync.Mutex
}

// NewScanner creates a new scanner instance
func NewScanner(cfg *config.Config, logger *zap.Logger) *Scanner {
	return &Scanner{
		config:  cfg,
		logger:  logger,
		catalog: patterns.DefaultCatalog(),
	}
}

// SetProgressCallback sets the progress callback function
func (s *Scanner) SetProgressCallback(cb ProgressCallback) {
	s.progressCallback = cb
}

// SetCatalog sets the vocabulary used to resolve searched/ignored display lists
func (s *Scanner) SetCatalog(c *patterns.Catalog) {
	if c != nil {
		s.catalog = c
	}
}

// hashResult is the outcome of hashing a single candidate
type hashResult struct {
	Candidate *models.CandidateFile
	Record    *models.FileRecord
	Error     error
}

// Scan walks the configured root, hashes matching files and classifies
// same-named files. Configuration problems are returned before any traversal.
func (s *Scanner) Scan(ctx context.Context) (*models.ScanResults, error) {
	selected := s.config.PatternsSnapshot()
	lightMapExclusion := s.config.LightMapExclusion

	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	// Reports and copy-dir actions need absolute paths
	root, err := filepath.Abs(s.config.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot resolve %s: %w", config.ErrInvalidConfig, s.config.Path, err)
	}
	if err := filesystem.ValidateRoot(root); err != nil {
		return nil, err
	}

	matcher, err := patterns.NewMatcher(selected, lightMapExclusion)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	hasher, err := filesystem.NewHasher(s.config.Algorithm())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	searched, ignored := patterns.Resolve(s.catalog, selected, lightMapExclusion)
	results := &models.ScanResults{
		ScanID:           uuid.NewString(),
		StartTime:        time.Now(),
		ScanPath:         root,
		HashAlgorithm:    hasher.Algorithm(),
		SearchedPatterns: searched,
		IgnoredPatterns:  ignored,
		Classification:   models.NewClassification(),
	}

	s.logger.Info("Starting scan",
		zap.String("path", root),
		zap.Strings("patterns", selected),
		zap.Bool("exclude_lightmaps", lightMapExclusion),
		zap.String("hash", hasher.Algorithm()))

	progress := newProgressTracker(s.progressCallback)

	// Discovery
	progress.report(progressDiscovery, "Collecting file paths...")
	walker := filesystem.NewWalker(s.config, s.logger)
	var candidates []*models.CandidateFile
	err = walker.Walk(ctx, root, matcher, func(c *models.CandidateFile) error {
		candidates = append(candidates, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	results.TotalFiles = walker.Visited()
	results.MatchedFiles = len(candidates)

	if len(candidates) == 0 {
		progress.report(progressDone, "No relevant files found.")
		s.finish(results)
		return results, nil
	}

	progress.report(progressHashFloor, fmt.Sprintf("Found %d files. Hashing...", len(candidates)))

	// Hashing
	workers := s.config.WorkerCount()
	if workers > len(candidates) {
		workers = len(candidates)
	}
	results.WorkersUsed = workers

	records, err := s.hashFiles(ctx, hasher, candidates, workers, results, progress)
	if err != nil {
		return nil, err
	}

	// Classification
	progress.report(progressAnalysis, "Analyzing results...")
	results.Classification = Classify(records)

	s.finish(results)
	progress.report(progressDone, "Scan complete")

	s.logger.Info("Scan completed",
		zap.Duration("duration", results.Duration),
		zap.Int("files_hashed", results.HashedFiles),
		zap.Int("conflicts", results.TotalConflicts()),
		zap.Int("duplicates", results.TotalDuplicates()))

	return results, nil
}

// hashFiles hashes candidates using a worker pool; a single collector merges results
func (s *Scanner) hashFiles(ctx context.Context, hasher *filesystem.Hasher, candidates []*models.CandidateFile, workers int, results *models.ScanResults, progress *progressTracker) ([]*models.FileRecord, error) {
	// Create channels
	fileChan := make(chan *models.CandidateFile, workers*2)
	resultsChan := make(chan *hashResult, workers*2)

	// Start worker pool
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go s.worker(ctx, &wg, hasher, fileChan, resultsChan)
	}

	// Start results collector
	var records []*models.FileRecord
	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		records = s.collectResults(resultsChan, len(candidates), results, progress)
	}()

	// Feed candidates
feed:
	for _, c := range candidates {
		select {
		case <-ctx.Done():
			break feed
		case fileChan <- c:
		}
	}

	// Close channels and wait
	close(fileChan)
	wg.Wait()
	close(resultsChan)
	collectWg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Strings(results.SkippedPaths)
	return records, nil
}

// worker hashes files from the channel
func (s *Scanner) worker(ctx context.Context, wg *sync.WaitGroup, hasher *filesystem.Hasher, fileChan <-chan *models.CandidateFile, resultsChan chan<- *hashResult) {
	defer wg.Done()

	for c := range fileChan {
		select {
		case <-ctx.Done():
			return
		default:
			resultsChan <- hashCandidate(hasher, c)
		}
	}
}

// hashCandidate computes the record for one candidate
func hashCandidate(hasher *filesystem.Hasher, c *models.CandidateFile) *hashResult {
	digest, size, err := hasher.Hash(c.Path)
	if err != nil {
		return &hashResult{Candidate: c, Error: err}
	}

	record := &models.FileRecord{CandidateFile: *c, Hash: digest}
	record.Size = size
	return &hashResult{Candidate: c, Record: record}
}

// collectResults merges worker output; it is the only writer of results and progress during hashing
func (s *Scanner) collectResults(resultsChan <-chan *hashResult, total int, results *models.ScanResults, progress *progressTracker) []*models.FileRecord {
	records := make([]*models.FileRecord, 0, total)
	processed := 0

	for result := range resultsChan {
		s.mu.Lock()
		processed++
		if result.Error != nil {
			// Unreadable files are dropped from grouping, not reported as scan errors
			results.SkippedFiles++
			results.SkippedPaths = append(results.SkippedPaths, result.Candidate.Path)
			s.logger.Debug("Skipping unreadable file",
				zap.String("path", result.Candidate.Path),
				zap.Error(result.Error))
		} else {
			results.HashedFiles++
			results.BytesHashed += result.Record.Size
			records = append(records, result.Record)
		}
		s.mu.Unlock()

		progress.hashing(processed, total)
	}

	return records
}

// finish stamps end time and duration
func (s *Scanner) finish(results *models.ScanResults) {
	results.EndTime = time.Now()
	results.Duration = results.EndTime.Sub(results.StartTime)
}

// Scan runs a single scan with an optional progress callback
func Scan(ctx context.Context, cfg *config.Config, logger *zap.Logger, cb ProgressCallback) (*models.ScanResults, error) {
	scanner := NewScanner(cfg, logger)
	scanner.SetProgressCallback(cb)
	return scanner.Scan(ctx)
}
