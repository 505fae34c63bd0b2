package core

import (
	"fmt"
	"sync"
)

// Progress checkpoints, in percent
const (
	progressDiscovery = 5
	progressHashFloor = 10
	progressHashCeil  = 90
	progressAnalysis  = 95
	progressDone      = 100
)

// ProgressCallback is called to report scan progress
type ProgressCallback func(percent int, message string)

// progressTracker serializes callback invocations and never lets the
// reported percentage go backwards
type progressTracker struct {
	mu   sync.Mutex
	cb   ProgressCallback
	last int
}

func newProgressTracker(cb ProgressCallback) *progressTracker {
	return &progressTracker{cb: cb, last: -1}
}

// report forwards percent (clamped to 0..100 and to the last value sent)
func (p *progressTracker) report(percent int, message string) {
	if p == nil || p.cb == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if percent > progressDone {
		percent = progressDone
	}
	if percent < p.last {
		percent = p.last
	}
	if percent < 0 {
		percent = 0
	}
	p.last = percent
	p.cb(percent, message)
}

// hashing reports done/total files hashed, interpolated between the hashing floor and ceiling
func (p *progressTracker) hashing(done, total int) {
	if total <= 0 {
		return
	}
	percent := progressHashFloor + done*(progressHashCeil-progressHashFloor)/total
	p.report(percent, fmt.Sprintf("Hashing files: %d/%d", done, total))
}
