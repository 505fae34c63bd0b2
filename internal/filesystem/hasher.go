package filesystem

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/IvanShishkin/collider/internal/config"
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// ChunkSize is the read buffer used when hashing
const ChunkSize = 4096

// ErrUnknownAlgorithm is returned for an unsupported hash algorithm
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Hasher computes content digests of files
type Hasher struct {
	algorithm string
	newHash   func() hash.Hash
}

// NewHasher creates a hasher for the given algorithm (md5 when empty)
func NewHasher(algorithm string) (*Hasher, error) {
	if algorithm == "" {
		algorithm = config.HashMD5
	}

	var fn func() hash.Hash
	switch algorithm {
	case config.HashMD5:
		fn = md5.New
	case config.HashSHA256:
		fn = sha256.New
	case config.HashXXHash:
		fn = func() hash.Hash { return xxhash.New() }
	case config.HashXXH3:
		fn = func() hash.Hash { return xxh3.New() }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}

	return &Hasher{algorithm: algorithm, newHash: fn}, nil
}

// Algorithm returns the algorithm name
func (h *Hasher) Algorithm() string {
	return h.algorithm
}

// Hash streams the file at path through the digest in ChunkSize reads and
// returns the hex digest and the number of bytes read
func (h *Hasher) Hash(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	digest := h.newHash()
	buf := make([]byte, ChunkSize)
	n, err := io.CopyBuffer(digest, onlyReader{f}, buf)
	if err != nil {
		return "", n, fmt.Errorf("failed to read file: %w", err)
	}

	return hex.EncodeToString(digest.Sum(nil)), n, nil
}

// onlyReader hides WriterTo/ReaderFrom so io.CopyBuffer really uses the chunk buffer
type onlyReader struct {
	io.Reader
}
