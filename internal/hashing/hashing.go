// Package hashing detects transcripts that finish in the same position.
package hashing

import (
	"github.com/lgbarn/movecheck/internal/chess"
)

// DuplicateDetector remembers the final positions it has seen. It is not
// safe for concurrent use; feed it reports in input order.
type DuplicateDetector struct {
	// hashTable maps a Zobrist hash to the positions that produced it
	hashTable map[uint64][]Signature
	// exactMatch also requires the same number of applied moves
	exactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature identifies one transcript's final position.
type Signature struct {
	Source   string
	Hash     uint64
	WeakHash uint32
	Applied  int // moves applied to reach the position
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:  make(map[uint64][]Signature),
		exactMatch: exactMatch,
	}
}

// NewSignature builds the signature of a final board.
func NewSignature(source string, board *chess.Board, applied int) Signature {
	return Signature{
		Source:   source,
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
		Applied:  applied,
	}
}

// CheckAndAdd records sig. If an earlier signature matches, it is returned
// with true and sig is not stored.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (Signature, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return Signature{}, false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.exactMatch || a.Applied == b.Applied
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}
