// Package check implements the five structural consistency passes that
// together enforce VSFS's invariants: superblock well-formedness, inode
// bitmap liveness, data bitmap reachability, unique block ownership, and
// bounded block pointers.
//
// Every pass has the same shape: read (and, in repair mode, mutate) the
// image in place, write human-readable diagnostics to w, and return
// whether the structure was already valid before any repair. No pass
// retries, rolls back, or aborts another; structural findings are
// values, never errors (spec.md §7).
package check

import "github.com/Anika-Fariha/VSFSck/vsfs"

// Mode selects whether a pass may mutate the image.
type Mode bool

const (
	ReadOnly Mode = false
	Repair   Mode = true
)

// BlockRefs is the cross-inode discovery state shared by
// DuplicateBlockCheck across a single sweep: which absolute blocks have
// been claimed, and by which inode first.
type BlockRefs struct {
	Seen       [vsfs.TotalBlocks]bool
	FirstOwner [vsfs.TotalBlocks]int
}

// NewBlockRefs returns a zeroed BlockRefs ready for one sweep.
func NewBlockRefs() *BlockRefs { return &BlockRefs{} }

// ReachableData is DataBitmapCheck's per-sweep scratch space: whether
// each data-region slot is referenced by a live inode's root pointers.
type ReachableData struct {
	Referenced [vsfs.DataBlockCount]bool
}

// NewReachableData returns a zeroed ReachableData ready for one sweep.
func NewReachableData() *ReachableData { return &ReachableData{} }

// Result is one pass's outcome, used to build the driver's summary.
type Result struct {
	Name  string
	Valid bool
}
