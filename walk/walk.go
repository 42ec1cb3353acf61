// Package walk implements the single traversal that every pass needing
// to inspect an inode's block graph shares: a deterministic walk over
// the direct pointer and the three levels of indirection, producing one
// tagged reference per nonzero pointer encountered.
package walk

import (
	"encoding/binary"

	"github.com/Anika-Fariha/VSFSck/inode"
	"github.com/Anika-Fariha/VSFSck/vsfs"
)

// Role tags why a Ref was produced: which pointer slot or indirect-block
// position it came from.
type Role int

const (
	Direct Role = iota
	L1Root
	L1Leaf
	L2Root
	L2Mid
	L2Leaf
	L3Root
	L3Upper
	L3Mid
	L3Leaf
)

func (r Role) String() string {
	switch r {
	case Direct:
		return "direct"
	case L1Root:
		return "single indirect"
	case L1Leaf:
		return "data block in single indirect"
	case L2Root:
		return "double indirect"
	case L2Mid:
		return "indirect block in double indirect"
	case L2Leaf:
		return "data block in double indirect"
	case L3Root:
		return "triple indirect"
	case L3Upper:
		return "double indirect block in triple indirect"
	case L3Mid:
		return "indirect block in triple indirect"
	case L3Leaf:
		return "data block in triple indirect"
	default:
		return "unknown"
	}
}

// IsRoot reports whether r is one of the four roles produced directly
// from an inode's own pointer slots.
func (r Role) IsRoot() bool {
	return r == Direct || r == L1Root || r == L2Root || r == L3Root
}

// IsLeaf reports whether r names a data block rather than an
// indirection-metadata block.
func (r Role) IsLeaf() bool {
	return r == Direct || r == L1Leaf || r == L2Leaf || r == L3Leaf
}

// Ref is one reference yielded by the walk, tagged with enough location
// information for a caller to repair it in place.
type Ref struct {
	Role  Role
	Block uint32

	// Slot is valid when Role.IsRoot() is true: it names the inode
	// pointer field that holds this reference.
	Slot inode.Slot

	// HolderBlock and EntryIndex are valid when Role.IsRoot() is false:
	// HolderBlock is the indirect block containing the entry, and
	// EntryIndex is the entry's position within it.
	HolderBlock uint32
	EntryIndex  int
}

// BlockReader returns the raw bytes of block n so the walker can read
// indirect-block entries out of it. It is the caller's job to size the
// backing buffer; the walker never writes through it.
type BlockReader func(n uint32) []byte

// Visitor is called once per reference. Its return value only matters
// for non-leaf roles (roots and mid/upper metadata blocks): returning
// false tells the walker not to descend into that block's subtree,
// which is how a caller implements "don't re-walk a block that turned
// out to be a duplicate".
type Visitor func(Ref) (descend bool)

// Walk visits every reference stored in ip, in the fixed order: direct,
// single indirect subtree, double indirect subtree, triple indirect
// subtree. A root or intermediate block whose number is not in the data
// region is still reported (so bounds/duplicate passes see it) but is
// never dereferenced.
func Walk(ip inode.View, blocks BlockReader, visit Visitor) {
	if b := ip.Slot(inode.DirectBlock); b != 0 {
		visit(Ref{Role: Direct, Block: b, Slot: inode.DirectBlock})
	}

	if root := ip.Slot(inode.SingleIndirect); root != 0 {
		if visit(Ref{Role: L1Root, Block: root, Slot: inode.SingleIndirect}) && vsfs.InDataRegion(root) {
			walkLeaves(blocks, root, L1Leaf, visit)
		}
	}

	if root := ip.Slot(inode.DoubleIndirect); root != 0 {
		if visit(Ref{Role: L2Root, Block: root, Slot: inode.DoubleIndirect}) && vsfs.InDataRegion(root) {
			walkMids(blocks, root, L2Mid, L2Leaf, visit)
		}
	}

	if root := ip.Slot(inode.TripleIndirect); root != 0 {
		if visit(Ref{Role: L3Root, Block: root, Slot: inode.TripleIndirect}) && vsfs.InDataRegion(root) {
			walkUppers(blocks, root, visit)
		}
	}
}

// entries decodes the 1024 little-endian uint32 pointers in block n.
func entries(blocks BlockReader, n uint32) []uint32 {
	buf := blocks(n)
	out := make([]uint32, vsfs.EntriesPerIndirect)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*vsfs.IndirectEntrySize:])
	}
	return out
}

// walkLeaves visits every nonzero entry of a single-level indirect block
// (used directly by the L1 subtree).
func walkLeaves(blocks BlockReader, holder uint32, role Role, visit Visitor) {
	for i, e := range entries(blocks, holder) {
		if e == 0 {
			continue
		}
		visit(Ref{Role: role, Block: e, HolderBlock: holder, EntryIndex: i})
	}
}

// walkMids visits every nonzero entry of a double-indirect root (each of
// which is itself an L1 block), descending into each unless the caller
// declines.
func walkMids(blocks BlockReader, doubleRoot uint32, midRole, leafRole Role, visit Visitor) {
	for i, mid := range entries(blocks, doubleRoot) {
		if mid == 0 {
			continue
		}
		if visit(Ref{Role: midRole, Block: mid, HolderBlock: doubleRoot, EntryIndex: i}) && vsfs.InDataRegion(mid) {
			walkLeaves(blocks, mid, leafRole, visit)
		}
	}
}

// walkUppers visits every nonzero entry of a triple-indirect root (each
// of which is itself a double-indirect block), descending two further
// levels unless the caller declines at any point.
func walkUppers(blocks BlockReader, tripleRoot uint32, visit Visitor) {
	for i, upper := range entries(blocks, tripleRoot) {
		if upper == 0 {
			continue
		}
		if visit(Ref{Role: L3Upper, Block: upper, HolderBlock: tripleRoot, EntryIndex: i}) && vsfs.InDataRegion(upper) {
			walkMids(blocks, upper, L3Mid, L3Leaf, visit)
		}
	}
}
