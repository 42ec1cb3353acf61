// Package vsfs holds the fixed on-disk geometry of a VSFS image: block
// size, region boundaries, and the few numeric constants a well-formed
// superblock must carry. Nothing here is configurable — the layout is
// part of the format, not a parameter.
package vsfs

const (
	BlockSize  = 4096
	TotalBlocks = 64
	ImageSize  = BlockSize * TotalBlocks

	Magic     = 0xD34D
	InodeSize = 256

	InodesPerBlock   = BlockSize / InodeSize // 16
	InodeTableBlocks = 5
	InodeCount       = InodesPerBlock * InodeTableBlocks // 80

	SuperblockNum    = 0
	InodeBitmapBlock = 1
	DataBitmapBlock  = 2
	InodeTableStart  = 3
	FirstDataBlock   = InodeTableStart + InodeTableBlocks // 8
	DataBlockCount   = TotalBlocks - FirstDataBlock        // 56

	// IndirectEntrySize is the width, in bytes, of a little-endian
	// unsigned block number stored inside an indirect block.
	IndirectEntrySize    = 4
	EntriesPerIndirect   = BlockSize / IndirectEntrySize // 1024
)

// BlockOffset returns the byte offset of the start of block n.
func BlockOffset(n uint32) int {
	return int(n) * BlockSize
}

// SuperblockOffset is the byte offset of the superblock region.
func SuperblockOffset() int { return BlockOffset(SuperblockNum) }

// InodeBitmapOffset is the byte offset of the inode bitmap region.
func InodeBitmapOffset() int { return BlockOffset(InodeBitmapBlock) }

// DataBitmapOffset is the byte offset of the data bitmap region.
func DataBitmapOffset() int { return BlockOffset(DataBitmapBlock) }

// InodeTableOffset is the byte offset of the inode table region.
func InodeTableOffset() int { return BlockOffset(InodeTableStart) }

// InodeOffset is the byte offset of inode i within the image.
func InodeOffset(i int) int {
	return InodeTableOffset() + i*InodeSize
}

// DataBlockOffset is the byte offset of absolute data block n
// (n must be in [FirstDataBlock, TotalBlocks)).
func DataBlockOffset(n uint32) int { return BlockOffset(n) }

// InDataRegion reports whether block n is a valid, dereferenceable
// location inside the data region.
func InDataRegion(n uint32) bool {
	return n >= FirstDataBlock && n < TotalBlocks
}

// InBounds reports whether block number n is a legal block number
// anywhere on the volume (the bounded-pointer rule, spec invariant 5).
func InBounds(n uint32) bool {
	return n < TotalBlocks
}
