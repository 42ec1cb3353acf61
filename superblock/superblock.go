// Package superblock decodes and validates the VSFS superblock, the
// first block of the image.
package superblock

import (
	"encoding/binary"

	"github.com/Anika-Fariha/VSFSck/vsfs"
)

// Field identifies one of the nine validated superblock fields.
type Field int

const (
	Magic Field = iota
	BlockSize
	TotalBlocks
	InodeBitmapBlock
	DataBitmapBlock
	InodeTableStart
	FirstDataBlock
	InodeSize
	InodeCount
)

func (f Field) String() string {
	switch f {
	case Magic:
		return "magic"
	case BlockSize:
		return "block_size"
	case TotalBlocks:
		return "total_blocks"
	case InodeBitmapBlock:
		return "inode_bitmap_block"
	case DataBitmapBlock:
		return "data_bitmap_block"
	case InodeTableStart:
		return "inode_table_start"
	case FirstDataBlock:
		return "first_data_block"
	case InodeSize:
		return "inode_size"
	case InodeCount:
		return "inode_count"
	default:
		return "unknown"
	}
}

// View is a window over the raw superblock block. Field offsets follow
// spec.md §3's packed, little-endian layout.
type View struct {
	bytes []byte
}

// New wraps a 4096-byte block as a superblock view.
func New(buf []byte) View { return View{bytes: buf} }

const (
	offMagic            = 0
	offBlockSize        = 2
	offTotalBlocks      = 6
	offInodeBitmapBlock = 10
	offDataBitmapBlock  = 14
	offInodeTableStart  = 18
	offFirstDataBlock   = 22
	offInodeSize        = 26
	offInodeCount       = 30
)

func (v View) Get(f Field) uint32 {
	switch f {
	case Magic:
		return uint32(binary.LittleEndian.Uint16(v.bytes[offMagic:]))
	case BlockSize:
		return binary.LittleEndian.Uint32(v.bytes[offBlockSize:])
	case TotalBlocks:
		return binary.LittleEndian.Uint32(v.bytes[offTotalBlocks:])
	case InodeBitmapBlock:
		return binary.LittleEndian.Uint32(v.bytes[offInodeBitmapBlock:])
	case DataBitmapBlock:
		return binary.LittleEndian.Uint32(v.bytes[offDataBitmapBlock:])
	case InodeTableStart:
		return binary.LittleEndian.Uint32(v.bytes[offInodeTableStart:])
	case FirstDataBlock:
		return binary.LittleEndian.Uint32(v.bytes[offFirstDataBlock:])
	case InodeSize:
		return binary.LittleEndian.Uint32(v.bytes[offInodeSize:])
	case InodeCount:
		return binary.LittleEndian.Uint32(v.bytes[offInodeCount:])
	default:
		panic("superblock: unknown field")
	}
}

func (v View) Set(f Field, val uint32) {
	switch f {
	case Magic:
		binary.LittleEndian.PutUint16(v.bytes[offMagic:], uint16(val))
	case BlockSize:
		binary.LittleEndian.PutUint32(v.bytes[offBlockSize:], val)
	case TotalBlocks:
		binary.LittleEndian.PutUint32(v.bytes[offTotalBlocks:], val)
	case InodeBitmapBlock:
		binary.LittleEndian.PutUint32(v.bytes[offInodeBitmapBlock:], val)
	case DataBitmapBlock:
		binary.LittleEndian.PutUint32(v.bytes[offDataBitmapBlock:], val)
	case InodeTableStart:
		binary.LittleEndian.PutUint32(v.bytes[offInodeTableStart:], val)
	case FirstDataBlock:
		binary.LittleEndian.PutUint32(v.bytes[offFirstDataBlock:], val)
	case InodeSize:
		binary.LittleEndian.PutUint32(v.bytes[offInodeSize:], val)
	case InodeCount:
		binary.LittleEndian.PutUint32(v.bytes[offInodeCount:], val)
	default:
		panic("superblock: unknown field")
	}
}

// Expected returns the constant a well-formed superblock must carry for
// field f.
func Expected(f Field) uint32 {
	switch f {
	case Magic:
		return vsfs.Magic
	case BlockSize:
		return vsfs.BlockSize
	case TotalBlocks:
		return vsfs.TotalBlocks
	case InodeBitmapBlock:
		return vsfs.InodeBitmapBlock
	case DataBitmapBlock:
		return vsfs.DataBitmapBlock
	case InodeTableStart:
		return vsfs.InodeTableStart
	case FirstDataBlock:
		return vsfs.FirstDataBlock
	case InodeSize:
		return vsfs.InodeSize
	case InodeCount:
		return vsfs.InodeCount
	default:
		panic("superblock: unknown field")
	}
}

// Fields lists every validated field in on-disk order.
var Fields = []Field{
	Magic, BlockSize, TotalBlocks, InodeBitmapBlock, DataBitmapBlock,
	InodeTableStart, FirstDataBlock, InodeSize, InodeCount,
}
