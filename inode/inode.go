// Package inode decodes and mutates records in the VSFS inode table: 80
// fixed-size, 256-byte packed records living in blocks 3-7 of the image.
package inode

import (
	"encoding/binary"

	"github.com/Anika-Fariha/VSFSck/vsfs"
)

// Slot identifies one of the four root pointer fields stored directly in
// an inode record.
type Slot int

const (
	DirectBlock Slot = iota
	SingleIndirect
	DoubleIndirect
	TripleIndirect
)

const (
	offMode          = 0
	offUID           = 4
	offGID           = 8
	offSize          = 12
	offAtime         = 16
	offCtime         = 20
	offMtime         = 24
	offDtime         = 28
	offLinksCount    = 32
	offBlocksCount   = 36
	offDirectBlock   = 40
	offSingleIndir   = 44
	offDoubleIndir   = 48
	offTripleIndir   = 52
)

var slotOffset = map[Slot]int{
	DirectBlock:    offDirectBlock,
	SingleIndirect: offSingleIndir,
	DoubleIndirect: offDoubleIndir,
	TripleIndirect: offTripleIndir,
}

// Slots lists the four root pointer slots in on-disk order.
var Slots = []Slot{DirectBlock, SingleIndirect, DoubleIndirect, TripleIndirect}

// View is a window over one 256-byte packed inode record.
type View struct {
	bytes []byte
}

// Table is indexed access into the whole inode table region.
type Table struct {
	bytes []byte // vsfs.InodeTableBlocks*vsfs.BlockSize
}

// NewTable wraps the inode-table region of the image as a Table.
func NewTable(buf []byte) Table { return Table{bytes: buf} }

// At returns a view of inode i, 0 <= i < vsfs.InodeCount.
func (t Table) At(i int) View {
	off := i * vsfs.InodeSize
	return View{bytes: t.bytes[off : off+vsfs.InodeSize]}
}

func (v View) Mode() uint32        { return binary.LittleEndian.Uint32(v.bytes[offMode:]) }
func (v View) UID() uint32         { return binary.LittleEndian.Uint32(v.bytes[offUID:]) }
func (v View) GID() uint32         { return binary.LittleEndian.Uint32(v.bytes[offGID:]) }
func (v View) Size() uint32        { return binary.LittleEndian.Uint32(v.bytes[offSize:]) }
func (v View) Atime() uint32       { return binary.LittleEndian.Uint32(v.bytes[offAtime:]) }
func (v View) Ctime() uint32       { return binary.LittleEndian.Uint32(v.bytes[offCtime:]) }
func (v View) Mtime() uint32       { return binary.LittleEndian.Uint32(v.bytes[offMtime:]) }
func (v View) Dtime() uint32       { return binary.LittleEndian.Uint32(v.bytes[offDtime:]) }
func (v View) LinksCount() uint32  { return binary.LittleEndian.Uint32(v.bytes[offLinksCount:]) }
func (v View) BlocksCount() uint32 { return binary.LittleEndian.Uint32(v.bytes[offBlocksCount:]) }

func (v View) SetDtime(t uint32)      { binary.LittleEndian.PutUint32(v.bytes[offDtime:], t) }
func (v View) SetLinksCount(n uint32) { binary.LittleEndian.PutUint32(v.bytes[offLinksCount:], n) }

// Slot reads one of the four root pointer fields.
func (v View) Slot(s Slot) uint32 {
	return binary.LittleEndian.Uint32(v.bytes[slotOffset[s]:])
}

// SetSlot writes one of the four root pointer fields.
func (v View) SetSlot(s Slot, val uint32) {
	binary.LittleEndian.PutUint32(v.bytes[slotOffset[s]:], val)
}

// Live implements the liveness rule of spec.md §3: an inode is live iff
// it has at least one link and has not been marked deleted.
func (v View) Live() bool {
	return v.LinksCount() > 0 && v.Dtime() == 0
}
