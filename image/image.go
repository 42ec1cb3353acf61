// Package image owns the in-memory VSFS image buffer: a fixed
// 64-block, 4096-byte-per-block byte region loaded whole from a flat
// file and, in repair mode, flushed back whole at the end of a run.
// Every other component views typed windows into a buffer it borrows
// from here; none of them retain a reference once their call returns.
package image

import (
	"fmt"
	"os"

	"github.com/Anika-Fariha/VSFSck/bitmap"
	"github.com/Anika-Fariha/VSFSck/inode"
	"github.com/Anika-Fariha/VSFSck/superblock"
	"github.com/Anika-Fariha/VSFSck/vsfs"
)

// Image is the sole mutable owner of a VSFS image's bytes.
type Image struct {
	buf [vsfs.ImageSize]byte
}

// New returns a zeroed Image, useful for building a synthetic image in
// tests without going through a file on disk.
func New() *Image {
	return &Image{}
}

// Load reads path into a freshly allocated Image. The file must be
// exactly vsfs.ImageSize bytes; any other size, or any I/O error, is
// fatal per spec.md §4.9 and is reported as an error rather than a
// diagnostic.
func Load(path string) (*Image, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("statting image: %w", err)
	}
	if info.Size() != vsfs.ImageSize {
		return nil, fmt.Errorf("image size %d does not match expected size %d", info.Size(), vsfs.ImageSize)
	}

	img := &Image{}
	if _, err := f.ReadAt(img.buf[:], 0); err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return img, nil
}

// Flush writes the whole buffer back to path at offset 0.
func (img *Image) Flush(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening image for flush: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteAt(img.buf[:], 0); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}

// Block returns the raw bytes of absolute block n. Callers that write
// through the returned slice mutate the image in place.
func (img *Image) Block(n uint32) []byte {
	off := vsfs.BlockOffset(n)
	return img.buf[off : off+vsfs.BlockSize]
}

// Superblock returns a view of block 0.
func (img *Image) Superblock() superblock.View {
	return superblock.New(img.Block(vsfs.SuperblockNum))
}

// InodeBitmap returns a view of the inode bitmap block.
func (img *Image) InodeBitmap() bitmap.View {
	return bitmap.New(img.Block(vsfs.InodeBitmapBlock))
}

// DataBitmap returns a view of the data bitmap block.
func (img *Image) DataBitmap() bitmap.View {
	return bitmap.New(img.Block(vsfs.DataBitmapBlock))
}

// InodeTable returns indexed access to the whole inode table region.
func (img *Image) InodeTable() inode.Table {
	off := vsfs.InodeTableOffset()
	return inode.NewTable(img.buf[off : off+vsfs.InodeTableBlocks*vsfs.BlockSize])
}

// Inode returns a view of inode i directly.
func (img *Image) Inode(i int) inode.View {
	return img.InodeTable().At(i)
}
