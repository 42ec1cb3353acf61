package check

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Anika-Fariha/VSFSck/inode"
)

func TestDataBitmapCheckValid(t *testing.T) {
	assert := assert.New(t)
	img := newPristineImage()

	ip := img.Inode(0)
	ip.SetLinksCount(1)
	ip.SetSlot(inode.DirectBlock, 8)
	img.DataBitmap().Set(0)

	var buf bytes.Buffer
	valid := DataBitmapCheck(&buf, img, ReadOnly, NewReachableData())
	assert.True(valid)
}

func TestDataBitmapCheckMarksReferencedBlock(t *testing.T) {
	assert := assert.New(t)
	img := newPristineImage()
	ip := img.Inode(0)
	ip.SetLinksCount(1)
	ip.SetSlot(inode.DirectBlock, 8)

	var buf bytes.Buffer
	valid := DataBitmapCheck(&buf, img, Repair, NewReachableData())

	assert.False(valid)
	assert.True(img.DataBitmap().Test(0))
}

func TestDataBitmapCheckClearsStaleBit(t *testing.T) {
	assert := assert.New(t)
	img := newPristineImage()
	img.DataBitmap().Set(3) // no live inode references block 11

	var buf bytes.Buffer
	valid := DataBitmapCheck(&buf, img, Repair, NewReachableData())

	assert.False(valid)
	assert.False(img.DataBitmap().Test(3))
}

func TestDataBitmapCheckDoesNotDescendIndirect(t *testing.T) {
	assert := assert.New(t)
	img := newPristineImage()
	ip := img.Inode(0)
	ip.SetLinksCount(1)
	ip.SetSlot(inode.SingleIndirect, 9)
	// Block 9's entries point at block 20, but this pass only looks at
	// the inode's own root slots (spec's documented limitation).
	entries := img.Block(9)
	entries[0] = 20

	rd := NewReachableData()
	var buf bytes.Buffer
	valid := DataBitmapCheck(&buf, img, Repair, rd)

	// single_indirect (block 9) itself is a root slot and is referenced.
	assert.False(valid)
	assert.True(img.DataBitmap().Test(9 - 8))
	// Block 20 is never considered, since reaching it requires descent.
	assert.False(rd.Referenced[20-8])
}

func TestDataBitmapCheckIgnoresBlocksBelowDataRegion(t *testing.T) {
	assert := assert.New(t)
	img := newPristineImage()
	ip := img.Inode(0)
	ip.SetLinksCount(1)
	ip.SetSlot(inode.DirectBlock, 3) // in-bounds but below the data region

	rd := NewReachableData()
	var buf bytes.Buffer
	valid := DataBitmapCheck(&buf, img, ReadOnly, rd)

	assert.True(valid, "a root pointer into non-data blocks sets no data-bitmap bit")
	for _, r := range rd.Referenced {
		assert.False(r)
	}
}
