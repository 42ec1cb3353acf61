package fsck

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anika-Fariha/VSFSck/image"
	"github.com/Anika-Fariha/VSFSck/inode"
	"github.com/Anika-Fariha/VSFSck/superblock"
	"github.com/Anika-Fariha/VSFSck/vsfs"
)

// createImage allocates a correctly-sized temp file and an in-memory
// Image with a well-formed superblock, flushed to that file so Run can
// load it the same way it would load a real image on disk.
func createImage(t *testing.T) (*image.Image, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.img")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(vsfs.ImageSize))
	require.NoError(t, f.Close())

	img := image.New()
	sb := img.Superblock()
	for _, field := range superblock.Fields {
		sb.Set(field, superblock.Expected(field))
	}
	require.NoError(t, img.Flush(path))
	return img, path
}

func reload(t *testing.T, path string) *image.Image {
	t.Helper()
	img, err := image.Load(path)
	require.NoError(t, err)
	return img
}

func TestRunPristineImageStaysClean(t *testing.T) {
	assert := assert.New(t)
	img, path := createImage(t)
	img.Inode(0).SetLinksCount(1)
	img.Inode(0).SetSlot(inode.DirectBlock, 8)
	img.InodeBitmap().Set(0)
	img.DataBitmap().Set(0)
	require.NoError(t, img.Flush(path))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, Options{ImagePath: path, Fix: true}))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(before, after, "fix mode on an already-consistent image changes nothing")
	assert.Contains(buf.String(), "CONSISTENT")
}

func TestCheckOnlyNeverWritesToDisk(t *testing.T) {
	assert := assert.New(t)
	img, path := createImage(t)
	img.InodeBitmap().Set(5) // inconsistent: inode 5 is not live
	require.NoError(t, img.Flush(path))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, Options{ImagePath: path, Fix: false}))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(before, after, "check-only mode must never alter a single byte on disk")
	assert.Contains(buf.String(), "ERRORS DETECTED")
}

func TestFixModeRepairsBitmapLagAndPersists(t *testing.T) {
	assert := assert.New(t)
	img, path := createImage(t)
	img.Inode(0).SetLinksCount(1)
	img.Inode(0).SetSlot(inode.DirectBlock, 8)
	// Bitmaps deliberately left lagging behind.
	require.NoError(t, img.Flush(path))

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, Options{ImagePath: path, Fix: true}))

	got := reload(t, path)
	assert.True(got.InodeBitmap().Test(0))
	assert.True(got.DataBitmap().Test(0))
	assert.Contains(buf.String(), "Post-Fix Consistency Check Summary")
}

func TestFixModeTwiceIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	img, path := createImage(t)
	img.Inode(0).SetLinksCount(1)
	img.Inode(0).SetSlot(inode.DirectBlock, 10)
	img.Inode(1).SetLinksCount(1)
	img.Inode(1).SetSlot(inode.DirectBlock, 10) // duplicate
	require.NoError(t, img.Flush(path))

	var first bytes.Buffer
	require.NoError(t, Run(&first, Options{ImagePath: path, Fix: true}))

	afterFirst, err := os.ReadFile(path)
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, Run(&second, Options{ImagePath: path, Fix: true}))

	afterSecond, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(afterFirst, afterSecond, "a second fix pass must be a no-op once the first has converged")
	assert.NotContains(second.String(), "Fixing:")
}

func TestRunRejectsWrongSize(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "short.img")
	require.NoError(t, os.WriteFile(path, make([]byte, 100), 0600))

	var buf bytes.Buffer
	err := Run(&buf, Options{ImagePath: path, Fix: false})
	assert.Error(err)
}

func TestRunRejectsMissingFile(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	err := Run(&buf, Options{ImagePath: filepath.Join(t.TempDir(), "missing.img"), Fix: false})
	assert.Error(err)
}
