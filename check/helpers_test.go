package check

import (
	"github.com/Anika-Fariha/VSFSck/image"
	"github.com/Anika-Fariha/VSFSck/superblock"
)

// newPristineImage returns a zeroed image with a well-formed superblock
// and nothing else populated: no live inodes, all bitmap bits clear.
func newPristineImage() *image.Image {
	img := image.New()
	sb := img.Superblock()
	for _, f := range superblock.Fields {
		sb.Set(f, superblock.Expected(f))
	}
	return img
}
