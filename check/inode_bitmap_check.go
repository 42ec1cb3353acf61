package check

import (
	"fmt"
	"io"

	"github.com/Anika-Fariha/VSFSck/image"
	"github.com/Anika-Fariha/VSFSck/vsfs"
)

// InodeBitmapCheck aligns the inode bitmap to the inode table's own
// liveness predicate (spec.md §4.4): the bitmap is the derivable view,
// the inode's links_count/dtime pair is the source of truth.
func InodeBitmapCheck(w io.Writer, img *image.Image, mode Mode) bool {
	fmt.Fprintln(w, "=== Inode Bitmap Check ===")

	bmap := img.InodeBitmap()
	table := img.InodeTable()
	valid := true

	for i := 0; i < vsfs.InodeCount; i++ {
		live := table.At(i).Live()
		used := bmap.Test(i)
		if live == used {
			continue
		}
		valid = false
		if live {
			fmt.Fprintf(w, "Error: inode %d is live but not marked used in inode bitmap\n", i)
			if mode == Repair {
				fmt.Fprintf(w, "Fixing: marking inode %d as used in inode bitmap\n", i)
				bmap.Set(i)
			}
		} else {
			fmt.Fprintf(w, "Error: inode %d is marked used in inode bitmap but is not live\n", i)
			if mode == Repair {
				fmt.Fprintf(w, "Fixing: clearing inode %d in inode bitmap\n", i)
				bmap.Clear(i)
			}
		}
	}

	return valid
}
