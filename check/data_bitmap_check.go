package check

import (
	"fmt"
	"io"

	"github.com/Anika-Fariha/VSFSck/image"
	"github.com/Anika-Fariha/VSFSck/inode"
	"github.com/Anika-Fariha/VSFSck/vsfs"
)

// DataBitmapCheck computes which data-region slots are referenced by a
// live inode's own root pointer slots and aligns the data bitmap to
// match (spec.md §4.5). It intentionally does not descend into indirect
// subtrees: the data bitmap reflects direct inode references only, a
// known limitation inherited from the source tool (spec.md §9).
//
// This pass must run before DuplicateBlockCheck and BadBlockCheck
// mutate the image, so its view of "referenced" reflects the image as
// loaded; Run in the fsck package enforces that ordering.
func DataBitmapCheck(w io.Writer, img *image.Image, mode Mode, rd *ReachableData) bool {
	fmt.Fprintln(w, "=== Data Bitmap Check ===")

	table := img.InodeTable()
	for i := 0; i < vsfs.InodeCount; i++ {
		ip := table.At(i)
		if !ip.Live() {
			continue
		}
		for _, slot := range inode.Slots {
			b := ip.Slot(slot)
			if b != 0 && vsfs.InDataRegion(b) {
				rd.Referenced[b-vsfs.FirstDataBlock] = true
			}
		}
	}

	bmap := img.DataBitmap()
	valid := true
	for j := 0; j < vsfs.DataBlockCount; j++ {
		want := rd.Referenced[j]
		used := bmap.Test(j)
		if want == used {
			continue
		}
		valid = false
		blockNum := vsfs.FirstDataBlock + j
		if want {
			fmt.Fprintf(w, "Error: block %d is referenced by inode(s) but not marked used in data bitmap\n", blockNum)
			if mode == Repair {
				fmt.Fprintf(w, "Fixing: marking block %d as used in data bitmap\n", blockNum)
				bmap.Set(j)
			}
		} else {
			fmt.Fprintf(w, "Error: block %d is marked used in data bitmap but not referenced by any inode\n", blockNum)
			if mode == Repair {
				fmt.Fprintf(w, "Fixing: clearing block %d in data bitmap\n", blockNum)
				bmap.Clear(j)
			}
		}
	}

	return valid
}
