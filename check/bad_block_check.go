package check

import (
	"fmt"
	"io"

	"github.com/Anika-Fariha/VSFSck/image"
	"github.com/Anika-Fariha/VSFSck/vsfs"
	"github.com/Anika-Fariha/VSFSck/walk"
)

// BadBlockCheck enforces the bounded-pointer rule (spec.md §4.7,
// invariant 5): every nonzero block number stored anywhere must be
// strictly less than vsfs.TotalBlocks. It runs independently of
// DuplicateBlockCheck's discovery state, but after it in the driver's
// fixed order, so it sees whatever repairs duplicate handling already
// made.
func BadBlockCheck(w io.Writer, img *image.Image, mode Mode) bool {
	fmt.Fprintln(w, "=== Bad Block Check ===")

	table := img.InodeTable()
	valid := true

	for i := 0; i < vsfs.InodeCount; i++ {
		ip := table.At(i)
		if !ip.Live() {
			continue
		}

		walk.Walk(ip, img.Block, func(ref walk.Ref) bool {
			if vsfs.InBounds(ref.Block) {
				return true
			}

			valid = false
			fmt.Fprintf(w, "Error: inode %d has out-of-range block %d (%s)\n", i, ref.Block, ref.Role)
			if mode == Repair {
				fmt.Fprintf(w, "Fixing: zeroing out-of-range reference to block %d in inode %d\n", ref.Block, i)
				if ref.Role.IsRoot() {
					ip.SetSlot(ref.Slot, 0)
				} else {
					zeroEntry(img, ref.HolderBlock, ref.EntryIndex)
				}
			}
			return true
		})
	}

	return valid
}
