package check

import (
	"fmt"
	"io"

	"github.com/Anika-Fariha/VSFSck/image"
	"github.com/Anika-Fariha/VSFSck/superblock"
)

// SuperblockCheck compares every validated superblock field against its
// expected constant (spec.md §3, §4.3). Reserved bytes are never
// inspected. In Repair mode, a mismatched field is overwritten with its
// expected value.
func SuperblockCheck(w io.Writer, img *image.Image, mode Mode) bool {
	fmt.Fprintln(w, "=== Superblock Check ===")

	sb := img.Superblock()
	valid := true

	for _, f := range superblock.Fields {
		got := sb.Get(f)
		want := superblock.Expected(f)
		if got == want {
			continue
		}
		valid = false
		fmt.Fprintf(w, "Error: superblock field %s is %d, expected %d\n", f, got, want)
		if mode == Repair {
			fmt.Fprintf(w, "Fixing: setting %s to %d\n", f, want)
			sb.Set(f, want)
		}
	}

	return valid
}
