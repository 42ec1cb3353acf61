// Package bitmap provides bit-indexed access to a byte-packed bitmap
// region such as the inode bitmap or data bitmap blocks of a VSFS image.
package bitmap

// View is a thin window over a byte-packed, LSB-first bitmap. It does not
// own the underlying bytes and performs no bounds checking beyond what
// the slice itself enforces — callers are expected to size the view
// correctly using the layout constants.
type View struct {
	bytes []byte
}

// New wraps buf (typically a single 4096-byte block) as a bitmap view.
func New(buf []byte) View {
	return View{bytes: buf}
}

// Test reports whether bit i is set.
func (v View) Test(i int) bool {
	byteIdx, bitIdx := i/8, i%8
	return v.bytes[byteIdx]&(1<<bitIdx) != 0
}

// Set sets bit i. Setting an already-set bit is a no-op.
func (v View) Set(i int) {
	byteIdx, bitIdx := i/8, i%8
	v.bytes[byteIdx] |= 1 << bitIdx
}

// Clear clears bit i. Clearing an already-clear bit is a no-op.
func (v View) Clear(i int) {
	byteIdx, bitIdx := i/8, i%8
	v.bytes[byteIdx] &^= 1 << bitIdx
}

// Align sets or clears bit i to match want, returning true if the bit
// had to change.
func (v View) Align(i int, want bool) bool {
	if v.Test(i) == want {
		return false
	}
	if want {
		v.Set(i)
	} else {
		v.Clear(i)
	}
	return true
}
