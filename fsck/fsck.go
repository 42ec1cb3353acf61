// Package fsck is the driver: it loads an image, runs the five checker
// passes in the fixed order spec.md §4.8 requires, reports a summary,
// optionally re-verifies once after repair, and flushes the image.
//
// There is no retry or rollback. A repair is committed to the in-memory
// buffer as soon as a pass decides it; the buffer is only written back
// to disk at the very end, and only in fix mode.
package fsck

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Anika-Fariha/VSFSck/check"
	"github.com/Anika-Fariha/VSFSck/image"
	"github.com/Anika-Fariha/VSFSck/report"
)

// Options configures one run of the checker.
type Options struct {
	ImagePath string
	Fix       bool
	// Verbose enables internal trace logging to stderr, separate from
	// the diagnostics stream written to w, which is the tool's actual
	// product.
	Verbose bool
}

// dlog is gated by Options.Verbose the way the rest of the pack gates a
// hand-rolled DPrintf by a debug flag, rather than reaching for a
// structured logging library nothing else in the pack imports.
func dlog(verbose bool, format string, args ...any) {
	if !verbose {
		return
	}
	log.New(os.Stderr, "vsfsck: ", log.Lmicroseconds).Printf(format, args...)
}

// Run loads the image at opts.ImagePath, checks it (repairing in place
// if opts.Fix is set), writes a human-readable report to w, and, in fix
// mode, flushes the repaired image back to disk.
//
// A non-nil error here is always an operational failure (bad image size,
// I/O error) per spec.md §4.9; structural inconsistencies are reported,
// never returned as an error.
func Run(w io.Writer, opts Options) error {
	img, err := image.Load(opts.ImagePath)
	if err != nil {
		return err
	}
	dlog(opts.Verbose, "loaded image %s", opts.ImagePath)

	report.Banner(w, opts.ImagePath, opts.Fix)

	mode := check.ReadOnly
	if opts.Fix {
		mode = check.Repair
	}

	results, _ := sweep(w, img, mode)
	overall := report.Summary(w, "Consistency Check Summary", results, report.FirstPass)
	dlog(opts.Verbose, "first sweep complete, overall valid=%v", overall)

	if opts.Fix && !overall {
		fmt.Fprintln(w, "\n=== Re-running Checks After Fixes ===")
		postResults, _ := sweep(w, img, check.ReadOnly)
		postOverall := report.Summary(w, "Post-Fix Consistency Check Summary", postResults, report.PostFix)
		dlog(opts.Verbose, "post-fix sweep complete, overall valid=%v", postOverall)
		if !postOverall {
			report.ResidualWarning(w)
		}
	}

	if opts.Fix {
		if err := img.Flush(opts.ImagePath); err != nil {
			return fmt.Errorf("flushing repaired image: %w", err)
		}
		dlog(opts.Verbose, "flushed repaired image to %s", opts.ImagePath)
	}

	return nil
}

// sweep runs all five passes once, in the fixed order the spec
// mandates, and returns their results plus the aggregate valid bit.
func sweep(w io.Writer, img *image.Image, mode check.Mode) ([]check.Result, bool) {
	results := make([]check.Result, 0, 5)
	allValid := true

	record := func(name string, valid bool) {
		results = append(results, check.Result{Name: name, Valid: valid})
		allValid = allValid && valid
	}

	record("Superblock", check.SuperblockCheck(w, img, mode))
	record("Inode Bitmap", check.InodeBitmapCheck(w, img, mode))

	rd := check.NewReachableData()
	record("Data Bitmap", check.DataBitmapCheck(w, img, mode, rd))

	// DuplicateBlockCheck and BadBlockCheck may mutate the image; they
	// must run after DataBitmapCheck has already computed its
	// reachability snapshot from the image as loaded.
	refs := check.NewBlockRefs()
	record("Duplicate Blocks", check.DuplicateBlockCheck(w, img, mode, refs))
	record("Bad Blocks", check.BadBlockCheck(w, img, mode))

	return results, allValid
}
