// Package report renders the driver's pass-by-pass summary table and
// overall verdict onto the diagnostics stream. Per-field and per-entity
// findings are written directly by each check as plain Error:/Fixing:
// lines (spec.md §6); this package only owns the tabular summary that
// closes out a sweep.
package report

import (
	"fmt"
	"io"

	"github.com/rodaine/table"

	"github.com/Anika-Fariha/VSFSck/check"
)

// Labels distinguishes the initial summary's wording
// ("Valid" / "Errors found") from the post-fix summary's ("Valid" /
// "Errors remain"), matching the original tool's two summaries.
type Labels struct {
	Valid  string
	Errors string
}

var (
	FirstPass = Labels{Valid: "Valid", Errors: "Errors found"}
	PostFix   = Labels{Valid: "Valid", Errors: "Errors remain"}
)

// Summary writes a titled table naming each pass's outcome, followed by
// the overall verdict line.
func Summary(w io.Writer, title string, results []check.Result, labels Labels) (overallValid bool) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)

	tbl := table.New("Pass", "Result")
	tbl.WithWriter(w)

	overallValid = true
	for _, r := range results {
		label := labels.Valid
		if !r.Valid {
			label = labels.Errors
			overallValid = false
		}
		tbl.AddRow(r.Name, label)
	}
	tbl.Print()

	verdict := "CONSISTENT"
	if !overallValid {
		verdict = "ERRORS DETECTED"
		if labels.Errors == PostFix.Errors {
			verdict = "ERRORS REMAIN"
		}
	}
	fmt.Fprintf(w, "\nOverall file system status: %s\n", verdict)

	return overallValid
}

// Banner writes the tool's startup banner, matching
// original_source/vsfsck.c's introductory lines.
func Banner(w io.Writer, imagePath string, fix bool) {
	fmt.Fprintln(w, "VSFS Consistency Checker")
	fmt.Fprintln(w, "========================")
	fmt.Fprintf(w, "File system image: %s\n", imagePath)
	mode := "Check only"
	if fix {
		mode = "Check and fix"
	}
	fmt.Fprintf(w, "Mode: %s\n", mode)
}

// ResidualWarning writes the warning the original tool prints when a
// post-fix sweep is not fully clean: the policy does not claim success
// it cannot confirm (spec.md §7).
func ResidualWarning(w io.Writer) {
	fmt.Fprintln(w, "Warning: some errors could not be fixed automatically.")
	fmt.Fprintln(w, "Consider running additional recovery tooling or restoring from backup.")
}
