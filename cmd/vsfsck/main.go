// Command vsfsck checks (and, with -fix, repairs) the structural
// consistency of a VSFS image file.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Anika-Fariha/VSFSck/fsck"
)

func main() {
	app := &cli.App{
		Name:      "vsfsck",
		Usage:     "check and repair a VSFS image",
		UsageText: "vsfsck [--fix] <image>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fix",
				Usage: "repair inconsistencies in place and flush the image",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log internal trace information to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("usage: vsfsck [--fix] <image>", 1)
	}

	opts := fsck.Options{
		ImagePath: ctx.Args().Get(0),
		Fix:       ctx.Bool("fix"),
		Verbose:   ctx.Bool("verbose"),
	}

	if err := fsck.Run(ctx.App.Writer, opts); err != nil {
		return cli.Exit(fmt.Sprintf("vsfsck: %v", err), 1)
	}
	return nil
}
