package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}
	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "nbest: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:  "nbest",
		Usage: "score, store and inspect n-best parse corpora",
		Commands: []*cli.Command{
			scoreCommand(ui),
			importCommand(ui),
			corporaCommand(ui),
			inspectCommand(ui),
		},
	}
}

// readFlags are shared by every command that reads a corpus.
func readFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "downcase",
			Usage: "lower-case terminal tokens before parsing trees",
		},
	}
}
