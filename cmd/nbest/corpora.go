package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/anujsrc/bllip-parser/storage/sqlite/zombiezen"
)

func corporaCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "corpora",
		Usage: "list the corpora stored in a sqlite database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Usage:    "sqlite database path",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return corporaAction(c, ui)
		},
	}
}

func corporaAction(c *cli.Context, ui UI) error {
	pool, err := zombiezen.NewPool(c.String("db"))
	if err != nil {
		return err
	}
	defer pool.Close()

	infos, err := zombiezen.NewCorpusStore(pool).Corpora()
	if err != nil {
		return err
	}
	for _, info := range infos {
		fmt.Fprintf(ui.Out, "%4d  %-40s %7d sentences\n", info.ID, info.Name, info.NSentences)
	}
	return nil
}
