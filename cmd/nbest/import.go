package main

import (
	"fmt"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/anujsrc/bllip-parser/corpus"
	"github.com/anujsrc/bllip-parser/file"
	"github.com/anujsrc/bllip-parser/storage/sqlite/zombiezen"
)

func importCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "stream a scored corpus into a sqlite database",
		ArgsUsage: "<corpus-file>",
		Flags: append(readFlags(),
			&cli.StringFlag{
				Name:     "db",
				Usage:    "sqlite database path",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "corpus name in the database (default: file basename)",
			},
		),
		Action: func(c *cli.Context) error {
			return importAction(c, ui)
		},
	}
}

func importAction(c *cli.Context, ui UI) error {
	if c.NArg() != 1 {
		return fmt.Errorf("import: expected exactly one corpus file")
	}
	src := c.Args().First()
	name := c.String("name")
	if name == "" {
		name = filepath.Base(src)
	}

	pool, err := zombiezen.NewPool(c.String("db"))
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateCorpusTables(pool); err != nil {
		return fmt.Errorf("failed to create corpus tables: %w", err)
	}
	store := zombiezen.NewCorpusStore(pool)

	id, err := store.Create(name)
	if err != nil {
		return err
	}

	r, err := file.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	st, err := corpus.NewStream(r, corpus.Options{Downcase: c.Bool("downcase")})
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	fmt.Fprintf(ui.Out, "Reading %d sentences from %s...\n", st.Len(), src)
	uiprogress.Start()
	bar := uiprogress.AddBar(st.Len())
	bar.AppendCompleted()
	bar.PrependElapsed()

	for st.Scan() {
		if err := store.WriteSentence(id, st.Visited()-1, st.Sentence()); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write sentence %d: %w", st.Visited()-1, err)
		}
		bar.Incr()
	}
	uiprogress.Stop()
	if err := st.Err(); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d sentences from %s as %q\n", st.Visited(), src, name)
	return nil
}
