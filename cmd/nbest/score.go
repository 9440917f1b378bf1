package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/anujsrc/bllip-parser/corpus"
	"github.com/anujsrc/bllip-parser/file"
	"github.com/anujsrc/bllip-parser/render"
	"github.com/anujsrc/bllip-parser/stat"
)

func scoreCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "stream a corpus and report oracle statistics",
		ArgsUsage: "<corpus-file>",
		Flags: append(readFlags(),
			&cli.BoolFlag{
				Name:  "ignore-trees",
				Usage: "skip tree bodies; reports counts only, no scores",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "write the report as JSON",
			},
			&cli.BoolFlag{
				Name:  "per-sentence",
				Usage: "include a summary line per sentence",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar while reading",
			},
		),
		Action: func(c *cli.Context) error {
			return scoreAction(c, ui)
		},
	}
}

func scoreAction(c *cli.Context, ui UI) error {
	if c.NArg() != 1 {
		return fmt.Errorf("score: expected exactly one corpus file")
	}
	name := c.Args().First()
	opts := corpus.Options{
		Downcase:    c.Bool("downcase"),
		IgnoreTrees: c.Bool("ignore-trees"),
	}

	r, err := file.Open(name)
	if err != nil {
		return err
	}
	defer r.Close()

	st, err := corpus.NewStream(r, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var bar *uiprogress.Bar
	if c.Bool("progress") {
		uiprogress.Start()
		bar = uiprogress.AddBar(st.Len())
		bar.AppendCompleted()
		bar.PrependElapsed()
		defer uiprogress.Stop()
	}

	h := stat.NewHandler()
	var summaries []render.SentenceSummary
	for st.Scan() {
		s := st.Sentence()
		h.Aggregate(s)
		if c.Bool("per-sentence") {
			summaries = append(summaries, render.Summarize(st.Visited()-1, s))
		}
		if bar != nil {
			bar.Incr()
		}
	}
	if err := st.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	rep := render.Report{Corpus: name, Stats: h.Get(), Sentences: summaries}
	var rd render.Renderer = render.NewTextRenderer(ui.Out)
	if c.Bool("json") {
		rd = render.NewJSONRenderer(ui.Out)
	}
	return rd.Render(rep)
}
