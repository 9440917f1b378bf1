package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"github.com/anujsrc/bllip-parser/corpus"
	"github.com/anujsrc/bllip-parser/render"
	"github.com/anujsrc/bllip-parser/stat"
)

func inspectCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "browse a corpus interactively",
		ArgsUsage: "<corpus-file>",
		Flags:     readFlags(),
		Action: func(c *cli.Context) error {
			return inspectAction(c, ui)
		},
	}
}

var inspectSuggestions = []prompt.Suggest{
	{Text: "sent", Description: "sent <i>: summary of sentence i"},
	{Text: "gold", Description: "gold <i>: gold tree of sentence i"},
	{Text: "parses", Description: "parses <i>: candidates of sentence i"},
	{Text: "best", Description: "best <i>: best-scoring candidate of sentence i"},
	{Text: "stats", Description: "corpus-level oracle statistics"},
	{Text: "quit", Description: "leave the inspector"},
}

func inspectAction(c *cli.Context, ui UI) error {
	if c.NArg() != 1 {
		return fmt.Errorf("inspect: expected exactly one corpus file")
	}
	name := c.Args().First()
	crp, err := corpus.Load(name, corpus.Options{Downcase: c.Bool("downcase")})
	if err != nil {
		return err
	}

	ins := inspector{corpus: crp, ui: ui}
	fmt.Fprintf(ui.Out, "%s: %d sentences loaded\n", name, crp.NSentences())

	for {
		in := prompt.Input("nbest> ", completer,
			prompt.OptionTitle("nbest inspect"),
			prompt.OptionMaxSuggestion(6),
		)
		if strings.TrimSpace(in) == "quit" {
			return nil
		}
		if err := ins.run(in); err != nil {
			fmt.Fprintf(ui.Err, "%v\n", err)
		}
	}
}

func completer(d prompt.Document) []prompt.Suggest {
	if strings.Contains(d.TextBeforeCursor(), " ") {
		return nil
	}
	return prompt.FilterHasPrefix(inspectSuggestions, d.GetWordBeforeCursor(), true)
}

type inspector struct {
	corpus *corpus.Corpus
	ui     UI
}

func (ins *inspector) run(in string) error {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return nil
	}
	cmd := fields[0]

	if cmd == "stats" {
		h := stat.NewHandler()
		for i := range ins.corpus.Sentences {
			h.Aggregate(&ins.corpus.Sentences[i])
		}
		return render.NewTextRenderer(ins.ui.Out).Render(render.Report{Stats: h.Get()})
	}

	if len(fields) != 2 {
		return fmt.Errorf("usage: %s <sentence-index>", cmd)
	}
	i, err := strconv.Atoi(fields[1])
	if err != nil || i < 0 || i >= ins.corpus.NSentences() {
		return fmt.Errorf("no sentence %q (corpus has %d)", fields[1], ins.corpus.NSentences())
	}
	s := &ins.corpus.Sentences[i]

	switch cmd {
	case "sent":
		sum := render.Summarize(i, s)
		fmt.Fprintf(ins.ui.Out, "sentence %d: %d parses, gold edges %d, max f-score %.4f (parse %d, logprob %g)\n",
			i, sum.NParses, sum.GoldEdges, sum.MaxFScore, sum.BestParse, sum.BestLogProb)
	case "gold":
		fmt.Fprintf(ins.ui.Out, "%s\n", s.Gold)
	case "parses":
		for j := range s.Parses {
			pr := s.PrecRec(j)
			fmt.Fprintf(ins.ui.Out, "%3d: logprob %10g  edges %2d/%2d  P %.4f R %.4f F %.4f\n",
				j, s.Parses[j].LogProb, s.Parses[j].NCorrect, s.Parses[j].NEdges,
				pr.Precision(), pr.Recall(), s.FScore(j))
		}
	case "best":
		sum := render.Summarize(i, s)
		if sum.BestParse < 0 {
			return fmt.Errorf("sentence %d has no parses", i)
		}
		fmt.Fprintf(ins.ui.Out, "%s\n", s.Parses[sum.BestParse].Tree)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
