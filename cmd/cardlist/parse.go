package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/csv"
	"github.com/fwojciec/cardlist/fs"
	"github.com/fwojciec/cardlist/ingest"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	files, err := fs.ResolveInputs(c.Paths)
	if err != nil {
		return errorf(deps, err)
	}

	parser := &ingest.Parser{
		Extractor:   deps.Extractor,
		Concurrency: c.Concurrency,
	}
	progress := func(event ingest.ProgressEvent) {
		if event.Type == ingest.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := parser.ParseFiles(deps.Ctx, files, progress)
	if err != nil {
		return errorf(deps, err)
	}
	cards := cardlist.Dedupe(result.Cards)

	output := c.Output
	if output == "" {
		output = fs.DefaultOutputPath(c.Paths)
	}

	file := csv.NewCardFile(output)
	total := len(cards)
	if c.Append {
		total, err = file.Append(cards)
	} else {
		err = file.Write(cards)
	}
	if err != nil {
		return errorf(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Parsed %d cards from %d file(s) and wrote to '%s' (total: %d cards)\n",
		len(cards), len(files), file.Path(), total)

	if deps.Cards != nil {
		indexed, err := deps.Cards.UpsertCards(deps.Ctx, strings.Join(c.Paths, ","), indexable(deps, cards))
		if err != nil {
			return errorf(deps, err)
		}
		fmt.Fprintf(deps.Stdout, "Indexed %d new, %d updated, %d unchanged cards\n",
			indexed.Inserted, indexed.Updated, indexed.Unchanged)
	}

	if c.Components {
		if err := convertFile(deps, output, fs.ComponentsPath(output)); err != nil {
			return errorf(deps, err)
		}
	}

	return nil
}

// indexable returns the cards that can be stored in the index. Cards
// without an ID are reported on stderr and skipped.
func indexable(deps *Dependencies, cards []*cardlist.Card) []*cardlist.Card {
	out := make([]*cardlist.Card, 0, len(cards))
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "skip card %q: %s\n", card.Name, cardlist.ErrorMessage(err))
			continue
		}
		out = append(out, card)
	}
	return out
}
