package main

import (
	"fmt"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/csv"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the traits command.
func (c *TraitsCmd) Run(deps *Dependencies) error {
	cards, err := csv.NewComponentFile(c.Input).Load()
	if err != nil {
		return errorf(deps, err)
	}

	counts := cardlist.TraitCounts(cards)

	if !c.Table {
		for _, tc := range counts {
			fmt.Fprintln(deps.Stdout, tc.Trait)
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"Trait", "Cards"})
	for _, tc := range counts {
		t.AppendRow(table.Row{tc.Trait, tc.Cards})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d traits", len(counts)), len(cards)})
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
