package main

import (
	"fmt"

	"github.com/fwojciec/cardlist"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the cards command.
func (c *CardsCmd) Run(deps *Dependencies) error {
	filter := cardlist.CardFilter{Limit: c.Limit}
	if c.Set != "" {
		filter.Set = &c.Set
	}
	if c.Type != "" {
		filter.CardType = &c.Type
	}
	if c.Base != "" {
		filter.BaseID = &c.Base
	}

	cards, err := deps.Cards.FindCards(deps.Ctx, filter)
	if err != nil {
		return errorf(deps, err)
	}

	if len(cards) == 0 {
		fmt.Fprintln(deps.Stdout, "No cards found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"ID", "Name", "Type", "Cost/Life", "Power", "Color", "Rarity", "Set"})
	for _, card := range cards {
		t.AppendRow(table.Row{card.ID, card.Name, card.CardType, costOrLife(card), card.Power, card.Color, card.Rarity, card.Set})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

func costOrLife(c *cardlist.Card) string {
	if c.CardType == string(cardlist.CardTypeLeader) {
		return c.Life
	}
	return c.Cost
}
