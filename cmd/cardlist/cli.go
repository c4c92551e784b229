package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/cardlist"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor cardlist.CardExtractor
	Cards     cardlist.CardService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log debug output to stderr"`
	DB      string `help:"Card index database path (default: $CARDLIST_DB or ~/.cardlist/cards.db)"`

	Parse   ParseCmd   `cmd:"" help:"Parse card list HTML files into a flat CSV"`
	Convert ConvertCmd `cmd:"" help:"Convert a flat CSV into grouped component array format"`
	Traits  TraitsCmd  `cmd:"" help:"List unique traits in a component CSV"`
	Cards   CardsCmd   `cmd:"" help:"List cards in the card index"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Paths       []string `arg:"" name:"path" help:"HTML file or directory of HTML files (repeatable)"`
	Output      string   `short:"o" help:"Output CSV path (default: <input>.csv, or all_cards.csv for directories)"`
	Append      bool     `short:"a" help:"Merge into the existing output CSV instead of overwriting it"`
	Components  bool     `short:"c" help:"Also write <output>_components.csv in component array format"`
	Concurrency int      `default:"4" help:"Number of documents parsed concurrently"`
	ImageHost   string   `default:"https://en.onepiece-cardgame.com" help:"Host prepended to relative image paths"`
	Index       bool     `help:"Also upsert parsed cards into the card index"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Input  string `arg:"" help:"Flat CSV file"`
	Output string `short:"o" help:"Output CSV path (default: <input>_components.csv)"`
}

// TraitsCmd is the "traits" subcommand.
type TraitsCmd struct {
	Input string `arg:"" help:"Component CSV file"`
	Table bool   `short:"t" help:"Render a table with card counts"`
}

// CardsCmd is the "cards" subcommand.
type CardsCmd struct {
	Set   string `short:"s" help:"Only cards of this set name"`
	Type  string `short:"T" help:"Only cards of this card type"`
	Base  string `short:"b" help:"Only prints of this base card ID"`
	Limit int    `short:"n" default:"0" help:"Maximum number of cards (0 = all)"`
}
