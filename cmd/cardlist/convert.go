package main

import (
	"fmt"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/csv"
	"github.com/fwojciec/cardlist/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	output := c.Output
	if output == "" {
		output = fs.ComponentsPath(c.Input)
	}

	if err := convertFile(deps, c.Input, output); err != nil {
		return errorf(deps, err)
	}
	return nil
}

// convertFile merges the flat CSV at input into one component record per
// logical card and writes them to output.
func convertFile(deps *Dependencies, input, output string) error {
	cards, err := csv.NewCardFile(input).Load()
	if err != nil {
		return err
	}

	merged := cardlist.Merge(cards)
	deps.Logger.Debug("merge variants",
		"input", input,
		"rows", len(cards),
		"cards", len(merged),
	)

	file := csv.NewComponentFile(output)
	if err := file.Write(merged); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Converted %d cards to grouped component array format: %s\n", len(merged), file.Path())
	return nil
}
