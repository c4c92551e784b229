package main_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraitsCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "cards_components.csv")
	require.NoError(t, csv.NewComponentFile(input).Write(cardlist.Merge([]*cardlist.Card{
		{ID: "OP01-001", Types: "Supernovas, Straw Hat Crew"},
		{ID: "OP01-016", Types: "Straw Hat Crew"},
	})))

	t.Run("prints sorted unique traits", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newMain(t), "traits", input)

		require.NoError(t, err)
		assert.Equal(t, "Straw Hat Crew\nSupernovas\n", stdout)
	})

	t.Run("renders table with counts", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newMain(t), "traits", input, "--table")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Straw Hat Crew")
		assert.Contains(t, strings.ToLower(stdout), "2 traits")
	})
}
