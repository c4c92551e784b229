package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCmd(t *testing.T) {
	t.Parallel()

	t.Run("groups variants into component records", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "cards.csv")
		require.NoError(t, csv.NewCardFile(input).Write([]*cardlist.Card{
			{ID: "EB01-001_p1", Name: "Kouzuki Oden", ImageURL: "p1.png"},
			{ID: "EB01-001", Name: "Kouzuki Oden", CardType: "leader", Life: "5", Rarity: "SP CARD", ImageURL: "d.png", Types: "Land of Wano, Kouzuki Clan"},
			{ID: "EB01-002", Name: "Izo", CardType: "SPELL", ImageURL: "izo.png"},
		}))

		stdout, _, err := run(t, newMain(t), "convert", input)

		require.NoError(t, err)
		output := filepath.Join(dir, "cards_components.csv")
		assert.Contains(t, stdout, "Converted 2 cards to grouped component array format: "+output)

		cards, err := csv.NewComponentFile(output).Load()
		require.NoError(t, err)
		require.Len(t, cards, 2)

		oden := cards[0]
		assert.Equal(t, "EB01-001", oden.ID)
		assert.Equal(t, cardlist.CardTypeLeader, oden.CardType)
		assert.Equal(t, "SP", oden.Rarity)
		assert.Equal(t, "EB01 - Memorial Collection", oden.Set)
		assert.Equal(t, []cardlist.Image{
			{Label: "default", ImageURL: "d.png", IsDefault: true},
			{Label: "p1", ImageURL: "p1.png"},
		}, oden.Images)
		assert.Len(t, oden.Traits, 2)

		assert.Equal(t, cardlist.CardType(""), cards[1].CardType)
	})

	t.Run("uses output flag", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "cards.csv")
		output := filepath.Join(dir, "nested", "strapi.csv")
		require.NoError(t, csv.NewCardFile(input).Write([]*cardlist.Card{{ID: "OP01-001"}}))

		_, _, err := run(t, newMain(t), "convert", input, "-o", output)

		require.NoError(t, err)
		_, err = os.Stat(output)
		assert.NoError(t, err)
	})

	t.Run("missing input is an error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		_, stderr, err := run(t, newMain(t), "convert", filepath.Join(dir, "missing.csv"))

		require.Error(t, err)
		assert.Equal(t, cardlist.ENOTFOUND, cardlist.ErrorCode(err))
		assert.Contains(t, stderr, "not found")
		_, statErr := os.Stat(filepath.Join(dir, "missing_components.csv"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
