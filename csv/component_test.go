package csv_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteComponents(t *testing.T) {
	t.Parallel()

	cards := cardlist.Merge([]*cardlist.Card{
		{ID: "OP01-001_p1", Name: "Zoro", ImageURL: "https://example.com/p1.png?x=1&y=2"},
		{ID: "OP01-001", Name: "Zoro", CardType: "LEADER", Life: "5", Color: "Red", EffectText: "Draw <1>", ImageURL: "https://example.com/d.png"},
	})

	var buf bytes.Buffer
	require.NoError(t, csv.WriteComponents(&buf, cards))

	got, err := csv.ReadComponents(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "OP01-001", c.ID)
	assert.Equal(t, cardlist.CardTypeLeader, c.CardType)
	assert.Equal(t, []cardlist.NamedValue{{Name: "Red", Value: "Red"}}, c.Colors)
	assert.Equal(t, []cardlist.Image{
		{Label: "default", ImageURL: "https://example.com/d.png", IsDefault: true},
		{Label: "p1", ImageURL: "https://example.com/p1.png?x=1&y=2"},
	}, c.Images)
	assert.Equal(t, "Draw <1>", c.EffectDescription[0].Children[0].Text)
	assert.False(t, c.HasTrigger)
	assert.Empty(t, c.TriggerEffect)
}

func TestWriteComponents_Header(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, csv.WriteComponents(&buf, nil))

	assert.Equal(t,
		"cardId,name,cardType,life,cost,power,attributes,traits,counter,colors,images,effect_description,trigger_description,has_trigger,trigger_effect,rarity,set\n",
		buf.String())
}

func TestWriteComponents_Cells(t *testing.T) {
	t.Parallel()

	card := cardlist.Componentize(&cardlist.Card{ID: "OP01-001", TriggerText: "Play this card."}, nil)

	var buf bytes.Buffer
	require.NoError(t, csv.WriteComponents(&buf, []*cardlist.ComponentCard{card}))

	row := strings.Split(strings.TrimSpace(buf.String()), "\n")[1]
	assert.Contains(t, row, `,[],[],,[],[],[],Play this card.,true,`)
	assert.Contains(t, row, `"[{""type"":""paragraph"",""children"":[{""text"":""Play this card.""}]}]"`)
}

func TestReadComponents_SingleQuotedCells(t *testing.T) {
	t.Parallel()

	in := "cardId,traits,has_trigger\n" +
		`OP01-001,"[{'name': 'Supernovas', 'value': 'Supernovas'}]",True` + "\n" +
		`OP01-002,not json,false` + "\n"

	got, err := csv.ReadComponents(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []cardlist.NamedValue{{Name: "Supernovas", Value: "Supernovas"}}, got[0].Traits)
	assert.True(t, got[0].HasTrigger)
	assert.Equal(t, []cardlist.NamedValue{}, got[1].Traits)
	assert.False(t, got[1].HasTrigger)
}

func TestComponentFile(t *testing.T) {
	t.Parallel()

	t.Run("round trips cards", func(t *testing.T) {
		t.Parallel()

		f := csv.NewComponentFile(filepath.Join(t.TempDir(), "out_components.csv"))
		cards := cardlist.Merge([]*cardlist.Card{{ID: "OP01-001", Types: "Supernovas"}})
		require.NoError(t, f.Write(cards))

		got, err := f.Load()

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, cards[0].Traits, got[0].Traits)
	})

	t.Run("load of missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := csv.NewComponentFile(filepath.Join(t.TempDir(), "x.csv")).Load()

		assert.Equal(t, cardlist.ENOTFOUND, cardlist.ErrorCode(err))
	})
}
