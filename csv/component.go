package csv

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/fs"
	"github.com/titanous/json5"
)

// WriteComponents writes component cards with a header row. List-valued
// fields are encoded as JSON text within their cells.
func WriteComponents(w io.Writer, cards []*cardlist.ComponentCard) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cardlist.ComponentColumns); err != nil {
		return err
	}
	for _, c := range cards {
		record, err := componentRecord(c)
		if err != nil {
			return err
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func componentRecord(c *cardlist.ComponentCard) ([]string, error) {
	var enc cellEncoder
	record := []string{
		c.ID,
		c.Name,
		string(c.CardType),
		c.Life,
		c.Cost,
		c.Power,
		enc.encode(c.Attributes),
		enc.encode(c.Traits),
		c.Counter,
		enc.encode(c.Colors),
		enc.encode(c.Images),
		enc.encode(c.EffectDescription),
		c.TriggerDescription,
		strconv.FormatBool(c.HasTrigger),
		enc.encode(c.TriggerEffect),
		c.Rarity,
		c.Set,
	}
	if enc.err != nil {
		return nil, enc.err
	}
	return record, nil
}

// cellEncoder JSON-encodes cells and keeps the first error.
type cellEncoder struct {
	err error
}

func (e *cellEncoder) encode(v any) string {
	if e.err != nil {
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		e.err = err
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// ReadComponents reads component cards. JSON cells are decoded leniently
// so files written with single-quoted JSON still load. Cells that fail to
// decode leave the field empty.
func ReadComponents(r io.Reader) ([]*cardlist.ComponentCard, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	cards := make([]*cardlist.ComponentCard, 0, len(rows))
	for _, row := range rows {
		hasTrigger, _ := strconv.ParseBool(row["has_trigger"])
		cards = append(cards, &cardlist.ComponentCard{
			ID:                 row["cardId"],
			Name:               row["name"],
			CardType:           cardlist.NormalizeCardType(row["cardType"]),
			Life:               row["life"],
			Cost:               row["cost"],
			Power:              row["power"],
			Attributes:         decodeCell[cardlist.NamedValue](row["attributes"]),
			Traits:             decodeCell[cardlist.NamedValue](row["traits"]),
			Counter:            row["counter"],
			Colors:             decodeCell[cardlist.NamedValue](row["colors"]),
			Images:             decodeCell[cardlist.Image](row["images"]),
			EffectDescription:  decodeCell[cardlist.Block](row["effect_description"]),
			TriggerDescription: row["trigger_description"],
			HasTrigger:         hasTrigger,
			TriggerEffect:      decodeCell[cardlist.Block](row["trigger_effect"]),
			Rarity:             row["rarity"],
			Set:                row["set"],
		})
	}
	return cards, nil
}

func decodeCell[T any](cell string) []T {
	out := []T{}
	if strings.TrimSpace(cell) == "" {
		return out
	}
	if err := json5.Unmarshal([]byte(cell), &out); err != nil {
		return []T{}
	}
	return out
}

// ComponentFile is a component CSV file that is always rewritten as a whole.
type ComponentFile struct {
	path string
}

// NewComponentFile creates a new ComponentFile at path.
func NewComponentFile(path string) *ComponentFile {
	return &ComponentFile{path: path}
}

// Path returns the file path.
func (f *ComponentFile) Path() string {
	return f.path
}

// Load reads every component card in the file. Returns ENOTFOUND if the
// file does not exist.
func (f *ComponentFile) Load() ([]*cardlist.ComponentCard, error) {
	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		return nil, cardlist.Errorf(cardlist.ENOTFOUND, "input %q not found", f.path)
	} else if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadComponents(file)
}

// Write replaces the file with cards.
func (f *ComponentFile) Write(cards []*cardlist.ComponentCard) error {
	var buf bytes.Buffer
	if err := WriteComponents(&buf, cards); err != nil {
		return err
	}
	return fs.WriteFile(f.path, buf.Bytes())
}
