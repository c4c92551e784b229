// Package csv reads and writes card records as CSV files.
package csv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/fs"
)

// ReadCards reads flat card records. Columns are matched by header name,
// so missing columns leave fields empty and unknown columns are ignored.
func ReadCards(r io.Reader) ([]*cardlist.Card, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	cards := make([]*cardlist.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, &cardlist.Card{
			ID:          row["cardId"],
			Name:        row["name"],
			CardType:    row["cardType"],
			Life:        row["life"],
			Cost:        row["cost"],
			Power:       row["power"],
			Attribute:   row["attribute"],
			Types:       row["types"],
			Counter:     row["counter"],
			Color:       row["color"],
			ImageURL:    imagePayload(row),
			LocalImage:  row["localImage"],
			EffectText:  row["effectText"],
			TriggerText: row["triggerText"],
			Rarity:      row["rarity"],
			Set:         row["set"],
		})
	}
	return cards, nil
}

// imagePayload prefers an "images" column over "imageUrl" so rows that
// already carry image lists keep them.
func imagePayload(row map[string]string) string {
	if v := row["images"]; v != "" {
		return v
	}
	return row["imageUrl"]
}

// WriteCards writes cards in the flat format with a header row.
func WriteCards(w io.Writer, cards []*cardlist.Card) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cardlist.FlatColumns); err != nil {
		return err
	}
	for _, c := range cards {
		if err := cw.Write(c.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readRows reads all records keyed by header name.
func readRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, cardlist.Errorf(cardlist.EINVALID, "failed to read CSV header: %v", err)
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, cardlist.Errorf(cardlist.EINVALID, "failed to read CSV: %v", err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CardFile is a flat CSV file that is always rewritten as a whole.
type CardFile struct {
	path string
}

// NewCardFile creates a new CardFile at path.
func NewCardFile(path string) *CardFile {
	return &CardFile{path: path}
}

// Path returns the file path.
func (f *CardFile) Path() string {
	return f.path
}

// Load reads every card in the file. Returns ENOTFOUND if the file does
// not exist.
func (f *CardFile) Load() ([]*cardlist.Card, error) {
	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		return nil, cardlist.Errorf(cardlist.ENOTFOUND, "input %q not found", f.path)
	} else if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCards(file)
}

// Write replaces the file with cards.
func (f *CardFile) Write(cards []*cardlist.Card) error {
	var buf bytes.Buffer
	if err := WriteCards(&buf, cards); err != nil {
		return err
	}
	return fs.WriteFile(f.path, buf.Bytes())
}

// Append merges cards into the existing file by ID and rewrites it. Cards
// replace existing rows with the same ID in place; new IDs are added at the
// end. A missing file is written fresh. Returns the total number of rows.
func (f *CardFile) Append(cards []*cardlist.Card) (int, error) {
	existing, err := f.Load()
	if cardlist.ErrorCode(err) == cardlist.ENOTFOUND {
		existing = nil
	} else if err != nil {
		return 0, err
	}

	merged := cardlist.Dedupe(append(existing, cards...))
	if err := f.Write(merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}
