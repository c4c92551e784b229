package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cardlist"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cardlist.CardService = (*CardService)(nil)

// CardService implements cardlist.CardService using SQLite.
type CardService struct {
	db *DB
}

// NewCardService creates a new CardService.
func NewCardService(db *DB) *CardService {
	return &CardService{db: db}
}

// hashCard computes the xxHash of every card field and returns it as hex.
func hashCard(c *cardlist.Card) string {
	h := xxhash.Sum64String(strings.Join(c.Fields(), "\x1f"))
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

const cardColumns = `card_id, name, card_type, life, cost, power, attribute, types, counter, color,
	image_url, local_image, effect_text, trigger_text, rarity, set_name`

// UpsertCards records an import run and stores cards keyed by ID. Rows whose
// content is unchanged keep their previous import ID.
func (s *CardService) UpsertCards(ctx context.Context, source string, cards []*cardlist.Card) (*cardlist.UpsertResult, error) {
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	cards = cardlist.Dedupe(cards)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result := &cardlist.UpsertResult{ImportID: uuid.New().String()}
	now := time.Now().UTC().Format(time.RFC3339)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO imports (id, source, card_count, created_at)
		VALUES (?, ?, ?, ?)
	`, result.ImportID, source, len(cards), now); err != nil {
		return nil, err
	}

	for _, c := range cards {
		hash := hashCard(c)

		var existing string
		err := tx.QueryRowContext(ctx, `SELECT content_hash FROM cards WHERE card_id = ?`, c.ID).Scan(&existing)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			result.Inserted++
		case err != nil:
			return nil, err
		case existing == hash:
			result.Unchanged++
			continue
		default:
			result.Updated++
		}

		args := []any{c.ID, cardlist.BaseID(c.ID)}
		for _, f := range c.Fields()[1:] {
			args = append(args, f)
		}
		args = append(args, hash, result.ImportID, now)

		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO cards (card_id, base_id, name, card_type, life, cost, power, attribute, types,
				counter, color, image_url, local_image, effect_text, trigger_text, rarity, set_name,
				content_hash, import_id, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, args...); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindCards retrieves cards matching the filter ordered by ID.
func (s *CardService) FindCards(ctx context.Context, filter cardlist.CardFilter) ([]*cardlist.Card, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + cardColumns + " FROM cards WHERE 1=1")

	if filter.Set != nil {
		query.WriteString(" AND set_name = ?")
		args = append(args, *filter.Set)
	}
	if filter.CardType != nil {
		query.WriteString(" AND card_type = ?")
		args = append(args, strings.ToUpper(*filter.CardType))
	}
	if filter.BaseID != nil {
		query.WriteString(" AND base_id = ?")
		args = append(args, *filter.BaseID)
	}

	query.WriteString(" ORDER BY card_id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []*cardlist.Card{}
	for rows.Next() {
		var c cardlist.Card
		if err := rows.Scan(&c.ID, &c.Name, &c.CardType, &c.Life, &c.Cost, &c.Power, &c.Attribute,
			&c.Types, &c.Counter, &c.Color, &c.ImageURL, &c.LocalImage, &c.EffectText,
			&c.TriggerText, &c.Rarity, &c.Set); err != nil {
			return nil, err
		}
		cards = append(cards, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}
