package ingest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/goquery"
	"github.com/fwojciec/cardlist/ingest"
	"github.com/fwojciec/cardlist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParser_ParseFiles(t *testing.T) {
	t.Parallel()

	t.Run("accumulates cards in input order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var paths []string
		for _, name := range []string{"a", "b", "c", "d", "e"} {
			paths = append(paths, writeFile(t, dir, name+".html", name))
		}

		extractor := &mock.CardExtractor{
			ExtractFn: func(html string) ([]*cardlist.Card, error) {
				return []*cardlist.Card{{ID: html + "-1"}, {ID: html + "-2"}}, nil
			},
		}
		p := &ingest.Parser{Extractor: extractor, Concurrency: 3}

		result, err := p.ParseFiles(context.Background(), paths, nil)

		require.NoError(t, err)
		assert.Equal(t, 5, result.Parsed)
		assert.Equal(t, 0, result.Failed)
		var ids []string
		for _, c := range result.Cards {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []string{"a-1", "a-2", "b-1", "b-2", "c-1", "c-2", "d-1", "d-2", "e-1", "e-2"}, ids)
	})

	t.Run("skips failed documents and reports them", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := writeFile(t, dir, "good.html", "good")
		bad := writeFile(t, dir, "bad.html", "bad")
		missing := filepath.Join(dir, "missing.html")

		extractor := &mock.CardExtractor{
			ExtractFn: func(html string) ([]*cardlist.Card, error) {
				if html == "bad" {
					return nil, errors.New("broken markup")
				}
				return []*cardlist.Card{{ID: "OP01-001"}}, nil
			},
		}
		p := &ingest.Parser{Extractor: extractor}

		var mu sync.Mutex
		var failed []string
		var types []ingest.ProgressType
		progress := func(e ingest.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			types = append(types, e.Type)
			if e.Type == ingest.ProgressFailed {
				failed = append(failed, filepath.Base(e.Path))
			}
		}

		result, err := p.ParseFiles(context.Background(), []string{good, bad, missing}, progress)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Parsed)
		assert.Equal(t, 2, result.Failed)
		assert.Len(t, result.Cards, 1)
		assert.ElementsMatch(t, []string{"bad.html", "missing.html"}, failed)
		require.Len(t, types, 5)
		assert.Equal(t, ingest.ProgressStarted, types[0])
		assert.Equal(t, ingest.ProgressFinished, types[4])
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "a.html", "a")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := &ingest.Parser{Extractor: &mock.CardExtractor{
			ExtractFn: func(html string) ([]*cardlist.Card, error) { return nil, nil },
		}}

		_, err := p.ParseFiles(ctx, []string{path}, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("parses real markup end to end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := writeFile(t, dir, "op01.html", `<html><body>
			<dl class="modalCol" id="OP01-001"><div class="cardName">Old Zoro</div></dl>
			<dl class="modalCol" id="OP01-001_p1"><div class="cardName">Zoro</div></dl>
		</body></html>`)
		second := writeFile(t, dir, "op01-reprint.html", `<html><body>
			<dl class="modalCol" id="OP01-001"><div class="cardName">Zoro</div></dl>
		</body></html>`)

		p := &ingest.Parser{Extractor: goquery.NewCardExtractor()}
		result, err := p.ParseFiles(context.Background(), []string{first, second}, nil)
		require.NoError(t, err)

		cards := cardlist.Dedupe(result.Cards)

		require.Len(t, cards, 2)
		assert.Equal(t, "OP01-001", cards[0].ID)
		assert.Equal(t, "Zoro", cards[0].Name)
		assert.True(t, strings.HasSuffix(cards[1].ID, "_p1"))
	})
}
