package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/cardlist/cmd/cardlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardListHTML = `<!DOCTYPE html>
<html><body><div class="resultCol">
<dl class="modalCol" id="OP01-001">
	<div class="infoCol"><span>OP01-001</span> | <span>L</span> | <span>LEADER</span></div>
	<div class="cardName">Roronoa Zoro</div>
	<img class="lazy" data-src="../images/cardlist/card/OP01-001.png">
	<div class="cost"><h3>Life</h3>5</div>
	<div class="attribute"><h3>Attribute</h3><i>Slash</i></div>
	<div class="power"><h3>Power</h3>5000</div>
	<div class="color"><h3>Color</h3>Red</div>
	<div class="feature"><h3>Type</h3>Supernovas/Straw Hat Crew</div>
	<div class="text"><h3>Effect</h3>[DON!! x1] Your Characters gain +1000 power.</div>
</dl>
<dl class="modalCol" id="OP01-001_p1">
	<div class="infoCol"><span>OP01-001</span> | <span>L</span> | <span>LEADER</span></div>
	<div class="cardName">Roronoa Zoro</div>
	<img class="lazy" data-src="../images/cardlist/card/OP01-001_p1.png">
	<div class="cost"><h3>Life</h3>5</div>
</dl>
<dl class="modalCol" id="OP01-016">
	<div class="infoCol"><span>OP01-016</span> | <span>R</span> | <span>CHARACTER</span></div>
	<div class="cardName">Nami</div>
	<img class="lazy" data-src="../images/cardlist/card/OP01-016.png">
	<div class="cost"><h3>Cost</h3>1</div>
	<div class="feature"><h3>Type</h3>Straw Hat Crew</div>
	<div class="trigger"><h3>Trigger</h3>[Trigger] Play this card.</div>
</dl>
</div></body></html>`

func writeHTML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, m *main.Main, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func newMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "cards.db")
	return m
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"parse", "convert", "traits", "cards"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, newMain(t), "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "parse")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, newMain(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_CreatesDefaultDBDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CARDLIST_DB", "")

	m := main.NewMain()
	require.Equal(t, filepath.Join(home, ".cardlist", "cards.db"), m.DBPath)

	stdout, _, err := run(t, m, "cards")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No cards found")
	assert.FileExists(t, m.DBPath)
}

func TestMain_Run_CreatesDBFlagDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "index", "cards.db")

	_, _, err := run(t, newMain(t), "--db", path, "cards")

	require.NoError(t, err)
	assert.FileExists(t, path)
}
