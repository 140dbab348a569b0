package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/hexaroni/game"
)

func writeLayout(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestCheckAcceptsValidLayout(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	assert.True(t, check(&out, writeLayout(t, game.DefaultLayout), game.DefaultSettings(), false))
	assert.Contains(t, out.String(), "OK")
	assert.Contains(t, out.String(), "size 7, 49 tiles, A 8 pieces, B 8 pieces")
	assert.Contains(t, out.String(), "J . . . d . .")
}

func TestCheckListsEveryViolation(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	assert.False(t, check(&out, writeLayout(t, "size 2\n. .\n. .\n"), game.DefaultSettings(), true))
	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "no pieces for player: A")
	assert.Contains(t, out.String(), "no pieces for player: B")
}

func TestColorizeKeepsLayout(t *testing.T) {
	color.NoColor = true
	layout := "size 2\nD _\n W j\n"
	assert.Equal(t, layout, colorize(layout))
}
