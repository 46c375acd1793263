package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NamanBalaji/tmodal/internal/repository"
)

func TestHistoryCommand(t *testing.T) {
	tmpDir := t.TempDir()

	oldConfigHome := xdg.ConfigHome
	xdg.ConfigHome = tmpDir
	t.Cleanup(func() { xdg.ConfigHome = oldConfigHome })

	dbPath := filepath.Join(tmpDir, "nested", "history.db")
	repo, err := openHistory(dbPath)
	require.NoError(t, err)

	shown := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	records := []*repository.Record{
		{ID: uuid.New(), Body: "Test the YNC dialog box", Buttons: []string{"YES", "NO", "CANCEL"}, Shown: 3, Pressed: "NO", ShownAt: shown, ClosedAt: shown.Add(time.Second)},
		{ID: uuid.New(), Title: "Overflow", Buttons: []string{"A", "B"}, Shown: 1, ShownAt: shown.Add(time.Minute), ClosedAt: shown.Add(2 * time.Minute)},
	}
	for _, r := range records {
		require.NoError(t, repo.Save(r))
	}
	require.NoError(t, repo.Close())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"history", "--history", dbPath})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "dismissed!")
	assert.Contains(t, lines[0], "Overflow")
	assert.Contains(t, lines[1], "pressed NO")
	assert.Contains(t, lines[1], "[YES NO CANCEL]")
}

func TestPrintHistoryEmpty(t *testing.T) {
	var out bytes.Buffer
	printHistory(&out, nil)

	assert.Equal(t, "No dialogs shown yet\n", out.String())
}

func TestOutcome(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "open", outcome(&repository.Record{}))
	assert.Equal(t, "pressed OK", outcome(&repository.Record{Buttons: []string{"OK"}, Shown: 1, Pressed: "OK", ClosedAt: now}))
	assert.Equal(t, "dismissed", outcome(&repository.Record{ClosedAt: now}))
}
