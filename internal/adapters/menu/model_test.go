package menu_test

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoomgrab/zoomgrab/internal/adapters/menu"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
)

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestModel_SelectsFileThenKind(t *testing.T) {
	m := tea.Model(menu.NewModel([]string{"input/a.txt", "input/b.txt"}))

	m = press(t, m, "j", "enter", "j", "j", "enter")

	sel := m.(menu.Model).Selection()
	assert.True(t, sel.Confirmed)
	assert.Equal(t, "input/b.txt", sel.File)
	assert.Equal(t, domain.KindTranscript, sel.Kind)
}

func TestModel_DefaultsToFirstEntries(t *testing.T) {
	m := tea.Model(menu.NewModel([]string{"input/a.txt"}))

	m = press(t, m, "enter", "enter")

	sel := m.(menu.Model).Selection()
	assert.True(t, sel.Confirmed)
	assert.Equal(t, "input/a.txt", sel.File)
	assert.Equal(t, domain.KindVideo, sel.Kind)
}

func TestModel_QuitLeavesUnconfirmed(t *testing.T) {
	m := tea.Model(menu.NewModel([]string{"input/a.txt"}))

	m = press(t, m, "q")

	sel := m.(menu.Model).Selection()
	assert.False(t, sel.Confirmed)
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m := tea.Model(menu.NewModel([]string{"input/a.txt", "input/b.txt"}))

	m = press(t, m, "k", "k", "enter")
	sel := m.(menu.Model).Selection()
	assert.Equal(t, "input/a.txt", sel.File)

	m = press(t, m, "j", "j", "j", "j", "j", "enter")
	sel = m.(menu.Model).Selection()
	assert.Equal(t, domain.KindAll, sel.Kind)
	assert.True(t, sel.Confirmed)
}

func TestModel_ViewListsFiles(t *testing.T) {
	m := menu.NewModel([]string{"input/a.txt", "input/b.txt"})

	view := m.View()
	assert.Contains(t, view, "a.txt")
	assert.Contains(t, view, "b.txt")
	assert.Contains(t, view, "Pick a recording list")
}

func TestModel_ViewOnEmptyInputDir(t *testing.T) {
	m := menu.NewModel(nil)

	view := m.View()
	assert.Contains(t, view, "no list files found")

	// Enter on an empty list does nothing.
	next := press(t, tea.Model(m), "enter")
	assert.False(t, next.(menu.Model).Selection().Confirmed)
}

func TestModel_ViewShowsPreviewOfSelectedFile(t *testing.T) {
	m := menu.NewModel([]string{"input/a.txt", "input/b.txt"}).
		WithPreviews([]string{"first line of a", "first line of b"})

	assert.Contains(t, m.View(), "first line of a")
	assert.NotContains(t, m.View(), "first line of b")

	next := press(t, tea.Model(m), "j")
	assert.Contains(t, next.(menu.Model).View(), "first line of b")
}

func TestPreviews_TruncatesLongFiles(t *testing.T) {
	dir := t.TempDir()
	long := filepath.Join(dir, "long.txt")
	require.NoError(t, os.WriteFile(long, []byte("l1\nl2\nl3\nl4\nl5\n"), 0o644))

	previews := menu.Previews([]string{long, filepath.Join(dir, "missing.txt")})
	require.Len(t, previews, 2)
	assert.Equal(t, "l1\nl2\nl3\n…", previews[0])
	assert.Empty(t, previews[1])
}

func TestListFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.csv", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := menu.ListFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", filepath.Base(files[0]))
	assert.Equal(t, "b.txt", filepath.Base(files[1]))
}
