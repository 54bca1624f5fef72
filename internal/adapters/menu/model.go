// Package menu provides the interactive picker for choosing a list file and
// a download kind.
package menu

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
)

type step int

const (
	stepFile step = iota
	stepKind
	stepDone
)

// Selection is the outcome of a finished menu session.
type Selection struct {
	File      string
	Kind      domain.DownloadKind
	Confirmed bool
}

// Model is the bubbletea model backing the menu.
type Model struct {
	files []string
	kinds []domain.DownloadKind
	// previews holds the first lines of each file, parallel to files.
	previews []string

	step      step
	fileIdx   int
	kindIdx   int
	selection Selection
}

// NewModel creates a menu over the given list files.
func NewModel(files []string) Model {
	return Model{
		files: files,
		kinds: []domain.DownloadKind{
			domain.KindVideo,
			domain.KindAudio,
			domain.KindTranscript,
			domain.KindAll,
		},
	}
}

// WithPreviews attaches per-file preview text, parallel to the file list.
func (m Model) WithPreviews(previews []string) Model {
	m.previews = previews
	return m
}

// Selection returns what the user picked. Confirmed is false when the menu
// was quit before both choices were made.
func (m Model) Selection() Selection {
	return m.selection
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.step = stepDone
		return m, tea.Quit

	case "k", "up":
		m.move(-1)

	case "j", "down":
		m.move(1)

	case "enter":
		switch m.step {
		case stepFile:
			if len(m.files) == 0 {
				return m, nil
			}
			m.selection.File = m.files[m.fileIdx]
			m.step = stepKind
		case stepKind:
			m.selection.Kind = m.kinds[m.kindIdx]
			m.selection.Confirmed = true
			m.step = stepDone
			return m, tea.Quit
		case stepDone:
		}
	}

	return m, nil
}

func (m *Model) move(delta int) {
	switch m.step {
	case stepFile:
		m.fileIdx = clamp(m.fileIdx+delta, len(m.files))
	case stepKind:
		m.kindIdx = clamp(m.kindIdx+delta, len(m.kinds))
	case stepDone:
	}
}

func clamp(idx, length int) int {
	if idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}

// View implements tea.Model.
func (m Model) View() string {
	if m.step == stepDone {
		return ""
	}

	var b strings.Builder

	switch m.step {
	case stepFile:
		b.WriteString(titleStyle.Render("Pick a recording list"))
		b.WriteString("\n\n")
		if len(m.files) == 0 {
			b.WriteString(dimStyle.Render("no list files found in " + domain.InputDirName + "/"))
			b.WriteString("\n")
			break
		}
		for i, file := range m.files {
			m.writeItem(&b, filepath.Base(file), i == m.fileIdx)
		}
		if m.fileIdx < len(m.previews) && m.previews[m.fileIdx] != "" {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render(m.previews[m.fileIdx]))
			b.WriteString("\n")
		}

	case stepKind:
		b.WriteString(titleStyle.Render("Pick a download kind"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("list: " + filepath.Base(m.selection.File)))
		b.WriteString("\n\n")
		for i, kind := range m.kinds {
			m.writeItem(&b, string(kind), i == m.kindIdx)
		}
	case stepDone:
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k move, enter select, q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) writeItem(b *strings.Builder, label string, selected bool) {
	if selected {
		fmt.Fprintf(b, "%s\n", selectedStyle.Render("> "+label))
		return
	}
	fmt.Fprintf(b, "  %s\n", label)
}
