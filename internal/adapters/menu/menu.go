package menu

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
)

// ListFiles returns the recording list files in dir, sorted by name.
func ListFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.txt", "*.csv"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to list input files")
		}
		files = append(files, matches...)
	}
	slices.SortFunc(files, func(a, b string) int {
		return strings.Compare(filepath.Base(a), filepath.Base(b))
	})
	return files, nil
}

// previewLineCount is how many lines of a list file the picker shows.
const previewLineCount = 3

// Previews reads the first lines of each file for display under the list.
// Unreadable files preview as empty.
func Previews(files []string) []string {
	previews := make([]string, len(files))
	for i, file := range files {
		data, err := os.ReadFile(file) //nolint:gosec // paths come from a directory glob
		if err != nil {
			continue
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) > previewLineCount {
			lines = append(lines[:previewLineCount], "…")
		}
		previews[i] = strings.Join(lines, "\n")
	}
	return previews
}

// Show runs the menu on the given streams and blocks until the user finishes
// or quits.
func Show(ctx context.Context, in io.Reader, out io.Writer, files []string) (Selection, error) {
	program := tea.NewProgram(
		NewModel(files).WithPreviews(Previews(files)),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return Selection{}, zerr.Wrap(err, "menu failed")
	}

	model, ok := final.(Model)
	if !ok {
		return Selection{}, zerr.New("menu returned an unexpected model")
	}
	return model.Selection(), nil
}
