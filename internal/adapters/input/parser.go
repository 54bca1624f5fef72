// Package input parses recording URL list files into tasks.
package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Parser turns a raw text source into an ordered task list.
//
// Format detection follows the original file convention: a comma anywhere in
// the source means two-column `label,locator` lines, split on the first comma
// only (labels may not contain commas, locators may contain anything);
// otherwise every line is a bare locator and names are synthesized from the
// 1-based line position. Lines that don't carry the required locator prefix
// are dropped, not reported.
type Parser struct {
	logger ports.Logger
}

// NewParser creates a new Parser.
func NewParser(logger ports.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseFile reads and parses the list file at path.
func (p *Parser) ParseFile(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user provided input file
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrInputUnreadable.Error()),
			"file", path,
		)
	}
	return p.Parse(string(data)), nil
}

// Parse parses the given source text. Empty or whitespace-only input yields
// an empty task list, never an error.
func (p *Parser) Parse(source string) []domain.Task {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil
	}

	if strings.Contains(source, ",") {
		return p.parseLabeled(source)
	}
	return p.parseBare(source)
}

func (p *Parser) parseLabeled(source string) []domain.Task {
	var tasks []domain.Task

	for _, line := range strings.Split(source, "\n") {
		label, locator, found := strings.Cut(line, ",")
		if !found {
			p.dropLine(line)
			continue
		}

		locator = strings.TrimSpace(locator)
		if !domain.ValidSource(locator) {
			p.dropLine(line)
			continue
		}

		tasks = append(tasks, domain.Task{
			Name:   domain.SanitizeName(label),
			Source: locator,
		})
	}

	return tasks
}

func (p *Parser) parseBare(source string) []domain.Task {
	var tasks []domain.Task

	for i, line := range strings.Split(source, "\n") {
		locator := strings.TrimSpace(line)
		if !domain.ValidSource(locator) {
			p.dropLine(line)
			continue
		}

		tasks = append(tasks, domain.Task{
			// The index reflects the original line position, so names
			// stay stable when invalid lines are removed from the file.
			Name:   fmt.Sprintf("video_%d", i+1),
			Source: locator,
		})
	}

	return tasks
}

func (p *Parser) dropLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" || p.logger == nil {
		return
	}
	p.logger.Debug("dropping line without a valid recording URL: " + line)
}
