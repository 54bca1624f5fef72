// Package ledger persists the record of completed downloads as one JSON file.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.LedgerStore over a single JSON document. The whole
// document is read, extended and rewritten on every append; the rewrite goes
// through a temp file plus rename so a crash never leaves a truncated ledger.
type Store struct {
	mu     sync.Mutex
	path   string
	logger ports.Logger
	now    func() time.Time
}

// NewStore creates a Store persisting to path.
func NewStore(path string, logger ports.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

// Record measures the given artifact files and appends one entry.
func (s *Store) Record(name, source string, kind domain.DownloadKind, artifacts map[domain.ArtifactKind]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()

	entry := domain.LedgerEntry{
		Name:        name,
		Source:      source,
		Kind:        kind,
		Artifacts:   make(map[domain.ArtifactKind]domain.ArtifactInfo, len(artifacts)),
		CompletedAt: s.now().UTC(),
	}
	for akind, path := range artifacts {
		entry.Artifacts[akind] = s.measure(path)
	}

	doc.Downloads = append(doc.Downloads, entry)
	return s.write(doc)
}

// Load returns all recorded entries in append order.
func (s *Store) Load() ([]domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load().Downloads, nil
}

// load reads the document, tolerating absence and corruption.
func (s *Store) load() domain.LedgerDocument {
	var doc domain.LedgerDocument

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && s.logger != nil {
			s.logger.Warn(fmt.Sprintf("cannot read ledger %s, starting empty: %v", s.path, err))
		}
		return doc
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		if s.logger != nil {
			s.logger.Warn(fmt.Sprintf("ledger %s is corrupt, starting empty: %v", s.path, err))
		}
		return domain.LedgerDocument{}
	}

	return doc
}

// write replaces the document atomically.
func (s *Store) write(doc domain.LedgerDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLedgerMarshalFailed.Error())
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, domain.LedgerFileName+".*")
	if err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error()),
			"file", s.path,
		)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error())
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error())
	}

	return nil
}

// measure stats and hashes the artifact at path. A missing or unreadable file
// yields an entry with unknown size rather than an error.
func (s *Store) measure(path string) domain.ArtifactInfo {
	info := domain.ArtifactInfo{Path: path}

	st, err := os.Stat(path)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn(fmt.Sprintf("artifact %s not measurable: %v", path, err))
		}
		return info
	}
	size := st.Size()
	info.SizeBytes = &size

	if digest, err := hashFile(path); err == nil {
		info.Digest = digest
	}

	return info
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // artifact path produced by this process
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
