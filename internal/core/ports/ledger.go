package ports

import "github.com/zoomgrab/zoomgrab/internal/core/domain"

// LedgerStore persists the append-style record of completed downloads.
//
// Record is best-effort by contract: implementations report failures as
// errors, but callers must treat them as warnings. A ledger failure never
// fails a download that otherwise succeeded.
//
//go:generate mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks
type LedgerStore interface {
	// Record measures the given artifacts and appends one entry to the
	// persisted document. Missing artifact files are recorded with an
	// unknown size, not rejected.
	Record(name, source string, kind domain.DownloadKind, artifacts map[domain.ArtifactKind]string) error

	// Load returns the full ordered entry sequence. An absent or corrupt
	// backing file yields an empty sequence, never an error.
	Load() ([]domain.LedgerEntry, error)
}
