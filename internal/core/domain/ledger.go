package domain

import "time"

// ArtifactInfo describes one file produced by a completed task.
// SizeBytes is nil when the file could not be measured at record time;
// a missing artifact is recorded, not rejected. Digest is the xxhash64 of
// the file content, empty when the file was unreadable.
type ArtifactInfo struct {
	Path      string `json:"path"`
	SizeBytes *int64 `json:"size_bytes"`
	Digest    string `json:"digest,omitzero"`
}

// LedgerEntry is one appended record of a successfully completed task.
type LedgerEntry struct {
	Name        string                        `json:"name"`
	Source      string                        `json:"source"`
	Kind        DownloadKind                  `json:"kind"`
	Artifacts   map[ArtifactKind]ArtifactInfo `json:"artifacts"`
	CompletedAt time.Time                     `json:"completed_at"`
}

// LedgerDocument is the persisted shape of the run ledger: a single JSON
// document whose "downloads" key holds the ordered entry sequence. The whole
// document is rewritten on every append. Consumers must tolerate the file
// being absent (first run) or structurally invalid (treated as empty).
type LedgerDocument struct {
	Downloads []LedgerEntry `json:"downloads"`
}
