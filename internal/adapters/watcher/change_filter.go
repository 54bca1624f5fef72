package watcher

import (
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// ChangeFilter suppresses watch events whose file content is unchanged.
// Editors and sync tools rewrite list files without altering them; hashing
// the content keeps those from triggering redundant runs.
type ChangeFilter struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
}

// NewChangeFilter creates an empty filter.
func NewChangeFilter() *ChangeFilter {
	return &ChangeFilter{
		digests: make(map[unique.Handle[string]]uint64),
	}
}

// Changed reports whether the file at path has different content than the
// last time it was seen, and records the new digest. An unreadable file
// counts as changed so a run can surface the real error.
func (f *ChangeFilter) Changed(path string) bool {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the watched directory
	if err != nil {
		return true
	}
	digest := xxhash.Sum64(data)

	f.mu.Lock()
	defer f.mu.Unlock()

	handle := unique.Make(path)
	prev, seen := f.digests[handle]
	f.digests[handle] = digest
	return !seen || prev != digest
}
