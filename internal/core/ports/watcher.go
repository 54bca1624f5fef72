package ports

import (
	"context"
	"iter"
)

// WatchEvent reports one file system change under the watched directory.
type WatchEvent struct {
	// Path is the file that changed.
	Path string
}

// Watcher observes the input directory for new or changed URL list files.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given directory.
	Start(ctx context.Context, dir string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
