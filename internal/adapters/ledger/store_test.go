package ledger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoomgrab/zoomgrab/internal/adapters/ledger"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
)

func TestStore_RecordAndLoad(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "lecture.mp4")
	require.NoError(t, os.WriteFile(video, []byte("fake video bytes"), 0o644))

	s := ledger.NewStore(filepath.Join(dir, domain.LedgerFileName), nil)

	err := s.Record("lecture", "https://zoom.us/rec/play/abc", domain.KindVideo,
		map[domain.ArtifactKind]string{domain.ArtifactVideo: video})
	require.NoError(t, err)

	entries, err := s.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "lecture", e.Name)
	assert.Equal(t, "https://zoom.us/rec/play/abc", e.Source)
	assert.Equal(t, domain.KindVideo, e.Kind)
	assert.False(t, e.CompletedAt.IsZero())

	info := e.Artifacts[domain.ArtifactVideo]
	assert.Equal(t, video, info.Path)
	require.NotNil(t, info.SizeBytes)
	assert.Equal(t, int64(len("fake video bytes")), *info.SizeBytes)
	assert.NotEmpty(t, info.Digest)
}

func TestStore_AppendPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LedgerFileName)
	s := ledger.NewStore(path, nil)

	require.NoError(t, s.Record("first", "https://zoom.us/rec/play/1", domain.KindVideo, nil))
	require.NoError(t, s.Record("second", "https://zoom.us/rec/play/2", domain.KindAudio, nil))

	entries, err := s.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Name)
	assert.Equal(t, "second", entries[1].Name)
}

func TestStore_MissingArtifactRecordedWithUnknownSize(t *testing.T) {
	dir := t.TempDir()
	s := ledger.NewStore(filepath.Join(dir, domain.LedgerFileName), nil)

	missing := filepath.Join(dir, "never-written.mp4")
	require.NoError(t, s.Record("ghost", "https://zoom.us/rec/play/g", domain.KindVideo,
		map[domain.ArtifactKind]string{domain.ArtifactVideo: missing}))

	entries, err := s.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	info := entries[0].Artifacts[domain.ArtifactVideo]
	assert.Equal(t, missing, info.Path)
	assert.Nil(t, info.SizeBytes)
	assert.Empty(t, info.Digest)
}

func TestStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LedgerFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := ledger.NewStore(path, nil)

	entries, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Appending over a corrupt file starts a fresh document.
	require.NoError(t, s.Record("fresh", "https://zoom.us/rec/play/f", domain.KindVideo, nil))

	entries, err = s.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh", entries[0].Name)
}

func TestStore_AbsentFileIsEmpty(t *testing.T) {
	s := ledger.NewStore(filepath.Join(t.TempDir(), domain.LedgerFileName), nil)

	entries, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_DocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LedgerFileName)
	s := ledger.NewStore(path, nil)

	require.NoError(t, s.Record("shape", "https://zoom.us/rec/play/s", domain.KindAll, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "downloads")
}
