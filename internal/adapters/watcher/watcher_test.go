package watcher

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"txt write", fsnotify.Event{Name: "input/urls.txt", Op: fsnotify.Write}, true},
		{"csv create", fsnotify.Event{Name: "input/urls.csv", Op: fsnotify.Create}, true},
		{"uppercase extension", fsnotify.Event{Name: "input/URLS.TXT", Op: fsnotify.Write}, true},
		{"non-list file", fsnotify.Event{Name: "input/notes.md", Op: fsnotify.Write}, false},
		{"remove ignored", fsnotify.Event{Name: "input/urls.txt", Op: fsnotify.Remove}, false},
		{"chmod ignored", fsnotify.Event{Name: "input/urls.txt", Op: fsnotify.Chmod}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}
