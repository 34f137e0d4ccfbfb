package folders_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/nikbrunner/rum/internal/folders"
	"github.com/nikbrunner/rum/internal/model"
)

func TestBuildIndex(t *testing.T) {
	idx := folders.BuildIndex(scenarioFolders(), quietLogger())

	tests := []struct {
		group  string
		want   string
		wantOK bool
	}{
		{"g1", model.DefaultFolderID, true},
		{"g2", model.DefaultFolderID, true},
		{"g3", "f1", true},
		{"g9", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			got, ok := idx.Owner(tt.group)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Owner(%q) = %q, %v; want %q, %v", tt.group, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if idx.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", idx.Len())
	}
}

func TestBuildIndex_DuplicateLastWriterWins(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	idx := folders.BuildIndex([]model.Folder{
		{ID: "a", Items: []string{"g1"}},
		{ID: "b", Items: []string{"g1"}},
	}, logger)

	owner, _ := idx.Owner("g1")
	if owner != "b" {
		t.Errorf("expected last folder to win, got %q", owner)
	}
	if !strings.Contains(buf.String(), "group listed in multiple folders") {
		t.Errorf("expected duplicate to be logged, got %q", buf.String())
	}
}

func TestStore_IndexRebuiltAfterMutation(t *testing.T) {
	s, _ := openStore(t, scenarioFolders())

	if err := s.Move("g1", "f1", 0); err != nil {
		t.Fatalf("move: %v", err)
	}

	owner, ok := s.OwnerOf("g1")
	if !ok || owner.ID != "f1" {
		t.Errorf("expected g1 in f1 after move, got %q", owner.ID)
	}
}
