package model_test

import (
	"encoding/json"
	"testing"

	"github.com/nikbrunner/rum/internal/model"
)

func TestNewFolder(t *testing.T) {
	f := model.NewFolder(model.NewFolderParams{Name: "Work"})

	if f.ID == "" {
		t.Error("expected generated ID")
	}
	if f.Name != "Work" {
		t.Errorf("expected name 'Work', got %q", f.Name)
	}
	if f.Items == nil {
		t.Error("items should be an empty slice, not nil")
	}
	if !f.Expand {
		t.Error("new folders should start expanded")
	}

	other := model.NewFolder(model.NewFolderParams{})
	if other.ID == f.ID {
		t.Error("expected unique IDs")
	}
}

func TestFolder_DisplayName(t *testing.T) {
	tests := []struct {
		name   string
		folder model.Folder
		want   string
	}{
		{"default without name", model.NewDefaultFolder(nil), model.DefaultFolderName},
		{"default with name", model.Folder{ID: model.DefaultFolderID, Name: "Inbox"}, "Inbox"},
		{"user folder", model.Folder{ID: "f1", Name: "Work"}, "Work"},
		{"user folder being created", model.Folder{ID: "f2"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.folder.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFolder_CloneIsIndependent(t *testing.T) {
	f := model.Folder{ID: "f1", Items: []string{"g1", "g2"}}
	c := f.Clone()
	c.Items[0] = "changed"

	if f.Items[0] != "g1" {
		t.Error("mutating clone changed the original")
	}

	empty := model.Folder{ID: "f2"}.Clone()
	if empty.Items == nil {
		t.Error("clone of nil items should be empty slice")
	}
}

func TestFolder_JSONLayout(t *testing.T) {
	f := model.Folder{ID: "f1", Name: "Work", Items: []string{"g3"}, Expand: true}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	want := `{"id":"f1","name":"Work","items":["g3"],"expand":true}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestDisplayMode_Next(t *testing.T) {
	if model.DisplayList.Next() != model.DisplayGrid {
		t.Error("list should toggle to grid")
	}
	if model.DisplayGrid.Next() != model.DisplayList {
		t.Error("grid should toggle to list")
	}
	if model.DisplayMode("bogus").Valid() {
		t.Error("unknown mode should be invalid")
	}
}

func TestGroupHelpers(t *testing.T) {
	groups := []model.Group{
		{GroupID: "g1", GroupName: "Alpha", Unread: 2},
		{GroupID: "g2", GroupName: "Beta"},
	}

	ids := model.GroupIDs(groups)
	if len(ids) != 2 || ids[0] != "g1" || ids[1] != "g2" {
		t.Errorf("unexpected ids %v", ids)
	}

	counts := model.UnreadCounts(groups)
	if counts["g1"] != 2 || counts["g2"] != 0 {
		t.Errorf("unexpected counts %v", counts)
	}
}
