// Package folders owns the sidebar folder list: ordering, membership and
// persistence.
package folders

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/nikbrunner/rum/internal/model"
	"github.com/nikbrunner/rum/internal/storage"
)

// Store is the single source of truth for the ordered folder list.
// Every mutation is written through to storage before it becomes visible;
// a failed write leaves the in-memory list untouched.
type Store struct {
	storage  storage.Storage
	identity string
	logger   *slog.Logger

	folders []model.Folder
	index   Index
}

// Params holds parameters for opening a Store.
type Params struct {
	Storage  storage.Storage
	Identity string
	Logger   *slog.Logger // optional, uses slog.Default() if nil
}

// Open loads the folder list of params.Identity.
func Open(params Params) (*Store, error) {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loaded, err := params.Storage.LoadFolders(params.Identity)
	if err != nil {
		return nil, fmt.Errorf("loading folders: %w", err)
	}

	return &Store{
		storage:  params.Storage,
		identity: params.Identity,
		logger:   logger,
		folders:  loaded,
		index:    BuildIndex(loaded, logger),
	}, nil
}

// List returns the folders in display order.
func (s *Store) List() []model.Folder {
	return model.CloneFolders(s.folders)
}

// Folder returns the folder with the given ID.
func (s *Store) Folder(id string) (model.Folder, bool) {
	i := s.position(id)
	if i < 0 {
		return model.Folder{}, false
	}
	return s.folders[i].Clone(), true
}

// OwnerOf returns the folder that holds groupID.
func (s *Store) OwnerOf(groupID string) (model.Folder, bool) {
	id, ok := s.index.Owner(groupID)
	if !ok {
		return model.Folder{}, false
	}
	return s.Folder(id)
}

// Index returns the current membership index.
func (s *Store) Index() Index {
	return s.index
}

// Position returns the display index of folder id, or -1.
func (s *Store) Position(id string) int {
	return s.position(id)
}

func (s *Store) position(id string) int {
	return slices.IndexFunc(s.folders, func(f model.Folder) bool { return f.ID == id })
}

// commit persists next and, on success, replaces the current list with it.
func (s *Store) commit(next []model.Folder) error {
	if err := s.storage.SaveFolders(s.identity, next); err != nil {
		return fmt.Errorf("saving folders: %w: %w", model.ErrPersistence, err)
	}
	s.folders = next
	s.index = BuildIndex(next, s.logger)
	return nil
}

// AddEmpty appends a new, unnamed folder.
func (s *Store) AddEmpty() (model.Folder, error) {
	folder := model.NewFolder(model.NewFolderParams{})
	next := append(model.CloneFolders(s.folders), folder)
	if err := s.commit(next); err != nil {
		return model.Folder{}, err
	}
	s.logger.Debug("folder added", "folder", folder.ID)
	return folder.Clone(), nil
}

// Update replaces the mutable fields set in patch.
// Items must not contain duplicates or groups owned by another folder, and
// must keep every group the folder already holds.
func (s *Store) Update(id string, patch model.FolderPatch) error {
	i := s.position(id)
	if i < 0 {
		return fmt.Errorf("folder %q: %w", id, model.ErrInvalidArgument)
	}

	next := model.CloneFolders(s.folders)
	if patch.Name != nil {
		next[i].Name = *patch.Name
	}
	if patch.Expand != nil {
		next[i].Expand = *patch.Expand
	}
	if patch.Items != nil {
		seen := make(map[string]bool, len(patch.Items))
		for _, groupID := range patch.Items {
			if seen[groupID] {
				return fmt.Errorf("group %q listed twice: %w", groupID, model.ErrInvalidArgument)
			}
			seen[groupID] = true
			if owner, ok := s.index.Owner(groupID); ok && owner != id {
				return fmt.Errorf("group %q belongs to folder %q: %w", groupID, owner, model.ErrInvalidArgument)
			}
		}
		for _, groupID := range s.folders[i].Items {
			if !seen[groupID] {
				return fmt.Errorf("group %q would be left without a folder: %w", groupID, model.ErrInvalidArgument)
			}
		}
		next[i].Items = slices.Clone(patch.Items)
	}

	return s.commit(next)
}

// Rename sets the name of folder id.
func (s *Store) Rename(id, name string) error {
	return s.Update(id, model.FolderPatch{Name: &name})
}

// SetExpand sets the expand flag of folder id.
func (s *Store) SetExpand(id string, expand bool) error {
	return s.Update(id, model.FolderPatch{Expand: &expand})
}

// ToggleExpand flips the expand flag of folder id.
func (s *Store) ToggleExpand(id string) error {
	f, ok := s.Folder(id)
	if !ok {
		return fmt.Errorf("folder %q: %w", id, model.ErrInvalidArgument)
	}
	return s.SetExpand(id, !f.Expand)
}

// Remove deletes folder id. Its members are prepended to the default
// folder in their original order.
func (s *Store) Remove(id string) error {
	if id == model.DefaultFolderID {
		return fmt.Errorf("removing the default folder: %w", model.ErrInvalidOperation)
	}
	i := s.position(id)
	if i < 0 {
		return fmt.Errorf("folder %q: %w", id, model.ErrInvalidArgument)
	}

	next := model.CloneFolders(s.folders)
	removed := next[i]
	next = slices.Delete(next, i, i+1)

	if len(removed.Items) > 0 {
		d := slices.IndexFunc(next, func(f model.Folder) bool { return f.IsDefault() })
		if d < 0 {
			next = slices.Insert(next, 0, model.NewDefaultFolder(nil))
			d = 0
		}
		next[d].Items = append(slices.Clone(removed.Items), next[d].Items...)
	}

	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("folder removed", "folder", id, "reassigned", len(removed.Items))
	return nil
}

// Reorder replaces the top-level folder order. ids must be a permutation
// of the current folder IDs.
func (s *Store) Reorder(ids []string) error {
	if len(ids) != len(s.folders) {
		return fmt.Errorf("reorder with %d ids for %d folders: %w", len(ids), len(s.folders), model.ErrInvalidArgument)
	}

	byID := make(map[string]model.Folder, len(s.folders))
	for _, f := range s.folders {
		byID[f.ID] = f
	}

	next := make([]model.Folder, 0, len(ids))
	unchanged := true
	for i, id := range ids {
		f, ok := byID[id]
		if !ok {
			return fmt.Errorf("reorder with unknown or repeated folder %q: %w", id, model.ErrInvalidArgument)
		}
		delete(byID, id)
		next = append(next, f.Clone())
		if s.folders[i].ID != id {
			unchanged = false
		}
	}

	if unchanged {
		return nil
	}
	return s.commit(next)
}

// MoveFolder moves the folder at index from to index to.
func (s *Store) MoveFolder(from, to int) error {
	ids := make([]string, len(s.folders))
	for i, f := range s.folders {
		ids[i] = f.ID
	}
	moved, err := arrayMove(ids, from, to)
	if err != nil {
		return err
	}
	return s.Reorder(moved)
}

// MoveItem moves a group within folder id from index from to index to.
func (s *Store) MoveItem(id string, from, to int) error {
	f, ok := s.Folder(id)
	if !ok {
		return fmt.Errorf("folder %q: %w", id, model.ErrInvalidArgument)
	}
	if from == to {
		return nil
	}
	moved, err := arrayMove(f.Items, from, to)
	if err != nil {
		return err
	}
	return s.Update(id, model.FolderPatch{Items: moved})
}

// Move reparents groupID into folder toID at index, removing it from its
// current folder. The destination is expanded. An index past the end
// appends.
func (s *Store) Move(groupID, toID string, index int) error {
	if _, ok := s.index.Owner(toID); ok {
		return fmt.Errorf("folder id %q collides with a group id: %w", toID, model.ErrInvalidOperation)
	}
	if s.position(groupID) >= 0 {
		return fmt.Errorf("folder %q cannot be filed into a folder: %w", groupID, model.ErrInvalidOperation)
	}
	dest := s.position(toID)
	if dest < 0 {
		return fmt.Errorf("folder %q: %w", toID, model.ErrInvalidArgument)
	}

	next := model.CloneFolders(s.folders)
	if owner, ok := s.index.Owner(groupID); ok {
		src := s.position(owner)
		next[src].Items = slices.DeleteFunc(next[src].Items, func(g string) bool { return g == groupID })
	}

	items := next[dest].Items
	index = max(0, min(index, len(items)))
	next[dest].Items = slices.Insert(items, index, groupID)
	next[dest].Expand = true

	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("group moved", "group_id", groupID, "folder", toID, "index", index)
	return nil
}

// ExpandAfter expands every folder positioned after index.
func (s *Store) ExpandAfter(index int) error {
	next := model.CloneFolders(s.folders)
	changed := false
	for i := index + 1; i < len(next); i++ {
		if i >= 0 && !next[i].Expand {
			next[i].Expand = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.commit(next)
}

// Initialize makes the folder list consistent with allGroupIDs: it ensures
// the default folder exists, drops members that are no longer known or
// listed twice, and files every hanging group into the default folder.
// Calling it again with the same groups is a no-op.
func (s *Store) Initialize(allGroupIDs []string) error {
	known := make(map[string]bool, len(allGroupIDs))
	for _, id := range allGroupIDs {
		known[id] = true
	}

	next := model.CloneFolders(s.folders)
	seen := make(map[string]bool, len(allGroupIDs))
	changed := false
	hasDefault := false

	for i := range next {
		if next[i].IsDefault() {
			hasDefault = true
		}
		kept := make([]string, 0, len(next[i].Items))
		for _, groupID := range next[i].Items {
			if !known[groupID] || seen[groupID] {
				changed = true
				continue
			}
			seen[groupID] = true
			kept = append(kept, groupID)
		}
		next[i].Items = kept
	}

	if !hasDefault {
		next = slices.Insert(next, 0, model.NewDefaultFolder(nil))
		changed = true
	}

	d := slices.IndexFunc(next, func(f model.Folder) bool { return f.IsDefault() })
	hanging := 0
	for _, groupID := range allGroupIDs {
		if seen[groupID] {
			continue
		}
		seen[groupID] = true
		next[d].Items = append(next[d].Items, groupID)
		hanging++
		changed = true
	}

	if !changed {
		return nil
	}
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Info("folders initialized", "groups", len(allGroupIDs), "swept", hanging)
	return nil
}

// arrayMove returns a copy of items with the element at from moved to to.
func arrayMove(items []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, fmt.Errorf("move %d -> %d out of range [0,%d): %w", from, to, len(items), model.ErrInvalidArgument)
	}
	result := slices.Clone(items)
	item := result[from]
	result = slices.Delete(result, from, from+1)
	return slices.Insert(result, to, item), nil
}
