package folders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikbrunner/rum/internal/model"
)

// EditResult reports what committing a name edit did.
type EditResult int

const (
	EditNone      EditResult = iota // editor was not active
	EditRenamed                     // name was applied
	EditRemoved                     // new folder left unnamed and removed
	EditDiscarded                   // empty rename of a named folder ignored
)

// Editor tracks the folder whose name is being edited.
// Newly created folders have no name; leaving them unnamed removes them.
type Editor struct {
	store    *Store
	folderID string
	isNew    bool
	active   bool
}

// NewEditor creates an Editor operating on store.
func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// Begin starts editing folder id.
func (e *Editor) Begin(id string) error {
	f, ok := e.store.Folder(id)
	if !ok {
		return fmt.Errorf("folder %q: %w", id, model.ErrInvalidArgument)
	}
	e.folderID = id
	e.isNew = f.Name == "" && !f.IsDefault()
	e.active = true
	return nil
}

// Active returns true while a name is being edited.
func (e *Editor) Active() bool {
	return e.active
}

// FolderID returns the folder being edited.
func (e *Editor) FolderID() string {
	return e.folderID
}

// IsNew returns true if the edited folder never had a name.
func (e *Editor) IsNew() bool {
	return e.isNew
}

// Commit applies name on confirm or blur and leaves edit mode.
// A folder that disappeared meanwhile closes the editor without error.
func (e *Editor) Commit(name string) (EditResult, error) {
	if !e.active {
		return EditNone, nil
	}
	id, isNew := e.folderID, e.isNew
	e.reset()

	name = strings.TrimSpace(name)
	if name != "" {
		err := e.store.Rename(id, name)
		if errors.Is(err, model.ErrInvalidArgument) {
			return EditDiscarded, nil
		}
		if err != nil {
			return EditNone, err
		}
		return EditRenamed, nil
	}

	if !isNew {
		return EditDiscarded, nil
	}
	err := e.store.Remove(id)
	if errors.Is(err, model.ErrInvalidArgument) {
		return EditDiscarded, nil
	}
	if err != nil {
		return EditNone, err
	}
	return EditRemoved, nil
}

// Cancel leaves edit mode as if the box was blurred empty.
func (e *Editor) Cancel() (EditResult, error) {
	return e.Commit("")
}

func (e *Editor) reset() {
	e.folderID = ""
	e.isNew = false
	e.active = false
}
