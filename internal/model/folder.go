package model

import "slices"

// DefaultFolderID identifies the folder that holds every group not filed elsewhere.
const DefaultFolderID = "default"

// DefaultFolderName is the fixed display name of the default folder.
const DefaultFolderName = "Unsorted"

// Folder is a user-defined grouping of sidebar groups.
type Folder struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Items  []string `json:"items"` // group IDs in display order
	Expand bool     `json:"expand"`
}

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Name  string
	Items []string
}

// NewFolder creates an expanded Folder with generated UUID.
func NewFolder(params NewFolderParams) Folder {
	items := params.Items
	if items == nil {
		items = []string{}
	}

	return Folder{
		ID:     generateUUID(),
		Name:   params.Name,
		Items:  items,
		Expand: true,
	}
}

// NewDefaultFolder creates the default folder with the given members.
func NewDefaultFolder(items []string) Folder {
	if items == nil {
		items = []string{}
	}
	return Folder{
		ID:     DefaultFolderID,
		Items:  items,
		Expand: true,
	}
}

// IsDefault returns true if this is the default folder.
func (f Folder) IsDefault() bool {
	return f.ID == DefaultFolderID
}

// DisplayName returns the name shown in the sidebar.
func (f Folder) DisplayName() string {
	if f.IsDefault() && f.Name == "" {
		return DefaultFolderName
	}
	return f.Name
}

// Clone returns a copy that shares no memory with f.
func (f Folder) Clone() Folder {
	f.Items = slices.Clone(f.Items)
	if f.Items == nil {
		f.Items = []string{}
	}
	return f
}

// FolderPatch describes a partial update of a folder.
// Nil fields are left unchanged.
type FolderPatch struct {
	Name   *string
	Items  []string
	Expand *bool
}

// CloneFolders deep-copies a folder list.
func CloneFolders(folders []Folder) []Folder {
	result := make([]Folder, len(folders))
	for i, f := range folders {
		result[i] = f.Clone()
	}
	return result
}
