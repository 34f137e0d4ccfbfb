package folders

import (
	"log/slog"

	"github.com/nikbrunner/rum/internal/model"
)

// Index maps group IDs to the ID of the folder that owns them.
// It is a projection of a folder list and is rebuilt, never patched.
type Index struct {
	owners map[string]string
}

// BuildIndex records the owning folder of every member of folders.
// A group listed by more than one folder resolves to the last one in
// iteration order; this only happens after the stored list was corrupted
// outside the Store, so it is logged.
func BuildIndex(folders []model.Folder, logger *slog.Logger) Index {
	if logger == nil {
		logger = slog.Default()
	}

	owners := make(map[string]string)
	for _, f := range folders {
		for _, groupID := range f.Items {
			if prev, ok := owners[groupID]; ok && prev != f.ID {
				logger.Warn("group listed in multiple folders",
					"group_id", groupID,
					"previous_folder", prev,
					"folder", f.ID,
				)
			}
			owners[groupID] = f.ID
		}
	}
	return Index{owners: owners}
}

// Owner returns the folder ID that holds groupID.
func (i Index) Owner(groupID string) (string, bool) {
	id, ok := i.owners[groupID]
	return id, ok
}

// Len returns the number of indexed groups.
func (i Index) Len() int {
	return len(i.owners)
}
