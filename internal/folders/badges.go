package folders

import "github.com/nikbrunner/rum/internal/model"

// UnreadByFolder sums the unread counters of each folder's members.
// Folders without unread groups are omitted.
func UnreadByFolder(folders []model.Folder, counts map[string]int) map[string]int {
	result := make(map[string]int)
	for _, f := range folders {
		total := 0
		for _, groupID := range f.Items {
			total += counts[groupID]
		}
		if total > 0 {
			result[f.ID] = total
		}
	}
	return result
}
