// Package groups reads the group snapshot exported by the Quorum node.
package groups

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nikbrunner/rum/internal/model"
)

// LoadFile reads groups from a JSON array of {group_id, group_name, unread}.
// Returns an empty list if the file doesn't exist.
func LoadFile(path string) ([]model.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Group{}, nil
		}
		return nil, err
	}

	var groups []model.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	// Drop entries without an ID and repeated IDs, keeping the first.
	seen := make(map[string]bool, len(groups))
	result := make([]model.Group, 0, len(groups))
	for _, g := range groups {
		if g.GroupID == "" || seen[g.GroupID] {
			continue
		}
		seen[g.GroupID] = true
		result = append(result, g)
	}
	return result, nil
}

// ByID indexes groups by their ID.
func ByID(groups []model.Group) map[string]model.Group {
	result := make(map[string]model.Group, len(groups))
	for _, g := range groups {
		result[g.GroupID] = g
	}
	return result
}
