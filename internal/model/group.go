package model

// Group is a Rum group as reported by the node. Read-only here.
type Group struct {
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
	Unread    int    `json:"unread"`
}

// GroupIDs returns the IDs of the given groups in order.
func GroupIDs(groups []Group) []string {
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.GroupID
	}
	return ids
}

// UnreadCounts maps group IDs to their unread counters.
func UnreadCounts(groups []Group) map[string]int {
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.GroupID] = g.Unread
	}
	return counts
}

// DisplayMode selects how the sidebar lays out groups.
type DisplayMode string

const (
	DisplayList DisplayMode = "list"
	DisplayGrid DisplayMode = "grid"
)

// Next returns the other display mode.
func (m DisplayMode) Next() DisplayMode {
	if m == DisplayGrid {
		return DisplayList
	}
	return DisplayGrid
}

// Valid reports whether m is a known display mode.
func (m DisplayMode) Valid() bool {
	return m == DisplayList || m == DisplayGrid
}
