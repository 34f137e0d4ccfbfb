package tui

import (
	"github.com/nikbrunner/rum/internal/drag"
	"github.com/nikbrunner/rum/internal/model"
	"github.com/nikbrunner/rum/internal/tui/layout"
)

// RowKind distinguishes folder headers from group rows.
type RowKind int

const (
	RowFolder RowKind = iota
	RowGroup
)

// Row is one selectable entry of the sidebar.
type Row struct {
	Kind   RowKind
	Folder model.Folder // the folder itself, or the folder listing the group
	Group  model.Group  // zero for folder rows
	Line   int          // sidebar line the row is drawn on
	Col    int          // grid column, always 0 in list mode
}

// ID returns the folder or group ID of the row.
func (r Row) ID() string {
	if r.Kind == RowFolder {
		return r.Folder.ID
	}
	return r.Group.GroupID
}

// IsFolder returns true if this row is a folder header.
func (r Row) IsFolder() bool {
	return r.Kind == RowFolder
}

// sidebar is the laid out folder list of one frame.
type sidebar struct {
	rows  []Row
	lines int
}

// buildSidebar lays out folders and their visible members. A non-nil
// filter hides non-matching groups and folders left without matches, and
// shows matches of collapsed folders too.
func buildSidebar(folders []model.Folder, groups map[string]model.Group, mode model.DisplayMode, filter map[string]bool, cols int) sidebar {
	var sb sidebar
	line := 0

	for _, f := range folders {
		members := f.Items
		if filter != nil {
			members = nil
			for _, id := range f.Items {
				if filter[id] {
					members = append(members, id)
				}
			}
			if len(members) == 0 {
				continue
			}
		}

		sb.rows = append(sb.rows, Row{Kind: RowFolder, Folder: f, Line: line})
		line++

		if !f.Expand && filter == nil {
			continue
		}

		for i, id := range members {
			g, ok := groups[id]
			if !ok {
				g = model.Group{GroupID: id, GroupName: id}
			}
			row := Row{Kind: RowGroup, Folder: f, Group: g, Line: line}
			if mode == model.DisplayGrid {
				row.Col = i % cols
				if row.Col == cols-1 || i == len(members)-1 {
					line++
				}
			} else {
				line++
			}
			sb.rows = append(sb.rows, row)
		}
	}

	sb.lines = line
	return sb
}

// indexOf returns the row index of id, or -1.
func (sb sidebar) indexOf(id string) int {
	for i, r := range sb.rows {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

// span returns how many lines the folder row at i covers, header included.
func (sb sidebar) span(i int) int {
	for j := i + 1; j < len(sb.rows); j++ {
		if sb.rows[j].Kind == RowFolder {
			return sb.rows[j].Line - sb.rows[i].Line
		}
	}
	return sb.lines - sb.rows[i].Line
}

// geometry places sidebar lines on the screen.
type geometry struct {
	origin    drag.Point // screen cell of line 0, column 0
	offset    int        // first visible line
	height    int        // visible lines
	width     int
	indent    int
	cellWidth int
	mode      model.DisplayMode
}

func newGeometry(width, height, offset int, mode model.DisplayMode, cfg layout.LayoutConfig) geometry {
	return geometry{
		// App padding (top 1, left 2) plus the title line
		origin:    drag.Point{X: 2, Y: 2},
		offset:    offset,
		height:    height,
		width:     width,
		indent:    cfg.Sidebar.GroupIndent,
		cellWidth: cfg.Sidebar.GridCellWidth,
		mode:      mode,
	}
}

func (g geometry) visible(line int) bool {
	return line >= g.offset && line < g.offset+g.height
}

func (g geometry) y(line int) int {
	return g.origin.Y + line - g.offset
}

// rowRect returns the clickable rectangle of a row: the header line of a
// folder, or the cell of a group.
func (g geometry) rowRect(r Row) drag.Rect {
	if r.Kind == RowFolder {
		return drag.Rect{X: g.origin.X, Y: g.y(r.Line), W: g.width, H: 1}
	}
	if g.mode == model.DisplayGrid {
		return drag.Rect{X: g.origin.X + r.Col*g.cellWidth, Y: g.y(r.Line), W: g.cellWidth, H: 1}
	}
	return drag.Rect{X: g.origin.X + g.indent, Y: g.y(r.Line), W: g.width - g.indent, H: 1}
}

// targets returns the drop targets of the visible part of sb: one
// container per folder spanning its header and members, one per group.
func (g geometry) targets(sb sidebar) []drag.Target {
	var targets []drag.Target
	for i, r := range sb.rows {
		if r.Kind == RowFolder {
			span := sb.span(i)
			if r.Line+span <= g.offset || r.Line >= g.offset+g.height {
				continue
			}
			targets = append(targets, drag.Target{
				ID:   r.Folder.ID,
				Kind: drag.KindFolder,
				Rect: drag.Rect{X: g.origin.X, Y: g.y(r.Line), W: g.width, H: span},
			})
			continue
		}
		if !g.visible(r.Line) {
			continue
		}
		targets = append(targets, drag.Target{
			ID:   r.Group.GroupID,
			Kind: drag.KindGroup,
			Rect: g.rowRect(r),
		})
	}
	return targets
}

// hitTest returns the index of the visible row under p.
func (g geometry) hitTest(sb sidebar, p drag.Point) (int, bool) {
	for i, r := range sb.rows {
		if g.visible(r.Line) && g.rowRect(r).Contains(p) {
			return i, true
		}
	}
	return -1, false
}
