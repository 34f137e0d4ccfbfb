package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/rum/internal/folders"
	"github.com/nikbrunner/rum/internal/model"
	"github.com/nikbrunner/rum/internal/tui/layout"
)

// renderView creates the complete sidebar view.
func (a App) renderView() string {
	// Rename and delete confirmation replace the sidebar
	if a.mode == ModeRename || a.mode == ModeConfirmDelete {
		return a.renderModal()
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderTitle(), a.renderSidebar(), a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderTitle renders the single line above the sidebar. Its height is
// part of the screen geometry used for mouse hit testing.
func (a App) renderTitle() string {
	title := "rum"
	if a.filter.Query != "" {
		title += "  /" + a.filter.Query
	}
	title += "  [" + string(a.displayMode) + "]"

	title, _ = layout.TruncateText(title, a.frame.geometry.width, a.layoutConfig.Text)
	return a.styles.Title.Render(title)
}

// renderSidebar renders the visible sidebar lines.
func (a App) renderSidebar() string {
	sb := a.frame.sidebar
	geo := a.frame.geometry

	if len(sb.rows) == 0 {
		if a.filter.Query != "" {
			return a.styles.Empty.Render("No matching groups")
		}
		return a.styles.Empty.Render("No folders")
	}

	badges := folders.UnreadByFolder(a.store.List(), model.UnreadCounts(a.groups))
	lines := make([]string, sb.lines)

	for i, r := range sb.rows {
		if !geo.visible(r.Line) {
			continue
		}
		style := a.rowStyle(i, r)

		if r.IsFolder() {
			arrow := "▸ "
			if r.Folder.Expand || a.filter.Query != "" {
				arrow = "▾ "
			}
			lines[r.Line] = a.renderLine(arrow+r.Folder.DisplayName(), countBadge(badges[r.Folder.ID]), geo.width, style)
			continue
		}

		badge := countBadge(r.Group.Unread)
		if geo.mode == model.DisplayGrid {
			lines[r.Line] += a.renderLine(r.Group.GroupName, badge, geo.cellWidth-1, style) + " "
			continue
		}
		lines[r.Line] = strings.Repeat(" ", geo.indent) + a.renderLine(r.Group.GroupName, badge, geo.width-geo.indent, style)
	}

	end := min(geo.offset+geo.height, len(lines))
	return strings.Join(lines[geo.offset:end], "\n")
}

// rowStyle picks the style of row i: cursor, dragged item and drop target
// take precedence over the plain folder and group styles.
func (a App) rowStyle(i int, r Row) lipgloss.Style {
	switch {
	case a.drag.ActiveID() == r.ID():
		return a.styles.Dragging
	case a.drag.ActiveID() != "" && a.drag.LastOverID() == r.ID():
		return a.styles.DropTarget
	case i == a.cursor:
		return a.styles.ItemSelected
	case r.IsFolder():
		return a.styles.Folder
	default:
		return a.styles.Group
	}
}

// renderLine renders left and a right aligned badge on exactly width cells.
func (a App) renderLine(left, badge string, width int, style lipgloss.Style) string {
	text := layout.JoinEnds(left, badge, width, a.layoutConfig.Text)
	if badge == "" || !strings.HasSuffix(text, badge) {
		return style.Render(text)
	}
	body := strings.TrimSuffix(text, badge)
	return style.Render(body) + a.styles.Badge.Inherit(style).Render(badge)
}

func countBadge(n int) string {
	if n <= 0 {
		return ""
	}
	if n > 99 {
		return "99+"
	}
	return strconv.Itoa(n)
}

// renderModal renders the rename or delete confirmation dialog.
func (a App) renderModal() string {
	var content strings.Builder

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)

	switch a.mode {
	case ModeRename:
		if a.editor.IsNew() {
			content.WriteString(a.styles.Title.Render("New Folder"))
		} else {
			content.WriteString(a.styles.Title.Render("Rename Folder"))
		}
		content.WriteString("\n\n")
		content.WriteString("Name:\n")
		content.WriteString(a.modal.NameInput.View())
		content.WriteString("\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter", Desc: "save"},
			{Key: "Esc", Desc: "cancel"},
		}))

	case ModeConfirmDelete:
		f, _ := a.store.Folder(a.modal.DeleteID)
		content.WriteString(a.styles.Title.Render(fmt.Sprintf("Delete folder %q?", f.DisplayName())))
		content.WriteString("\n\n")
		content.WriteString(a.styles.Help.Render(fmt.Sprintf("Its %d groups move to %s.", len(f.Items), model.DefaultFolderName)))
		content.WriteString("\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter", Desc: "confirm"},
			{Key: "Esc", Desc: "cancel"},
		}))
	}

	modal := lipgloss.Place(
		a.width,
		a.height-3,
		lipgloss.Center,
		lipgloss.Center,
		a.styles.Modal.Width(modalWidth).Render(content.String()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, modal, a.renderHelpBar())
}

// renderHelpBar renders the status message, the filter input and key hints.
func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	if a.mode == ModeFilter {
		lines = append(lines, a.filter.Input.View())
	}

	if hints := a.renderHints(a.getContextualHints()); hints != "" {
		lines = append(lines, hints)
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
	}

	return msgStyle.Render(prefix + a.messageText)
}
