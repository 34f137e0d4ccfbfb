package layout

// CalculateSidebarHeight computes the number of visible sidebar lines.
// Returns at least MinHeight.
func CalculateSidebarHeight(terminalHeight int, cfg SidebarConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateSidebarWidth computes the sidebar width for the terminal width.
func CalculateSidebarWidth(terminalWidth int, cfg SidebarConfig) int {
	width := terminalWidth - cfg.HorizontalPadding
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	return width
}

// CalculateGridColumns returns how many group cells fit on one grid line.
func CalculateGridColumns(sidebarWidth int, cfg SidebarConfig) int {
	if cfg.GridCellWidth <= 0 {
		return 1
	}
	cols := sidebarWidth / cfg.GridCellWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected line visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// CalculateModalWidth sizes dialogs drawn over the sidebar: widthPercent of
// the terminal, clamped to the modal limits and kept inside the terminal.
func CalculateModalWidth(terminalWidth, widthPercent int, cfg ModalConfig) int {
	width := max(terminalWidth*widthPercent/100, cfg.MinWidth)
	width = min(width, cfg.MaxWidth, terminalWidth-4)
	return max(width, 1)
}
