package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Sidebar SidebarConfig
	Modal   ModalConfig
	Input   InputConfig
	Text    TextConfig
}

// SidebarConfig holds sidebar dimension configuration.
type SidebarConfig struct {
	// HeightReduction is subtracted from terminal height for sidebar content.
	// Accounts for: app padding (1) + title (1) + help bar (3) = 5
	HeightReduction int

	// MinHeight is the minimum number of visible sidebar lines.
	MinHeight int

	// HorizontalPadding is the app padding on the left and right combined.
	HorizontalPadding int

	// MinWidth is the minimum sidebar width in characters.
	MinWidth int

	// MaxWidth caps the sidebar width on wide terminals.
	MaxWidth int

	// GridCellWidth is the width of a single group cell in grid mode.
	GridCellWidth int

	// GroupIndent is the indentation of group rows below a folder header in list mode.
	GroupIndent int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit   int
	FilterCharLimit int

	// Display widths
	StandardWidth int // Used for the folder name input
	FilterWidth   int // Used for filter input (narrower)
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Sidebar: SidebarConfig{
			HeightReduction:   5, // app padding (1) + title (1) + help bar (3)
			MinHeight:         5,
			HorizontalPadding: 4,
			MinWidth:          20,
			MaxWidth:          60,
			GridCellWidth:     18,
			GroupIndent:       4,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			MinWidth:            40,
			MaxWidth:            70,
		},
		Input: InputConfig{
			NameCharLimit:   60,
			FilterCharLimit: 50,
			StandardWidth:   36,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
