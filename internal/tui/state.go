package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/rum/internal/drag"
	"github.com/nikbrunner/rum/internal/tui/layout"
)

// Mode represents the current interaction mode of the app.
type Mode int

const (
	ModeNormal Mode = iota
	ModeRename
	ModeConfirmDelete
	ModeFilter
)

// MessageType selects the styling of the status message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// ModalState holds state for the rename and delete modals.
type ModalState struct {
	NameInput textinput.Model // folder name
	DeleteID  string          // folder awaiting delete confirmation
}

// NewModalState creates a new ModalState with initialized inputs.
func NewModalState(cfg layout.LayoutConfig) ModalState {
	nameInput := textinput.New()
	nameInput.Placeholder = "Folder name"
	nameInput.CharLimit = cfg.Input.NameCharLimit
	nameInput.Width = cfg.Input.StandardWidth

	return ModalState{
		NameInput: nameInput,
	}
}

// Reset clears the modal inputs for a new modal session.
func (m *ModalState) Reset() {
	m.NameInput.Reset()
	m.NameInput.Blur()
	m.DeleteID = ""
}

// FilterState holds the group filter.
type FilterState struct {
	Input textinput.Model
	Query string // applied query, persists after the input closes
}

// NewFilterState creates a new FilterState with an initialized input.
func NewFilterState(cfg layout.LayoutConfig) FilterState {
	input := textinput.New()
	input.Placeholder = "Filter groups..."
	input.Prompt = "/"
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.FilterWidth
	return FilterState{Input: input}
}

// Reset clears the filter.
func (f *FilterState) Reset() {
	f.Input.Reset()
	f.Input.Blur()
	f.Query = ""
}

// pressState tracks a left button press until release. The drag session
// only starts once the pointer leaves the pressed cell, so a plain click
// never triggers drag side effects.
type pressState struct {
	active bool
	id     string
	origin drag.Point
	rect   drag.Rect
}

// pointer translates the pressed item's rectangle by the pointer movement.
func (p pressState) pointer(at drag.Point) drag.Pointer {
	return drag.Pointer{
		Point: at,
		Rect:  p.rect.Offset(at.X-p.origin.X, at.Y-p.origin.Y),
	}
}

// frame is the layout shared between the app and the drag controller's
// target source. App is copied on every update, the frame is not.
type frame struct {
	sidebar  sidebar
	geometry geometry
	targets  []drag.Target
}
