package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/rum/internal/drag"
)

// handleMouse maps wheel scrolling, clicks and left button drags onto the
// sidebar. A drag starts once the pointer leaves the pressed cell.
func (a *App) handleMouse(msg tea.MouseMsg) {
	if a.mode != ModeNormal {
		return
	}
	at := drag.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.cursor > 0 {
				a.cursor--
				a.refresh()
			}
		case tea.MouseButtonWheelDown:
			if a.cursor < len(a.frame.sidebar.rows)-1 {
				a.cursor++
				a.refresh()
			}
		case tea.MouseButtonLeft:
			a.pressAt(at)
		}

	case tea.MouseActionMotion:
		if !a.press.active {
			return
		}
		if a.drag.State() == drag.Idle {
			if at == a.press.origin {
				return
			}
			if err := a.drag.Start(a.press.id); err != nil {
				a.logger.Debug("drag not started", "id", a.press.id, "error", err)
				a.press = pressState{}
				return
			}
			// Starting a folder drag may expand folders below it
			a.refresh()
		}
		a.drag.Over(a.press.pointer(at))
		a.refresh()
		a.selectID(a.press.id)

	case tea.MouseActionRelease:
		if !a.press.active {
			return
		}
		press := a.press
		a.press = pressState{}

		if a.drag.State() != drag.Idle {
			a.drag.Drop(press.pointer(at))
			a.refresh()
			a.selectID(press.id)
			return
		}

		// Plain click on a folder header toggles it
		if row, ok := a.selectedRow(); ok && row.IsFolder() && row.ID() == press.id {
			a.toggleSelected()
		}
	}
}

// pressAt selects the row under at and remembers it as a drag candidate.
func (a *App) pressAt(at drag.Point) {
	geo := a.frame.geometry
	i, ok := geo.hitTest(a.frame.sidebar, at)
	if !ok {
		return
	}
	a.cursor = i
	a.refresh()

	row := a.frame.sidebar.rows[i]
	rect := a.frame.geometry.rowRect(row)
	if row.IsFolder() {
		// A folder drags as a whole, header and members
		for _, t := range a.frame.targets {
			if t.ID == row.Folder.ID && t.Kind == drag.KindFolder {
				rect = t.Rect
				break
			}
		}
	}

	a.press = pressState{
		active: true,
		id:     row.ID(),
		origin: at,
		rect:   rect,
	}
}
