// Package tui renders the sidebar folder list and maps keys and mouse
// drags onto folder store operations.
package tui

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/rum/internal/drag"
	"github.com/nikbrunner/rum/internal/folders"
	"github.com/nikbrunner/rum/internal/groups"
	"github.com/nikbrunner/rum/internal/model"
	"github.com/nikbrunner/rum/internal/search"
	"github.com/nikbrunner/rum/internal/storage"
	"github.com/nikbrunner/rum/internal/tui/layout"
)

// App is the main bubbletea model for the sidebar.
type App struct {
	store        *folders.Store
	groups       []model.Group
	groupsByID   map[string]model.Group
	storage      storage.Storage
	logger       *slog.Logger
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	skipDeleteConfirm bool
	displayMode       model.DisplayMode

	mode   Mode
	cursor int // selected row index

	// For gg command
	lastKeyWasG bool

	modal  ModalState
	filter FilterState
	editor *folders.Editor

	drag  *drag.Controller
	press pressState
	frame *frame

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store             *folders.Store
	Groups            []model.Group
	Storage           storage.Storage      // optional, display mode is not persisted if nil
	Logger            *slog.Logger         // optional, uses slog.Default() if nil
	Keys              *KeyMap              // optional, uses default if nil
	Styles            *Styles              // optional, uses default if nil
	LayoutConfig      *layout.LayoutConfig // optional, uses default if nil
	SkipDeleteConfirm bool                 // delete non-empty folders without asking
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	displayMode := model.DisplayList
	if params.Storage != nil {
		mode, err := params.Storage.LoadDisplayMode()
		if err != nil {
			logger.Warn("loading display mode", "error", err)
		} else {
			displayMode = mode
		}
	}

	f := &frame{}
	app := App{
		store:             params.Store,
		groups:            params.Groups,
		groupsByID:        groups.ByID(params.Groups),
		storage:           params.Storage,
		logger:            logger,
		keys:              keys,
		styles:            styles,
		layoutConfig:      layoutCfg,
		skipDeleteConfirm: params.SkipDeleteConfirm,
		displayMode:       displayMode,
		modal:             NewModalState(layoutCfg),
		filter:            NewFilterState(layoutCfg),
		editor:            folders.NewEditor(params.Store),
		frame:             f,
		width:             80,
		height:            24,
	}
	app.drag = drag.NewController(params.Store, drag.TargetFunc(func() []drag.Target {
		return f.targets
	}), drag.Config{Logger: logger})

	app.refresh()
	return app
}

// WithDimensions returns a copy of the app laid out for a width x height terminal.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.refresh()
	return a
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Mode returns the current interaction mode.
func (a App) Mode() Mode {
	return a.mode
}

// DisplayMode returns the current sidebar layout.
func (a App) DisplayMode() model.DisplayMode {
	return a.displayMode
}

// Rows returns the rows of the current frame.
func (a App) Rows() []Row {
	return a.frame.sidebar.rows
}

// Targets returns the drop targets of the current frame.
func (a App) Targets() []drag.Target {
	return a.frame.targets
}

// Drag returns the drag controller.
func (a App) Drag() *drag.Controller {
	return a.drag
}

// FilterQuery returns the applied group filter.
func (a App) FilterQuery() string {
	return a.filter.Query
}

// Message returns the current status message.
func (a App) Message() (string, MessageType) {
	return a.messageText, a.messageType
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.refresh()
		return a, nil

	case tea.MouseMsg:
		a.handleMouse(msg)
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeRename:
			return a.handleRenameKey(msg)
		case ModeConfirmDelete:
			return a.handleConfirmKey(msg)
		case ModeFilter:
			return a.handleFilterKey(msg)
		default:
			return a.handleNormalKey(msg)
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

// refresh lays out the current folder list and keeps the cursor in range.
func (a *App) refresh() {
	var filter map[string]bool
	if a.filter.Query != "" {
		filter = search.MatchingIDs(a.groups, a.filter.Query)
	}

	width := layout.CalculateSidebarWidth(a.width, a.layoutConfig.Sidebar)
	height := layout.CalculateSidebarHeight(a.height, a.layoutConfig.Sidebar)
	cols := layout.CalculateGridColumns(width, a.layoutConfig.Sidebar)

	sb := buildSidebar(a.store.List(), a.groupsByID, a.displayMode, filter, cols)

	if a.cursor >= len(sb.rows) {
		a.cursor = len(sb.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}

	cursorLine := 0
	if len(sb.rows) > 0 {
		cursorLine = sb.rows[a.cursor].Line
	}
	offset := layout.CalculateViewportOffset(cursorLine, sb.lines, height)

	geo := newGeometry(width, height, offset, a.displayMode, a.layoutConfig)
	*a.frame = frame{
		sidebar:  sb,
		geometry: geo,
		targets:  geo.targets(sb),
	}
}

// selectID moves the cursor onto id if it is visible.
func (a *App) selectID(id string) {
	if i := a.frame.sidebar.indexOf(id); i >= 0 && i != a.cursor {
		a.cursor = i
		a.refresh()
	}
}

// selectedRow returns the row under the cursor.
func (a App) selectedRow() (Row, bool) {
	rows := a.frame.sidebar.rows
	if a.cursor < 0 || a.cursor >= len(rows) {
		return Row{}, false
	}
	return rows[a.cursor], true
}

// setMode switches modes. Dragging is only possible in normal mode.
func (a *App) setMode(mode Mode) {
	a.mode = mode
	a.drag.SetDisabled(mode != ModeNormal)
	if mode != ModeNormal {
		a.press = pressState{}
	}
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
}

// fail logs err and shows it in the status line.
func (a *App) fail(action string, err error) {
	a.logger.Error(action, "error", err)
	switch {
	case errors.Is(err, model.ErrInvalidOperation):
		a.setMessage(MessageWarning, action+": "+err.Error())
	default:
		a.setMessage(MessageError, action+": "+err.Error())
	}
}

func (a App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			a.refresh()
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false
	a.clearMessage()

	rows := a.frame.sidebar.rows

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(rows)-1 {
			a.cursor++
			a.refresh()
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
			a.refresh()
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(rows) > 0 {
			a.cursor = len(rows) - 1
			a.refresh()
		}

	case key.Matches(msg, a.keys.MoveDown):
		a.moveSelected(1)

	case key.Matches(msg, a.keys.MoveUp):
		a.moveSelected(-1)

	case key.Matches(msg, a.keys.Toggle):
		a.toggleSelected()

	case key.Matches(msg, a.keys.AddFolder):
		cmd := a.addFolder()
		return a, cmd

	case key.Matches(msg, a.keys.Rename):
		if row, ok := a.selectedRow(); ok && row.IsFolder() {
			cmd := a.startRename(row.Folder.ID)
			return a, cmd
		}

	case key.Matches(msg, a.keys.Delete):
		a.deleteSelected()

	case key.Matches(msg, a.keys.DisplayMode):
		a.toggleDisplayMode()

	case key.Matches(msg, a.keys.Filter):
		a.filter.Input.SetValue(a.filter.Query)
		a.filter.Input.CursorEnd()
		a.setMode(ModeFilter)
		cmd := a.filter.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.ClearFilter):
		if a.filter.Query != "" {
			a.filter.Reset()
			a.refresh()
		}

	case key.Matches(msg, a.keys.YankID):
		a.yankSelected()
	}

	return a, nil
}

// moveSelected shifts the selected folder or group by delta within its list.
func (a *App) moveSelected(delta int) {
	row, ok := a.selectedRow()
	if !ok {
		return
	}

	var err error
	if row.IsFolder() {
		from := a.store.Position(row.Folder.ID)
		to := from + delta
		if from < 0 || to < 0 || to >= len(a.store.List()) {
			return
		}
		err = a.store.MoveFolder(from, to)
	} else {
		items := row.Folder.Items
		from := slices.Index(items, row.Group.GroupID)
		to := from + delta
		if from < 0 || to < 0 || to >= len(items) {
			return
		}
		err = a.store.MoveItem(row.Folder.ID, from, to)
	}
	if err != nil {
		a.fail("Move failed", err)
		return
	}

	a.refresh()
	a.selectID(row.ID())
}

func (a *App) toggleSelected() {
	row, ok := a.selectedRow()
	if !ok {
		return
	}
	if err := a.store.ToggleExpand(row.Folder.ID); err != nil {
		a.fail("Toggle failed", err)
		return
	}
	a.refresh()
	a.selectID(row.Folder.ID)
}

func (a *App) addFolder() tea.Cmd {
	f, err := a.store.AddEmpty()
	if err != nil {
		a.fail("Add folder failed", err)
		return nil
	}
	a.refresh()
	a.selectID(f.ID)
	return a.startRename(f.ID)
}

func (a *App) startRename(id string) tea.Cmd {
	if err := a.editor.Begin(id); err != nil {
		a.fail("Rename failed", err)
		return nil
	}
	f, _ := a.store.Folder(id)
	a.modal.Reset()
	a.modal.NameInput.SetValue(f.Name)
	a.modal.NameInput.CursorEnd()
	a.setMode(ModeRename)
	return a.modal.NameInput.Focus()
}

func (a App) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		result folders.EditResult
		err    error
	)

	switch msg.Type {
	case tea.KeyEnter:
		result, err = a.editor.Commit(a.modal.NameInput.Value())
	case tea.KeyEsc:
		result, err = a.editor.Cancel()
	default:
		var cmd tea.Cmd
		a.modal.NameInput, cmd = a.modal.NameInput.Update(msg)
		return a, cmd
	}

	name := strings.TrimSpace(a.modal.NameInput.Value())
	a.modal.Reset()
	a.setMode(ModeNormal)
	a.refresh()

	if err != nil {
		a.fail("Rename failed", err)
		return a, nil
	}
	switch result {
	case folders.EditRenamed:
		a.setMessage(MessageSuccess, "Renamed to "+name)
	case folders.EditRemoved:
		a.setMessage(MessageInfo, "Folder discarded")
	}
	return a, nil
}

func (a *App) deleteSelected() {
	row, ok := a.selectedRow()
	if !ok {
		return
	}
	if !row.IsFolder() {
		a.setMessage(MessageInfo, "Groups are managed by the node")
		return
	}
	if row.Folder.IsDefault() {
		a.setMessage(MessageWarning, "The default folder cannot be deleted")
		return
	}
	if len(row.Folder.Items) > 0 && !a.skipDeleteConfirm {
		a.modal.Reset()
		a.modal.DeleteID = row.Folder.ID
		a.setMode(ModeConfirmDelete)
		return
	}
	a.removeFolder(row.Folder.ID)
}

func (a *App) removeFolder(id string) {
	if err := a.store.Remove(id); err != nil {
		a.fail("Delete failed", err)
		return
	}
	a.refresh()
	a.setMessage(MessageSuccess, "Folder deleted")
}

func (a App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		id := a.modal.DeleteID
		a.modal.Reset()
		a.setMode(ModeNormal)
		a.removeFolder(id)
	case "esc", "n", "q":
		a.modal.Reset()
		a.setMode(ModeNormal)
	}
	return a, nil
}

func (a App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.filter.Input.Blur()
		a.setMode(ModeNormal)
		return a, nil
	case tea.KeyEsc:
		a.filter.Reset()
		a.setMode(ModeNormal)
		a.refresh()
		return a, nil
	}

	var cmd tea.Cmd
	a.filter.Input, cmd = a.filter.Input.Update(msg)
	a.filter.Query = a.filter.Input.Value()
	a.cursor = 0
	a.refresh()
	return a, cmd
}

func (a *App) toggleDisplayMode() {
	a.displayMode = a.displayMode.Next()
	a.refresh()
	if a.storage == nil {
		return
	}
	if err := a.storage.SaveDisplayMode(a.displayMode); err != nil {
		a.fail("Saving display mode failed", err)
	}
}

func (a *App) yankSelected() {
	row, ok := a.selectedRow()
	if !ok || row.IsFolder() {
		return
	}
	if err := clipboard.WriteAll(row.Group.GroupID); err != nil {
		a.fail("Copy failed", err)
		return
	}
	a.setMessage(MessageSuccess, "Copied "+row.Group.GroupID)
}
