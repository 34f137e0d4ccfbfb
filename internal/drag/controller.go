// Package drag turns pointer drags over the sidebar into folder and group
// reorder operations.
package drag

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/nikbrunner/rum/internal/folders"
	"github.com/nikbrunner/rum/internal/model"
)

// Kind distinguishes folder containers from group rows.
type Kind int

const (
	KindFolder Kind = iota
	KindGroup
)

// Target is a droppable region as currently rendered.
type Target struct {
	ID   string
	Kind Kind
	Rect Rect
}

// TargetSource supplies the droppable regions of the current frame.
type TargetSource interface {
	Targets() []Target
}

// TargetFunc adapts a function to TargetSource.
type TargetFunc func() []Target

// Targets implements TargetSource.
func (f TargetFunc) Targets() []Target {
	return f()
}

// Pointer describes the drag gesture at one instant.
type Pointer struct {
	Point Point // pointer position
	Rect  Rect  // dragged item's current (translated) rectangle
}

// State is the controller's session state.
type State int

const (
	Idle State = iota
	DraggingFolder
	DraggingGroup
)

func (s State) String() string {
	switch s {
	case DraggingFolder:
		return "dragging-folder"
	case DraggingGroup:
		return "dragging-group"
	default:
		return "idle"
	}
}

// Config holds controller options.
type Config struct {
	// Disabled suspends dragging, e.g. while a popup owns the pointer.
	Disabled bool
	Logger   *slog.Logger // optional, uses slog.Default() if nil
}

// Controller tracks one drag session at a time.
// Cross-folder moves are committed to the store while hovering; store
// failures are logged and never rolled back here.
type Controller struct {
	store   *folders.Store
	targets TargetSource
	cfg     Config
	logger  *slog.Logger

	state      State
	activeID   string
	lastOverID string
}

// NewController creates an idle Controller.
func NewController(store *folders.Store, targets TargetSource, cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:   store,
		targets: targets,
		cfg:     cfg,
		logger:  logger,
	}
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

// ActiveID returns the dragged item, or "" when idle.
func (c *Controller) ActiveID() string {
	return c.activeID
}

// LastOverID returns the most recent hover target.
func (c *Controller) LastOverID() string {
	return c.lastOverID
}

// Disabled reports whether dragging is suspended.
func (c *Controller) Disabled() bool {
	return c.cfg.Disabled
}

// SetDisabled suspends or resumes dragging. Suspending cancels a running session.
func (c *Controller) SetDisabled(disabled bool) {
	c.cfg.Disabled = disabled
	if disabled {
		c.Cancel()
	}
}

// Start begins dragging the folder or group id.
// Starting a folder drag expands every folder after it.
func (c *Controller) Start(id string) error {
	if c.cfg.Disabled {
		return fmt.Errorf("drag disabled: %w", model.ErrInvalidOperation)
	}

	if pos := c.store.Position(id); pos >= 0 {
		c.begin(DraggingFolder, id)
		if err := c.store.ExpandAfter(pos); err != nil {
			c.logger.Warn("expanding folders for drag", "folder", id, "error", err)
		}
		return nil
	}

	if _, ok := c.store.Index().Owner(id); ok {
		c.begin(DraggingGroup, id)
		return nil
	}

	return fmt.Errorf("drag source %q: %w", id, model.ErrInvalidArgument)
}

func (c *Controller) begin(state State, id string) {
	c.state = state
	c.activeID = id
	c.lastOverID = ""
	c.logger.Debug("drag started", "state", state.String(), "active", id)
}

// Over recomputes the hover target for p and applies an optimistic
// reparent when a group hovers another folder. Returns the target ID.
func (c *Controller) Over(p Pointer) string {
	if c.state == Idle {
		return ""
	}
	overID, target := c.collide(p)
	if c.state == DraggingGroup && overID != "" {
		c.reparent(overID, target, p)
	}
	return overID
}

// Drop finishes the session at p and commits the final order.
// Returns the drop target, or "" if there was none.
func (c *Controller) Drop(p Pointer) string {
	if c.state == Idle {
		return ""
	}
	defer c.reset()

	overID, target := c.collide(p)
	if overID == "" {
		return ""
	}

	switch c.state {
	case DraggingFolder:
		c.dropFolder(overID)
	case DraggingGroup:
		if !c.reparent(overID, target, p) {
			c.dropGroup(overID)
		}
	}

	c.logger.Debug("drag dropped", "active", c.activeID, "over", overID)
	return overID
}

// Cancel discards the session without committing.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = Idle
	c.activeID = ""
	c.lastOverID = ""
}

// collide resolves the hover target. A miss falls back to the last target
// so the drop position does not snap away during fast pointer movement.
func (c *Controller) collide(p Pointer) (string, *Target) {
	targets := c.targets.Targets()

	var over *Target
	if c.state == DraggingFolder {
		containers := filterKind(targets, KindFolder)
		if t, ok := closestCenter(p.Rect, containers); ok {
			over = &t
		}
	} else {
		hits := pointerWithin(p.Point, targets)
		if len(hits) == 0 {
			hits = rectIntersection(p.Rect, targets)
		}
		if len(hits) > 0 {
			over = &hits[0]
		}
		if over != nil && over.Kind == KindFolder {
			if row, ok := c.closestMember(over.ID, p.Rect, targets); ok {
				over = &row
			}
		}
	}

	if over == nil {
		if c.lastOverID == "" {
			return "", nil
		}
		return c.lastOverID, findTarget(targets, c.lastOverID)
	}
	c.lastOverID = over.ID
	return over.ID, over
}

// closestMember narrows a folder hit to its nearest rendered member row.
func (c *Controller) closestMember(folderID string, active Rect, targets []Target) (Target, bool) {
	folder, ok := c.store.Folder(folderID)
	if !ok || len(folder.Items) == 0 {
		return Target{}, false
	}
	var rows []Target
	for _, t := range targets {
		if t.Kind == KindGroup && t.ID != folderID && slices.Contains(folder.Items, t.ID) {
			rows = append(rows, t)
		}
	}
	return closestCenter(active, rows)
}

// ownerOf returns the folder a target belongs to: a container is its own
// owner, a row belongs to the folder listing it.
func (c *Controller) ownerOf(id string) (string, bool) {
	if c.store.Position(id) >= 0 {
		return id, true
	}
	return c.store.Index().Owner(id)
}

// reparent moves the dragged group into the hovered folder when that
// differs from its current folder. Returns true if the group moved.
func (c *Controller) reparent(overID string, target *Target, p Pointer) bool {
	dest, ok := c.ownerOf(overID)
	if !ok {
		return false
	}
	src, ok := c.store.Index().Owner(c.activeID)
	if ok && src == dest {
		return false
	}

	folder, _ := c.store.Folder(dest)
	var index int
	if overID == dest {
		index = len(folder.Items) + 1
	} else {
		index = slices.Index(folder.Items, overID)
		if target != nil && float64(p.Rect.Y) > target.Rect.MidY() {
			index++
		}
	}

	if err := c.store.Move(c.activeID, dest, index); err != nil {
		c.logger.Warn("reparenting dragged group", "group_id", c.activeID, "folder", dest, "error", err)
		return false
	}
	c.logger.Debug("group reparented", "group_id", c.activeID, "from", src, "to", dest, "index", index)
	return true
}

func (c *Controller) dropFolder(overID string) {
	if overID == c.activeID {
		return
	}
	from := c.store.Position(c.activeID)
	to := c.store.Position(overID)
	if from < 0 || to < 0 {
		return
	}
	if err := c.store.MoveFolder(from, to); err != nil {
		c.logger.Warn("reordering folders", "folder", c.activeID, "error", err)
	}
}

func (c *Controller) dropGroup(overID string) {
	if overID == c.activeID || c.store.Position(overID) >= 0 {
		return
	}
	folder, ok := c.store.OwnerOf(c.activeID)
	if !ok {
		return
	}
	from := slices.Index(folder.Items, c.activeID)
	to := slices.Index(folder.Items, overID)
	if from < 0 || to < 0 || from == to {
		return
	}
	if err := c.store.MoveItem(folder.ID, from, to); err != nil {
		c.logger.Warn("reordering group", "group_id", c.activeID, "folder", folder.ID, "error", err)
	}
}

func filterKind(targets []Target, kind Kind) []Target {
	var result []Target
	for _, t := range targets {
		if t.Kind == kind {
			result = append(result, t)
		}
	}
	return result
}

func findTarget(targets []Target, id string) *Target {
	for i := range targets {
		if targets[i].ID == id {
			return &targets[i]
		}
	}
	return nil
}
