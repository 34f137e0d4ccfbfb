package tui_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/rum/internal/model"
	"github.com/nikbrunner/rum/internal/tui"
	"github.com/nikbrunner/rum/internal/tui/layout"
)

func viewLines(app tui.App) []string {
	return strings.Split(layout.StripANSI(app.View()), "\n")
}

func lineWith(lines []string, s string) string {
	for _, l := range lines {
		if strings.Contains(l, s) {
			return l
		}
	}
	return ""
}

func TestView_ListMode(t *testing.T) {
	env := newTestEnv(t, tui.AppParams{})
	lines := viewLines(env.app)

	if !strings.Contains(lines[1], "rum") || !strings.Contains(lines[1], "[list]") {
		t.Errorf("expected title on line 1, got %q", lines[1])
	}
	if !strings.Contains(lines[yDefault], "Unsorted") {
		t.Errorf("expected default folder on line %d, got %q", yDefault, lines[yDefault])
	}
	if !strings.Contains(lines[yWork], "▾ Work") {
		t.Errorf("expected expanded Work on line %d, got %q", yWork, lines[yWork])
	}

	// Folder badges sum their members' unread counters
	if got := strings.TrimSpace(lines[yDefault]); !strings.HasSuffix(got, "2") {
		t.Errorf("expected unread badge 2 on default folder, got %q", got)
	}
	if got := strings.TrimSpace(lines[yWork]); !strings.HasSuffix(got, "5") {
		t.Errorf("expected unread badge 5 on Work, got %q", got)
	}

	alpha := lineWith(lines, "Alpha")
	if !strings.HasPrefix(alpha, "      Alpha") {
		t.Errorf("expected indented group row, got %q", alpha)
	}
}

func TestView_GridMode(t *testing.T) {
	env := newTestEnv(t, tui.AppParams{})
	app := press(env.app, "v")
	lines := viewLines(app)

	alpha := lineWith(lines, "Alpha")
	if !strings.Contains(alpha, "Beta") {
		t.Errorf("expected Alpha and Beta on one grid line, got %q", alpha)
	}
}

func TestView_GridModeWideNames(t *testing.T) {
	groups := testGroups()
	groups[0].GroupName = "开发者社区讨论组频道"
	env := newTestEnv(t, tui.AppParams{Groups: groups})
	app := press(env.app, "v")
	lines := viewLines(app)

	line := lineWith(lines, "开发")
	first := strings.Index(line, "开发")
	second := strings.Index(line, "Beta")
	if first < 0 || second < 0 {
		t.Fatalf("expected both groups on one grid line, got %q", line)
	}

	cell := layout.DefaultConfig().Sidebar.GridCellWidth
	if got := lipgloss.Width(line[first:second]); got != cell {
		t.Errorf("expected wide cell to span %d columns, got %d in %q", cell, got, line)
	}
}

func TestView_ListModeWideNames(t *testing.T) {
	groups := []model.Group{
		{GroupID: "g1", GroupName: strings.Repeat("讨论", 40), Unread: 2},
		{GroupID: "g2", GroupName: "Beta"},
		{GroupID: "g3", GroupName: "Gamma"},
	}
	env := newTestEnv(t, tui.AppParams{Groups: groups})
	lines := viewLines(env.app)

	// Group and folder badges end on the same column
	wide := strings.TrimRight(lineWith(lines, "讨论"), " ")
	folder := strings.TrimRight(lines[yDefault], " ")
	if !strings.HasSuffix(wide, "2") {
		t.Fatalf("expected badge at the end of %q", wide)
	}
	if lipgloss.Width(wide) != lipgloss.Width(folder) {
		t.Errorf("expected row to end at column %d, got %d", lipgloss.Width(folder), lipgloss.Width(wide))
	}
}

func TestView_CollapsedFolder(t *testing.T) {
	env := newTestEnv(t, tui.AppParams{})
	app := press(env.app, "j", "j", "j", "space")
	lines := viewLines(app)

	if lineWith(lines, "Gamma") != "" {
		t.Error("collapsed folder should hide its groups")
	}
	if !strings.Contains(lines[yWork], "▸ Work") {
		t.Errorf("expected collapsed marker, got %q", lines[yWork])
	}
}

func TestView_ConfirmDeleteModal(t *testing.T) {
	env := newTestEnv(t, tui.AppParams{})
	app := press(env.app, "j", "j", "j", "d")
	out := layout.StripANSI(app.View())

	if !strings.Contains(out, `Delete folder "Work"?`) {
		t.Errorf("expected delete prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "Its 1 groups move to Unsorted.") {
		t.Errorf("expected reassignment note, got:\n%s", out)
	}
}

func TestView_EmptyFilter(t *testing.T) {
	env := newTestEnv(t, tui.AppParams{})
	app := press(env.app, "/", "zzz")

	if !strings.Contains(layout.StripANSI(app.View()), "No matching groups") {
		t.Error("expected empty filter notice")
	}
}
