package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/rum/internal/folders"
	"github.com/nikbrunner/rum/internal/groups"
	"github.com/nikbrunner/rum/internal/model"
	"github.com/nikbrunner/rum/internal/picker"
	"github.com/nikbrunner/rum/internal/search"
	"github.com/nikbrunner/rum/internal/storage"
	"github.com/nikbrunner/rum/internal/tui"
)

func main() {
	var err error
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "folders":
			err = runFolders()
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			err = runQuickFind(query)
		}
	} else {
		// No args - run full TUI
		err = runTUI()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `rum - group sidebar organizer

Usage:
  rum                   Open interactive sidebar
  rum <query>           Fuzzy find a group and show its folder
  rum folders           Print folders and their groups
  rum help              Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    gg/G        Jump to top/bottom
    space       Expand/collapse folder

  Organizing:
    J/K         Move folder or group down/up
    mouse drag  Reorder folders, move groups between folders
    A           Add folder
    e           Rename folder
    d           Delete folder (groups move to Unsorted)

  Other:
    v           Toggle list/grid
    /           Filter groups
    Y           Copy group ID to clipboard
    q           Quit

Data Storage:
  ~/.config/rum/config.json
  ~/.config/rum/sidebar.json (or sidebar.db with the sqlite backend)
`
	fmt.Print(help)
}

// sidebar is everything loaded for one run.
type sidebar struct {
	config  *storage.Config
	storage storage.Storage
	store   *folders.Store
	groups  []model.Group
}

func (s sidebar) close() {
	if c, ok := s.storage.(io.Closer); ok {
		_ = c.Close()
	}
}

// loadConfig reads the config file, creating it with defaults on first run.
func loadConfig() (*storage.Config, error) {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}

	config, err := storage.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return config, nil
}

// openSidebar opens storage and groups, then reconciles the folder list
// with the current groups. Storage is closed again on failure.
func openSidebar(config *storage.Config, logger *slog.Logger) (sidebar, error) {
	st, err := storage.OpenStorage(config)
	if err != nil {
		return sidebar{}, fmt.Errorf("opening storage: %w", err)
	}
	s := sidebar{config: config, storage: st}

	s.groups, err = groups.LoadFile(config.GroupsFile)
	if err != nil {
		s.close()
		return sidebar{}, fmt.Errorf("loading groups: %w", err)
	}

	s.store, err = folders.Open(folders.Params{
		Storage:  st,
		Identity: config.Identity,
		Logger:   logger,
	})
	if err != nil {
		s.close()
		return sidebar{}, fmt.Errorf("loading folders: %w", err)
	}

	if err := s.store.Initialize(model.GroupIDs(s.groups)); err != nil {
		s.close()
		return sidebar{}, fmt.Errorf("initializing folders: %w", err)
	}

	return s, nil
}

func stderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// runTUI runs the full interactive sidebar.
func runTUI() error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, log to a file instead
	logFile, err := tea.LogToFile(config.LogFile, "rum")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	s, err := openSidebar(config, logger)
	if err != nil {
		logger.Error("opening sidebar", "error", err)
		return err
	}
	defer s.close()

	app := tui.NewApp(tui.AppParams{
		Store:             s.store,
		Groups:            s.groups,
		Storage:           s.storage,
		Logger:            logger,
		SkipDeleteConfirm: config.SkipDeleteConfirm,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("running app", "error", err)
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

// openFromConfig loads the config and opens the sidebar for the
// non-interactive commands.
func openFromConfig() (sidebar, error) {
	config, err := loadConfig()
	if err != nil {
		return sidebar{}, err
	}
	return openSidebar(config, stderrLogger())
}

// runFolders prints every folder with its groups.
func runFolders() error {
	s, err := openFromConfig()
	if err != nil {
		return err
	}
	defer s.close()

	byID := groups.ByID(s.groups)
	badges := folders.UnreadByFolder(s.store.List(), model.UnreadCounts(s.groups))

	for _, f := range s.store.List() {
		line := fmt.Sprintf("%s (%d)", f.DisplayName(), len(f.Items))
		if n := badges[f.ID]; n > 0 {
			line += fmt.Sprintf(" [%d unread]", n)
		}
		fmt.Println(line)

		for _, id := range f.Items {
			name := id
			if g, ok := byID[id]; ok {
				name = g.GroupName
			}
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

// runQuickFind fuzzy searches groups and prints the folder of the selected one.
func runQuickFind(query string) error {
	s, err := openFromConfig()
	if err != nil {
		return err
	}
	defer s.close()

	results := search.FuzzySearchGroups(s.groups, query)

	if len(results) == 0 {
		fmt.Printf("No groups found for '%s'\n", query)
		return nil
	}

	folderNames := make(map[string]string, len(results))
	for _, r := range results {
		if f, ok := s.store.OwnerOf(r.Group.GroupID); ok {
			folderNames[r.Group.GroupID] = f.DisplayName()
		}
	}

	var selected *model.Group

	if len(results) == 1 {
		// Single result - select it directly
		selected = &results[0].Group
	} else {
		// Multiple results - show picker
		p := picker.New(results, query, folderNames)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			return fmt.Errorf("running picker: %w", err)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return nil
		}
		selected = finalPicker.SelectedGroup()
	}

	if selected == nil {
		return nil
	}

	fmt.Printf("%s\t%s\t%s\n", selected.GroupName, folderNames[selected.GroupID], selected.GroupID)
	return nil
}
