package folders_test

import (
	"fmt"
	"testing"

	"github.com/nikbrunner/rum/internal/folders"
	"github.com/nikbrunner/rum/internal/model"
	"pgregory.net/rapid"
)

var groupIDGen = rapid.Custom(func(t *rapid.T) string {
	return fmt.Sprintf("g%d", rapid.IntRange(0, 30).Draw(t, "n"))
})

// folderSetGen draws arbitrary, possibly inconsistent stored folder lists.
var folderSetGen = rapid.Custom(func(t *rapid.T) []model.Folder {
	n := rapid.IntRange(0, 5).Draw(t, "folders")
	result := make([]model.Folder, 0, n+1)
	if rapid.Bool().Draw(t, "hasDefault") {
		result = append(result, model.NewDefaultFolder(rapid.SliceOfN(groupIDGen, 0, 6).Draw(t, "defaultItems")))
	}
	for i := 0; i < n; i++ {
		result = append(result, model.Folder{
			ID:    fmt.Sprintf("f%d", i),
			Name:  fmt.Sprintf("Folder %d", i),
			Items: rapid.SliceOfN(groupIDGen, 0, 6).Draw(t, "items"),
		})
	}
	return result
})

func openRapidStore(t *rapid.T, seed []model.Folder) *folders.Store {
	mem := newMemStorage()
	mem.folders["alice"] = model.CloneFolders(seed)
	s, err := folders.Open(folders.Params{Storage: mem, Identity: "alice", Logger: quietLogger()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

// checkMembership fails if a group is filed twice or an unknown group is
// filed. With exact set, every group in all must be filed.
func checkMembership(t *rapid.T, list []model.Folder, all []string, exact bool) {
	known := make(map[string]bool, len(all))
	for _, id := range all {
		known[id] = true
	}
	count := make(map[string]int)
	for _, f := range list {
		for _, id := range f.Items {
			count[id]++
			if !known[id] {
				t.Fatalf("folder %s holds unknown group %s", f.ID, id)
			}
		}
	}
	for _, id := range all {
		if count[id] > 1 || (exact && count[id] != 1) {
			t.Fatalf("group %s filed %d times", id, count[id])
		}
	}
}

func TestProperty_InitializeSweep(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := folderSetGen.Draw(t, "seed")
		all := rapid.SliceOfDistinct(groupIDGen, rapid.ID[string]).Draw(t, "groups")

		s := openRapidStore(t, seed)
		if err := s.Initialize(all); err != nil {
			t.Fatalf("initialize: %v", err)
		}

		list := s.List()
		checkMembership(t, list, all, true)

		defaults := 0
		for _, f := range list {
			if f.IsDefault() {
				defaults++
			}
		}
		if defaults != 1 {
			t.Fatalf("expected exactly one default folder, got %d", defaults)
		}

		if s.Index().Len() != len(all) {
			t.Fatalf("index has %d entries, want %d", s.Index().Len(), len(all))
		}
	})
}

func TestProperty_NoDuplicateMembership(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := folderSetGen.Draw(t, "seed")
		all := rapid.SliceOfDistinct(groupIDGen, rapid.ID[string]).Draw(t, "groups")

		s := openRapidStore(t, seed)
		if err := s.Initialize(all); err != nil {
			t.Fatalf("initialize: %v", err)
		}

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			list := s.List()
			folder := rapid.SampledFrom(list).Draw(t, "folder")

			switch rapid.IntRange(0, 5).Draw(t, "op") {
			case 0:
				_, _ = s.AddEmpty()
			case 1:
				_ = s.Remove(folder.ID)
			case 2:
				if len(all) > 0 {
					g := rapid.SampledFrom(all).Draw(t, "group")
					_ = s.Move(g, folder.ID, rapid.IntRange(0, 10).Draw(t, "index"))
				}
			case 3:
				if len(folder.Items) > 1 {
					from := rapid.IntRange(0, len(folder.Items)-1).Draw(t, "from")
					to := rapid.IntRange(0, len(folder.Items)-1).Draw(t, "to")
					_ = s.MoveItem(folder.ID, from, to)
				}
			case 4:
				ids := folderIDs(list)
				perm := rapid.Permutation(ids).Draw(t, "order")
				_ = s.Reorder(perm)
			case 5:
				items := rapid.Permutation(folder.Items).Draw(t, "reordered")
				if len(all) > 0 && rapid.Bool().Draw(t, "arbitrary") {
					items = rapid.SliceOfNDistinct(rapid.SampledFrom(all), 0, 3, rapid.ID[string]).Draw(t, "items")
				}
				_ = s.Update(folder.ID, model.FolderPatch{Items: items})
			}

			checkMembership(t, s.List(), all, true)
		}
	})
}
