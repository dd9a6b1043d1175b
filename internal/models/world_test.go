package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testWorld(t *testing.T) *World {
	t.Helper()
	w, err := DefaultWorld()
	require.NoError(t, err)
	return w
}

func TestDefaultWorld(t *testing.T) {
	w := testWorld(t)
	assert.Equal(t, "ship", w.Start)
	assert.Equal(t, "ship", w.GoalLocation)
	assert.Equal(t, 3, w.ComponentsRequired)
	assert.Len(t, w.Locations(), 8)
	assert.Len(t, w.Items(), 4)

	ship, err := w.GetLocation("ship")
	require.NoError(t, err)
	assert.Equal(t, "You are in the command center of your crashed spaceship. Emergency lights flicker ominously. Systems appear to be offline. There is a door to the north leading outside.", ship.Description)
	assert.Equal(t, []Exit{{Direction: "north", Target: "crashSite"}}, ship.Exits)
}

func TestWorld_ExitsKeepDefinitionOrder(t *testing.T) {
	w := testWorld(t)
	site, err := w.GetLocation("crashSite")
	require.NoError(t, err)

	var dirs []string
	for _, e := range site.Exits {
		dirs = append(dirs, e.Direction)
	}
	assert.Equal(t, []string{"south", "east", "west"}, dirs)
}

func TestWorld_GetLocationNotFound(t *testing.T) {
	w := testWorld(t)
	_, err := w.GetLocation("moon")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorld_GetItemNotFound(t *testing.T) {
	w := testWorld(t)
	_, err := w.GetItem("laserSword")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorld_ItemsAt(t *testing.T) {
	w := testWorld(t)
	assert.Equal(t, []string{"repairKit"}, w.ItemsAt("ship"))
	assert.Equal(t, []string{"powerCell"}, w.ItemsAt("cave"))
	assert.Empty(t, w.ItemsAt("forest"))
}

func TestWorld_MoveAndResetItems(t *testing.T) {
	w := testWorld(t)
	require.NoError(t, w.MoveItem("powerCell", "ship"))
	assert.Equal(t, []string{"powerCell", "repairKit"}, w.ItemsAt("ship"))
	assert.Empty(t, w.ItemsAt("cave"))

	w.ResetItems()
	assert.Equal(t, []string{"repairKit"}, w.ItemsAt("ship"))
	assert.Equal(t, []string{"powerCell"}, w.ItemsAt("cave"))
}

func TestWorld_MoveItemUnknown(t *testing.T) {
	w := testWorld(t)
	assert.ErrorIs(t, w.MoveItem("nothing", "ship"), ErrNotFound)
	assert.ErrorIs(t, w.MoveItem("powerCell", "nowhere"), ErrNotFound)
}

func TestWorld_CloneHasOwnItemTable(t *testing.T) {
	w := testWorld(t)
	c := w.Clone()
	require.NoError(t, c.MoveItem("repairKit", "forest"))

	assert.Equal(t, []string{"repairKit"}, w.ItemsAt("ship"))
	assert.Equal(t, []string{"repairKit"}, c.ItemsAt("forest"))

	c.ResetItems()
	assert.Equal(t, []string{"repairKit"}, c.ItemsAt("ship"))
}

func TestPropertyEveryExitTargetExists(t *testing.T) {
	w := testWorld(t)
	locs := w.Locations()
	rapid.Check(t, func(rt *rapid.T) {
		loc := locs[rapid.IntRange(0, len(locs)-1).Draw(rt, "loc_idx")]
		for _, e := range loc.Exits {
			if _, err := w.GetLocation(e.Target); err != nil {
				rt.Fatalf("location %q exit %q targets unknown %q", loc.ID, e.Direction, e.Target)
			}
		}
	})
}

func TestNewWorld_DanglingExit(t *testing.T) {
	_, err := NewWorld("a", "a", 1,
		[]Location{{ID: "a", Description: "A", Exits: []Exit{{Direction: "north", Target: "b"}}}},
		nil,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown location")
}

func TestNewWorld_DuplicateLocation(t *testing.T) {
	_, err := NewWorld("a", "a", 1,
		[]Location{{ID: "a", Description: "A"}, {ID: "a", Description: "again"}},
		nil,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate location id")
}

func TestNewWorld_ItemInUnknownLocation(t *testing.T) {
	_, err := NewWorld("a", "a", 1,
		[]Location{{ID: "a", Description: "A"}},
		[]Item{{ID: "rock", Description: "A rock.", Location: "b"}},
	)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewWorld_MissingStart(t *testing.T) {
	_, err := NewWorld("z", "a", 1, []Location{{ID: "a", Description: "A"}}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadWorldFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
world:
  start: hut
  components_required: 1
  locations:
    - id: hut
      description: |
        A small hut.
      exits:
        - direction: out
          target: yard
    - id: yard
      description: A muddy yard.
      exits:
        - direction: in
          target: hut
  items:
    - id: oldBoot
      description: A boot.
      location: yard
`), 0o644))

	w, err := LoadWorldFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hut", w.Start)
	assert.Equal(t, "hut", w.GoalLocation, "goal defaults to start")

	hut, err := w.GetLocation("hut")
	require.NoError(t, err)
	assert.Equal(t, "A small hut.", hut.Description)
	assert.Equal(t, []string{"oldBoot"}, w.ItemsAt("yard"))
}

func TestLoadWorldFromFile_Missing(t *testing.T) {
	_, err := LoadWorldFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadWorldFromBytes_Invalid(t *testing.T) {
	_, err := LoadWorldFromBytes([]byte("world: [unterminated"))
	assert.Error(t, err)
}

func TestLoadWorld_EmptyPathUsesDefault(t *testing.T) {
	w, err := LoadWorld("")
	require.NoError(t, err)
	assert.Equal(t, "ship", w.Start)
}

func TestFormatName(t *testing.T) {
	tests := map[string]string{
		"repairKit":     "Repair Kit",
		"crashSite":     "Crash Site",
		"alienArtifact": "Alien Artifact",
		"ship":          "Ship",
		"riverBank":     "River Bank",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatName(in), "FormatName(%q)", in)
	}
}

func TestMatchesName(t *testing.T) {
	assert.True(t, MatchesName("repairKit", "repair kit"))
	assert.True(t, MatchesName("repairKit", "repairkit"))
	assert.True(t, MatchesName("repairKit", "REPAIR KIT"))
	assert.False(t, MatchesName("repairKit", "repair"))
	assert.False(t, MatchesName("repairKit", "repair  kit"))
}
