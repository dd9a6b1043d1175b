package models

import (
	"fmt"
	"strings"
	"unicode"
)

// World is the catalog of locations and items a game is played in.
//
// Locations are immutable once loaded. Item locations are the only mutable
// part; a World is owned by a single session, use Clone to start another.
type World struct {
	// Start is the location every new game begins in.
	Start string
	// GoalLocation is where ship components have to be installed.
	GoalLocation string
	// ComponentsRequired is the progress needed for the win check.
	ComponentsRequired int

	locations     map[string]*Location
	locationOrder []string
	items         map[string]*Item
	itemOrder     []string
}

// NewWorld builds and validates a World from locations and items, both kept
// in the given order.
//
// Postcondition: Returns a validated World or a non-nil error.
func NewWorld(start, goal string, components int, locations []Location, items []Item) (*World, error) {
	w := &World{
		Start:              start,
		GoalLocation:       goal,
		ComponentsRequired: components,
		locations:          make(map[string]*Location, len(locations)),
		items:              make(map[string]*Item, len(items)),
	}
	for i := range locations {
		loc := locations[i]
		if _, exists := w.locations[loc.ID]; exists {
			return nil, fmt.Errorf("duplicate location id %q", loc.ID)
		}
		w.locations[loc.ID] = &loc
		w.locationOrder = append(w.locationOrder, loc.ID)
	}
	for i := range items {
		it := items[i]
		if _, exists := w.items[it.ID]; exists {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		it.home = it.Location
		w.items[it.ID] = &it
		w.itemOrder = append(w.itemOrder, it.ID)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks that the world is a closed graph: every exit target and
// every item location names a known location.
func (w *World) Validate() error {
	if w.Start == "" {
		return fmt.Errorf("start location must not be empty")
	}
	if _, ok := w.locations[w.Start]; !ok {
		return fmt.Errorf("start location %q: %w", w.Start, ErrNotFound)
	}
	if _, ok := w.locations[w.GoalLocation]; !ok {
		return fmt.Errorf("goal location %q: %w", w.GoalLocation, ErrNotFound)
	}
	if w.ComponentsRequired < 1 {
		return fmt.Errorf("components_required must be >= 1, got %d", w.ComponentsRequired)
	}
	for _, id := range w.locationOrder {
		loc := w.locations[id]
		if id == "" {
			return fmt.Errorf("location id must not be empty")
		}
		if loc.Description == "" {
			return fmt.Errorf("location %q: description must not be empty", id)
		}
		for _, e := range loc.Exits {
			if _, ok := w.locations[e.Target]; !ok {
				return fmt.Errorf("location %q: exit %q targets unknown location %q", id, e.Direction, e.Target)
			}
		}
	}
	for _, id := range w.itemOrder {
		if id == "" {
			return fmt.Errorf("item id must not be empty")
		}
		if _, ok := w.locations[w.items[id].Location]; !ok {
			return fmt.Errorf("item %q: location %q: %w", id, w.items[id].Location, ErrNotFound)
		}
	}
	return nil
}

// GetLocation returns the location with the given id.
func (w *World) GetLocation(id string) (*Location, error) {
	loc, ok := w.locations[id]
	if !ok {
		return nil, fmt.Errorf("location %q: %w", id, ErrNotFound)
	}
	return loc, nil
}

// GetItem returns the item with the given id.
func (w *World) GetItem(id string) (*Item, error) {
	it, ok := w.items[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	return it, nil
}

// ItemsAt returns the ids of items lying at locationID, in catalog order.
// Held items are included if their recorded location matches.
func (w *World) ItemsAt(locationID string) []string {
	var ids []string
	for _, id := range w.itemOrder {
		if w.items[id].Location == locationID {
			ids = append(ids, id)
		}
	}
	return ids
}

// Locations returns every location in catalog order.
func (w *World) Locations() []*Location {
	out := make([]*Location, 0, len(w.locationOrder))
	for _, id := range w.locationOrder {
		out = append(out, w.locations[id])
	}
	return out
}

// Items returns every item in catalog order.
func (w *World) Items() []*Item {
	out := make([]*Item, 0, len(w.itemOrder))
	for _, id := range w.itemOrder {
		out = append(out, w.items[id])
	}
	return out
}

// MoveItem records that itemID now lies at locationID.
func (w *World) MoveItem(itemID, locationID string) error {
	it, err := w.GetItem(itemID)
	if err != nil {
		return err
	}
	if _, err := w.GetLocation(locationID); err != nil {
		return err
	}
	it.Location = locationID
	return nil
}

// ResetItems puts every item back where the world definition placed it.
func (w *World) ResetItems() {
	for _, it := range w.items {
		it.Location = it.home
	}
}

// Clone returns a World sharing the immutable locations but with its own item
// table.
func (w *World) Clone() *World {
	c := &World{
		Start:              w.Start,
		GoalLocation:       w.GoalLocation,
		ComponentsRequired: w.ComponentsRequired,
		locations:          w.locations,
		locationOrder:      w.locationOrder,
		items:              make(map[string]*Item, len(w.items)),
		itemOrder:          w.itemOrder,
	}
	for id, it := range w.items {
		cp := *it
		c.items[id] = &cp
	}
	return c
}

// FormatName turns a camelCase id into a display name: "repairKit" becomes
// "Repair Kit" and "crashSite" becomes "Crash Site".
func FormatName(id string) string {
	var b strings.Builder
	for i, r := range id {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MatchesName reports whether name refers to id, either by the id itself or
// by its display name, ignoring case.
func MatchesName(id, name string) bool {
	return strings.EqualFold(id, name) || strings.EqualFold(FormatName(id), name)
}
