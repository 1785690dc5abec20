package hotel

import "time"

// SearchStrategy selects rooms from a snapshot of the catalog. Strategies are
// pure reads built on Room.Available; they must treat the slice as read-only.
type SearchStrategy interface {
	Search(rooms []*Room, style RoomStyle, start time.Time, nights int) []*Room
}

// AvailabilitySearch matches rooms open over the requested window. Style is
// an optional extra filter; empty matches every style.
type AvailabilitySearch struct{}

func (AvailabilitySearch) Search(rooms []*Room, style RoomStyle, start time.Time, nights int) []*Room {
	var out []*Room
	for _, r := range rooms {
		if !r.Available(start, nights) {
			continue
		}
		if style != "" && r.Style() != style {
			continue
		}
		out = append(out, r)
	}
	return out
}

// StyleSearch matches rooms of exactly the given style that are open over the
// requested window.
type StyleSearch struct{}

func (StyleSearch) Search(rooms []*Room, style RoomStyle, start time.Time, nights int) []*Room {
	var out []*Room
	for _, r := range rooms {
		if r.Style() != style {
			continue
		}
		if !r.Available(start, nights) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Search snapshots the current room catalog in registration order and applies
// the strategy. The result is stable for a given snapshot; no ordering beyond
// that is guaranteed. A nil strategy defaults to AvailabilitySearch.
func (h *Hotel) Search(strategy SearchStrategy, style RoomStyle, start time.Time, nights int) []*Room {
	if strategy == nil {
		strategy = AvailabilitySearch{}
	}
	return strategy.Search(h.roomsSnapshot(), style, start, nights)
}
