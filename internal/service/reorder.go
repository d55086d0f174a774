package service

import "publicdashboard/internal/storage"

// Direction is the way a dashboard moves in the position order.
type Direction int

const (
	// Up moves a dashboard one slot towards the start of the list.
	Up Direction = -1
	// Down moves a dashboard one slot towards the end of the list.
	Down Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// swapWithNeighbor finds id in ordered and exchanges its position with the
// neighbor in direction dir. It returns the two updated records, neighbor first.
// ok is false when id is absent or already at the edge the move points to;
// nothing is changed in that case.
//
// ordered must be sorted by position; ordered itself is not modified.
func swapWithNeighbor(ordered []storage.Dashboard, id int, dir Direction) (neighbor, target storage.Dashboard, ok bool) {
	index := -1
	for i, d := range ordered {
		if d.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return storage.Dashboard{}, storage.Dashboard{}, false
	}

	next := index + int(dir)
	if next < 0 || next >= len(ordered) {
		return storage.Dashboard{}, storage.Dashboard{}, false
	}

	target, neighbor = ordered[index], ordered[next]
	target.Position, neighbor.Position = neighbor.Position, target.Position
	return neighbor, target, true
}
