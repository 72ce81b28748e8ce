package reassemble

// EventType identifies a kind of puzzle event.
type EventType uint8

const (
	EventPartSelected  EventType = iota // a drag started on a part
	EventPartReleased                   // a dragged part was released away from home
	EventPartAssembled                  // a dragged part was released and snapped home
	EventRigRotated                     // a two-finger gesture turned the rig
	EventCompleted                      // every part assembled (fires once)
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventPartSelected:
		return "part_selected"
	case EventPartReleased:
		return "part_released"
	case EventPartAssembled:
		return "part_assembled"
	case EventRigRotated:
		return "rig_rotated"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// PuzzleEvent carries puzzle state changes to an optional EventStore.
type PuzzleEvent struct {
	Type EventType
	// Part is the part index, or NotFound for rig-wide events.
	Part int
	Name string
	// Progress is the state after the event.
	Assembled int
	Total     int
	// YawDelta is set for EventRigRotated, in degrees.
	YawDelta float64
}

// EventStore is the interface for optional ECS integration. When set on a
// Puzzle, puzzle events are forwarded to it.
type EventStore interface {
	EmitEvent(event PuzzleEvent)
}
