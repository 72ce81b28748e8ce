package ecs

import (
	"github.com/phanxgames/reassemble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PuzzleEventType is the Donburi event type for reassemble puzzle events.
var PuzzleEventType = events.NewEventType[reassemble.PuzzleEvent]()

// AssemblyStats is a component that mirrors puzzle progress on an entity so
// ECS systems can query it without holding the Puzzle.
type AssemblyStats struct {
	Assembled int
	Total     int
	Completed bool
}

// AssemblyStatsComponent is the Donburi component type for AssemblyStats.
var AssemblyStatsComponent = donburi.NewComponentType[AssemblyStats]()

type donburiStore struct {
	world donburi.World
	stats donburi.Entity
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// published to PuzzleEventType and can be consumed with Subscribe and
// ProcessEvents. The store also creates one entity holding AssemblyStats,
// updated as release and completion events arrive.
func NewDonburiStore(world donburi.World) reassemble.EventStore {
	return &donburiStore{
		world: world,
		stats: world.Create(AssemblyStatsComponent),
	}
}

func (s *donburiStore) EmitEvent(event reassemble.PuzzleEvent) {
	switch event.Type {
	case reassemble.EventPartAssembled, reassemble.EventPartReleased, reassemble.EventCompleted:
		if entry := s.world.Entry(s.stats); entry != nil {
			st := AssemblyStatsComponent.Get(entry)
			st.Assembled = event.Assembled
			st.Total = event.Total
			if event.Type == reassemble.EventCompleted {
				st.Completed = true
			}
		}
	}
	PuzzleEventType.Publish(s.world, event)
}

// Stats returns the AssemblyStats entity's current value in world, or false
// if the world has none.
func Stats(world donburi.World) (AssemblyStats, bool) {
	entry, ok := AssemblyStatsComponent.First(world)
	if !ok {
		return AssemblyStats{}, false
	}
	return *AssemblyStatsComponent.Get(entry), true
}
