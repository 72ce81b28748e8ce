package ecs

import (
	"testing"

	"github.com/phanxgames/reassemble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
	st, ok := Stats(world)
	if !ok {
		t.Fatal("expected an AssemblyStats entity")
	}
	if st != (AssemblyStats{}) {
		t.Errorf("initial stats = %+v, want zero", st)
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []reassemble.PuzzleEvent
	PuzzleEventType.Subscribe(world, func(w donburi.World, e reassemble.PuzzleEvent) {
		received = append(received, e)
	})

	store.EmitEvent(reassemble.PuzzleEvent{
		Type: reassemble.EventPartSelected,
		Part: 3,
		Name: "armor_part_2",
	})
	store.EmitEvent(reassemble.PuzzleEvent{
		Type:     reassemble.EventRigRotated,
		Part:     reassemble.NotFound,
		YawDelta: -2,
	})

	// Events are queued; process them.
	PuzzleEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != reassemble.EventPartSelected || e.Part != 3 || e.Name != "armor_part_2" {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != reassemble.EventRigRotated || e.YawDelta != -2 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_TracksStats(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	store.EmitEvent(reassemble.PuzzleEvent{Type: reassemble.EventPartAssembled, Part: 0, Assembled: 1, Total: 9})
	st, _ := Stats(world)
	if st.Assembled != 1 || st.Total != 9 || st.Completed {
		t.Errorf("after assemble: %+v", st)
	}

	store.EmitEvent(reassemble.PuzzleEvent{Type: reassemble.EventPartReleased, Part: 0, Assembled: 0, Total: 9})
	st, _ = Stats(world)
	if st.Assembled != 0 {
		t.Errorf("after release: Assembled = %d, want 0", st.Assembled)
	}

	store.EmitEvent(reassemble.PuzzleEvent{Type: reassemble.EventCompleted, Part: reassemble.NotFound, Assembled: 9, Total: 9})
	st, _ = Stats(world)
	if !st.Completed || st.Assembled != 9 {
		t.Errorf("after completion: %+v", st)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store reassemble.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	PuzzleEventType.Subscribe(world, func(w donburi.World, e reassemble.PuzzleEvent) {
		count1++
	})
	PuzzleEventType.Subscribe(world, func(w donburi.World, e reassemble.PuzzleEvent) {
		count2++
	})

	store.EmitEvent(reassemble.PuzzleEvent{Type: reassemble.EventCompleted})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
