// Package ecs provides ECS adapters for reassemble's puzzle events.
//
// The primary adapter is [NewDonburiStore], which bridges puzzle events
// (part selected, released, assembled, rig rotated, completed) into a
// [Donburi] world as typed events. Subscribe to [PuzzleEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	puzzle.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
