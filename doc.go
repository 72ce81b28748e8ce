// Package reassemble implements the interaction core of a 3D reassembly
// puzzle: a multi-part object is exploded into scattered poses at startup,
// the player drags each part back toward its original pose, parts released
// close enough snap home, and a one-time completion event fires when every
// part is assembled.
//
// Rendering, particles, audio playback and animation are external. The
// package talks to them through small interfaces: [Handle] for part
// transforms, [RayCaster] for picking, [View] for the camera, [PointerSource]
// for input and [EffectSink] for presentation.
//
// # Quick start
//
// Build a [Rig] (or adapt your engine's transforms to [Handle]), pick an
// input source, and call [Puzzle.Update] once per tick:
//
//	rig := reassemble.NewReferenceRig()
//	cam := reassemble.NewCamera(reassemble.Vec3{0, 1, -6}, reassemble.Vec3{0, 1, 0},
//		reassemble.Rect{Width: 960, Height: 640})
//	puzzle, err := reassemble.NewPuzzle(reassemble.Options{
//		Provider: rig,
//		View:     cam,
//		Caster:   reassemble.NewSphereCaster(rig.Parts()...),
//		Source:   reassemble.MouseSource{},
//		Effects:  &reassemble.Collaborators{Status: statusLabel},
//	})
//	// every tick:
//	puzzle.Update(1.0 / 60)
//
// # Input
//
// Every physical source drives the same [PointerHandler] contract, so the
// [InputController] state machine (Idle, Dragging, Rotating) is written once.
// [MouseSource] and [TouchSource] read ebiten; [ScriptedSource] and
// [TestRunner] replay synthetic input for tests and demos. A script's
// "screenshot" steps go to [TestRunner.OnScreenshot]; [ScreenshotQueue] writes
// them out as PNG files at the end of the next draw.
//
// A press on a part starts a drag on a plane facing the camera through the
// part's position. Each held tick the part moves 20% of the way toward the
// pointer. On release the part snaps home and is marked assembled if it is
// within the snap distance (0.3 by default); otherwise it is marked
// unassembled, even if it was assembled before.
//
// With a touch source, two simultaneous touches turn the rig instead
// (-deltaX * 0.2 degrees per tick) and never select a part.
//
// # Timed behaviors
//
// The explode tweens, the mission intro and the delayed confetti sound are
// tasks on a [Scheduler] polled by [Puzzle.Update]. Each task keeps its own
// elapsed time; nothing runs on another goroutine.
//
// # Configuration
//
// [Load] reads a TOML file over [DefaultConfig]. The explode offset table can
// be replaced with a YAML file ([LoadOffsetTable]).
package reassemble
