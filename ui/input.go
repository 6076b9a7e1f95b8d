package ui

import (
	"ant-colony/game"
	"ant-colony/ui/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PollEvents translates this frame's mouse and keyboard input into
// simulation events. Mouse buttons paint while held.
func PollEvents(v viewport.Viewport) []game.Event {
	var events []game.Event

	mouse := rl.GetMousePosition()
	if cell, ok := v.ScreenToCell(int32(mouse.X), int32(mouse.Y)); ok {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			events = append(events, game.Event{Type: game.EventPlaceFood, Cell: cell})
		}
		if rl.IsMouseButtonDown(rl.MouseRightButton) {
			events = append(events, game.Event{Type: game.EventPlaceTerrain, Cell: cell})
		}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		events = append(events, game.Event{Type: game.EventTogglePause})
	}
	if rl.IsKeyPressed(rl.KeyR) {
		events = append(events, game.Event{Type: game.EventReset})
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		events = append(events, game.Event{Type: game.EventQuit})
	}
	return events
}
