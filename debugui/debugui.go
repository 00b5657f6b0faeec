// Package debugui provides a Dear ImGui inspector for a running session. It
// exposes the game state, session statistics and scheduler timings as imgui
// windows rendered by a loop system.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Use this to keep game keys from firing while a widget has focus.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render functions of its items to the end of the
// frame and records the current input capture state.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// CapturesKeyboard reports whether imgui wanted the keyboard on the last
// frame. It fits input.Keyboard's Captured hook.
func (i *ImguiSystem) CapturesKeyboard() bool {
	return i.InputState.WantCaptureKeyboard
}

// NewInspector returns an ImguiSystem with the standard windows for the
// session driven by scheduler.
func NewInspector(scheduler *loop.Scheduler) *ImguiSystem {
	history := NewHistory(historySize)
	return &ImguiSystem{
		Items: []ImguiItem{
			{Render: func() { renderGameWindow(scheduler.Game()) }},
			{Render: func() { renderStatsWindow(scheduler.Game()) }},
			{Render: func() { renderSchedulerWindow(scheduler) }},
			{Render: func() {
				g := scheduler.Game()
				history.Push(float32(g.Score()), float32(g.Stats().Lines))
				renderHistoryWindow(history)
			}},
		},
	}
}
