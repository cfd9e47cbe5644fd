// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventPointerDown
	EventPointerMove
	EventPointerUp
)

// MousePointer is the pointer id used for the mouse. Touch fingers use
// their SDL finger id.
const MousePointer int64 = -1

// touchMouseID marks mouse events synthesized from touch input.
const touchMouseID = ^uint32(0)

// Event represents a processed input event. Pointer positions are in
// window pixels with the origin at the top-left.
type Event struct {
	Type    EventType
	Key     sdl.Scancode
	Width   int
	Height  int
	X       float32
	Y       float32
	Pointer int64
}

// Input handles all input processing.
type Input struct {
	events []Event
	width  int
	height int
}

// New creates a new input handler for a window of the given size.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// Update polls SDL events and converts them to application events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.width, i.height = int(e.Data1), int(e.Data2)
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  i.width,
					Height: i.height,
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			// Touch input is reported separately as finger events.
			if e.Which == touchMouseID || e.State == 0 {
				continue
			}
			i.events = append(i.events, Event{
				Type:    EventPointerMove,
				X:       float32(e.X),
				Y:       float32(e.Y),
				Pointer: MousePointer,
			})

		case *sdl.MouseButtonEvent:
			if e.Which == touchMouseID || e.Button != sdl.BUTTON_LEFT {
				continue
			}
			typ := EventPointerDown
			if e.Type == sdl.MOUSEBUTTONUP {
				typ = EventPointerUp
			}
			i.events = append(i.events, Event{
				Type:    typ,
				X:       float32(e.X),
				Y:       float32(e.Y),
				Pointer: MousePointer,
			})

		case *sdl.TouchFingerEvent:
			var typ EventType
			switch e.Type {
			case sdl.FINGERDOWN:
				typ = EventPointerDown
			case sdl.FINGERMOTION:
				typ = EventPointerMove
			case sdl.FINGERUP:
				typ = EventPointerUp
			default:
				continue
			}
			// Finger coordinates are normalized to the window.
			i.events = append(i.events, Event{
				Type:    typ,
				X:       e.X * float32(i.width),
				Y:       e.Y * float32(i.height),
				Pointer: int64(e.FingerID),
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
