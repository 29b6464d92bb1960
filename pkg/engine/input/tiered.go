package input

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement (held)
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash

	// Rooms (pressed, pointer actions carry a screen position)
	ActionSelectRoom
	ActionSwapRoom
	ActionUndoSwap
	ActionToggleZoom

	// Meta / UI
	ActionQuit
	ActionScreenshot
	ActionDevMap       // Switch to the developer test level (F9)
	ActionDebugMapDump // Write the grid and actors to map.txt (F8)
	ActionResetLevel   // Reset current level (F5)
)

// held lists the actions that stay active for as long as the key is down.
var held = map[Action]bool{
	ActionMoveLeft:  true,
	ActionMoveRight: true,
	ActionJump:      true,
	ActionDash:      true,
}

// IsHeld reports whether a is a continuous action rather than a press.
func IsHeld(a Action) bool {
	return held[a]
}

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Pointer actions carry the screen position they happened at.
type Intent struct {
	Action Action
	X, Y   float64
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "KeyW", "arrow_up", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	X, Y      float64
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten and terminal raw mode already report one event per press, so this
// is a thin layer kept for key‑repeat suppression later.
type DebouncedInput struct {
	Device Device
	Code   string
	X, Y   float64
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		X:      raw.X,
		Y:      raw.Y,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,
	"arrow_up":    ActionJump,
	"w":           ActionJump,
	"k":           ActionJump,
	"space":       ActionJump,
	"shift":       ActionDash,
	"x":           ActionDash,

	// Rooms
	"mouse_left":  ActionSelectRoom,
	"mouse_right": ActionSwapRoom,
	"u":           ActionUndoSwap,
	"z":           ActionToggleZoom,
	"tab":         ActionToggleZoom,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	"screenshot": ActionScreenshot,
	"f12":        ActionScreenshot,
	"f9":         ActionDevMap,
	"f8":         ActionDebugMapDump,
	"f5":         ActionResetLevel,

	// Controller/gamepad specific bindings
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_a":          ActionJump,
	"gamepad_x":          ActionDash,
	"gamepad_y":          ActionToggleZoom,
	"gamepad_b":          ActionUndoSwap,
	"gamepad_start":      ActionResetLevel,
}

// reserved codes can never be rebound.
var reserved = map[string]bool{
	"arrow_left": true, "arrow_right": true, "arrow_up": true,
	"mouse_left": true, "mouse_right": true,
}

// IsReserved reports whether code is one of the fixed bindings.
func IsReserved(code string) bool {
	return reserved[code]
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, X: ev.X, Y: ev.Y}
	}
	return Intent{Action: ActionNone}
}

// Frame is everything the player asked for during one frame: the held
// movement actions and the pressed actions in the order they arrived.
type Frame struct {
	Held    mapset.Set[Action]
	Pressed []Intent
}

// NewFrame returns an empty frame.
func NewFrame() Frame {
	return Frame{Held: mapset.New[Action]()}
}

// Add routes an intent to Held or Pressed.
func (f *Frame) Add(in Intent) {
	switch {
	case in.Action == ActionNone:
	case IsHeld(in.Action):
		f.Held.Put(in.Action)
	default:
		f.Pressed = append(f.Pressed, in)
	}
}

// IsDown reports whether a held action is active this frame.
func (f Frame) IsDown(a Action) bool {
	return f.Held.Has(a)
}

// Axis returns -1, 0 or +1 from the left/right movement actions.
func (f Frame) Axis() float64 {
	x := 0.0
	if f.IsDown(ActionMoveLeft) {
		x--
	}
	if f.IsDown(ActionMoveRight) {
		x++
	}
	return x
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionJump:
		return "Jump"
	case ActionDash:
		return "Dash"
	case ActionSelectRoom:
		return "Select Room"
	case ActionSwapRoom:
		return "Swap Room"
	case ActionUndoSwap:
		return "Undo Swap"
	case ActionToggleZoom:
		return "Toggle Zoom"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDevMap:
		return "Dev Map"
	case ActionDebugMapDump:
		return "Map Dump"
	case ActionResetLevel:
		return "Reset Level"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all rebindable codes of the given action with a
// single code. Reserved codes are neither removed nor reassigned.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if a == action && !reserved[c] {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// SetBindings overlays code -> action bindings, e.g. from a config file.
// Unknown action names are ignored and returned.
func SetBindings(byName map[string]string) (unknown []string) {
	names := make(map[string]Action)
	for a := ActionMoveLeft; a <= ActionResetLevel; a++ {
		names[ActionName(a)] = a
	}
	for code, name := range byName {
		a, ok := names[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if !reserved[code] {
			bindings[code] = a
		}
	}
	sort.Strings(unknown)
	return unknown
}
