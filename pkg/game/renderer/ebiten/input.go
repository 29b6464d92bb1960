package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "reynard/pkg/engine/input"
)

// keyCodes names the keyboard keys the bindings know about.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyA:          "a",
	ebiten.KeyH:          "h",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyD:          "d",
	ebiten.KeyL:          "l",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyW:          "w",
	ebiten.KeyK:          "k",
	ebiten.KeySpace:      "space",
	ebiten.KeyShift:      "shift",
	ebiten.KeyX:          "x",
	ebiten.KeyU:          "u",
	ebiten.KeyZ:          "z",
	ebiten.KeyTab:        "tab",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyF5:         "f5",
	ebiten.KeyF8:         "f8",
	ebiten.KeyF9:         "f9",
	ebiten.KeyF12:        "f12",
}

// Letter keys are also named so bindings from the tuning file reach them.
func init() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := k.String()
		if _, ok := keyCodes[k]; ok || len(name) != 1 {
			continue
		}
		keyCodes[k] = strings.ToLower(name)
	}
}

// padCodes names the standard-layout gamepad buttons the bindings know about.
var padCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightLeft:   "gamepad_x",
	ebiten.StandardGamepadButtonRightTop:    "gamepad_y",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

// stickDeadZone keeps a resting stick from walking.
const stickDeadZone = 0.5

// intentFor runs a raw event through the debounce and binding layers.
func intentFor(dev engineinput.Device, code string, x, y float64) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: dev,
		Code:   code,
		X:      x,
		Y:      y,
	}))
}

// readFrame collects this tick's input. Movement actions count while their
// key is down; everything else only on the tick it was pressed.
func (v *Viewer) readFrame() engineinput.Frame {
	frame := engineinput.NewFrame()

	for key, code := range keyCodes {
		in := intentFor(engineinput.DeviceKeyboard, code, 0, 0)
		if engineinput.IsHeld(in.Action) {
			if ebiten.IsKeyPressed(key) {
				frame.Add(in)
			}
		} else if inpututil.IsKeyJustPressed(key) {
			frame.Add(in)
		}
	}

	cx, cy := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Add(intentFor(engineinput.DeviceMouse, "mouse_left", float64(cx), float64(cy)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		frame.Add(intentFor(engineinput.DeviceMouse, "mouse_right", float64(cx), float64(cy)))
	}

	v.readGamepads(&frame)
	return frame
}

// readGamepads adds the input of every connected standard-layout gamepad.
func (v *Viewer) readGamepads(frame *engineinput.Frame) {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range padCodes {
			in := intentFor(engineinput.DeviceGamepad, code, 0, 0)
			if engineinput.IsHeld(in.Action) {
				if ebiten.IsStandardGamepadButtonPressed(id, button) {
					frame.Add(in)
				}
			} else if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				frame.Add(in)
			}
		}

		stickX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch {
		case stickX < -stickDeadZone:
			frame.Add(intentFor(engineinput.DeviceGamepad, "gamepad_dpad_left", 0, 0))
		case stickX > stickDeadZone:
			frame.Add(intentFor(engineinput.DeviceGamepad, "gamepad_dpad_right", 0, 0))
		}
	}
}
