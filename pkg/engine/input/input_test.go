package input

import "testing"

func TestMapToIntent_CarriesPointer(t *testing.T) {
	in := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceMouse, Code: "mouse_right", X: 12, Y: 34}))
	if in.Action != ActionSwapRoom || in.X != 12 || in.Y != 34 {
		t.Errorf("MapToIntent = %+v, want swap at (12,34)", in)
	}
	if got := MapToIntent(DebouncedInput{Code: "nope"}); got.Action != ActionNone {
		t.Errorf("unknown code mapped to %v", got.Action)
	}
}

func TestFrame_HeldAndPressed(t *testing.T) {
	f := NewFrame()
	for _, code := range []string{"arrow_left", "space", "mouse_left", "nope", "u"} {
		f.Add(MapToIntent(DebouncedInput{Code: code}))
	}
	if !f.IsDown(ActionMoveLeft) || !f.IsDown(ActionJump) {
		t.Errorf("held actions missing")
	}
	if f.Axis() != -1 {
		t.Errorf("Axis = %v, want -1", f.Axis())
	}
	f.Add(Intent{Action: ActionMoveRight})
	if f.Axis() != 0 {
		t.Errorf("Axis with both directions = %v, want 0", f.Axis())
	}
	if len(f.Pressed) != 2 || f.Pressed[0].Action != ActionSelectRoom || f.Pressed[1].Action != ActionUndoSwap {
		t.Errorf("Pressed = %+v", f.Pressed)
	}
}

func TestSetSingleBinding_KeepsReserved(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	t.Cleanup(func() { bindings = saved })

	SetSingleBinding(ActionMoveLeft, "j")
	codes := GetBindingsByAction()[ActionMoveLeft]
	want := []string{"arrow_left", "j"}
	if len(codes) != len(want) || codes[0] != want[0] || codes[1] != want[1] {
		t.Errorf("bindings for Move Left = %v, want %v", codes, want)
	}

	SetSingleBinding(ActionDash, "mouse_left")
	if MapToIntent(DebouncedInput{Code: "mouse_left"}).Action != ActionSelectRoom {
		t.Errorf("reserved mouse_left was rebound")
	}
}

func TestSetBindings_ReportsUnknown(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	t.Cleanup(func() { bindings = saved })

	unknown := SetBindings(map[string]string{"p": "Undo Swap", "o": "Fly"})
	if len(unknown) != 1 || unknown[0] != "Fly" {
		t.Errorf("unknown = %v, want [Fly]", unknown)
	}
	if MapToIntent(DebouncedInput{Code: "p"}).Action != ActionUndoSwap {
		t.Errorf("p not bound to Undo Swap")
	}
}

func TestIsReserved(t *testing.T) {
	if !IsReserved("mouse_left") || !IsReserved("arrow_up") {
		t.Errorf("pointer and arrow codes should be reserved")
	}
	if IsReserved("space") {
		t.Errorf("space should be rebindable")
	}
}
