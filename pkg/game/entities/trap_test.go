package entities

import "testing"

func TestParseTrapType(t *testing.T) {
	tests := []struct {
		key  string
		want TrapType
	}{
		{"spikes", TrapSpikes},
		{" Checkpoint ", TrapCheckpoint},
		{"falling", TrapFalling},
		{"exit", TrapExit},
		{"", TrapNone},
		{"lava", TrapNone},
	}
	for _, tt := range tests {
		if got := ParseTrapType(tt.key); got != tt.want {
			t.Errorf("ParseTrapType(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestTrapTriggerOnce(t *testing.T) {
	trap := NewTrap(TrapFalling)
	if !trap.Trigger() {
		t.Fatal("first Trigger = false, want true")
	}
	if trap.Trigger() {
		t.Error("second Trigger = true, want false")
	}
	var none *Trap
	if none.Trigger() || none.IsCheckpoint() || none.IsLethal() {
		t.Error("nil trap should be inert")
	}
}

func TestCheckpointTrap(t *testing.T) {
	c := NewCheckpoint(7)
	if !c.IsCheckpoint() || c.Checkpoint != 7 {
		t.Errorf("NewCheckpoint(7) = %+v", c)
	}
	if c.IsLethal() {
		t.Error("checkpoint should not be lethal")
	}
	if !NewTrap(TrapSpikes).IsLethal() {
		t.Error("spikes should be lethal")
	}
}

func TestTrapPinned(t *testing.T) {
	if !NewCheckpoint(1).IsPinned() {
		t.Error("checkpoints should pin their room")
	}
	for _, tt := range []TrapType{TrapSpikes, TrapFalling, TrapExit} {
		if NewTrap(tt).IsPinned() {
			t.Errorf("%v should not pin its room", tt)
		}
	}
	var none *Trap
	if none.IsPinned() {
		t.Error("nil trap should not pin")
	}
}
