package core

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected Action
	}{
		{"w", ActionUp},
		{"W", ActionUp},
		{"a", ActionLeft},
		{"A", ActionLeft},
		{"s", ActionDown},
		{"d", ActionRight},
		{"D", ActionRight},
		{"f", ActionFire},
		{"F", ActionFire},
		{"p", ActionPause},
		{" P ", ActionPause},
		{"x", ActionNone},
		{"", ActionNone},
		{"jump", ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			cmd := ParseCommand(tc.input)
			if cmd.Action != tc.expected {
				t.Errorf("ParseCommand(%q).Action = %v, expected %v", tc.input, cmd.Action, tc.expected)
			}
			if cmd.Raw != tc.input {
				t.Errorf("ParseCommand(%q).Raw = %q", tc.input, cmd.Raw)
			}
			if cmd.Recognized() != (tc.expected != ActionNone) {
				t.Errorf("Recognized() mismatch for %q", tc.input)
			}
		})
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionFire)
	f.Push(ParseCommand("z"))

	if len(f.Commands) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(f.Commands))
	}
	if f.Commands[0].Action != ActionRight || f.Commands[1].Action != ActionFire {
		t.Errorf("commands out of order: %v", f.Commands)
	}
	if !f.Has(ActionFire) {
		t.Error("Has(ActionFire) should be true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be false")
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Commands) != 0 {
		t.Error("Clear() should empty the frame")
	}
	if len(clone.Commands) != 3 {
		t.Error("Clone() should not share state with the original")
	}
}

func TestParseScript(t *testing.T) {
	frames := ParseScript("d, d+F ,,x")

	if len(frames) != 4 {
		t.Fatalf("ParseScript() = %d frames, expected 4", len(frames))
	}

	want := [][]Action{
		{ActionRight},
		{ActionRight, ActionFire},
		{},
		{ActionNone},
	}
	for i, actions := range want {
		got := frames[i].Commands
		if len(got) != len(actions) {
			t.Fatalf("frame %d: %d commands, expected %d", i, len(got), len(actions))
		}
		for j, a := range actions {
			if got[j].Action != a {
				t.Errorf("frame %d command %d = %v, expected %v", i, j, got[j].Action, a)
			}
		}
	}
	if frames[3].Commands[0].Raw != "x" {
		t.Errorf("unrecognized token should keep its text, got %q", frames[3].Commands[0].Raw)
	}

	if ParseScript("  ") != nil {
		t.Error("blank script should yield no frames")
	}
}

func TestFormatScript(t *testing.T) {
	space := NewInputFrame()
	space.Push(Command{Action: ActionFire, Raw: " "})
	space.Push(Command{Action: ActionUp, Raw: "up"})

	mixed := NewInputFrame()
	mixed.Push(Command{Action: ActionNone, Raw: "x"})
	mixed.Push(Command{Action: ActionNone, Raw: ","})
	mixed.Set(ActionRestart)
	mixed.Push(Command{Action: ActionPause, Raw: "P"})

	frames := []InputFrame{space, NewInputFrame(), mixed, NewInputFrame()}

	got := FormatScript(frames)
	if want := "f+w,,x+?+p,"; got != want {
		t.Fatalf("FormatScript() = %q, expected %q", got, want)
	}

	parsed := ParseScript(got)
	if len(parsed) != len(frames) {
		t.Fatalf("ParseScript() = %d frames, expected %d", len(parsed), len(frames))
	}
	want := [][]Action{
		{ActionFire, ActionUp},
		{},
		{ActionNone, ActionNone, ActionPause},
		{},
	}
	for i, actions := range want {
		cmds := parsed[i].Commands
		if len(cmds) != len(actions) {
			t.Fatalf("frame %d: %d commands, expected %d", i, len(cmds), len(actions))
		}
		for j, a := range actions {
			if cmds[j].Action != a {
				t.Errorf("frame %d command %d = %v, expected %v", i, j, cmds[j].Action, a)
			}
		}
	}
}
