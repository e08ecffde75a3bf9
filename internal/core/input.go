package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // F, Space
	ActionPause          // P
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is a single player command as typed by the player.
// Unlike actions, commands keep the raw input so unrecognized input can be reported.
type Command struct {
	Action Action
	Raw    string
}

// ParseCommand maps a textual command to an action, ignoring case.
// W/A/S/D move, F fires and P pauses. Anything else yields ActionNone.
func ParseCommand(input string) Command {
	cmd := Command{Raw: input}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "w", "up":
		cmd.Action = ActionUp
	case "a", "left":
		cmd.Action = ActionLeft
	case "s", "down":
		cmd.Action = ActionDown
	case "d", "right":
		cmd.Action = ActionRight
	case "f", "fire":
		cmd.Action = ActionFire
	case "p", "pause":
		cmd.Action = ActionPause
	}
	return cmd
}

// Recognized reports whether the command maps to a game action.
func (c Command) Recognized() bool {
	return c.Action != ActionNone
}

// InputFrame represents the player input collected during one simulation tick.
// Actions keep their arrival order so that, for example, "move then fire"
// and "fire then move" produce different results.
type InputFrame struct {
	Commands []Command
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Commands: make([]Command, 0, 4),
	}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	f.Commands = append(f.Commands, Command{Action: a, Raw: a.String()})
}

// Push appends a raw command to this frame.
func (f *InputFrame) Push(c Command) {
	f.Commands = append(f.Commands, c)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, c := range f.Commands {
		if c.Action == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Commands = f.Commands[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Commands = append(clone.Commands, f.Commands...)
	return clone
}

// ParseScript turns a scripted input string into one frame per tick.
// Ticks are separated by commas and commands within a tick by "+", so
// "d,d+f,,p" moves right, then moves right and fires, then idles, then
// pauses. Empty ticks produce empty frames.
func ParseScript(script string) []InputFrame {
	if strings.TrimSpace(script) == "" {
		return nil
	}

	ticks := strings.Split(script, ",")
	frames := make([]InputFrame, len(ticks))
	for i, tick := range ticks {
		frames[i] = NewInputFrame()
		for _, tok := range strings.Split(tick, "+") {
			if tok = strings.TrimSpace(tok); tok != "" {
				frames[i].Push(ParseCommand(tok))
			}
		}
	}
	return frames
}

// Script returns this frame in the ParseScript tick format. Recognized
// commands use their canonical letter; platform actions are dropped since
// games never see them. Unrecognized input keeps its text when the text is
// safe inside a script, and becomes "?" otherwise.
func (f InputFrame) Script() string {
	tokens := make([]string, 0, len(f.Commands))
	for _, c := range f.Commands {
		if tok := c.scriptToken(); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return strings.Join(tokens, "+")
}

func (c Command) scriptToken() string {
	switch c.Action {
	case ActionUp:
		return "w"
	case ActionDown:
		return "s"
	case ActionLeft:
		return "a"
	case ActionRight:
		return "d"
	case ActionFire:
		return "f"
	case ActionPause:
		return "p"
	case ActionNone:
		raw := strings.TrimSpace(c.Raw)
		if raw == "" || strings.ContainsAny(raw, ",+ \t\n") || ParseCommand(raw).Recognized() {
			return "?"
		}
		return raw
	}
	return ""
}

// FormatScript is the inverse of ParseScript: one comma-separated entry
// per frame.
func FormatScript(frames []InputFrame) string {
	ticks := make([]string, len(frames))
	for i, f := range frames {
		ticks[i] = f.Script()
	}
	return strings.Join(ticks, ",")
}
