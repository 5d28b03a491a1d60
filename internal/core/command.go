package core

// Command is a user intent produced by the widget layer, abstracted from
// the key or mouse button that triggered it.
type Command int

const (
	CommandNone        Command = iota
	CommandTogglePause         // Space, P, "Play"/"Pause" button
	CommandInstant             // Enter, I, "Instant ..." button
	CommandReset               // R, "Reset" button
	CommandStep                // N, Right - advance one step while paused
	CommandScreenshot          // Ctrl+S
	CommandFaster              // +, = - halve the step interval
	CommandSlower              // - - double the step interval
	CommandBack                // Esc, B - leave to the session menu
	CommandQuit                // Q, Ctrl+C
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandTogglePause:
		return "TogglePause"
	case CommandInstant:
		return "Instant"
	case CommandReset:
		return "Reset"
	case CommandStep:
		return "Step"
	case CommandScreenshot:
		return "Screenshot"
	case CommandFaster:
		return "Faster"
	case CommandSlower:
		return "Slower"
	case CommandBack:
		return "Back"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
