package term

import "github.com/gdamore/tcell/v2"

// Command is a user action decoded from a key press.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdStart
	CmdTogglePause
	CmdReset
	CmdToggleHeating
	CmdNextMaterial
	CmdFaster
	CmdSlower
)

// KeyCommand maps a key event to a command.
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyEnter:
		return CmdStart
	case tcell.KeyRune:
	default:
		return CmdNone
	}
	switch ev.Rune() {
	case 'q':
		return CmdQuit
	case 's':
		return CmdStart
	case ' ':
		return CmdTogglePause
	case 'r':
		return CmdReset
	case 'h':
		return CmdToggleHeating
	case 'm':
		return CmdNextMaterial
	case '+', '=':
		return CmdFaster
	case '-':
		return CmdSlower
	}
	return CmdNone
}
