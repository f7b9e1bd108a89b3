package client

import "github.com/gdamore/tcell/v2"

// Command is a key press decoded into something the client acts on.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveN
	CmdMoveS
	CmdMoveE
	CmdMoveW
	CmdMoveNE
	CmdMoveNW
	CmdMoveSE
	CmdMoveSW
	CmdWait
	CmdPickup
	CmdUse
	CmdDrop
	CmdDescend
	CmdHistory
	CmdCharacter
	CmdConfirm
	CmdQuit
)

// keyToCommand maps a tcell key event to a command.
func keyToCommand(ev *tcell.EventKey) Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdMoveN
	case tcell.KeyDown:
		return CmdMoveS
	case tcell.KeyRight:
		return CmdMoveE
	case tcell.KeyLeft:
		return CmdMoveW
	case tcell.KeyEnter:
		return CmdConfirm
	case tcell.KeyEscape:
		return CmdQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return CmdMoveN
	case 'j', 'J':
		return CmdMoveS
	case 'l', 'L':
		return CmdMoveE
	case 'h', 'H':
		return CmdMoveW
	case 'y', 'Y':
		return CmdMoveNW
	case 'u', 'U':
		return CmdMoveNE
	case 'b', 'B':
		return CmdMoveSW
	case 'n', 'N':
		return CmdMoveSE
	case '.':
		return CmdWait
	case ',', 'g':
		return CmdPickup
	case 'i':
		return CmdUse
	case 'd':
		return CmdDrop
	case '>':
		return CmdDescend
	case 'v':
		return CmdHistory
	case 'c':
		return CmdCharacter
	case ' ':
		return CmdConfirm
	case 'q', 'Q':
		return CmdQuit
	}
	return CmdNone
}

// commandToDelta converts a movement command to (dx, dy).
func commandToDelta(c Command) (int, int) {
	switch c {
	case CmdMoveN:
		return 0, -1
	case CmdMoveS:
		return 0, 1
	case CmdMoveE:
		return 1, 0
	case CmdMoveW:
		return -1, 0
	case CmdMoveNE:
		return 1, -1
	case CmdMoveNW:
		return -1, -1
	case CmdMoveSE:
		return 1, 1
	case CmdMoveSW:
		return -1, 1
	}
	return 0, 0
}

func isMove(c Command) bool {
	return c >= CmdMoveN && c <= CmdMoveSW
}
