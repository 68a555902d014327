// Package control defines lightweight command messages used by the tray menu
// to request actions from the application command loop. The command loop
// centralizes state changes to avoid races and to simplify synchronization.
package control

import "github.com/Vipul-Mhatre/RunCat365/runner"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdSetRunner CommandType = iota
	CmdSetTheme
	CmdSetMaxRate
	CmdToggleAutostart
	CmdAppearanceChanged
	CmdOpenTaskManager
	CmdQuit
)

// Command is the message sent from the menu (or the OS appearance listener)
// to AppManager.commandLoop. Only the field matching Type is meaningful. The
// optional Reply channel can be used by the command loop to confirm
// completion back to the sender.
type Command struct {
	Type      CommandType
	Character runner.Character
	Theme     runner.Theme
	MaxRate   runner.MaxRate
	Reply     chan error
}
