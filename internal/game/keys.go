package game

import "strings"

// KeyBindings maps key names to commands. Frontends translate their native key
// events to these names so every host offers the same shortcuts.
var KeyBindings = map[string]Command{
	"space": {Kind: CmdToggleRun},
	"enter": {Kind: CmdStart},
	"c":     {Kind: CmdClear},
	"r":     {Kind: CmdRandomize},
	"p":     {Kind: CmdNoise},
	"n":     {Kind: CmdStep},
	"+":     {Kind: CmdAdjustSpeed, Value: 1},
	"=":     {Kind: CmdAdjustSpeed, Value: 1},
	"-":     {Kind: CmdAdjustSpeed, Value: -1},
	"]":     {Kind: CmdAdjustCellSize, Value: 1},
	"[":     {Kind: CmdAdjustCellSize, Value: -1},
	"h":     {Kind: CmdTogglePanel},
}

// LookupKey returns the command bound to name, ignoring case.
func LookupKey(name string) (Command, bool) {
	if name == " " {
		name = "space"
	}
	cmd, ok := KeyBindings[strings.ToLower(name)]
	return cmd, ok
}
