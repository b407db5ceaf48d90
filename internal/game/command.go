package game

import "fmt"

// CommandKind enumerates the control-panel actions.
type CommandKind int

const (
	// CmdToggleRun starts a stopped simulation or stops a running one.
	CmdToggleRun CommandKind = iota
	CmdStart
	CmdStop
	// CmdClear stops the simulation and kills every cell.
	CmdClear
	// CmdRandomize seeds each cell alive with the configured density. The
	// running state is unchanged.
	CmdRandomize
	// CmdNoise seeds clustered life from Perlin noise.
	CmdNoise
	// CmdStep advances one generation while stopped.
	CmdStep
	// CmdSetSpeed sets generations per second to Value.
	CmdSetSpeed
	// CmdAdjustSpeed moves the speed one control step in the direction of Value.
	CmdAdjustSpeed
	// CmdSetCellSize stops the simulation and rebuilds an empty grid with
	// cells Value pixels wide.
	CmdSetCellSize
	CmdAdjustCellSize
	// CmdTogglePanel shows or hides the control panel.
	CmdTogglePanel
)

var commandNames = [...]string{
	CmdToggleRun:      "toggle-run",
	CmdStart:          "start",
	CmdStop:           "stop",
	CmdClear:          "clear",
	CmdRandomize:      "randomize",
	CmdNoise:          "noise",
	CmdStep:           "step",
	CmdSetSpeed:       "set-speed",
	CmdAdjustSpeed:    "adjust-speed",
	CmdSetCellSize:    "set-cell-size",
	CmdAdjustCellSize: "adjust-cell-size",
	CmdTogglePanel:    "toggle-panel",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is one control action. Value carries the argument of the set and
// adjust commands.
type Command struct {
	Kind  CommandKind
	Value int
}

func (c Command) String() string {
	switch c.Kind {
	case CmdSetSpeed, CmdAdjustSpeed, CmdSetCellSize, CmdAdjustCellSize:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Value)
	default:
		return c.Kind.String()
	}
}
