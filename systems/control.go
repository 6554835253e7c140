package systems

import "github.com/pthm-cable/robotarena/components"

// Command is a directional command for controllable robots.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdUpLeft
	CmdUpRight
	CmdDownLeft
	CmdDownRight
	CmdFire
)

var commandNames = [...]string{"none", "up", "down", "left", "right", "up-left", "up-right", "down-left", "down-right", "fire"}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// CommandDelta returns the unit offset and canonical angle of a compass command.
// The offset is scaled by the control step. ok is false for None and Fire.
func CommandDelta(c Command) (dx, dy, angle float64, ok bool) {
	switch c {
	case CmdUp:
		return 0, -1, 270, true
	case CmdDown:
		return 0, 1, 90, true
	case CmdLeft:
		return -1, 0, 180, true
	case CmdRight:
		return 1, 0, 0, true
	case CmdUpLeft:
		return -1, -1, 225, true
	case CmdUpRight:
		return 1, -1, 315, true
	case CmdDownLeft:
		return -1, 1, 135, true
	case CmdDownRight:
		return 1, 1, 45, true
	}
	return 0, 0, 0, false
}

// CommandFromKeys resolves held direction keys into a single 8-way command.
// Opposing keys cancel each other.
func CommandFromKeys(up, left, down, right bool) Command {
	v := 0
	if up && !down {
		v = -1
	} else if down && !up {
		v = 1
	}
	h := 0
	if left && !right {
		h = -1
	} else if right && !left {
		h = 1
	}

	switch {
	case v < 0 && h < 0:
		return CmdUpLeft
	case v < 0 && h > 0:
		return CmdUpRight
	case v > 0 && h < 0:
		return CmdDownLeft
	case v > 0 && h > 0:
		return CmdDownRight
	case v < 0:
		return CmdUp
	case v > 0:
		return CmdDown
	case h < 0:
		return CmdLeft
	case h > 0:
		return CmdRight
	}
	return CmdNone
}

// ApplyCommand moves a controllable robot one step if the target is valid.
// The angle is set regardless.
func ApplyCommand(c Command, pos *components.Position, h *components.Heading, step float64, valid ValidFunc) bool {
	dx, dy, angle, ok := CommandDelta(c)
	if !ok {
		return false
	}
	nx, ny := pos.X+dx*step, pos.Y+dy*step
	moved := valid(nx, ny)
	if moved {
		pos.X, pos.Y = nx, ny
	}
	h.Degrees = angle
	return moved
}
