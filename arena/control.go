package arena

import (
	"github.com/pthm-cable/robotarena/components"
	"github.com/pthm-cable/robotarena/systems"
)

// Control forwards a directional command to every controllable robot.
// CmdFire fires from each of them instead. It returns the number of robots
// that moved or fired.
func (a *Arena) Control(cmd systems.Command) int {
	if cmd == systems.CmdFire {
		return len(a.Fire())
	}

	n := 0
	for _, e := range a.order {
		if a.idMap.Get(e).Kind != components.KindControllable {
			continue
		}
		body := *a.bodyMap.Get(e)
		if systems.ApplyCommand(cmd, a.posMap.Get(e), a.headingMap.Get(e), a.cfg.Control.Step, a.robotValid(body)) {
			n++
		}
	}
	return n
}

// Fire spawns a bullet in front of every controllable robot, travelling along
// its heading. It returns the new bullet IDs.
func (a *Arena) Fire() []uint32 {
	type muzzle struct {
		x, y, angle float64
	}

	// Spawning appends to storage order, so collect first.
	var shots []muzzle
	for _, e := range a.order {
		if a.idMap.Get(e).Kind != components.KindControllable {
			continue
		}
		pos := a.posMap.Get(e)
		h := *a.headingMap.Get(e)
		dist := float64(a.bodyMap.Get(e).Radius) + a.cfg.Bullet.MuzzleOffset
		dx, dy := h.Dir()
		shots = append(shots, muzzle{pos.X + dist*dx, pos.Y + dist*dy, h.Degrees})
	}

	ids := make([]uint32, 0, len(shots))
	for _, s := range shots {
		ids = append(ids, a.Spawn(components.KindBullet, s.x, s.y, s.angle))
	}
	return ids
}
