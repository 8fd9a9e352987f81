package asteroids

// Command is a logical craft control.
type Command int

const (
	CommandFire Command = iota
	CommandRotateLeft
	CommandRotateRight
	CommandThrust
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandFire:
		return "fire"
	case CommandRotateLeft:
		return "rotate-left"
	case CommandRotateRight:
		return "rotate-right"
	case CommandThrust:
		return "thrust"
	default:
		return "unknown"
	}
}

type command struct {
	cmd     Command
	release bool
}

// Press queues a key-down for cmd. It takes effect at the start of the next tick.
func (w *World) Press(cmd Command) {
	w.pending = append(w.pending, command{cmd: cmd})
}

// Release queues a key-up for cmd. It takes effect at the start of the next tick.
func (w *World) Release(cmd Command) {
	w.pending = append(w.pending, command{cmd: cmd, release: true})
}

// applyCommands drains the queue in arrival order.
func (w *World) applyCommands() {
	for _, c := range w.pending {
		w.apply(c)
	}
	w.pending = w.pending[:0]
}

func (w *World) apply(c command) {
	craft := w.craft
	if craft.Dead {
		return
	}

	switch c.cmd {
	case CommandFire:
		if c.release {
			craft.CanFire = true
			return
		}
		w.fire()
		// Disarmed even when the shot was refused; a respawned craft starts armed
		craft.CanFire = false
	case CommandRotateLeft:
		if c.release {
			craft.Rot = 0
		} else {
			craft.Rot = w.settings.TurnRate
		}
	case CommandRotateRight:
		if c.release {
			craft.Rot = 0
		} else {
			craft.Rot = -w.settings.TurnRate
		}
	case CommandThrust:
		craft.Thrusting = !c.release
	}
}

// fire spawns a bullet if the trigger is armed and the cap allows it.
// An exploding craft cannot fire.
func (w *World) fire() {
	craft := w.craft
	if !craft.CanFire || craft.Exploding() {
		return
	}

	live := len(craft.Bullets)
	if !w.settings.CountFadingBullets {
		live = craft.flyingBullets()
	}
	if live >= w.settings.BulletMax {
		return
	}
	craft.Bullets = append(craft.Bullets, w.newBullet(craft))
}
