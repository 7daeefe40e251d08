package sim

import "github.com/spaceblaster/spaceblaster/internal/object"

// CommandKind identifies a player command.
type CommandKind int

const (
	CmdSteer   CommandKind = iota // Set an axis to Mode
	CmdRelease                    // Steering key for Mode on Axis let go
	CmdFire
)

// Command is a player action applied at the start of the next tick.
type Command struct {
	Kind CommandKind
	Axis object.Axis
	Mode object.Acceleration
}

// Steer returns a command setting the acceleration mode of an axis.
func Steer(axis object.Axis, mode object.Acceleration) Command {
	return Command{Kind: CmdSteer, Axis: axis, Mode: mode}
}

// Release returns a command for letting go of the key that steered axis towards dir.
func Release(axis object.Axis, dir object.Acceleration) Command {
	return Command{Kind: CmdRelease, Axis: axis, Mode: dir}
}

// Fire returns a command firing a player laser.
func Fire() Command {
	return Command{Kind: CmdFire}
}

// Send queues a command for the next tick without blocking. It reports false
// when the queue is full and the command was dropped.
func (w *World) Send(cmd Command) bool {
	select {
	case w.commands <- cmd:
		return true
	default:
		// Command channel full, drop command
		w.logger.Debug("command dropped", "kind", cmd.Kind)
		return false
	}
}

// applyCommands drains the queue. Must be called with the lock held.
func (w *World) applyCommands() {
	for {
		select {
		case cmd := <-w.commands:
			w.apply(cmd)
		default:
			return
		}
	}
}

func (w *World) apply(cmd Command) {
	switch cmd.Kind {
	case CmdSteer:
		w.player.Steer(cmd.Axis, cmd.Mode)
	case CmdRelease:
		w.player.Release(cmd.Axis, cmd.Mode)
	case CmdFire:
		w.addProjectile(w.player.Fire())
	}
}

func (w *World) drainCommands() {
	for {
		select {
		case <-w.commands:
		default:
			return
		}
	}
}
