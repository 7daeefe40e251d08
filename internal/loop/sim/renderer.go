package sim

import "github.com/spaceblaster/spaceblaster/internal/object"

// Renderer is notified of every change to the set of entities. Calls are made
// with the world lock held, from the simulation goroutine or from Reset;
// implementations must not call back into the World.
type Renderer interface {
	// Add is called when an entity enters the world.
	Add(d Drawable)
	// Remove is called when an entity leaves the world.
	Remove(id object.ID)
	// Clear is called when the world is emptied.
	Clear()
	// Redraw is called once per tick with the freshly published snapshot.
	Redraw(s *Snapshot)
}

// NopRenderer ignores all notifications.
type NopRenderer struct{}

func (NopRenderer) Add(Drawable)     {}
func (NopRenderer) Remove(object.ID) {}
func (NopRenderer) Clear()           {}
func (NopRenderer) Redraw(*Snapshot) {}

var _ Renderer = NopRenderer{}
