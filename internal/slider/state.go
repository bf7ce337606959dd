package slider

import "github.com/five82/carousel/internal/schedule"

// State is the authoritative slider state. It is owned by an Engine.
type State struct {
	Index        int
	AnimationIn  Effect
	AnimationOut Effect

	timer schedule.Handle
}

// Snapshot is a read-only copy of State for views and tests.
type Snapshot struct {
	Index        int
	Total        int
	AnimationIn  Effect
	AnimationOut Effect
	Play         PlayState
	InFlight     int
}
