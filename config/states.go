package config

// GameStateID is the top-level state of a run.
type GameStateID int

const (
	// StatePassive waits for the first jump; nothing moves.
	StatePassive GameStateID = iota
	// StatePlaying runs the spawner, motion, collisions and score.
	StatePlaying
)

func (s GameStateID) String() string {
	switch s {
	case StatePassive:
		return "passive"
	case StatePlaying:
		return "playing"
	}
	return "unknown"
}
