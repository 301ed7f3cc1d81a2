package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Pipe      = donburi.NewTag().SetName("Pipe")
	PipeBlock = donburi.NewTag().SetName("PipeBlock")
	// ScoreCounted marks a pipe group the player has already passed.
	ScoreCounted = donburi.NewTag().SetName("ScoreCounted")
)

// Resolv tags for collision
const (
	ResolvPlayer = "player"
	ResolvSolid  = "solid"
)
