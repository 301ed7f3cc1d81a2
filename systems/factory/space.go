package factory

import (
	"github.com/automoto/flapbird/archetypes"
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space. It extends one block past the right
// edge so groups are tracked from the moment they spawn.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	width := cfg.C.Width + int(BlockExtent())*2
	spaceData := resolv.NewSpace(width, cfg.C.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	components.Space.Set(space, spaceData)
	return space
}
