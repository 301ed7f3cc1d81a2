package factory

import (
	"math/rand"

	"github.com/automoto/flapbird/archetypes"
	"github.com/automoto/flapbird/assets"
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/gamemath"
	"github.com/automoto/flapbird/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// BlockExtent is the on-screen size of one obstacle block.
func BlockExtent() float64 {
	return cfg.C.Scale * cfg.Pipe.BlockSize
}

// PipeSpawnX is the group X where new groups appear, just past the right edge.
func PipeSpawnX() float64 {
	return float64(cfg.C.Width) + BlockExtent()/2
}

// PipeDespawnX is the group X past which a group has fully left the screen.
func PipeDespawnX() float64 {
	return -BlockExtent() / 2
}

// PipeVelocity is the constant scroll velocity of obstacle groups.
func PipeVelocity() dmath.Vec2 {
	return dmath.Vec2{X: -cfg.Pipe.Speed, Y: 0}
}

// CreatePipe spawns one obstacle group with a random gap band. When moving is
// false the group is created at rest.
func CreatePipe(ecs *ecs.ECS, rng *rand.Rand, moving bool) *donburi.Entry {
	n := cfg.Columns()
	gap := gamemath.GapIndex(rng, n, cfg.Pipe.GapWidth)
	return CreatePipeWithGap(ecs, n, gap, moving)
}

// CreatePipeWithGap spawns a group of n columns leaving [gap, gap+GapWidth) free.
func CreatePipeWithGap(ecs *ecs.ECS, n, gap int, moving bool) *donburi.Entry {
	group := archetypes.Pipe.Spawn(ecs)
	transform.Transform.Get(group).LocalPosition = dmath.Vec2{X: PipeSpawnX(), Y: 0}

	movable := components.NewMovable()
	if moving {
		movable = movable.WithVelocity(PipeVelocity())
	}
	components.Movable.SetValue(group, movable.Build())

	var space *resolv.Space
	if e, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(e)
	}

	size := BlockExtent()
	cols := gamemath.BlockColumns(n, gap, cfg.Pipe.GapWidth)
	blocks := make([]donburi.Entity, 0, len(cols))
	for _, col := range cols {
		block := createPipeBlock(ecs, space, col, size)
		transform.AppendChild(group, block, false)
		syncObject(block)
		blocks = append(blocks, block.Entity())
	}

	components.Pipe.SetValue(group, components.PipeData{
		Columns:  n,
		Gap:      gap,
		GapWidth: cfg.Pipe.GapWidth,
		Blocks:   blocks,
	})
	return group
}

func createPipeBlock(ecs *ecs.ECS, space *resolv.Space, col int, size float64) *donburi.Entry {
	block := archetypes.PipeBlock.Spawn(ecs)
	transform.Transform.Get(block).LocalPosition = dmath.Vec2{
		X: 0,
		Y: (float64(col) + 0.5) * size,
	}

	obj := resolv.NewObject(0, 0, size, size, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = block
	components.Object.SetValue(block, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}

	components.PipeBlock.SetValue(block, components.PipeBlockData{
		Column: col,
		Width:  size,
		Height: size,
	})
	components.Sprite.SetValue(block, components.SpriteData{Key: assets.PipeBlock})
	return block
}

// syncObject moves the entry's collision object onto its world-space bounds.
func syncObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	pos := transform.WorldPosition(e)
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	obj.Update()
}
