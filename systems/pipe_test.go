package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/automoto/flapbird/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/transform"
)

func TestCreatePipeWithGapLeavesBandFree(t *testing.T) {
	e := newTestWorld(t)
	n := cfg.Columns()
	group := factory.CreatePipeWithGap(e, n, 3, true)

	pipe := components.Pipe.Get(group)
	require.Len(t, pipe.Blocks, n-cfg.Pipe.GapWidth)

	size := factory.BlockExtent()
	groupPos := transform.WorldPosition(group)
	assert.InDelta(t, factory.PipeSpawnX(), groupPos.X, 1e-9)

	seen := map[int]bool{}
	for _, b := range pipe.Blocks {
		block := e.World.Entry(b)
		col := components.PipeBlock.Get(block).Column
		seen[col] = true

		pos := transform.WorldPosition(block)
		assert.InDelta(t, groupPos.X, pos.X, 1e-9)
		assert.InDelta(t, (float64(col)+0.5)*size, pos.Y, 1e-9)
	}
	assert.False(t, seen[3])
	assert.False(t, seen[4])
	assert.Len(t, seen, n-2)

	// Blocks are in the collision space
	assert.Equal(t, n-cfg.Pipe.GapWidth, spaceObjects(t, e))
	assert.Equal(t, factory.PipeVelocity(), components.Movable.Get(group).Velocity)
}

func TestCreatePipeKeepsGapInsideColumnsForAllSeeds(t *testing.T) {
	n := cfg.Columns()
	for seed := int64(0); seed < 100; seed++ {
		e := newTestWorld(t)
		group := factory.CreatePipe(e, rand.New(rand.NewSource(seed)), false)
		pipe := components.Pipe.Get(group)

		assert.GreaterOrEqual(t, pipe.Gap, 0)
		assert.LessOrEqual(t, pipe.Gap+pipe.GapWidth, n, "seed %d", seed)
		assert.Len(t, pipe.Blocks, n-pipe.GapWidth)
		assert.Equal(t, components.MovableData{}, *components.Movable.Get(group))
	}
}

func TestUpdatePipeSpawnerFiresOncePerInterval(t *testing.T) {
	e := newTestWorld(t)
	EnterPlaying(e)

	// Just under one interval
	for i := 0; i < 119; i++ {
		UpdatePipeSpawner(e)
	}
	assert.Equal(t, 0, countEntries(e, tags.Pipe))

	for i := 0; i < 5; i++ {
		UpdatePipeSpawner(e)
	}
	assert.Equal(t, 1, countEntries(e, tags.Pipe))

	for i := 0; i < 120; i++ {
		UpdatePipeSpawner(e)
	}
	assert.Equal(t, 2, countEntries(e, tags.Pipe))
	assert.Equal(t, 2, GetSpawner(e).Count)
}

func TestUpdatePipeDespawnerRemovesGroupsPastLeftEdge(t *testing.T) {
	e := newTestWorld(t)
	gone := factory.CreatePipeWithGap(e, cfg.Columns(), 0, true)
	edge := factory.CreatePipeWithGap(e, cfg.Columns(), 5, true)
	blocks := components.Pipe.Get(gone).Blocks

	setPosition(gone, factory.PipeDespawnX()-0.01, 0)
	setPosition(edge, factory.PipeDespawnX(), 0)

	UpdatePipeDespawner(e)

	assert.False(t, gone.Valid())
	for _, b := range blocks {
		assert.False(t, e.World.Valid(b))
	}
	assert.True(t, edge.Valid())
	assert.Equal(t, 1, countEntries(e, tags.Pipe))
	assert.Equal(t, cfg.Columns()-cfg.Pipe.GapWidth, countEntries(e, tags.PipeBlock))
	assert.Equal(t, cfg.Columns()-cfg.Pipe.GapWidth, spaceObjects(t, e))
}

func TestPipeDespawnThresholdIsOffScreen(t *testing.T) {
	// A group at the threshold has its right edge exactly on x = 0
	assert.InDelta(t, 0.0, factory.PipeDespawnX()+factory.BlockExtent()/2, 1e-9)
	assert.Greater(t, factory.PipeSpawnX()-factory.BlockExtent()/2, float64(cfg.C.Width)-1e-9)
}
