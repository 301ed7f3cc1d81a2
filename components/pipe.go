package components

import "github.com/yohamta/donburi"

// PipeData describes one obstacle group: a column of blocks with a gap band.
type PipeData struct {
	Columns  int // columns the group was generated for
	Gap      int // first free column
	GapWidth int
	Blocks   []donburi.Entity
}

var Pipe = donburi.NewComponentType[PipeData]()

// PipeBlockData is one blocking rectangle inside a group.
// Width and Height are the scaled on-screen extents.
type PipeBlockData struct {
	Column int
	Width  float64
	Height float64
}

var PipeBlock = donburi.NewComponentType[PipeBlockData]()
