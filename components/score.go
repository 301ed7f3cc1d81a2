package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScoreData is the singleton run score.
type ScoreData struct {
	Value int
	Best  int // best score known when the run started

	// Pop animates the counter scale after an increment
	Pop   *gween.Tween
	Scale float64
}

var Score = donburi.NewComponentType[ScoreData]()
