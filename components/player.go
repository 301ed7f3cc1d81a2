package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Hitbox size in screen pixels, centered on the entity position
	HitboxWidth  float64
	HitboxHeight float64

	// Idle hover while waiting for the first jump
	Hover      *gween.Tween
	HoverUp    bool
	HoverBaseY float64
}

var Player = donburi.NewComponentType[PlayerData]()
