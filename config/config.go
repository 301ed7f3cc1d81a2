package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn position (center of the hitbox, screen space)
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`

	// Movement
	JumpSpeed float64 `yaml:"jumpSpeed"` // upward speed set on jump, px/s
	Gravity   float64 `yaml:"gravity"`   // downward acceleration, px/s²

	// Hitbox (unscaled sprite pixels, centered on the sprite)
	HitboxWidth  float64 `yaml:"hitboxWidth"`
	HitboxHeight float64 `yaml:"hitboxHeight"`

	// Animation
	FlapFrameTicks int     `yaml:"flapFrameTicks"` // ticks per flap frame
	MaxTilt        float64 `yaml:"maxTilt"`        // radians, nose-down limit
	TiltPerSpeed   float64 `yaml:"tiltPerSpeed"`   // radians per px/s of vertical speed

	// Idle hover while waiting for the first jump
	HoverAmplitude float64 `yaml:"hoverAmplitude"` // px
	HoverPeriod    float64 `yaml:"hoverPeriod"`    // seconds for one half cycle
}

// PipeConfig contains obstacle spawning configuration
type PipeConfig struct {
	BlockSize     float64 `yaml:"blockSize"`     // unscaled sprite size of one block
	SpawnInterval float64 `yaml:"spawnInterval"` // seconds between obstacle groups
	Speed         float64 `yaml:"speed"`         // leftward speed, px/s
	GapWidth      int     `yaml:"gapWidth"`      // number of free columns per group
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	TPS int `yaml:"tps"` // fixed update rate

	// Dead zone: the player is lost once its hitbox leaves [DeadZoneTop, DeadZoneBottom]
	DeadZoneTop    float64 `yaml:"deadZoneTop"`
	DeadZoneBottom float64 `yaml:"deadZoneBottom"`

	// Collision space cell size
	CellSize int `yaml:"cellSize"`
}

// ScoreConfig contains score display configuration
type ScoreConfig struct {
	PopScale    float64 `yaml:"popScale"`    // scale of the counter right after an increment
	PopDuration float64 `yaml:"popDuration"` // seconds to ease back to 1.0
	TopMargin   float64 `yaml:"topMargin"`
}

// UIConfig contains UI colors and layout
type UIConfig struct {
	BackgroundColor   color.RGBA
	TextColor         color.RGBA
	HintColor         color.RGBA
	TextColorSelected color.RGBA
	OverlayColor      color.RGBA
	HitboxColor       color.RGBA
	TitleY            float64
	HintY             float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	DelayFrames      int // frames between losing and the game over screen
	InputDelayFrames int // frames the game over menu ignores input
	TitleY           float64
	ScoreY           float64
	MenuStartY       float64
	MenuItemHeight   float64
	MenuItemGap      float64
	MenuOptions      []string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	Title string
	Hint  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Start the first run without waiting in the passive state
	ShowHitboxes bool
}

// Config holds general game configuration
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // sprite scale factor
	Seed   int64   `yaml:"seed"`  // 0 = seed from time
	Title  string  `yaml:"title"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Pipe PipeConfig
var Physics PhysicsConfig
var Score ScoreConfig
var UI UIConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGray    = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Slate        = color.RGBA{R: 31, G: 36, B: 38, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Scale:  4.5,
		Title:  "Flapbird",
	}

	Player = PlayerConfig{
		StartX:         640,
		StartY:         360,
		JumpSpeed:      500,
		Gravity:        25 * 4.5 * 9.8,
		HitboxWidth:    12,
		HitboxHeight:   10,
		FlapFrameTicks: 6,
		MaxTilt:        1.2,
		TiltPerSpeed:   0.0015,
		HoverAmplitude: 12,
		HoverPeriod:    0.6,
	}

	Pipe = PipeConfig{
		BlockSize:     16,
		SpawnInterval: 2.0,
		Speed:         200,
		GapWidth:      2,
	}

	Physics = PhysicsConfig{
		TPS:            60,
		DeadZoneTop:    0,
		DeadZoneBottom: 720,
		CellSize:       16,
	}

	Score = ScoreConfig{
		PopScale:    1.6,
		PopDuration: 0.25,
		TopMargin:   60,
	}

	UI = UIConfig{
		BackgroundColor:   Slate,
		TextColor:         White,
		HintColor:         LightGray,
		TextColorSelected: BrightYellow,
		OverlayColor:      BlackOverlay,
		HitboxColor:       Red,
		TitleY:            200,
		HintY:             520,
	}

	GameOver = GameOverConfig{
		DelayFrames:      30,
		InputDelayFrames: 15,
		TitleY:           220,
		ScoreY:           290,
		MenuStartY:       360,
		MenuItemHeight:   24,
		MenuItemGap:      16,
		MenuOptions:      []string{"Retry", "Exit"},
	}

	Pause = PauseConfig{
		Title: "PAUSED",
		Hint:  "P / Esc: Resume",
	}
}

// Columns returns how many obstacle blocks fit vertically on screen.
func Columns() int {
	return int(float64(C.Height) / (C.Scale * Pipe.BlockSize))
}

// DeltaTime returns the fixed step of one update tick in seconds.
func DeltaTime() float64 {
	if Physics.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(Physics.TPS)
}
