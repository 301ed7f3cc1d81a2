package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverExit
)

// GameOverData stores the result of the finished run and the menu selection
type GameOverData struct {
	SelectedOption GameOverOption
	Score          int
	Best           int
	NewBest        bool
	Frames         int // frames shown; input is ignored at first
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
