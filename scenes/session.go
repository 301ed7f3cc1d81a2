package scenes

import (
	"context"

	"github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/storage"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	Record(ctx context.Context, r storage.Run) error
}

// Session carries what outlives a single scene.
type Session struct {
	Seed    int64           // 0 = seed every run from the clock
	Runs    RunRecorder     // nil disables run history
	Watcher *config.Watcher // nil when not watching the tuning file
	Quit    func()
}
