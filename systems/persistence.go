package systems

import (
	"encoding/json"
	"strconv"

	"github.com/automoto/flapbird/components"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

var persistLog = log.WithPrefix("persistence")

const (
	settingsKey  = "settings"
	bestScoreKey = "best_score"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted        bool `json:"muted"`
	ShowHitboxes bool `json:"showHitboxes"`
}

// Store is the subset of gdata.Manager the game uses.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore Store

// InitPersistence opens the gdata store for settings and the best score.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "flapbird",
	})
	if err != nil {
		return err
	}
	settingsStore = m
	return nil
}

// UseStore replaces the settings store; nil disables persistence.
func UseStore(s Store) {
	settingsStore = s
}

// LoadSettings loads settings from disk. Missing settings return nil.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		persistLog.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		persistLog.Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		persistLog.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the live mute and debug overlay state.
func SaveCurrentSettings(e *ecs.ECS) {
	saved := &SavedSettings{Muted: IsMuted()}
	if entry, ok := components.Debug.First(e.World); ok {
		saved.ShowHitboxes = components.Debug.Get(entry).ShowHitboxes
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings before the first scene starts.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMuted(saved.Muted)
}

// LoadBestScore returns the stored best score, 0 when none is saved.
func LoadBestScore() int {
	if settingsStore == nil {
		return 0
	}
	data, err := settingsStore.LoadItem(bestScoreKey)
	if err != nil || len(data) == 0 {
		return 0
	}
	best, err := strconv.Atoi(string(data))
	if err != nil {
		persistLog.Warn("could not parse best score", "err", err)
		return 0
	}
	return best
}

// SaveBestScore stores score when it beats the saved best. It reports whether
// score is a new best.
func SaveBestScore(score int) bool {
	if score <= LoadBestScore() {
		return false
	}
	if settingsStore != nil {
		if err := settingsStore.SaveItem(bestScoreKey, []byte(strconv.Itoa(score))); err != nil {
			persistLog.Warn("could not save best score", "err", err)
		}
	}
	return true
}
