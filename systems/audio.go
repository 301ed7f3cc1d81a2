package systems

import (
	"sync"

	"github.com/automoto/flapbird/assets"
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

var audioLog = log.WithPrefix("audio")

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			audioLog.Warn("could not preload sound", "id", id, "err", err)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		audioLog.Warn("could not play sound", "path", path, "err", err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect for this frame. It is a no-op in worlds
// without an audio singleton.
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// SetMuted silences or restores sound effects.
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted reports whether sound effects are silenced.
func IsMuted() bool {
	return globalMuted
}

// UpdateMuteToggle flips mute on the toggle action and saves the setting.
func UpdateMuteToggle(e *ecs.ECS) {
	if !JustPressed(e, cfg.ActionToggleMute) {
		return
	}
	SetMuted(!globalMuted)
	audioLog.Info("mute toggled", "muted", globalMuted)
	SaveCurrentSettings(e)
}
