package systems

import (
	"sync"

	"github.com/automoto/cryptofighters/assets"
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
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
// Clips that are not shipped are skipped.
func PreloadAllSFX() {
	initGlobalAudio()

	missing := 0
	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			missing++
		}
	}
	if missing > 0 {
		logrus.Debugf("audio: %d sound effects not available", missing)
	}
}

// UpdateAudio processes pending SFX and manages music transitions
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func effectiveMusicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	// Missing clips are expected in lean builds
	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts the looping track for a music key such as "bg_fight1".
// Unknown keys fall back to the fight track.
func PlayMusic(e *ecs.ECS, key string) {
	initGlobalAudio()

	if globalMusicKey == key && globalFadeTimer == 0 {
		return
	}

	path, ok := cfg.Sound.MusicPaths[key]
	if !ok {
		key = cfg.Sound.FightMusic
		path = cfg.Sound.MusicPaths[key]
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicKey = key
	globalFadeTimer = 0

	player, err := globalAudioLoader.LoadMusic(path)
	if err != nil {
		return
	}

	player.SetVolume(effectiveMusicVolume())
	player.Play()
	globalMusicPlayer = player
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = effectiveMusicVolume()
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicKey = ""
	globalFadeTimer = 0
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// SetMuted silences music and effects without touching the stored volumes.
func SetMuted(muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// IsMuted reports the global mute toggle.
func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
