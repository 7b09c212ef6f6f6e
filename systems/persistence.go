package systems

import (
	"encoding/json"
	"time"

	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/career"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const (
	settingsItem = "settings"
	recordsItem  = "records"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool
var lastSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings and career storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cryptofighters",
	})
	if err != nil {
		logrus.Warnf("could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(name string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(name)
	if err != nil {
		logrus.Warnf("could not load %s: %v", name, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		logrus.WithField("item", name).Warnf("could not parse saved data: %v", err)
		return false, err
	}
	return true, nil
}

func saveItem(name string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		logrus.Warnf("could not serialize %s: %v", name, err)
		return err
	}

	if err := gdataManager.SaveItem(name, data); err != nil {
		logrus.Warnf("could not save %s: %v", name, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. A nil result means defaults.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem(settingsItem, &s)
	if !ok {
		return nil, err
	}
	lastSettings = &s
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	lastSettings = s
	return saveItem(settingsItem, s)
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	_ = SaveSettings(&SavedSettings{
		MusicVolume:     s.MusicVolume,
		SFXVolume:       s.SFXVolume,
		Muted:           s.Muted,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	})
}

func currentSettings() *SavedSettings {
	return lastSettings
}

// ApplySavedSettings applies settings during start-up, before any scene exists.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted

	ebiten.SetFullscreen(saved.Fullscreen)

	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

var cachedRecords *career.Records

// LoadRecords returns the career records, empty when nothing is stored.
func LoadRecords() *career.Records {
	if cachedRecords != nil {
		return cachedRecords
	}
	r := career.New()
	if _, err := loadItem(recordsItem, r); err != nil {
		r = career.New()
	}
	cachedRecords = r
	return r
}

// RecordMatch adds a finished fight to the career and writes it back.
func RecordMatch(res *session.FightResult) career.Entry {
	r := LoadRecords()
	entry := r.Add(res, time.Now())
	_ = saveItem(recordsItem, r)
	logrus.WithFields(logrus.Fields{
		"id":     entry.ID,
		"result": entry.Result,
		"arena":  entry.Arena,
	}).Info("match recorded")
	return entry
}
