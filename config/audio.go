package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundAttackBasic
	SoundAttackSpecial
	SoundProjectile
	SoundHit
	SoundBlock
	SoundKO
	// Movement sounds
	SoundJump
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Music keys. Arenas name one of the fight tracks in their TMX meta.
const (
	MusicMenu   = "bg_menu"
	MusicFight1 = "bg_fight1"
	MusicFight2 = "bg_fight2"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs and music keys to file paths
type SoundConfig struct {
	MenuMusic         string
	FightMusic        string // used when an arena names no track
	MusicPaths        map[string]string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.25,
		DefaultSFXVol:     0.5,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuMusic:  MusicMenu,
		FightMusic: MusicFight1,
		MusicPaths: map[string]string{
			MusicMenu:   "audio/music/bg_menu.ogg",
			MusicFight1: "audio/music/bg_fight1.ogg",
			MusicFight2: "audio/music/bg_fight2.ogg",
		},
		SFXPaths: map[SoundID]string{
			SoundAttackBasic:   "audio/sfx/sfx_attack_basic.wav",
			SoundAttackSpecial: "audio/sfx/sfx_attack_special.wav",
			SoundProjectile:    "audio/sfx/sfx_projectile.wav",
			SoundHit:           "audio/sfx/sfx_hit.wav",
			SoundBlock:         "audio/sfx/sfx_block.wav",
			SoundKO:            "audio/sfx/sfx_ko.wav",
			SoundJump:          "audio/sfx/sfx_jump.wav",
			SoundMenuNavigate:  "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:    "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.5,
			SoundKO:  1.5,
		},
	}
}
