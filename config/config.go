package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DeltaMS is the fixed simulation step in milliseconds.
func (c *Config) DeltaMS() float64 {
	return 1000 / float64(c.TPS)
}

// FighterViewConfig controls how fighters are drawn on top of the core state.
type FighterViewConfig struct {
	FrameWidth  int
	FrameHeight int
	FootOffset  float64 // pixels between the frame bottom and the fighter's feet

	HurtFlashColor color.RGBA
	HurtFlashMS    float64
	BlockTint      [3]float32 // colour scale while blocking
	ShadowColor    color.RGBA
}

// ProjectileViewConfig sizes generated projectile sprites.
type ProjectileViewConfig struct {
	SpriteSize int
	SpinSpeed  float64 // radians per second for magic and fireballs
	Colors     map[string]color.RGBA
}

// HUDConfig contains fight HUD layout values
type HUDConfig struct {
	BarWidth   float64
	BarHeight  float64
	BarY       float64
	Margin     float64
	NameY      float64
	TimerY     float64
	RoundY     float64
	PipY       float64
	PipRadius  float64
	PipGap     float64
	HintY      float64
	HintText   string
	LowHealth  float64 // fraction below which the bar turns red
	MidHealth  float64
	BarBg      color.RGBA
	BarFrame   color.RGBA
	HealthHigh color.RGBA
	HealthMid  color.RGBA
	HealthLow  color.RGBA
	Trail      color.RGBA
	PipOn      color.RGBA
	PipOff     color.RGBA
	TimerColor color.RGBA
	TimerWarn  color.RGBA
	TimerWarnS int

	TrailDelayMS float64 // pause before the trail starts draining
	TrailDrainMS float64
}

// BannerConfig drives the countdown, FIGHT and round-end announcements.
type BannerConfig struct {
	Color       color.RGBA
	SubColor    color.RGBA
	PopMS       float64
	StartScale  float64
	FightText   string
	FightHoldMS float64
	DrawText    string
	WinsFormat  string // printf format taking the winner's name
	Y           float64
}

// FloatTextConfig is used for battle cries and hit numbers
type FloatTextConfig struct {
	Color      color.RGBA
	CryColor   color.RGBA
	RiseSpeed  float64 // px per second
	LifetimeMS float64
	OffsetY    float64
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HitIntensity     float64 // pixels
	HitDuration      int     // frames
	SpecialIntensity float64
	SpecialDuration  int
	KOIntensity      float64
	KODuration       int
}

// SquashStretchConfig shapes the jump and landing squash on fighter sprites
type SquashStretchConfig struct {
	LerpSpeed float64
	JumpX     float64
	JumpY     float64
	LandX     float64
	LandY     float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu and select screen configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	PanelColor        color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	ButtonDisabled    color.RGBA
	Title             string
	Subtitle          string
	ButtonWidth       int
	ButtonHeight      int
	Spacing           int
	PortraitSize      int
	P1Color           color.RGBA
	P2Color           color.RGBA
	RarityColors      map[string]color.RGBA
}

// ResultsConfig contains the results screen configuration values
type ResultsConfig struct {
	BackgroundColor color.RGBA
	WinColor        color.RGBA
	DrawColor       color.RGBA
	AliveColor      color.RGBA
	RektColor       color.RGBA
	RewardColor     color.RGBA
	Symbols         []string
	SymbolCount     int
	SymbolColor     color.RGBA
	SymbolRiseMS    float64
	Titles          map[string]string // match result tag -> headline
}

// DebugConfig holds values set from command line flags.
type DebugConfig struct {
	SkipMenu     bool
	ShowHitboxes bool
	TuningPath   string
	Seed         int64
	HitboxColor  color.RGBA
	ProjColor    color.RGBA
}

// Global configuration instances
var C *Config
var FighterView FighterViewConfig
var ProjectileView ProjectileViewConfig
var HUD HUDConfig
var Banner BannerConfig
var FloatText FloatTextConfig
var ScreenShake ScreenShakeConfig
var SquashStretch SquashStretchConfig
var Pause PauseConfig
var Menu MenuConfig
var Results ResultsConfig
var Debug DebugConfig

// Color palette
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BitcoinOrange = color.RGBA{R: 247, G: 147, B: 26, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Crypto Fighters",
		TPS:    60,
	}

	FighterView = FighterViewConfig{
		FrameWidth:     96,
		FrameHeight:    96,
		FootOffset:     4,
		HurtFlashColor: color.RGBA{R: 255, G: 70, B: 70, A: 255},
		HurtFlashMS:    120,
		BlockTint:      [3]float32{0.8, 0.8, 1.0},
		ShadowColor:    color.RGBA{A: 90},
	}

	ProjectileView = ProjectileViewConfig{
		SpriteSize: 24,
		SpinSpeed:  9,
		Colors: map[string]color.RGBA{
			"bullet":   {R: 230, G: 230, B: 120, A: 255},
			"arrow":    {R: 210, G: 180, B: 140, A: 255},
			"magic":    {R: 140, G: 90, B: 255, A: 255},
			"fireball": {R: 255, G: 110, B: 20, A: 255},
		},
	}

	HUD = HUDConfig{
		BarWidth:     360,
		BarHeight:    22,
		BarY:         36,
		Margin:       30,
		NameY:        16,
		TimerY:       30,
		RoundY:       82,
		PipY:         70,
		PipRadius:    6,
		PipGap:       18,
		HintY:        520,
		HintText:     "P1: A/D move  W jump  S block  J/K/L attack     P2: arrows  Down block  1/2/3 attack     Esc pause",
		LowHealth:    0.25,
		MidHealth:    0.5,
		BarBg:        color.RGBA{R: 30, G: 30, B: 36, A: 230},
		BarFrame:     White,
		HealthHigh:   color.RGBA{R: 40, G: 200, B: 80, A: 255},
		HealthMid:    color.RGBA{R: 240, G: 200, B: 40, A: 255},
		HealthLow:    color.RGBA{R: 230, G: 50, B: 40, A: 255},
		Trail:        color.RGBA{R: 255, G: 240, B: 200, A: 200},
		PipOn:        BitcoinOrange,
		PipOff:       color.RGBA{R: 80, G: 80, B: 90, A: 255},
		TimerColor:   White,
		TimerWarn:    LightRed,
		TimerWarnS:   10,
		TrailDelayMS: 350,
		TrailDrainMS: 600,
	}

	Banner = BannerConfig{
		Color:       BitcoinOrange,
		SubColor:    White,
		PopMS:       350,
		StartScale:  2.5,
		FightText:   "FIGHT!",
		FightHoldMS: 800,
		DrawText:    "DRAW",
		WinsFormat:  "%s WINS",
		Y:           230,
	}

	FloatText = FloatTextConfig{
		Color:      White,
		CryColor:   BrightYellow,
		RiseSpeed:  40,
		LifetimeMS: 1200,
		OffsetY:    110,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:     2.0,
		HitDuration:      5,
		SpecialIntensity: 4.0,
		SpecialDuration:  8,
		KOIntensity:      8.0,
		KODuration:       20,
	}

	SquashStretch = SquashStretchConfig{
		LerpSpeed: 0.2,
		JumpX:     0.85,
		JumpY:     1.2,
		LandX:     1.2,
		LandY:     0.8,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    34,
		MenuItemGap:       14,
		MenuOptions:       []string{"Resume", "Settings", "Quit to Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 14, G: 12, B: 30, A: 255},
		PanelColor:        color.RGBA{R: 28, G: 26, B: 52, A: 235},
		TitleColor:        BitcoinOrange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TextColorDisabled: Gray,
		ButtonIdle:        DarkBlue,
		ButtonHover:       LightBlue,
		ButtonPressed:     BitcoinOrange,
		ButtonDisabled:    DarkGray,
		Title:             "CRYPTO FIGHTERS",
		Subtitle:          "Settle it on-chain. Settle it in the ring.",
		ButtonWidth:       260,
		ButtonHeight:      40,
		Spacing:           12,
		PortraitSize:      112,
		P1Color:           color.RGBA{R: 60, G: 200, B: 255, A: 255},
		P2Color:           color.RGBA{R: 255, G: 90, B: 90, A: 255},
		RarityColors: map[string]color.RGBA{
			"common":    {R: 190, G: 190, B: 190, A: 255},
			"rare":      {R: 80, G: 160, B: 255, A: 255},
			"epic":      {R: 180, G: 90, B: 255, A: 255},
			"legendary": BitcoinOrange,
		},
	}

	Results = ResultsConfig{
		BackgroundColor: color.RGBA{R: 10, G: 10, B: 22, A: 255},
		WinColor:        BitcoinOrange,
		DrawColor:       LightBlue,
		AliveColor:      BrightGreen,
		RektColor:       LightRed,
		RewardColor:     BrightYellow,
		Symbols:         []string{"BTC", "ETH", "SOL", "DOGE", "$", "HODL"},
		SymbolCount:     14,
		SymbolColor:     color.RGBA{R: 247, G: 147, B: 26, A: 120},
		SymbolRiseMS:    4000,
		Titles: map[string]string{
			"PLAYER1_WINS": "PLAYER 1 WINS",
			"PLAYER2_WINS": "PLAYER 2 WINS",
			"DRAW":         "DRAW",
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:    false,
		HitboxColor: color.RGBA{R: 0, G: 255, B: 0, A: 160},
		ProjColor:   color.RGBA{R: 255, G: 0, B: 255, A: 160},
	}
}
