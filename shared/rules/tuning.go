package rules

// FighterConfig holds fighter physics, timing and damage values.
type FighterConfig struct {
	// Physics (pixels, seconds)
	Gravity         float64 `toml:"gravity"`
	JumpVelocity    float64 `toml:"jump_velocity"`
	Friction        float64 `toml:"friction"`          // Horizontal velocity kept per reference frame
	FrictionFrameMS float64 `toml:"friction_frame_ms"` // Reference frame for Friction
	EdgeMargin      float64 `toml:"edge_margin"`
	DefaultSpeed    float64 `toml:"default_speed"` // Used when a character has no speed stat

	// Timing (milliseconds)
	HurtMS     float64                  `toml:"hurt_ms"`
	CooldownMS [AttackKindCount]float64 `toml:"cooldown_ms"` // Default per attack kind

	// Damage
	DamagePct            [AttackKindCount]float64 `toml:"damage_pct"`
	MinDamage            float64                  `toml:"min_damage"`
	BlockDamageFactor    float64                  `toml:"block_damage_factor"`
	BlockKnockbackFactor float64                  `toml:"block_knockback_factor"`

	// Dimensions
	HurtboxWidth  float64 `toml:"hurtbox_width"`
	HurtboxHeight float64 `toml:"hurtbox_height"`
}

// CombatConfig holds the per-tick hit resolution values.
type CombatConfig struct {
	MinSeparation       float64 `toml:"min_separation"`
	PushStep            float64 `toml:"push_step"`
	DefaultReach        float64 `toml:"default_reach"`
	Knockback           float64 `toml:"knockback"`
	ProjectileKnockback float64 `toml:"projectile_knockback"`
}

// ProjectileConfig holds projectile sizing and speeds.
type ProjectileConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	LifetimeMS    float64 `toml:"lifetime_ms"`
	CullMargin    float64 `toml:"cull_margin"`
	SpawnOffsetY  float64 `toml:"spawn_offset_y"` // Above the feet
	BulletSpeed   float64 `toml:"bullet_speed"`
	ArrowSpeed    float64 `toml:"arrow_speed"`
	MagicSpeed    float64 `toml:"magic_speed"`
	FireballSpeed float64 `toml:"fireball_speed"`
	DefaultSpeed  float64 `toml:"default_speed"`
}

// Speed returns the travel speed for a projectile type name.
func (p ProjectileConfig) Speed(kind string) float64 {
	switch kind {
	case "bullet":
		return p.BulletSpeed
	case "arrow":
		return p.ArrowSpeed
	case "magic":
		return p.MagicSpeed
	case "fireball":
		return p.FireballSpeed
	}
	return p.DefaultSpeed
}

// RoundConfig holds round and match timing.
type RoundConfig struct {
	ClockMS         float64 `toml:"clock_ms"`
	CountdownMS     float64 `toml:"countdown_ms"`
	RoundEndMS      float64 `toml:"round_end_ms"`
	ResultsDelayMS  float64 `toml:"results_delay_ms"`
	WinsToTakeMatch int     `toml:"wins_to_take_match"`
	ScheduledRounds int     `toml:"scheduled_rounds"` // Rounds played before a tie-break is considered
	MaxRounds       int     `toml:"max_rounds"`
}

// CPUProfile tunes the CPU opponent for one difficulty.
type CPUProfile struct {
	DecisionMinMS      float64 `toml:"decision_min_ms"`
	DecisionMaxMS      float64 `toml:"decision_max_ms"`
	RetreatChance      float64 `toml:"retreat_chance"`
	MediumAttackChance float64 `toml:"medium_attack_chance"`
	JumpChance         float64 `toml:"jump_chance"`
}

// CPUConfig holds the distance bands and per-difficulty profiles.
type CPUConfig struct {
	FarDistance    float64                  `toml:"far_distance"`
	NearDistance   float64                  `toml:"near_distance"`
	AboveThreshold float64                  `toml:"above_threshold"`
	MoveActionMS   float64                  `toml:"move_action_ms"`
	JumpActionMS   float64                  `toml:"jump_action_ms"`
	AttackWeights  [AttackKindCount]float64 `toml:"attack_weights"`

	Easy   CPUProfile `toml:"easy"`
	Normal CPUProfile `toml:"normal"`
	Hard   CPUProfile `toml:"hard"`
}

// Profile returns the tuning for a difficulty.
func (c CPUConfig) Profile(d Difficulty) CPUProfile {
	switch d {
	case Easy:
		return c.Easy
	case Hard:
		return c.Hard
	}
	return c.Normal
}

// StageConfig is the fallback ring geometry when an arena omits boundaries.
type StageConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	GroundY float64 `toml:"ground_y"`
	SpawnP1 float64 `toml:"spawn_p1"`
	SpawnP2 float64 `toml:"spawn_p2"`
}

// RewardConfig bounds the random rewards shown after a match.
type RewardConfig struct {
	CoinsMin int `toml:"coins_min"`
	CoinsMax int `toml:"coins_max"`
	XPMin    int `toml:"xp_min"`
	XPMax    int `toml:"xp_max"`
}

var (
	Fighter    FighterConfig
	Combat     CombatConfig
	Projectile ProjectileConfig
	Round      RoundConfig
	CPU        CPUConfig
	Stage      StageConfig
	Rewards    RewardConfig
)

func init() {
	Defaults()
}

// Defaults resets every tuning global to its built-in value.
func Defaults() {
	Fighter = FighterConfig{
		Gravity:         800,
		JumpVelocity:    -400,
		Friction:        0.85,
		FrictionFrameMS: 1000.0 / 60.0,
		EdgeMargin:      50,
		DefaultSpeed:    150,

		HurtMS:     300,
		CooldownMS: [AttackKindCount]float64{400, 800, 600},

		DamagePct:            [AttackKindCount]float64{0.06, 0.08, 0.10},
		MinDamage:            1,
		BlockDamageFactor:    0.3,
		BlockKnockbackFactor: 0.2,

		HurtboxWidth:  64,
		HurtboxHeight: 64,
	}

	Combat = CombatConfig{
		MinSeparation:       80,
		PushStep:            2,
		DefaultReach:        100,
		Knockback:           180,
		ProjectileKnockback: 90,
	}

	Projectile = ProjectileConfig{
		Width:         12,
		Height:        12,
		LifetimeMS:    2000,
		CullMargin:    50,
		SpawnOffsetY:  40,
		BulletSpeed:   600,
		ArrowSpeed:    500,
		MagicSpeed:    400,
		FireballSpeed: 450,
		DefaultSpeed:  450,
	}

	Round = RoundConfig{
		ClockMS:         99_000,
		CountdownMS:     3000,
		RoundEndMS:      3000,
		ResultsDelayMS:  3000,
		WinsToTakeMatch: 2,
		ScheduledRounds: 2,
		MaxRounds:       3,
	}

	CPU = CPUConfig{
		FarDistance:    275,
		NearDistance:   125,
		AboveThreshold: 40,
		MoveActionMS:   250,
		JumpActionMS:   800,
		AttackWeights:  [AttackKindCount]float64{5, 3, 2},

		Easy: CPUProfile{
			DecisionMinMS:      500,
			DecisionMaxMS:      1100,
			RetreatChance:      0.3,
			MediumAttackChance: 0.25,
			JumpChance:         0.15,
		},
		Normal: CPUProfile{
			DecisionMinMS:      300,
			DecisionMaxMS:      800,
			RetreatChance:      0.2,
			MediumAttackChance: 0.4,
			JumpChance:         0.25,
		},
		Hard: CPUProfile{
			DecisionMinMS:      200,
			DecisionMaxMS:      500,
			RetreatChance:      0.1,
			MediumAttackChance: 0.5,
			JumpChance:         0.35,
		},
	}

	Stage = StageConfig{
		Width:   960,
		Height:  540,
		GroundY: 450,
		SpawnP1: 240,
		SpawnP2: 720,
	}

	Rewards = RewardConfig{
		CoinsMin: 50,
		CoinsMax: 149,
		XPMin:    100,
		XPMax:    299,
	}
}
