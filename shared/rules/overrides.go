package rules

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

type overrideFile struct {
	Fighter    FighterConfig    `toml:"fighter"`
	Combat     CombatConfig     `toml:"combat"`
	Projectile ProjectileConfig `toml:"projectile"`
	Round      RoundConfig      `toml:"round"`
	CPU        CPUConfig        `toml:"cpu"`
	Stage      StageConfig      `toml:"stage"`
	Rewards    RewardConfig     `toml:"rewards"`
}

// LoadOverrides applies a TOML tuning file on top of the current values.
// Keys the file does not name keep their value. A missing file is not an error.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("path", path).Debug("no tuning overrides found")
		return nil
	}

	f := overrideFile{
		Fighter:    Fighter,
		Combat:     Combat,
		Projectile: Projectile,
		Round:      Round,
		CPU:        CPU,
		Stage:      Stage,
		Rewards:    Rewards,
	}
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("decode tuning %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logrus.WithField("key", key.String()).Warn("unknown tuning key ignored")
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}

	Fighter = f.Fighter
	Combat = f.Combat
	Projectile = f.Projectile
	Round = f.Round
	CPU = f.CPU
	Stage = f.Stage
	Rewards = f.Rewards
	logrus.WithField("path", path).Info("tuning overrides applied")
	return nil
}

func (f overrideFile) validate() error {
	if f.Round.WinsToTakeMatch < 1 {
		return errors.New("round.wins_to_take_match must be at least 1")
	}
	if f.Round.MaxRounds < f.Round.ScheduledRounds {
		return errors.New("round.max_rounds must not be below round.scheduled_rounds")
	}
	for _, p := range []CPUProfile{f.CPU.Easy, f.CPU.Normal, f.CPU.Hard} {
		if p.DecisionMaxMS < p.DecisionMinMS {
			return errors.New("cpu decision_max_ms must not be below decision_min_ms")
		}
	}
	if f.Rewards.CoinsMax < f.Rewards.CoinsMin || f.Rewards.XPMax < f.Rewards.XPMin {
		return errors.New("rewards max must not be below min")
	}
	return nil
}
