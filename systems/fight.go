package systems

import (
	"fmt"

	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/automoto/cryptofighters/systems/factory"
	"github.com/automoto/cryptofighters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

func getStage(e *ecs.ECS) (*components.StageData, bool) {
	entry, ok := components.Stage.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Stage.Get(entry), true
}

func getMatch(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

func inputEnabled(e *ecs.ECS) bool {
	m, ok := getMatch(e)
	return ok && m.InputEnabled()
}

// fighterEntry finds the entity drawing the given side.
func fighterEntry(e *ecs.ECS, side int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).Side == side {
			found = entry
		}
	})
	return found, found != nil
}

// UpdateMatch advances the round state machine, which steps the stage while
// a round is live, then turns the cues and events it produced into sound,
// effects and banners.
func UpdateMatch(e *ecs.ECS) {
	m, ok := getMatch(e)
	if !ok {
		return
	}
	stage, ok := getStage(e)
	if !ok {
		return
	}

	m.Tick(cfg.C.DeltaMS(), stage.Stage)

	handleCues(e, stage.DrainCues())
	for _, ev := range m.DrainEvents() {
		handleMatchEvent(e, stage.Stage, ev)
	}
}

func handleCues(e *ecs.ECS, cues []combat.Cue) {
	for _, c := range cues {
		entry, ok := fighterEntry(e, c.Side)
		switch c.Kind {
		case combat.CueJump:
			PlaySFX(e, cfg.SoundJump)
			if ok {
				TriggerSquashStretch(entry, cfg.SquashStretch.JumpX, cfg.SquashStretch.JumpY)
			}
		case combat.CueAttackBasic:
			PlaySFX(e, cfg.SoundAttackBasic)
		case combat.CueAttackSpecial:
			PlaySFX(e, cfg.SoundAttackSpecial)
		case combat.CueProjectile:
			PlaySFX(e, cfg.SoundProjectile)
		case combat.CueHit:
			PlaySFX(e, cfg.SoundHit)
			TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
			if ok {
				TriggerHurtFlash(entry)
			}
		case combat.CueBlocked:
			PlaySFX(e, cfg.SoundBlock)
		case combat.CueKO:
			PlaySFX(e, cfg.SoundKO)
			TriggerScreenShake(e, cfg.ScreenShake.KOIntensity, cfg.ScreenShake.KODuration)
			if ok {
				TriggerHurtFlash(entry)
			}
		case combat.CueBattleCry:
			TriggerScreenShake(e, cfg.ScreenShake.SpecialIntensity, cfg.ScreenShake.SpecialDuration)
			if ok {
				f := components.Fighter.Get(entry)
				factory.SpawnFloatText(e, c.Text, f.X, f.Y, c.Side)
			}
		}
	}
}

func handleMatchEvent(e *ecs.ECS, stage *combat.Stage, ev match.Event) {
	switch ev.Kind {
	case match.EventRoundStart:
		clearFloatText(e)
		ShowBanner(e, "3", fmt.Sprintf("ROUND %d", ev.Round), -1)
	case match.EventFight:
		ShowBanner(e, cfg.Banner.FightText, "", cfg.Banner.FightHoldMS)
	case match.EventRoundOver:
		ShowBanner(e, ev.Record.Reason.String(), roundWinnerLine(stage, ev.Record.Winner), -1)
	case match.EventMatchOver:
		ShowBanner(e, matchWinnerLine(stage, ev.Result), "MATCH OVER", -1)
	}
}

func roundWinnerLine(stage *combat.Stage, winner rules.Outcome) string {
	side := winner.Side()
	if side < 0 {
		return cfg.Banner.DrawText
	}
	return fmt.Sprintf(cfg.Banner.WinsFormat, stage.Fighters[side].Def.Name)
}

func matchWinnerLine(stage *combat.Stage, result rules.MatchResult) string {
	switch result {
	case rules.Player1Wins:
		return fmt.Sprintf(cfg.Banner.WinsFormat, stage.Fighters[0].Def.Name)
	case rules.Player2Wins:
		return fmt.Sprintf(cfg.Banner.WinsFormat, stage.Fighters[1].Def.Name)
	}
	return cfg.Banner.DrawText
}

func clearFloatText(e *ecs.ECS) {
	var stale []*donburi.Entry
	tags.FloatText.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		entry.Remove()
	}
}

// NewFinishMatch hands the result to the session once the results delay has
// run out, records it in the career and leaves for the results scene.
func NewFinishMatch(sess *session.Session, sceneChanger SceneChanger, createResults func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		m, ok := getMatch(e)
		if !ok || m.Recorded || !m.ReadyToLeave() {
			return
		}
		stage, ok := getStage(e)
		if !ok {
			return
		}

		var maxHealth [2]float64
		for i, f := range stage.Fighters {
			maxHealth[i] = f.MaxHealth
		}
		res := sess.RecordResult(m.Match, stage.Healths(), maxHealth)
		RecordMatch(res)
		m.Recorded = true

		FadeOutMusic(e)
		sceneChanger.ChangeScene(createResults())
	}
}
