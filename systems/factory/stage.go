package factory

import (
	"github.com/automoto/cryptofighters/archetypes"
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateStage(ecs *ecs.ECS, stage *combat.Stage, arena *gamedata.Arena) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(entry, components.StageData{Stage: stage, Arena: arena})
	return entry
}

func CreateMatch(ecs *ecs.ECS, m *match.Match) *donburi.Entry {
	entry := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(entry, components.MatchData{Match: m})
	return entry
}

// CreateHUD spawns the HUD singleton with full health trails.
func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.HUD.Spawn(ecs)
	hud := components.HUDData{}
	for i := range hud.Trails {
		hud.Trails[i] = components.HealthTrail{Value: 1, Target: 1}
	}
	components.HUD.SetValue(entry, hud)
	components.Banner.SetValue(entry, components.BannerData{Scale: 1, Alpha: 1})
	return entry
}

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}

// SpawnFloatText adds a rising caption above a fighter.
func SpawnFloatText(ecs *ecs.ECS, text string, x, y float64, side int) *donburi.Entry {
	entry := archetypes.FloatText.Spawn(ecs)
	components.FloatText.SetValue(entry, components.FloatTextData{
		Text: text,
		X:    x,
		Y:    y - cfg.FloatText.OffsetY,
		Side: side,
	})
	frames := int(cfg.FloatText.LifetimeMS / cfg.C.DeltaMS())
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{FramesRemaining: frames})
	return entry
}
