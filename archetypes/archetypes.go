package archetypes

import (
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Animation,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Sprite,
	)
	FloatText = newArchetype(
		tags.FloatText,
		components.FloatText,
		components.AutoDestroy,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Match = newArchetype(
		components.Match,
	)
	HUD = newArchetype(
		components.HUD,
		components.Banner,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
