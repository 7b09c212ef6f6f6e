package combat

import (
	"github.com/solarlune/resolv"

	"github.com/automoto/cryptofighters/shared/rules"
)

// Projectile is a straight-flying shot owned by one fighter.
type Projectile struct {
	Owner  int
	Type   string
	Kind   rules.AttackKind
	X, Y   float64 // Centre
	VX     float64
	Damage float64

	Age      float64
	Lifetime float64
	Dead     bool

	obj *resolv.Object
}

func newProjectile(f *Fighter) *Projectile {
	move := f.Moves[f.AttackKind]
	dir := 1.0
	if !f.FacingRight {
		dir = -1
	}
	offset := rules.Fighter.HurtboxWidth/2 + rules.Projectile.Width/2
	return &Projectile{
		Owner:    f.Side,
		Type:     move.ProjectileType,
		Kind:     f.AttackKind,
		X:        f.X + dir*offset,
		Y:        f.Y - rules.Projectile.SpawnOffsetY,
		VX:       dir * rules.Projectile.Speed(move.ProjectileType),
		Damage:   f.AttackDamage(f.AttackKind),
		Lifetime: rules.Projectile.LifetimeMS,
	}
}

// Hitbox is the projectile's collision box.
func (p *Projectile) Hitbox() Rect {
	w, h := rules.Projectile.Width, rules.Projectile.Height
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

// Update advances the projectile. dt is in milliseconds.
func (p *Projectile) Update(dt float64) {
	p.X += p.VX * dt / 1000
	p.Age += dt
	if p.obj != nil {
		box := p.Hitbox()
		p.obj.X, p.obj.Y = box.X, box.Y
		p.obj.Update()
	}
}

// Expired reports whether the projectile outlived its lifetime or left the
// view by more than the cull margin.
func (p *Projectile) Expired(view Rect) bool {
	return p.Age >= p.Lifetime || p.Hitbox().Outside(view, rules.Projectile.CullMargin)
}

// Facing is +1 when travelling right.
func (p *Projectile) Facing() float64 {
	if p.VX < 0 {
		return -1
	}
	return 1
}
