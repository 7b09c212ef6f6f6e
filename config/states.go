package config

import "github.com/automoto/cryptofighters/shared/rules"

var attackClips = [rules.AttackKindCount]string{ClipAttackBasic, ClipAttackSpecial1, ClipAttackSpecial2}

var statusClips = map[rules.Status]string{
	rules.Idle:     ClipIdle,
	rules.Walking:  ClipWalking,
	rules.Jumping:  ClipJumping,
	rules.Hurt:     ClipHurt,
	rules.Blocking: ClipBlocking,
}

// ClipFor selects the animation clip for a fighter's status. Attacking picks
// the clip of the active attack kind.
func ClipFor(status rules.Status, kind rules.AttackKind) string {
	if status == rules.Attacking {
		if kind >= 0 && kind < rules.AttackKindCount {
			return attackClips[kind]
		}
		return ClipAttackBasic
	}
	if clip, ok := statusClips[status]; ok {
		return clip
	}
	return ClipIdle
}

// SheetKey names a generated sprite sheet.
func SheetKey(characterID, clip string) string {
	return characterID + "_" + clip
}
