package behavior

import (
	"github.com/gonewx/ratlair/pkg/components"
)

// ratBite 老鼠唯一的武器
const ratBite = 0

// updateRat 老鼠状态机
// 看到玩家就靠近，撕咬在范围内且就绪时立即进入 Attacking
func (s *BehaviorSystem) updateRat(a *actor, rat *components.RatComponent, dt float64) {
	prev := rat.State
	defer func() { s.logTransition(a, prev, rat.State) }()

	if a.health.IsDepleted() {
		if rat.State != components.RatDead {
			rat.State = components.RatDead
			s.onDeath(a)
		}
		s.play(a, rat.State, false)
		return
	}

	switch rat.State {
	case components.RatInitial:
		rat.State = components.RatIdle

	case components.RatIdle, components.RatWalking:
		if !a.kin.OnFloor {
			rat.State = components.RatFalling
			break
		}
		rat.State = components.RatIdle
		if !s.canSeePlayer(a) {
			break
		}
		dx := s.toPlayer(a).X
		a.kin.FaceTowards(dx)
		if s.weaponInRange(a, ratBite) {
			if a.weapons.IsReady(ratBite) {
				a.weapons.ForceAttack(ratBite)
				rat.State = components.RatAttacking
			}
			break
		}
		if shouldApproach(dx) {
			a.step(horizontal(dx), dt)
			rat.State = components.RatWalking
		}

	case components.RatAttacking:
		if !a.weaponTimer(ratBite).IsActive() {
			rat.State = components.RatIdle
		}

	case components.RatFalling:
		if a.kin.OnFloor {
			rat.State = components.RatIdle
		}

	default:
		unhandled(a, rat.State)
	}

	s.play(a, rat.State, rat.State != components.RatAttacking)
}
