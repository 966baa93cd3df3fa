package behavior

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
)

const ratKingBite = 0

// updateRatKing 鼠王状态机
// 玩家在撕咬范围内时撕咬；看得见但够不着时翻滚冲撞，冲撞期间持续发动翻滚武器
func (s *BehaviorSystem) updateRatKing(a *actor, king *components.RatKingComponent, dt float64) {
	prev := king.State
	defer func() { s.logTransition(a, prev, king.State) }()

	if a.health.IsDepleted() {
		if king.State != components.RatKingDead {
			king.State = components.RatKingDead
			s.onDeath(a)
		}
		s.play(a, king.State, false)
		return
	}

	dash, _ := ecs.GetComponent[*components.DashingComponent](s.entityManager, a.id)

	switch king.State {
	case components.RatKingInitial:
		king.State = components.RatKingIdle

	case components.RatKingIdle, components.RatKingWalking:
		if !a.kin.OnFloor {
			king.State = components.RatKingFalling
			break
		}
		king.State = components.RatKingIdle
		if !s.canSeePlayer(a) {
			break
		}
		dx := s.toPlayer(a).X
		a.kin.FaceTowards(dx)
		if s.weaponInRange(a, ratKingBite) {
			if a.weapons.IsReady(ratKingBite) {
				a.weapons.ForceAttack(ratKingBite)
				king.State = components.RatKingAttacking
			}
			break
		}
		if dash != nil && dash.Timer.IsReady() {
			dash.Timer.ForceStart()
			king.State = components.RatKingDashing
			break
		}
		if shouldApproach(dx) {
			a.step(horizontal(dx), dt)
			king.State = components.RatKingWalking
		}

	case components.RatKingAttacking:
		if !a.weaponTimer(ratKingBite).IsActive() {
			king.State = components.RatKingIdle
		}

	case components.RatKingDashing:
		if dash == nil || !dash.Timer.IsActive() {
			king.State = components.RatKingIdle
			break
		}
		if dash.Timer.IsInActionPhase() {
			components.ImmediateStep(a.pos, horizontal(a.kin.Facing), dash.Speed, dt)
			if a.weapons.IsReady(dash.AttackWeapon) {
				a.weapons.ForceAttack(dash.AttackWeapon)
			}
		}

	case components.RatKingFalling:
		if a.kin.OnFloor {
			king.State = components.RatKingIdle
		}

	default:
		unhandled(a, king.State)
	}

	s.play(a, king.State, king.State != components.RatKingAttacking)
}
