package behavior

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
)

const batSwoop = 0

// updateBat 蝙蝠状态机
// 在二维空间中直接飞向玩家；受伤期间失去飞行能力并受重力下坠；
// 生命比例低于阈值且治疗就绪时在空中治疗
func (s *BehaviorSystem) updateBat(a *actor, bat *components.BatComponent, dt float64) {
	prev := bat.State
	defer func() { s.logTransition(a, prev, bat.State) }()

	if a.health.IsDepleted() {
		if bat.State != components.BatDead {
			bat.State = components.BatDead
			s.onDeath(a)
		}
		s.play(a, bat.State, false)
		return
	}

	hurt := false
	if h, ok := ecs.GetComponent[*components.HurtComponent](s.entityManager, a.id); ok {
		hurt = h.IsHurt()
	}
	a.kin.IgnoreGravity = !hurt
	if !hurt && a.vel != nil {
		a.vel.Vel.Y = 0
	}

	heal, _ := ecs.GetComponent[*components.HealingComponent](s.entityManager, a.id)

	switch bat.State {
	case components.BatInitial:
		bat.State = components.BatIdle

	case components.BatIdle, components.BatFlying:
		bat.State = components.BatIdle
		if hurt {
			break
		}
		if heal != nil && heal.Timer.IsReady() && a.health.Ratio() < heal.Threshold {
			heal.Timer.ForceStart()
			bat.State = components.BatHealing
			break
		}
		if !s.canSeePlayer(a) {
			break
		}
		toPlayer := s.toPlayer(a)
		a.kin.FaceTowards(toPlayer.X)
		if s.weaponInRange(a, batSwoop) {
			if a.weapons.IsReady(batSwoop) {
				a.weapons.ForceAttack(batSwoop)
				bat.State = components.BatAttacking
			}
			break
		}
		if toPlayer.Len() > closeEnough {
			a.step(toPlayer.Normalize(), dt)
			bat.State = components.BatFlying
		}

	case components.BatAttacking:
		if !a.weaponTimer(batSwoop).IsActive() {
			bat.State = components.BatIdle
		}

	case components.BatHealing:
		if heal == nil || !heal.Timer.IsActive() {
			bat.State = components.BatIdle
			break
		}
		if heal.Timer.IsInActionPhase() {
			a.health.Heal(heal.Rate * dt)
		}

	default:
		unhandled(a, bat.State)
	}

	s.play(a, bat.State, bat.State != components.BatAttacking)
}
