package behavior

import (
	"math"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
)

const (
	playerLightAttack = 0
	playerHeavyAttack = 1
)

// playerAbilities 玩家的可选能力组件
type playerAbilities struct {
	stamina *components.StaminaComponent
	dash    *components.DashingComponent
	jump    *components.JumpingComponent
}

func (s *BehaviorSystem) playerAbilities(id ecs.EntityID) playerAbilities {
	var p playerAbilities
	p.stamina, _ = ecs.GetComponent[*components.StaminaComponent](s.entityManager, id)
	p.dash, _ = ecs.GetComponent[*components.DashingComponent](s.entityManager, id)
	p.jump, _ = ecs.GetComponent[*components.JumpingComponent](s.entityManager, id)
	return p
}

// pay 扣除耐力；没有耐力组件时总是成功
func (p playerAbilities) pay(cost float64) bool {
	if p.stamina == nil {
		return true
	}
	return p.stamina.TryConsume(cost)
}

// updatePlayer 玩家状态机，由输入驱动
func (s *BehaviorSystem) updatePlayer(a *actor, player *components.PlayerComponent, dt float64) {
	prev := player.State
	defer func() { s.logTransition(a, prev, player.State) }()

	if a.health.IsDepleted() {
		if player.State != components.PlayerDead {
			player.State = components.PlayerDead
			s.onDeath(a)
		}
		s.play(a, player.State, false)
		return
	}

	abilities := s.playerAbilities(a.id)
	dir := s.inputDirection()

	switch player.State {
	case components.PlayerInitial:
		player.State = components.PlayerIdle

	case components.PlayerIdle, components.PlayerWalking:
		player.State = s.playerGrounded(a, abilities, dir, dt)

	case components.PlayerAttacking:
		active := 0
		if a.weapons != nil {
			active = a.weapons.Active
		}
		if timer := a.weaponTimer(active); timer == nil || !timer.IsActive() {
			player.State = components.PlayerIdle
		}

	case components.PlayerDashing:
		if abilities.dash == nil || !abilities.dash.Timer.IsActive() {
			player.State = components.PlayerIdle
			break
		}
		if abilities.dash.Timer.IsInActionPhase() {
			components.ImmediateStep(a.pos, horizontal(a.kin.Facing), abilities.dash.Speed, dt)
			if a.vel != nil {
				a.vel.Vel.Y = 0
			}
		}

	case components.PlayerJumping:
		jump := abilities.jump
		if jump == nil || !jump.Timer.IsActive() || a.kin.OnCeiling {
			player.State = components.PlayerFalling
			break
		}
		if jump.Timer.IsInActionPhase() && a.vel != nil {
			launch := utils.V2(math.Cos(jump.Angle)*a.kin.Facing, math.Sin(jump.Angle)).Scale(jump.Speed)
			a.vel.Vel.Y = launch.Y
			if math.Abs(launch.X) > 1e-6 {
				a.vel.Vel.X = launch.X
			}
		}
		s.airControl(a, dir, dt)

	case components.PlayerFalling:
		switch {
		case a.kin.OnStair && dir.Y != 0:
			player.State = components.PlayerClimbing
		case a.kin.OnFloor:
			player.State = components.PlayerIdle
		default:
			s.airControl(a, dir, dt)
		}

	case components.PlayerClimbing:
		if !a.kin.OnStair {
			player.State = components.PlayerFalling
			break
		}
		// 楼梯底端站在地面上且没有向上爬时回到地面状态
		if a.kin.OnFloor && dir.Y <= 0 {
			player.State = components.PlayerIdle
			break
		}
		if s.input.TakeAction(game.ActionJump) && abilities.jump != nil && abilities.jump.Timer.IsReady() {
			abilities.jump.Timer.ForceStart()
			player.State = components.PlayerJumping
			break
		}
		if a.vel != nil {
			a.vel.Vel = utils.Vec2f{}
		}
		if !dir.IsZero() {
			a.kin.FaceTowards(dir.X)
			a.step(dir, dt)
		}

	default:
		unhandled(a, player.State)
	}

	// 攀爬和冲刺生效期间不受重力
	a.kin.IgnoreGravity = player.State == components.PlayerClimbing ||
		(player.State == components.PlayerDashing && abilities.dash != nil && abilities.dash.Timer.IsInActionPhase())

	s.play(a, player.State, player.State != components.PlayerAttacking)
}

// playerGrounded Idle/Walking 状态的转移
// 优先级：离地 > 跳跃 > 冲刺 > 轻击 > 重击 > 攀爬 > 行走
func (s *BehaviorSystem) playerGrounded(a *actor, abilities playerAbilities, dir utils.Vec2f, dt float64) components.PlayerState {
	if !a.kin.OnFloor {
		if a.kin.OnStair {
			return components.PlayerClimbing
		}
		return components.PlayerFalling
	}
	if s.input.TakeAction(game.ActionJump) && abilities.jump != nil && abilities.jump.Timer.IsReady() {
		abilities.jump.Timer.ForceStart()
		return components.PlayerJumping
	}
	if s.input.TakeAction(game.ActionDash) && abilities.dash != nil && abilities.dash.Timer.IsReady() && abilities.pay(abilities.dash.StaminaCost) {
		a.kin.FaceTowards(dir.X)
		abilities.dash.Timer.ForceStart()
		return components.PlayerDashing
	}
	for _, attack := range []struct {
		action game.Action
		weapon int
	}{
		{game.ActionAttack, playerLightAttack},
		{game.ActionHeavyAttack, playerHeavyAttack},
	} {
		if !s.input.TakeAction(attack.action) || a.weapons == nil || !a.weapons.IsReady(attack.weapon) {
			continue
		}
		if !abilities.pay(a.weapons.Weapons[attack.weapon].StaminaCost) {
			continue
		}
		a.kin.FaceTowards(dir.X)
		a.weapons.ForceAttack(attack.weapon)
		return components.PlayerAttacking
	}
	if a.kin.OnStair && dir.Y != 0 {
		return components.PlayerClimbing
	}
	if dir.X != 0 {
		a.kin.FaceTowards(dir.X)
		a.step(horizontal(dir.X), dt)
		return components.PlayerWalking
	}
	return components.PlayerIdle
}

// airControl 空中水平移动
func (s *BehaviorSystem) airControl(a *actor, dir utils.Vec2f, dt float64) {
	if dir.X == 0 {
		return
	}
	a.kin.FaceTowards(dir.X)
	a.step(horizontal(dir.X), dt)
}

// inputDirection 方向键合成的方向（未归一化，分量为 -1、0、1）
func (s *BehaviorSystem) inputDirection() utils.Vec2f {
	var dir utils.Vec2f
	if s.input.IsAction(game.ActionLeft) {
		dir.X--
	}
	if s.input.IsAction(game.ActionRight) {
		dir.X++
	}
	if s.input.IsAction(game.ActionUp) {
		dir.Y++
	}
	if s.input.IsAction(game.ActionDown) {
		dir.Y--
	}
	return dir
}
