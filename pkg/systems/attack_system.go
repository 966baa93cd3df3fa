package systems

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"go.uber.org/zap"
)

// SplashDamage 一次攻击同时命中 n 个目标时每个目标受到的伤害
//
// penalty 为 0 时每个目标都受到完整伤害，为 1 时伤害由所有目标均分。
// 总伤害是 n * 单体伤害，不做上限。n < 1 时返回 base。
func SplashDamage(base float64, n int, penalty float64) float64 {
	if n < 1 {
		return base
	}
	return penalty*(base/float64(n)) + (1-penalty)*base
}

// AttackSystem 结算关卡攻击队列
//
// 每帧先递减所有攻击的延迟，延迟仍为正的攻击留到下一帧；
// 其余攻击参与碰撞结算，无论是否命中都在本帧丢弃。
type AttackSystem struct {
	entityManager *ecs.EntityManager
	level         *game.Level
	hurtTime      float64
	logger        *zap.Logger

	// OnPlayerHit 玩家被命中时调用（镜头震动）
	OnPlayerHit func(damage float64)
}

// NewAttackSystem 创建攻击结算系统，hurtTime 为命中后的受伤状态时长
func NewAttackSystem(em *ecs.EntityManager, level *game.Level, hurtTime float64, logger *zap.Logger) *AttackSystem {
	return &AttackSystem{
		entityManager: em,
		level:         level,
		hurtTime:      hurtTime,
		logger:        game.OrNop(logger).Named("attack"),
	}
}

// Update 推进延迟并结算到期的攻击
func (s *AttackSystem) Update(dt float64) {
	pending := s.level.Attacks[:0]
	for _, attack := range s.level.Attacks {
		attack.Delay -= dt
		if attack.Delay > components.TimeEpsilon {
			pending = append(pending, attack)
			continue
		}
		if attack.PlayerFriendly {
			s.resolvePlayerAttack(attack)
		} else {
			s.resolveEnemyAttack(attack)
		}
	}
	clear(s.level.Attacks[len(pending):])
	s.level.Attacks = pending
}

// player 返回玩家实体，没有玩家时返回 0
func (s *AttackSystem) player() ecs.EntityID {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager)
	if len(players) == 0 {
		return 0
	}
	return players[0]
}

// aliveTargetHit 目标存活且碰撞盒与攻击判定框重叠
func (s *AttackSystem) aliveTargetHit(id ecs.EntityID, attack components.Attack) bool {
	em := s.entityManager
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok || health.IsDepleted() {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return false
	}
	col, ok := ecs.GetComponent[*components.ColliderComponent](em, id)
	if !ok {
		return false
	}
	return col.Rect(pos.Pos).Overlaps(attack.Collider)
}

func (s *AttackSystem) resolvePlayerAttack(attack components.Attack) {
	em := s.entityManager
	var targets []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.HealthComponent](em) {
		if ecs.HasComponent[*components.PlayerComponent](em, id) {
			continue
		}
		if s.aliveTargetHit(id, attack) {
			targets = append(targets, id)
		}
	}
	if len(targets) == 0 {
		return
	}

	player := s.player()
	stats, hasStats := ecs.GetComponent[*components.PlayerStatsComponent](em, player)
	penalty := 0.0
	if hasStats {
		penalty = stats.SplashPenalty
	}
	damage := SplashDamage(attack.Damage, len(targets), penalty)

	for _, id := range targets {
		if !s.applyHit(id, damage, attack) {
			continue
		}
		if !hasStats {
			continue
		}
		if drop, ok := ecs.GetComponent[*components.ExpDropComponent](em, id); ok {
			stats.Exp += drop.Value
		}
		stats.Kills++
	}
}

func (s *AttackSystem) resolveEnemyAttack(attack components.Attack) {
	player := s.player()
	if player == 0 || !s.aliveTargetHit(player, attack) {
		return
	}
	s.applyHit(player, attack.Damage, attack)
	if s.OnPlayerHit != nil {
		s.OnPlayerHit(attack.Damage)
	}
}

// applyHit 扣血、击退并刷新受伤计时
// 返回这一击是否让目标的生命值从正数降到 0
func (s *AttackSystem) applyHit(id ecs.EntityID, damage float64, attack components.Attack) bool {
	em := s.entityManager
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	wasAlive := !health.IsDepleted()
	health.Damage(damage)

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
		resistance := 0.0
		if kin, ok := ecs.GetComponent[*components.KinematicComponent](em, id); ok {
			resistance = kin.KnockbackResistance
		}
		vel.Vel = vel.Vel.Add(attack.Knockback.Scale(1 - resistance))
	}

	if hurt, ok := ecs.GetComponent[*components.HurtComponent](em, id); ok {
		hurt.Remaining = s.hurtTime
	} else {
		ecs.AddComponent(em, id, &components.HurtComponent{Remaining: s.hurtTime})
	}

	killed := wasAlive && health.IsDepleted()
	s.logger.Debug("hit",
		zap.Uint64("entity", uint64(id)),
		zap.Float64("damage", damage),
		zap.Float64("health", health.Current),
		zap.Bool("killed", killed))
	return killed
}
