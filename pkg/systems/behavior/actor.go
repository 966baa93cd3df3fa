package behavior

import (
	"fmt"
	"math"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/entities"
	"github.com/gonewx/ratlair/pkg/utils"
	"go.uber.org/zap"
)

// actor 状态机处理函数需要的组件集合
// vel、weapons、perception 可能为 nil
type actor struct {
	id         ecs.EntityID
	archetype  components.Archetype
	pos        *components.PositionComponent
	vel        *components.VelocityComponent
	col        *components.ColliderComponent
	kin        *components.KinematicComponent
	health     *components.HealthComponent
	anim       *components.AnimationComponent
	weapons    *components.WeaponComponent
	perception *components.PerceptionComponent
}

// actor 收集实体组件；缺少必需组件的实体不运行状态机
func (s *BehaviorSystem) actor(id ecs.EntityID, archetype components.Archetype) (*actor, bool) {
	em := s.entityManager
	a := &actor{id: id, archetype: archetype}
	var ok bool
	if a.pos, ok = ecs.GetComponent[*components.PositionComponent](em, id); !ok {
		return nil, false
	}
	if a.col, ok = ecs.GetComponent[*components.ColliderComponent](em, id); !ok {
		return nil, false
	}
	if a.kin, ok = ecs.GetComponent[*components.KinematicComponent](em, id); !ok {
		return nil, false
	}
	if a.health, ok = ecs.GetComponent[*components.HealthComponent](em, id); !ok {
		return nil, false
	}
	if a.anim, ok = ecs.GetComponent[*components.AnimationComponent](em, id); !ok {
		return nil, false
	}
	a.vel, _ = ecs.GetComponent[*components.VelocityComponent](em, id)
	a.weapons, _ = ecs.GetComponent[*components.WeaponComponent](em, id)
	a.perception, _ = ecs.GetComponent[*components.PerceptionComponent](em, id)
	return a, true
}

// center 碰撞盒中心
func (a *actor) center() utils.Vec2f {
	return a.col.Rect(a.pos.Pos).Center()
}

// box 世界碰撞盒
func (a *actor) box() utils.Rect {
	return a.col.Rect(a.pos.Pos)
}

// step 沿方向直接位移 MoveSpeed*dt
func (a *actor) step(dir utils.Vec2f, dt float64) {
	components.ImmediateStep(a.pos, dir, a.kin.MoveSpeed, dt)
}

// weaponTimer 第 i 件武器的计时器；没有该武器时返回 nil
func (a *actor) weaponTimer(i int) *components.AbilityTimer {
	if a.weapons == nil || i < 0 || i >= len(a.weapons.Weapons) {
		return nil
	}
	return &a.weapons.Weapons[i].Timer
}

// playerView 本帧开始时玩家的感知快照
type playerView struct {
	id     ecs.EntityID
	alive  bool
	center utils.Vec2f
	box    utils.Rect
}

func (s *BehaviorSystem) observePlayer() playerView {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.ColliderComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](em, id)
		alive := true
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
			alive = !health.IsDepleted()
		}
		box := col.Rect(pos.Pos)
		return playerView{id: id, alive: alive, center: box.Center(), box: box}
	}
	return playerView{}
}

// toPlayer 从实体中心指向玩家中心的向量
func (s *BehaviorSystem) toPlayer(a *actor) utils.Vec2f {
	return s.player.center.Sub(a.center())
}

// canSeePlayer 玩家存活、在视野距离内且视线未被刚体遮挡
func (s *BehaviorSystem) canSeePlayer(a *actor) bool {
	if !s.player.alive || a.perception == nil {
		return false
	}
	from := a.center()
	if from.DistanceTo(s.player.center) > a.perception.SightDistance {
		return false
	}
	return s.level.LineOfSight(from, s.player.center)
}

// weaponInRange 面朝玩家时第 i 件武器的判定框是否覆盖玩家
func (s *BehaviorSystem) weaponInRange(a *actor, i int) bool {
	if !s.player.alive || a.weapons == nil || i < 0 || i >= len(a.weapons.Weapons) {
		return false
	}
	facing := a.kin.Facing
	if dx := s.toPlayer(a).X; dx != 0 {
		facing = utils.Sign(dx)
	}
	return a.weapons.Weapons[i].AttackRect(a.pos.Pos, facing).Overlaps(s.player.box)
}

// play 播放状态对应的片段；片段未变时保持进度
func (s *BehaviorSystem) play(a *actor, state fmt.Stringer, repeat bool) {
	clip := entities.ClipName(a.archetype, state)
	if a.anim.Clip == clip {
		return
	}
	next := s.atlas.Animator(clip, a.anim.FrameDuration, repeat)
	a.anim.Play(next.Clip, next.FrameCount, next.FrameDuration, next.Repeat)
}

// logTransition 记录状态切换
func (s *BehaviorSystem) logTransition(a *actor, from, to fmt.Stringer) {
	if from == to {
		return
	}
	s.logger.Debug("state",
		zap.Uint64("entity", uint64(a.id)),
		zap.Stringer("archetype", a.archetype),
		zap.Stringer("from", from),
		zap.Stringer("to", to))
}

// onDeath 实体第一次被检测到死亡时调用
// 通知生成器存活数减一；敌人尸体在 corpseTime 后移除
func (s *BehaviorSystem) onDeath(a *actor) {
	em := s.entityManager
	if by, ok := ecs.GetComponent[*components.SpawnedByComponent](em, a.id); ok {
		if spawner, ok := ecs.GetComponent[*components.SpawnerComponent](em, by.Spawner); ok {
			spawner.ChildDied()
		}
	}
	if a.archetype != components.ArchetypePlayer {
		ecs.AddComponent(em, a.id, &components.LifetimeComponent{MaxLifetime: s.corpseTime})
	}
	a.kin.IgnoreGravity = false
	s.logger.Info("died",
		zap.Uint64("entity", uint64(a.id)),
		zap.Stringer("archetype", a.archetype))
}

// unhandled 状态机进入了该原型未处理的状态
func unhandled(a *actor, state fmt.Stringer) {
	panic(fmt.Sprintf("behavior: %s entity %d in unhandled state %s", a.archetype, a.id, state))
}

// horizontal 只保留水平方向的单位向量
func horizontal(dx float64) utils.Vec2f {
	return utils.V2(utils.Sign(dx), 0)
}

// closeEnough 水平距离小于该值时不再靠近，避免来回抖动
const closeEnough = 1.0

func shouldApproach(dx float64) bool {
	return math.Abs(dx) > closeEnough
}
