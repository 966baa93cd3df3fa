package behavior

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/entities"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/systems"
	"go.uber.org/zap"
)

// BehaviorSystem 每帧运行各原型的状态机
//
// 按状态组件类型分发：PlayerComponent、RatComponent、BatComponent、
// RatKingComponent、RatNestComponent 各自对应一个处理函数。
// 状态机只发出意图（切换动画、ImmediateStep 位移、发动能力），
// 真正的物理积分和攻击结算由后续系统完成。
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	level         *game.Level
	atlas         game.Atlas
	input         game.Input
	corpseTime    float64
	logger        *zap.Logger

	// 本帧的感知快照
	player playerView
	// 本帧产生的追加生成（鼠巢死亡召唤鼠王），由调用方在帧末插入
	pending []systems.SpawnRequest
}

// NewBehaviorSystem 创建行为系统
// corpseTime 为敌人死亡后尸体保留的秒数
func NewBehaviorSystem(em *ecs.EntityManager, level *game.Level, atlas game.Atlas, input game.Input, corpseTime float64, logger *zap.Logger) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: em,
		level:         level,
		atlas:         atlas,
		input:         input,
		corpseTime:    corpseTime,
		logger:        game.OrNop(logger).Named("behavior"),
	}
}

// Update 运行所有状态机并发出本帧进入 Action 阶段的武器攻击
// 返回需要在帧末插入的生成请求
func (s *BehaviorSystem) Update(dt float64) []systems.SpawnRequest {
	s.pending = nil
	s.player = s.observePlayer()

	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](em) {
		comp, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		if a, ok := s.actor(id, components.ArchetypePlayer); ok {
			s.updatePlayer(a, comp, dt)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.RatComponent](em) {
		comp, _ := ecs.GetComponent[*components.RatComponent](em, id)
		if a, ok := s.actor(id, components.ArchetypeRat); ok {
			s.updateRat(a, comp, dt)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BatComponent](em) {
		comp, _ := ecs.GetComponent[*components.BatComponent](em, id)
		if a, ok := s.actor(id, components.ArchetypeBat); ok {
			s.updateBat(a, comp, dt)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.RatKingComponent](em) {
		comp, _ := ecs.GetComponent[*components.RatKingComponent](em, id)
		if a, ok := s.actor(id, components.ArchetypeRatKing); ok {
			s.updateRatKing(a, comp, dt)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.RatNestComponent](em) {
		comp, _ := ecs.GetComponent[*components.RatNestComponent](em, id)
		if a, ok := s.actor(id, components.ArchetypeRatNest); ok {
			s.updateRatNest(a, comp)
		}
	}

	s.emitAttacks()
	return s.pending
}

// emitAttacks 为本次激活刚进入 Action 阶段的武器生成攻击
// 每次激活只生成一次；已死亡实体的攻击被丢弃
func (s *BehaviorSystem) emitAttacks() {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.WeaponComponent, *components.PositionComponent](em) {
		weapons, _ := ecs.GetComponent[*components.WeaponComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		alive := true
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
			alive = !health.IsDepleted()
		}
		facing := 1.0
		if kin, ok := ecs.GetComponent[*components.KinematicComponent](em, id); ok {
			facing = kin.Facing
		}
		friendly := ecs.HasComponent[*components.PlayerComponent](em, id)

		for i := range weapons.Weapons {
			w := &weapons.Weapons[i]
			if !w.Timer.ConsumeActionStart() || !alive {
				continue
			}
			knockback := w.Knockback
			knockback.X *= facing
			s.level.QueueAttack(components.Attack{
				Collider:       w.AttackRect(pos.Pos, facing),
				Damage:         w.Damage,
				Knockback:      knockback,
				Delay:          w.AttackDelay,
				PlayerFriendly: friendly,
			})
		}
	}
}

// RequiredClips 所有状态机可能播放的动画片段（initial 状态不播放）
func RequiredClips() []string {
	var clips []string
	for st := components.PlayerIdle; st <= components.PlayerDead; st++ {
		clips = append(clips, entities.ClipName(components.ArchetypePlayer, st))
	}
	for st := components.RatIdle; st <= components.RatDead; st++ {
		clips = append(clips, entities.ClipName(components.ArchetypeRat, st))
	}
	for st := components.BatIdle; st <= components.BatDead; st++ {
		clips = append(clips, entities.ClipName(components.ArchetypeBat, st))
	}
	for st := components.RatKingIdle; st <= components.RatKingDead; st++ {
		clips = append(clips, entities.ClipName(components.ArchetypeRatKing, st))
	}
	for st := components.RatNestIdle; st <= components.RatNestDead; st++ {
		clips = append(clips, entities.ClipName(components.ArchetypeRatNest, st))
	}
	return clips
}
