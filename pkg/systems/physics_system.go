package systems

import (
	"math"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
)

// PhysicsSystem 重力、摩擦、速度积分和刚体推出
//
// 碰撞解析是离散、非迭代的：按关卡碰撞盒的顺序，每个重叠的碰撞盒各计算一次
// 最小平移向量并直接作用到位置上。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	level         *game.Level
	gravity       float64
	friction      float64
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, level *game.Level, gravity, friction float64) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		level:         level,
		gravity:       gravity,
		friction:      friction,
	}
}

// Update 积分所有带速度和碰撞盒的实体
func (s *PhysicsSystem) Update(dt float64) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.VelocityComponent, *components.ColliderComponent](em) {
		kin, ok := ecs.GetComponent[*components.KinematicComponent](em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](em, id)
		s.step(pos, vel, col, kin, dt)
	}
}

func (s *PhysicsSystem) step(pos *components.PositionComponent, vel *components.VelocityComponent, col *components.ColliderComponent, kin *components.KinematicComponent, dt float64) {
	if !kin.IgnoreGravity {
		vel.Vel.Y -= s.gravity * dt
	}
	vel.Vel.X -= vel.Vel.X * math.Min(1, s.friction*dt)

	pos.Pos = pos.Pos.Add(vel.Vel.Scale(dt))

	kin.OnFloor = false
	kin.OnCeiling = false
	for _, rigid := range s.level.Colliders {
		mtv := col.Rect(pos.Pos).MTV(rigid)
		if mtv.IsZero() {
			continue
		}
		pos.Pos = pos.Pos.Add(mtv)
		if mtv.X != 0 {
			vel.Vel.X = 0
		}
		if mtv.Y != 0 {
			vel.Vel.Y = 0
		}
		if mtv.Y > 0 {
			kin.OnFloor = true
		} else if mtv.Y < 0 {
			kin.OnCeiling = true
		}
	}
	kin.OnStair = s.level.OnStair(col.Rect(pos.Pos))
}
