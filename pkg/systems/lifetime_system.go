package systems

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
)

// LifetimeSystem 计时并销毁到期的实体（敌人尸体）
// 销毁是延迟的：实体在本帧末尾的 RemoveMarkedEntities 中才真正移除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进所有生命周期计时
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if components.Reached(lifetime.CurrentLifetime, lifetime.MaxLifetime) {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
		}
	}
}
