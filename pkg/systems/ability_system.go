package systems

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
)

// AbilitySystem 推进所有能力计时器，恢复耐力，递减受伤计时
// 每帧在行为系统之前运行，状态机看到的是本帧推进后的计时器
type AbilitySystem struct {
	entityManager *ecs.EntityManager
}

// NewAbilitySystem 创建能力系统
func NewAbilitySystem(em *ecs.EntityManager) *AbilitySystem {
	return &AbilitySystem{entityManager: em}
}

// Update 推进 dt 秒
func (s *AbilitySystem) Update(dt float64) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith1[*components.WeaponComponent](em) {
		weapons, _ := ecs.GetComponent[*components.WeaponComponent](em, id)
		for i := range weapons.Weapons {
			weapons.Weapons[i].Timer.Update(dt)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.DashingComponent](em) {
		dash, _ := ecs.GetComponent[*components.DashingComponent](em, id)
		dash.Timer.Update(dt)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.JumpingComponent](em) {
		jump, _ := ecs.GetComponent[*components.JumpingComponent](em, id)
		jump.Timer.Update(dt)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.HealingComponent](em) {
		heal, _ := ecs.GetComponent[*components.HealingComponent](em, id)
		heal.Timer.Update(dt)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.StaminaComponent](em) {
		stamina, _ := ecs.GetComponent[*components.StaminaComponent](em, id)
		stamina.Regenerate(dt)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.HurtComponent](em) {
		hurt, _ := ecs.GetComponent[*components.HurtComponent](em, id)
		hurt.Remaining -= dt
		if !hurt.IsHurt() {
			ecs.RemoveComponent[*components.HurtComponent](em, id)
		}
	}
}
