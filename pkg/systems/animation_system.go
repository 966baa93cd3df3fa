package systems

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
)

// AnimationSystem 推进帧动画并按朝向设置翻转
// 片段切换由行为系统负责，这里只推进帧
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 推进所有动画
func (s *AnimationSystem) Update(dt float64) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](em) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
		if kin, ok := ecs.GetComponent[*components.KinematicComponent](em, id); ok {
			anim.Flip = kin.Facing < 0
		}
		anim.Advance(dt)
	}
}
