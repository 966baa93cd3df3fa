package behavior

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/systems"
)

// updateRatNest 鼠巢状态机
// 生成由 SpawnerSystem 负责；鼠巢被摧毁时在原地召唤鼠王
func (s *BehaviorSystem) updateRatNest(a *actor, nest *components.RatNestComponent) {
	prev := nest.State
	defer func() { s.logTransition(a, prev, nest.State) }()

	if a.health.IsDepleted() {
		if nest.State != components.RatNestDead {
			nest.State = components.RatNestDead
			s.onDeath(a)
			s.pending = append(s.pending, systems.SpawnRequest{
				Archetype: components.ArchetypeRatKing,
				Position:  a.pos.Pos,
			})
		}
		s.play(a, nest.State, false)
		return
	}

	switch nest.State {
	case components.RatNestInitial:
		nest.State = components.RatNestIdle
	case components.RatNestIdle:
	default:
		unhandled(a, nest.State)
	}

	s.play(a, nest.State, true)
}
