package entities

import (
	"fmt"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
)

// Spawn 按原型分发到对应的工厂函数
func Spawn(em *ecs.EntityManager, table *config.ArchetypeTable, atlas game.Atlas, archetype components.Archetype, pos utils.Vec2f) (ecs.EntityID, error) {
	switch archetype {
	case components.ArchetypePlayer:
		return NewPlayerEntity(em, table, atlas, pos)
	case components.ArchetypeRat:
		return NewRatEntity(em, table, atlas, pos)
	case components.ArchetypeBat:
		return NewBatEntity(em, table, atlas, pos)
	case components.ArchetypeRatKing:
		return NewRatKingEntity(em, table, atlas, pos)
	case components.ArchetypeRatNest:
		return NewRatNestEntity(em, table, atlas, pos)
	default:
		return 0, fmt.Errorf("no factory for archetype %s", archetype)
	}
}
