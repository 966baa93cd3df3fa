package entities

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
)

// NewRatEntity 创建老鼠：地面近战，看到玩家后靠近并撕咬
func NewRatEntity(em *ecs.EntityManager, table *config.ArchetypeTable, atlas game.Atlas, pos utils.Vec2f) (ecs.EntityID, error) {
	id, stats, err := newActor(em, table, atlas, components.ArchetypeRat, pos)
	if err != nil {
		return 0, err
	}
	addEnemyComponents(em, id, stats)
	ecs.AddComponent(em, id, &components.RatComponent{State: components.RatInitial})
	return id, nil
}

// NewBatEntity 创建蝙蝠：飞行，生命值低时在空中治疗
func NewBatEntity(em *ecs.EntityManager, table *config.ArchetypeTable, atlas game.Atlas, pos utils.Vec2f) (ecs.EntityID, error) {
	id, stats, err := newActor(em, table, atlas, components.ArchetypeBat, pos)
	if err != nil {
		return 0, err
	}
	addEnemyComponents(em, id, stats)
	ecs.AddComponent(em, id, &components.BatComponent{State: components.BatInitial})
	return id, nil
}

// NewRatKingEntity 创建鼠王：近距离撕咬，远距离翻滚冲撞
func NewRatKingEntity(em *ecs.EntityManager, table *config.ArchetypeTable, atlas game.Atlas, pos utils.Vec2f) (ecs.EntityID, error) {
	id, stats, err := newActor(em, table, atlas, components.ArchetypeRatKing, pos)
	if err != nil {
		return 0, err
	}
	addEnemyComponents(em, id, stats)
	ecs.AddComponent(em, id, &components.RatKingComponent{State: components.RatKingInitial})
	return id, nil
}

// NewRatNestEntity 创建鼠巢：不移动，周期性生成老鼠
func NewRatNestEntity(em *ecs.EntityManager, table *config.ArchetypeTable, atlas game.Atlas, pos utils.Vec2f) (ecs.EntityID, error) {
	id, stats, err := newActor(em, table, atlas, components.ArchetypeRatNest, pos)
	if err != nil {
		return 0, err
	}
	addEnemyComponents(em, id, stats)
	ecs.AddComponent(em, id, &components.RatNestComponent{State: components.RatNestInitial})
	return id, nil
}
