package entities

import (
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
)

// NewPlayerEntity 创建玩家实体
// 玩家由输入驱动，额外带有成长数据（经验、击杀数、溅射惩罚）
func NewPlayerEntity(em *ecs.EntityManager, table *config.ArchetypeTable, atlas game.Atlas, pos utils.Vec2f) (ecs.EntityID, error) {
	id, stats, err := newActor(em, table, atlas, components.ArchetypePlayer, pos)
	if err != nil {
		return 0, err
	}
	ecs.AddComponent(em, id, &components.PlayerComponent{State: components.PlayerInitial})
	ecs.AddComponent(em, id, &components.PlayerStatsComponent{SplashPenalty: stats.SplashPenalty})
	return id, nil
}
