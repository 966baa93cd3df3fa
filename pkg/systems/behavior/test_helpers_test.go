package behavior

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/entities"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/systems"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/require"
)

const testCorpseTime = 1.5

// fixture 一个没有刚体的空关卡，只运行能力系统和行为系统
type fixture struct {
	em        *ecs.EntityManager
	level     *game.Level
	input     *game.ActionState
	table     *config.ArchetypeTable
	atlas     *config.AtlasConfig
	abilities *systems.AbilitySystem
	behavior  *BehaviorSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	table, err := config.LoadArchetypeTable("../../../data/archetypes.yaml")
	require.NoError(t, err)
	atlas, err := config.LoadAtlas("../../../data/atlas.yaml")
	require.NoError(t, err)

	em := ecs.NewEntityManager()
	level := &game.Level{
		Name: "test",
		Size: utils.V2(640.0, 320.0),
		Room: utils.RectXYWH(0, 0, 640, 320),
	}
	input := game.NewActionState()
	return &fixture{
		em:        em,
		level:     level,
		input:     input,
		table:     table,
		atlas:     atlas,
		abilities: systems.NewAbilitySystem(em),
		behavior:  NewBehaviorSystem(em, level, atlas, input, testCorpseTime, nil),
	}
}

func (f *fixture) spawn(t *testing.T, archetype components.Archetype, pos utils.Vec2f) ecs.EntityID {
	t.Helper()
	id, err := entities.Spawn(f.em, f.table, f.atlas, archetype, pos)
	require.NoError(t, err)
	return id
}

// dummyPlayer 只有感知所需组件的玩家，不运行玩家状态机
func (f *fixture) dummyPlayer(pos utils.Vec2f) ecs.EntityID {
	id := f.em.CreateEntity()
	ecs.AddComponent(f.em, id, &components.PlayerComponent{State: components.PlayerIdle})
	ecs.AddComponent(f.em, id, &components.PositionComponent{Pos: pos})
	ecs.AddComponent(f.em, id, &components.ColliderComponent{Size: utils.V2(10.0, 14.0)})
	ecs.AddComponent(f.em, id, &components.HealthComponent{Current: 100, Max: 100})
	return id
}

// tick 按游戏循环的顺序推进能力计时器和状态机
func (f *fixture) tick(dt float64) []systems.SpawnRequest {
	f.abilities.Update(dt)
	return f.behavior.Update(dt)
}

func get[T any](t *testing.T, em *ecs.EntityManager, id ecs.EntityID) T {
	t.Helper()
	c, ok := ecs.GetComponent[T](em, id)
	require.True(t, ok)
	return c
}
