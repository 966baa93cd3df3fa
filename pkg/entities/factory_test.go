package entities

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestData(t *testing.T) (*config.ArchetypeTable, *config.AtlasConfig) {
	t.Helper()
	table, err := config.LoadArchetypeTable("../../data/archetypes.yaml")
	require.NoError(t, err)
	atlas, err := config.LoadAtlas("../../data/atlas.yaml")
	require.NoError(t, err)
	return table, atlas
}

func TestNewPlayerEntity(t *testing.T) {
	table, atlas := loadTestData(t)
	em := ecs.NewEntityManager()

	id, err := NewPlayerEntity(em, table, atlas, utils.V2(32.0, 16.0))
	require.NoError(t, err)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, utils.V2(32.0, 16.0), pos.Pos)

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, components.PlayerInitial, player.State)

	stats, ok := ecs.GetComponent[*components.PlayerStatsComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 0.5, stats.SplashPenalty)

	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	assert.Equal(t, 100.0, health.Current)
	assert.Equal(t, health.Max, health.Current)

	stamina, ok := ecs.GetComponent[*components.StaminaComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, stamina.Max, stamina.Current)

	weapons, ok := ecs.GetComponent[*components.WeaponComponent](em, id)
	require.True(t, ok)
	require.Len(t, weapons.Weapons, 2)
	assert.Equal(t, "slash", weapons.Weapons[0].Name)
	assert.True(t, weapons.IsReady(0))

	jump, ok := ecs.GetComponent[*components.JumpingComponent](em, id)
	require.True(t, ok)
	assert.InDelta(t, 1.5707963, jump.Angle, 1e-6)

	dash, ok := ecs.GetComponent[*components.DashingComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, -1, dash.AttackWeapon)

	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, "player_idle", anim.Clip)
	assert.Equal(t, 0.1, anim.FrameDuration)

	assert.True(t, ecs.HasComponent[*components.LightComponent](em, id))
	assert.True(t, ecs.HasComponent[*components.VelocityComponent](em, id))
	assert.False(t, ecs.HasComponent[*components.PerceptionComponent](em, id))
}

func TestEnemyFactories(t *testing.T) {
	table, atlas := loadTestData(t)

	tests := []struct {
		name      string
		archetype components.Archetype
		check     func(t *testing.T, em *ecs.EntityManager, id ecs.EntityID)
	}{
		{
			name:      "老鼠",
			archetype: components.ArchetypeRat,
			check: func(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) {
				rat, ok := ecs.GetComponent[*components.RatComponent](em, id)
				require.True(t, ok)
				assert.Equal(t, components.RatInitial, rat.State)
				kin, _ := ecs.GetComponent[*components.KinematicComponent](em, id)
				assert.False(t, kin.IgnoreGravity)
			},
		},
		{
			name:      "蝙蝠",
			archetype: components.ArchetypeBat,
			check: func(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) {
				assert.True(t, ecs.HasComponent[*components.BatComponent](em, id))
				assert.True(t, ecs.HasComponent[*components.HealingComponent](em, id))
				kin, _ := ecs.GetComponent[*components.KinematicComponent](em, id)
				assert.True(t, kin.IgnoreGravity, "bats fly")
			},
		},
		{
			name:      "鼠王",
			archetype: components.ArchetypeRatKing,
			check: func(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) {
				assert.True(t, ecs.HasComponent[*components.RatKingComponent](em, id))
				dash, ok := ecs.GetComponent[*components.DashingComponent](em, id)
				require.True(t, ok)
				assert.Equal(t, 1, dash.AttackWeapon, "roll is the second weapon")
			},
		},
		{
			name:      "鼠巢",
			archetype: components.ArchetypeRatNest,
			check: func(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) {
				assert.True(t, ecs.HasComponent[*components.RatNestComponent](em, id))
				assert.False(t, ecs.HasComponent[*components.VelocityComponent](em, id), "nests are static")
				spawner, ok := ecs.GetComponent[*components.SpawnerComponent](em, id)
				require.True(t, ok)
				assert.Equal(t, components.ArchetypeRat, spawner.Archetype)
				assert.Equal(t, 3, spawner.MaxAlive)
				assert.Zero(t, spawner.AliveCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := Spawn(em, table, atlas, tt.archetype, utils.V2(100.0, 16.0))
			require.NoError(t, err)

			arch, ok := ecs.GetComponent[*components.ArchetypeComponent](em, id)
			require.True(t, ok)
			assert.Equal(t, tt.archetype, arch.Type)
			assert.True(t, ecs.HasComponent[*components.PerceptionComponent](em, id))
			assert.True(t, ecs.HasComponent[*components.ExpDropComponent](em, id))
			tt.check(t, em, id)
		})
	}
}

func TestSpawn_Errors(t *testing.T) {
	table, atlas := loadTestData(t)

	_, err := Spawn(nil, table, atlas, components.ArchetypeRat, utils.Vec2f{})
	assert.Error(t, err)

	_, err = Spawn(ecs.NewEntityManager(), nil, atlas, components.ArchetypeRat, utils.Vec2f{})
	assert.Error(t, err)

	_, err = Spawn(ecs.NewEntityManager(), table, atlas, components.Archetype(42), utils.Vec2f{})
	assert.Error(t, err)

	empty := &config.ArchetypeTable{Archetypes: map[string]config.ArchetypeStats{}}
	em := ecs.NewEntityManager()
	_, err = Spawn(em, empty, atlas, components.ArchetypeRat, utils.Vec2f{})
	assert.Error(t, err)
	assert.Zero(t, em.Count(), "no entity is created when stats are missing")
}

func TestClipName(t *testing.T) {
	assert.Equal(t, "rat_king_dashing", ClipName(components.ArchetypeRatKing, components.RatKingDashing))
	assert.Equal(t, "player_climbing", ClipName(components.ArchetypePlayer, components.PlayerClimbing))
}
