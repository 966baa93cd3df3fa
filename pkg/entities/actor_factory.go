package entities

import (
	"fmt"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
)

// ClipName 原型在某个状态下播放的动画片段名，如 "rat_walking"
func ClipName(archetype components.Archetype, state fmt.Stringer) string {
	return archetype.String() + "_" + state.String()
}

// newActor 创建所有原型共有的组件
//
// 包括位置、碰撞盒、物理标志、生命值、原型标签和动画，
// 以及原型表中配置了的可选能力（耐力、武器、冲刺、跳跃、治疗、生成器、光源）。
// 静态原型（如鼠巢）不添加速度组件，因此不参与物理积分。
func newActor(em *ecs.EntityManager, table *config.ArchetypeTable, atlas game.Atlas, archetype components.Archetype, pos utils.Vec2f) (ecs.EntityID, *config.ArchetypeStats, error) {
	if em == nil {
		return 0, nil, fmt.Errorf("entity manager cannot be nil")
	}
	if table == nil || atlas == nil {
		return 0, nil, fmt.Errorf("archetype table and atlas are required")
	}
	stats, ok := table.Get(archetype)
	if !ok {
		return 0, nil, fmt.Errorf("no stats for archetype %s", archetype)
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{Pos: pos})
	if !stats.Static {
		ecs.AddComponent(em, id, &components.VelocityComponent{})
	}
	ecs.AddComponent(em, id, &components.ColliderComponent{Size: stats.Collider.Vec()})
	ecs.AddComponent(em, id, &components.KinematicComponent{
		MoveSpeed:           stats.MoveSpeed,
		Facing:              1,
		IgnoreGravity:       stats.Flying,
		KnockbackResistance: stats.KnockbackResistance,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{Current: stats.Health, Max: stats.Health})
	ecs.AddComponent(em, id, &components.ArchetypeComponent{Type: archetype})

	anim := atlas.Animator(archetype.String()+"_idle", stats.FrameDuration, true)
	ecs.AddComponent(em, id, &anim)

	if stats.Stamina != nil {
		ecs.AddComponent(em, id, &components.StaminaComponent{
			Current:   stats.Stamina.Max,
			Max:       stats.Stamina.Max,
			RegenRate: stats.Stamina.Regen,
		})
	}
	if len(stats.Weapons) > 0 {
		ecs.AddComponent(em, id, newWeapons(stats.Weapons))
	}
	if stats.Dashing != nil {
		attackWeapon := -1
		if stats.Dashing.AttackWeapon != "" {
			attackWeapon = stats.WeaponIndex(stats.Dashing.AttackWeapon)
		}
		ecs.AddComponent(em, id, &components.DashingComponent{
			Timer:        stats.Dashing.Timer.Timer(),
			Speed:        stats.Dashing.Speed,
			StaminaCost:  stats.Dashing.StaminaCost,
			AttackWeapon: attackWeapon,
		})
	}
	if stats.Jumping != nil {
		ecs.AddComponent(em, id, &components.JumpingComponent{
			Timer: stats.Jumping.Timer.Timer(),
			Speed: stats.Jumping.Speed,
			Angle: stats.Jumping.JumpAngle(),
		})
	}
	if stats.Healing != nil {
		ecs.AddComponent(em, id, &components.HealingComponent{
			Timer:     stats.Healing.Timer.Timer(),
			Rate:      stats.Healing.Rate,
			Threshold: stats.Healing.Threshold,
		})
	}
	if stats.Spawner != nil {
		spawned, err := components.ParseArchetype(stats.Spawner.Archetype)
		if err != nil {
			return 0, nil, fmt.Errorf("archetype %s spawner: %w", archetype, err)
		}
		ecs.AddComponent(em, id, &components.SpawnerComponent{
			Period:    stats.Spawner.Period,
			MaxTotal:  stats.Spawner.MaxTotal,
			MaxAlive:  stats.Spawner.MaxAlive,
			Archetype: spawned,
			Jitter:    stats.Spawner.Jitter,
		})
	}
	if stats.Light != nil {
		c, err := config.ParseColor(stats.Light.Color)
		if err != nil {
			return 0, nil, fmt.Errorf("archetype %s light: %w", archetype, err)
		}
		ecs.AddComponent(em, id, &components.LightComponent{Radius: stats.Light.Radius, Color: c})
	}

	return id, stats, nil
}

func newWeapons(cfgs []config.WeaponConfig) *components.WeaponComponent {
	weapons := make([]components.Weapon, 0, len(cfgs))
	for _, w := range cfgs {
		weapons = append(weapons, components.Weapon{
			Name:        w.Name,
			Offset:      w.Offset.Rect(),
			Damage:      w.Damage,
			Knockback:   w.Knockback.Vec(),
			StaminaCost: w.StaminaCost,
			AttackDelay: w.Delay,
			Timer:       w.Timer.Timer(),
		})
	}
	return &components.WeaponComponent{Weapons: weapons}
}

// addEnemyComponents 敌人共有的感知和经验掉落
func addEnemyComponents(em *ecs.EntityManager, id ecs.EntityID, stats *config.ArchetypeStats) {
	ecs.AddComponent(em, id, &components.PerceptionComponent{SightDistance: stats.SightDistance})
	ecs.AddComponent(em, id, &components.ExpDropComponent{Value: stats.ExpDrop})
}
