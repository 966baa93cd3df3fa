package systems

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplashDamage(t *testing.T) {
	tests := []struct {
		name    string
		base    float64
		n       int
		penalty float64
		want    float64
	}{
		{"单个目标", 30, 1, 0.5, 30},
		{"无惩罚", 30, 3, 0, 30},
		{"完全均分", 30, 3, 1, 10},
		{"半惩罚", 30, 2, 0.5, 22.5},
		{"没有目标", 30, 0, 1, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SplashDamage(tt.base, tt.n, tt.penalty), 1e-9)
		})
	}

	// 总伤害不设上限
	assert.Greater(t, 3*SplashDamage(30, 3, 0.5), 30.0)
}

func TestAttackSystem_DelayedAttack(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	addPlayer(em, utils.V2(20.0, 16.0), 0)
	rat := addBody(em, utils.V2(100.0, 16.0), utils.V2(12.0, 8.0), 40)
	sys := NewAttackSystem(em, level, 0.4, nil)

	level.QueueAttack(components.Attack{
		Collider:       utils.RectXYWH(90, 16, 20, 10),
		Damage:         10,
		Delay:          0.25,
		PlayerFriendly: true,
	})
	level.QueueAttack(components.Attack{
		Collider:       utils.RectXYWH(200, 16, 20, 10),
		Damage:         10,
		PlayerFriendly: true,
	})

	sys.Update(0.125)
	health := get[*components.HealthComponent](t, em, rat)
	assert.Equal(t, 40.0, health.Current)
	require.Len(t, level.Attacks, 1, "未命中的攻击在生效当帧丢弃")
	assert.InDelta(t, 0.125, level.Attacks[0].Delay, 1e-9)

	sys.Update(0.125)
	assert.Equal(t, 30.0, health.Current)
	assert.Empty(t, level.Attacks)
	assert.True(t, ecs.HasComponent[*components.HurtComponent](em, rat))
}

// TestAttackSystem_DelayAtSixtyHertz 0.1 秒延迟的攻击在累计 dt 达到 0.1 的第 6 帧结算
func TestAttackSystem_DelayAtSixtyHertz(t *testing.T) {
	const dt = 1.0 / 60
	em := ecs.NewEntityManager()
	level := newTestLevel()
	addPlayer(em, utils.V2(20.0, 16.0), 0)
	rat := addBody(em, utils.V2(100.0, 16.0), utils.V2(12.0, 8.0), 40)
	sys := NewAttackSystem(em, level, 0.4, nil)

	level.QueueAttack(components.Attack{
		Collider:       utils.RectXYWH(90, 16, 20, 10),
		Damage:         10,
		Delay:          0.1,
		PlayerFriendly: true,
	})

	for range 5 {
		sys.Update(dt)
	}
	require.Len(t, level.Attacks, 1)
	health := get[*components.HealthComponent](t, em, rat)
	assert.Equal(t, 40.0, health.Current)

	sys.Update(dt)
	assert.Empty(t, level.Attacks)
	assert.Equal(t, 30.0, health.Current)
}

func TestAttackSystem_PlayerSplash(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	player := addPlayer(em, utils.V2(20.0, 16.0), 0.5)
	a := addBody(em, utils.V2(100.0, 16.0), utils.V2(12.0, 8.0), 30)
	b := addBody(em, utils.V2(104.0, 16.0), utils.V2(12.0, 8.0), 30)
	sys := NewAttackSystem(em, level, 0.4, nil)

	level.QueueAttack(components.Attack{
		Collider:       utils.RectXYWH(80, 16, 40, 10),
		Damage:         20,
		PlayerFriendly: true,
	})
	sys.Update(0.016)

	assert.Equal(t, 15.0, get[*components.HealthComponent](t, em, a).Current)
	assert.Equal(t, 15.0, get[*components.HealthComponent](t, em, b).Current)
	assert.Equal(t, 100.0, get[*components.HealthComponent](t, em, player).Current, "玩家不会被自己的攻击命中")
}

func TestAttackSystem_KillAwardsExp(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	player := addPlayer(em, utils.V2(20.0, 16.0), 0)
	rat := addBody(em, utils.V2(100.0, 16.0), utils.V2(12.0, 8.0), 10)
	ecs.AddComponent(em, rat, &components.ExpDropComponent{Value: 5})
	sys := NewAttackSystem(em, level, 0.4, nil)

	hit := components.Attack{Collider: utils.RectXYWH(90, 16, 20, 10), Damage: 12, PlayerFriendly: true}
	level.QueueAttack(hit)
	sys.Update(0.016)

	stats := get[*components.PlayerStatsComponent](t, em, player)
	assert.Equal(t, 5, stats.Exp)
	assert.Equal(t, 1, stats.Kills)
	assert.True(t, get[*components.HealthComponent](t, em, rat).IsDepleted())

	// 尸体不再是目标
	level.QueueAttack(hit)
	sys.Update(0.016)
	assert.Equal(t, 5, stats.Exp)
	assert.Equal(t, 1, stats.Kills)
}

func TestAttackSystem_EnemyAttackHitsOnlyPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	player := addPlayer(em, utils.V2(100.0, 16.0), 0)
	rat := addBody(em, utils.V2(104.0, 16.0), utils.V2(12.0, 8.0), 20)
	sys := NewAttackSystem(em, level, 0.4, nil)

	var hits []float64
	sys.OnPlayerHit = func(damage float64) { hits = append(hits, damage) }

	level.QueueAttack(components.Attack{
		Collider:  utils.RectXYWH(90, 16, 30, 10),
		Damage:    8,
		Knockback: utils.V2(80.0, 40.0),
	})
	sys.Update(0.016)

	assert.Equal(t, 92.0, get[*components.HealthComponent](t, em, player).Current)
	assert.Equal(t, 20.0, get[*components.HealthComponent](t, em, rat).Current)
	assert.Equal(t, []float64{8}, hits)

	vel := get[*components.VelocityComponent](t, em, player)
	assert.Equal(t, utils.V2(80.0, 40.0), vel.Vel)
	hurt := get[*components.HurtComponent](t, em, player)
	assert.Equal(t, 0.4, hurt.Remaining)
}

func TestAttackSystem_KnockbackResistance(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	addPlayer(em, utils.V2(20.0, 16.0), 0)
	rat := addBody(em, utils.V2(100.0, 16.0), utils.V2(12.0, 8.0), 50)
	get[*components.KinematicComponent](t, em, rat).KnockbackResistance = 0.5
	get[*components.VelocityComponent](t, em, rat).Vel = utils.V2(10.0, 0.0)
	sys := NewAttackSystem(em, level, 0.4, nil)

	level.QueueAttack(components.Attack{
		Collider:       utils.RectXYWH(90, 16, 20, 10),
		Damage:         1,
		Knockback:      utils.V2(100.0, 40.0),
		PlayerFriendly: true,
	})
	sys.Update(0.016)

	assert.Equal(t, utils.V2(60.0, 20.0), get[*components.VelocityComponent](t, em, rat).Vel)
}
