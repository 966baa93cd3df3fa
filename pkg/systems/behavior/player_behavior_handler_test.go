package behavior

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spawnGroundedPlayer 创建玩家并推进一帧，使其从 Initial 进入 Idle
func spawnGroundedPlayer(t *testing.T, f *fixture) (ecs.EntityID, *components.PlayerComponent, *components.KinematicComponent) {
	t.Helper()
	id := f.spawn(t, components.ArchetypePlayer, utils.V2(50.0, 0.0))
	player := get[*components.PlayerComponent](t, f.em, id)
	kin := get[*components.KinematicComponent](t, f.em, id)
	kin.OnFloor = true
	f.tick(0.1)
	require.Equal(t, components.PlayerIdle, player.State)
	return id, player, kin
}

func TestPlayer_LightAttack(t *testing.T) {
	f := newFixture(t)
	id, player, kin := spawnGroundedPlayer(t, f)
	stamina := get[*components.StaminaComponent](t, f.em, id)
	weapons := get[*components.WeaponComponent](t, f.em, id)

	f.input.Press(game.ActionAttack)
	f.tick(0.1)

	assert.Equal(t, components.PlayerAttacking, player.State)
	assert.Equal(t, playerLightAttack, weapons.Active)
	assert.Equal(t, components.PhaseAnticipation, weapons.Weapons[playerLightAttack].Timer.Phase)
	assert.InDelta(t, 90.0, stamina.Current, 1e-9)
	anim := get[*components.AnimationComponent](t, f.em, id)
	assert.Equal(t, "player_attacking", anim.Clip)
	assert.False(t, anim.Repeat)

	for i := 0; i < 10 && player.State == components.PlayerAttacking; i++ {
		kin.OnFloor = true
		f.tick(0.1)
	}
	assert.Equal(t, components.PlayerIdle, player.State)
	require.Len(t, f.level.Attacks, 1)
	assert.True(t, f.level.Attacks[0].PlayerFriendly)
	assert.Equal(t, 12.0, f.level.Attacks[0].Damage)
}

func TestPlayer_HeavyAttack(t *testing.T) {
	f := newFixture(t)
	id, player, _ := spawnGroundedPlayer(t, f)
	weapons := get[*components.WeaponComponent](t, f.em, id)

	f.input.Press(game.ActionHeavyAttack)
	f.tick(0.1)

	assert.Equal(t, components.PlayerAttacking, player.State)
	assert.Equal(t, playerHeavyAttack, weapons.Active)
	assert.True(t, weapons.IsReady(playerLightAttack))
}

func TestPlayer_AttackNeedsStamina(t *testing.T) {
	f := newFixture(t)
	id, player, _ := spawnGroundedPlayer(t, f)
	stamina := get[*components.StaminaComponent](t, f.em, id)
	weapons := get[*components.WeaponComponent](t, f.em, id)
	stamina.Current = 5

	f.input.Press(game.ActionAttack)
	f.tick(0.1)

	assert.Equal(t, components.PlayerIdle, player.State)
	assert.True(t, weapons.IsReady(playerLightAttack))
	assert.InDelta(t, 7.5, stamina.Current, 1e-9)
}

func TestPlayer_Jump(t *testing.T) {
	f := newFixture(t)
	id, player, kin := spawnGroundedPlayer(t, f)
	vel := get[*components.VelocityComponent](t, f.em, id)

	f.input.Press(game.ActionJump)
	f.tick(0.05)
	assert.Equal(t, components.PlayerJumping, player.State)

	kin.OnFloor = false
	f.tick(0.05)
	assert.Equal(t, components.PlayerJumping, player.State)
	assert.InDelta(t, 260.0, vel.Vel.Y, 1e-9)
	assert.InDelta(t, 0.0, vel.Vel.X, 1e-9)

	kin.OnCeiling = true
	f.tick(0.05)
	assert.Equal(t, components.PlayerFalling, player.State)

	kin.OnCeiling = false
	kin.OnFloor = true
	f.tick(0.05)
	assert.Equal(t, components.PlayerIdle, player.State)
}

func TestPlayer_Dash(t *testing.T) {
	f := newFixture(t)
	id, player, kin := spawnGroundedPlayer(t, f)
	pos := get[*components.PositionComponent](t, f.em, id)
	stamina := get[*components.StaminaComponent](t, f.em, id)

	f.input.Hold(game.ActionRight, true)
	f.input.Press(game.ActionDash)
	f.tick(0.05)

	assert.Equal(t, components.PlayerDashing, player.State)
	assert.InDelta(t, 75.0, stamina.Current, 1e-9)
	assert.True(t, kin.IgnoreGravity)
	assert.InDelta(t, 50.0, pos.Pos.X, 1e-9)

	f.tick(0.05)
	assert.InDelta(t, 63.0, pos.Pos.X, 1e-9)

	for i := 0; i < 10 && player.State == components.PlayerDashing; i++ {
		kin.OnFloor = true
		f.tick(0.05)
	}
	assert.NotEqual(t, components.PlayerDashing, player.State)
	assert.False(t, kin.IgnoreGravity)
}

func TestPlayer_WalkThenFall(t *testing.T) {
	f := newFixture(t)
	id, player, kin := spawnGroundedPlayer(t, f)
	pos := get[*components.PositionComponent](t, f.em, id)

	f.input.Hold(game.ActionLeft, true)
	f.tick(0.1)
	assert.Equal(t, components.PlayerWalking, player.State)
	assert.Equal(t, -1.0, kin.Facing)
	assert.InDelta(t, 41.0, pos.Pos.X, 1e-9)

	kin.OnFloor = false
	f.tick(0.1)
	assert.Equal(t, components.PlayerFalling, player.State)
}

func TestPlayer_Climb(t *testing.T) {
	f := newFixture(t)
	id, player, kin := spawnGroundedPlayer(t, f)
	pos := get[*components.PositionComponent](t, f.em, id)

	kin.OnStair = true
	f.input.Hold(game.ActionUp, true)
	f.tick(0.1)
	assert.Equal(t, components.PlayerClimbing, player.State)
	assert.True(t, kin.IgnoreGravity)

	kin.OnFloor = false
	f.tick(0.1)
	assert.Equal(t, components.PlayerClimbing, player.State)
	assert.InDelta(t, 9.0, pos.Pos.Y, 1e-9)

	kin.OnStair = false
	f.tick(0.1)
	assert.Equal(t, components.PlayerFalling, player.State)
	assert.False(t, kin.IgnoreGravity)
}

func TestPlayer_ClimbDownToFloor(t *testing.T) {
	f := newFixture(t)
	id, player, kin := spawnGroundedPlayer(t, f)
	weapons := get[*components.WeaponComponent](t, f.em, id)

	kin.OnStair = true
	f.input.Hold(game.ActionDown, true)
	f.tick(0.1)
	require.Equal(t, components.PlayerClimbing, player.State)

	// 已经在楼梯底端的地面上，继续按下会回到 Idle
	kin.OnFloor = true
	f.tick(0.1)
	assert.Equal(t, components.PlayerIdle, player.State)
	assert.False(t, kin.IgnoreGravity)

	f.input.Hold(game.ActionDown, false)
	f.input.Press(game.ActionAttack)
	f.tick(0.1)
	assert.Equal(t, components.PlayerAttacking, player.State)
	assert.Equal(t, playerLightAttack, weapons.Active)
}

func TestPlayer_Death(t *testing.T) {
	f := newFixture(t)
	id, player, _ := spawnGroundedPlayer(t, f)
	get[*components.HealthComponent](t, f.em, id).Current = 0

	f.tick(0.1)

	assert.Equal(t, components.PlayerDead, player.State)
	assert.False(t, ecs.HasComponent[*components.LifetimeComponent](f.em, id), "玩家尸体不会被移除")
	assert.Equal(t, "player_dead", get[*components.AnimationComponent](t, f.em, id).Clip)
}

func TestPlayer_UnhandledStatePanics(t *testing.T) {
	f := newFixture(t)
	_, player, _ := spawnGroundedPlayer(t, f)
	player.State = components.PlayerState(42)

	assert.Panics(t, func() { f.tick(0.1) })
}
