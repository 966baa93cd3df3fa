package systems

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestPhysics_LandsOnFloor(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	id := addBody(em, utils.V2(50.0, 20.0), utils.V2(10.0, 14.0), 10)
	sys := NewPhysicsSystem(em, level, 900, 8)

	kin := get[*components.KinematicComponent](t, em, id)
	for i := 0; i < 60; i++ {
		sys.Update(1.0 / 60)
	}

	pos := get[*components.PositionComponent](t, em, id)
	vel := get[*components.VelocityComponent](t, em, id)
	assert.True(t, kin.OnFloor)
	assert.False(t, kin.OnCeiling)
	assert.InDelta(t, 16.0, pos.Pos.Y, 1e-9)
	assert.Zero(t, vel.Vel.Y)
}

func TestPhysics_Ceiling(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	level.Colliders = append(level.Colliders, utils.RectXYWH(0, 40, 320, 16))
	id := addBody(em, utils.V2(50.0, 20.0), utils.V2(10.0, 14.0), 10)
	kin := get[*components.KinematicComponent](t, em, id)
	kin.IgnoreGravity = true
	vel := get[*components.VelocityComponent](t, em, id)
	vel.Vel = utils.V2(0.0, 300.0)

	NewPhysicsSystem(em, level, 900, 8).Update(0.05)

	pos := get[*components.PositionComponent](t, em, id)
	assert.True(t, kin.OnCeiling)
	assert.False(t, kin.OnFloor)
	assert.InDelta(t, 26.0, pos.Pos.Y, 1e-9)
	assert.Zero(t, vel.Vel.Y)
}

func TestPhysics_WallStopsHorizontalMotion(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	level.Colliders = append(level.Colliders, utils.RectXYWH(100, 16, 16, 64))
	id := addBody(em, utils.V2(90.0, 16.0), utils.V2(10.0, 14.0), 10)
	get[*components.KinematicComponent](t, em, id).IgnoreGravity = true
	vel := get[*components.VelocityComponent](t, em, id)
	vel.Vel = utils.V2(200.0, 0.0)

	NewPhysicsSystem(em, level, 900, 0).Update(0.05)

	pos := get[*components.PositionComponent](t, em, id)
	assert.InDelta(t, 95.0, pos.Pos.X, 1e-9)
	assert.Zero(t, vel.Vel.X)
}

func TestPhysics_Friction(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	id := addBody(em, utils.V2(50.0, 60.0), utils.V2(10.0, 14.0), 10)
	get[*components.KinematicComponent](t, em, id).IgnoreGravity = true
	vel := get[*components.VelocityComponent](t, em, id)
	vel.Vel = utils.V2(100.0, 0.0)

	NewPhysicsSystem(em, level, 900, 8).Update(0.05)

	pos := get[*components.PositionComponent](t, em, id)
	assert.InDelta(t, 60.0, vel.Vel.X, 1e-9)
	assert.InDelta(t, 53.0, pos.Pos.X, 1e-9)
	assert.InDelta(t, 60.0, pos.Pos.Y, 1e-9)
}

func TestPhysics_OnStair(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	level.Stairs = []utils.Rect{utils.RectXYWH(40, 16, 16, 64)}
	on := addBody(em, utils.V2(50.0, 16.0), utils.V2(10.0, 14.0), 10)
	off := addBody(em, utils.V2(150.0, 16.0), utils.V2(10.0, 14.0), 10)

	NewPhysicsSystem(em, level, 900, 8).Update(1.0 / 60)

	assert.True(t, get[*components.KinematicComponent](t, em, on).OnStair)
	assert.False(t, get[*components.KinematicComponent](t, em, off).OnStair)
}

func TestPhysics_SkipsStaticEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	level := newTestLevel()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{Pos: utils.V2(50.0, 60.0)})
	ecs.AddComponent(em, id, &components.ColliderComponent{Size: utils.V2(24.0, 12.0)})
	ecs.AddComponent(em, id, &components.KinematicComponent{})

	NewPhysicsSystem(em, level, 900, 8).Update(0.1)

	assert.Equal(t, utils.V2(50.0, 60.0), get[*components.PositionComponent](t, em, id).Pos)
}
