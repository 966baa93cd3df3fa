package systems

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/require"
)

// newTestLevel 20x10 瓦片的房间，底部一行地面
func newTestLevel() *game.Level {
	return &game.Level{
		Name:      "test",
		Size:      utils.V2(320.0, 160.0),
		Room:      utils.RectXYWH(0, 0, 320, 160),
		Colliders: []utils.Rect{utils.RectXYWH(0, 0, 320, 16)},
	}
}

// addBody 添加一个带碰撞盒、生命值和速度的实体
func addBody(em *ecs.EntityManager, pos utils.Vec2f, size utils.Vec2f, hp float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{Pos: pos})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.ColliderComponent{Size: size})
	ecs.AddComponent(em, id, &components.KinematicComponent{Facing: 1})
	ecs.AddComponent(em, id, &components.HealthComponent{Current: hp, Max: hp})
	return id
}

func addPlayer(em *ecs.EntityManager, pos utils.Vec2f, penalty float64) ecs.EntityID {
	id := addBody(em, pos, utils.V2(10.0, 14.0), 100)
	ecs.AddComponent(em, id, &components.PlayerComponent{State: components.PlayerIdle})
	ecs.AddComponent(em, id, &components.PlayerStatsComponent{SplashPenalty: penalty})
	return id
}

func get[T any](t *testing.T, em *ecs.EntityManager, id ecs.EntityID) T {
	t.Helper()
	c, ok := ecs.GetComponent[T](em, id)
	require.True(t, ok)
	return c
}

// recordingRenderer 记录提交的图元
type recordingRenderer struct {
	primitives []game.DrawPrimitive
	camera     utils.Vec2f
	viewSize   utils.Vec2f
}

func (r *recordingRenderer) PushPrimitive(p game.DrawPrimitive) { r.primitives = append(r.primitives, p) }

func (r *recordingRenderer) SetCamera(position, viewSize utils.Vec2f) {
	r.camera, r.viewSize = position, viewSize
}

func (r *recordingRenderer) ClearQueue() { r.primitives = nil }

func (r *recordingRenderer) count(layer int, kind game.PrimitiveKind) int {
	n := 0
	for _, p := range r.primitives {
		if p.Layer == layer && p.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) texts() []string {
	var out []string
	for _, p := range r.primitives {
		if p.Kind == game.PrimitiveText {
			out = append(out, p.Text)
		}
	}
	return out
}
