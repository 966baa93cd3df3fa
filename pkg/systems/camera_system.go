package systems

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// shakeFrequency 震动噪声的采样频率（每秒）
const shakeFrequency = 25.0

// CameraSystem 管理镜头：跟随玩家、开场缓动平移、受击震动，并限制在房间内
type CameraSystem struct {
	entityManager *ecs.EntityManager
	level         *game.Level
	cameraEntity  ecs.EntityID

	tweenX, tweenY *gween.Tween
	noise          *perlin.Perlin
	shakeTime      float64

	// 配置中的默认震动参数
	defaultShake         float64
	defaultShakeDuration float64
}

// NewCameraSystem 创建镜头实体，初始位置为房间中心
func NewCameraSystem(em *ecs.EntityManager, level *game.Level, cfg config.CameraConfig, seed int64) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		level:         level,
		noise:         perlin.NewPerlin(2, 2, 3, seed),

		defaultShake:         cfg.ShakeMagnitude,
		defaultShakeDuration: cfg.ShakeDuration,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Position:   level.Room.Center(),
		ViewSize:   utils.V2(cfg.ViewWidth, cfg.ViewHeight),
		FollowLerp: cfg.FollowLerp,
	})
	cs.clamp(cs.Camera())
	return cs
}

// Camera 镜头组件
func (cs *CameraSystem) Camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	return cam
}

// ScrollTo 在 duration 秒内把镜头缓动到 target，期间不跟随玩家
// duration <= 0 时立即跳到 target
func (cs *CameraSystem) ScrollTo(target utils.Vec2f, duration float64) {
	cam := cs.Camera()
	if duration <= 0 {
		cam.Position = target
		cam.IsAnimating = false
		cs.clamp(cam)
		return
	}
	cs.tweenX = gween.New(float32(cam.Position.X), float32(target.X), float32(duration), ease.InOutQuad)
	cs.tweenY = gween.New(float32(cam.Position.Y), float32(target.Y), float32(duration), ease.InOutQuad)
	cam.IsAnimating = true
}

// Shake 开始一次震动，magnitude 或 duration <= 0 时使用配置的默认值
func (cs *CameraSystem) Shake(magnitude, duration float64) {
	cam := cs.Camera()
	if magnitude <= 0 {
		magnitude = cs.defaultShake
	}
	if duration <= 0 {
		duration = cs.defaultShakeDuration
	}
	cam.ShakeMagnitude = magnitude
	cam.ShakeDuration = duration
	cam.ShakeRemaining = duration
}

// Update 推进镜头
// 有缓动时执行缓动，否则以 FollowLerp 跟随玩家
// FollowLerp 是 60 FPS 下每帧的插值比例，其他帧率按 dt 换算
func (cs *CameraSystem) Update(dt float64) {
	cam := cs.Camera()
	if cam == nil {
		return
	}

	if cam.IsAnimating {
		x, doneX := cs.tweenX.Update(float32(dt))
		y, doneY := cs.tweenY.Update(float32(dt))
		cam.Position = utils.V2(float64(x), float64(y))
		if doneX && doneY {
			cam.IsAnimating = false
			cs.tweenX, cs.tweenY = nil, nil
		}
	} else if target, ok := cs.PlayerFocus(); ok {
		target = target.Add(cam.Offset)
		cam.Position = cam.Position.Add(target.Sub(cam.Position).Scale(followAlpha(cam.FollowLerp, dt)))
	}
	cs.clamp(cam)
	cs.updateShake(cam, dt)
}

// followAlpha 把每帧插值比例换算为 dt 对应的比例
func followAlpha(lerp, dt float64) float64 {
	if lerp >= 1 {
		return 1
	}
	return 1 - math.Pow(1-lerp, dt*60)
}

// PlayerFocus 玩家碰撞盒中心，也是开场平移的终点
func (cs *CameraSystem) PlayerFocus() (utils.Vec2f, bool) {
	em := cs.entityManager
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	if len(players) == 0 {
		return utils.Vec2f{}, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, players[0])
	if col, ok := ecs.GetComponent[*components.ColliderComponent](em, players[0]); ok {
		return col.Rect(pos.Pos).Center(), true
	}
	return pos.Pos, true
}

func (cs *CameraSystem) updateShake(cam *components.CameraComponent, dt float64) {
	if cam.ShakeRemaining <= 0 {
		cam.ShakeOffset = utils.Vec2f{}
		return
	}
	cam.ShakeRemaining = math.Max(0, cam.ShakeRemaining-dt)
	cs.shakeTime += dt

	falloff := 1.0
	if cam.ShakeDuration > 0 {
		falloff = cam.ShakeRemaining / cam.ShakeDuration
	}
	amp := cam.ShakeMagnitude * falloff
	t := cs.shakeTime * shakeFrequency
	cam.ShakeOffset = utils.V2(cs.noise.Noise1D(t), cs.noise.Noise1D(t+100)).Scale(amp)
}

// clamp 让视口保持在房间内；房间比视口小时居中
func (cs *CameraSystem) clamp(cam *components.CameraComponent) {
	room := cs.level.Room
	half := cam.ViewSize.Scale(0.5)
	cam.Position.X = clampAxis(cam.Position.X, room.BotLeft.X+half.X, room.TopRight.X-half.X)
	cam.Position.Y = clampAxis(cam.Position.Y, room.BotLeft.Y+half.Y, room.TopRight.Y-half.Y)
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
