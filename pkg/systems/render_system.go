package systems

import (
	"image/color"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
)

// 绘制层
const (
	LayerLevel = iota
	LayerLight
	LayerEntity
	LayerDebug
	LayerHUD
)

var (
	wallColor        = color.RGBA{R: 46, G: 40, B: 52, A: 255}
	stairColor       = color.RGBA{R: 120, G: 90, B: 50, A: 255}
	hurtFlashColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colliderColor    = color.RGBA{G: 255, A: 255}
	maskColor        = color.RGBA{R: 0, G: 160, B: 255, A: 255}
	liveAttackColor  = color.RGBA{R: 255, A: 255}
	delayAttackColor = color.RGBA{R: 255, G: 200, A: 255}
)

// RenderSystem 把关卡和实体转换为绘制图元
type RenderSystem struct {
	entityManager *ecs.EntityManager
	level         *game.Level
	atlas         game.Atlas
	renderer      game.Renderer
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, level *game.Level, atlas game.Atlas, renderer game.Renderer) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		level:         level,
		atlas:         atlas,
		renderer:      renderer,
	}
}

// Draw 设置镜头并提交本帧的世界图元
func (s *RenderSystem) Draw(cam *components.CameraComponent, showColliders bool) {
	if cam != nil {
		s.renderer.SetCamera(cam.ViewPosition(), cam.ViewSize)
	}

	for _, r := range s.level.Colliders {
		s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRect, Rect: r, Color: wallColor, Layer: LayerLevel})
	}
	for _, r := range s.level.Stairs {
		s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRectOutline, Rect: r, Color: stairColor, Layer: LayerLevel})
	}

	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.LightComponent, *components.PositionComponent](em) {
		light, _ := ecs.GetComponent[*components.LightComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.renderer.PushPrimitive(game.DrawPrimitive{
			Kind:   game.PrimitiveCircle,
			Center: s.focus(id, pos.Pos),
			Radius: light.Radius,
			Color:  light.Color,
			Layer:  LayerLight,
		})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.AnimationComponent, *components.PositionComponent](em) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		sprite := s.atlas.SpriteRect(anim.Clip, anim.Frame).Translate(pos.Pos)
		if anim.Flip {
			sprite = sprite.MirrorX(pos.Pos.X)
		}
		var clr color.Color = s.atlas.Color(anim.Clip)
		if hurt, ok := ecs.GetComponent[*components.HurtComponent](em, id); ok && int(hurt.Remaining*20)%2 == 0 {
			clr = hurtFlashColor
		}
		s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRect, Rect: sprite, Color: clr, Layer: LayerEntity})

		if showColliders {
			s.drawEntityDebug(id, anim, pos.Pos)
		}
	}

	if showColliders {
		for _, a := range s.level.Attacks {
			clr := liveAttackColor
			if a.Delay > 0 {
				clr = delayAttackColor
			}
			s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRectOutline, Rect: a.Collider, Color: clr, Layer: LayerDebug})
		}
	}
}

// drawEntityDebug 碰撞盒、受击遮罩和当前帧的攻击判定
func (s *RenderSystem) drawEntityDebug(id ecs.EntityID, anim *components.AnimationComponent, pos utils.Vec2f) {
	if col, ok := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id); ok {
		s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRectOutline, Rect: col.Rect(pos), Color: colliderColor, Layer: LayerDebug})
	}
	if mask, ok := s.atlas.Mask(anim.Clip, pos, anim.Flip); ok {
		s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRectOutline, Rect: mask, Color: maskColor, Layer: LayerDebug})
	}
	if hit, ok := s.atlas.AttackCollider(anim.Clip, anim.Frame); ok {
		r := hit.Translate(pos)
		if anim.Flip {
			r = r.MirrorX(pos.X)
		}
		s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRectOutline, Rect: r, Color: delayAttackColor, Layer: LayerDebug})
	}
}

// focus 实体碰撞盒中心，没有碰撞盒时返回位置
func (s *RenderSystem) focus(id ecs.EntityID, pos utils.Vec2f) utils.Vec2f {
	if col, ok := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id); ok {
		return col.Rect(pos).Center()
	}
	return pos
}
