package game

import (
	"image/color"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/utils"
)

// PrimitiveKind 绘制图元类型
type PrimitiveKind int

const (
	PrimitiveRect PrimitiveKind = iota
	PrimitiveRectOutline
	PrimitiveCircle
	PrimitiveText
)

// DrawPrimitive 一个待绘制的图元
// Screen 为 false 时坐标是世界坐标，由渲染器按镜头变换
type DrawPrimitive struct {
	Kind   PrimitiveKind
	Rect   utils.Rect  // Rect/RectOutline
	Center utils.Vec2f // Circle 圆心；Text 左上角（屏幕坐标时 y 向下）
	Radius float64
	Text   string
	Color  color.Color
	Layer  int // 越大越靠上
	Screen bool
}

// Renderer 渲染队列
type Renderer interface {
	PushPrimitive(p DrawPrimitive)
	SetCamera(position, viewSize utils.Vec2f)
	ClearQueue()
}

// Atlas 精灵图集查询接口，由 config.AtlasConfig 实现
type Atlas interface {
	Animator(name string, frameDuration float64, repeat bool) components.AnimationComponent
	SpriteRect(name string, frame int) utils.Rect
	AttackCollider(name string, frame int) (utils.Rect, bool)
	Mask(name string, pivot utils.Vec2f, flip bool) (utils.Rect, bool)
	Color(name string) color.RGBA
}
