// Package utils 提供游戏开发中常用的工具函数
//
// vec2.go 和 rect.go 是整个引擎的几何基础：
// 实体位置、速度、碰撞盒、攻击判定区域都基于这里的类型。
//
// # 坐标系统
//
// 世界坐标 Y 轴向上（重力为 -Y 方向），屏幕坐标 Y 轴向下，
// 两者之间的转换见 coordinates.go。
package utils

import "math"

// Number 可作为 Vec2 分量的数值类型
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Vec2 二维向量，值类型
type Vec2[T Number] struct {
	X, Y T
}

// Vec2f 浮点向量（世界坐标、速度等）
type Vec2f = Vec2[float64]

// Vec2i 整数向量（瓦片坐标等）
type Vec2i = Vec2[int]

// V2 构造向量
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add 向量加法
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Mul 分量乘法
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

// Neg 取反
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Dot 点积
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// IsZero 两个分量是否都为 0
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Len 向量长度
func (v Vec2[T]) Len() float64 {
	x, y := float64(v.X), float64(v.Y)
	return math.Hypot(x, y)
}

// DistanceTo 到另一点的欧氏距离
func (v Vec2[T]) DistanceTo(o Vec2[T]) float64 {
	return o.Sub(v).Len()
}

// ToFloat 转换为浮点向量
func (v Vec2[T]) ToFloat() Vec2f {
	return Vec2f{X: float64(v.X), Y: float64(v.Y)}
}

// Normalize 返回单位向量；零向量返回零向量
func (v Vec2[T]) Normalize() Vec2f {
	l := v.Len()
	if l == 0 {
		return Vec2f{}
	}
	return Vec2f{X: float64(v.X) / l, Y: float64(v.Y) / l}
}

// Rotate 逆时针旋转 angle 弧度
func (v Vec2[T]) Rotate(angle float64) Vec2f {
	s, c := math.Sincos(angle)
	x, y := float64(v.X), float64(v.Y)
	return Vec2f{X: x*c - y*s, Y: x*s + y*c}
}

// Sign 返回 -1、0 或 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
