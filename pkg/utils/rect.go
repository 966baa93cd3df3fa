package utils

import "math"

// Pivot 构造矩形时使用的参考点
type Pivot int

const (
	// PivotBottomLeft 左下角
	PivotBottomLeft Pivot = iota
	// PivotBottomCenter 底边中点（实体位置默认锚点）
	PivotBottomCenter
	// PivotCenter 中心
	PivotCenter
	// PivotLeftCenter 左边中点
	PivotLeftCenter
	// PivotRightCenter 右边中点
	PivotRightCenter
	// PivotTopCenter 顶边中点
	PivotTopCenter
)

// Rect 轴对齐矩形，由左下角和右上角定义
// 调用者需保证 TopRight 的两个分量都不小于 BotLeft
type Rect struct {
	BotLeft  Vec2f
	TopRight Vec2f
}

// NewRect 以 pivot 所指的参考点位于 at 构造矩形
func NewRect(pivot Pivot, at Vec2f, size Vec2f) Rect {
	var bl Vec2f
	switch pivot {
	case PivotBottomLeft:
		bl = at
	case PivotBottomCenter:
		bl = Vec2f{X: at.X - size.X/2, Y: at.Y}
	case PivotCenter:
		bl = Vec2f{X: at.X - size.X/2, Y: at.Y - size.Y/2}
	case PivotLeftCenter:
		bl = Vec2f{X: at.X, Y: at.Y - size.Y/2}
	case PivotRightCenter:
		bl = Vec2f{X: at.X - size.X, Y: at.Y - size.Y/2}
	case PivotTopCenter:
		bl = Vec2f{X: at.X - size.X/2, Y: at.Y - size.Y}
	default:
		bl = at
	}
	return Rect{BotLeft: bl, TopRight: bl.Add(size)}
}

// RectXYWH 以左下角和宽高构造矩形
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{BotLeft: Vec2f{X: x, Y: y}, TopRight: Vec2f{X: x + w, Y: y + h}}
}

// Width 宽度
func (r Rect) Width() float64 { return r.TopRight.X - r.BotLeft.X }

// Height 高度
func (r Rect) Height() float64 { return r.TopRight.Y - r.BotLeft.Y }

// Size 宽高
func (r Rect) Size() Vec2f { return r.TopRight.Sub(r.BotLeft) }

// Center 中心点
func (r Rect) Center() Vec2f {
	return Vec2f{X: (r.BotLeft.X + r.TopRight.X) / 2, Y: (r.BotLeft.Y + r.TopRight.Y) / 2}
}

// PivotPoint 返回矩形上 pivot 对应的点
func (r Rect) PivotPoint(pivot Pivot) Vec2f {
	c := r.Center()
	switch pivot {
	case PivotBottomLeft:
		return r.BotLeft
	case PivotBottomCenter:
		return Vec2f{X: c.X, Y: r.BotLeft.Y}
	case PivotLeftCenter:
		return Vec2f{X: r.BotLeft.X, Y: c.Y}
	case PivotRightCenter:
		return Vec2f{X: r.TopRight.X, Y: c.Y}
	case PivotTopCenter:
		return Vec2f{X: c.X, Y: r.TopRight.Y}
	default:
		return c
	}
}

// Translate 平移
func (r Rect) Translate(v Vec2f) Rect {
	return Rect{BotLeft: r.BotLeft.Add(v), TopRight: r.TopRight.Add(v)}
}

// MirrorX 以竖直线 x=axisX 做镜像（用于朝左时翻转攻击判定框）
func (r Rect) MirrorX(axisX float64) Rect {
	return Rect{
		BotLeft:  Vec2f{X: 2*axisX - r.TopRight.X, Y: r.BotLeft.Y},
		TopRight: Vec2f{X: 2*axisX - r.BotLeft.X, Y: r.TopRight.Y},
	}
}

// Overlaps AABB 相交测试，仅边界接触不算相交
func (r Rect) Overlaps(o Rect) bool {
	return r.BotLeft.X < o.TopRight.X && o.BotLeft.X < r.TopRight.X &&
		r.BotLeft.Y < o.TopRight.Y && o.BotLeft.Y < r.TopRight.Y
}

// Contains 点是否在矩形内（含边界）
func (r Rect) Contains(p Vec2f) bool {
	return p.X >= r.BotLeft.X && p.X <= r.TopRight.X &&
		p.Y >= r.BotLeft.Y && p.Y <= r.TopRight.Y
}

// MTV 计算最小平移向量：把 r 平移该向量后与 o 恰好接触
// 两个矩形不相交时返回零向量
func (r Rect) MTV(o Rect) Vec2f {
	if !r.Overlaps(o) {
		return Vec2f{}
	}
	overlapX := math.Min(r.TopRight.X, o.TopRight.X) - math.Max(r.BotLeft.X, o.BotLeft.X)
	overlapY := math.Min(r.TopRight.Y, o.TopRight.Y) - math.Max(r.BotLeft.Y, o.BotLeft.Y)

	rc, oc := r.Center(), o.Center()
	if overlapX < overlapY {
		if rc.X < oc.X {
			return Vec2f{X: o.BotLeft.X - r.TopRight.X}
		}
		return Vec2f{X: o.TopRight.X - r.BotLeft.X}
	}
	if rc.Y < oc.Y {
		return Vec2f{Y: o.BotLeft.Y - r.TopRight.Y}
	}
	return Vec2f{Y: o.TopRight.Y - r.BotLeft.Y}
}

// IntersectsSegment 线段 a→b 是否穿过矩形（slab 算法）
// 用于敌人视线遮挡检测
func (r Rect) IntersectsSegment(a, b Vec2f) bool {
	d := b.Sub(a)
	tMin, tMax := 0.0, 1.0

	axes := [2]struct{ origin, dir, lo, hi float64 }{
		{a.X, d.X, r.BotLeft.X, r.TopRight.X},
		{a.Y, d.Y, r.BotLeft.Y, r.TopRight.Y},
	}
	for _, ax := range axes {
		if ax.dir == 0 {
			if ax.origin < ax.lo || ax.origin > ax.hi {
				return false
			}
			continue
		}
		t1 := (ax.lo - ax.origin) / ax.dir
		t2 := (ax.hi - ax.origin) / ax.dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}
