package components

import "github.com/gonewx/ratlair/pkg/utils"

// CameraComponent 镜头状态
type CameraComponent struct {
	// Position 视口中心的世界坐标（不含震动偏移）
	Position utils.Vec2f
	// ViewSize 视口的世界尺寸
	ViewSize utils.Vec2f
	// FollowLerp 跟随插值系数，1 表示立即贴合
	FollowLerp float64
	// Offset 跟随目标的偏移
	Offset utils.Vec2f

	// IsAnimating 是否正在执行缓动平移（此时不跟随玩家）
	IsAnimating bool

	// ShakeRemaining 剩余震动时间（秒）
	ShakeRemaining float64
	// ShakeDuration 本次震动总时长（秒）
	ShakeDuration float64
	// ShakeMagnitude 震动幅度（世界像素）
	ShakeMagnitude float64
	// ShakeOffset 本帧的震动偏移
	ShakeOffset utils.Vec2f
}

// ViewPosition 包含震动偏移的最终镜头位置
func (c *CameraComponent) ViewPosition() utils.Vec2f {
	return c.Position.Add(c.ShakeOffset)
}
