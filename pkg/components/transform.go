package components

import "github.com/gonewx/ratlair/pkg/utils"

// PositionComponent 实体的世界坐标（碰撞盒底边中点）
type PositionComponent struct {
	Pos utils.Vec2f
}

// VelocityComponent 实体速度（世界像素/秒）
// 只有物理系统积分速度；行为状态机的移动意图通过 ImmediateStep 直接改位置
type VelocityComponent struct {
	Vel utils.Vec2f
}

// ImmediateStep 沿 direction 以 speed 直接位移，不经过加速度模型
func ImmediateStep(pos *PositionComponent, direction utils.Vec2f, speed, dt float64) {
	pos.Pos = pos.Pos.Add(direction.Scale(speed * dt))
}
