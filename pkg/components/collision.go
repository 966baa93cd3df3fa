package components

import "github.com/gonewx/ratlair/pkg/utils"

// ColliderComponent 定义实体的碰撞盒
// 碰撞盒的底边中点与 PositionComponent.Pos 对齐
type ColliderComponent struct {
	Size utils.Vec2f // 碰撞盒宽高（世界像素）
}

// Rect 返回实体在 pos 处的世界碰撞盒
func (c *ColliderComponent) Rect(pos utils.Vec2f) utils.Rect {
	return utils.NewRect(utils.PivotBottomCenter, pos, c.Size)
}

// KinematicComponent 物理标志与移动参数
type KinematicComponent struct {
	MoveSpeed           float64 // ImmediateStep 使用的移动速度（像素/秒）
	Facing              float64 // 朝向：1 向右，-1 向左
	IgnoreGravity       bool    // 本帧是否忽略重力（攀爬、飞行）
	KnockbackResistance float64 // 击退抗性 [0,1]，1 表示完全不被击退

	OnFloor   bool // 上一次物理积分是否被地面向上推出
	OnCeiling bool // 上一次物理积分是否被天花板向下推出
	OnStair   bool // 碰撞盒是否与楼梯区域重叠
}

// FaceTowards 根据水平方向更新朝向，dx 为 0 时保持不变
func (k *KinematicComponent) FaceTowards(dx float64) {
	if dx > 0 {
		k.Facing = 1
	} else if dx < 0 {
		k.Facing = -1
	}
}
