package components

// DashingComponent 冲刺能力：Action 阶段沿朝向高速位移
type DashingComponent struct {
	Timer       AbilityTimer
	Speed       float64 // 冲刺速度（像素/秒）
	StaminaCost float64
	// AttackWeapon 冲刺时同时发动的武器索引，-1 表示无（鼠王翻滚攻击）
	AttackWeapon int
}

// JumpingComponent 跳跃能力：Action 阶段持续施加起跳速度
type JumpingComponent struct {
	Timer AbilityTimer
	Speed float64 // 起跳速度（像素/秒）
	Angle float64 // 起跳角度（弧度，π/2 为竖直向上，朝向为正方向）
}

// HealingComponent 治疗能力：Action 阶段按速率恢复生命
type HealingComponent struct {
	Timer     AbilityTimer
	Rate      float64 // 每秒治疗量
	Threshold float64 // 生命比例低于该值时才会发动
}
