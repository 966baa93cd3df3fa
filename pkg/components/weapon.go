package components

import "github.com/gonewx/ratlair/pkg/utils"

// Weapon 一件武器
type Weapon struct {
	Name        string
	Offset      utils.Rect  // 朝右时相对实体位置的攻击判定框
	Damage      float64     // 基础伤害
	Knockback   utils.Vec2f // 朝右时的击退速度
	StaminaCost float64     // 发动消耗的耐力
	AttackDelay float64     // 攻击从生成到生效的延迟（秒）
	Timer       AbilityTimer
}

// WeaponComponent 实体持有的武器列表
type WeaponComponent struct {
	Weapons []Weapon
	Active  int // 当前使用的武器索引
}

// ActiveWeapon 返回当前武器，没有武器时返回 nil
func (w *WeaponComponent) ActiveWeapon() *Weapon {
	if w.Active < 0 || w.Active >= len(w.Weapons) {
		return nil
	}
	return &w.Weapons[w.Active]
}

// IsReady 指定武器是否可以发动
func (w *WeaponComponent) IsReady(index int) bool {
	if index < 0 || index >= len(w.Weapons) {
		return false
	}
	return w.Weapons[index].Timer.IsReady()
}

// ForceAttack 切换到 index 号武器并强制开始攻击
func (w *WeaponComponent) ForceAttack(index int) {
	if index < 0 || index >= len(w.Weapons) {
		return
	}
	w.Active = index
	w.Weapons[index].Timer.ForceStart()
}

// AttackRect 计算武器在世界中的判定框
func (wp *Weapon) AttackRect(pos utils.Vec2f, facing float64) utils.Rect {
	r := wp.Offset.Translate(pos)
	if facing < 0 {
		r = r.MirrorX(pos.X)
	}
	return r
}

// Attack 一次短暂的攻击事件，排在关卡的攻击队列中
type Attack struct {
	Collider       utils.Rect  // 攻击判定框（世界坐标）
	Damage         float64     // 基础伤害
	Knockback      utils.Vec2f // 击退速度
	Delay          float64     // 剩余生效延迟（秒），<=0 时参与结算
	PlayerFriendly bool        // 玩家发出的攻击只打敌人，敌人发出的只打玩家
}
