package components

// HealthComponent 存储实体的生命值信息
// 不变量：0 <= Current <= Max
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值
}

// Damage 扣除生命值，最低到 0
func (h *HealthComponent) Damage(amount float64) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal 恢复生命值，最高到 Max
func (h *HealthComponent) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// IsDepleted 生命值是否已归零
func (h *HealthComponent) IsDepleted() bool {
	return h.Current <= 0
}

// Ratio 当前生命值比例
func (h *HealthComponent) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// StaminaComponent 耐力
// 不变量：0 <= Current <= Max
type StaminaComponent struct {
	Current   float64
	Max       float64
	RegenRate float64 // 每秒恢复量
}

// Regenerate 按 dt 恢复耐力
func (s *StaminaComponent) Regenerate(dt float64) {
	s.Current += s.RegenRate * dt
	if s.Current > s.Max {
		s.Current = s.Max
	}
}

// TryConsume 耐力足够时扣除并返回 true
func (s *StaminaComponent) TryConsume(cost float64) bool {
	if cost <= 0 {
		return true
	}
	if s.Current < cost {
		return false
	}
	s.Current -= cost
	return true
}

// HurtComponent 最近受伤计时（受击闪烁、蝙蝠受伤后下坠）
type HurtComponent struct {
	Remaining float64 // 剩余受伤时间（秒）
}

// IsHurt 是否处于受伤状态
func (h *HurtComponent) IsHurt() bool {
	return h.Remaining > TimeEpsilon
}
