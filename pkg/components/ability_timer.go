package components

// TimeEpsilon 时间阈值比较的容差（秒）
// 逐帧累加的 dt（如 1/60）与阈值相比会差几个 ULP，比较时一律带上这个容差
const TimeEpsilon = 1e-9

// Reached 累计时间 elapsed 是否已达到阈值 threshold
func Reached(elapsed, threshold float64) bool {
	return elapsed+TimeEpsilon >= threshold
}

// AbilityPhase 能力计时器的阶段
type AbilityPhase int

const (
	// PhaseIdle 空闲：可以开始新的动作
	PhaseIdle AbilityPhase = iota
	// PhaseAnticipation 前摇
	PhaseAnticipation
	// PhaseAction 生效（攻击判定、冲刺位移、治疗）
	PhaseAction
	// PhaseRecovery 后摇
	PhaseRecovery
	// PhaseCooldown 冷却
	PhaseCooldown
)

func (p AbilityPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnticipation:
		return "anticipation"
	case PhaseAction:
		return "action"
	case PhaseRecovery:
		return "recovery"
	case PhaseCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// AbilityTimer 四阶段能力计时器
// 顺序固定为 Idle → Anticipation → Action → Recovery → Cooldown → Idle，
// 时长为 0 的阶段被立即跳过，不消耗时间。
// 武器、冲刺、跳跃、治疗组件各自独占一个计时器。
type AbilityTimer struct {
	Anticipation float64 // 前摇时长（秒）
	Action       float64 // 生效时长（秒）
	Recovery     float64 // 后摇时长（秒）
	Cooldown     float64 // 冷却时长（秒）

	Phase   AbilityPhase // 当前阶段
	Elapsed float64      // 当前阶段已经过的时间（秒）

	// actionEntered 本次激活是否已进入过 Action 阶段，由 ConsumeActionStart 取走
	actionEntered bool
}

// NewAbilityTimer 创建处于 Idle 阶段的计时器
func NewAbilityTimer(anticipation, action, recovery, cooldown float64) AbilityTimer {
	return AbilityTimer{
		Anticipation: anticipation,
		Action:       action,
		Recovery:     recovery,
		Cooldown:     cooldown,
	}
}

func (t *AbilityTimer) duration(p AbilityPhase) float64 {
	switch p {
	case PhaseAnticipation:
		return t.Anticipation
	case PhaseAction:
		return t.Action
	case PhaseRecovery:
		return t.Recovery
	case PhaseCooldown:
		return t.Cooldown
	default:
		return 0
	}
}

func nextPhase(p AbilityPhase) AbilityPhase {
	if p == PhaseCooldown {
		return PhaseIdle
	}
	return p + 1
}

func (t *AbilityTimer) enter(p AbilityPhase) {
	t.Phase = p
	if p == PhaseAction && t.Action > 0 {
		t.actionEntered = true
	}
}

// skipEmptyPhases 跳过所有时长为 0 的阶段
func (t *AbilityTimer) skipEmptyPhases() {
	for t.Phase != PhaseIdle && t.duration(t.Phase) <= 0 {
		t.enter(nextPhase(t.Phase))
	}
}

// ForceStart 无视当前阶段，重新从前摇开始（时长为 0 的阶段直接跳过）
// 调用方应先检查 IsReady，活动中途重启会丢弃剩余的冷却。
func (t *AbilityTimer) ForceStart() {
	t.Elapsed = 0
	t.actionEntered = false
	t.enter(PhaseAnticipation)
	t.skipEmptyPhases()
}

// Update 推进计时器；超出当前阶段的时间会带入下一阶段
func (t *AbilityTimer) Update(dt float64) {
	if t.Phase == PhaseIdle {
		return
	}
	t.Elapsed += dt
	for t.Phase != PhaseIdle && Reached(t.Elapsed, t.duration(t.Phase)) {
		t.Elapsed = max(0, t.Elapsed-t.duration(t.Phase))
		t.enter(nextPhase(t.Phase))
	}
	if t.Phase == PhaseIdle {
		t.Elapsed = 0
	}
}

// IsReady 仅在 Idle 阶段为 true
func (t *AbilityTimer) IsReady() bool {
	return t.Phase == PhaseIdle
}

// IsInActionPhase 仅在 Action 阶段为 true
func (t *AbilityTimer) IsInActionPhase() bool {
	return t.Phase == PhaseAction
}

// IsActive 处于前摇、生效或后摇阶段（冷却不算）
// 行为状态机用它判断一个动作状态是否应当结束
func (t *AbilityTimer) IsActive() bool {
	return t.Phase == PhaseAnticipation || t.Phase == PhaseAction || t.Phase == PhaseRecovery
}

// ConsumeActionStart 本次激活进入过 Action 阶段时返回 true，且每次激活只返回一次
// 即使一帧之内越过了整个 Action 阶段也不会丢失
func (t *AbilityTimer) ConsumeActionStart() bool {
	if !t.actionEntered {
		return false
	}
	t.actionEntered = false
	return true
}

// TotalDuration 四个阶段的时长之和
func (t *AbilityTimer) TotalDuration() float64 {
	return t.Anticipation + t.Action + t.Recovery + t.Cooldown
}
