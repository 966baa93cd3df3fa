package components

// 每个原型拥有独立的状态枚举和状态组件。
// 状态组件同时充当原型标签：BehaviorSystem 按组件类型分发到对应的处理函数。

func stateName(i int, names ...string) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// PlayerState 玩家状态
type PlayerState int

const (
	PlayerInitial PlayerState = iota
	PlayerIdle
	PlayerWalking
	PlayerAttacking
	PlayerDashing
	PlayerJumping
	PlayerFalling
	PlayerClimbing
	PlayerDead
)

func (s PlayerState) String() string {
	return stateName(int(s), "initial", "idle", "walking", "attacking", "dashing", "jumping", "falling", "climbing", "dead")
}

// PlayerComponent 玩家状态机
type PlayerComponent struct {
	State PlayerState
}

// RatState 老鼠状态
type RatState int

const (
	RatInitial RatState = iota
	RatIdle
	RatWalking
	RatAttacking
	RatFalling
	RatDead
)

func (s RatState) String() string {
	return stateName(int(s), "initial", "idle", "walking", "attacking", "falling", "dead")
}

// RatComponent 老鼠状态机
type RatComponent struct {
	State RatState
}

// BatState 蝙蝠状态
type BatState int

const (
	BatInitial BatState = iota
	BatIdle
	BatFlying
	BatAttacking
	BatHealing
	BatDead
)

func (s BatState) String() string {
	return stateName(int(s), "initial", "idle", "flying", "attacking", "healing", "dead")
}

// BatComponent 蝙蝠状态机
type BatComponent struct {
	State BatState
}

// RatKingState 鼠王状态
type RatKingState int

const (
	RatKingInitial RatKingState = iota
	RatKingIdle
	RatKingWalking
	RatKingAttacking
	RatKingDashing
	RatKingFalling
	RatKingDead
)

func (s RatKingState) String() string {
	return stateName(int(s), "initial", "idle", "walking", "attacking", "dashing", "falling", "dead")
}

// RatKingComponent 鼠王状态机
type RatKingComponent struct {
	State RatKingState
}

// RatNestState 鼠巢状态
type RatNestState int

const (
	RatNestInitial RatNestState = iota
	RatNestIdle
	RatNestDead
)

func (s RatNestState) String() string {
	return stateName(int(s), "initial", "idle", "dead")
}

// RatNestComponent 鼠巢状态机
type RatNestComponent struct {
	State RatNestState
}
