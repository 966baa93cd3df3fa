package game

import "github.com/gonewx/ratlair/pkg/utils"

// Action 输入动作，与具体按键解耦
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionDash
	ActionAttack
	ActionHeavyAttack
	ActionRestart
	ActionQuit
	ActionToggleDebug
	ActionToggleHUD
	ActionFullscreen
)

var actionNames = [...]string{
	"left", "right", "up", "down", "jump", "dash", "attack", "heavy_attack",
	"restart", "quit", "toggle_debug", "toggle_hud", "fullscreen",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Input 模拟层读取输入的接口
type Input interface {
	// IsAction 动作对应的按键当前是否按住
	IsAction(a Action) bool
	// TakeAction 动作是否在本帧之前被触发过（边沿触发），读取后清除
	TakeAction(a Action) bool
	// CursorPosition 鼠标位置（屏幕坐标）
	CursorPosition() utils.Vec2f
	// WindowSize 窗口尺寸
	WindowSize() utils.Vec2f
}

// ActionState 一帧的输入状态
// EbitenInput 每帧把按键映射到这里；测试直接调用 Hold/Press 驱动模拟
type ActionState struct {
	held    map[Action]bool
	pending map[Action]bool
	cursor  utils.Vec2f
	window  utils.Vec2f
}

// NewActionState 创建空的输入状态
func NewActionState() *ActionState {
	return &ActionState{
		held:    make(map[Action]bool),
		pending: make(map[Action]bool),
	}
}

// Hold 设置动作的按住状态
func (s *ActionState) Hold(a Action, held bool) {
	s.held[a] = held
}

// Press 记录一次边沿触发，直到被 TakeAction 取走
func (s *ActionState) Press(a Action) {
	s.pending[a] = true
}

// SetCursor 设置鼠标位置
func (s *ActionState) SetCursor(p utils.Vec2f) { s.cursor = p }

// SetWindowSize 设置窗口尺寸
func (s *ActionState) SetWindowSize(size utils.Vec2f) { s.window = size }

func (s *ActionState) IsAction(a Action) bool { return s.held[a] }

func (s *ActionState) TakeAction(a Action) bool {
	if !s.pending[a] {
		return false
	}
	delete(s.pending, a)
	return true
}

func (s *ActionState) CursorPosition() utils.Vec2f { return s.cursor }

func (s *ActionState) WindowSize() utils.Vec2f { return s.window }

// ClearPending 丢弃尚未被取走的边沿触发
func (s *ActionState) ClearPending() {
	clear(s.pending)
}
