package game

import (
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultKeyBindings 默认按键映射
func DefaultKeyBindings() map[Action][]ebiten.Key {
	return map[Action][]ebiten.Key{
		ActionLeft:        {ebiten.KeyA, ebiten.KeyArrowLeft},
		ActionRight:       {ebiten.KeyD, ebiten.KeyArrowRight},
		ActionUp:          {ebiten.KeyW, ebiten.KeyArrowUp},
		ActionDown:        {ebiten.KeyS, ebiten.KeyArrowDown},
		ActionJump:        {ebiten.KeySpace},
		ActionDash:        {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		ActionAttack:      {ebiten.KeyJ},
		ActionHeavyAttack: {ebiten.KeyK},
		ActionRestart:     {ebiten.KeyR},
		ActionQuit:        {ebiten.KeyEscape},
		ActionToggleDebug: {ebiten.KeyF3},
		ActionToggleHUD:   {ebiten.KeyF2},
		ActionFullscreen:  {ebiten.KeyF11},
	}
}

// EbitenInput 从 ebiten 读取键盘和鼠标输入
type EbitenInput struct {
	*ActionState
	bindings map[Action][]ebiten.Key
}

// NewEbitenInput 创建输入适配器，bindings 为 nil 时使用默认映射
func NewEbitenInput(bindings map[Action][]ebiten.Key) *EbitenInput {
	if bindings == nil {
		bindings = DefaultKeyBindings()
	}
	return &EbitenInput{
		ActionState: NewActionState(),
		bindings:    bindings,
	}
}

// Poll 每帧在模拟更新前调用
// 鼠标左键视为攻击，右键视为重击
func (in *EbitenInput) Poll() {
	for action, keys := range in.bindings {
		held := false
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				held = true
			}
			if inpututil.IsKeyJustPressed(key) {
				in.Press(action)
			}
		}
		in.Hold(action, held)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Press(ActionAttack)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.Press(ActionHeavyAttack)
	}

	// 光标位置是逻辑屏幕坐标，窗口尺寸由 App 按 Layout 设置
	x, y := ebiten.CursorPosition()
	in.SetCursor(utils.V2(float64(x), float64(y)))
}
