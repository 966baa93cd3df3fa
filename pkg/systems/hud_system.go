package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
)

const (
	hudMargin    = 8.0
	hudBarWidth  = 120.0
	hudBarHeight = 8.0
)

var (
	barBackColor    = color.RGBA{R: 20, G: 20, B: 20, A: 200}
	healthBarColor  = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	staminaBarColor = color.RGBA{R: 60, G: 180, B: 60, A: 255}
	enemyBarColor   = color.RGBA{R: 230, G: 120, B: 40, A: 255}
)

// HUDStatus HUD 需要的场景状态
type HUDStatus struct {
	GameOver bool
	Debug    bool        // 显示调试信息
	Cursor   utils.Vec2f // 鼠标的世界坐标（调试）
	Entities int
	Attacks  int
}

// HUDSystem 即时模式 HUD：玩家血条、耐力条、经验，受伤敌人的血条
type HUDSystem struct {
	entityManager *ecs.EntityManager
	renderer      game.Renderer
}

// NewHUDSystem 创建 HUD 系统
func NewHUDSystem(em *ecs.EntityManager, renderer game.Renderer) *HUDSystem {
	return &HUDSystem{entityManager: em, renderer: renderer}
}

// Draw 提交 HUD 图元
func (s *HUDSystem) Draw(status HUDStatus) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](em) {
		y := hudMargin
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
			s.screenBar(y, health.Ratio(), healthBarColor)
			y += hudBarHeight + 4
		}
		if stamina, ok := ecs.GetComponent[*components.StaminaComponent](em, id); ok && stamina.Max > 0 {
			s.screenBar(y, stamina.Current/stamina.Max, staminaBarColor)
			y += hudBarHeight + 4
		}
		if stats, ok := ecs.GetComponent[*components.PlayerStatsComponent](em, id); ok {
			s.text(utils.V2(hudMargin, y), fmt.Sprintf("EXP %d  KILLS %d", stats.Exp, stats.Kills))
		}
	}

	// 受伤敌人头顶的血条（世界坐标）
	for _, id := range ecs.GetEntitiesWith3[*components.HealthComponent, *components.PositionComponent, *components.ColliderComponent](em) {
		if ecs.HasComponent[*components.PlayerComponent](em, id) {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if health.IsDepleted() || health.Current >= health.Max {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](em, id)
		box := col.Rect(pos.Pos)
		back := utils.RectXYWH(box.BotLeft.X, box.TopRight.Y+2, box.Width(), 2)
		fill := utils.RectXYWH(back.BotLeft.X, back.BotLeft.Y, back.Width()*health.Ratio(), 2)
		s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRect, Rect: back, Color: barBackColor, Layer: LayerHUD})
		s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveRect, Rect: fill, Color: enemyBarColor, Layer: LayerHUD})
	}

	if status.GameOver {
		s.text(utils.V2(hudMargin, 64), "YOU DIED - press R to restart")
	}
	if status.Debug {
		s.text(utils.V2(hudMargin, 80), fmt.Sprintf("entities %d  attacks %d  cursor (%.0f, %.0f)",
			status.Entities, status.Attacks, status.Cursor.X, status.Cursor.Y))
	}
}

func (s *HUDSystem) screenBar(y, ratio float64, clr color.Color) {
	ratio = max(0, min(1, ratio))
	s.renderer.PushPrimitive(game.DrawPrimitive{
		Kind: game.PrimitiveRect, Rect: utils.RectXYWH(hudMargin, y, hudBarWidth, hudBarHeight),
		Color: barBackColor, Layer: LayerHUD, Screen: true,
	})
	s.renderer.PushPrimitive(game.DrawPrimitive{
		Kind: game.PrimitiveRect, Rect: utils.RectXYWH(hudMargin, y, hudBarWidth*ratio, hudBarHeight),
		Color: clr, Layer: LayerHUD, Screen: true,
	})
}

func (s *HUDSystem) text(at utils.Vec2f, msg string) {
	s.renderer.PushPrimitive(game.DrawPrimitive{Kind: game.PrimitiveText, Center: at, Text: msg, Layer: LayerHUD, Screen: true})
}
