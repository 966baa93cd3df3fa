package systems

import (
	"image/color"
	"sort"

	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenRenderer 用 ebiten 的矢量绘制实现 game.Renderer
//
// 世界图元按镜头变换到屏幕；Screen 图元的 Rect 直接使用屏幕坐标，
// BotLeft 为屏幕上的最小角（左上角）。
type EbitenRenderer struct {
	queue    []game.DrawPrimitive
	camera   utils.Vec2f
	viewSize utils.Vec2f
}

// NewEbitenRenderer 创建渲染器
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{viewSize: utils.V2(320.0, 180.0)}
}

func (r *EbitenRenderer) PushPrimitive(p game.DrawPrimitive) {
	r.queue = append(r.queue, p)
}

func (r *EbitenRenderer) SetCamera(position, viewSize utils.Vec2f) {
	r.camera = position
	r.viewSize = viewSize
}

func (r *EbitenRenderer) ClearQueue() {
	clear(r.queue)
	r.queue = r.queue[:0]
}

// Len 队列中的图元数
func (r *EbitenRenderer) Len() int { return len(r.queue) }

// Render 按层绘制队列中的全部图元，同层保持提交顺序
func (r *EbitenRenderer) Render(screen *ebiten.Image) {
	b := screen.Bounds()
	screenSize := utils.V2(float64(b.Dx()), float64(b.Dy()))
	scale := utils.ViewScale(r.viewSize, screenSize)

	sort.SliceStable(r.queue, func(i, j int) bool { return r.queue[i].Layer < r.queue[j].Layer })

	for _, p := range r.queue {
		clr := p.Color
		if clr == nil {
			clr = color.White
		}

		var x, y, w, h float64
		center := p.Center
		radius := p.Radius
		if p.Screen {
			x, y = p.Rect.BotLeft.X, p.Rect.BotLeft.Y
			w, h = p.Rect.Width(), p.Rect.Height()
		} else {
			x, y, w, h = utils.RectToScreen(p.Rect, r.camera, r.viewSize, screenSize)
			center = utils.WorldToScreen(p.Center, r.camera, r.viewSize, screenSize)
			radius *= scale
		}

		switch p.Kind {
		case game.PrimitiveRect:
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
		case game.PrimitiveRectOutline:
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
		case game.PrimitiveCircle:
			vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(radius), clr, true)
		case game.PrimitiveText:
			ebitenutil.DebugPrintAt(screen, p.Text, int(center.X), int(center.Y))
		}
	}
}
