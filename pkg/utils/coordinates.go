package utils

// coordinates.go 世界坐标与屏幕坐标的转换
//
// 世界坐标：Y 轴向上，单位为世界像素
// 屏幕坐标：Y 轴向下，原点为窗口左上角
//
// 摄像机位置 camera 是视口中心的世界坐标，view 是视口的世界尺寸，
// screen 是窗口的像素尺寸。视口按 screen.X / view.X 等比缩放。

// ViewScale 世界像素到屏幕像素的缩放比例
func ViewScale(view, screen Vec2f) float64 {
	if view.X <= 0 {
		return 1
	}
	return screen.X / view.X
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func WorldToScreen(p, camera, view, screen Vec2f) Vec2f {
	s := ViewScale(view, screen)
	return Vec2f{
		X: (p.X-camera.X)*s + screen.X/2,
		Y: (camera.Y-p.Y)*s + screen.Y/2,
	}
}

// ScreenToWorld 将屏幕坐标转换为世界坐标
func ScreenToWorld(p, camera, view, screen Vec2f) Vec2f {
	s := ViewScale(view, screen)
	return Vec2f{
		X: (p.X-screen.X/2)/s + camera.X,
		Y: camera.Y - (p.Y-screen.Y/2)/s,
	}
}

// RectToScreen 将世界矩形转换为屏幕矩形（左上角 + 宽高）
func RectToScreen(r Rect, camera, view, screen Vec2f) (x, y, w, h float64) {
	s := ViewScale(view, screen)
	tl := WorldToScreen(Vec2f{X: r.BotLeft.X, Y: r.TopRight.Y}, camera, view, screen)
	return tl.X, tl.Y, r.Width() * s, r.Height() * s
}
