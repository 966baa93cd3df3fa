package components

// AnimationComponent 管理基于图集的帧动画
// 片段名对应图集中的动画，如 "rat_walking"
type AnimationComponent struct {
	Clip          string  // 当前动画片段名
	FrameCount    int     // 片段总帧数
	FrameDuration float64 // 每帧时长(秒)
	Repeat        bool    // 是否循环播放
	Elapsed       float64 // 当前帧计时器(秒)
	Frame         int     // 当前帧索引(0-based)
	Finished      bool    // 非循环动画是否已播完
	Flip          bool    // 是否水平翻转（朝左）
}

// Play 切换到新的片段；与当前片段相同时不重置进度
func (a *AnimationComponent) Play(clip string, frameCount int, frameDuration float64, repeat bool) {
	if a.Clip == clip {
		return
	}
	*a = AnimationComponent{
		Clip:          clip,
		FrameCount:    frameCount,
		FrameDuration: frameDuration,
		Repeat:        repeat,
		Flip:          a.Flip,
	}
}

// Advance 推进 dt 秒
func (a *AnimationComponent) Advance(dt float64) {
	if a.Finished || a.FrameCount <= 1 || a.FrameDuration <= 0 {
		return
	}
	a.Elapsed += dt
	for a.Elapsed >= a.FrameDuration {
		a.Elapsed -= a.FrameDuration
		a.Frame++
		if a.Frame >= a.FrameCount {
			if a.Repeat {
				a.Frame = 0
			} else {
				a.Frame = a.FrameCount - 1
				a.Finished = true
				a.Elapsed = 0
				return
			}
		}
	}
}
