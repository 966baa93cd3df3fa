package config

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/embedded"
	"github.com/gonewx/ratlair/pkg/utils"
	"gopkg.in/yaml.v3"
)

// ClipConfig 单个动画片段
// 精灵矩形和判定框都相对实体位置（底边中点），朝右
type ClipConfig struct {
	Frames          int                `yaml:"frames"`          // 帧数
	FrameDuration   float64            `yaml:"frameDuration"`   // 默认帧时长（秒）
	Rect            RectConfig         `yaml:"rect"`            // 所有帧共用的精灵矩形
	FrameRects      []RectConfig       `yaml:"frameRects"`      // 逐帧精灵矩形（可选，覆盖 Rect）
	AttackColliders map[int]RectConfig `yaml:"attackColliders"` // 帧索引到攻击判定框
	Mask            *RectConfig        `yaml:"mask"`            // 受击遮罩（可选）
	Color           string             `yaml:"color"`           // 占位渲染颜色
}

// AtlasConfig 精灵图集配置文件结构
type AtlasConfig struct {
	Clips map[string]ClipConfig `yaml:"clips"`

	colors map[string]color.RGBA
}

// LoadAtlas 从 YAML 文件加载图集
func LoadAtlas(path string) (*AtlasConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas %s: %w", path, err)
	}
	atlas, err := ParseAtlas(data)
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", path, err)
	}
	return atlas, nil
}

// ParseAtlas 解析并校验图集
func ParseAtlas(data []byte) (*AtlasConfig, error) {
	var atlas AtlasConfig
	if err := yaml.Unmarshal(data, &atlas); err != nil {
		return nil, fmt.Errorf("failed to parse atlas YAML: %w", err)
	}
	atlas.colors = make(map[string]color.RGBA, len(atlas.Clips))
	for name, clip := range atlas.Clips {
		if clip.Frames <= 0 {
			return nil, fmt.Errorf("clip %s: frames must be positive, got %d", name, clip.Frames)
		}
		if len(clip.FrameRects) > 0 && len(clip.FrameRects) != clip.Frames {
			return nil, fmt.Errorf("clip %s: %d frameRects for %d frames", name, len(clip.FrameRects), clip.Frames)
		}
		for frame := range clip.AttackColliders {
			if frame < 0 || frame >= clip.Frames {
				return nil, fmt.Errorf("clip %s: attack collider on missing frame %d", name, frame)
			}
		}
		c := color.RGBA{R: 255, G: 0, B: 255, A: 255}
		if clip.Color != "" {
			parsed, err := ParseColor(clip.Color)
			if err != nil {
				return nil, fmt.Errorf("clip %s: %w", name, err)
			}
			c = parsed
		}
		atlas.colors[name] = c
	}
	return &atlas, nil
}

// Validate 检查所有需要的片段都存在
func (a *AtlasConfig) Validate(required []string) error {
	var missing []string
	for _, name := range required {
		if _, ok := a.Clips[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("atlas is missing clips: %v", missing)
	}
	return nil
}

// Animator 返回播放 name 片段的动画状态
// frameDuration <= 0 时使用片段的默认帧时长；未知片段返回单帧动画
func (a *AtlasConfig) Animator(name string, frameDuration float64, repeat bool) components.AnimationComponent {
	clip, ok := a.Clips[name]
	frames := 1
	if ok {
		frames = clip.Frames
		if frameDuration <= 0 {
			frameDuration = clip.FrameDuration
		}
	}
	return components.AnimationComponent{
		Clip:          name,
		FrameCount:    frames,
		FrameDuration: frameDuration,
		Repeat:        repeat,
	}
}

// SpriteRect 返回片段某一帧的精灵矩形（相对实体位置）
func (a *AtlasConfig) SpriteRect(name string, frame int) utils.Rect {
	clip, ok := a.Clips[name]
	if !ok {
		return utils.Rect{}
	}
	if len(clip.FrameRects) > 0 {
		if frame < 0 || frame >= len(clip.FrameRects) {
			frame = 0
		}
		return clip.FrameRects[frame].Rect()
	}
	return clip.Rect.Rect()
}

// AttackCollider 返回片段某一帧的攻击判定框（相对实体位置，朝右）
func (a *AtlasConfig) AttackCollider(name string, frame int) (utils.Rect, bool) {
	clip, ok := a.Clips[name]
	if !ok {
		return utils.Rect{}, false
	}
	r, ok := clip.AttackColliders[frame]
	if !ok {
		return utils.Rect{}, false
	}
	return r.Rect(), true
}

// Mask 返回片段的受击遮罩，已平移到 pivot 并按 flip 镜像
func (a *AtlasConfig) Mask(name string, pivot utils.Vec2f, flip bool) (utils.Rect, bool) {
	clip, ok := a.Clips[name]
	if !ok || clip.Mask == nil {
		return utils.Rect{}, false
	}
	r := clip.Mask.Rect().Translate(pivot)
	if flip {
		r = r.MirrorX(pivot.X)
	}
	return r, true
}

// Color 片段的占位渲染颜色
func (a *AtlasConfig) Color(name string) color.RGBA {
	if c, ok := a.colors[name]; ok {
		return c
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}
