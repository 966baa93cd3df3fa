package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gonewx/ratlair/pkg/embedded"
)

// GameConfig 运行时配置（TOML）
type GameConfig struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Camera     CameraConfig     `toml:"camera"`
	Logging    LoggingConfig    `toml:"logging"`
	Paths      PathsConfig      `toml:"paths"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

// SimulationConfig 模拟参数
type SimulationConfig struct {
	Gravity      float64 `toml:"gravity"`        // 重力加速度（像素/秒²）
	Friction     float64 `toml:"friction"`       // 水平速度阻尼（1/秒）
	MaxDeltaTime float64 `toml:"max_delta_time"` // 单帧最大模拟步长（秒），<=0 表示不限制
	CorpseTime   float64 `toml:"corpse_time"`    // 敌人尸体保留时间（秒）
	HurtTime     float64 `toml:"hurt_time"`      // 受击后的受伤状态时长（秒）
	Seed         int64   `toml:"seed"`           // 随机种子，0 表示使用当前时间
}

// CameraConfig 镜头参数
type CameraConfig struct {
	ViewWidth      float64 `toml:"view_width"`
	ViewHeight     float64 `toml:"view_height"`
	FollowLerp     float64 `toml:"follow_lerp"`
	IntroDuration  float64 `toml:"intro_duration"` // 开场从房间中心平移到玩家的时长（秒），0 表示不平移
	ShakeMagnitude float64 `toml:"shake_magnitude"`
	ShakeDuration  float64 `toml:"shake_duration"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// PathsConfig 数据文件路径
type PathsConfig struct {
	Archetypes string `toml:"archetypes"`
	Atlas      string `toml:"atlas"`
	Level      string `toml:"level"`
}

// DefaultGameConfig 默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:  "Rat Lair",
			Width:  1280,
			Height: 720,
		},
		Simulation: SimulationConfig{
			Gravity:      900,
			Friction:     8,
			MaxDeltaTime: 0.1,
			CorpseTime:   1.5,
			HurtTime:     0.4,
		},
		Camera: CameraConfig{
			ViewWidth:      320,
			ViewHeight:     180,
			FollowLerp:     0.15,
			IntroDuration:  1.2,
			ShakeMagnitude: 3,
			ShakeDuration:  0.3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Paths: PathsConfig{
			Archetypes: "data/archetypes.yaml",
			Atlas:      "data/atlas.yaml",
			Level:      "data/levels/cellar.json",
		},
	}
}

// LoadGameConfig 读取 TOML 文件并覆盖默认配置
// path 为空时直接返回默认配置
func LoadGameConfig(path string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *GameConfig) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.ViewWidth <= 0 || c.Camera.ViewHeight <= 0 {
		return fmt.Errorf("camera view must be positive, got %vx%v", c.Camera.ViewWidth, c.Camera.ViewHeight)
	}
	if c.Camera.FollowLerp <= 0 || c.Camera.FollowLerp > 1 {
		return fmt.Errorf("camera follow_lerp must be in (0,1], got %v", c.Camera.FollowLerp)
	}
	if c.Simulation.Gravity < 0 || c.Simulation.Friction < 0 {
		return fmt.Errorf("gravity and friction cannot be negative")
	}
	return nil
}

// ClampDeltaTime 按 MaxDeltaTime 限制帧步长
func (s SimulationConfig) ClampDeltaTime(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if s.MaxDeltaTime > 0 && dt > s.MaxDeltaTime {
		return s.MaxDeltaTime
	}
	return dt
}
