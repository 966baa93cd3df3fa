package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/embedded"
	"github.com/gonewx/ratlair/pkg/utils"
	"gopkg.in/yaml.v3"
)

// VecConfig 二维向量配置
type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec 转换为向量
func (v VecConfig) Vec() utils.Vec2f { return utils.V2(v.X, v.Y) }

// RectConfig 矩形配置（左下角 + 宽高，相对实体位置）
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect 转换为矩形
func (r RectConfig) Rect() utils.Rect { return utils.RectXYWH(r.X, r.Y, r.Width, r.Height) }

// TimerConfig 能力计时器四个阶段的时长（秒）
type TimerConfig struct {
	Anticipation float64 `yaml:"anticipation"`
	Action       float64 `yaml:"action"`
	Recovery     float64 `yaml:"recovery"`
	Cooldown     float64 `yaml:"cooldown"`
}

// Timer 构造计时器
func (t TimerConfig) Timer() components.AbilityTimer {
	return components.NewAbilityTimer(t.Anticipation, t.Action, t.Recovery, t.Cooldown)
}

func (t TimerConfig) validate() error {
	if t.Anticipation < 0 || t.Action < 0 || t.Recovery < 0 || t.Cooldown < 0 {
		return fmt.Errorf("timer durations cannot be negative: %+v", t)
	}
	return nil
}

// WeaponConfig 武器配置
type WeaponConfig struct {
	Name        string      `yaml:"name"`
	Damage      float64     `yaml:"damage"`
	Knockback   VecConfig   `yaml:"knockback"`
	StaminaCost float64     `yaml:"staminaCost"`
	Delay       float64     `yaml:"delay"`
	Offset      RectConfig  `yaml:"offset"`
	Timer       TimerConfig `yaml:"timer"`
}

// StaminaConfig 耐力配置
type StaminaConfig struct {
	Max   float64 `yaml:"max"`
	Regen float64 `yaml:"regen"`
}

// DashConfig 冲刺配置
type DashConfig struct {
	Speed        float64     `yaml:"speed"`
	StaminaCost  float64     `yaml:"staminaCost"`
	AttackWeapon string      `yaml:"attackWeapon"` // 冲刺时同时发动的武器名，可选
	Timer        TimerConfig `yaml:"timer"`
}

// JumpConfig 跳跃配置
type JumpConfig struct {
	Speed        float64     `yaml:"speed"`
	AngleDegrees float64     `yaml:"angle"` // 90 为竖直向上
	Timer        TimerConfig `yaml:"timer"`
}

// HealConfig 治疗配置
type HealConfig struct {
	Rate      float64     `yaml:"rate"`
	Threshold float64     `yaml:"threshold"`
	Timer     TimerConfig `yaml:"timer"`
}

// SpawnerConfig 生成器配置
type SpawnerConfig struct {
	Period    float64 `yaml:"period"`
	MaxTotal  int     `yaml:"maxTotal"`
	MaxAlive  int     `yaml:"maxAlive"`
	Archetype string  `yaml:"archetype"`
	Jitter    float64 `yaml:"jitter"`
}

// LightConfig 光源配置
type LightConfig struct {
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"` // "#rrggbbaa" 或 "#rrggbb"
}

// ArchetypeStats 单个原型的属性配置
type ArchetypeStats struct {
	Health              float64        `yaml:"health"`
	Stamina             *StaminaConfig `yaml:"stamina"`
	Collider            VecConfig      `yaml:"collider"` // 碰撞盒宽高
	MoveSpeed           float64        `yaml:"moveSpeed"`
	KnockbackResistance float64        `yaml:"knockbackResistance"`
	SightDistance       float64        `yaml:"sightDistance"`
	ExpDrop             int            `yaml:"expDrop"`
	SplashPenalty       float64        `yaml:"splashPenalty"`
	Flying              bool           `yaml:"flying"`
	Static              bool           `yaml:"static"` // 不参与物理积分（如鼠巢）
	FrameDuration       float64        `yaml:"frameDuration"`
	Weapons             []WeaponConfig `yaml:"weapons"`
	Dashing             *DashConfig    `yaml:"dashing"`
	Jumping             *JumpConfig    `yaml:"jumping"`
	Healing             *HealConfig    `yaml:"healing"`
	Spawner             *SpawnerConfig `yaml:"spawner"`
	Light               *LightConfig   `yaml:"light"`
}

// WeaponIndex 按名字查找武器索引，找不到返回 -1
func (s *ArchetypeStats) WeaponIndex(name string) int {
	for i, w := range s.Weapons {
		if w.Name == name {
			return i
		}
	}
	return -1
}

// ArchetypeTable 原型属性配置文件结构
type ArchetypeTable struct {
	Archetypes map[string]ArchetypeStats `yaml:"archetypes"` // 原型名到属性的映射
}

// Get 获取原型属性
func (t *ArchetypeTable) Get(a components.Archetype) (*ArchetypeStats, bool) {
	stats, ok := t.Archetypes[a.String()]
	if !ok {
		return nil, false
	}
	return &stats, true
}

// LoadArchetypeTable 从 YAML 文件加载原型属性配置
func LoadArchetypeTable(path string) (*ArchetypeTable, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archetype table %s: %w", path, err)
	}
	table, err := ParseArchetypeTable(data)
	if err != nil {
		return nil, fmt.Errorf("archetype table %s: %w", path, err)
	}
	return table, nil
}

// ParseArchetypeTable 解析并校验原型属性配置
func ParseArchetypeTable(data []byte) (*ArchetypeTable, error) {
	var table ArchetypeTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse archetype YAML: %w", err)
	}
	if err := validateArchetypeTable(&table); err != nil {
		return nil, fmt.Errorf("invalid archetype table: %w", err)
	}
	return &table, nil
}

// validateArchetypeTable 验证原型配置的完整性和合法性
func validateArchetypeTable(table *ArchetypeTable) error {
	for name := range table.Archetypes {
		if _, err := components.ParseArchetype(name); err != nil {
			return err
		}
	}
	for _, a := range components.AllArchetypes() {
		stats, ok := table.Archetypes[a.String()]
		if !ok {
			return fmt.Errorf("archetype %s is missing", a)
		}
		if err := validateStats(a, &stats); err != nil {
			return fmt.Errorf("archetype %s: %w", a, err)
		}
	}
	return nil
}

func validateStats(a components.Archetype, s *ArchetypeStats) error {
	if s.Health <= 0 {
		return fmt.Errorf("health must be positive, got %v", s.Health)
	}
	if s.Collider.X <= 0 || s.Collider.Y <= 0 {
		return fmt.Errorf("collider size must be positive, got %+v", s.Collider)
	}
	if s.KnockbackResistance < 0 || s.KnockbackResistance > 1 {
		return fmt.Errorf("knockbackResistance must be in [0,1], got %v", s.KnockbackResistance)
	}
	if s.SplashPenalty < 0 || s.SplashPenalty > 1 {
		return fmt.Errorf("splashPenalty must be in [0,1], got %v", s.SplashPenalty)
	}
	if s.Stamina != nil && (s.Stamina.Max < 0 || s.Stamina.Regen < 0) {
		return fmt.Errorf("stamina cannot be negative: %+v", *s.Stamina)
	}
	for _, w := range s.Weapons {
		if w.Damage < 0 || w.StaminaCost < 0 || w.Delay < 0 {
			return fmt.Errorf("weapon %s: damage, staminaCost and delay cannot be negative", w.Name)
		}
		if err := w.Timer.validate(); err != nil {
			return fmt.Errorf("weapon %s: %w", w.Name, err)
		}
		// 攻击在进入 Action 阶段时发出，没有 Action 阶段的武器永远不会出手
		if w.Timer.Action <= 0 {
			return fmt.Errorf("weapon %s: timer action must be positive, got %v", w.Name, w.Timer.Action)
		}
	}
	if s.Dashing != nil {
		if err := s.Dashing.Timer.validate(); err != nil {
			return fmt.Errorf("dashing: %w", err)
		}
		if s.Dashing.AttackWeapon != "" && s.WeaponIndex(s.Dashing.AttackWeapon) < 0 {
			return fmt.Errorf("dashing: unknown attack weapon %q", s.Dashing.AttackWeapon)
		}
	}
	if s.Jumping != nil {
		if err := s.Jumping.Timer.validate(); err != nil {
			return fmt.Errorf("jumping: %w", err)
		}
	}
	if s.Healing != nil {
		if err := s.Healing.Timer.validate(); err != nil {
			return fmt.Errorf("healing: %w", err)
		}
	}
	if s.Spawner != nil {
		if _, err := components.ParseArchetype(s.Spawner.Archetype); err != nil {
			return fmt.Errorf("spawner: %w", err)
		}
		if s.Spawner.Period < 0 || s.Spawner.MaxAlive < 0 || s.Spawner.MaxTotal < 0 || s.Spawner.Jitter < 0 {
			return fmt.Errorf("spawner values cannot be negative: %+v", *s.Spawner)
		}
	}
	if s.Light != nil {
		if _, err := ParseColor(s.Light.Color); err != nil {
			return fmt.Errorf("light: %w", err)
		}
	}
	// 各原型状态机依赖的能力
	switch a {
	case components.ArchetypeRat, components.ArchetypeBat, components.ArchetypeRatKing:
		if len(s.Weapons) == 0 {
			return fmt.Errorf("at least one weapon is required")
		}
	}
	switch a {
	case components.ArchetypeBat:
		if s.Healing == nil {
			return fmt.Errorf("healing is required")
		}
	case components.ArchetypeRatKing:
		if s.Dashing == nil {
			return fmt.Errorf("dashing is required")
		}
	case components.ArchetypeRatNest:
		if s.Spawner == nil {
			return fmt.Errorf("spawner is required")
		}
	case components.ArchetypePlayer:
		if len(s.Weapons) < 2 || s.Dashing == nil || s.Jumping == nil {
			return fmt.Errorf("player needs two weapons, dashing and jumping")
		}
	}
	return nil
}

// JumpAngle 起跳角度（弧度）
func (j *JumpConfig) JumpAngle() float64 {
	return j.AngleDegrees * math.Pi / 180
}

// ParseColor 解析 "#rrggbb" 或 "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
