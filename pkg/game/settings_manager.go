package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// GameSettings 用户偏好设置
// 只保存显示偏好，不包含对局进度
type GameSettings struct {
	Fullscreen    bool `yaml:"fullscreen"`    // 启动时是否全屏
	ShowColliders bool `yaml:"showColliders"` // 调试层：绘制碰撞盒和攻击判定
	ShowHUD       bool `yaml:"showHUD"`       // 是否绘制血条、耐力条和经验
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen:    false,
		ShowColliders: false,
		ShowHUD:       true,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings
	logger       *zap.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器
//
// gdataManager 为 nil 时进入降级模式，设置只保存在内存中。
// 已保存的设置加载失败时记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager, logger *zap.Logger) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       OrNop(logger).Named("settings"),
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", zap.Error(err))
	}

	return sm
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或文件不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 缺失的字段保留默认值
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	sm.logger.Debug("settings loaded")
	return nil
}

// Save 保存设置到 gdata
// 降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式（仅修改内存，需调用 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleColliders 切换调试碰撞盒显示并立即保存
func (sm *SettingsManager) ToggleColliders() bool {
	sm.settings.ShowColliders = !sm.settings.ShowColliders
	sm.saveQuietly()
	return sm.settings.ShowColliders
}

// ToggleHUD 切换 HUD 显示并立即保存
func (sm *SettingsManager) ToggleHUD() bool {
	sm.settings.ShowHUD = !sm.settings.ShowHUD
	sm.saveQuietly()
	return sm.settings.ShowHUD
}

func (sm *SettingsManager) saveQuietly() {
	if err := sm.Save(); err != nil {
		sm.logger.Warn("failed to save settings", zap.Error(err))
	}
}
