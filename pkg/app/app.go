// Package app 提供游戏应用的核心包装器
//
// 该包把配置加载、数据校验和场景装配从 main 包提取出来，
// main.go 和 cmd 下的工具都可以通过 NewApp() 创建同一个游戏实例。
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/scenes"
	"github.com/gonewx/ratlair/pkg/systems/behavior"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// appName gdata 存储目录名
const appName = "ratlair"

// Config 定义应用启动配置
type Config struct {
	// ConfigPath TOML 配置文件路径，为空时使用默认配置
	ConfigPath string
	// LevelPath 覆盖配置中的关卡路径
	LevelPath string
	// Verbose 强制使用 debug 日志级别
	Verbose bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.GameConfig
	logger       *zap.Logger
	settings     *game.SettingsManager
	input        *game.EbitenInput
	sceneManager *game.SceneManager

	lastUpdate time.Time

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	gameCfg, err := config.LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		gameCfg.Logging.Level = "debug"
	}
	if cfg.LevelPath != "" {
		gameCfg.Paths.Level = cfg.LevelPath
	}

	logger, err := game.NewLogger(gameCfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	table, err := config.LoadArchetypeTable(gameCfg.Paths.Archetypes)
	if err != nil {
		return nil, err
	}
	atlas, err := config.LoadAtlas(gameCfg.Paths.Atlas)
	if err != nil {
		return nil, err
	}
	if err := atlas.Validate(behavior.RequiredClips()); err != nil {
		return nil, fmt.Errorf("atlas %s: %w", gameCfg.Paths.Atlas, err)
	}

	// gdata 打开失败时设置只保存在内存中
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings storage unavailable", zap.Error(err))
		store = nil
	}
	settings := game.NewSettingsManager(store, logger)

	input := game.NewEbitenInput(nil)
	input.SetWindowSize(utils.V2(float64(gameCfg.Window.Width), float64(gameCfg.Window.Height)))

	sceneManager := game.NewSceneManager(logger)
	sceneManager.SetSceneFactory(func(levelPath string) (game.Scene, error) {
		levelCfg, err := config.LoadLevel(levelPath)
		if err != nil {
			return nil, err
		}
		world, err := scenes.NewWorld(levelCfg, scenes.WorldDeps{
			Config:   gameCfg,
			Table:    table,
			Atlas:    atlas,
			Input:    input,
			Settings: settings,
			Logger:   logger,
		})
		if err != nil {
			return nil, err
		}
		return world, nil
	})
	if err := sceneManager.LoadLevel(gameCfg.Paths.Level); err != nil {
		return nil, err
	}

	if settings.GetSettings().Fullscreen || gameCfg.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	logger.Info("app ready",
		zap.String("level", gameCfg.Paths.Level),
		zap.Int("archetypes", len(table.Archetypes)))

	return &App{
		cfg:          gameCfg,
		logger:       logger,
		settings:     settings,
		input:        input,
		sceneManager: sceneManager,
	}, nil
}

// Update 更新游戏逻辑
// 步长取真实经过的时间，并按 max_delta_time 限制
func (a *App) Update() error {
	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !a.lastUpdate.IsZero() {
		dt = now.Sub(a.lastUpdate).Seconds()
	}
	a.lastUpdate = now
	dt = a.cfg.Simulation.ClampDeltaTime(dt)

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	a.input.Poll()
	if a.input.TakeAction(game.ActionFullscreen) || inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(dt)
	a.input.ClearPending()

	if a.sceneManager.WantsQuit() {
		a.logger.Info("quit requested")
		_ = a.logger.Sync()
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 等窗口管理器处理完再恢复窗口大小
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("failed to save settings", zap.Error(err))
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑边
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// WindowConfig 窗口配置，main 用它设置窗口
func (a *App) WindowConfig() config.WindowConfig {
	return a.cfg.Window
}

// Logger 应用日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}
