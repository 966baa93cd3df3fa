package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneFactory 场景工厂函数类型
// 用于根据关卡路径创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(levelPath string) (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	logger       *zap.Logger
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager(logger *zap.Logger) *SceneManager {
	return &SceneManager{
		logger: OrNop(logger).Named("scene"),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 通过工厂创建关卡场景并切换过去
// 创建失败时保留当前场景
func (sm *SceneManager) LoadLevel(levelPath string) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory is not set")
	}

	sm.logger.Info("loading level", zap.String("path", levelPath))
	scene, err := sm.sceneFactory(levelPath)
	if err != nil {
		return fmt.Errorf("load level %s: %w", levelPath, err)
	}
	sm.SwitchTo(scene)
	return nil
}

// WantsQuit 当前场景是否请求退出
func (sm *SceneManager) WantsQuit() bool {
	q, ok := sm.currentScene.(Quitter)
	return ok && q.WantsQuit()
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
