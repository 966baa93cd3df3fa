// Package scenes 组织一局游戏：实体管理器、关卡和全部系统的装配与逐帧驱动
package scenes

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/entities"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/systems"
	"github.com/gonewx/ratlair/pkg/systems/behavior"
	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// WorldDeps 创建 World 需要的外部依赖
type WorldDeps struct {
	Config   *config.GameConfig
	Table    *config.ArchetypeTable
	Atlas    game.Atlas
	Input    game.Input
	Settings *game.SettingsManager
	Logger   *zap.Logger
}

// World 一局游戏
//
// 每次 Update 按固定顺序推进：能力计时、行为、物理、攻击结算、生成器、
// 生命周期、动画、镜头，最后插入本帧的生成请求并移除被标记的实体。
// 系统之间只通过实体管理器和关卡共享状态。
type World struct {
	levelCfg *config.LevelConfig
	deps     WorldDeps
	logger   *zap.Logger

	entityManager *ecs.EntityManager
	level         *game.Level
	player        ecs.EntityID

	abilitySystem   *systems.AbilitySystem
	behaviorSystem  *behavior.BehaviorSystem
	physicsSystem   *systems.PhysicsSystem
	attackSystem    *systems.AttackSystem
	spawnerSystem   *systems.SpawnerSystem
	lifetimeSystem  *systems.LifetimeSystem
	animationSystem *systems.AnimationSystem
	cameraSystem    *systems.CameraSystem
	renderSystem    *systems.RenderSystem
	hudSystem       *systems.HUDSystem

	renderer *systems.EbitenRenderer
	queue    []systems.SpawnRequest

	gameOver bool
	quit     bool
}

// NewWorld 根据关卡配置创建一局游戏
func NewWorld(levelCfg *config.LevelConfig, deps WorldDeps) (*World, error) {
	if levelCfg == nil {
		return nil, fmt.Errorf("level config is nil")
	}
	if deps.Config == nil {
		deps.Config = config.DefaultGameConfig()
	}
	if deps.Table == nil || deps.Atlas == nil {
		return nil, fmt.Errorf("archetype table and atlas are required")
	}
	if deps.Input == nil {
		deps.Input = game.NewActionState()
	}
	if deps.Settings == nil {
		deps.Settings = game.NewSettingsManager(nil, deps.Logger)
	}

	w := &World{
		levelCfg: levelCfg,
		deps:     deps,
		logger:   game.OrNop(deps.Logger).Named("world"),
		renderer: systems.NewEbitenRenderer(),
	}
	if err := w.reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// reset 丢弃当前对局，按关卡配置重新装配所有系统和实体
func (w *World) reset() error {
	cfg := w.deps.Config
	sim := cfg.Simulation

	seed := sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	em := ecs.NewEntityManager()
	level := game.NewLevel(w.levelCfg)

	w.entityManager = em
	w.level = level
	w.player = 0
	w.queue = nil
	w.gameOver = false

	w.abilitySystem = systems.NewAbilitySystem(em)
	w.behaviorSystem = behavior.NewBehaviorSystem(em, level, w.deps.Atlas, w.deps.Input, sim.CorpseTime, w.deps.Logger)
	w.physicsSystem = systems.NewPhysicsSystem(em, level, sim.Gravity, sim.Friction)
	w.attackSystem = systems.NewAttackSystem(em, level, sim.HurtTime, w.deps.Logger)
	w.spawnerSystem = systems.NewSpawnerSystem(em, rand.New(rand.NewPCG(uint64(seed), uint64(seed))))
	w.lifetimeSystem = systems.NewLifetimeSystem(em)
	w.animationSystem = systems.NewAnimationSystem(em)
	w.cameraSystem = systems.NewCameraSystem(em, level, cfg.Camera, seed)
	w.renderSystem = systems.NewRenderSystem(em, level, w.deps.Atlas, w.renderer)
	w.hudSystem = systems.NewHUDSystem(em, w.renderer)

	w.attackSystem.OnPlayerHit = func(float64) {
		w.cameraSystem.Shake(0, 0)
	}

	w.queue = append(w.queue, systems.SpawnRequest{
		Archetype: components.ArchetypePlayer,
		Position:  level.PlayerSpawn,
	})
	for _, sp := range level.Spawns {
		w.queue = append(w.queue, systems.SpawnRequest{Archetype: sp.Archetype, Position: sp.Position})
	}
	if err := w.flushSpawns(); err != nil {
		return fmt.Errorf("populate level %s: %w", level.Name, err)
	}

	if focus, ok := w.cameraSystem.PlayerFocus(); ok {
		w.cameraSystem.ScrollTo(focus, cfg.Camera.IntroDuration)
	}

	w.logger.Info("level started",
		zap.String("level", level.Name),
		zap.Int("entities", em.Count()),
		zap.Int64("seed", seed))
	return nil
}

// flushSpawns 创建队列中的全部实体
// 单个请求失败不影响其他请求，错误合并后返回
func (w *World) flushSpawns() error {
	var errs []error
	for _, req := range w.queue {
		id, err := entities.Spawn(w.entityManager, w.deps.Table, w.deps.Atlas, req.Archetype, req.Position)
		if err != nil {
			errs = append(errs, err)
			// 生成器在发出请求时已计入存活数，创建失败要退还
			if spawner, ok := ecs.GetComponent[*components.SpawnerComponent](w.entityManager, req.Parent); req.Parent != 0 && ok {
				spawner.ChildDied()
			}
			continue
		}
		if req.Parent != 0 {
			ecs.AddComponent(w.entityManager, id, &components.SpawnedByComponent{Spawner: req.Parent})
		}
		if req.Archetype == components.ArchetypePlayer {
			w.player = id
		}
	}
	clear(w.queue)
	w.queue = w.queue[:0]
	return errors.Join(errs...)
}

// Update 推进一帧
func (w *World) Update(dt float64) {
	in := w.deps.Input
	if in.TakeAction(game.ActionQuit) {
		w.quit = true
		return
	}
	if in.TakeAction(game.ActionRestart) {
		if err := w.reset(); err != nil {
			w.logger.Error("restart failed", zap.Error(err))
		}
		return
	}
	if in.TakeAction(game.ActionToggleDebug) {
		w.deps.Settings.ToggleColliders()
	}
	if in.TakeAction(game.ActionToggleHUD) {
		w.deps.Settings.ToggleHUD()
	}

	w.abilitySystem.Update(dt)
	w.queue = append(w.queue, w.behaviorSystem.Update(dt)...)
	w.physicsSystem.Update(dt)
	w.attackSystem.Update(dt)
	w.queue = append(w.queue, w.spawnerSystem.Update(dt)...)
	w.lifetimeSystem.Update(dt)
	w.animationSystem.Update(dt)
	w.cameraSystem.Update(dt)

	if err := w.flushSpawns(); err != nil {
		w.logger.Warn("spawn failed", zap.Error(err))
	}
	w.entityManager.RemoveMarkedEntities()

	if !w.gameOver && w.playerDead() {
		w.gameOver = true
		w.logger.Info("game over")
	}
}

func (w *World) playerDead() bool {
	if !w.entityManager.Exists(w.player) {
		return true
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](w.entityManager, w.player)
	return ok && health.IsDepleted()
}

// Draw 提交图元并绘制到屏幕
func (w *World) Draw(screen *ebiten.Image) {
	w.renderer.ClearQueue()
	w.submit()
	w.renderer.Render(screen)
}

// submit 把本帧的全部图元推入渲染队列
func (w *World) submit() {
	settings := w.deps.Settings.GetSettings()
	cam := w.cameraSystem.Camera()
	w.renderSystem.Draw(cam, settings.ShowColliders)

	if !settings.ShowHUD && !w.gameOver {
		return
	}
	cursor := utils.ScreenToWorld(w.deps.Input.CursorPosition(), cam.Position, cam.ViewSize, w.deps.Input.WindowSize())
	w.hudSystem.Draw(systems.HUDStatus{
		GameOver: w.gameOver,
		Debug:    settings.ShowColliders,
		Cursor:   cursor,
		Entities: w.entityManager.Count(),
		Attacks:  len(w.level.Attacks),
	})
}

// WantsQuit 玩家是否请求退出
func (w *World) WantsQuit() bool { return w.quit }

// GameOver 玩家是否已死亡
func (w *World) GameOver() bool { return w.gameOver }

func (w *World) EntityManager() *ecs.EntityManager { return w.entityManager }

func (w *World) Level() *game.Level { return w.level }

// Player 玩家实体 ID
func (w *World) Player() ecs.EntityID { return w.player }

func (w *World) Camera() *components.CameraComponent { return w.cameraSystem.Camera() }
