// levelcheck 离线校验关卡和数据文件，并在无窗口的情况下模拟若干秒
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/ratlair/pkg/components"
	"github.com/gonewx/ratlair/pkg/config"
	"github.com/gonewx/ratlair/pkg/ecs"
	"github.com/gonewx/ratlair/pkg/game"
	"github.com/gonewx/ratlair/pkg/scenes"
	"github.com/gonewx/ratlair/pkg/systems/behavior"
	"go.uber.org/zap"
)

var (
	levelPath      = flag.String("level", "data/levels/cellar.json", "关卡文件路径")
	archetypesPath = flag.String("archetypes", "data/archetypes.yaml", "原型属性文件路径")
	atlasPath      = flag.String("atlas", "data/atlas.yaml", "图集文件路径")
	seconds        = flag.Float64("simulate", 10, "模拟时长（秒），0 表示只校验")
	seed           = flag.Int64("seed", 1, "随机种子")
	verbose        = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	logCfg := config.LoggingConfig{Level: "info", Format: "console"}
	if *verbose {
		logCfg.Level = "debug"
	}
	logger, err := game.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("level check failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	levelCfg, err := config.LoadLevel(*levelPath)
	if err != nil {
		return err
	}
	table, err := config.LoadArchetypeTable(*archetypesPath)
	if err != nil {
		return err
	}
	atlas, err := config.LoadAtlas(*atlasPath)
	if err != nil {
		return err
	}
	if err := atlas.Validate(behavior.RequiredClips()); err != nil {
		return err
	}

	logger.Info("level loaded",
		zap.String("name", levelCfg.Name),
		zap.Int("colliders", len(levelCfg.Rigid)),
		zap.Int("stairs", len(levelCfg.Stairs)),
		zap.Int("spawns", len(levelCfg.Spawns)),
		zap.Float64("room_width", levelCfg.Room.Width()),
		zap.Float64("room_height", levelCfg.Room.Height()))

	cfg := config.DefaultGameConfig()
	cfg.Simulation.Seed = *seed
	world, err := scenes.NewWorld(levelCfg, scenes.WorldDeps{
		Config: cfg,
		Table:  table,
		Atlas:  atlas,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	const dt = 1.0 / 60
	for t := 0.0; t < *seconds; t += dt {
		world.Update(dt)
	}

	em := world.EntityManager()
	counts := make(map[components.Archetype]int)
	for _, id := range ecs.GetEntitiesWith1[*components.ArchetypeComponent](em) {
		a, _ := ecs.GetComponent[*components.ArchetypeComponent](em, id)
		counts[a.Type]++
	}
	for a := components.ArchetypePlayer; a <= components.ArchetypeRatNest; a++ {
		fmt.Printf("%-10s %d\n", a, counts[a])
	}
	fmt.Printf("entities %d  pending attacks %d  game over %v\n",
		em.Count(), len(world.Level().Attacks), world.GameOver())
	return nil
}
