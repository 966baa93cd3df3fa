package main

import (
	"flag"
	"log"

	"github.com/gonewx/ratlair/pkg/app"
	"github.com/gonewx/ratlair/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "data/game.toml", "TOML 配置文件路径")
	levelPath := flag.String("level", "", "关卡文件路径，覆盖配置中的 paths.level")
	verbose := flag.Bool("verbose", false, "输出 debug 日志")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		ConfigPath: *configPath,
		LevelPath:  *levelPath,
		Verbose:    *verbose,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := game.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		game.Logger().Fatal("game loop exited", zap.Error(err))
	}
}
