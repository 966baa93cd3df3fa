//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前先把数据目录复制到本包：
//
//	cp -r data mobile/data
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.ratlair -o build/android/ratlair.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/RatLair.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/ratlair/pkg/app"
	"github.com/gonewx/ratlair/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有配置文件参数，使用嵌入的默认配置
	gameApp, err := app.NewApp(app.Config{ConfigPath: "data/game.toml"})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
