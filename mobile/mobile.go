//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需要把 data/
// 复制到本目录，以便 embed.go 嵌入调参文件：
//
//	cp -r data mobile/
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.skydiver -o build/android/skydiver.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/skydiver/pkg/app"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	roundCfg := config.DefaultRoundConfig()
	if data, err := embedded.ReadFile("data/round.yaml"); err == nil {
		if parsed, err := config.ParseRoundConfig(data, config.FormatYAML); err == nil {
			roundCfg = parsed
		} else {
			log.Printf("[Mobile] 嵌入配置无效，使用默认值: %v", err)
		}
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Round:   roundCfg,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 窗口相关设置在移动端被忽略，只有 TPS 生效
	gameApp.ApplyWindowSettings()

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
