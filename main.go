// Package main is the desktop entry point of SkyDiver.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose            Enable verbose logging (default off)
//	--seed <n>           Random seed; 0 picks one from the clock
//	--config <path>      Round tuning file (.yaml, .yml or .toml)
//	--fullscreen         Start in fullscreen
//	--skin <dir>         Directory of <key>.png images replacing the built-in art
//
// Controls:
//
//	Mouse / touch release  - Jump, then open the parachute
//	F11                    - Toggle fullscreen
//	D                      - Toggle debug overlay
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skydiver/pkg/app"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/embedded"
)

// embeddedRoundConfig 随程序嵌入的默认调参文件
const embeddedRoundConfig = "data/round.yaml"

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	configFlag     = flag.String("config", "", "Round tuning file (.yaml, .yml or .toml)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen")
	skinFlag       = flag.String("skin", "", "Directory of <key>.png images replacing the built-in art")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	roundCfg, err := loadRoundConfig(*configFlag)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Seed:       *seedFlag,
		Round:      roundCfg,
		SkinDir:    *skinFlag,
		Fullscreen: *fullscreenFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	gameApp.ApplyWindowSettings()

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// loadRoundConfig 读取 --config 指定的文件，未指定时使用嵌入的默认配置
func loadRoundConfig(path string) (*config.RoundConfig, error) {
	if path != "" {
		return config.LoadRoundConfig(path)
	}

	data, err := embedded.ReadFile(embeddedRoundConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", embeddedRoundConfig, err)
	}
	return config.ParseRoundConfig(data, config.FormatYAML)
}
