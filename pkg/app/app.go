// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/game"
	"github.com/decker502/skydiver/pkg/scenes"
)

// SettingsAppName 设置存储使用的应用名（gdata 按它划分存储目录）
const SettingsAppName = "skydiver"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Round 单局配置，为 nil 时使用内置默认值
	Round *config.RoundConfig
	// SkinDir 皮肤目录，其中的 <key>.png 替换默认外观
	SkinDir string
	// Fullscreen 以全屏启动（同时写入设置）
	Fullscreen bool
	// Settings 设置管理器，为 nil 时打开默认存储
	Settings *game.SettingsManager
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool
	deltaTime    float64
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	roundCfg := cfg.Round
	if roundCfg == nil {
		roundCfg = config.DefaultRoundConfig()
	}
	if err := roundCfg.Validate(); err != nil {
		return nil, fmt.Errorf("单局配置无效: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[App] 随机种子: %d", seed)

	// 创建资源管理器
	resourceManager, err := game.NewResourceManager()
	if err != nil {
		return nil, fmt.Errorf("资源管理器初始化失败: %w", err)
	}
	if cfg.SkinDir != "" {
		resourceManager.SetSkinDir(cfg.SkinDir)
		log.Printf("[App] 使用皮肤目录: %s", cfg.SkinDir)
	}

	settings := cfg.Settings
	if settings == nil {
		settings = game.OpenSettingsManager(SettingsAppName)
	}
	if cfg.Fullscreen {
		settings.SetFullscreen(true)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	deps := scenes.Deps{
		SceneManager: sceneManager,
		Resources:    resourceManager,
		Settings:     settings,
		RoundConfig:  roundCfg,
		Rand:         rng,
		Background:   scenes.NewBackground(resourceManager, rng),
	}
	sceneManager.SwitchTo(scenes.NewMainMenuScene(deps))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
		deltaTime:    1.0 / config.TicksPerSecond,
	}, nil
}

// ApplyWindowSettings 设置窗口标题、尺寸、TPS 和保存的全屏状态
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	ebiten.SetWindowSize(int(config.ScreenWidth), int(config.ScreenHeight))
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetFullscreen(a.settings.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 TicksPerSecond 次），时间步长固定
func (a *App) Update() error {
	// F11 切换全屏，D 切换调试信息，两者都会保存
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := a.settings.ToggleFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			ebiten.SetWindowSize(int(config.ScreenWidth), int(config.ScreenHeight))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.settings.ToggleShowDebug()
	}

	a.sceneManager.Update(a.deltaTime)

	if a.sceneManager.ExitRequested() {
		log.Printf("[App] 退出")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.ScreenWidth), int(config.ScreenHeight)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// DeltaTime 每个 tick 的固定时间步长（秒）
func (a *App) DeltaTime() float64 {
	return a.deltaTime
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
