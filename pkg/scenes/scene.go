package scenes

import (
	"math/rand"

	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Deps 所有场景共享的依赖
//
// 场景之间切换时总是新建目标场景，共享状态（随机源、背景、设置）
// 通过 Deps 传递，因此背景云朵在菜单与游戏之间连续移动。
type Deps struct {
	SceneManager *game.SceneManager
	Resources    *game.ResourceManager
	Settings     *game.SettingsManager
	RoundConfig  *config.RoundConfig
	Rand         *rand.Rand
	Background   *Background
}
