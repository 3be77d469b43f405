package scenes

import (
	"math/rand"
	"testing"

	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/game"
)

const testTick = 1.0 / config.TicksPerSecond

// newTestDeps 创建使用默认配置和固定种子的场景依赖
func newTestDeps(t *testing.T) Deps {
	t.Helper()

	rm, err := game.NewResourceManager()
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}
	rng := rand.New(rand.NewSource(1))

	return Deps{
		SceneManager: game.NewSceneManager(),
		Resources:    rm,
		Settings:     game.NewSettingsManager(nil),
		RoundConfig:  config.DefaultRoundConfig(),
		Rand:         rng,
		Background:   NewBackground(rm, rng),
	}
}
