package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skydiver/pkg/render"
	"github.com/decker502/skydiver/pkg/round"
	"github.com/decker502/skydiver/pkg/utils"
)

// GameScene 运行一局跳伞
//
// 场景只负责把输入转交给回合、推进回合并绘制回合的实体；
// 回合结束（结果界面被点击）后回到主菜单。
type GameScene struct {
	deps         Deps
	round        *round.Round
	renderSystem *render.RenderSystem
	returned     bool
}

// NewGameScene 创建游戏场景并开始新的一局
func NewGameScene(deps Deps) *GameScene {
	scene := &GameScene{deps: deps}

	scene.round = round.New(deps.RoundConfig, deps.Rand, round.WithOnFinished(func(ctx *round.Context) {
		log.Printf("[GameScene] 回合 %s 结束，得分 %s", ctx.ID, round.FormatScore(ctx.Score))
	}))
	scene.renderSystem = render.NewRenderSystem(scene.round.EntityManager(), deps.Resources, deps.Resources)

	return scene
}

// Update 转发指针释放并推进回合
func (s *GameScene) Update(deltaTime float64) {
	if released, _, _ := utils.IsPointerJustReleased(); released {
		s.round.OnPointerReleased()
	}
	s.step(deltaTime)
}

// step 推进背景与回合，回合结束时返回主菜单
func (s *GameScene) step(deltaTime float64) {
	s.deps.Background.Update(deltaTime)
	s.round.Update(deltaTime)

	if s.round.Finished() && !s.returned {
		s.returned = true
		s.deps.SceneManager.SwitchTo(NewMainMenuScene(s.deps))
	}
}

// Draw 绘制背景、回合实体和调试信息
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.deps.Background.Draw(screen)
	s.renderSystem.Draw(screen)

	if s.deps.Settings != nil && s.deps.Settings.GetSettings().ShowDebug {
		s.drawDebug(screen)
	}
}

// Round 当前回合
func (s *GameScene) Round() *round.Round {
	return s.round
}
