package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/entities"
	"github.com/decker502/skydiver/pkg/render"
	"github.com/decker502/skydiver/pkg/utils"
)

// 说明页排版
const (
	instructionsTitle       = "Instructions"
	instructionsTitleY      = 60.0
	instructionsTextY       = 160.0
	instructionsMargin      = 60.0
	instructionsLineSpacing = 1.5
)

// InstructionsScene 玩法说明页，任意点击返回主菜单
type InstructionsScene struct {
	deps          Deps
	entityManager *ecs.EntityManager
	renderSystem  *render.RenderSystem
	lines         []string
}

// NewInstructionsScene 创建说明页，正文按屏幕宽度自动换行
func NewInstructionsScene(deps Deps) *InstructionsScene {
	em := ecs.NewEntityManager()
	scene := &InstructionsScene{
		deps:          deps,
		entityManager: em,
		renderSystem:  render.NewRenderSystem(em, deps.Resources, deps.Resources),
	}

	entities.NewTitle(em, instructionsTitle, instructionsTitleY)

	face := deps.Resources.Font(config.InstructionsFontSize)
	maxWidth := config.ScreenWidth - 2*instructionsMargin
	for _, paragraph := range config.InstructionsText {
		scene.lines = append(scene.lines, utils.WrapText(paragraph, face, maxWidth)...)
	}

	y := instructionsTextY
	for _, line := range scene.lines {
		if line != "" {
			entities.NewTextLine(em, y, line, config.InstructionsFontSize)
		}
		y += config.InstructionsFontSize * instructionsLineSpacing
	}

	return scene
}

// Update 推进背景，点击任意位置返回主菜单
func (s *InstructionsScene) Update(deltaTime float64) {
	s.deps.Background.Update(deltaTime)

	if released, _, _ := utils.IsPointerJustReleased(); released {
		s.back()
	}
}

func (s *InstructionsScene) back() {
	log.Printf("[InstructionsScene] 返回主菜单")
	s.deps.SceneManager.SwitchTo(NewMainMenuScene(s.deps))
}

// Draw 绘制背景与说明文本
func (s *InstructionsScene) Draw(screen *ebiten.Image) {
	s.deps.Background.Draw(screen)
	s.renderSystem.Draw(screen)
}

// Lines 换行后的正文
func (s *InstructionsScene) Lines() []string {
	return s.lines
}
