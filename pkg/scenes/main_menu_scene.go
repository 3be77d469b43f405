package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/entities"
	"github.com/decker502/skydiver/pkg/render"
	"github.com/decker502/skydiver/pkg/utils"
)

// 菜单项透明度：指针悬停时完全不透明
const (
	menuOptionAlpha        = 0.75
	menuOptionHoveredAlpha = 1.0
)

// MainMenuScene represents the main menu screen of the game.
// The title slides down from above the screen after a short hold,
// and the options below it start a round, open the instructions or quit.
type MainMenuScene struct {
	deps Deps

	entityManager *ecs.EntityManager
	renderSystem  *render.RenderSystem

	title   ecs.EntityID
	options []ecs.EntityID
	elapsed float64 // 场景已运行时间（秒），驱动标题动画
}

// NewMainMenuScene creates the main menu.
//
// Parameters:
//   - deps: shared scene dependencies.
//
// Returns:
//   - A pointer to the newly created MainMenuScene.
func NewMainMenuScene(deps Deps) *MainMenuScene {
	em := ecs.NewEntityManager()
	scene := &MainMenuScene{
		deps:          deps,
		entityManager: em,
		renderSystem:  render.NewRenderSystem(em, deps.Resources, deps.Resources),
	}

	scene.title = entities.NewTitle(em, config.WindowTitle, config.MenuTitleStartY)
	for i, option := range menuOptions() {
		id := entities.NewMenuOption(em, i, option)
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			sprite.Alpha = menuOptionAlpha
		}
		scene.options = append(scene.options, id)
	}

	log.Printf("[MainMenuScene] Initialized with %d options", len(scene.options))
	return scene
}

// menuOptions 移动端应用由系统关闭，不显示 Quit
func menuOptions() []config.MenuOption {
	if !utils.IsMobile() {
		return config.MenuOptions
	}
	options := make([]config.MenuOption, 0, len(config.MenuOptions))
	for _, option := range config.MenuOptions {
		if option.Action != config.MenuActionQuit {
			options = append(options, option)
		}
	}
	return options
}

// OnEnter 每次成为活动场景时重新播放标题动画
func (s *MainMenuScene) OnEnter() {
	s.elapsed = 0
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.title); ok {
		pos.Y = config.MenuTitleStartY
	}
}

// Update advances the title animation and handles pointer input.
func (s *MainMenuScene) Update(deltaTime float64) {
	s.step(deltaTime)

	x, y := utils.GetPointerPosition()
	s.updateHover(x, y)

	if released, rx, ry := utils.IsPointerJustReleased(); released {
		s.handleRelease(rx, ry)
	}
}

// step 推进背景和标题动画（不读取输入）
func (s *MainMenuScene) step(deltaTime float64) {
	s.deps.Background.Update(deltaTime)
	s.elapsed += deltaTime

	p := utils.DelayedProgress(s.elapsed, config.MenuTitleDelay, config.MenuTitleDuration)
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.title); ok {
		pos.Y = utils.Lerp(config.MenuTitleStartY, config.MenuTitleY, utils.EaseOutCubic(p))
	}
}

// updateHover 高亮指针下方的菜单项
func (s *MainMenuScene) updateHover(x, y int) {
	for _, id := range s.options {
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}
		sprite.Alpha = menuOptionAlpha
		if s.optionAt(id, x, y) {
			sprite.Alpha = menuOptionHoveredAlpha
		}
	}
}

// handleRelease 指针在 (x, y) 释放，触发命中的菜单项
func (s *MainMenuScene) handleRelease(x, y int) {
	for _, id := range s.options {
		if !s.optionAt(id, x, y) {
			continue
		}
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		s.activate(config.MenuAction(clickable.Action))
		return
	}
}

func (s *MainMenuScene) optionAt(id ecs.EntityID, x, y int) bool {
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
	if !ok || !clickable.IsEnabled {
		return false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	size, _ := ecs.GetComponent[*components.SizeComponent](s.entityManager, id)
	if pos == nil || size == nil {
		return false
	}
	return utils.PointInRect(x, y, pos.X, pos.Y, size.Width, size.Height)
}

func (s *MainMenuScene) activate(action config.MenuAction) {
	log.Printf("[MainMenuScene] 选择: %s", action)

	switch action {
	case config.MenuActionPlay:
		s.deps.SceneManager.SwitchTo(NewGameScene(s.deps))
	case config.MenuActionInstructions:
		s.deps.SceneManager.SwitchTo(NewInstructionsScene(s.deps))
	case config.MenuActionQuit:
		s.deps.SceneManager.RequestExit()
	}
}

// Draw renders the background, the title and the options.
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	s.deps.Background.Draw(screen)
	s.renderSystem.Draw(screen)
}

// TitleY 标题当前的纵坐标
func (s *MainMenuScene) TitleY() float64 {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.title); ok {
		return pos.Y
	}
	return 0
}
