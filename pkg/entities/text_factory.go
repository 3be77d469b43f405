package entities

import (
	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/types"
)

// countdownBoxSize 倒计时数字的显示区域边长
const countdownBoxSize = 120.0

// NewCountdown 创建倒计时实体
// 初始显示最大的数字，帧动画负责依次切换到 1
func NewCountdown(em *ecs.EntityManager, cfg *config.RoundConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: (cfg.Screen.Width - countdownBoxSize) / 2,
		Y: (cfg.Screen.Height - countdownBoxSize) / 2,
	})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: countdownBoxSize, Height: countdownBoxSize})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Key:     types.CountdownVisual(cfg.Countdown.Steps),
		Visible: true,
		ZIndex:  ZText,
	})
	return id
}

// NewResultMessage 创建居中的结果提示（"Score: N" 或 "Uh oh..."）
func NewResultMessage(em *ecs.EntityManager, cfg *config.RoundConfig, message string) ecs.EntityID {
	return newCenteredText(em, cfg.Screen.Width, cfg.Screen.Height/2-config.MessageFontSize/2, message, config.MessageFontSize)
}

// NewTitle 创建菜单标题，位于 y，随后由动画移动
func NewTitle(em *ecs.EntityManager, title string, y float64) ecs.EntityID {
	return newCenteredText(em, config.ScreenWidth, y, title, config.MenuTitleFontSize)
}

// NewMenuOption 创建可点击的菜单项
//
// 参数:
//   - em: 实体管理器
//   - index: 菜单项序号，决定纵向位置
//   - option: 菜单项内容与动作
func NewMenuOption(em *ecs.EntityManager, index int, option config.MenuOption) ecs.EntityID {
	x, y, w, h := config.MenuOptionBounds(index)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: w, Height: h})
	ecs.AddComponent(em, id, &components.TextComponent{Text: option.Label, Size: config.MenuOptionFontSize})
	ecs.AddComponent(em, id, &components.SpriteComponent{Visible: true, ZIndex: ZText})
	ecs.AddComponent(em, id, &components.ClickableComponent{Action: int(option.Action), IsEnabled: true})
	return id
}

// NewTextLine 创建一行居中文本（说明页使用）
func NewTextLine(em *ecs.EntityManager, y float64, line string, size float64) ecs.EntityID {
	return newCenteredText(em, config.ScreenWidth, y, line, size)
}

// newCenteredText 文本占据整行宽度，渲染器在区域内水平居中绘制
func newCenteredText(em *ecs.EntityManager, width, y float64, text string, size float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 0, Y: y})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: width, Height: size})
	ecs.AddComponent(em, id, &components.TextComponent{Text: text, Size: size})
	ecs.AddComponent(em, id, &components.SpriteComponent{Visible: true, ZIndex: ZText})
	return id
}
