package entities

import (
	"image/color"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/physics"
	"github.com/decker502/skydiver/pkg/types"
)

// 绘制层级，数值小的先画
const (
	ZSky        = 0
	ZCloud      = 5
	ZGround     = 10
	ZHelicopter = 20
	ZParachute  = 29
	ZJumper     = 30
	ZParticle   = 40
	ZText       = 50
)

// GroundColor 地面填充色
var GroundColor = color.RGBA{R: 0x2e, G: 0x8b, B: 0x3a, A: 0xff}

// NewHelicopter 创建直升机实体
//
// 直升机初始位于屏幕左侧之外（X = -Width），隐藏，
// 由回合状态机在 PreLaunch 时显示并开始滚动。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 单局配置（尺寸与飞行高度）
//
// 返回:
//   - ecs.EntityID: 直升机实体ID
func NewHelicopter(em *ecs.EntityManager, cfg *config.RoundConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: -cfg.Helicopter.Width,
		Y: cfg.Helicopter.Y,
	})
	ecs.AddComponent(em, id, &components.SizeComponent{
		Width:  cfg.Helicopter.Width,
		Height: cfg.Helicopter.Height,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Key:    types.VisualHelicopter0,
		ZIndex: ZHelicopter,
	})
	return id
}

// NewJumper 创建跳伞者实体（初始隐藏）
func NewJumper(em *ecs.EntityManager, cfg *config.RoundConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.SizeComponent{
		Width:  cfg.Jumper.Width,
		Height: cfg.Jumper.Height,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Key:    types.VisualJumper,
		ZIndex: ZJumper,
	})
	return id
}

// NewParachute 创建降落伞实体（初始隐藏，开伞后跟随跳伞者）
func NewParachute(em *ecs.EntityManager, cfg *config.RoundConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.SizeComponent{
		Width:  cfg.Parachute.Width,
		Height: cfg.Parachute.Height,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Key:    types.VisualParachute,
		ZIndex: ZParachute,
	})
	return id
}

// NewGround 创建着陆地面实体
//
// 地面从屏幕底边之下开始（Y = screenHeight），由调用方用插值动画
// 升到 ground.Y。碰撞检测使用回合上下文里的最终矩形，而不是实体位置。
//
// 参数:
//   - em: 实体管理器
//   - ground: 地面最终矩形
//   - screenHeight: 屏幕高度
func NewGround(em *ecs.EntityManager, ground physics.Rect, screenHeight float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: ground.X, Y: screenHeight})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: ground.Width, Height: ground.Height})
	ecs.AddComponent(em, id, &components.ShapeComponent{Color: GroundColor})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Key:     types.VisualGround,
		Visible: true,
		ZIndex:  ZGround,
	})
	return id
}
