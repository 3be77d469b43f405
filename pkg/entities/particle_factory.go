package entities

import (
	"image/color"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/ecs"
)

// NewParticle 创建一个纯色方块粒子
//
// 粒子以 (x, y) 为中心，边长 size。飞行由动画系统驱动，
// 结束后只标记 Inert 并隐藏，不从实体管理器中删除。
//
// 参数:
//   - em: 实体管理器
//   - x, y: 中心位置
//   - size: 边长
//   - c: 颜色
//   - zIndex: 绘制层级
//
// 返回:
//   - ecs.EntityID: 粒子实体ID
func NewParticle(em *ecs.EntityManager, x, y, size float64, c color.RGBA, zIndex int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x - size/2, Y: y - size/2})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: size, Height: size})
	ecs.AddComponent(em, id, &components.ShapeComponent{Color: c})
	ecs.AddComponent(em, id, &components.SpriteComponent{Visible: true, ZIndex: zIndex})
	ecs.AddComponent(em, id, &components.ParticleComponent{})
	return id
}
