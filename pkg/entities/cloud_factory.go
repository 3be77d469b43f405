package entities

import (
	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/ecs"
)

// 云朵显示尺寸
const (
	CloudWidth  = 160.0
	CloudHeight = 64.0
)

// NewCloud 创建背景云朵
//
// 参数:
//   - em: 实体管理器
//   - x, y: 初始位置
//   - key: 云朵外观资源键
//   - alpha: 透明度
func NewCloud(em *ecs.EntityManager, x, y float64, key string, alpha float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: CloudWidth, Height: CloudHeight})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Key:     key,
		Visible: true,
		ZIndex:  ZCloud,
		Alpha:   alpha,
	})
	return id
}
