package scenes

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/entities"
	"github.com/decker502/skydiver/pkg/render"
	"github.com/decker502/skydiver/pkg/systems"
	"github.com/decker502/skydiver/pkg/types"
)

// 背景云朵参数
const (
	minClouds = 3
	maxClouds = 5
)

var (
	cloudScrollDuration = config.Range{Min: 8, Max: 12}
	cloudAlpha          = config.Range{Min: 0.4, Max: 0.8}
	cloudY              = config.Range{Min: 0, Max: config.ScreenHeight/2 - entities.CloudHeight}
)

// Background 天空与缓慢飘过的云朵
//
// 背景拥有独立的实体管理器和动画系统，跨场景保持，
// 不受单局回合的创建与销毁影响。
type Background struct {
	entityManager *ecs.EntityManager
	animation     *systems.AnimationSystem
	renderSystem  *render.RenderSystem
	rng           *rand.Rand

	clouds []ecs.EntityID
}

// NewBackground 创建天空和 3-5 朵云
//
// 参数:
//   - visuals: 视觉资源提供者（天空、云朵图像）
//   - rng: 随机源，决定云朵数量、位置、速度和透明度
func NewBackground(visuals render.VisualProvider, rng *rand.Rand) *Background {
	em := ecs.NewEntityManager()
	b := &Background{
		entityManager: em,
		animation:     systems.NewAnimationSystem(em, config.ScreenWidth),
		renderSystem:  render.NewRenderSystem(em, visuals, nil),
		rng:           rng,
	}

	sky := em.CreateEntity()
	ecs.AddComponent(em, sky, &components.PositionComponent{})
	ecs.AddComponent(em, sky, &components.SizeComponent{Width: config.ScreenWidth, Height: config.ScreenHeight})
	ecs.AddComponent(em, sky, &components.SpriteComponent{Key: types.VisualSky, Visible: true, ZIndex: entities.ZSky})

	count := minClouds + rng.Intn(maxClouds-minClouds+1)
	for i := 0; i < count; i++ {
		b.addCloud()
	}

	log.Printf("[Background] 创建 %d 朵云", count)
	return b
}

func (b *Background) addCloud() {
	key := types.CloudVisuals[b.rng.Intn(len(types.CloudVisuals))]
	x := b.rng.Float64() * config.ScreenWidth
	y := cloudY.Sample(b.rng)
	alpha := cloudAlpha.Sample(b.rng)

	id := entities.NewCloud(b.entityManager, x, y, key, alpha)
	b.animation.StartScroll(id, cloudScrollDuration.Sample(b.rng), b.onCloudWrap(id))
	b.clouds = append(b.clouds, id)
}

// onCloudWrap 云朵回到左侧时换一个高度
func (b *Background) onCloudWrap(id ecs.EntityID) systems.AnimationCallback {
	return func() {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](b.entityManager, id); ok {
			pos.Y = cloudY.Sample(b.rng)
		}
	}
}

// Update 推进云朵滚动
func (b *Background) Update(deltaTime float64) {
	b.animation.Update(deltaTime)
}

// Draw 绘制天空和云朵
func (b *Background) Draw(screen *ebiten.Image) {
	b.renderSystem.Draw(screen)
}

// Clouds 云朵实体
func (b *Background) Clouds() []ecs.EntityID {
	return b.clouds
}

// EntityManager 背景实体（测试与调试用）
func (b *Background) EntityManager() *ecs.EntityManager {
	return b.entityManager
}
