package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/entities"
)

// DefaultBurstRadius 粒子从发射点飞出的距离范围
var DefaultBurstRadius = config.Range{Min: 25, Max: 75}

// BurstStyle 同一次爆散中所有粒子共用的外观
type BurstStyle struct {
	Color  color.RGBA
	ZIndex int
}

// ParticleBurstSystem 一次性径向粒子爆散（摔落效果）
//
// 每个粒子都是普通实体，由共享 AnimationSystem 上的插值任务推动。
// 飞行结束后粒子被标记为失效并隐藏，但不会被销毁，
// 渲染器遍历实体时不会看到粒子在帧中途消失。
//
// 系统本身不保存爆散状态，粒子所需的一切都在组件和动画回调闭包里。
type ParticleBurstSystem struct {
	EntityManager *ecs.EntityManager
	Animation     *AnimationSystem
	Radius        config.Range

	rng *rand.Rand
}

// NewParticleBurstSystem 创建粒子爆散系统
//
// 参数:
//   - em: 实体管理器
//   - anim: 推动粒子飞行的动画系统
//   - rng: 随机源，角度、距离、尺寸、时长都从这里取，固定种子可复现同一次爆散
//
// 返回:
//   - *ParticleBurstSystem: 粒子系统实例
func NewParticleBurstSystem(em *ecs.EntityManager, anim *AnimationSystem, rng *rand.Rand) *ParticleBurstSystem {
	return &ParticleBurstSystem{
		EntityManager: em,
		Animation:     anim,
		Radius:        DefaultBurstRadius,
		rng:           rng,
	}
}

// Fire 以 (originX, originY) 为中心发射 count 个粒子
//
// 每个粒子的角度在 [0, 2π) 内均匀采样，距离取自 Radius，尺寸取自 sizeRange，
// 飞行时长取自 durationRange，然后从发射点插值移动到 发射点 + 距离·(cosθ, sinθ)。
//
// 参数:
//   - originX, originY: 发射点
//   - count: 粒子数量，<= 0 时不发射
//   - style: 颜色与层级
//   - sizeRange: 粒子边长范围
//   - durationRange: 飞行时长范围（秒）
//
// 返回:
//   - []ecs.EntityID: 按创建顺序排列的粒子实体
func (ps *ParticleBurstSystem) Fire(originX, originY float64, count int, style BurstStyle, sizeRange, durationRange config.Range) []ecs.EntityID {
	if count <= 0 {
		return nil
	}

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		radius := ps.Radius.Sample(ps.rng)
		size := sizeRange.Sample(ps.rng)
		duration := durationRange.Sample(ps.rng)

		id := entities.NewParticle(ps.EntityManager, originX, originY, size, style.Color, style.ZIndex)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, id)

		targetX := pos.X + radius*math.Cos(angle)
		targetY := pos.Y + radius*math.Sin(angle)
		ps.Animation.StartInterpolation(id, targetX, targetY, duration, ps.settle(id))

		ids = append(ids, id)
	}

	log.Printf("[ParticleBurstSystem] 在 (%.1f, %.1f) 发射 %d 个粒子", originX, originY, count)
	return ids
}

// settle 返回单个粒子飞行结束时的回调：标记失效并隐藏
func (ps *ParticleBurstSystem) settle(id ecs.EntityID) AnimationCallback {
	return func() {
		if p, ok := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id); ok {
			p.Inert = true
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](ps.EntityManager, id); ok {
			sprite.Visible = false
		}
	}
}

// LiveCount 仍在飞行中的粒子数量
func (ps *ParticleBurstSystem) LiveCount() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](ps.EntityManager) {
		if p, ok := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id); ok && !p.Inert {
			n++
		}
	}
	return n
}
