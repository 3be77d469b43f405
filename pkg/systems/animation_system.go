package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/ecs"
)

// AnimationKind 动画任务种类
// 同一实体每种动画最多只有一个活动任务，三种互不影响
type AnimationKind int

const (
	// AnimInterpolation 线性插值移动到目标位置
	AnimInterpolation AnimationKind = iota
	// AnimScroll 从左向右横向滚动，越过屏幕右边后回绕到 -Width
	AnimScroll
	// AnimFrameCycle 按固定帧时长循环切换 SpriteComponent.Key
	AnimFrameCycle
)

// LoopsInfinite 帧动画无限循环
const LoopsInfinite = -1

// timeEpsilon 累计浮点时间时的容差
// 保证 ceil(d/dt) 个 tick 之后任务一定完成，不会因为 0.1*10 < 1 之类的误差多等一帧
const timeEpsilon = 1e-9

// String 返回动画种类名称（日志用）
func (k AnimationKind) String() string {
	switch k {
	case AnimInterpolation:
		return "interpolation"
	case AnimScroll:
		return "scroll"
	case AnimFrameCycle:
		return "frame-cycle"
	default:
		return fmt.Sprintf("AnimationKind(%d)", int(k))
	}
}

// AnimationCallback 动画完成（或滚动回绕）时的回调
type AnimationCallback func()

type animationKey struct {
	id   ecs.EntityID
	kind AnimationKind
}

// animationTask 单个动画任务
// 三种任务共用一个结构，只使用与 kind 相关的字段
type animationTask struct {
	key      animationKey
	elapsed  float64 // 已经过的时间（秒）
	callback AnimationCallback
	done     bool // 已完成或已取消，等待从活动列表中移除

	// 插值
	startX, startY   float64
	targetX, targetY float64
	duration         float64

	// 滚动
	speed   float64 // 像素/秒
	originX float64 // 本轮滚动起点（开始位置或回绕后的 -Width）

	// 帧动画
	frames        []string
	frameDuration float64
	loops         int
	advances      int // 已经发生的换帧次数
}

// AnimationSystem 动画调度系统
//
// 负责所有基于时间的数值动画：位置插值、横向滚动回绕、帧动画。
// 所有任务都由 Update 统一推进，不使用任何独立计时器或 goroutine。
//
// 约定：
//   - 插值与帧动画的数值由"已过时间/总时间"闭式计算，不做增量累加
//   - 完成回调在数值写入最终状态之后、Update 返回之前同步调用，且只调用一次
//   - 回调内启动的新任务在下一次 Update 才开始推进
//   - 目标实体已被销毁（缺少所需组件）的任务会被静默丢弃，不调用回调
type AnimationSystem struct {
	em          *ecs.EntityManager
	screenWidth float64

	tasks    []*animationTask                // 活动任务（按启动顺序）
	index    map[animationKey]*animationTask // 实体+种类 -> 当前任务
	pending  []*animationTask                // Update 过程中启动的任务
	updating bool
}

// NewAnimationSystem 创建动画调度系统
//
// 参数:
//   - em: 实体管理器，动画目标通过 EntityID 引用
//   - screenWidth: 屏幕宽度，滚动速度与回绕边界都以它为准
//
// 返回:
//   - *AnimationSystem: 动画系统实例
func NewAnimationSystem(em *ecs.EntityManager, screenWidth float64) *AnimationSystem {
	return &AnimationSystem{
		em:          em,
		screenWidth: screenWidth,
		tasks:       make([]*animationTask, 0),
		index:       make(map[animationKey]*animationTask),
	}
}

// StartInterpolation 从实体当前位置线性移动到 (targetX, targetY)
//
// duration 为 0 时任务在下一次 Update 直接贴合到目标并完成。
//
// 参数:
//   - id: 目标实体（需要 PositionComponent）
//   - targetX, targetY: 目标位置
//   - duration: 持续时间（秒），不能为负
//   - callback: 完成回调，可为 nil
func (s *AnimationSystem) StartInterpolation(id ecs.EntityID, targetX, targetY, duration float64, callback AnimationCallback) {
	if duration < 0 || math.IsNaN(duration) {
		panic(fmt.Sprintf("animation: interpolation duration must be >= 0, got %v", duration))
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		log.Printf("[AnimationSystem] 实体 %d 没有位置组件，忽略插值任务", id)
		return
	}

	s.add(&animationTask{
		key:      animationKey{id: id, kind: AnimInterpolation},
		startX:   pos.X,
		startY:   pos.Y,
		targetX:  targetX,
		targetY:  targetY,
		duration: duration,
		callback: callback,
	})
}

// StartScroll 让实体从当前位置开始向右滚动
//
// 速度 = 屏幕宽度 / duration。当 X 超过屏幕宽度时回绕到 -Width（保留超出的距离），
// 每次回绕调用一次回调；一个 tick 跨过多次边界时回调相应调用多次。对同一实体重复调用会静默取消上一个滚动。
//
// 参数:
//   - id: 目标实体（需要 PositionComponent 与 SizeComponent）
//   - duration: 横穿一个屏幕宽度所需时间（秒），必须大于 0
//   - callback: 回绕回调，可为 nil
func (s *AnimationSystem) StartScroll(id ecs.EntityID, duration float64, callback AnimationCallback) {
	if !(duration > 0) {
		panic(fmt.Sprintf("animation: scroll duration must be > 0, got %v", duration))
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok || !ecs.HasComponent[*components.SizeComponent](s.em, id) {
		log.Printf("[AnimationSystem] 实体 %d 缺少位置或尺寸组件，忽略滚动任务", id)
		return
	}

	s.add(&animationTask{
		key:      animationKey{id: id, kind: AnimScroll},
		speed:    s.screenWidth / duration,
		originX:  pos.X,
		callback: callback,
	})
}

// StartFrameCycle 在实体上播放帧动画
//
// 启动时立即显示第 0 帧；每经过 frameDuration 换一帧。
// loops 为 LoopsInfinite 时无限循环，否则在 loops×len(frames) 次换帧后
// 停在最后一帧并调用回调。
//
// 参数:
//   - id: 目标实体（需要 SpriteComponent）
//   - frames: 帧资源键序列，不能为空
//   - frameDuration: 每帧时长（秒），必须大于 0
//   - loops: 循环次数（>0）或 LoopsInfinite
//   - callback: 完成回调，可为 nil
func (s *AnimationSystem) StartFrameCycle(id ecs.EntityID, frames []string, frameDuration float64, loops int, callback AnimationCallback) {
	if len(frames) == 0 {
		panic("animation: frame cycle needs at least one frame")
	}
	if !(frameDuration > 0) {
		panic(fmt.Sprintf("animation: frame duration must be > 0, got %v", frameDuration))
	}
	if loops != LoopsInfinite && loops <= 0 {
		panic(fmt.Sprintf("animation: loops must be > 0 or LoopsInfinite, got %d", loops))
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id)
	if !ok {
		log.Printf("[AnimationSystem] 实体 %d 没有精灵组件，忽略帧动画", id)
		return
	}
	sprite.Key = frames[0]

	s.add(&animationTask{
		key:           animationKey{id: id, kind: AnimFrameCycle},
		frames:        append([]string(nil), frames...),
		frameDuration: frameDuration,
		loops:         loops,
		callback:      callback,
	})
}

// Cancel 取消实体上指定种类的动画，不调用回调
// 幂等：任务不存在时什么也不做
func (s *AnimationSystem) Cancel(id ecs.EntityID, kind AnimationKind) {
	key := animationKey{id: id, kind: kind}
	if task, ok := s.index[key]; ok {
		task.done = true
		delete(s.index, key)
	}
}

// CancelAll 取消实体上的全部动画
func (s *AnimationSystem) CancelAll(id ecs.EntityID) {
	s.Cancel(id, AnimInterpolation)
	s.Cancel(id, AnimScroll)
	s.Cancel(id, AnimFrameCycle)
}

// IsActive 检查实体上是否有指定种类的活动动画（包括尚未开始推进的任务）
func (s *AnimationSystem) IsActive(id ecs.EntityID, kind AnimationKind) bool {
	_, ok := s.index[animationKey{id: id, kind: kind}]
	return ok
}

// ActiveCount 返回活动任务总数
func (s *AnimationSystem) ActiveCount() int {
	return len(s.index)
}

// add 登记新任务，同种类旧任务立即作废（回调不再触发）
func (s *AnimationSystem) add(task *animationTask) {
	if old, ok := s.index[task.key]; ok {
		old.done = true
	}
	s.index[task.key] = task

	if s.updating {
		// 回调中启动的任务延迟到下一次 Update
		s.pending = append(s.pending, task)
		return
	}
	s.tasks = append(s.tasks, task)
}

// finish 任务完成：移出索引后调用回调
func (s *AnimationSystem) finish(task *animationTask) {
	task.done = true
	if s.index[task.key] == task {
		delete(s.index, task.key)
	}
	if task.callback != nil {
		task.callback()
	}
}

// drop 目标失效时丢弃任务，不调用回调
func (s *AnimationSystem) drop(task *animationTask) {
	task.done = true
	if s.index[task.key] == task {
		delete(s.index, task.key)
	}
	log.Printf("[AnimationSystem] 实体 %d 已失效，丢弃 %s 任务", task.key.id, task.key.kind)
}

// Update 推进所有活动任务
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），负值按 0 处理
func (s *AnimationSystem) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	s.updating = true
	for _, task := range s.tasks {
		if task.done {
			continue
		}
		switch task.key.kind {
		case AnimInterpolation:
			s.updateInterpolation(task, deltaTime)
		case AnimScroll:
			s.updateScroll(task, deltaTime)
		case AnimFrameCycle:
			s.updateFrameCycle(task, deltaTime)
		}
	}
	s.updating = false

	// 压缩活动列表并合并回调中新启动的任务
	alive := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.done {
			alive = append(alive, task)
		}
	}
	for _, task := range s.pending {
		if !task.done {
			alive = append(alive, task)
		}
	}
	for i := len(alive); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = alive
	s.pending = s.pending[:0]
}

func (s *AnimationSystem) updateInterpolation(task *animationTask, dt float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, task.key.id)
	if !ok {
		s.drop(task)
		return
	}

	task.elapsed = math.Min(task.elapsed+dt, task.duration)
	if task.elapsed+timeEpsilon >= task.duration {
		// 贴合到目标，消除浮点残差
		pos.X = task.targetX
		pos.Y = task.targetY
		s.finish(task)
		return
	}

	ratio := task.elapsed / task.duration
	pos.X = task.startX + (task.targetX-task.startX)*ratio
	pos.Y = task.startY + (task.targetY-task.startY)*ratio
}

func (s *AnimationSystem) updateScroll(task *animationTask, dt float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, task.key.id)
	if !ok {
		s.drop(task)
		return
	}
	size, ok := ecs.GetComponent[*components.SizeComponent](s.em, task.key.id)
	if !ok {
		s.drop(task)
		return
	}

	task.elapsed += dt
	pos.X = task.originX + task.speed*task.elapsed

	// 一个 tick 可能跨过多次边界：每次越过右边界回绕到 -Width，
	// 超出的距离带到下一轮，每次回绕调用一次回调
	for pos.X > s.screenWidth {
		overshoot := pos.X - s.screenWidth
		if s.screenWidth+size.Width <= 0 {
			overshoot = 0
		}
		pos.X = -size.Width + overshoot
		task.originX = pos.X
		task.elapsed = 0

		if task.callback != nil {
			task.callback()
		}
		if task.done || s.index[task.key] != task {
			// 回调取消或替换了本任务
			return
		}
	}
}

func (s *AnimationSystem) updateFrameCycle(task *animationTask, dt float64) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, task.key.id)
	if !ok {
		s.drop(task)
		return
	}

	task.elapsed += dt
	task.advances = int(math.Floor((task.elapsed + timeEpsilon) / task.frameDuration))

	if task.loops != LoopsInfinite && task.advances >= task.loops*len(task.frames) {
		// 有限循环结束：停在最后一帧
		task.advances = task.loops * len(task.frames)
		sprite.Key = task.frames[len(task.frames)-1]
		s.finish(task)
		return
	}

	sprite.Key = task.frames[task.advances%len(task.frames)]
}
