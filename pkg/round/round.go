package round

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/physics"
	"github.com/decker502/skydiver/pkg/systems"
)

// MessageSplat 摔落时的提示
const MessageSplat = "Uh oh..."

// stateHandler 单个状态的行为
//
//   - enter: 进入状态时执行一次
//   - update: 每个 tick 调用，返回下一个状态（返回自身表示保持）
//   - release: 指针释放时调用；为 nil 表示该状态不响应点击
type stateHandler struct {
	enter   func()
	update  func(dt float64) State
	release func() State
}

// Option 回合可选参数
type Option func(*Round)

// WithOnFinished 回合结束（结果界面被点击）时调用一次
func WithOnFinished(fn func(ctx *Context)) Option {
	return func(r *Round) {
		r.onFinished = fn
	}
}

// Round 单局跳伞的状态机
//
// 唯一的推进入口是 Update。每个 tick 依次：
//  1. 累加回合时钟
//  2. 推进动画（倒计时、直升机滚动、地面升起、粒子）
//  3. 执行当前状态的 update（跟随、物理积分、碰撞检测），必要时切换状态
//  4. 清理本 tick 标记删除的实体
//
// OnPointerReleased 由输入方同步调用，不在可响应状态时直接忽略。
type Round struct {
	cfg *config.RoundConfig
	rng *rand.Rand
	ctx *Context

	em        *ecs.EntityManager
	anim      *systems.AnimationSystem
	particles *systems.ParticleBurstSystem
	body      *physics.Body

	state    State
	handlers map[State]stateHandler

	helicopter ecs.EntityID
	jumper     ecs.EntityID
	parachute  ecs.EntityID
	ground     ecs.EntityID
	countdown  ecs.EntityID
	messageID  ecs.EntityID

	particleIDs []ecs.EntityID
	message     string

	// 动画回调只设置标记，由状态 update 消费
	countdownDone  bool
	helicopterGone bool

	finished   bool
	onFinished func(ctx *Context)
}

// New 采样新的回合数据并创建回合
//
// 参数:
//   - cfg: 单局配置（需已通过 Validate）
//   - rng: 随机源，回合内所有随机数都来自它
//   - opts: 可选参数
func New(cfg *config.RoundConfig, rng *rand.Rand, opts ...Option) *Round {
	return NewWithContext(cfg, rng, NewContext(cfg, rng), opts...)
}

// NewWithContext 使用给定的回合数据创建回合（用于复现指定的风速与地面）
func NewWithContext(cfg *config.RoundConfig, rng *rand.Rand, ctx *Context, opts ...Option) *Round {
	em := ecs.NewEntityManager()
	anim := systems.NewAnimationSystem(em, cfg.Screen.Width)

	r := &Round{
		cfg:       cfg,
		rng:       rng,
		ctx:       ctx,
		em:        em,
		anim:      anim,
		particles: systems.NewParticleBurstSystem(em, anim, rng),
		body:      physics.NewBody(physics.Rect{Width: cfg.Jumper.Width, Height: cfg.Jumper.Height}),
	}
	r.particles.Radius = cfg.Splat.Radius
	r.body.SetDefaultAcceleration(physics.DefaultHorizontalAcceleration, cfg.Physics.Gravity)

	for _, opt := range opts {
		opt(r)
	}

	r.createEntities()

	r.handlers = map[State]stateHandler{
		Countdown: {
			enter:  r.enterCountdown,
			update: r.updateCountdown,
		},
		PreLaunch: {
			enter:   r.enterPreLaunch,
			update:  r.updatePreLaunch,
			release: r.releasePreLaunch,
		},
		InFlight: {
			enter:   r.enterInFlight,
			update:  r.updateInFlight,
			release: r.releaseInFlight,
		},
		CompleteDefault: {
			enter:   r.enterComplete,
			update:  r.updateComplete,
			release: r.releaseComplete,
		},
		CompleteSplat: {
			enter:   r.enterComplete,
			update:  r.updateComplete,
			release: r.releaseComplete,
		},
	}

	log.Printf("[Round %s] 新回合: 风速=%.1f 地面=(%.0f,%.0f %.0fx%.0f)",
		ctx.shortID(), ctx.WindSpeed, ctx.Ground.X, ctx.Ground.Y, ctx.Ground.Width, ctx.Ground.Height)

	r.state = Countdown
	r.handlers[Countdown].enter()
	return r
}

// Update 推进一个 tick
//
// 参数:
//   - deltaTime: 距上一 tick 的时间（秒），负值按 0 处理
func (r *Round) Update(deltaTime float64) {
	if r.finished {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	r.ctx.Clock += deltaTime
	r.anim.Update(deltaTime)

	if h := r.handlers[r.state]; h.update != nil {
		r.transition(h.update(deltaTime))
	}

	r.em.RemoveMarkedEntities()
}

// OnPointerReleased 处理指针释放（鼠标抬起、触摸结束）
// 当前状态不响应点击时什么也不做
func (r *Round) OnPointerReleased() {
	if r.finished {
		return
	}
	h := r.handlers[r.state]
	if h.release == nil {
		return
	}
	r.transition(h.release())
}

// transition 切换到 next 并执行其 enter；next 与当前状态相同时不做任何事
func (r *Round) transition(next State) {
	if next == r.state {
		return
	}
	log.Printf("[Round %s] %s -> %s (t=%.3fs)", r.ctx.shortID(), r.state, next, r.ctx.Clock)
	r.state = next
	if h := r.handlers[next]; h.enter != nil {
		h.enter()
	}
}

// State 当前状态
func (r *Round) State() State {
	return r.state
}

// Context 回合数据
func (r *Round) Context() *Context {
	return r.ctx
}

// Score 当前得分（结束前为 0）
func (r *Round) Score() float64 {
	return r.ctx.Score
}

// Message 结果提示，结束前为空
func (r *Round) Message() string {
	return r.message
}

// Finished 结果界面是否已被点击，回合控制权应交回调用方
func (r *Round) Finished() bool {
	return r.finished
}

// EntityManager 回合内所有实体（渲染器只读）
func (r *Round) EntityManager() *ecs.EntityManager {
	return r.em
}

// Jumper 跳伞者实体
func (r *Round) Jumper() ecs.EntityID {
	return r.jumper
}

// Body 跳伞者物理体
func (r *Round) Body() *physics.Body {
	return r.body
}

// Particles 摔落时发射的粒子
func (r *Round) Particles() []ecs.EntityID {
	return r.particleIDs
}

// Config 单局配置
func (r *Round) Config() *config.RoundConfig {
	return r.cfg
}

// scoreEpsilon 回合时钟由 dt 累加，截断前容忍的浮点误差
const scoreEpsilon = 1e-6

// FormatScore 结果提示中的得分文本，得分截断为整数
func FormatScore(score float64) string {
	return fmt.Sprintf("Score: %d", int(math.Floor(score+scoreEpsilon)))
}

// groundRect 地面实体当前所在的矩形
// 地面仍在升起时返回的是动画中的位置，而不是 Context 中的最终位置
func (r *Round) groundRect() physics.Rect {
	pos, size := r.positionOf(r.ground), r.sizeOf(r.ground)
	if pos == nil || size == nil {
		return r.ctx.Ground
	}
	return physics.Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

func (r *Round) setVisible(id ecs.EntityID, visible bool) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](r.em, id); ok {
		sprite.Visible = visible
	}
}

func (r *Round) positionOf(id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](r.em, id)
	return pos
}

func (r *Round) sizeOf(id ecs.EntityID) *components.SizeComponent {
	size, _ := ecs.GetComponent[*components.SizeComponent](r.em, id)
	return size
}
