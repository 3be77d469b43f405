package round

import (
	"log"
	"math"

	"github.com/decker502/skydiver/pkg/entities"
	"github.com/decker502/skydiver/pkg/physics"
	"github.com/decker502/skydiver/pkg/systems"
	"github.com/decker502/skydiver/pkg/types"
)

// jumperHangRatio 跳伞者挂在直升机底部时露出机身的比例
const jumperHangRatio = 0.2

func (r *Round) createEntities() {
	r.ground = entities.NewGround(r.em, r.ctx.Ground, r.cfg.Screen.Height)
	r.helicopter = entities.NewHelicopter(r.em, r.cfg)
	r.parachute = entities.NewParachute(r.em, r.cfg)
	r.jumper = entities.NewJumper(r.em, r.cfg)
}

// ========================================
// Countdown
// ========================================

func (r *Round) enterCountdown() {
	r.setVisible(r.helicopter, false)
	r.setVisible(r.jumper, false)
	r.setVisible(r.parachute, false)

	// 地面从屏幕底部升起
	r.anim.StartInterpolation(r.ground, r.ctx.Ground.X, r.ctx.Ground.Y, r.cfg.Ground.RiseDuration, nil)

	r.countdown = entities.NewCountdown(r.em, r.cfg)
	frames := types.CountdownFrames(r.cfg.Countdown.Steps)
	r.anim.StartFrameCycle(r.countdown, frames, r.cfg.Countdown.StepDuration, 1, func() {
		r.em.DestroyEntity(r.countdown)
		r.countdownDone = true
	})
}

func (r *Round) updateCountdown(dt float64) State {
	if r.countdownDone {
		return PreLaunch
	}
	return Countdown
}

// ========================================
// PreLaunch
// ========================================

func (r *Round) enterPreLaunch() {
	r.setVisible(r.helicopter, true)
	r.setVisible(r.jumper, true)

	r.anim.StartFrameCycle(r.helicopter, types.HelicopterFrames, r.cfg.Helicopter.FrameDuration, systems.LoopsInfinite, nil)
	r.anim.StartScroll(r.helicopter, r.cfg.Helicopter.ScrollDuration, r.onHelicopterWrap)
	r.trackHelicopter()
}

func (r *Round) updatePreLaunch(dt float64) State {
	if r.helicopterGone {
		// 直升机飞出屏幕仍未跳出
		r.stopHelicopter()
		r.setVisible(r.jumper, false)
		r.ctx.Score = 0
		return CompleteDefault
	}
	r.trackHelicopter()
	return PreLaunch
}

func (r *Round) releasePreLaunch() State {
	return InFlight
}

// onHelicopterWrap 直升机越过右边界
// PreLaunch 中表示错过跳伞；跳出后只是让直升机离场
func (r *Round) onHelicopterWrap() {
	if r.state == PreLaunch {
		r.helicopterGone = true
		return
	}
	r.stopHelicopter()
}

func (r *Round) stopHelicopter() {
	r.anim.Cancel(r.helicopter, systems.AnimScroll)
	r.anim.Cancel(r.helicopter, systems.AnimFrameCycle)
	r.setVisible(r.helicopter, false)
}

// trackHelicopter 跳伞者挂在直升机底部中央
func (r *Round) trackHelicopter() {
	hp, hs := r.positionOf(r.helicopter), r.sizeOf(r.helicopter)
	jp, js := r.positionOf(r.jumper), r.sizeOf(r.jumper)
	if hp == nil || hs == nil || jp == nil || js == nil {
		return
	}
	jp.X = hp.X + hs.Width/2 - js.Width/2
	jp.Y = hp.Y + hs.Height - js.Height*jumperHangRatio
}

// ========================================
// InFlight
// ========================================

func (r *Round) enterInFlight() {
	jp := r.positionOf(r.jumper)
	r.body.SetPosition(jp.X, jp.Y)

	r.body.ResetVerticalAcceleration()
	r.body.AX = r.ctx.WindSpeed
	r.body.VX = r.cfg.Physics.LaunchVelocityX
	r.body.VY = 0
}

func (r *Round) updateInFlight(dt float64) State {
	r.body.Integrate(dt)
	r.syncJumper()

	screen := physics.Rect{Width: r.cfg.Screen.Width, Height: r.cfg.Screen.Height}
	if !r.body.IsWithin(screen) {
		log.Printf("[Round %s] 跳伞者飞出屏幕", r.ctx.shortID())
		r.setVisible(r.jumper, false)
		r.setVisible(r.parachute, false)
		r.ctx.Score = 0
		return CompleteDefault
	}

	if !r.body.Intersects(r.groundRect().TopStrip(1)) {
		return InFlight
	}

	speed := r.body.Speed()
	log.Printf("[Round %s] 着陆速度 %.1f（安全上限 %.1f）", r.ctx.shortID(), speed, r.cfg.Physics.SafeVelocity)

	if speed <= r.cfg.Physics.SafeVelocity {
		r.ctx.Score = math.Floor(r.ctx.WindSpeed) +
			(r.cfg.Ground.Width.Max - r.ctx.Ground.Width) +
			r.ctx.ParachuteDuration()
		return CompleteDefault
	}

	r.splat()
	return CompleteSplat
}

// releaseInFlight 开伞，每局最多一次
func (r *Round) releaseInFlight() State {
	if r.ctx.ParachuteDeployed {
		return InFlight
	}

	p := r.cfg.Parachute
	r.body.AY *= p.AccelFactor
	r.body.VY *= p.VerticalFactor
	r.body.VX *= p.HorizontalFactor

	r.ctx.ParachuteDeployed = true
	r.ctx.ParachuteDeployedAt = r.ctx.Clock

	r.setVisible(r.parachute, true)
	r.syncJumper()

	log.Printf("[Round %s] 开伞 (t=%.3fs)", r.ctx.shortID(), r.ctx.Clock)
	return InFlight
}

// syncJumper 把物理体位置写回跳伞者，降落伞跟随在头顶
func (r *Round) syncJumper() {
	jp, js := r.positionOf(r.jumper), r.sizeOf(r.jumper)
	if jp == nil || js == nil {
		return
	}
	jp.X, jp.Y = r.body.X, r.body.Y

	if !r.ctx.ParachuteDeployed {
		return
	}
	pp, ps := r.positionOf(r.parachute), r.sizeOf(r.parachute)
	if pp == nil || ps == nil {
		return
	}
	pp.X = jp.X + js.Width/2 - ps.Width/2
	pp.Y = jp.Y - ps.Height
}

// splat 以跳伞者中心为原点发射粒子
func (r *Round) splat() {
	jp, js := r.positionOf(r.jumper), r.sizeOf(r.jumper)
	cx, cy := jp.X+js.Width/2, jp.Y+js.Height/2

	splat := r.cfg.Splat
	count := splat.Count.SampleInt(r.rng)
	style := systems.BurstStyle{Color: splat.Color.Color(), ZIndex: entities.ZParticle}
	r.particleIDs = r.particles.Fire(cx, cy, count, style, splat.Size, splat.Duration)

	r.setVisible(r.jumper, false)
	r.setVisible(r.parachute, false)
	r.ctx.Score = 0
}

// ========================================
// CompleteDefault / CompleteSplat
// ========================================

func (r *Round) enterComplete() {
	r.body.ClearMovement()

	if r.state == CompleteSplat {
		r.message = MessageSplat
	} else {
		r.message = FormatScore(r.ctx.Score)
	}
	r.messageID = entities.NewResultMessage(r.em, r.cfg, r.message)

	log.Printf("[Round %s] 回合结束: %s 得分=%.3f", r.ctx.shortID(), r.state, r.ctx.Score)
}

func (r *Round) updateComplete(dt float64) State {
	return r.state
}

// releaseComplete 结果界面被点击，回合结束
func (r *Round) releaseComplete() State {
	r.finished = true
	if r.onFinished != nil {
		r.onFinished(r.ctx)
	}
	return r.state
}
