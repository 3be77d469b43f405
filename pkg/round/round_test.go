package round

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/physics"
	"github.com/decker502/skydiver/pkg/types"
)

const testTick = 0.025

// testContext 风速 100、地面宽 300 的固定回合
func testContext() *Context {
	return &Context{
		WindSpeed: 100,
		Ground:    physics.Rect{X: 250, Y: 480, Width: 300, Height: 120},
	}
}

func newTestRound(t *testing.T, opts ...Option) *Round {
	t.Helper()
	cfg := config.DefaultRoundConfig()
	return NewWithContext(cfg, rand.New(rand.NewSource(1)), testContext(), opts...)
}

func ticks(r *Round, n int) {
	for i := 0; i < n; i++ {
		r.Update(testTick)
	}
}

// toPreLaunch 推进到倒计时结束
func toPreLaunch(t *testing.T, r *Round) {
	t.Helper()
	for i := 0; i < 400 && r.State() == Countdown; i++ {
		r.Update(testTick)
	}
	if r.State() != PreLaunch {
		t.Fatalf("state = %v, want PreLaunch", r.State())
	}
}

// toInFlight 等直升机飞进屏幕 1.5 秒后跳出
func toInFlight(t *testing.T, r *Round) {
	t.Helper()
	toPreLaunch(t, r)
	ticks(r, 60)
	r.OnPointerReleased()
	if r.State() != InFlight {
		t.Fatalf("state = %v, want InFlight", r.State())
	}
}

// placeAboveGround 把跳伞者放在地面正上方 1 像素处
func placeAboveGround(r *Round, vx, vy float64) {
	b := r.Body()
	ground := r.Context().Ground
	b.SetPosition(ground.X+50, ground.Y-b.Height-1)
	b.VX, b.VY = vx, vy
}

func spriteOf(t *testing.T, r *Round, id ecs.EntityID) *components.SpriteComponent {
	t.Helper()
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](r.EntityManager(), id)
	if !ok {
		t.Fatalf("entity %d missing SpriteComponent", id)
	}
	return sprite
}

func TestCountdownIgnoresReleaseAndAdvancesEachStep(t *testing.T) {
	r := newTestRound(t)

	if r.State() != Countdown {
		t.Fatalf("initial state = %v, want Countdown", r.State())
	}
	if spriteOf(t, r, r.helicopter).Visible || spriteOf(t, r, r.jumper).Visible {
		t.Error("gameplay entities should be hidden during countdown")
	}

	r.OnPointerReleased()
	if r.State() != Countdown {
		t.Errorf("release during countdown changed state to %v", r.State())
	}

	countdown := r.countdown
	wantKeys := []string{"countdown-3", "countdown-2", "countdown-1"}
	for step, want := range wantKeys {
		if got := spriteOf(t, r, countdown).Key; got != want {
			t.Errorf("step %d key = %q, want %q", step, got, want)
		}
		ticks(r, 40)
	}

	// 3 秒后倒计时结束
	if r.State() != PreLaunch {
		t.Fatalf("state after 3s = %v, want PreLaunch", r.State())
	}
	if r.EntityManager().IsAlive(countdown) {
		t.Error("countdown entity should be removed after it finishes")
	}
	if !spriteOf(t, r, r.helicopter).Visible || !spriteOf(t, r, r.jumper).Visible {
		t.Error("helicopter and jumper should be visible in PreLaunch")
	}
}

func TestGroundRisesFromBelowScreen(t *testing.T) {
	r := newTestRound(t)
	ground := r.Context().Ground

	pos, _ := ecs.GetComponent[*components.PositionComponent](r.EntityManager(), r.ground)
	if pos.Y != r.Config().Screen.Height {
		t.Errorf("ground starts at y=%v, want %v", pos.Y, r.Config().Screen.Height)
	}

	ticks(r, 20)
	if pos.Y <= ground.Y || pos.Y >= r.Config().Screen.Height {
		t.Errorf("ground at half rise y=%v, want between %v and %v", pos.Y, ground.Y, r.Config().Screen.Height)
	}

	ticks(r, 20)
	if pos.Y != ground.Y || pos.X != ground.X {
		t.Errorf("ground at (%v,%v), want (%v,%v)", pos.X, pos.Y, ground.X, ground.Y)
	}
}

func TestJumperTracksHelicopter(t *testing.T) {
	r := newTestRound(t)
	toPreLaunch(t, r)
	ticks(r, 30)

	em := r.EntityManager()
	hp, _ := ecs.GetComponent[*components.PositionComponent](em, r.helicopter)
	jp, _ := ecs.GetComponent[*components.PositionComponent](em, r.Jumper())
	cfg := r.Config()

	wantX := hp.X + cfg.Helicopter.Width/2 - cfg.Jumper.Width/2
	wantY := hp.Y + cfg.Helicopter.Height - cfg.Jumper.Height*jumperHangRatio
	if math.Abs(jp.X-wantX) > 1e-9 || math.Abs(jp.Y-wantY) > 1e-9 {
		t.Errorf("jumper at (%v,%v), want (%v,%v)", jp.X, jp.Y, wantX, wantY)
	}
	if hp.X <= -cfg.Helicopter.Width {
		t.Errorf("helicopter did not move: x=%v", hp.X)
	}

	// 旋翼帧动画在运行
	key := spriteOf(t, r, r.helicopter).Key
	isFrame := false
	for _, f := range types.HelicopterFrames {
		if key == f {
			isFrame = true
		}
	}
	if !isFrame {
		t.Errorf("helicopter key %q is not a rotor frame", key)
	}
}

func TestReleaseLaunchesThenDeploysParachuteOnce(t *testing.T) {
	r := newTestRound(t)
	toInFlight(t, r)

	b := r.Body()
	cfg := r.Config()
	if b.AY != cfg.Physics.Gravity {
		t.Errorf("AY = %v, want gravity %v", b.AY, cfg.Physics.Gravity)
	}
	if b.AX != 100 {
		t.Errorf("AX = %v, want wind 100", b.AX)
	}
	if b.VX != 25 || b.VY != 0 {
		t.Errorf("velocity = (%v,%v), want (25,0)", b.VX, b.VY)
	}

	ticks(r, 4)
	vx, vy := b.VX, b.VY

	// 第二次点击：开伞
	r.OnPointerReleased()
	if r.State() != InFlight {
		t.Fatalf("state after parachute = %v, want InFlight", r.State())
	}
	ctx := r.Context()
	if !ctx.ParachuteDeployed {
		t.Fatal("parachute not deployed")
	}
	if math.Abs(b.AY-cfg.Physics.Gravity*0.1) > 1e-9 {
		t.Errorf("AY = %v, want %v", b.AY, cfg.Physics.Gravity*0.1)
	}
	if math.Abs(b.VY-vy*0.1) > 1e-9 || math.Abs(b.VX-vx*0.25) > 1e-9 {
		t.Errorf("velocity = (%v,%v), want (%v,%v)", b.VX, b.VY, vx*0.25, vy*0.1)
	}
	if !spriteOf(t, r, r.parachute).Visible {
		t.Error("parachute should be visible")
	}

	// 第三次点击：不再生效
	deployedAt := ctx.ParachuteDeployedAt
	ay, vx2, vy2 := b.AY, b.VX, b.VY
	r.OnPointerReleased()
	if b.AY != ay || b.VX != vx2 || b.VY != vy2 {
		t.Error("second parachute release changed physics")
	}
	if ctx.ParachuteDeployedAt != deployedAt {
		t.Error("second parachute release changed deploy time")
	}
	if r.State() != InFlight {
		t.Errorf("state = %v, want InFlight", r.State())
	}
}

func TestParachuteFollowsJumper(t *testing.T) {
	r := newTestRound(t)
	toInFlight(t, r)
	r.OnPointerReleased()
	ticks(r, 3)

	em := r.EntityManager()
	jp, _ := ecs.GetComponent[*components.PositionComponent](em, r.Jumper())
	pp, _ := ecs.GetComponent[*components.PositionComponent](em, r.parachute)
	cfg := r.Config()

	wantX := jp.X + cfg.Jumper.Width/2 - cfg.Parachute.Width/2
	wantY := jp.Y - cfg.Parachute.Height
	if math.Abs(pp.X-wantX) > 1e-9 || math.Abs(pp.Y-wantY) > 1e-9 {
		t.Errorf("parachute at (%v,%v), want (%v,%v)", pp.X, pp.Y, wantX, wantY)
	}
}

// TestSafeLandingScore 风速 100、地面宽 300（最大 600）、开伞 2 秒后安全着陆 => 402
func TestSafeLandingScore(t *testing.T) {
	r := newTestRound(t)
	toInFlight(t, r)
	r.OnPointerReleased()

	// 开伞后 79 个 tick 固定在半空
	b := r.Body()
	for i := 0; i < 79; i++ {
		b.SetPosition(300, 200)
		b.VX, b.VY = 0, 50
		r.Update(testTick)
		if r.State() != InFlight {
			t.Fatalf("tick %d: state = %v, want InFlight", i, r.State())
		}
	}

	// 第 80 个 tick 着陆
	placeAboveGround(r, 0, 100)
	r.Update(testTick)

	if r.State() != CompleteDefault {
		t.Fatalf("state = %v, want CompleteDefault", r.State())
	}
	if got := r.Context().ParachuteDuration(); math.Abs(got-2.0) > 1e-6 {
		t.Errorf("parachute duration = %v, want 2.0", got)
	}
	if math.Abs(r.Score()-402) > 1e-6 {
		t.Errorf("score = %v, want 402", r.Score())
	}
	if r.Message() != "Score: 402" {
		t.Errorf("message = %q, want %q", r.Message(), "Score: 402")
	}
	if b.VX != 0 || b.VY != 0 || b.AX != 0 || b.AY != 0 {
		t.Error("movement should be cleared on completion")
	}
}

func TestSafeLandingWithoutParachute(t *testing.T) {
	r := newTestRound(t)
	toInFlight(t, r)

	placeAboveGround(r, 0, 100)
	r.Update(testTick)

	if r.State() != CompleteDefault {
		t.Fatalf("state = %v, want CompleteDefault", r.State())
	}
	if r.Score() != 400 {
		t.Errorf("score = %v, want 400 (no parachute time)", r.Score())
	}
}

func TestLandingUsesRisingGroundPosition(t *testing.T) {
	cfg := config.DefaultRoundConfig()
	cfg.Ground.RiseDuration = 100 // 跳出时地面仍在屏幕底部附近
	r := NewWithContext(cfg, rand.New(rand.NewSource(1)), testContext())
	toInFlight(t, r)

	// 最终位置上方：地面还没升到这里，不算落地
	placeAboveGround(r, 0, 100)
	r.Update(testTick)
	if r.State() != InFlight {
		t.Fatalf("state = %v, want InFlight while the ground is still rising", r.State())
	}

	live := r.groundRect()
	if live.Y <= r.Context().Ground.Y {
		t.Fatalf("ground y = %v, want below final y %v", live.Y, r.Context().Ground.Y)
	}

	// 当前位置上方：落地
	b := r.Body()
	b.SetPosition(live.X+50, live.Y-b.Height-1)
	b.VX, b.VY = 0, 100
	r.Update(testTick)
	if r.State() != CompleteDefault {
		t.Errorf("state = %v, want CompleteDefault on the live ground", r.State())
	}
}

func TestSafeLandingFloorsWind(t *testing.T) {
	cfg := config.DefaultRoundConfig()
	ctx := testContext()
	ctx.WindSpeed = 87.9
	r := NewWithContext(cfg, rand.New(rand.NewSource(1)), ctx)
	toInFlight(t, r)

	placeAboveGround(r, 0, 100)
	r.Update(testTick)

	if r.Score() != 87+300 {
		t.Errorf("score = %v, want 387", r.Score())
	}
}

func TestLandingAtExactlySafeVelocityIsSafe(t *testing.T) {
	r := newTestRound(t)
	toInFlight(t, r)

	b := r.Body()
	b.AX, b.AY = 0, 0
	placeAboveGround(r, 300, 400) // |v| = 500
	r.Update(testTick)

	if r.State() != CompleteDefault {
		t.Errorf("state = %v, want CompleteDefault", r.State())
	}
}

func TestHardLandingSplats(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := config.DefaultRoundConfig()
		r := NewWithContext(cfg, rand.New(rand.NewSource(seed)), testContext())
		toInFlight(t, r)

		b := r.Body()
		b.AX, b.AY = 0, 0
		placeAboveGround(r, 0, 600)
		r.Update(testTick)

		if r.State() != CompleteSplat {
			t.Fatalf("seed %d: state = %v, want CompleteSplat", seed, r.State())
		}
		n := len(r.Particles())
		if n < 10 || n >= 15 {
			t.Errorf("seed %d: particle count = %d, want [10,15)", seed, n)
		}
		if r.Message() != MessageSplat {
			t.Errorf("seed %d: message = %q, want %q", seed, r.Message(), MessageSplat)
		}
		if r.Score() != 0 {
			t.Errorf("seed %d: score = %v, want 0", seed, r.Score())
		}
		if spriteOf(t, r, r.Jumper()).Visible {
			t.Errorf("seed %d: jumper should be hidden after splat", seed)
		}
	}
}

func TestSplatParticlesKeepFlyingAfterComplete(t *testing.T) {
	r := newTestRound(t)
	toInFlight(t, r)
	b := r.Body()
	b.AX, b.AY = 0, 0
	placeAboveGround(r, 0, 600)
	r.Update(testTick)

	ticks(r, 100)

	em := r.EntityManager()
	for _, id := range r.Particles() {
		p, ok := ecs.GetComponent[*components.ParticleComponent](em, id)
		if !ok {
			t.Fatalf("particle %d was removed", id)
		}
		if !p.Inert {
			t.Errorf("particle %d still in flight after 2.5s", id)
		}
	}
}

func TestHelicopterLeavesWithoutJump(t *testing.T) {
	r := newTestRound(t)
	toPreLaunch(t, r)

	// 直升机横穿 800+120 像素，速度 160 像素/秒，约 5.75 秒
	for i := 0; i < 400 && r.State() == PreLaunch; i++ {
		r.Update(testTick)
	}

	if r.State() != CompleteDefault {
		t.Fatalf("state = %v, want CompleteDefault", r.State())
	}
	if r.Score() != 0 {
		t.Errorf("score = %v, want 0", r.Score())
	}
	if r.Message() != "Score: 0" {
		t.Errorf("message = %q, want %q", r.Message(), "Score: 0")
	}
	if spriteOf(t, r, r.helicopter).Visible {
		t.Error("helicopter should be hidden after leaving")
	}
}

func TestLeavingScreenScoresZero(t *testing.T) {
	r := newTestRound(t)
	toInFlight(t, r)

	b := r.Body()
	b.SetPosition(-b.Width-10, 200)
	b.VX, b.AX = -100, 0
	r.Update(testTick)

	if r.State() != CompleteDefault {
		t.Fatalf("state = %v, want CompleteDefault", r.State())
	}
	if r.Score() != 0 {
		t.Errorf("score = %v, want 0", r.Score())
	}
}

func TestCompleteReleaseFinishesOnce(t *testing.T) {
	calls := 0
	r := newTestRound(t, WithOnFinished(func(ctx *Context) {
		calls++
	}))
	toInFlight(t, r)
	placeAboveGround(r, 0, 100)
	r.Update(testTick)

	if r.Finished() {
		t.Fatal("round finished before result was acknowledged")
	}

	r.OnPointerReleased()
	r.OnPointerReleased()

	if !r.Finished() {
		t.Error("round should be finished")
	}
	if calls != 1 {
		t.Errorf("onFinished called %d times, want 1", calls)
	}

	// 结束后 Update 不再推进
	clock := r.Context().Clock
	r.Update(testTick)
	if r.Context().Clock != clock {
		t.Error("Update advanced a finished round")
	}
}

func TestNegativeDeltaIsIgnored(t *testing.T) {
	r := newTestRound(t)
	r.Update(-1)
	if r.Context().Clock != 0 {
		t.Errorf("clock = %v, want 0", r.Context().Clock)
	}
}

func TestSameSeedSameRound(t *testing.T) {
	play := func() (*Context, State) {
		cfg := config.DefaultRoundConfig()
		r := New(cfg, rand.New(rand.NewSource(42)))
		toPreLaunch(t, r)
		ticks(r, 20)
		r.OnPointerReleased()
		ticks(r, 10)
		r.OnPointerReleased()
		for i := 0; i < 2000 && !r.State().IsTerminal(); i++ {
			r.Update(testTick)
		}
		return r.Context(), r.State()
	}

	a, sa := play()
	b, sb := play()

	if a.ID != b.ID {
		t.Errorf("round IDs differ: %v vs %v", a.ID, b.ID)
	}
	if a.WindSpeed != b.WindSpeed || a.Ground != b.Ground {
		t.Errorf("contexts differ: %+v vs %+v", a, b)
	}
	if sa != sb || a.Score != b.Score {
		t.Errorf("outcomes differ: %v/%v vs %v/%v", sa, a.Score, sb, b.Score)
	}
	if !sa.IsTerminal() {
		t.Errorf("round did not finish: %v", sa)
	}
}
