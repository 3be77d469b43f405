package physics

import (
	"math"
	"testing"
)

func TestNewBodyDefaults(t *testing.T) {
	b := NewBody(Rect{X: 1, Y: 2, Width: 3, Height: 4})

	if b.AY != DefaultVerticalAcceleration {
		t.Errorf("AY = %v, want %v", b.AY, DefaultVerticalAcceleration)
	}
	if b.AX != DefaultHorizontalAcceleration {
		t.Errorf("AX = %v, want %v", b.AX, DefaultHorizontalAcceleration)
	}
	if b.VX != 0 || b.VY != 0 {
		t.Errorf("velocity = (%v, %v), want zero", b.VX, b.VY)
	}
	if got := b.Bounds(); got != (Rect{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Errorf("Bounds = %+v", got)
	}
}

func TestIntegrateSingleStep(t *testing.T) {
	b := NewBody(Rect{Width: 10, Height: 10})
	b.VX = 10
	b.AX = 4

	// v += a·dt 之后再 x += v·dt
	b.Integrate(0.5)

	if b.VX != 12 {
		t.Errorf("VX = %v, want 12", b.VX)
	}
	if b.X != 6 {
		t.Errorf("X = %v, want 6", b.X)
	}
	if b.VY != 150 || b.Y != 75 {
		t.Errorf("vertical = (v %v, y %v), want (150, 75)", b.VY, b.Y)
	}
}

func TestIntegrateConstantAcceleration(t *testing.T) {
	tests := []struct {
		name   string
		v0, a  float64
		total  float64
		dt     float64
	}{
		{"重力自由落体", 0, 300, 2.0, 0.001},
		{"初速度加风", 25, 100, 1.5, 0.0005},
		{"减速", 200, -50, 3.0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(Rect{Width: 1, Height: 1})
			b.ResetVerticalAcceleration()
			b.AX = tt.a
			b.AY = tt.a
			b.VX = tt.v0
			b.VY = tt.v0

			steps := int(math.Round(tt.total / tt.dt))
			for i := 0; i < steps; i++ {
				b.Integrate(tt.dt)
			}

			wantV := tt.v0 + tt.a*tt.total
			wantX := tt.v0*tt.total + 0.5*tt.a*tt.total*tt.total
			// 显式欧拉的位置误差上界为 0.5·|a|·t·dt
			posTol := 0.5*math.Abs(tt.a)*tt.total*tt.dt + 1e-6

			if math.Abs(b.VX-wantV) > 1e-6 {
				t.Errorf("VX = %v, want %v", b.VX, wantV)
			}
			if math.Abs(b.X-wantX) > posTol {
				t.Errorf("X = %v, want %v (tol %v)", b.X, wantX, posTol)
			}
			if math.Abs(b.Y-wantX) > posTol {
				t.Errorf("Y = %v, want %v (tol %v)", b.Y, wantX, posTol)
			}
		})
	}
}

func TestResetAndClear(t *testing.T) {
	b := NewBody(Rect{Width: 1, Height: 1})
	b.AX, b.AY, b.VX, b.VY = 7, 8, 9, 10

	b.ResetVerticalAcceleration()
	b.ResetHorizontalAcceleration()
	if b.AY != 300 || b.AX != 0 {
		t.Errorf("after reset a = (%v, %v), want (0, 300)", b.AX, b.AY)
	}

	b.SetDefaultAcceleration(5, 120)
	b.ResetVerticalAcceleration()
	b.ResetHorizontalAcceleration()
	if b.AY != 120 || b.AX != 5 || b.DefaultVertical() != 120 {
		t.Errorf("custom defaults not applied: a = (%v, %v)", b.AX, b.AY)
	}

	b.ClearMovement()
	if b.AX != 0 || b.AY != 0 || b.VX != 0 || b.VY != 0 {
		t.Errorf("ClearMovement left a=(%v,%v) v=(%v,%v)", b.AX, b.AY, b.VX, b.VY)
	}

	// 清零后积分不再移动
	b.SetPosition(3, 4)
	b.Integrate(1)
	if b.X != 3 || b.Y != 4 {
		t.Errorf("frozen body moved to (%v, %v)", b.X, b.Y)
	}
}

func TestSpeed(t *testing.T) {
	b := NewBody(Rect{})
	b.VX, b.VY = 360, 480
	if got := b.Speed(); got != 600 {
		t.Errorf("Speed = %v, want 600", got)
	}
}

func TestIntersectsInclusiveEdges(t *testing.T) {
	ground := Rect{X: 100, Y: 500, Width: 300, Height: 1}

	tests := []struct {
		name string
		body Rect
		want bool
	}{
		{"底边刚好接触顶部", Rect{X: 150, Y: 480, Width: 20, Height: 20}, true},
		{"差一点", Rect{X: 150, Y: 479.9, Width: 20, Height: 20}, false},
		{"右边接触左边界", Rect{X: 80, Y: 495, Width: 20, Height: 20}, true},
		{"完全在左侧", Rect{X: 50, Y: 495, Width: 20, Height: 20}, false},
		{"左边接触右边界", Rect{X: 400, Y: 495, Width: 20, Height: 20}, true},
		{"在下方", Rect{X: 150, Y: 502, Width: 20, Height: 20}, false},
		{"穿过", Rect{X: 150, Y: 490, Width: 20, Height: 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(tt.body)
			if got := b.Intersects(ground); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWithin(t *testing.T) {
	screen := Rect{Width: 800, Height: 600}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"完全在内", 100, 100, true},
		{"部分在左侧外", -10, 100, true},
		{"刚好贴左边", -20, 100, true},
		{"完全移出左侧", -20.5, 100, false},
		{"完全移出右侧", 800.5, 100, false},
		{"完全移出下方", 100, 601, false},
		{"完全移出上方", 100, -21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(Rect{X: tt.x, Y: tt.y, Width: 20, Height: 20})
			if got := b.IsWithin(screen); got != tt.want {
				t.Errorf("IsWithin = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopStrip(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if got := r.TopStrip(1); got != (Rect{X: 10, Y: 20, Width: 30, Height: 1}) {
		t.Errorf("TopStrip = %+v", got)
	}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right/Bottom = %v/%v, want 40/60", r.Right(), r.Bottom())
	}
}
