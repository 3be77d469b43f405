package physics

import "math"

const (
	// DefaultVerticalAcceleration 默认竖直加速度（重力，像素/秒²）
	DefaultVerticalAcceleration = 300.0
	// DefaultHorizontalAcceleration 默认水平加速度
	DefaultHorizontalAcceleration = 0.0
)

// Body 单个实体的二维运动学状态
//
// 每个 tick 用显式欧拉法积分一次：
//
//	v += a·dt
//	x += v·dt
//
// 不做任何钳制，NaN/溢出由调用方保证加速度数值合理。
// Body 归所属实体独占，不在实体之间共享。
type Body struct {
	X, Y          float64 // 左上角位置
	Width, Height float64 // 包围盒尺寸
	VX, VY        float64 // 速度（像素/秒）
	AX, AY        float64 // 加速度（像素/秒²）

	defaultAX float64
	defaultAY float64
}

// NewBody 创建物理体，加速度初始化为默认值
//
// 参数:
//   - bounds: 初始位置与尺寸
//
// 返回:
//   - *Body: 物理体实例
func NewBody(bounds Rect) *Body {
	b := &Body{
		X:         bounds.X,
		Y:         bounds.Y,
		Width:     bounds.Width,
		Height:    bounds.Height,
		defaultAX: DefaultHorizontalAcceleration,
		defaultAY: DefaultVerticalAcceleration,
	}
	b.ResetVerticalAcceleration()
	b.ResetHorizontalAcceleration()
	return b
}

// SetDefaultAcceleration 覆盖 Reset* 使用的默认加速度（来自配置的重力）
func (b *Body) SetDefaultAcceleration(ax, ay float64) {
	b.defaultAX = ax
	b.defaultAY = ay
}

// DefaultVertical 返回当前的默认竖直加速度
func (b *Body) DefaultVertical() float64 {
	return b.defaultAY
}

// Integrate 推进一个时间步
//
// 参数:
//   - dt: 时间步长（秒）
func (b *Body) Integrate(dt float64) {
	b.VX += b.AX * dt
	b.VY += b.AY * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// SetPosition 直接设置位置（跟随直升机时使用）
func (b *Body) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

// Bounds 返回当前包围盒
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Intersects 包围盒与矩形是否相交（边界相接算相交）
func (b *Body) Intersects(r Rect) bool {
	return b.Bounds().Intersects(r)
}

// IsWithin 包围盒是否仍与区域有重叠
// 部分重叠算在内；完全移出区域后返回 false（用于出屏检测）
func (b *Body) IsWithin(bounds Rect) bool {
	return b.Bounds().Intersects(bounds)
}

// ResetVerticalAcceleration 竖直加速度恢复为默认重力
func (b *Body) ResetVerticalAcceleration() {
	b.AY = b.defaultAY
}

// ResetHorizontalAcceleration 水平加速度恢复为默认值
func (b *Body) ResetHorizontalAcceleration() {
	b.AX = b.defaultAX
}

// ClearMovement 速度与加速度全部清零（回合结束时冻结）
func (b *Body) ClearMovement() {
	b.AX, b.AY = 0, 0
	b.VX, b.VY = 0, 0
}

// Speed 合速度大小 sqrt(vx² + vy²)
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}
