package physics

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects AABB 重叠检测
//
// 边界相接也算相交：地面碰撞用 1 像素高的顶部条带，
// 刚好踩到边缘时也必须判定为落地。
//
// 参数:
//   - other: 另一个矩形
//
// 返回:
//   - bool: 两个矩形重叠或相接返回 true
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.Right() {
		return false
	}
	if r.Right() < other.X {
		return false
	}
	if r.Y > other.Bottom() {
		return false
	}
	if r.Bottom() < other.Y {
		return false
	}
	return true
}

// TopStrip 返回矩形顶部指定高度的条带
// 用于"只允许从上方落地"的碰撞：侧面擦碰不会命中条带
func (r Rect) TopStrip(height float64) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: height}
}
