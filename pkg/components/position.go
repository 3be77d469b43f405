package components

// PositionComponent 存储实体的位置（左上角，逻辑像素）
// 动画系统与物理系统都只写这个组件，渲染器每帧只读
type PositionComponent struct {
	X float64
	Y float64
}

// SizeComponent 存储实体的尺寸（逻辑像素）
// 滚动回绕（回到 -Width）与包围盒检测都依赖它
type SizeComponent struct {
	Width  float64
	Height float64
}
