package components

// ClickableComponent 标记实体可以被鼠标点击
// 点击区域取自 PositionComponent + SizeComponent
type ClickableComponent struct {
	Action    int  // 点击后触发的动作编号，由所属场景解释
	IsEnabled bool // 是否可以被点击
}
