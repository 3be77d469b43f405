package components

// TextComponent 文本显示组件（倒计时数字、结果提示、菜单项）
type TextComponent struct {
	Text string
	Size float64 // 字号（像素）
}
