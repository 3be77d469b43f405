package components

// SpriteComponent 存储实体的视觉表现
//
// Key 是不透明的视觉资源标识（如 "helicopter-1"），由外部资源提供者
// 解析成实际图像；核心逻辑从不解释图像内容。
// 帧动画只改写 Key，不触碰图像本身。
type SpriteComponent struct {
	Key     string  // 当前视觉资源键
	Visible bool    // 是否可见（隐藏代替销毁）
	ZIndex  int     // 绘制顺序，数值小的先画
	Alpha   float64 // 透明度 0-1，0 视为 1
}
