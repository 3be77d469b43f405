package config

// 布局配置常量
// 本文件定义了窗口尺寸以及菜单、说明页等界面元素的位置

// Window 窗口配置
const (
	// ScreenWidth 是逻辑屏幕宽度（像素），滚动回绕与出界判定都以它为准
	ScreenWidth = 800.0

	// ScreenHeight 是逻辑屏幕高度（像素）
	ScreenHeight = 600.0

	// WindowTitle 窗口标题
	WindowTitle = "SkyDiver"

	// TicksPerSecond 固定更新频率，40 TPS 即每 25ms 推进一次
	TicksPerSecond = 40
)

// Menu 主菜单布局
const (
	// MenuTitleY 标题最终停留的 Y 坐标
	MenuTitleY = 120.0

	// MenuTitleStartY 标题飞入前的起始 Y 坐标（屏幕上方之外）
	MenuTitleStartY = -80.0

	// MenuTitleDelay 进入菜单后标题开始飞入前的停顿（秒）
	MenuTitleDelay = 1.0

	// MenuTitleDuration 标题飞入时长（秒）
	MenuTitleDuration = 0.75

	// MenuTitleFontSize 标题字号
	MenuTitleFontSize = 64.0

	// MenuOptionStartY 第一个菜单项的 Y 坐标
	MenuOptionStartY = 300.0

	// MenuOptionSpacing 菜单项间距
	MenuOptionSpacing = 60.0

	// MenuOptionWidth / MenuOptionHeight 菜单项点击区域
	MenuOptionWidth  = 240.0
	MenuOptionHeight = 44.0

	// MenuOptionFontSize 菜单项字号
	MenuOptionFontSize = 32.0
)

// In-round text
const (
	// CountdownFontSize 倒计时数字字号
	CountdownFontSize = 96.0

	// MessageFontSize 结果提示字号
	MessageFontSize = 40.0

	// InstructionsFontSize 说明页正文字号
	InstructionsFontSize = 22.0
)

// MenuOptionBounds 返回第 index 个菜单项的点击区域（水平居中）
// 返回值：x, y, width, height
func MenuOptionBounds(index int) (float64, float64, float64, float64) {
	x := (ScreenWidth - MenuOptionWidth) / 2
	y := MenuOptionStartY + float64(index)*MenuOptionSpacing
	return x, y, MenuOptionWidth, MenuOptionHeight
}
