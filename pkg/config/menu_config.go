package config

// MenuAction 主菜单选项对应的动作
type MenuAction int

const (
	// MenuActionPlay 开始一局
	MenuActionPlay MenuAction = iota
	// MenuActionInstructions 打开玩法说明
	MenuActionInstructions
	// MenuActionQuit 退出游戏
	MenuActionQuit
)

// MenuOption 单个菜单项
type MenuOption struct {
	Action MenuAction
	Label  string
}

// MenuOptions 主菜单选项，按显示顺序排列
var MenuOptions = []MenuOption{
	{Action: MenuActionPlay, Label: "Play"},
	{Action: MenuActionInstructions, Label: "Instructions"},
	{Action: MenuActionQuit, Label: "Quit"},
}

// String 返回动作名称（日志用）
func (a MenuAction) String() string {
	switch a {
	case MenuActionPlay:
		return "play"
	case MenuActionInstructions:
		return "instructions"
	case MenuActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// InstructionsText 玩法说明页正文
var InstructionsText = []string{
	"Click to jump out of the helicopter.",
	"Click again to open your parachute.",
	"Land on the platform below, gently.",
	"",
	"Score = wind speed + platform bonus + seconds under canopy.",
	"Smaller platforms are worth more.",
	"Land faster than the safe speed and it's over.",
	"",
	"Click anywhere to return to the menu.",
}
