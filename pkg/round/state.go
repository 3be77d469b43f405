package round

import "fmt"

// State 回合状态，任一时刻只有一个活动状态
type State int

const (
	// Countdown 开局倒计时，忽略点击
	Countdown State = iota
	// PreLaunch 直升机飞过屏幕，等待玩家点击跳出
	PreLaunch
	// InFlight 跳伞者受物理驱动下落；再次点击开伞
	InFlight
	// CompleteDefault 正常结束（安全着陆、出界或错过跳伞）
	CompleteDefault
	// CompleteSplat 着陆速度过大
	CompleteSplat
)

// String 返回状态名称（日志用）
func (s State) String() string {
	switch s {
	case Countdown:
		return "Countdown"
	case PreLaunch:
		return "PreLaunch"
	case InFlight:
		return "InFlight"
	case CompleteDefault:
		return "CompleteDefault"
	case CompleteSplat:
		return "CompleteSplat"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IsTerminal 是否为结束状态
func (s State) IsTerminal() bool {
	return s == CompleteDefault || s == CompleteSplat
}
