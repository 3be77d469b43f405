// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strconv"

// 视觉资源键
// 核心逻辑只在 SpriteComponent.Key 中传递这些字符串，
// 由资源管理器（或终端渲染器）解释成实际外观。
const (
	VisualHelicopter0 = "helicopter-0"
	VisualHelicopter1 = "helicopter-1"
	VisualHelicopter2 = "helicopter-2"
	VisualJumper      = "jumper"
	VisualParachute   = "parachute"
	VisualGround      = "ground"
	VisualCloud0      = "cloud-0"
	VisualCloud1      = "cloud-1"
	VisualSky         = "sky"
)

// HelicopterFrames 直升机旋翼帧序列（0,1,2,1 往复）
var HelicopterFrames = []string{VisualHelicopter0, VisualHelicopter1, VisualHelicopter2, VisualHelicopter1}

// CloudVisuals 可选的云朵外观
var CloudVisuals = []string{VisualCloud0, VisualCloud1}

// countdownPrefix 倒计时数字的资源键前缀
const countdownPrefix = "countdown-"

// CountdownVisual 返回倒计时数字 n 的资源键，例如 "countdown-3"
func CountdownVisual(n int) string {
	return countdownPrefix + strconv.Itoa(n)
}

// CountdownFrames 返回从 steps 倒数到 1 的资源键序列
func CountdownFrames(steps int) []string {
	frames := make([]string, 0, steps)
	for n := steps; n >= 1; n-- {
		frames = append(frames, CountdownVisual(n))
	}
	return frames
}

// ParseCountdownVisual 解析倒计时资源键，返回数字
// 返回值：数字，以及 key 是否为倒计时资源键
func ParseCountdownVisual(key string) (int, bool) {
	if len(key) <= len(countdownPrefix) || key[:len(countdownPrefix)] != countdownPrefix {
		return 0, false
	}
	n, err := strconv.Atoi(key[len(countdownPrefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}
