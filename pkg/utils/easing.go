package utils

import "math"

// 缓动函数
//
// 接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// EaseLinear 线性缓动（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DelayedProgress 先停留 delay 秒，再在 duration 秒内从 0 走到 1
//
// 参数:
//   - elapsed: 已经过的时间（秒）
//   - delay: 开始前的停留时间
//   - duration: 运动时长，<= 0 时停留结束即为 1
//
// 返回:
//   - 限制在 [0, 1] 内的进度
func DelayedProgress(elapsed, delay, duration float64) float64 {
	t := elapsed - delay
	if t <= 0 {
		return 0
	}
	if duration <= 0 || t >= duration {
		return 1
	}
	return t / duration
}
