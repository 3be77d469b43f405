// Package utils 提供输入、缓动与文本排版相关的通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPointerJustReleased 检查本帧是否有指针释放（鼠标左键抬起或触摸结束）
// 返回是否释放以及释放位置
//
// 触摸结束的那一帧已经取不到当前位置，使用上一帧记录的位置。
func IsPointerJustReleased() (bool, int, int) {
	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		x, y := inpututil.TouchPositionInPreviousTick(ids[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		return ebiten.TouchPosition(ids[0])
	}
	return ebiten.CursorPosition()
}

// PointInRect 判断点 (x, y) 是否落在矩形内（含左上边界，不含右下边界）
func PointInRect(x, y int, rx, ry, rw, rh float64) bool {
	fx, fy := float64(x), float64(y)
	return fx >= rx && fx < rx+rw && fy >= ry && fy < ry+rh
}
