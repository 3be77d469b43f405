package components

import "image/color"

// ShapeComponent 纯色矩形外观
// 用于没有贴图的实体（粒子、地面填充），尺寸取自 SizeComponent
type ShapeComponent struct {
	Color color.RGBA
}
