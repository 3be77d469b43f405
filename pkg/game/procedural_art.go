package game

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// 程序生成的默认外观
// 没有皮肤图片时，资源管理器用这些函数绘制所有视觉资源

// 原生尺寸，渲染时会缩放到实体的 SizeComponent
const (
	helicopterArtWidth  = 120
	helicopterArtHeight = 50
	jumperArtWidth      = 20
	jumperArtHeight     = 32
	parachuteArtWidth   = 48
	parachuteArtHeight  = 40
	cloudArtWidth       = 160
	cloudArtHeight      = 64
)

var (
	colorHull    = color.RGBA{R: 0x3b, G: 0x4a, B: 0x5c, A: 0xff}
	colorCanopy  = color.RGBA{R: 0x9f, G: 0xd3, B: 0xf0, A: 0xff}
	colorRotor   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorSkin    = color.RGBA{R: 0xf1, G: 0xc2, B: 0x7d, A: 0xff}
	colorSuit    = color.RGBA{R: 0xe0, G: 0x5a, B: 0x1b, A: 0xff}
	colorChute   = color.RGBA{R: 0xf4, G: 0xd0, B: 0x3f, A: 0xff}
	colorChute2  = color.RGBA{R: 0xd9, G: 0x3b, B: 0x3b, A: 0xff}
	colorLine    = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	colorCloud   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorSkyTop  = color.RGBA{R: 0x3a, G: 0x7b, B: 0xd5, A: 0xff}
	colorSkyBase = color.RGBA{R: 0xbf, G: 0xe3, B: 0xff, A: 0xff}
)

// rotorSpan 三个旋翼帧的桨叶半长，配合 0,1,2,1 帧序列形成转动效果
var rotorSpan = [3]int{56, 34, 10}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r && image.Pt(x, y).In(img.Rect) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			fx := float64(x-cx) / float64(rx)
			fy := float64(y-cy) / float64(ry)
			if fx*fx+fy*fy <= 1 && image.Pt(x, y).In(img.Rect) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// drawLine Bresenham 直线
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if image.Pt(x0, y0).In(img.Rect) {
			img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// helicopterArt 直升机（机头朝右），frame 决定旋翼桨叶长度
func helicopterArt(frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, helicopterArtWidth, helicopterArtHeight))

	// 尾梁与尾桨
	fillRect(img, 8, 22, 64, 28, colorHull)
	fillRect(img, 4, 14, 12, 30, colorHull)

	// 机身与座舱
	fillEllipse(img, 82, 30, 30, 14, colorHull)
	fillEllipse(img, 96, 26, 12, 8, colorCanopy)

	// 起落架
	fillRect(img, 62, 46, 106, 48, colorRotor)
	fillRect(img, 70, 42, 72, 46, colorRotor)
	fillRect(img, 94, 42, 96, 46, colorRotor)

	// 旋翼
	fillRect(img, 80, 8, 84, 16, colorRotor)
	span := rotorSpan[frame%len(rotorSpan)]
	fillRect(img, 82-span, 5, 82+span, 8, colorRotor)

	return img
}

// jumperArt 跳伞者
func jumperArt() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, jumperArtWidth, jumperArtHeight))
	fillCircle(img, 10, 5, 5, colorSkin)
	fillRect(img, 5, 10, 15, 22, colorSuit)
	fillRect(img, 1, 11, 5, 14, colorSuit)
	fillRect(img, 15, 11, 19, 14, colorSuit)
	fillRect(img, 5, 22, 9, 32, colorSuit)
	fillRect(img, 11, 22, 15, 32, colorSuit)
	return img
}

// parachuteArt 降落伞：半圆伞面加四根伞绳，伞绳汇聚到底边中点
func parachuteArt() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, parachuteArtWidth, parachuteArtHeight))
	cx, r := parachuteArtWidth/2, parachuteArtWidth/2-1

	for y := 0; y <= r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, r-y
			if dx*dx+dy*dy > r*r {
				continue
			}
			c := colorChute
			if ((x-cx+r)/8)%2 == 1 {
				c = colorChute2
			}
			img.SetRGBA(x, y, c)
		}
	}

	bottom := parachuteArtHeight - 1
	for _, x := range []int{cx - r, cx - r/2, cx + r/2, cx + r} {
		drawLine(img, x, r, cx, bottom, colorLine)
	}
	return img
}

// cloudArt 云朵，variant 选择两种轮廓之一
func cloudArt(variant int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cloudArtWidth, cloudArtHeight))
	if variant%2 == 0 {
		fillCircle(img, 40, 40, 22, colorCloud)
		fillCircle(img, 76, 28, 26, colorCloud)
		fillCircle(img, 116, 40, 22, colorCloud)
		fillRect(img, 40, 40, 116, 62, colorCloud)
	} else {
		fillCircle(img, 30, 44, 18, colorCloud)
		fillCircle(img, 62, 34, 24, colorCloud)
		fillCircle(img, 98, 30, 28, colorCloud)
		fillCircle(img, 132, 44, 18, colorCloud)
		fillRect(img, 30, 44, 132, 62, colorCloud)
	}
	return img
}

// skyArt 自上而下的天空渐变
func skyArt(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(height-1, 1))
		c := color.RGBA{
			R: lerpByte(colorSkyTop.R, colorSkyBase.R, t),
			G: lerpByte(colorSkyTop.G, colorSkyBase.G, t),
			B: lerpByte(colorSkyTop.B, colorSkyBase.B, t),
			A: 0xff,
		}
		fillRect(img, 0, y, width, y+1, c)
	}
	return img
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
