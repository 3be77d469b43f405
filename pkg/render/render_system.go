package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/ecs"
)

// VisualProvider 把 SpriteComponent.Key 解析为图像
// 未知的键返回 nil，对应实体被跳过
type VisualProvider interface {
	Visual(key string) *ebiten.Image
}

// FontProvider 按字号提供字体
type FontProvider interface {
	Font(size float64) *text.GoTextFace
}

// 文本颜色与阴影偏移
var (
	TextColor       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	TextShadowColor = color.RGBA{A: 0xc0}
)

const textShadowOffset = 2.0

// RenderSystem 绘制一个实体管理器中的所有可见实体
//
// 每个实体需要 PositionComponent + SizeComponent + SpriteComponent，
// 按 ZIndex 从小到大绘制，ZIndex 相同时按实体 ID。外观按以下顺序选择：
//   - ShapeComponent: 纯色矩形（粒子、地面）
//   - TextComponent: 在区域内居中的文本
//   - 其它: VisualProvider 返回的图像，缩放到实体尺寸
//
// 渲染只读取组件，从不修改实体。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	visuals       VisualProvider
	fonts         FontProvider
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 要绘制的实体管理器
//   - visuals: 视觉资源提供者
//   - fonts: 字体提供者，为 nil 时不绘制文本
func NewRenderSystem(em *ecs.EntityManager, visuals VisualProvider, fonts FontProvider) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		visuals:       visuals,
		fonts:         fonts,
	}
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		s.drawEntity(screen, id)
	}
}

// drawOrder 返回可见实体的绘制顺序
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	candidates := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.SizeComponent,
		*components.SpriteComponent,
	](s.entityManager)

	type entry struct {
		id ecs.EntityID
		z  int
	}
	visible := make([]entry, 0, len(candidates))
	for _, id := range candidates {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !sprite.Visible {
			continue
		}
		visible = append(visible, entry{id: id, z: sprite.ZIndex})
	}

	sort.Slice(visible, func(i, j int) bool {
		if visible[i].z != visible[j].z {
			return visible[i].z < visible[j].z
		}
		return visible[i].id < visible[j].id
	})

	order := make([]ecs.EntityID, len(visible))
	for i, e := range visible {
		order[i] = e.id
	}
	return order
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	size, _ := ecs.GetComponent[*components.SizeComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	alpha := effectiveAlpha(sprite.Alpha)

	if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id); ok {
		vector.DrawFilledRect(screen,
			float32(pos.X), float32(pos.Y), float32(size.Width), float32(size.Height),
			scaleAlpha(shape.Color, alpha), false)
		return
	}

	if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
		s.drawText(screen, txt, pos, size, alpha)
		return
	}

	if s.visuals == nil {
		return
	}
	img := s.visuals.Visual(sprite.Key)
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.Width/float64(b.Dx()), size.Height/float64(b.Dy()))
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawText 在实体区域中央绘制文本，先画阴影
func (s *RenderSystem) drawText(screen *ebiten.Image, txt *components.TextComponent, pos *components.PositionComponent, size *components.SizeComponent, alpha float64) {
	if s.fonts == nil || txt.Text == "" {
		return
	}
	face := s.fonts.Font(txt.Size)
	if face == nil {
		return
	}

	cx := pos.X + size.Width/2
	cy := pos.Y + size.Height/2
	for _, pass := range []struct {
		offset float64
		clr    color.RGBA
	}{
		{textShadowOffset, TextShadowColor},
		{0, TextColor},
	} {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx+pass.offset, cy+pass.offset)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(pass.clr)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, txt.Text, face, op)
	}
}

// effectiveAlpha Alpha 为 0 表示未设置，按不透明处理
func effectiveAlpha(a float64) float64 {
	if a <= 0 || a > 1 {
		return 1
	}
	return a
}

// scaleAlpha 按 alpha 缩放预乘颜色
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
