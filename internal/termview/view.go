// Package termview 在终端中运行跳伞回合
//
// 逻辑像素按比例映射到字符格，每个可见实体画成覆盖其区域的一组字符。
// 回合本身与桌面版完全相同，只有绘制与输入不同：
//   - 鼠标左键抬起或空格键：指针释放
//   - q / Esc / Ctrl+C：退出
//   - 回合结束并确认后自动开始下一局
package termview

import (
	"fmt"
	"log"
	"math/rand"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/ecs"
	"github.com/decker502/skydiver/pkg/round"
	"github.com/decker502/skydiver/pkg/types"
)

// 各类实体的字符与颜色
var (
	styleDefault    = tcell.StyleDefault
	styleHelicopter = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleJumper     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleParachute  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const (
	glyphHelicopter = '='
	glyphJumper     = '@'
	glyphParachute  = '^'
	glyphShape      = '█'
)

// View 一个终端屏幕加上当前回合
type View struct {
	screen tcell.Screen
	cfg    *config.RoundConfig
	rng    *rand.Rand

	round  *round.Round
	rounds int

	mouseDown bool // 上一个鼠标事件时左键是否按下
}

// New 创建终端视图并开始第一局
//
// 参数:
//   - screen: 已经 Init 的终端屏幕
//   - cfg: 单局配置
//   - rng: 随机源
func New(screen tcell.Screen, cfg *config.RoundConfig, rng *rand.Rand) *View {
	v := &View{screen: screen, cfg: cfg, rng: rng}
	v.newRound()
	return v
}

func (v *View) newRound() {
	v.rounds++
	v.round = round.New(v.cfg, v.rng, round.WithOnFinished(func(ctx *round.Context) {
		log.Printf("[TermView] 第 %d 局结束: %s", v.rounds, round.FormatScore(ctx.Score))
	}))
}

// Round 当前回合
func (v *View) Round() *round.Round {
	return v.round
}

// Rounds 已开始的回合数
func (v *View) Rounds() int {
	return v.rounds
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			v.round.OnPointerReleased()
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if v.mouseDown && !down {
			v.round.OnPointerReleased()
		}
		v.mouseDown = down

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Step 推进当前回合，回合结束后开始新的一局
func (v *View) Step(deltaTime float64) {
	v.round.Update(deltaTime)
	if v.round.Finished() {
		v.newRound()
	}
}

// Draw 绘制所有可见实体和底部状态行
func (v *View) Draw() {
	v.screen.Clear()

	em := v.round.EntityManager()
	for _, id := range drawOrder(em) {
		v.drawEntity(em, id)
	}
	v.drawStatus()

	v.screen.Show()
}

// cellOf 把逻辑坐标映射到字符格
func (v *View) cellOf(x, y float64) (int, int) {
	w, h := v.screen.Size()
	col := int(x / v.cfg.Screen.Width * float64(w))
	row := int(y / v.cfg.Screen.Height * float64(h-1)) // 最后一行留给状态行
	return col, row
}

func (v *View) drawEntity(em *ecs.EntityManager, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	size, _ := ecs.GetComponent[*components.SizeComponent](em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

	if txt, ok := ecs.GetComponent[*components.TextComponent](em, id); ok {
		v.drawCenteredText(pos.X+size.Width/2, pos.Y+size.Height/2, txt.Text)
		return
	}
	if n, ok := types.ParseCountdownVisual(sprite.Key); ok {
		v.drawCenteredText(pos.X+size.Width/2, pos.Y+size.Height/2, fmt.Sprintf("%d", n))
		return
	}

	glyph, style := glyphFor(em, id, sprite.Key)
	if glyph == 0 {
		return
	}

	c0, r0 := v.cellOf(pos.X, pos.Y)
	c1, r1 := v.cellOf(pos.X+size.Width, pos.Y+size.Height)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	v.fill(c0, r0, c1, r1, glyph, style)
}

// fill 填充 [c0, c1) x [r0, r1)，超出屏幕的部分被裁剪
func (v *View) fill(c0, r0, c1, r1 int, glyph rune, style tcell.Style) {
	w, h := v.screen.Size()
	for row := max(r0, 0); row < min(r1, h-1); row++ {
		for col := max(c0, 0); col < min(c1, w); col++ {
			v.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (v *View) drawCenteredText(cx, cy float64, s string) {
	col, row := v.cellOf(cx, cy)
	v.putString(col-len([]rune(s))/2, row, s, styleText)
}

func (v *View) putString(col, row int, s string, style tcell.Style) {
	w, h := v.screen.Size()
	if row < 0 || row >= h {
		return
	}
	for i, r := range []rune(s) {
		if c := col + i; c >= 0 && c < w {
			v.screen.SetContent(c, row, r, nil, style)
		}
	}
}

func (v *View) drawStatus() {
	_, h := v.screen.Size()
	ctx := v.round.Context()
	status := fmt.Sprintf(" SkyDiver #%d  %s  wind %.0f  t=%.1fs  [click/space] act  [q] quit",
		v.rounds, v.round.State(), ctx.WindSpeed, ctx.Clock)
	v.putString(0, h-1, status, styleStatus)
}

// glyphFor 实体的字符与样式；纯色实体使用自身颜色
func glyphFor(em *ecs.EntityManager, id ecs.EntityID, key string) (rune, tcell.Style) {
	if shape, ok := ecs.GetComponent[*components.ShapeComponent](em, id); ok {
		c := shape.Color
		return glyphShape, styleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}

	switch key {
	case types.VisualHelicopter0, types.VisualHelicopter1, types.VisualHelicopter2:
		return glyphHelicopter, styleHelicopter
	case types.VisualJumper:
		return glyphJumper, styleJumper
	case types.VisualParachute:
		return glyphParachute, styleParachute
	}
	return 0, styleDefault
}

// drawOrder 可见实体按 ZIndex、实体 ID 排序
func drawOrder(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.SizeComponent,
		*components.SpriteComponent,
	](em)

	visible := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		if sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id); sprite.Visible {
			visible = append(visible, id)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		zi, _ := ecs.GetComponent[*components.SpriteComponent](em, visible[i])
		zj, _ := ecs.GetComponent[*components.SpriteComponent](em, visible[j])
		return zi.ZIndex < zj.ZIndex
	})
	return visible
}
