package render

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/skydiver/pkg/components"
	"github.com/decker502/skydiver/pkg/ecs"
)

// fakeVisuals 只认识 "box"，记录每次查询的键
type fakeVisuals struct {
	img     *ebiten.Image
	queried []string
}

func (f *fakeVisuals) Visual(key string) *ebiten.Image {
	f.queried = append(f.queried, key)
	if key == "box" {
		return f.img
	}
	return nil
}

type nilFonts struct{}

func (nilFonts) Font(size float64) *text.GoTextFace { return nil }

func addSprite(em *ecs.EntityManager, key string, z int, visible bool) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 10, Y: 10})
	ecs.AddComponent(em, id, &components.SizeComponent{Width: 20, Height: 20})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: key, ZIndex: z, Visible: visible})
	return id
}

func TestDrawOrderByZIndexThenID(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, &fakeVisuals{}, nilFonts{})

	top := addSprite(em, "box", 30, true)
	bottom := addSprite(em, "box", 0, true)
	midA := addSprite(em, "box", 10, true)
	midB := addSprite(em, "box", 10, true)

	got := rs.drawOrder()
	want := []ecs.EntityID{bottom, midA, midB, top}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("drawOrder() = %v, want %v", got, want)
	}
}

func TestDrawOrderSkipsHiddenAndIncomplete(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, &fakeVisuals{}, nilFonts{})

	shown := addSprite(em, "box", 0, true)
	addSprite(em, "box", 0, false)

	// 没有尺寸的实体不参与绘制
	noSize := em.CreateEntity()
	ecs.AddComponent(em, noSize, &components.PositionComponent{})
	ecs.AddComponent(em, noSize, &components.SpriteComponent{Key: "box", Visible: true})

	got := rs.drawOrder()
	if len(got) != 1 || got[0] != shown {
		t.Errorf("drawOrder() = %v, want [%d]", got, shown)
	}
}

func TestDrawResolvesOnlyImageEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	visuals := &fakeVisuals{img: ebiten.NewImage(4, 4)}
	rs := NewRenderSystem(em, visuals, nilFonts{})

	addSprite(em, "box", 1, true)
	addSprite(em, "missing", 2, true)

	particle := addSprite(em, "", 3, true)
	ecs.AddComponent(em, particle, &components.ShapeComponent{Color: color.RGBA{R: 255, A: 255}})

	label := addSprite(em, "", 4, true)
	ecs.AddComponent(em, label, &components.TextComponent{Text: "Score: 1", Size: 20})

	screen := ebiten.NewImage(100, 100)
	rs.Draw(screen)

	want := []string{"box", "missing"}
	if !reflect.DeepEqual(visuals.queried, want) {
		t.Errorf("queried keys = %v, want %v", visuals.queried, want)
	}
}

func TestDrawDoesNotMutateEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, &fakeVisuals{img: ebiten.NewImage(4, 4)}, nil)

	id := addSprite(em, "box", 0, true)
	rs.Draw(ebiten.NewImage(50, 50))

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if pos.X != 10 || pos.Y != 10 || sprite.Key != "box" || !sprite.Visible {
		t.Errorf("entity changed by Draw: pos=%+v sprite=%+v", pos, sprite)
	}
}

func TestEffectiveAlpha(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := effectiveAlpha(tt.in); got != tt.want {
			t.Errorf("effectiveAlpha(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 200}
	if got := scaleAlpha(c, 1); got != c {
		t.Errorf("scaleAlpha(c, 1) = %v, want %v", got, c)
	}
	want := color.RGBA{R: 100, G: 50, B: 0, A: 100}
	if got := scaleAlpha(c, 0.5); got != want {
		t.Errorf("scaleAlpha(c, 0.5) = %v, want %v", got, want)
	}
}
