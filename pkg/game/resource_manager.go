package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/skydiver/pkg/config"
	"github.com/decker502/skydiver/pkg/types"
)

// countdownArtSize 倒计时数字图像边长
const countdownArtSize = 120

// ResourceManager is responsible for centralized management of visual resources.
// It resolves the opaque visual keys carried by SpriteComponent.Key into
// ebiten images and provides cached font faces.
//
// Resolution order for a key:
//  1. an image already in the cache
//  2. <skinDir>/<key>.png when a skin directory is configured
//  3. procedurally drawn default art
//
// Thread Safety Note:
// The caches are plain maps. All access happens on the game loop goroutine.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // visual key or file path -> Image
	fontSource    *text.GoTextFaceSource       // embedded Go Regular font
	fontFaceCache map[float64]*text.GoTextFace // size -> face
	missing       map[string]bool              // keys already reported as unknown
	skinDir       string
}

// NewResourceManager creates a ResourceManager with the built-in font loaded.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager.
//   - An error if the embedded font cannot be parsed.
func NewResourceManager() (*ResourceManager, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontSource:    source,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		missing:       make(map[string]bool),
	}, nil
}

// SetSkinDir sets a directory whose <key>.png files replace the default art.
// Must be called before the first Visual lookup to take effect for cached keys.
func (rm *ResourceManager) SetSkinDir(dir string) {
	rm.skinDir = dir
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The file path to the image resource.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// Visual returns the image for a visual key, or nil for an unknown key.
// Implements render.VisualProvider.
func (rm *ResourceManager) Visual(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	if img, ok := rm.imageCache[key]; ok {
		return img
	}

	img := rm.loadSkin(key)
	if img == nil {
		img = rm.drawDefault(key)
	}
	if img == nil {
		if !rm.missing[key] {
			log.Printf("[ResourceManager] 未知的视觉资源: %s", key)
			rm.missing[key] = true
		}
		return nil
	}

	rm.imageCache[key] = img
	return img
}

// Font returns a cached Go Regular face of the given size.
func (rm *ResourceManager) Font(size float64) *text.GoTextFace {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}

func (rm *ResourceManager) loadSkin(key string) *ebiten.Image {
	if rm.skinDir == "" {
		return nil
	}
	path := filepath.Join(rm.skinDir, key+".png")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	img, err := rm.LoadImage(path)
	if err != nil {
		log.Printf("[ResourceManager] 皮肤图片加载失败，使用默认外观: %v", err)
		return nil
	}
	return img
}

// drawDefault 绘制内置外观
func (rm *ResourceManager) drawDefault(key string) *ebiten.Image {
	switch key {
	case types.VisualHelicopter0:
		return ebiten.NewImageFromImage(helicopterArt(0))
	case types.VisualHelicopter1:
		return ebiten.NewImageFromImage(helicopterArt(1))
	case types.VisualHelicopter2:
		return ebiten.NewImageFromImage(helicopterArt(2))
	case types.VisualJumper:
		return ebiten.NewImageFromImage(jumperArt())
	case types.VisualParachute:
		return ebiten.NewImageFromImage(parachuteArt())
	case types.VisualCloud0:
		return ebiten.NewImageFromImage(cloudArt(0))
	case types.VisualCloud1:
		return ebiten.NewImageFromImage(cloudArt(1))
	case types.VisualSky:
		return ebiten.NewImageFromImage(skyArt(int(config.ScreenWidth), int(config.ScreenHeight)))
	}

	if n, ok := types.ParseCountdownVisual(key); ok {
		return rm.drawCountdown(n)
	}
	return nil
}

// drawCountdown 把倒计时数字绘制到透明图像中央
func (rm *ResourceManager) drawCountdown(n int) *ebiten.Image {
	img := ebiten.NewImage(countdownArtSize, countdownArtSize)

	op := &text.DrawOptions{}
	op.GeoM.Translate(countdownArtSize/2, countdownArtSize/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(img, fmt.Sprintf("%d", n), rm.Font(config.CountdownFontSize), op)

	return img
}
