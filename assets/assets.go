package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed all:images
var imageFS embed.FS

// Image keys
const (
	BirdFrame1 = "bird_01"
	BirdFrame2 = "bird_02"
	PipeBlock  = "pipe"
)

// BirdFrames lists the flap animation frames in order.
var BirdFrames = []string{BirdFrame1, BirdFrame2}

// ImageLoader decodes embedded sprites once and caches them by key.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

// Load returns the image for key, decoding images/<key>.png on first use.
func (l *ImageLoader) Load(key string) (*ebiten.Image, error) {
	if img, ok := l.cache[key]; ok {
		return img, nil
	}

	src, err := DecodeImage(key)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	l.cache[key] = img
	return img, nil
}

// MustLoad is Load that panics on a missing sprite.
func (l *ImageLoader) MustLoad(key string) *ebiten.Image {
	img, err := l.Load(key)
	if err != nil {
		panic(err)
	}
	return img
}

// DecodeImage decodes an embedded sprite without creating a GPU image.
func DecodeImage(key string) (image.Image, error) {
	data, err := imageFS.ReadFile("images/" + key + ".png")
	if err != nil {
		return nil, fmt.Errorf("assets: read image %s: %w", key, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode image %s: %w", key, err)
	}
	return img, nil
}

var defaultLoader = NewImageLoader()

// GetImage returns a cached sprite from the shared loader.
func GetImage(key string) *ebiten.Image {
	return defaultLoader.MustLoad(key)
}
