package sprite

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// BirdFrames is the number of animation frames of the bird.
const BirdFrames = 3

// Sprite pairs an image with its precomputed opacity mask.
type Sprite struct {
	Image image.Image
	Mask  *Mask
}

// Width returns the sprite width in pixels.
func (s Sprite) Width() int {
	return s.Image.Bounds().Dx()
}

// Height returns the sprite height in pixels.
func (s Sprite) Height() int {
	return s.Image.Bounds().Dy()
}

// Atlas holds every sprite the simulation needs for geometry and collisions.
// Pipe sprites never change frame, so their masks are computed once here.
type Atlas struct {
	Bird       [BirdFrames]Sprite
	PipeTop    Sprite // Inverted segment hanging from the top
	PipeBottom Sprite // Upright segment standing on the ground
	Ground     Sprite
}

// NewAtlas builds the built-in sprite set, scaled by an integer factor.
func NewAtlas(scale int) (*Atlas, error) {
	var birds [BirdFrames]image.Image
	for i := range birds {
		birds[i] = birdFrame(i)
	}
	return NewAtlasFromImages(birds, pipeSegment(), groundTile(), scale)
}

// NewAtlasFromImages builds an atlas from externally supplied base images.
// The pipe image is the upright (bottom) segment; the top segment is its
// vertical mirror.
func NewAtlasFromImages(birds [BirdFrames]image.Image, pipe, ground image.Image, scale int) (*Atlas, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("sprite: scale must be positive, got %d", scale)
	}

	a := &Atlas{}
	for i, img := range birds {
		if img == nil {
			return nil, fmt.Errorf("sprite: bird frame %d is missing", i)
		}
		a.Bird[i] = newSprite(upscale(img, scale))
	}
	h := a.Bird[0].Height()
	for i := 1; i < BirdFrames; i++ {
		if a.Bird[i].Height() != h || a.Bird[i].Width() != a.Bird[0].Width() {
			return nil, fmt.Errorf("sprite: bird frame %d size differs from frame 0", i)
		}
	}

	if pipe == nil || ground == nil {
		return nil, fmt.Errorf("sprite: pipe and ground images are required")
	}
	bottom := upscale(pipe, scale)
	a.PipeBottom = newSprite(bottom)
	a.PipeTop = newSprite(flipV(bottom))
	a.Ground = newSprite(upscale(ground, scale))

	return a, nil
}

func newSprite(img *image.NRGBA) Sprite {
	return Sprite{Image: img, Mask: MaskFromImage(img)}
}

// upscale enlarges img by an integer factor with nearest-neighbour sampling,
// which keeps silhouettes pixel-exact.
func upscale(img image.Image, scale int) *image.NRGBA {
	sb := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sb.Dx()*scale, sb.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, sb, xdraw.Src, nil)
	return dst
}
