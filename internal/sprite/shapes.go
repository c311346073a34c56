package sprite

import (
	"image"
	"image/color"
	"image/draw"
)

// Base sprite dimensions before scaling.
const (
	BirdBaseW   = 34
	BirdBaseH   = 24
	PipeBaseW   = 52
	PipeBaseH   = 320
	GroundBaseW = 336
	GroundBaseH = 112
)

// Palette used by the generated sprites.
var (
	birdBody   = color.NRGBA{R: 247, G: 200, B: 48, A: 255}
	birdWing   = color.NRGBA{R: 250, G: 240, B: 200, A: 255}
	birdEye    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	birdPupil  = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	birdBeak   = color.NRGBA{R: 240, G: 110, B: 40, A: 255}
	pipeBody   = color.NRGBA{R: 90, G: 190, B: 40, A: 255}
	pipeCap    = color.NRGBA{R: 60, G: 150, B: 20, A: 255}
	groundDirt = color.NRGBA{R: 222, G: 180, B: 90, A: 255}
	groundDark = color.NRGBA{R: 200, G: 140, B: 60, A: 255}
	groundLawn = color.NRGBA{R: 60, G: 200, B: 40, A: 255}
)

// Wing centre heights for the up, middle and down flap frames.
var wingCY = [3]float64{8, 13, 17}

// birdFrame draws one frame of the bird. Corners stay transparent so the
// silhouette is smaller than its bounding box.
func birdFrame(frame int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, BirdBaseW, BirdBaseH))
	fillEllipse(img, 16, 13, 13, 10, birdBody)
	fillEllipse(img, 8, wingCY[frame%len(wingCY)], 7, 4, birdWing)
	fillEllipse(img, 22, 8, 4, 4, birdEye)
	fillRect(img, image.Rect(23, 6, 25, 10), birdPupil)
	fillRect(img, image.Rect(26, 13, 34, 18), birdBeak)
	return img
}

// pipeSegment draws an upright pipe: a full-width cap on top of a narrower body.
func pipeSegment() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, PipeBaseW, PipeBaseH))
	fillRect(img, image.Rect(3, 24, PipeBaseW-3, PipeBaseH), pipeBody)
	fillRect(img, image.Rect(0, 0, PipeBaseW, 24), pipeCap)
	return img
}

// groundTile draws one ground tile: diagonal dirt stripes under a strip of
// grass. The stripe period divides the tile width so tiles join seamlessly.
func groundTile() *image.NRGBA {
	const lawn, stripe = 8, 12
	img := image.NewNRGBA(image.Rect(0, 0, GroundBaseW, GroundBaseH))
	fillRect(img, img.Bounds(), groundDirt)
	for y := lawn; y < GroundBaseH; y++ {
		for x := 0; x < GroundBaseW; x++ {
			if ((x+y)/stripe)%2 == 1 {
				img.SetNRGBA(x, y, groundDark)
			}
		}
	}
	fillRect(img, image.Rect(0, 0, GroundBaseW, lawn), groundLawn)
	return img
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// fillEllipse paints every pixel whose centre lies inside the ellipse.
func fillEllipse(img *image.NRGBA, cx, cy, rx, ry float64, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// flipV returns a vertically mirrored copy of img.
func flipV(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):][:b.Dx()*4]
		copy(out.Pix[out.PixOffset(0, b.Dy()-1-y):], src)
	}
	return out
}
