// Package sprite provides sprite images and the per-pixel opacity masks used
// for exact collision tests.
package sprite

import (
	"image"
	"math/bits"
)

// AlphaThreshold is the 8-bit alpha above which a pixel counts as opaque.
const AlphaThreshold = 127

// Mask is a fixed-size 2-D bitmap of opaque pixels.
// Each row is packed into 64-bit words, least significant bit first.
type Mask struct {
	w, h   int
	stride int // words per row
	words  []uint64
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{
		w:      w,
		h:      h,
		stride: stride,
		words:  make([]uint64, stride*h),
	}
}

// MaskFromImage builds a mask from the alpha channel of img.
// Pixels with alpha above AlphaThreshold are opaque.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.w
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.h
}

// Bounds returns the mask rectangle anchored at the origin.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.w, m.h)
}

// Set marks the pixel at (x, y) as opaque or transparent.
// Out-of-bounds coordinates are silently ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	i := y*m.stride + x/64
	bit := uint64(1) << uint(x%64)
	if opaque {
		m.words[i] |= bit
	} else {
		m.words[i] &^= bit
	}
}

// Get reports whether the pixel at (x, y) is opaque.
// Out-of-bounds coordinates are transparent.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.words[y*m.stride+x/64]&(uint64(1)<<uint(x%64)) != 0
}

// fill sets every pixel of r (clipped to the mask) to opaque.
func (m *Mask) fill(r image.Rectangle) {
	r = r.Intersect(m.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Set(x, y, true)
		}
	}
}

// count returns the number of opaque pixels.
func (m *Mask) count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap tests whether m and other share an opaque pixel when other's
// top-left corner is placed at offset relative to m's top-left corner.
// It returns the first shared pixel in row-major order, in m's coordinates.
func (m *Mask) Overlap(other *Mask, offset image.Point) (image.Point, bool) {
	r := m.overlapRect(other, offset)
	if r.Empty() {
		return image.Point{}, false
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		oy := y - offset.Y
		for x := r.Min.X; x < r.Max.X; x += 64 {
			n := min(64, r.Max.X-x)
			hit := m.window(y, x, n) & other.window(oy, x-offset.X, n)
			if hit != 0 {
				return image.Pt(x+bits.TrailingZeros64(hit), y), true
			}
		}
	}
	return image.Point{}, false
}

// overlapArea returns the number of opaque pixels shared by m and other at offset.
func (m *Mask) overlapArea(other *Mask, offset image.Point) int {
	r := m.overlapRect(other, offset)
	if r.Empty() {
		return 0
	}

	area := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		oy := y - offset.Y
		for x := r.Min.X; x < r.Max.X; x += 64 {
			n := min(64, r.Max.X-x)
			area += bits.OnesCount64(m.window(y, x, n) & other.window(oy, x-offset.X, n))
		}
	}
	return area
}

// overlapRect returns the intersection of both masks' bounds in m's coordinates.
func (m *Mask) overlapRect(other *Mask, offset image.Point) image.Rectangle {
	return m.Bounds().Intersect(other.Bounds().Add(offset))
}

// window extracts n (1..64) consecutive bits of row y starting at column x.
// The caller guarantees that [x, x+n) lies inside the row.
func (m *Mask) window(y, x, n int) uint64 {
	row := m.words[y*m.stride : (y+1)*m.stride]
	wi, sh := x/64, uint(x%64)

	v := row[wi] >> sh
	if sh != 0 && wi+1 < len(row) {
		v |= row[wi+1] << (64 - sh)
	}
	if n < 64 {
		v &= (uint64(1) << uint(n)) - 1
	}
	return v
}
