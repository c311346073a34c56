package sprite

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

// bruteOverlap is the pixel-by-pixel reference for Overlap and overlapArea.
func bruteOverlap(a, b *Mask, off image.Point) (image.Point, bool, int) {
	var first image.Point
	found := false
	area := 0
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Get(x, y) && b.Get(x-off.X, y-off.Y) {
				if !found {
					first = image.Pt(x, y)
					found = true
				}
				area++
			}
		}
	}
	return first, found, area
}

func randomMask(rng *rand.Rand, w, h int, density float64) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func TestMaskSetGet(t *testing.T) {
	m := NewMask(70, 3)

	m.Set(0, 0, true)
	m.Set(63, 1, true)
	m.Set(64, 1, true)
	m.Set(69, 2, true)
	m.Set(70, 2, true) // out of bounds, ignored
	m.Set(-1, 0, true) // out of bounds, ignored

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{1, 0, false},
		{63, 1, true},
		{64, 1, true},
		{69, 2, true},
		{70, 2, false},
		{-1, 0, false},
	}
	for _, tc := range tests {
		if got := m.Get(tc.x, tc.y); got != tc.expected {
			t.Errorf("Get(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}

	if m.count() != 4 {
		t.Errorf("count() = %d, expected 4", m.count())
	}

	m.Set(0, 0, false)
	if m.Get(0, 0) {
		t.Error("Set(false) should clear the pixel")
	}
}

func TestMaskOverlapRects(t *testing.T) {
	a := NewMask(10, 10)
	a.fill(a.Bounds())
	b := NewMask(10, 10)
	b.fill(b.Bounds())

	tests := []struct {
		name     string
		offset   image.Point
		expected bool
		point    image.Point
	}{
		{"same position", image.Pt(0, 0), true, image.Pt(0, 0)},
		{"partial overlap", image.Pt(5, 5), true, image.Pt(5, 5)},
		{"single pixel", image.Pt(9, 9), true, image.Pt(9, 9)},
		{"negative offset", image.Pt(-9, -9), true, image.Pt(0, 0)},
		{"adjacent horizontal", image.Pt(10, 0), false, image.Point{}},
		{"adjacent vertical", image.Pt(0, 10), false, image.Point{}},
		{"far away", image.Pt(-100, 40), false, image.Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := a.Overlap(b, tc.offset)
			if ok != tc.expected {
				t.Fatalf("Overlap() ok = %v, expected %v", ok, tc.expected)
			}
			if ok && p != tc.point {
				t.Errorf("Overlap() point = %v, expected %v", p, tc.point)
			}
			// Symmetry: b sees a at the negated offset
			if _, okRev := b.Overlap(a, tc.offset.Mul(-1)); okRev != tc.expected {
				t.Errorf("Overlap() (reversed) = %v, expected %v", okRev, tc.expected)
			}
		})
	}
}

func TestMaskOverlapDisjointSilhouettes(t *testing.T) {
	// Two L-shapes whose bounding boxes overlap while their bars miss each other.
	a := NewMask(8, 8)
	a.fill(image.Rect(0, 0, 8, 2)) // top bar
	a.fill(image.Rect(0, 0, 2, 8)) // left bar

	b := NewMask(8, 8)
	b.fill(image.Rect(0, 6, 8, 8)) // bottom bar
	b.fill(image.Rect(6, 0, 8, 8)) // right bar

	off := image.Pt(2, 2)
	if !a.Bounds().Overlaps(b.Bounds().Add(off)) {
		t.Fatal("test setup: bounding boxes should overlap")
	}
	if _, ok := a.Overlap(b, off); ok {
		t.Error("Overlap() should be false for disjoint silhouettes")
	}
	if area := a.overlapArea(b, off); area != 0 {
		t.Errorf("overlapArea() = %d, expected 0", area)
	}

	// Shift b up-left until its right bar hits a's top bar
	if _, ok := a.Overlap(b, image.Pt(-5, 0)); !ok {
		t.Error("Overlap() should be true once bars cross")
	}
}

func TestMaskOverlapMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	sizes := [][2]int{{1, 1}, {63, 5}, {64, 4}, {65, 7}, {130, 9}, {200, 3}}
	for _, sa := range sizes {
		for _, sb := range sizes {
			a := randomMask(rng, sa[0], sa[1], 0.05)
			b := randomMask(rng, sb[0], sb[1], 0.05)

			for i := 0; i < 40; i++ {
				off := image.Pt(rng.Intn(2*sa[0]+2*sb[0])-2*sb[0], rng.Intn(sa[1]+sb[1]+2)-sb[1]-1)

				wantP, wantOK, wantArea := bruteOverlap(a, b, off)
				gotP, gotOK := a.Overlap(b, off)
				if gotOK != wantOK || gotP != wantP {
					t.Fatalf("Overlap(%dx%d, %dx%d, %v) = (%v, %v), expected (%v, %v)",
						sa[0], sa[1], sb[0], sb[1], off, gotP, gotOK, wantP, wantOK)
				}
				if got := a.overlapArea(b, off); got != wantArea {
					t.Fatalf("overlapArea(%v) = %d, expected %d", off, got, wantArea)
				}
			}
		}
	}
}

func TestMaskFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 128})
	img.SetNRGBA(2, 0, color.NRGBA{A: 127})

	m := MaskFromImage(img)

	if !m.Get(0, 0) || !m.Get(1, 0) {
		t.Error("pixels with alpha above threshold should be opaque")
	}
	if m.Get(2, 0) {
		t.Error("pixel with alpha at threshold should be transparent")
	}
}

func TestMaskFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 14, 22))
	img.SetNRGBA(10, 20, color.NRGBA{A: 255})
	img.SetNRGBA(13, 21, color.NRGBA{A: 255})

	m := MaskFromImage(img)

	if m.Width() != 4 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", m.Width(), m.Height())
	}
	if !m.Get(0, 0) || !m.Get(3, 1) || m.count() != 2 {
		t.Error("mask should be anchored at the image's top-left corner")
	}
}
