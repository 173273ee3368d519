package imaging

import (
	"image/color"
	"testing"
)

func TestRasterFromImageDimensionsAndChannels(t *testing.T) {
	img := createInMemoryImage(20, 10, color.RGBA{10, 20, 30, 255})

	r, err := RasterFromImage(img)
	if err != nil {
		t.Fatalf("RasterFromImage: %v", err)
	}
	if r.Width != 20 || r.Height != 10 {
		t.Fatalf("expected 20x10, got %dx%d", r.Width, r.Height)
	}
	if len(r.Pix) != 4*20*10 {
		t.Fatalf("expected pixel buffer length %d, got %d", 4*20*10, len(r.Pix))
	}
	if r.Pix[0] != 10 || r.Pix[1] != 20 || r.Pix[2] != 30 || r.Pix[3] != 255 {
		t.Fatalf("expected first pixel (10,20,30,255), got (%d,%d,%d,%d)", r.Pix[0], r.Pix[1], r.Pix[2], r.Pix[3])
	}
}

func TestImageCacheLoadMiss(t *testing.T) {
	cache := NewImageCache()
	_, err := cache.Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("expected an error loading a nonexistent path")
	}
}

func TestImageCacheEvictAndClear(t *testing.T) {
	cache := NewImageCache()
	cache.images["fake-key"] = createInMemoryImage(5, 5, color.RGBA{1, 2, 3, 255})

	cache.Evict("fake-key")
	if _, ok := cache.images["fake-key"]; ok {
		t.Fatal("expected key to be evicted")
	}

	cache.images["another-key"] = createInMemoryImage(5, 5, color.RGBA{1, 2, 3, 255})
	cache.Clear()
	if len(cache.images) != 0 {
		t.Fatal("expected cache to be empty after Clear")
	}
}
