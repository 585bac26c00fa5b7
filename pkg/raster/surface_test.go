package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/rasterpaint/pkg/mocks"
	"github.com/user/rasterpaint/pkg/ports"
)

var red = color.RGBA{R: 255, A: 255}

func TestNew_BlankWhite(t *testing.T) {
	s, err := New(40, 30)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Width() != 40 || s.Height() != 30 {
		t.Fatalf("expected 40x30, got %dx%d", s.Width(), s.Height())
	}
	if got := len(s.RGBA().Pix); got != 40*30*4 {
		t.Errorf("expected buffer of %d bytes, got %d", 40*30*4, got)
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if c, _ := s.At(x, y); c != White {
				t.Fatalf("pixel (%d,%d) = %v, want white", x, y, c)
			}
		}
	}
}

func TestNew_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("New(%d,%d): expected ErrInvalidParameter, got %v", size[0], size[1], err)
		}
	}
}

func TestSurface_SetAndAt(t *testing.T) {
	s, _ := New(10, 10)
	s.Set(3, 4, red)

	c, err := s.At(3, 4)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if c != red {
		t.Errorf("expected red, got %v", c)
	}
}

func TestSurface_OutOfBounds(t *testing.T) {
	s, _ := New(10, 10)
	before := s.Clone()

	s.Set(-1, 0, red)
	s.Set(10, 0, red)
	s.Set(0, 10, red)
	if !s.Equal(before) {
		t.Error("out-of-bounds writes must not change the surface")
	}

	if _, err := s.At(10, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := s.At(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestSurface_CloneIsDeep(t *testing.T) {
	s, _ := New(5, 5)
	c := s.Clone()
	s.Set(1, 1, red)

	if px, _ := c.At(1, 1); px != White {
		t.Error("clone must not share pixels with the original")
	}
	if s.Equal(c) {
		t.Error("expected surfaces to differ after write")
	}
}

func TestSurface_CopyFrom(t *testing.T) {
	dst, _ := New(5, 5)
	src, _ := New(8, 6)
	src.Set(7, 5, red)

	dst.CopyFrom(src)
	if !dst.Equal(src) {
		t.Fatal("expected copy to match source")
	}

	src.Set(0, 0, red)
	if px, _ := dst.At(0, 0); px != White {
		t.Error("CopyFrom must copy, not alias")
	}
}

func TestSurface_ResizeGrowPreservesContent(t *testing.T) {
	s, _ := New(20, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			s.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}

	if !s.Resize(30, 25) {
		t.Fatal("expected grow to report a change")
	}
	if s.Width() != 30 || s.Height() != 25 {
		t.Fatalf("expected 30x25, got %dx%d", s.Width(), s.Height())
	}
	for y := 0; y < 25; y++ {
		for x := 0; x < 30; x++ {
			c, _ := s.At(x, y)
			want := White
			if x < 20 && y < 10 {
				want = color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255}
			}
			if c != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestSurface_ResizeShrinkIsNoop(t *testing.T) {
	s, _ := New(20, 20)
	s.Set(19, 19, red)
	before := s.Clone()

	if s.Resize(10, 10) {
		t.Error("shrinking must report no change")
	}
	if !s.Equal(before) {
		t.Error("shrinking must leave the surface untouched")
	}
}

func TestSurface_ResizeMixedAxesOnlyGrows(t *testing.T) {
	s, _ := New(20, 20)
	if !s.Resize(10, 40) {
		t.Fatal("expected height growth to report a change")
	}
	if s.Width() != 20 || s.Height() != 40 {
		t.Errorf("expected 20x40, got %dx%d", s.Width(), s.Height())
	}
}

func TestFromImage_CompositesOverWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 9, 9))
	img.Set(5, 5, color.NRGBA{R: 255, A: 255})

	s := FromImage(img)
	if s.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("expected bounds anchored at origin, got %v", s.Bounds())
	}
	if c, _ := s.At(0, 0); c != red {
		t.Errorf("expected red at origin, got %v", c)
	}
	if c, _ := s.At(3, 3); c != White {
		t.Errorf("expected transparent pixel to become white, got %v", c)
	}
}

func TestDecode_Errors(t *testing.T) {
	codec := &mocks.Codec{}

	if _, err := Decode(codec, nil); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode for empty data, got %v", err)
	}
	if _, err := Decode(codec, []byte("garbage")); !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode from codec failure, got %v", err)
	}
}

func TestDecode_Success(t *testing.T) {
	codec := &mocks.Codec{
		DecodeFunc: func(data []byte) (image.Image, ports.ImageFormat, error) {
			return image.NewRGBA(image.Rect(0, 0, 12, 7)), ports.FormatPNG, nil
		},
	}

	s, err := Decode(codec, []byte{1})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if s.Width() != 12 || s.Height() != 7 {
		t.Errorf("expected 12x7, got %dx%d", s.Width(), s.Height())
	}
}

func TestEncode_WrapsError(t *testing.T) {
	codec := &mocks.Codec{
		EncodeFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("disk on fire")
		},
	}
	s, _ := New(2, 2)

	if _, err := s.Encode(codec, ports.FormatPNG, 0); !errors.Is(err, ErrEncode) {
		t.Errorf("expected ErrEncode, got %v", err)
	}
}
