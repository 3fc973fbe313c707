package hal

import (
	"image"
	"sync"
)

// hostFramebuffer is double-buffered: the app draws into back, Present copies
// it to front, and the window (or a snapshot) reads front.
type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	back     *image.RGBA
	front    []byte
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	back := image.NewRGBA(image.Rect(0, 0, width, height))
	return &hostFramebuffer{
		width:  width,
		height: height,
		back:   back,
		front:  make([]byte, len(back.Pix)),
	}
}

func (f *hostFramebuffer) Width() int         { return f.width }
func (f *hostFramebuffer) Height() int        { return f.height }
func (f *hostFramebuffer) Image() *image.RGBA { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back.Pix)
	f.presents++
	return nil
}

func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}

// frontImage returns a copy of the last presented frame.
func (f *hostFramebuffer) frontImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.snapshot(img.Pix)
	return img
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}
