package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by a step function to end the run loop cleanly.
var ErrQuit = errors.New("quit requested")

// Framebuffer is an RGBA drawing surface plus a "present" hook.
//
// Drawing goes to Image; Present publishes the finished frame to the screen.
type Framebuffer interface {
	Width() int
	Height() int
	Image() *image.RGBA
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and a
// non-zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the viewer's only contact point with the window system.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// Config describes the host surface.
type Config struct {
	Width  int
	Height int
	Title  string
	Scale  int
	// TPS is the number of steps per second.
	TPS int
}

// StepFunc advances the application by one frame.
type StepFunc func() error

// AppFunc builds the application on top of a HAL.
type AppFunc func(HAL) (StepFunc, error)
