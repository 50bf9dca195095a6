// Package window owns the SDL window and GL context of the demo
// binary.
package window

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	window  *sdl.Window
	context sdl.GLContext
)

func Get() *sdl.Window {
	return window
}

func Size() (int, int) {
	w, h := window.GetSize()
	return int(w), int(h)
}

func Shutdown() {
	sdl.GLDeleteContext(context)
	context = nil
	window.Destroy()
	window = nil
	sdl.Quit()
}

// Create opens the window and initializes the GL context.
func Create(title string, width, height int32) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 6)
	// compatibility profile: the attribute qualifier only exists in
	// legacy GLSL versions
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	var err error
	window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	context, err = window.GLCreateContext()
	if err != nil {
		return err
	}
	// Initialize Glow
	if err := gl.Init(); err != nil {
		return err
	}
	gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	return nil
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		log.Panicf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	} else {
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	}
}

func EndRendering() {
	window.GLSwap()
}
