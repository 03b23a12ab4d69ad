// Command slintdemo opens a window and renders paths, an image and
// text with the OpenGL rendering backend.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Lintangzupan/slint"
	_ "github.com/Lintangzupan/slint/backend/gl"
	"github.com/Lintangzupan/slint/glfwsurface"
)

func init() {
	// GLFW and the GL context both require the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width    = flag.Int("width", 800, "window width")
		height   = flag.Int("height", 600, "window height")
		renderer = flag.String("renderer", "gl", "rendering backend name")
		verbose  = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		slint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*width, *height, "slint demo", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	surface, err := glfwsurface.New(window)
	if err != nil {
		log.Fatalf("wrap window: %v", err)
	}
	backend, err := slint.NewBackend(*renderer, surface)
	if err != nil {
		log.Fatalf("create backend: %v", err)
	}
	defer backend.Release()

	prims, err := buildScene(backend)
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}
	defer releaseAll(backend, prims)

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := surface.Size()
		frame, err := backend.NewFrame(w, h, slint.RGB(0.12, 0.12, 0.14))
		if err != nil {
			log.Fatalf("new frame: %v", err)
		}

		angle := float32(math.Mod(glfw.GetTime(), 2*math.Pi))
		frame.DrawPrimitive(prims.background, slint.Identity())
		frame.DrawPrimitive(prims.star, slint.Translate(400, 220).Mul(slint.Rotate(angle)))
		frame.DrawPrimitive(prims.logo, slint.Translate(60, 380))
		frame.DrawPrimitive(prims.caption, slint.Translate(60, 560))

		if err := backend.PresentFrame(frame); err != nil {
			log.Fatalf("present frame: %v", err)
		}
	}
}

// scene is the set of primitives the demo draws every frame.
type scene struct {
	background slint.Primitive
	star       slint.Primitive
	logo       slint.Primitive
	caption    slint.Primitive
}

func buildScene(backend slint.Backend) (*scene, error) {
	builder, err := backend.NewPrimitivesBuilder()
	if err != nil {
		return nil, err
	}

	var s scene
	s.background, err = builder.BuildFillPath(
		slint.NewPath().Rectangle(40, 40, 720, 520),
		slint.SolidFill(slint.RGBAf(0.2, 0.22, 0.3, 1)))
	if err != nil {
		return nil, err
	}

	s.star, err = builder.BuildFillPath(starPath(5, 120, 50), slint.SolidFill(slint.RGB(0.95, 0.7, 0.1)))
	if err != nil {
		return nil, err
	}

	s.logo, err = builder.BuildImage(
		slint.Rect{X: 0, Y: 0, Width: 128, Height: 128}, checkerboard(64, 8))
	if err != nil {
		return nil, err
	}

	s.caption, err = builder.BuildGlyphRun("Rendered with the gl backend", slint.RGB(0.9, 0.9, 0.9))
	if err != nil {
		return nil, err
	}

	if err := backend.FinishPrimitives(builder); err != nil {
		return nil, err
	}
	return &s, nil
}

// releaseAll frees the scene's GPU buffers. Release needs the context,
// so it runs inside a throwaway builder phase.
func releaseAll(backend slint.Backend, s *scene) {
	builder, err := backend.NewPrimitivesBuilder()
	if err != nil {
		log.Printf("release scene: %v", err)
		return
	}
	for _, p := range []slint.Primitive{s.background, s.star, s.logo, s.caption} {
		p.Release()
	}
	if err := backend.FinishPrimitives(builder); err != nil {
		log.Printf("release scene: %v", err)
	}
}

// starPath builds a closed star polygon centered at the origin.
func starPath(points int, outer, inner float32) *slint.Path {
	p := slint.NewPath()
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i) * math.Pi / float64(points)
		x := r * float32(math.Sin(a))
		y := -r * float32(math.Cos(a))
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.Close()
}

// checkerboard renders a size x size test image with cells pixels per
// square.
func checkerboard(size, cells int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := img.PixOffset(x, y)
			if (x/cells+y/cells)%2 == 0 {
				img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 230, 80, 60
			} else {
				img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 245, 245, 245
			}
			img.Pix[i+3] = 255
		}
	}
	return img
}
