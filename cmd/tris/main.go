// tris - terminal triangle renderer
// Renders a triangle scene as ANSI true-color glyphs.
//
// Controls (with -play):
//
//	W/S         - Dolly forward/back
//	A/D         - Strafe left/right
//	Left/Right  - Turn left/right
//	Up/Down     - Raise/lower
//	Q, Esc      - Quit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/tris/pkg/math3d"
	"github.com/taigrr/tris/pkg/models"
	"github.com/taigrr/tris/pkg/render"
)

var (
	width     = flag.Int("width", 0, "Viewport width in cells (default: 150, or terminal width with -play)")
	height    = flag.Int("height", 0, "Viewport height in cells (default: 50, or terminal height with -play)")
	bgColor   = flag.String("bg", "", "Background color (#rrggbb or a color name)")
	modelPath = flag.String("model", "", "Optional .glb/.gltf model to add to the scene")
	play      = flag.Bool("play", false, "Interactive mode")
	targetFPS = flag.Int("fps", 60, "Target FPS")
	workers   = flag.Int("workers", 0, "Rows rendered in parallel (0 = GOMAXPROCS)")
	verbose   = flag.Bool("v", false, "Log frame statistics to stderr")
)

// Demo scene size when neither the flags nor a terminal supply one.
const (
	defaultWidth  = 150
	defaultHeight = 50
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tris - terminal triangle renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tris [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls (-play):\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Dolly forward/back\n")
		fmt.Fprintf(os.Stderr, "  A/D         - Strafe left/right\n")
		fmt.Fprintf(os.Stderr, "  Left/Right  - Turn\n")
		fmt.Fprintf(os.Stderr, "  Up/Down     - Raise/lower\n")
		fmt.Fprintf(os.Stderr, "  Q, Esc      - Quit\n")
	}
	flag.Parse()

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	if *play {
		err = runPlay()
	} else {
		err = runOnce(os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// demoCamera sits slightly left of and above the origin, looking back
// toward -Z with a small turn to the right.
func demoCamera() *render.Camera {
	return render.Upright(math3d.V3(-0.1, 0.2, 1), math3d.V3(0.09983342, 0, -0.9950042))
}

// buildScene assembles the demo triangle and the optional model.
func buildScene(vp render.Viewport) (*render.Scene, error) {
	bg, err := parseBackground(*bgColor)
	if err != nil {
		return nil, err
	}

	scene := render.NewScene(demoCamera(), vp).AddTriangles(render.NewTri(
		math3d.V3(0, 0, 0),
		math3d.V3(0, 0, 1),
		math3d.V3(0, 1, 0),
	))
	scene.Rasterizer.Background = bg
	scene.Rasterizer.Workers = *workers

	if *modelPath != "" {
		mesh, err := models.LoadGLB(*modelPath)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		mesh.Fit(1)
		scene.AddShape(mesh)
	}
	return scene, nil
}

// viewportFor applies the size flags over a fallback size.
func viewportFor(fallbackW, fallbackH int) render.Viewport {
	vp := render.NewViewport(fallbackW, fallbackH)
	if *width > 0 {
		vp.Width = *width
	}
	if *height > 0 {
		vp.Height = *height
	}
	return vp
}

func runOnce(w io.Writer) error {
	vp := viewportFor(defaultWidth, defaultHeight)
	if err := vp.Validate(); err != nil {
		return err
	}
	scene, err := buildScene(vp)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := scene.RenderBuffer().WriteTo(bw); err != nil {
		return err
	}
	fmt.Fprint(bw, "\x1b[0m\n")
	return bw.Flush()
}

// draw writes the frame top row first, positioning the cursor per line.
func draw(w *bufio.Writer, fb *render.Framebuffer) error {
	for i, line := range fb.Lines() {
		fmt.Fprintf(w, "\x1b[%d;1H", i+1)
		w.WriteString(line)
	}
	w.WriteString("\x1b[0m")
	return w.Flush()
}

func runPlay() error {
	if *targetFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *targetFPS)
	}

	// Create terminal
	term := uv.DefaultTerminal()

	termW, termH, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	vp := viewportFor(termW, termH)
	if err := vp.Validate(); err != nil {
		return err
	}
	scene, err := buildScene(vp)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(termW, termH)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	controls := make(chan control, 64)
	resizes := make(chan render.Viewport, 1)

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				term.Erase()
				term.Resize(ev.Width, ev.Height)
				select {
				case resizes <- viewportFor(ev.Width, ev.Height):
				default:
				}

			case uv.KeyPressEvent:
				if ev.MatchString("q", "escape", "ctrl+c") {
					cancel()
					return
				}
				if c, ok := controlFor(ev); ok {
					select {
					case controls <- c:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	out := bufio.NewWriter(os.Stdout)
	motion := newRig(*targetFPS)
	ticker := time.NewTicker(time.Second / time.Duration(*targetFPS))
	defer ticker.Stop()

	dirty := true
	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		case c := <-controls:
			motion.Push(c)
			continue
		case vp := <-resizes:
			if vp.Validate() == nil {
				scene.Viewport = vp
				dirty = true
			}
			continue
		case <-ticker.C:
		}

		if motion.Step(scene.Camera) {
			dirty = true
		}
		if !dirty {
			continue
		}

		fb, err := scene.RenderContext(ctx)
		if err != nil {
			// Cancelled mid-frame; the next iteration sees ctx.Done.
			continue
		}
		if err := draw(out, fb); err != nil {
			cleanup()
			return fmt.Errorf("draw: %w", err)
		}
		dirty = false
	}
}
