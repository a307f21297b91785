// Command simulator runs the clock in a desktop window.
//
// Keys: Escape cancel, Enter confirm, arrow keys up/down/left/right, Q quits. Holding the left mouse
// button tilts the face toward the cursor when the tilt preset is active.
package main

import (
	"errors"
	"flag"
	"image/color"
	"math"
	"os"

	"github.com/ajanata/textbuf"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/ajanata/gotoclock"
	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/geometry"
	"github.com/ajanata/gotoclock/internal/logger"
	"github.com/ajanata/gotoclock/internal/panel"
	"github.com/ajanata/gotoclock/internal/ring"
)

const (
	faceSize = 240
	margin   = 30
	screen   = faceSize + 2*margin
	ledSize  = 6
	// ledPhase puts each light between two markers.
	ledPhase = 15
)

var keys = map[ebiten.Key]gotoclock.Button{
	ebiten.KeyEscape:     gotoclock.ButtonCancel,
	ebiten.KeyEnter:      gotoclock.ButtonConfirm,
	ebiten.KeyArrowUp:    gotoclock.ButtonUp,
	ebiten.KeyArrowDown:  gotoclock.ButtonDown,
	ebiten.KeyArrowLeft:  gotoclock.ButtonLeft,
	ebiten.KeyArrowRight: gotoclock.ButtonRight,
}

type simDriver struct {
	face    *panel.Framebuffer
	ring    ring.Buffer
	buttons gotoclock.ButtonSet
	log     *zap.Logger

	tilting bool
	ax, ay  float64
	az      float64
}

func (d *simDriver) EarlyInit() (gotoclock.Devices, error) {
	d.face = panel.NewFramebuffer(faceSize, faceSize)
	return gotoclock.Devices{Face: d.face, Ring: &d.ring}, nil
}

func (d *simDriver) LateInit(*textbuf.Buffer) {
	d.log.Info("simulator ready")
}

func (d *simDriver) Buttons() gotoclock.Buttons { return &d.buttons }

func (d *simDriver) Accelerometer() (x, y, z float64, status gotoclock.SensorStatus) {
	if !d.tilting {
		// flat on the desk
		return 0, 0, 9.8, gotoclock.SensorStatusAvailable
	}
	return d.ax, d.ay, d.az, gotoclock.SensorStatusAvailable
}

func (d *simDriver) Minimise() {
	ebiten.MinimizeWindow()
}

// pollInput latches key presses and turns the cursor into an accelerometer reading. The further
// the cursor is from the centre, the closer to vertical the simulated device is held.
func (d *simDriver) pollInput() {
	for k, b := range keys {
		if inpututil.IsKeyJustPressed(k) {
			d.buttons.Press(b)
		}
	}

	d.tilting = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if !d.tilting {
		return
	}
	mx, my := ebiten.CursorPosition()
	dx, dy := float64(mx-screen/2), float64(my-screen/2)
	dist := math.Min(1, math.Hypot(dx, dy)/(faceSize/2))
	angle := math.Atan2(dy, dx)
	d.ax, d.ay = 9.8*math.Cos(angle), 9.8*math.Sin(angle)
	d.az = 10 - 9*dist
}

type game struct {
	clock  *gotoclock.Clock
	driver *simDriver
	face   *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.driver.pollInput()
	return g.clock.RunTick()
}

func (g *game) Draw(screenImg *ebiten.Image) {
	screenImg.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})

	g.face.WritePixels(g.driver.face.Image().Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(margin, margin)
	screenImg.DrawImage(g.face, op)

	// pixel 12-i sits at clockwise position i
	r := float64(faceSize/2 + margin/2)
	for i, px := range g.driver.ring.Pixels() {
		pos := ring.Pixels - 1 - i
		p := geometry.Polar(float64(pos)*geometry.MarkerStep+ledPhase, r)
		vector.DrawFilledCircle(screenImg, float32(p.X+screen/2), float32(p.Y+screen/2), ledSize, px, true)
	}
}

func (g *game) Layout(int, int) (int, int) {
	return screen, screen
}

func main() {
	configPath := flag.String("config", "", "config file (.json, .yaml)")
	preset := flag.String("preset", config.DefaultPreset, "preset to use when no config file is given")
	debug := flag.Bool("debug", false, "debug logging")
	scale := flag.Int("scale", 2, "window scale")
	flag.Parse()

	log := logger.New(nil, *debug)
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(*configPath, *preset)
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	d := &simDriver{log: log}
	c, err := gotoclock.New(cfg, nil, d, logger.Adapt(log))
	if err != nil {
		log.Fatal("new clock", zap.Error(err))
	}
	if err := c.Init(); err != nil {
		log.Fatal("init", zap.Error(err))
	}

	ebiten.SetWindowSize(screen*(*scale), screen*(*scale))
	ebiten.SetWindowTitle("gotoclock - " + cfg.Preset)
	ebiten.SetTPS(cfg.Framerate)

	g := &game{clock: c, driver: d, face: ebiten.NewImage(faceSize, faceSize)}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", zap.Error(err))
		os.Exit(1)
	}
}

func loadConfig(path, preset string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Preset(preset)
}
