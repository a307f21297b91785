// Package gotoclock runs an analog clock face on a small round display with a ring of lights
// around it. Hardware is supplied by a Driver; everything drawn is described by a config.
package gotoclock

import (
	"errors"
	"runtime"
	"strconv"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers"

	"github.com/ajanata/gotoclock/internal/canvas/ggcanvas"
	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/face"
	"github.com/ajanata/gotoclock/internal/geometry"
	"github.com/ajanata/gotoclock/internal/media"
	"github.com/ajanata/gotoclock/internal/panel"
	"github.com/ajanata/gotoclock/internal/ring"
)

const statusTimeout = 10 * time.Second

var ErrNotInitialized = errors.New("not initialized")

// Devices are the outputs a driver brings up in EarlyInit.
type Devices struct {
	// Face is the clock display, drawn every frame.
	Face drivers.Displayer
	// Ring is the light ring around the face.
	Ring ring.Ring
	// Status optionally shows boot messages and a status line. May be nil.
	Status drivers.Displayer
}

type Driver interface {
	// EarlyInit initializes the face display, the light ring and the optional status display. Hardware drivers shall
	// configure any buses (SPI, etc.) that are required to communicate with these devices at this point.
	EarlyInit() (Devices, error)

	// LateInit performs any late initialization (e.g. connecting to wifi to set the clock). The failure of anything in
	// LateInit should not cause the failure of the entire process. Boot messages may be freely logged. buffer is nil
	// when there is no status display.
	LateInit(buffer *textbuf.Buffer)

	// Buttons returns the latched button flags. The clock acts on at most one press per frame and clears all of them.
	//
	// This function should expect to be called at the main loop framerate.
	Buttons() Buttons

	// Accelerometer returns acceleration in m/s^2. Lying flat and at rest, z is approximately 9.8.
	// The second return value indicates the status of the accelerometer: does not exist, valid data, or busy.
	Accelerometer() (x, y, z float64, status SensorStatus)

	// Minimise hands the display back to the host, if there is one.
	Minimise()
}

type Blinker interface {
	Low()
	High()
}

type Clock struct {
	cfg       *config.Config
	frameTime time.Duration
	status    Blinker
	driver    Driver
	log       Logger

	faceDisplay drivers.Displayer
	blitter     panel.Blitter
	canvas      *ggcanvas.Canvas
	ring        ring.Ring
	state       *face.State
	renderer    *face.Renderer
	controller  *Controller

	statusDisplay     drivers.Displayer
	statusText        *textbuf.Buffer
	statusState       statusState
	statusShown       []string
	statusStateChange time.Time

	// Now is the wall clock the face shows. It defaults to time.Now.
	Now func() time.Time

	init  bool
	start time.Time

	tick       uint32
	lastSec    time.Time
	lastTicks  uint32
	lastFPS    uint32
	lastAction Action
}

// New validates cfg and prepares a clock. log may be nil, in which case messages go to println.
func New(cfg *config.Config, status Blinker, driver Driver, log Logger) (*Clock, error) {
	if cfg == nil {
		return nil, errors.New("must provide config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, errors.New("must provide driver")
	}
	if log == nil {
		log = PrintLogger{}
	}

	return &Clock{
		cfg:       cfg,
		frameTime: time.Second / time.Duration(cfg.Framerate),
		status:    status,
		driver:    driver,
		log:       log,
		Now:       time.Now,
		start:     time.Now(),
	}, nil
}

func (c *Clock) Init() error {
	if c.init {
		return errors.New("already initialized")
	}
	c.log.Info("starting init")
	c.blink()

	dev, err := c.driver.EarlyInit()
	if err != nil {
		return errors.New("early init: " + err.Error())
	}
	if dev.Face == nil {
		return errors.New("init did not provide face")
	}
	if dev.Ring == nil {
		return errors.New("init did not provide ring")
	}

	c.faceDisplay = dev.Face
	if c.cfg.UpsideDown {
		c.faceDisplay = panel.NewFlip(dev.Face)
	}
	c.ring = dev.Ring
	w, h := c.faceDisplay.Size()
	c.canvas = ggcanvas.New(int(w), int(h), media.NewCache())

	c.state, err = face.NewState(c.cfg)
	if err != nil {
		return errors.New("display state: " + err.Error())
	}
	c.renderer, err = face.New(c.cfg, c.state, c.ring)
	if err != nil {
		return errors.New("renderer: " + err.Error())
	}
	c.controller = NewController(c.cfg, c.state)

	if dev.Status != nil {
		if err := c.initStatus(dev.Status); err != nil {
			return err
		}
	}

	c.log.Infof("preset %s on a %dx%d face", c.cfg.Preset, w, h)
	c.driver.LateInit(c.statusText)

	if c.statusText != nil {
		_ = c.statusText.Println("The time is now")
		_ = c.statusText.Println(c.Now().Format(time.Stamp))
		_ = c.statusText.Println("Booted in " + time.Since(c.start).Round(100*time.Millisecond).String())
		c.statusStateChange = time.Now()
	}

	c.blink()
	c.init = true
	c.log.Info("init complete in " + time.Since(c.start).Round(100*time.Millisecond).String())
	return nil
}

func (c *Clock) initStatus(disp drivers.Displayer) error {
	var err error
	c.statusDisplay = disp
	c.statusText, err = textbuf.New(disp, textbuf.FontSize6x8)
	if err != nil {
		return errors.New("init status: " + err.Error())
	}

	w, h := c.statusText.Size()
	if w < 15 || h < 4 {
		return errors.New("unusably small status display")
	}

	if err = c.statusText.SetLineInverse(0, "GOTOCLOCK BOOTING"); err != nil {
		return errors.New("boot msg: " + err.Error())
	}
	// we already validated it has at least 4 lines
	_ = c.statusText.SetY(1)
	_ = c.statusText.Println("Preset " + c.cfg.Preset)
	_ = c.statusText.Println("CPUs: " + strconv.Itoa(runtime.NumCPU()))
	return nil
}

// Run does not return. It attempts to run the main loop at the configured framerate.
func (c *Clock) Run() {
	for range time.Tick(c.frameTime) {
		err := c.RunTick()
		if err != nil {
			c.panic(err)
		}
	}
}

// RunTick runs a single iteration of the main loop: input, then drawing, then presenting the frame.
func (c *Clock) RunTick() error {
	if !c.init {
		return ErrNotInitialized
	}

	c.statusOff()
	c.tick++

	redraw := false
	if time.Since(c.lastSec) >= time.Second {
		c.lastFPS = c.tick - c.lastTicks
		c.lastSec = time.Now()
		c.lastTicks = c.tick
		redraw = true
		c.log.Debugf("%d fps", c.lastFPS)
	}

	now := c.monotonic()
	c.Update(now)
	if err := c.Draw(now); err != nil {
		return err
	}

	if panel.Ready(c.faceDisplay) {
		if err := c.blitter.Blit(c.faceDisplay, 0, 0, c.canvas.Frame()); err != nil {
			return errors.New("face blit: " + err.Error())
		}
		if err := c.faceDisplay.Display(); err != nil {
			return errors.New("face display: " + err.Error())
		}
	}

	if c.statusText != nil {
		c.updateStatus(redraw)
	}

	c.statusOn()
	return nil
}

// monotonic is the time since New in milliseconds.
func (c *Clock) monotonic() int64 {
	return time.Since(c.start).Milliseconds()
}

// Update handles at most one button press and follows the accelerometer when tilt is enabled.
func (c *Clock) Update(now int64) {
	a := c.controller.Poll(c.driver.Buttons(), now)
	if a != ActionNone {
		c.lastAction = a
		c.log.Debugf("button action %s", a)
	}
	if a == ActionMinimise {
		c.driver.Minimise()
	}

	if c.cfg.Tilt {
		x, y, z, st := c.driver.Accelerometer()
		if st == SensorStatusAvailable {
			c.state.TiltOffset = geometry.TiltOffset(x, y, z)
		}
	}
}

// Draw renders the face for the current wall clock time onto the canvas and flushes the ring.
func (c *Clock) Draw(now int64) error {
	return c.renderer.Draw(c.canvas, geometry.FromTime(c.Now()), now)
}

// State is the live display state, nil before Init.
func (c *Clock) State() *face.State { return c.state }

// Canvas holds the last rendered frame, nil before Init.
func (c *Clock) Canvas() *ggcanvas.Canvas { return c.canvas }

// unfortunately you can't recover runtime panics in tinygo, so this is just going to be used for things we detect
// that are fatal
func (c *Clock) panic(v any) {
	c.log.Infof("fatal: %v", v)
	for {
		println(v)
		c.blink()
	}
}

func (c *Clock) blink() {
	if c.status == nil {
		return
	}
	c.statusOn()
	time.Sleep(100 * time.Millisecond)
	c.statusOff()
	time.Sleep(100 * time.Millisecond)
}

func (c *Clock) statusOn() {
	if c.status != nil {
		c.status.High()
	}
}

func (c *Clock) statusOff() {
	if c.status != nil {
		c.status.Low()
	}
}
