//go:build teensy41

package main

import (
	"machine"
	"time"

	"github.com/ajanata/textbuf"
	"tinygo.org/x/drivers/lis3dh"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/drivers/st7789"
	"tinygo.org/x/drivers/ws2812"

	"github.com/ajanata/gotoclock"
	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/panel"
	"github.com/ajanata/gotoclock/internal/ring"
)

const (
	// micro-g to m/s^2
	microG = 9.806 / 1000000

	// a full 240x240 RGB565 frame is 920 kbit, so 30 MHz SPI tops out a little above this
	maxFramerate = 24
)

var _ panel.RectWriter = (*st7789.Device)(nil)

var buttonPins = [...]struct {
	pin    machine.Pin
	button gotoclock.Button
}{
	{machine.D14, gotoclock.ButtonCancel},
	{machine.D15, gotoclock.ButtonConfirm},
	{machine.D20, gotoclock.ButtonUp},
	{machine.D21, gotoclock.ButtonDown},
	{machine.D22, gotoclock.ButtonLeft},
	{machine.D23, gotoclock.ButtonRight},
}

type badge struct {
	display   st7789.Device
	backlight machine.Pin
	status    ssd1306.Device
	leds      ws2812.Device
	ring      ring.Buffer
	accel     lis3dh.Device
	i2c       bool
	hasAccel  bool

	buttons gotoclock.ButtonSet
	down    [len(buttonPins)]bool
	dark    bool
}

func (b *badge) EarlyInit() (gotoclock.Devices, error) {
	err := machine.SPI1.Configure(machine.SPIConfig{
		Frequency: 30 * machine.MHz,
		SDI:       machine.SPI1_SDI_PIN,
		SDO:       machine.SPI1_SDO_PIN,
		SCK:       machine.SPI1_SCK_PIN,
		Mode:      0,
	})
	if err != nil {
		return gotoclock.Devices{}, err
	}
	b.backlight = machine.D4
	// st7789 takes whole rectangles, so frames go out in strips rather than a pixel at a time
	b.display = st7789.New(machine.SPI1, machine.D2, machine.D3, machine.SPI1_CS_PIN, b.backlight)
	b.display.Configure(st7789.Config{Width: 240, Height: 240, Rotation: st7789.NO_ROTATION})

	pin := machine.D5
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.leds = ws2812.New(pin)
	b.ring.OnWrite = b.leds.WriteColors

	for _, bp := range buttonPins {
		bp.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	// the status panel and the accelerometer share the bus
	err = machine.I2C0.Configure(machine.I2CConfig{
		SCL:       machine.I2C1_SCL_PIN,
		SDA:       machine.I2C1_SDA_PIN,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		return gotoclock.Devices{Face: &b.display, Ring: &b.ring}, nil
	}
	b.i2c = true
	b.status = ssd1306.NewI2C(machine.I2C0)
	b.status.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3D, VccState: ssd1306.SWITCHCAPVCC})
	b.status.ClearBuffer()
	b.status.ClearDisplay()

	return gotoclock.Devices{Face: &b.display, Ring: &b.ring, Status: &b.status}, nil
}

func (b *badge) LateInit(status *textbuf.Buffer) {
	if !b.i2c {
		println("i2c unavailable")
		return
	}
	b.accel = lis3dh.New(machine.I2C0)
	b.accel.Address = lis3dh.Address0
	b.accel.Configure()
	b.accel.SetRange(lis3dh.RANGE_2_G)
	b.hasAccel = b.accel.Connected()
	if !b.hasAccel && status != nil {
		_ = status.Println("no accelerometer")
	}
}

// Buttons latches a press on the falling edge of each pin, so holding a button fires once.
func (b *badge) Buttons() gotoclock.Buttons {
	for i, bp := range buttonPins {
		down := !bp.pin.Get()
		if down && !b.down[i] {
			b.buttons.Press(bp.button)
			if b.dark {
				b.dark = false
				b.backlight.High()
			}
		}
		b.down[i] = down
	}
	return &b.buttons
}

func (b *badge) Accelerometer() (x, y, z float64, status gotoclock.SensorStatus) {
	if !b.hasAccel {
		return 0, 0, 0, gotoclock.SensorStatusUnavailable
	}
	ax, ay, az, err := b.accel.ReadAcceleration()
	if err != nil {
		return 0, 0, 0, gotoclock.SensorStatusBusy
	}
	return float64(ax) * microG, float64(ay) * microG, float64(az) * microG, gotoclock.SensorStatusAvailable
}

// Minimise turns the backlight off; the next button press turns it back on.
func (b *badge) Minimise() {
	b.dark = true
	b.backlight.Low()
}

func main() {
	blink()

	cfg := config.Default()
	if p, err := config.Preset(preset); err == nil {
		cfg = p
	}
	if cfg.Framerate > maxFramerate {
		cfg.Framerate = maxFramerate
	}

	// NOTE: SPI1's SCK is the LED pin, so the LED can't be the Blinker once the panel is up.
	c, err := gotoclock.New(cfg, nil, &badge{}, gotoclock.PrintLogger{Verbose: verbose == "true"})
	if err != nil {
		earlyPanic(err)
	}
	err = c.Init()
	if err != nil {
		earlyPanic(err)
	}

	c.Run()
}

// preset and verbose can be set at build time with -ldflags "-X main.preset=spin -X main.verbose=true".
var (
	preset  = config.DefaultPreset
	verbose = "false"
)

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

func earlyPanic(err error) {
	for {
		println(err.Error())
		blink()
	}
}
