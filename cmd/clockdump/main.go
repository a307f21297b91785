// Command clockdump renders clock frames at a fixed time to PNG files and prints the light ring
// colours to the terminal.
//
//	clockdump -preset shapes -time 10:08:30 -frames 3 -press up,left -out /tmp/face
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/ajanata/gotoclock"
	"github.com/ajanata/gotoclock/internal/canvas/ggcanvas"
	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/face"
	"github.com/ajanata/gotoclock/internal/geometry"
	"github.com/ajanata/gotoclock/internal/media"
	"github.com/ajanata/gotoclock/internal/ring"
)

const size = 240

func main() {
	configPath := flag.String("config", "", "config file (.json, .yaml)")
	preset := flag.String("preset", config.DefaultPreset, "preset to use when no config file is given")
	at := flag.String("time", "10:08:30", "time of day to draw, HH:MM:SS")
	frames := flag.Int("frames", 1, "number of frames to render")
	press := flag.String("press", "", "comma separated buttons pressed before the first frame, e.g. up,left")
	out := flag.String("out", "clock", "output file prefix")
	nocolor := flag.Bool("nocolor", false, "disable coloured output")
	flag.Parse()

	if err := run(*configPath, *preset, *at, *frames, *press, *out, aurora.NewAurora(!*nocolor)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, preset, at string, frames int, press, out string, au aurora.Aurora) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Preset(preset)
	}
	if err != nil {
		return err
	}

	t, err := time.Parse("15:04:05", at)
	if err != nil {
		return fmt.Errorf("parsing time failed: %w", err)
	}
	buttons, err := parseButtons(press)
	if err != nil {
		return err
	}

	state, err := face.NewState(cfg)
	if err != nil {
		return err
	}
	lights := &ring.Buffer{}
	r, err := face.New(cfg, state, lights)
	if err != nil {
		return err
	}
	ctl := gotoclock.NewController(cfg, state)
	for _, b := range buttons {
		var set gotoclock.ButtonSet
		set.Press(b)
		fmt.Println("pressed", b, "->", ctl.Poll(&set, 0))
	}

	c := ggcanvas.New(size, size, media.NewCache())
	frameMs := int64(1000 / cfg.Framerate)
	for i := 0; i < frames; i++ {
		now := int64(i) * frameMs
		tod := geometry.FromTime(t.Add(time.Duration(now) * time.Millisecond))
		if err := r.Draw(c, tod, now); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		name := out + "-" + strconv.Itoa(i) + ".png"
		if err := c.Context().SavePNG(name); err != nil {
			return fmt.Errorf("saving %s failed: %w", name, err)
		}
		fmt.Println(name, ringLine(au, lights.Pixels()))
	}
	return nil
}

var buttonNames = map[string]gotoclock.Button{}

func init() {
	for b := gotoclock.ButtonCancel; b <= gotoclock.ButtonRight; b++ {
		buttonNames[b.String()] = b
	}
}

func parseButtons(s string) ([]gotoclock.Button, error) {
	if s == "" {
		return nil, nil
	}
	var out []gotoclock.Button
	for _, name := range strings.Split(s, ",") {
		b, ok := buttonNames[strings.TrimSpace(name)]
		if !ok {
			return nil, errors.New("unknown button " + strconv.Quote(name))
		}
		out = append(out, b)
	}
	return out, nil
}

// ansi256 picks the nearest entry of the 6x6x6 colour cube of a 256 colour terminal.
func ansi256(c color.RGBA) uint8 {
	level := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return 16 + 36*level(c.R) + 6*level(c.G) + level(c.B)
}

// ringLine shows the ring in clockwise order starting at 12 o'clock, which is pixel 12.
func ringLine(au aurora.Aurora, px []color.RGBA) string {
	var sb strings.Builder
	for i := len(px) - 1; i >= 0; i-- {
		sb.WriteString(au.Index(ansi256(px[i]), "██").String())
	}
	return sb.String()
}
