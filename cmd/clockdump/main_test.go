package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajanata/gotoclock"
)

func TestANSI256(t *testing.T) {
	tests := []struct {
		in   color.RGBA
		want uint8
	}{
		{color.RGBA{}, 16},
		{color.RGBA{R: 255, G: 255, B: 255}, 231},
		{color.RGBA{R: 255}, 196},
		{color.RGBA{G: 255}, 46},
		{color.RGBA{B: 255}, 21},
		{color.RGBA{R: 128, G: 128, B: 128}, 16 + 36*3 + 6*3 + 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ansi256(tt.in), "%v", tt.in)
	}
}

func TestParseButtons(t *testing.T) {
	b, err := parseButtons("up, left,right")
	require.NoError(t, err)
	assert.Equal(t, []gotoclock.Button{gotoclock.ButtonUp, gotoclock.ButtonLeft, gotoclock.ButtonRight}, b)

	b, err = parseButtons("")
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = parseButtons("up,jump")
	assert.Error(t, err)
}

func TestRingLine(t *testing.T) {
	px := make([]color.RGBA, 12)
	line := ringLine(aurora.NewAurora(false), px)
	assert.Equal(t, strings.Repeat("██", 12), line)
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "face")
	require.NoError(t, run("", "shapes", "10:08:30", 2, "up", out, aurora.NewAurora(false)))

	for _, name := range []string{out + "-0.png", out + "-1.png"} {
		fi, err := os.Stat(name)
		require.NoError(t, err)
		assert.NotZero(t, fi.Size())
	}

	assert.Error(t, run("", "shapes", "noon", 1, "", out, aurora.NewAurora(false)))
	assert.Error(t, run("", "sundial", "10:08:30", 1, "", out, aurora.NewAurora(false)))
}
