package canvas_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajanata/gotoclock/internal/canvas"
	"github.com/ajanata/gotoclock/internal/canvas/canvastest"
)

func TestScopedRestoresOnError(t *testing.T) {
	rec := canvastest.New()
	boom := errors.New("boom")

	err := canvas.Scoped(rec, func() error {
		rec.Translate(10, 10)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, rec.Check())

	// the translate did not leak
	rec.MoveTo(1, 2)
	rec.Stroke()
	assert.Equal(t, 1.0, rec.Draws[0].Points()[0].X)
	assert.Equal(t, 2.0, rec.Draws[0].Points()[0].Y)
}

func TestScopedRestoresOnPanic(t *testing.T) {
	rec := canvastest.New()
	assert.Panics(t, func() {
		_ = canvas.Scoped(rec, func() error {
			rec.Rotate(1)
			panic("draw failed")
		})
	})
	assert.Equal(t, 0, rec.Depth())
	assert.Equal(t, 1, rec.MaxDepth())
}

func TestRecorderComposesTransforms(t *testing.T) {
	rec := canvastest.New()
	_ = canvas.Scoped(rec, func() error {
		rec.Translate(100, 0)
		rec.Rotate(math.Pi / 2)
		rec.BeginPath()
		rec.MoveTo(0, -10)
		rec.Fill()
		return nil
	})

	p := rec.Draws[0].Points()[0]
	// (0, -10) turned a quarter clockwise is (10, 0), then moved right by 100
	assert.InDelta(t, 110, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestRecorderDetectsUnbalancedRestore(t *testing.T) {
	rec := canvastest.New()
	rec.Restore()
	assert.ErrorIs(t, rec.Check(), canvastest.ErrUnbalanced)

	rec = canvastest.New()
	rec.Save()
	assert.ErrorIs(t, rec.Check(), canvastest.ErrUnbalanced)
}
