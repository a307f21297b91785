package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := Adapt(New(zapcore.AddSync(&buf), false))
	l.Debug("hidden")
	l.Infof("preset %s", "blobs")
	_ = l.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "preset blobs")
	assert.Contains(t, out, "INFO")

	buf.Reset()
	l = Adapt(New(zapcore.AddSync(&buf), true))
	l.Debugf("fps %d", 30)
	_ = l.Sync()
	assert.Contains(t, buf.String(), "fps 30")
}

func TestAdapt(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Adapt(zap.New(core))

	l.Debug("a")
	l.Debugf("b%d", 1)
	l.Info("c")
	l.Infof("d%s", "!")

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, zap.DebugLevel, entries[0].Level)
		assert.Equal(t, "b1", entries[1].Message)
		assert.Equal(t, zap.InfoLevel, entries[2].Level)
		assert.Equal(t, "d!", entries[3].Message)
	}
}
