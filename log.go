package gotoclock

import (
	"fmt"
)

// Logger receives the clock's progress messages. Host programs adapt zap to it; boards use PrintLogger.
type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// PrintLogger writes to whatever println is hooked up to, which on a board is usually the USB serial port. Debug
// messages are dropped unless Verbose is set.
type PrintLogger struct {
	Verbose bool
}

func (l PrintLogger) Debug(msg string) {
	if l.Verbose {
		println("D", msg)
	}
}

func (l PrintLogger) Debugf(format string, v ...any) {
	if l.Verbose {
		println("D", fmt.Sprintf(format, v...))
	}
}

func (PrintLogger) Info(msg string) {
	println("I", msg)
}

func (PrintLogger) Infof(format string, v ...any) {
	println("I", fmt.Sprintf(format, v...))
}
