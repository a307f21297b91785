package gotoclock

type Button uint8

const (
	ButtonCancel Button = iota
	ButtonConfirm
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// buttonOrder is the order buttons are checked in; the first pressed one wins.
var buttonOrder = [...]Button{ButtonCancel, ButtonConfirm, ButtonUp, ButtonDown, ButtonLeft, ButtonRight}

func (b Button) String() string {
	switch b {
	case ButtonCancel:
		return "cancel"
	case ButtonConfirm:
		return "confirm"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "INVALID"
	}
}

type SensorStatus uint8

const (
	// SensorStatusUnavailable indicates that the sensor is never available (not implemented in hardware).
	SensorStatusUnavailable SensorStatus = iota
	// SensorStatusAvailable indicates that the returned value(s) is/are accurate.
	SensorStatusAvailable
	// SensorStatusBusy indicates that the sensor is temporarily unavailable e.g. due to bus contention.
	SensorStatusBusy
)

func (s SensorStatus) String() string {
	switch s {
	case SensorStatusUnavailable:
		return "unavailable"
	case SensorStatusAvailable:
		return "available"
	case SensorStatusBusy:
		return "busy"
	default:
		return "INVALID"
	}
}

// statusState indicates what mode the status screen is in.
type statusState uint8

const (
	statusStateBoot statusState = iota
	statusStateIdle
)

func (s statusState) String() string {
	switch s {
	case statusStateBoot:
		return "boot"
	case statusStateIdle:
		return "idle"
	default:
		return "INVALID"
	}
}
