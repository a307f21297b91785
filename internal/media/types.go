package media

type Type string

const (
	// TypeBackground images are stretched to cover the whole face.
	TypeBackground Type = "background"
)

func (t Type) Size() (w int16, h int16) {
	switch t {
	case TypeBackground:
		return 60, 60
	default:
		return 0, 0
	}
}
