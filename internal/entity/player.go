package entity

type Color int

const (
	ColorUnknown Color = iota
	ColorRed
	ColorYellow
)

func (that Color) String() string {
	switch that {
	case ColorRed:
		return "Red"
	case ColorYellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}

type Credentials struct {
	TeamName string
	Password string
}
