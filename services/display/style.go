package display

// HandStyle describes one analog hand.
type HandStyle struct {
	Length int
	Width  int16
	Color  Color
}

// Style holds the colours and geometry of both faces.
type Style struct {
	Background Color
	Foreground Color
	Colon      Color
	DimDigit   Color

	Second HandStyle
	Minute HandStyle
	Hour   HandStyle

	Bezel      bool
	BezelMajor Color
	BezelMinor Color
}

// Bezel ring, in pixels from the centre.
const (
	bezelInner = 107
	bezelOuter = 117
)

// MaxHandLength keeps hands inside the bezel ring.
const MaxHandLength = bezelInner - 1

func DefaultStyle() Style {
	return Style{
		Background: Black,
		Foreground: White,
		Colon:      Colon,
		DimDigit:   DimDigit,
		Second:     HandStyle{Length: 90, Width: 1, Color: Yellow},
		Minute:     HandStyle{Length: 100, Width: 1, Color: Red},
		Hour:       HandStyle{Length: 55, Width: 1, Color: White},
		Bezel:      true,
		BezelMajor: Blue,
		BezelMinor: White,
	}
}

// normalize clamps hand geometry to what fits the face.
func (s *Style) normalize() {
	for _, h := range []*HandStyle{&s.Second, &s.Minute, &s.Hour} {
		if h.Length <= 0 || h.Length > MaxHandLength {
			h.Length = MaxHandLength
		}
		if h.Width <= 0 {
			h.Width = 1
		}
	}
}
