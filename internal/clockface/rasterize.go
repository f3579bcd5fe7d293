package clockface

import (
	"math"
	"time"
)

// AspectRatio scales vertical distances to compensate for terminal cells
// being about twice as tall as they are wide.
const AspectRatio = 0.5

// MinNumeralWidth is the narrowest area that gets Roman numerals.
// Narrower areas get a single tick per hour.
const MinNumeralWidth = 60

const (
	margin = 2

	// |dist - radius| below this marks the outline. Anything tighter
	// leaves gaps once the vertical axis is scaled and truncated.
	outlineTolerance = 1.0

	numeralRadius = 0.88
	tickRadius    = 0.92

	hourLength   = 0.45
	minuteLength = 0.75
	secondLength = 0.90
)

// Display characters.
const (
	outlineChar = 'o'
	tickChar    = '|'
	hourChar    = '#'
	minuteChar  = '*'
	secondChar  = '.'
)

// romanNumerals indexed by hour position; 0 is the top of the dial.
var romanNumerals = [12]string{
	"XII", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI",
}

// Geometry is the per-frame layout derived from the area size.
type Geometry struct {
	CX, CY int
	Radius int
}

// NewGeometry centers the dial in a width x height area and leaves a
// two-cell margin. The radius never goes negative.
func NewGeometry(width, height int) Geometry {
	return Geometry{
		CX:     width / 2,
		CY:     height / 2,
		Radius: max(min(width, height)/2-margin, 0),
	}
}

// Polar converts an angle (clockwise from 12) and a distance into a cell
// position, scaling the vertical component by AspectRatio. Offsets are
// truncated toward zero.
func (g Geometry) Polar(angle, dist float64) (x, y int) {
	x = g.CX + int(math.Sin(angle)*dist)
	y = g.CY - int(math.Cos(angle)*dist*AspectRatio)
	return x, y
}

// HandLengths returns the hour, minute and second hand lengths in cells.
func (g Geometry) HandLengths() (hour, minute, second int) {
	r := float64(g.Radius)
	return int(r * hourLength), int(r * minuteLength), int(r * secondLength)
}

// Rasterize draws the clock face for now into a fresh width x height grid.
func Rasterize(width, height int, now time.Time) *Grid {
	grid := NewGrid(width, height)
	if width <= 0 || height <= 0 {
		return grid
	}

	geo := NewGeometry(width, height)
	if geo.Radius > 0 {
		drawOutline(grid, geo)
		drawMarkers(grid, geo)
	}
	drawHands(grid, geo, SampleAt(now))
	return grid
}

func drawOutline(grid *Grid, geo Geometry) {
	w, h := grid.Size()
	r := float64(geo.Radius)
	for y := 0; y < h; y++ {
		dy := int(float64(y-geo.CY) / AspectRatio)
		for x := 0; x < w; x++ {
			dx := x - geo.CX
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if math.Abs(dist-r) < outlineTolerance {
				grid.Set(x, y, outlineChar, CircleOutline)
			}
		}
	}
}

func drawMarkers(grid *Grid, geo Geometry) {
	w, _ := grid.Size()
	if w >= MinNumeralWidth {
		drawNumerals(grid, geo)
		return
	}
	drawTicks(grid, geo)
}

func hourAngle(i int) float64 {
	return float64(i) * 2 * math.Pi / 12
}

func drawNumerals(grid *Grid, geo Geometry) {
	dist := float64(geo.Radius) * numeralRadius
	for i, numeral := range romanNumerals {
		x, y := geo.Polar(hourAngle(i), dist)
		shift := (len(numeral) - 1) / 2
		for j, ch := range numeral {
			grid.SetIfEmpty(x+j-shift, y, ch, NumeralOrTick)
		}
	}
}

func drawTicks(grid *Grid, geo Geometry) {
	dist := float64(geo.Radius) * tickRadius
	for i := 0; i < 12; i++ {
		x, y := geo.Polar(hourAngle(i), dist)
		grid.SetIfEmpty(x, y, tickChar, NumeralOrTick)
	}
}

// drawHands draws hour, minute, then second, so later hands win overlaps.
func drawHands(grid *Grid, geo Geometry, s Sample) {
	hourLen, minuteLen, secondLen := geo.HandLengths()
	hands := []struct {
		angle  float64
		length int
		ch     rune
		cat    Category
	}{
		{s.HourAngle(), hourLen, hourChar, HourHand},
		{s.MinuteAngle(), minuteLen, minuteChar, MinuteHand},
		{s.SecondAngle(), secondLen, secondChar, SecondHand},
	}

	for _, hand := range hands {
		x, y := geo.Polar(hand.angle, float64(hand.length))
		DrawLine(grid, geo.CX, geo.CY, x, y, hand.ch, hand.cat)
	}
}
