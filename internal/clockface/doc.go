// Package clockface rasterizes an analog clock onto a character grid.
//
// A frame is produced in four passes over a freshly allocated Grid:
//
//   - the circle outline, approximated by a distance tolerance
//   - hour markers (Roman numerals on wide areas, ticks otherwise)
//   - the hour, minute, and second hands, drawn in that order
//   - a styling pass that maps each cell's Category to a color
//
// Terminal cells are roughly twice as tall as they are wide, so every
// vertical distance is scaled by AspectRatio before use.
//
// Rasterize and Render are pure functions of the area, the instant, and
// the color flag. Nothing is retained between frames.
package clockface
