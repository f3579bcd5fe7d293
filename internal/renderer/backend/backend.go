// Package backend provides the terminal display surface for the clock.
package backend

import (
	"context"

	"github.com/dshills/asciiclock/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// IsRune reports whether the event is a key press of r.
func (e Event) IsRune(r rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Rune == r
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the clock distinguishes.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyOther
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// It is safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// Sync forces a full repaint, used after the terminal was resized.
	Sync()

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for the next terminal event until ctx is done.
	// The boolean is false when no event arrived.
	PollEvent(ctx context.Context) (Event, bool)

	// Colors returns the number of colors the display can show.
	// Monochrome displays report 0 or 1.
	Colors() int
}

// defaultNullColors is the palette size a NullBackend reports until
// SetColors is called.
const defaultNullColors = 256

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorVisible bool
	colors        int
	events        chan Event

	// Counters for tests.
	Inits, Shutdowns, Shows, Syncs int

	// InitErr, when set, is returned from Init.
	InitErr error
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:         width,
		height:        height,
		cursorVisible: true,
		colors:        defaultNullColors,
		events:        make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.Inits++
	if b.InitErr != nil {
		return b.InitErr
	}
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() { b.Shutdowns++ }

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position.
// Returns an empty cell for positions outside the surface.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show()       { b.Shows++ }
func (b *NullBackend) Sync()       { b.Syncs++ }
func (b *NullBackend) HideCursor() { b.cursorVisible = false }

func (b *NullBackend) PollEvent(ctx context.Context) (Event, bool) {
	select {
	case ev := <-b.events:
		return ev, true
	case <-ctx.Done():
		return Event{}, false
	}
}

// PostEvent queues an event for PollEvent. It drops the event if the
// queue is full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

func (b *NullBackend) Colors() int { return b.colors }

// SetColors changes the number of colors the backend reports.
func (b *NullBackend) SetColors(n int) { b.colors = n }

// CursorVisible reports whether the cursor is shown.
func (b *NullBackend) CursorVisible() bool {
	return b.cursorVisible
}

// Row returns the characters of row y as a string.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return core.StringFromCells(b.cells[y])
}

// Resize simulates a terminal resize for testing. It clears the surface
// and queues a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
