package backend

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/asciiclock/internal/renderer/core"
)

// eventQueueSize bounds the events buffered between the pump goroutine
// and PollEvent.
const eventQueueSize = 64

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	events chan Event
	done   chan struct{}
	mu     sync.Mutex

	started  bool
	shutdown sync.Once
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan Event, eventQueueSize),
		done:   make(chan struct{}),
	}
}

// Init enters raw mode and the alternate screen and starts delivering
// events.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.started = true

	go t.pump()
	return nil
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		e := convertEvent(ev)
		if e.Type == EventNone {
			continue
		}
		select {
		case t.events <- e:
		case <-t.done:
			return
		}
	}
}

// Shutdown restores the terminal. Only the first call has an effect.
func (t *Terminal) Shutdown() {
	t.shutdown.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		close(t.done)
		if t.started {
			t.screen.Fini()
		}
	})
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Sync()
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent(ctx context.Context) (Event, bool) {
	select {
	case ev := <-t.events:
		return ev, true
	case <-t.done:
		return Event{}, false
	case <-ctx.Done():
		return Event{}, false
	}
}

func (t *Terminal) Colors() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Colors()
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))
}

func convertColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c.Index))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyCtrlC:
		return KeyCtrlC
	default:
		return KeyOther
	}
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}
