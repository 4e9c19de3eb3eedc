// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/core/action"
	"github.com/bethropolis/quill/internal/core/clipboard"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/journal"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/tui"
)

// Options configures a new App.
type Options struct {
	Config *config.Config
	Day    time.Time     // Day opened first; zero means today
	Store  journal.Store // nil means an in-memory store
	Screen tcell.Screen  // nil means the real terminal
}

// App wires the journal, the editing session and the terminal together.
//
// Terminal events are read on their own goroutine and handed to Run over a
// channel, so the editing session is only ever touched from Run's goroutine.
type App struct {
	tuiManager     *tui.TUI
	editor         *core.Editor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	store          journal.Store
	day            time.Time

	quit          chan struct{}
	events        chan tcell.Event
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	var tuiManager *tui.TUI
	var err error
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen)
	} else {
		tuiManager, err = tui.New()
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	editor := core.NewEditor(buffer.NewSliceBuffer(),
		action.WithHistoryCapacity(cfg.Editor.HistoryCapacity),
		action.WithWordStops(action.StopSet(cfg.Editor.WordStops)),
		action.WithSentenceStops(action.StopSet(cfg.Editor.SentenceStops)),
	)
	editor.ScrollOff = cfg.Editor.ScrollOff
	editor.TabWidth = cfg.Editor.TabWidth
	editor.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))

	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	th, err := theme.Load(cfg.Editor.Theme)
	if err != nil {
		logger.Warnf("App: %v, using %s", err, theme.QuillDark.Name)
		th = theme.QuillDark
	}
	tuiManager.SetStyles(tuiStyles(th))

	store := opts.Store
	if store == nil {
		store = journal.NewMemoryStore()
	}
	day := opts.Day
	if day.IsZero() {
		day = time.Now()
	}

	a := &App{
		tuiManager:     tuiManager,
		editor:         editor,
		statusBar:      statusbar.New(statusBarConfig(th)),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		store:          store,
		quit:           make(chan struct{}),
		events:         make(chan tcell.Event),
		redrawRequest:  make(chan struct{}, 1),
	}

	eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModifiedForStatus)
	eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChangedForStatus)
	eventManager.Subscribe(event.TypeDocumentSwitched, a.handleDocumentSwitchedForStatus)

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height-config.StatusBarHeight)
	a.openDay(day)

	logger.Infof("App: session %s ready on %s", editor.ID(), a.editor.DocumentKey())
	return a, nil
}

// Editor returns the editing session.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// Run starts the application's main loop. It returns after a quit key.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Quill - Ctrl+PgUp/PgDn Day | Ctrl+Z Undo | Ctrl+Y Redo | Esc Quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.saveDay()
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("App: exiting")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop forwards terminal events to Run until the screen is finalized.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent reacts to one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		w, h := a.tuiManager.Size()
		a.editor.SetViewSize(w, h-config.StatusBarHeight)
		return true
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false
}

// handleKey performs the action bound to a key press.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	act := a.inputProcessor.ProcessEvent(ev)
	switch act.Action {
	case input.ActionQuit:
		a.requestQuit()
		return false

	case input.ActionEdit:
		changed, err := a.editor.Perform(act.Intent)
		if err != nil {
			logger.Errorf("App: %v", err)
			a.statusBar.SetTemporaryMessage("Error: %v", err)
			return true
		}
		return changed

	case input.ActionCopy:
		if a.editor.Copy() {
			a.statusBar.SetTemporaryMessage("Copied")
			return true
		}
	case input.ActionCut:
		if a.editor.Copy() {
			_, err := a.editor.Perform(action.Backspace())
			if err != nil {
				logger.Errorf("App: cut: %v", err)
			}
			return true
		}
	case input.ActionPaste:
		changed, err := a.editor.PasteClipboard()
		if err != nil {
			logger.Errorf("App: paste: %v", err)
			a.statusBar.SetTemporaryMessage("Error: %v", err)
			return true
		}
		return changed

	case input.ActionPrevDay:
		a.switchDay(a.day.AddDate(0, 0, -1))
		return true
	case input.ActionNextDay:
		a.switchDay(a.day.AddDate(0, 0, 1))
		return true
	case input.ActionToday:
		a.switchDay(time.Now())
		return true
	}
	return false
}

// requestQuit closes the quit channel once.
func (a *App) requestQuit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
