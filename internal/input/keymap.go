// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/action"
	"github.com/bethropolis/quill/internal/logger"
)

// binding is a key together with the modifiers that matter for lookups.
type binding struct {
	key tcell.Key
	mod tcell.ModMask
}

// Keymap maps key presses to actions.
type Keymap map[binding]ActionEvent

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap Keymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{keymap: make(Keymap)}
	p.loadDefaultBindings()
	return p
}

// Bind adds or replaces a binding.
func (p *InputProcessor) Bind(key tcell.Key, mod tcell.ModMask, ev ActionEvent) {
	p.keymap[binding{key: key, mod: mod}] = ev
}

func (p *InputProcessor) loadDefaultBindings() {
	const (
		none  = tcell.ModNone
		shift = tcell.ModShift
		ctrl  = tcell.ModCtrl
	)

	// --- Motions, Shift extends the selection ---
	motions := map[tcell.Key]buffer.Motion{
		tcell.KeyLeft:  buffer.MotionLeft,
		tcell.KeyRight: buffer.MotionRight,
		tcell.KeyUp:    buffer.MotionUp,
		tcell.KeyDown:  buffer.MotionDown,
		tcell.KeyHome:  buffer.MotionLineStart,
		tcell.KeyEnd:   buffer.MotionLineEnd,
	}
	for key, m := range motions {
		p.Bind(key, none, edit(action.Move(m, false)))
		p.Bind(key, shift, edit(action.Move(m, true)))
	}
	p.Bind(tcell.KeyHome, ctrl, edit(action.Move(buffer.MotionDocStart, false)))
	p.Bind(tcell.KeyHome, ctrl|shift, edit(action.Move(buffer.MotionDocStart, true)))
	p.Bind(tcell.KeyEnd, ctrl, edit(action.Move(buffer.MotionDocEnd, false)))
	p.Bind(tcell.KeyEnd, ctrl|shift, edit(action.Move(buffer.MotionDocEnd, true)))

	// --- Editing ---
	p.Bind(tcell.KeyEnter, none, edit(action.Enter()))
	p.Bind(tcell.KeyTab, none, edit(action.Insert('\t')))
	p.Bind(tcell.KeyDelete, none, edit(action.Delete()))
	p.Bind(tcell.KeyDelete, ctrl, edit(action.DeleteWord()))
	p.Bind(tcell.KeyDelete, ctrl|shift, edit(action.DeleteSentence()))
	// Terminals disagree on which code Backspace sends, so both behave alike.
	for _, key := range []tcell.Key{tcell.KeyBackspace, tcell.KeyBackspace2} {
		p.Bind(key, none, edit(action.Backspace()))
		p.Bind(key, ctrl, edit(action.BackspaceWord()))
		p.Bind(key, ctrl|shift, edit(action.BackspaceSentence()))
	}
	p.Bind(tcell.KeyCtrlW, none, edit(action.BackspaceWord()))

	// --- History ---
	p.Bind(tcell.KeyCtrlZ, none, edit(action.Undo()))
	p.Bind(tcell.KeyCtrlZ, shift, edit(action.Redo()))
	p.Bind(tcell.KeyCtrlY, none, edit(action.Redo()))

	// --- Clipboard ---
	p.Bind(tcell.KeyCtrlC, none, ActionEvent{Action: ActionCopy})
	p.Bind(tcell.KeyCtrlX, none, ActionEvent{Action: ActionCut})
	p.Bind(tcell.KeyCtrlV, none, ActionEvent{Action: ActionPaste})

	// --- Journal ---
	p.Bind(tcell.KeyPgUp, ctrl, ActionEvent{Action: ActionPrevDay})
	p.Bind(tcell.KeyPgDn, ctrl, ActionEvent{Action: ActionNextDay})
	p.Bind(tcell.KeyCtrlT, none, ActionEvent{Action: ActionToday})

	p.Bind(tcell.KeyEscape, none, ActionEvent{Action: ActionQuit})
	p.Bind(tcell.KeyCtrlQ, none, ActionEvent{Action: ActionQuit})
}

// impliesCtrl reports whether the key code itself already carries Ctrl.
// Backspace, Tab and Enter share codes with Ctrl+H, Ctrl+I and Ctrl+M but
// are typed without Ctrl.
func impliesCtrl(key tcell.Key) bool {
	switch key {
	case tcell.KeyBackspace, tcell.KeyTab, tcell.KeyEnter:
		return false
	}
	return key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers() & (tcell.ModCtrl | tcell.ModShift | tcell.ModAlt)
	if impliesCtrl(key) {
		mod &^= tcell.ModCtrl
	}

	if bound, ok := p.keymap[binding{key: key, mod: mod}]; ok {
		return bound
	}

	// Plain runes are typed text. Shift may accompany capitals and symbols.
	if key == tcell.KeyRune && mod&^tcell.ModShift == 0 {
		return edit(action.Insert(ev.Rune()))
	}

	logger.DebugTagf("input", "unbound key %s", ev.Name())
	return ActionEvent{Action: ActionUnknown}
}
