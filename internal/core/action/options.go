package action

import "github.com/bethropolis/quill/internal/core/history"

// Option configures an Engine during creation.
type Option func(*Engine)

// WithHistoryCapacity bounds the undo and redo lists.
func WithHistoryCapacity(capacity int) Option {
	return func(e *Engine) {
		if capacity > 0 {
			e.capacity = capacity
		}
	}
}

// WithWordStops replaces the characters that end a word scan.
func WithWordStops(stops StopSet) Option {
	return func(e *Engine) {
		if stops != "" {
			e.wordStops = stops
		}
	}
}

// WithSentenceStops replaces the characters that end a sentence scan.
func WithSentenceStops(stops StopSet) Option {
	return func(e *Engine) {
		if stops != "" {
			e.sentenceStops = stops
		}
	}
}

func defaults() []Option {
	return []Option{
		WithHistoryCapacity(history.DefaultCapacity),
		WithWordStops(DefaultWordStops),
		WithSentenceStops(DefaultSentenceStops),
	}
}
