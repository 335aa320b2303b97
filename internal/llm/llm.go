// Package llm wraps the three upstream AI services the conversation flow
// proxies: speech-to-text, chat completion and text-to-speech. Each is a
// one-method interface so handlers can be tested without network calls.
package llm

import (
	"context"
	"io"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is one entry of the caller-managed conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Synthesizer returns a finite, single-pass audio stream for the given text.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
}

// Trim keeps the most recent n turns.
func Trim(history []Turn, n int) []Turn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
