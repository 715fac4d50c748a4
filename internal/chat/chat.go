// Package chat holds advisor conversations: append-only transcripts where at
// most one turn is in flight per session.
package chat

import (
	"errors"
	"net/http"
	"time"

	"github.com/JaimeStill/drinkchain/internal/synthesis"
)

const (
	// Greeting seeds every new session as the first model message.
	Greeting = "你好！我是您的供应链AI参谋。想了解最近什么原料最火，或者哪里能买到优质茶叶吗？"
	// Apology replaces the reply when the backend call fails.
	Apology = "抱歉，暂时无法连接到分析服务器。请稍后再试。"
)

// Domain errors for chat operations.
var (
	ErrBusy         = errors.New("a reply is still pending")
	ErrEmptyMessage = errors.New("message text is empty")
	ErrNotFound     = errors.New("chat session not found")
)

// Message is one transcript entry.
type Message struct {
	ID        string         `json:"id"`
	Role      synthesis.Role `json:"role"`
	Text      string         `json:"text"`
	Timestamp time.Time      `json:"timestamp"`
}

// Snapshot is a point-in-time copy of a session.
type Snapshot struct {
	ID         string    `json:"id"`
	Awaiting   bool      `json:"awaiting"`
	Transcript []Message `json:"transcript"`
}

// MapHTTPStatus maps chat domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBusy):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyMessage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
