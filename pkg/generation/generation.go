// Package generation issues monotonically increasing request tokens so a view
// can discard responses that were superseded while in flight.
package generation

import "sync/atomic"

// Token identifies one issued request. The zero Token is never issued.
type Token uint64

// Counter issues tokens for a single view. The zero value is ready to use.
type Counter struct {
	latest atomic.Uint64
}

// Next issues a new token, superseding every token issued before it.
func (c *Counter) Next() Token {
	return Token(c.latest.Add(1))
}

// Latest returns the most recently issued token.
func (c *Counter) Latest() Token {
	return Token(c.latest.Load())
}

// Current reports whether t is still the latest issued token.
func (c *Counter) Current(t Token) bool {
	return c.latest.Load() == uint64(t)
}
