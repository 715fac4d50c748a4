// Package synthesis is the boundary adapter to the generative backend. Each
// request kind is one call that returns exactly one payload or one of two
// errors: ErrUnreachable or contract.ErrUnparseable. Calls are never retried.
package synthesis

import (
	"context"
	"errors"

	"github.com/JaimeStill/drinkchain/internal/contract"
)

var (
	// ErrUnreachable indicates a transport or backend failure.
	ErrUnreachable = errors.New("synthesis backend unreachable")
	// ErrUnparseable indicates an empty or malformed payload.
	ErrUnparseable = contract.ErrUnparseable
)

// Role tags a transcript turn.
type Role string

// Transcript roles understood by the backend.
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one role-tagged transcript entry.
type Turn struct {
	Role Role
	Text string
}

// Client issues synthesis requests.
type Client interface {
	// SynthesizeTrends returns the raw JSON trend analysis for a directive.
	SynthesizeTrends(ctx context.Context, directive string) (string, error)
	// SynthesizeSupply returns the raw JSON listing array for a category and directive.
	SynthesizeSupply(ctx context.Context, category, directive string) (string, error)
	// Converse returns the advisor's reply to message given the prior transcript.
	Converse(ctx context.Context, transcript []Turn, message string) (string, error)
}

type offline struct{}

// Offline returns a client whose every call fails with ErrUnreachable.
// It stands in when no backend credentials are configured.
func Offline() Client {
	return offline{}
}

func (offline) SynthesizeTrends(context.Context, string) (string, error) {
	return "", ErrUnreachable
}

func (offline) SynthesizeSupply(context.Context, string, string) (string, error) {
	return "", ErrUnreachable
}

func (offline) Converse(context.Context, []Turn, string) (string, error) {
	return "", ErrUnreachable
}
