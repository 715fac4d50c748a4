package prompts

import "errors"

// ErrInvalidStrategy indicates a strategy outside the closed set.
var ErrInvalidStrategy = errors.New("strategy must be DEFAULT, COST, UNIQUE, QUALITY, or CUSTOM")
