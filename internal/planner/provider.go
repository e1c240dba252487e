package planner

import "context"

// Completer is the minimal contract the generation pipeline needs from an
// upstream model provider: one instruction in, one free-text completion out.
type Completer interface {
	Complete(ctx context.Context, instruction string) (string, error)
}
