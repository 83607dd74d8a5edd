package application

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of a conversation handed to a Completer.
type Turn struct {
	Role Role
	Text string
}

// Completer produces the next assistant message for a conversation that
// starts with the given system instruction.
type Completer interface {
	Complete(ctx context.Context, system string, turns []Turn, maxTokens int) (string, error)
}
