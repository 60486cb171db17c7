// Package oracle wraps the remote text-completion service used as a
// fallback command classifier. The interface is deliberately narrow so
// tests can swap in a deterministic stub.
package oracle

import "context"

// Client sends a prompt to a text-completion service and returns its
// raw reply. Any transport, timeout, or service error is returned as-is;
// callers are expected to degrade gracefully.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
