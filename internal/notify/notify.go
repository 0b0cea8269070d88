// Package notify holds the one-shot lead notification senders: an email to the
// operators, an auto-reply to the submitter, and a chat-bot message. Senders
// share no state; each attempt either succeeds or fails on its own.
package notify

import (
	"context"

	"paradise/internal/domain"
)

// Sender delivers one notification about a freshly persisted lead.
type Sender interface {
	Name() string
	Send(ctx context.Context, lead *domain.Lead) error
}
