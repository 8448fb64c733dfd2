// Package mailer defines the outbound email contract. Delivery itself is an
// external collaborator; implementations live in infrastructure.
package mailer

import "context"

// Message is one outbound email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer sends notification emails. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
