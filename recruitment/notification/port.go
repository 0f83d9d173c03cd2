package notification

import "context"

// Message is one outbound HTML email
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer delivers a single message. Delivery is best-effort, a transport
// failure aborts the notification without retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
