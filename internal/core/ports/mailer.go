package ports

import "context"

// Mailer is the outbound notification capability the signup flow depends on.
// The core never sees transport details or message markup; the SMTP adapter
// in infrastructure renders and delivers.
type Mailer interface {
	// SendVerificationCode delivers a one-time signup code to the candidate.
	SendVerificationCode(ctx context.Context, to, name, code string) error
	// SendWelcome delivers the post-verification welcome note. Best effort:
	// callers treat failures as non-fatal.
	SendWelcome(ctx context.Context, to, name string) error
}
