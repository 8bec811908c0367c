package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type stubMailer struct {
	mu          sync.Mutex
	codes       []string
	welcomes    []string
	codeErr     error
	welcomeSent chan string
}

func (m *stubMailer) SendVerificationCode(_ context.Context, to, _, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = append(m.codes, to+":"+code)
	return m.codeErr
}

func (m *stubMailer) SendWelcome(_ context.Context, to, _ string) error {
	m.mu.Lock()
	m.welcomes = append(m.welcomes, to)
	m.mu.Unlock()
	if m.welcomeSent != nil {
		m.welcomeSent <- to
	}
	return nil
}

func TestMailDispatcher_VerificationPassesThrough(t *testing.T) {
	wantErr := errors.New("smtp down")
	mailer := &stubMailer{codeErr: wantErr}
	d := NewMailDispatcher(2, mailer, zerolog.Nop())

	err := d.SendVerificationCode(context.Background(), "ada@example.com", "Ada", "123456")
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if len(mailer.codes) != 1 || mailer.codes[0] != "ada@example.com:123456" {
		t.Fatalf("codes = %v", mailer.codes)
	}
}

func TestMailDispatcher_WelcomeDeliveredAsync(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := &stubMailer{welcomeSent: make(chan string, 4)}
	d := NewMailDispatcher(4, mailer, zerolog.Nop())
	d.Start(ctx)

	if err := d.SendWelcome(context.Background(), "ada@example.com", "Ada"); err != nil {
		t.Fatalf("SendWelcome: %v", err)
	}

	select {
	case to := <-mailer.welcomeSent:
		if to != "ada@example.com" {
			t.Fatalf("delivered to %q", to)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("welcome mail never delivered")
	}
}

func TestMailDispatcher_SameRecipientStaysOrdered(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sent := make(chan string, 20)
	mailer := &stubMailer{welcomeSent: sent}
	d := NewMailDispatcher(4, mailer, zerolog.Nop())
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		if err := d.SendWelcome(context.Background(), "ada@example.com", "Ada"); err != nil {
			t.Fatalf("SendWelcome: %v", err)
		}
	}

	for i := 0; i < 10; i++ {
		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of 10 welcome mails delivered", i)
		}
	}
}
