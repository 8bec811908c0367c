package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/corphunt/corphunt-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
	sendTimeout    = 30 * time.Second
)

type welcomeJob struct {
	to   string
	name string
}

// MailDispatcher wraps a Mailer and moves welcome mail off the request path.
// Verification codes pass through synchronously because the signup flow needs
// their delivery result; welcome notes are queued to a fixed set of workers
// sharded by recipient, so mail to the same address stays ordered.
type MailDispatcher struct {
	mailer  ports.Mailer
	workers []chan welcomeJob
	log     zerolog.Logger
}

// NewMailDispatcher creates a MailDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		mailer:  mailer,
		workers: make([]chan welcomeJob, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan welcomeJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// SendVerificationCode delegates to the wrapped mailer unchanged.
func (d *MailDispatcher) SendVerificationCode(ctx context.Context, to, name, code string) error {
	return d.mailer.SendVerificationCode(ctx, to, name, code)
}

// SendWelcome enqueues the note for background delivery and returns
// immediately. If the recipient's worker queue is full, the note is dropped
// and logged rather than blocking account creation.
func (d *MailDispatcher) SendWelcome(_ context.Context, to, name string) error {
	job := welcomeJob{to: to, name: name}
	select {
	case d.workers[d.shardIndex(to)] <- job:
	default:
		d.log.Warn().Str("email", to).Msg("welcome mail queue full, dropping")
	}
	return nil
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *MailDispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan welcomeJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
			err := d.mailer.SendWelcome(sendCtx, job.to, job.name)
			cancel()
			if err != nil {
				d.log.Error().Err(err).
					Str("email", job.to).
					Int("worker_id", id).
					Msg("welcome mail failed")
			}
		}
	}
}
