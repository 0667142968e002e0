package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/http/middleware"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/notify"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/webhook"
)

// DefaultUnit is the fixed interval between step dispatches. The step's
// DelayDays field is declared spacing only; dispatch cadence stays on this
// unit (the original behaved the same way, 10s between emails).
const DefaultUnit = 10 * time.Second

type DeliveryClient interface {
	SendStep(ctx context.Context, payload webhook.StepPayload) error
}

// SequenceScheduler fires one delivery per step at i*unit after Schedule.
// Start order is guaranteed by the timers; completion order is whatever the
// network gives us. A failed step is reported and forgotten, siblings keep
// their slots.
type SequenceScheduler struct {
	delivery DeliveryClient
	notifier notify.Notifier
	unit     time.Duration

	mu      sync.Mutex
	pending map[string]*ScheduledSequence
}

func NewSequenceScheduler(delivery DeliveryClient, notifier notify.Notifier, unit time.Duration) *SequenceScheduler {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return &SequenceScheduler{
		delivery: delivery,
		notifier: notifier,
		unit:     unit,
		pending:  make(map[string]*ScheduledSequence),
	}
}

// ScheduledSequence is the cancellable handle for one scheduled run. Each
// step holds its own timer so a stop can reach the ones that have not fired.
type ScheduledSequence struct {
	SequenceID string

	mu        sync.Mutex
	timers    []*time.Timer
	remaining int
	cancelled bool
	done      chan struct{}
}

// Done closes once every step has either completed or been cancelled.
func (ss *ScheduledSequence) Done() <-chan struct{} {
	return ss.done
}

// Cancel stops every step that has not fired yet. Steps already in flight
// run to completion.
func (ss *ScheduledSequence) Cancel() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.cancelled {
		return 0
	}
	ss.cancelled = true

	stopped := 0
	for _, t := range ss.timers {
		if t.Stop() {
			stopped++
		}
	}

	ss.remaining -= stopped
	if ss.remaining <= 0 {
		close(ss.done)
	}
	return stopped
}

func (ss *ScheduledSequence) stepFinished() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.remaining--
	if ss.remaining <= 0 {
		close(ss.done)
	}
}

// Schedule validates the run and arms one timer per step. It never blocks on
// delivery; outcomes surface through the notifier.
func (s *SequenceScheduler) Schedule(sequenceID, recipient string, steps []entity.EmailStep) (*ScheduledSequence, error) {
	if recipient == "" {
		s.notifier.Notify(notify.Notification{
			Title:       "Missing recipient",
			Description: "Please enter a lead email to schedule the sequence.",
			Severity:    notify.SeverityDestructive,
		})
		return nil, entity.ErrMissingRecipient
	}

	if err := entity.ValidateSteps(steps); err != nil {
		return nil, err
	}

	run := &ScheduledSequence{
		SequenceID: sequenceID,
		remaining:  len(steps),
		done:       make(chan struct{}),
	}

	for i, step := range steps {
		idx := i
		st := step
		delay := time.Duration(idx) * s.unit

		timer := time.AfterFunc(delay, func() {
			defer run.stepFinished()
			s.fire(sequenceID, recipient, idx, st)
		})
		run.timers = append(run.timers, timer)
	}

	s.mu.Lock()
	s.pending[sequenceID] = run
	s.mu.Unlock()

	// Drop the handle from the index once the run settles.
	go func() {
		<-run.done
		s.mu.Lock()
		delete(s.pending, sequenceID)
		s.mu.Unlock()
	}()

	log.Printf("📬 [SCHEDULER] %d step(s) armed for %s (unit %s)", len(steps), recipient, s.unit)
	return run, nil
}

// Cancel stops the pending steps of a scheduled run, if one is still live.
func (s *SequenceScheduler) Cancel(sequenceID string) int {
	s.mu.Lock()
	run, ok := s.pending[sequenceID]
	s.mu.Unlock()

	if !ok {
		return 0
	}

	stopped := run.Cancel()
	if stopped > 0 {
		log.Printf("🛑 [SCHEDULER] cancelled %d pending step(s) of sequence %s", stopped, sequenceID)
	}
	return stopped
}

func (s *SequenceScheduler) fire(sequenceID, recipient string, idx int, step entity.EmailStep) {
	payload := webhook.StepPayload{
		To:         recipient,
		Subject:    step.Subject,
		Body:       step.Body,
		SequenceID: sequenceID,
		StepIndex:  idx + 1,
	}

	s.notifier.Notify(notify.Notification{
		Title:       fmt.Sprintf("Sending email %d", idx+1),
		Description: fmt.Sprintf("Attempting to queue email %d to %s...", idx+1, recipient),
		Severity:    notify.SeverityInfo,
	})

	err := s.delivery.SendStep(context.Background(), payload)
	if err == nil {
		middleware.RecordEmailDispatched("queued")
		s.notifier.Notify(notify.Notification{
			Title:       "Email queued",
			Description: fmt.Sprintf("Email %d queued to %s.", idx+1, recipient),
			Severity:    notify.SeverityInfo,
		})
		return
	}

	var statusErr *webhook.StatusError
	if errors.As(err, &statusErr) {
		middleware.RecordEmailDispatched("failed")
		log.Printf("❌ [SCHEDULER] webhook rejected email %d: %v", idx+1, err)
		s.notifier.Notify(notify.Notification{
			Title:       "Webhook failed",
			Description: fmt.Sprintf("Email %d could not be sent. %d %s", idx+1, statusErr.Code, statusErr.Body),
			Severity:    notify.SeverityDestructive,
		})
		return
	}

	middleware.RecordEmailDispatched("error")
	log.Printf("❌ [SCHEDULER] webhook call failed for email %d: %v", idx+1, err)
	s.notifier.Notify(notify.Notification{
		Title:       "Error",
		Description: fmt.Sprintf("Failed to call webhook for email %d. %v", idx+1, err),
		Severity:    notify.SeverityDestructive,
	})
}
