package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcherInvokesSubscribedHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventUserRegistered, func(_ context.Context, event Event) error {
		seen = append(seen, event.Subject)
		return nil
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, event Event) error {
		seen = append(seen, event.Subject+"-second")
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventUserRegistered,
		Subject:   "new@example.com",
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("handlers invoked = %d, want 2", len(seen))
	}
	if seen[0] != "new@example.com" || seen[1] != "new@example.com-second" {
		t.Errorf("unexpected handler order: %v", seen)
	}
}

func TestDispatcherIgnoresUnrelatedEvents(t *testing.T) {
	d := NewInMemoryDispatcher()

	invoked := false
	d.Subscribe(EventPasswordChanged, func(context.Context, Event) error {
		invoked = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserRegistered}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if invoked {
		t.Error("handler for a different event type should not run")
	}
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventEmailVerified, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventEmailVerified, func(context.Context, Event) error {
		reached = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventEmailVerified}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !reached {
		t.Error("later handlers should run despite earlier errors")
	}
}
