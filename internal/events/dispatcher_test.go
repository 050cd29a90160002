package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	var got []string
	d.Subscribe(EventTicketEscalated, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.TicketID)
		return nil
	})
	d.Subscribe(EventTicketEscalated, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.TicketID)
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketEscalated, TicketID: "t-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(got) != 2 || got[0] != "first:t-1" || got[1] != "second:t-1" {
		t.Fatalf("unexpected handler calls: %v", got)
	}
}

func TestPublishContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	var secondCalled bool
	d.Subscribe(EventFeedbackReceived, func(_ context.Context, _ Event) error {
		return errors.New("webhook down")
	})
	d.Subscribe(EventFeedbackReceived, func(_ context.Context, _ Event) error {
		secondCalled = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventFeedbackReceived, TicketID: "t-2"}); err != nil {
		t.Fatalf("handler failures must not surface to the publisher: %v", err)
	}
	if !secondCalled {
		t.Fatal("a failing handler must not block later handlers")
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	if err := d.Publish(context.Background(), Event{Type: EventTicketSubmitted}); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}
