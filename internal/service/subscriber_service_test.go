package service

import (
	"testing"

	"github.com/inkwell/internal/db"
)

func TestSubscribeDuplicateRejected(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSubscriberService(gdb)
	if _, err := svc.Subscribe("[email protected]"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if _, err := svc.Subscribe("[email protected]"); err != ErrAlreadySubscribed {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestResubscribeFlipsFlagWithoutDuplicate(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSubscriberService(gdb)
	if _, err := svc.Subscribe("[email protected]"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := svc.Unsubscribe("[email protected]"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}

	subscriber, err := svc.Subscribe("[email protected]")
	if err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if !subscriber.Subscribed {
		t.Fatalf("expected subscribed=true after resubscribe")
	}

	var count int64
	gdb.Model(&db.Subscriber{}).Where("email = ?", "[email protected]").Count(&count)
	if count != 1 {
		t.Fatalf("expected a single record, got %d", count)
	}
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSubscriberService(gdb)
	if _, err := svc.Subscribe("not-an-email"); err == nil {
		t.Fatalf("expected error for email without @")
	}
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSubscriberService(gdb)
	if err := svc.Unsubscribe("[email protected]"); err != ErrSubscriberNotFound {
		t.Fatalf("expected ErrSubscriberNotFound, got %v", err)
	}
}

func TestActiveEmailsExcludesUnsubscribed(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSubscriberService(gdb)
	for _, email := range []string{"[email protected]", "[email protected]", "[email protected]"} {
		if _, err := svc.Subscribe(email); err != nil {
			t.Fatalf("subscribe %s: %v", email, err)
		}
	}
	if err := svc.Unsubscribe("[email protected]"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}

	emails, err := svc.ActiveEmails()
	if err != nil {
		t.Fatalf("active emails: %v", err)
	}
	if len(emails) != 2 {
		t.Fatalf("expected 2 active emails, got %d: %v", len(emails), emails)
	}
	for _, email := range emails {
		if email == "[email protected]" {
			t.Fatalf("unsubscribed email leaked into active set")
		}
	}
}
