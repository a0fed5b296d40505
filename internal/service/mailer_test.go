package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResendMailerSendsBearerRequest(t *testing.T) {
	var got resendEmailRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mailer := NewResendMailer("test-key", "Inkwell <[email protected]>")
	mailer.endpoint = server.URL

	if err := mailer.Send("[email protected]", "Hello", "<p>hi</p>"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if auth != "Bearer test-key" {
		t.Fatalf("expected bearer auth header, got %q", auth)
	}
	if len(got.To) != 1 || got.To[0] != "[email protected]" {
		t.Fatalf("unexpected recipients: %+v", got.To)
	}
	if got.Subject != "Hello" || got.HTML != "<p>hi</p>" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestResendMailerSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid to address"})
	}))
	defer server.Close()

	mailer := NewResendMailer("test-key", "")
	mailer.endpoint = server.URL

	err := mailer.Send("broken", "Hello", "")
	if err == nil {
		t.Fatalf("expected error from non-2xx response")
	}
}

func TestResendMailerRequiresAPIKey(t *testing.T) {
	mailer := NewResendMailer("", "")
	if err := mailer.Send("[email protected]", "s", "b"); err == nil {
		t.Fatalf("expected error when api key missing")
	}
}
