package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bookingbot-service/pkg/logger"
)

type echoConversation struct {
	lastPhone string
	lastText  string
}

func (e *echoConversation) HandleMessage(_ context.Context, phone, text string) string {
	e.lastPhone = phone
	e.lastText = text
	return "Nice to meet you, <" + text + ">!"
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func newTestMux(conv MessageHandler, limiter *PhoneLimiter) *http.ServeMux {
	mux := http.NewServeMux()
	NewHandler(conv, limiter, logger.NewNop()).Register(mux)
	return mux
}

func TestInboundMessageProducesTwiML(t *testing.T) {
	conv := &echoConversation{}
	mux := newTestMux(conv, nil)

	rec := postForm(t, mux, url.Values{
		"From": {"whatsapp:+4912345"},
		"Body": {"dave"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml" {
		t.Fatalf("content type = %q, want application/xml", ct)
	}
	if conv.lastPhone != "whatsapp:+4912345" || conv.lastText != "dave" {
		t.Fatalf("conversation got (%q, %q)", conv.lastPhone, conv.lastText)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<Response><Message>") {
		t.Fatalf("body is not a TwiML envelope: %q", body)
	}
	// Reply text must be XML-escaped inside the envelope.
	if !strings.Contains(body, "&lt;dave&gt;") {
		t.Fatalf("reply not escaped: %q", body)
	}
}

func TestInboundRejectsNonPost(t *testing.T) {
	mux := newTestMux(&echoConversation{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/whatsapp", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestInboundRequiresFromField(t *testing.T) {
	mux := newTestMux(&echoConversation{}, nil)

	rec := postForm(t, mux, url.Values{"Body": {"hello"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestInboundMissingBodyIsEmptyMessage(t *testing.T) {
	conv := &echoConversation{lastText: "sentinel"}
	mux := newTestMux(conv, nil)

	rec := postForm(t, mux, url.Values{"From": {"+1"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if conv.lastText != "" {
		t.Fatalf("conversation got %q, want empty message", conv.lastText)
	}
}

func TestInboundThrottlesPerPhone(t *testing.T) {
	mux := newTestMux(&echoConversation{}, NewPhoneLimiter(1, 1))

	first := postForm(t, mux, url.Values{"From": {"+1"}, "Body": {"hi"}})
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", first.Code)
	}

	second := postForm(t, mux, url.Values{"From": {"+1"}, "Body": {"hi"}})
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", second.Code)
	}

	// A different phone number has its own budget.
	other := postForm(t, mux, url.Values{"From": {"+2"}, "Body": {"hi"}})
	if other.Code != http.StatusOK {
		t.Fatalf("other phone status = %d, want 200", other.Code)
	}
}
