package webhook

import (
	"context"
	"encoding/xml"
	"net/http"

	"bookingbot-service/pkg/logger"

	"github.com/google/uuid"
)

// MessageHandler is the conversation entry point the webhook drives.
type MessageHandler interface {
	HandleMessage(ctx context.Context, phone, text string) string
}

// Handler terminates the Twilio-style WhatsApp webhook: it reads the
// From/Body form fields, runs the conversation and wraps the reply in a
// TwiML envelope.
type Handler struct {
	conversation MessageHandler
	limiter      *PhoneLimiter
	logger       logger.Logger
}

// NewHandler creates a new webhook handler.
func NewHandler(conversation MessageHandler, limiter *PhoneLimiter, log logger.Logger) *Handler {
	return &Handler{
		conversation: conversation,
		limiter:      limiter,
		logger:       log,
	}
}

// Register mounts the webhook route on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/whatsapp", h.handleInbound)
}

// twimlResponse is the messaging-response envelope Twilio expects.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func (h *Handler) handleInbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	phone := r.PostFormValue("From")
	body := r.PostFormValue("Body")
	if phone == "" {
		http.Error(w, "missing From", http.StatusBadRequest)
		return
	}

	log := h.logger.With("requestId", uuid.NewString(), "phone", phone)

	if h.limiter != nil && !h.limiter.Allow(phone) {
		log.Warn("Rate limit exceeded")
		http.Error(w, "rate limit exceeded, try again later", http.StatusTooManyRequests)
		return
	}

	log.Info("Inbound message", "chars", len(body))
	reply := h.conversation.HandleMessage(r.Context(), phone, body)

	if err := writeTwiML(w, reply); err != nil {
		log.Error("Failed to write reply", "error", err)
	}
}

func writeTwiML(w http.ResponseWriter, reply string) error {
	w.Header().Set("Content-Type", "application/xml")
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(twimlResponse{Message: reply})
}
