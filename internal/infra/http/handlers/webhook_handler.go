package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/store"
)

// WebhookHandler receives sequence-send callbacks (the same payload shape the
// scheduler posts outbound) and turns them into feed entries. Lets the
// service act as its own delivery endpoint in local setups.
type WebhookHandler struct {
	Activities *store.ActivityStore
}

func NewWebhookHandler(activities *store.ActivityStore) *WebhookHandler {
	return &WebhookHandler{Activities: activities}
}

type webhookRequest struct {
	To         string `json:"to"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	SequenceID string `json:"sequenceId"`
	StepIndex  int    `json:"stepIndex"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.To == "" || req.Subject == "" {
		writeError(w, http.StatusBadRequest, "missing to or subject")
		return
	}

	log.Printf("📥 [WEBHOOK] send callback: to=%s sequence=%s step=%d subject=%s",
		req.To, req.SequenceID, req.StepIndex, req.Subject)

	h.Activities.Record(entity.ActivityInput{
		Action:   entity.ActivityEmailed,
		UserName: fmt.Sprintf("sequence %s", req.SequenceID),
		LeadName: req.To,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true, "queued": true})
}
