package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/http/middleware"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/notify"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/store"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/usecase"
)

type LeadHandler struct {
	Leads       *store.LeadStore
	ClaimUC     *usecase.ClaimLeadUseCase
	Notifier    notify.Notifier
	rateLimiter *RateLimiter
}

func NewLeadHandler(leads *store.LeadStore, claimUC *usecase.ClaimLeadUseCase, notifier notify.Notifier) *LeadHandler {
	return &LeadHandler{
		Leads:       leads,
		ClaimUC:     claimUC,
		Notifier:    notifier,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min per IP
	}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Leads.List())
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input entity.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if input.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	lead := h.Leads.Add(input)
	middleware.RecordLeadCreated()

	h.Notifier.Notify(notify.Notification{
		Title:       "Lead added",
		Description: fmt.Sprintf("%s has been added successfully.", lead.Name),
		Severity:    notify.SeverityInfo,
	})

	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input entity.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.Leads.Update(id, input)
	if err != nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	h.Notifier.Notify(notify.Notification{
		Title:       "Lead updated",
		Description: fmt.Sprintf("%s has been updated successfully.", lead.Name),
		Severity:    notify.SeverityInfo,
	})

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Grab the name before the record goes away, the toast wants it.
	lead, err := h.Leads.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	if err := h.Leads.Remove(id); err != nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	h.Notifier.Notify(notify.Notification{
		Title:       "Lead deleted",
		Description: fmt.Sprintf("%s has been removed.", lead.Name),
		Severity:    notify.SeverityDestructive,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *LeadHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		UserName string `json:"user_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.ClaimUC.Execute(usecase.ClaimLeadInput{
		LeadID:   id,
		UserName: body.UserName,
	})
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, "Lead not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to claim lead")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
