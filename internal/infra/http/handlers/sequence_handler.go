package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/store"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/usecase"
)

type SequenceHandler struct {
	Sequences *store.SequenceStore
	CreateUC  *usecase.CreateSequenceUseCase
	StatusUC  *usecase.SetSequenceStatusUseCase
}

func NewSequenceHandler(sequences *store.SequenceStore, createUC *usecase.CreateSequenceUseCase, statusUC *usecase.SetSequenceStatusUseCase) *SequenceHandler {
	return &SequenceHandler{
		Sequences: sequences,
		CreateUC:  createUC,
		StatusUC:  statusUC,
	}
}

func (h *SequenceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Sequences.List())
}

func (h *SequenceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateSequenceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	seq, err := h.CreateUC.Execute(input)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrMissingRecipient):
			writeError(w, http.StatusBadRequest, "Please enter a lead email to schedule the sequence.")
		case errors.Is(err, entity.ErrNoSteps), errors.Is(err, entity.ErrTooManySteps):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create sequence")
		}
		return
	}

	writeJSON(w, http.StatusCreated, seq)
}

func (h *SequenceHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.SequenceStatusActive)
}

func (h *SequenceHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.SequenceStatusPaused)
}

func (h *SequenceHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.SequenceStatusStopped)
}

func (h *SequenceHandler) setStatus(w http.ResponseWriter, r *http.Request, status entity.SequenceStatus) {
	id := chi.URLParam(r, "id")

	seq, err := h.StatusUC.Execute(id, status)
	if err != nil {
		writeError(w, http.StatusNotFound, "Sequence not found")
		return
	}

	writeJSON(w, http.StatusOK, seq)
}
