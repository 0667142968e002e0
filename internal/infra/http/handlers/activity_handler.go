package handlers

import (
	"net/http"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/store"
)

type ActivityHandler struct {
	Activities *store.ActivityStore
}

func NewActivityHandler(activities *store.ActivityStore) *ActivityHandler {
	return &ActivityHandler{Activities: activities}
}

// HandleList serves the feed most-recent-first, the order the store keeps.
func (h *ActivityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Activities.List())
}
