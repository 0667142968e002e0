package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/entity"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/store"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/webhook"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/worker"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/usecase"
)

type capturingDelivery struct {
	mu      sync.Mutex
	start   time.Time
	offsets []time.Duration
	sent    []webhook.StepPayload
}

func (c *capturingDelivery) SendStep(ctx context.Context, payload webhook.StepPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offsets = append(c.offsets, time.Since(c.start))
	c.sent = append(c.sent, payload)
	return nil
}

func (c *capturingDelivery) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func newSequenceTestServer(unit time.Duration) (*httptest.Server, *store.SequenceStore, *capturingDelivery) {
	sequences := store.NewSequenceStore()
	notifier := &recordingNotifier{}
	delivery := &capturingDelivery{start: time.Now()}
	scheduler := worker.NewSequenceScheduler(delivery, notifier, unit)

	createUC := usecase.NewCreateSequenceUseCase(sequences, scheduler, notifier)
	statusUC := usecase.NewSetSequenceStatusUseCase(sequences, scheduler, notifier)
	h := NewSequenceHandler(sequences, createUC, statusUC)

	r := chi.NewRouter()
	r.Get("/sequences", h.HandleList)
	r.Post("/sequences", h.HandleCreate)
	r.Post("/sequences/{id}/start", h.HandleStart)
	r.Post("/sequences/{id}/pause", h.HandlePause)
	r.Post("/sequences/{id}/stop", h.HandleStop)

	return httptest.NewServer(r), sequences, delivery
}

func TestCreateSequenceEndToEnd(t *testing.T) {
	unit := 40 * time.Millisecond
	srv, sequences, delivery := newSequenceTestServer(unit)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/sequences", usecase.CreateSequenceInput{
		Recipient: "lead@x.com",
		Steps: []entity.EmailStep{
			{ID: "1", Subject: "Intro", Body: "Hello", DelayDays: 0},
			{ID: "2", Subject: "Follow up", Body: "Still there?", DelayDays: 3},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var seq entity.EmailSequence
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&seq))
	resp.Body.Close()

	stored := sequences.List()
	require.Len(t, stored, 1)
	assert.Equal(t, "Sequence for lead@x.com", stored[0].Name)
	assert.Equal(t, 2, stored[0].EmailCount)
	assert.Equal(t, entity.SequenceStatusActive, stored[0].Status)
	assert.Equal(t, 1, stored[0].LeadsInSequence)

	// Both deliveries eventually go out, the first one right away.
	require.Eventually(t, func() bool { return delivery.count() == 2 },
		2*time.Second, 5*time.Millisecond)

	assert.Less(t, delivery.offsets[0], unit)
	assert.Equal(t, 1, delivery.sent[0].StepIndex)
	assert.Equal(t, 2, delivery.sent[1].StepIndex)
	assert.Equal(t, "lead@x.com", delivery.sent[0].To)
	assert.Equal(t, seq.ID, delivery.sent[0].SequenceID)
}

func TestCreateSequenceMissingRecipient(t *testing.T) {
	srv, sequences, delivery := newSequenceTestServer(10 * time.Millisecond)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/sequences", usecase.CreateSequenceInput{
		Recipient: "",
		Steps:     []entity.EmailStep{{ID: "1", Subject: "Intro", Body: "Hello"}},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, sequences.List())

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, delivery.count())
}

func TestSequenceLifecycleTransitions(t *testing.T) {
	srv, sequences, _ := newSequenceTestServer(time.Hour)
	defer srv.Close()

	seq := sequences.Add("Sequence for a@x.com", 2, 1)

	for _, tc := range []struct {
		path string
		want entity.SequenceStatus
	}{
		{"/pause", entity.SequenceStatusPaused},
		{"/start", entity.SequenceStatusActive},
		{"/stop", entity.SequenceStatusStopped},
	} {
		resp := postJSON(t, srv.URL+"/sequences/"+seq.ID+tc.path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out entity.EmailSequence
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		resp.Body.Close()
		assert.Equal(t, tc.want, out.Status)
	}
}

func TestStopSequenceCancelsPendingSteps(t *testing.T) {
	// First step fires immediately, the rest sit an hour out.
	srv, _, delivery := newSequenceTestServer(time.Hour)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/sequences", usecase.CreateSequenceInput{
		Recipient: "lead@x.com",
		Steps: []entity.EmailStep{
			{ID: "1", Subject: "Intro", Body: "Hello"},
			{ID: "2", Subject: "Follow up", Body: "..."},
			{ID: "3", Subject: "Last call", Body: "..."},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var seq entity.EmailSequence
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&seq))
	resp.Body.Close()

	require.Eventually(t, func() bool { return delivery.count() == 1 },
		2*time.Second, 5*time.Millisecond)

	resp = postJSON(t, srv.URL+"/sequences/"+seq.ID+"/stop", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, delivery.count(), "steps two and three must never fire")
}

func TestSequenceStatusUnknownID(t *testing.T) {
	srv, _, _ := newSequenceTestServer(time.Hour)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/sequences/ghost/pause", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
