package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/http/handlers"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/http/middleware"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/notify"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/store"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/webhook"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/infra/worker"
	"github.com/atharvmahajan32/caprae-capital-subm/internal/usecase"
)

const defaultWebhookURL = "https://httpbin.org/status/200"

func main() {
	godotenv.Load()

	// 1. Stores (in-memory, nothing survives a restart)
	leadStore := store.NewLeadStore()
	activityStore := store.NewActivityStore()
	sequenceStore := store.NewSequenceStore()

	// 2. Notification sink: log always, RabbitMQ fan-out when configured
	var notifier notify.Notifier = notify.NewLogNotifier()
	var rabbitConn *amqp.Connection
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(url)
		if err != nil {
			log.Printf("⚠️ RabbitMQ unavailable, notifications stay log-only: %v", err)
		} else {
			defer amqpNotifier.Close()
			rabbitConn = amqpNotifier.Conn
			notifier = notify.NewMultiNotifier(notify.NewLogNotifier(), amqpNotifier)
		}
	}

	// 3. Delivery client + scheduler
	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		webhookURL = defaultWebhookURL
	}
	deliveryClient := webhook.NewClient(webhookURL)

	unit := worker.DefaultUnit
	if raw := os.Getenv("SEQUENCE_UNIT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("⚠️ invalid SEQUENCE_UNIT %q, keeping %s", raw, unit)
		} else {
			unit = parsed
		}
	}
	scheduler := worker.NewSequenceScheduler(deliveryClient, notifier, unit)

	// 4. UseCases
	claimUC := usecase.NewClaimLeadUseCase(leadStore, activityStore, notifier)
	createSeqUC := usecase.NewCreateSequenceUseCase(sequenceStore, scheduler, notifier)
	statusUC := usecase.NewSetSequenceStatusUseCase(sequenceStore, scheduler, notifier)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(leadStore, claimUC, notifier)
	sequenceHandler := handlers.NewSequenceHandler(sequenceStore, createSeqUC, statusUC)
	activityHandler := handlers.NewActivityHandler(activityStore)
	webhookHandler := handlers.NewWebhookHandler(activityStore)
	healthHandler := handlers.NewHealthHandler(rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/leads", leadHandler.HandleList)
	r.Post("/leads", leadHandler.HandleCreate)
	r.Put("/leads/{id}", leadHandler.HandleUpdate)
	r.Delete("/leads/{id}", leadHandler.HandleDelete)
	r.Post("/leads/{id}/claim", leadHandler.HandleClaim)

	r.Get("/sequences", sequenceHandler.HandleList)
	r.Post("/sequences", sequenceHandler.HandleCreate)
	r.Post("/sequences/{id}/start", sequenceHandler.HandleStart)
	r.Post("/sequences/{id}/pause", sequenceHandler.HandlePause)
	r.Post("/sequences/{id}/stop", sequenceHandler.HandleStop)

	r.Get("/activities", activityHandler.HandleList)
	r.Post("/sequence", webhookHandler.Handle)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Lead dashboard API running on :%s (delivery endpoint %s)", port, webhookURL)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func corsOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		return []string{raw}
	}
	return []string{"http://localhost:5173", "*"}
}
