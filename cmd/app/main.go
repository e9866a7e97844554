package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/finsuite/erp-approvals/pkg/handlers/approvals"
	"github.com/finsuite/erp-approvals/pkg/handlers/ledger"
	"github.com/finsuite/erp-approvals/pkg/handlers/notifications"
	wshandlers "github.com/finsuite/erp-approvals/pkg/handlers/websockets"
	"github.com/finsuite/erp-approvals/pkg/middleware"
	"github.com/finsuite/erp-approvals/pkg/notify"
	"github.com/finsuite/erp-approvals/pkg/sequence"
	dydbstore "github.com/finsuite/erp-approvals/pkg/storage/dynamodb"
	"github.com/finsuite/erp-approvals/pkg/workflow"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	tablePrefix := os.Getenv("DYNAMODB_TABLE_PREFIX")
	if tablePrefix == "" {
		log.Fatal("DYNAMODB_TABLE_PREFIX environment variable not set")
	}
	dbClient := dynamodb.NewFromConfig(cfg)
	store := dydbstore.New(dbClient, dydbstore.TableNamesFromPrefix(tablePrefix))

	// Signals are advisory; without a queue the badges just go quiet.
	var signaler notify.Signaler = notify.NoOpSignaler{}
	if queueURL := os.Getenv("SQS_SIGNAL_QUEUE_URL"); queueURL != "" {
		signaler = notify.NewSQSSignaler(sqs.NewFromConfig(cfg), queueURL)
	} else {
		slog.Warn("SQS_SIGNAL_QUEUE_URL not set, live badge signals disabled")
	}
	dispatcher := notify.NewDispatcher(store, signaler)

	sequences := sequence.NewGenerator(store)
	registry := workflow.NewRegistry(workflow.RegistryDeps{
		Entities:    store,
		Ledger:      store,
		Invoices:    store,
		CostCentres: store,
		Sequences:   sequences,
	})
	engine := workflow.NewEngine(store, store, store, store, dispatcher, registry)

	approvalsHandler := approvals.NewHandler(engine)
	notificationsHandler := notifications.NewHandler(dispatcher)
	ledgerHandler := ledger.NewHandler(store, store)
	wsHandler := wshandlers.NewHandler(store)

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/notifications", notificationsHandler.Routes)
		r.Route("/ledger", ledgerHandler.Routes)
		approvalsHandler.Routes(r)
	})
	router.Handle("/ws", wsHandler)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
