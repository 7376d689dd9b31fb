// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/campaign-agent-backend/internal/controller"
	"github.com/unclebandit/campaign-agent-backend/internal/db"
	"github.com/unclebandit/campaign-agent-backend/internal/handler"
	"github.com/unclebandit/campaign-agent-backend/internal/llm"
	"github.com/unclebandit/campaign-agent-backend/internal/notifier"
	"github.com/unclebandit/campaign-agent-backend/internal/queue"
	"github.com/unclebandit/campaign-agent-backend/internal/repository"
	"github.com/unclebandit/campaign-agent-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	// Runs execute in process by default; with RABBITMQ_URL set they are
	// handed to cmd/worker instead.
	var q queue.Queue
	var inMem *queue.InMemoryQueue
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		amqpQueue, err := queue.NewAMQPQueue(url)
		if err != nil {
			log.Fatalf("failed to connect to queue: %v", err)
		}
		defer amqpQueue.Close()
		q = amqpQueue
	} else {
		inMem = queue.NewInMemoryQueue()
		q = inMem
	}

	profileRepo := &repository.ProfileRepository{DB: db.DB}
	suggestionRepo := &repository.SuggestionRepository{DB: db.DB}
	jobRepo := &repository.JobRepository{DB: db.DB}

	generator, err := llm.NewGeminiGenerator(context.Background(), os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("failed to create generator: %v", err)
	}
	defer generator.Close()

	agentService := &service.AgentService{
		ProfileRepo:    profileRepo,
		SuggestionRepo: suggestionRepo,
		JobRepo:        jobRepo,
		Generator:      generator,
		Notifier:       notifier.NewEmailNotifier(),
		Queue:          q,
	}

	if inMem != nil {
		queue.StartCampaignRunSubscriber(inMem, agentService)
	}

	agentController := &controller.AgentController{
		AgentService: agentService,
	}

	jobHandler := &handler.JobHandler{
		Service: agentService,
	}

	r := chi.NewRouter()

	// Campaign agent routes
	r.Post("/campaign-agent-suggestions/", agentController.TriggerSuggestions)
	r.Post("/suggestions/retrieve/", agentController.RetrieveSuggestions)
	r.Post("/suggestions/status/", agentController.GetStatus)
	r.Get("/jobs/{company}", jobHandler.GetJobHandlerWithDetails)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Message": "Ok 🪅"}`))
	})

	log.Println("🚀 Server running on :8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
