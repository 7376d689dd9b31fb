package queue

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/unclebandit/campaign-agent-backend/internal/model"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// TopicCampaignRuns carries accepted orchestration requests
const TopicCampaignRuns = "campaign_runs"

// InMemoryQueue is an in-memory pub/sub queue used for the server's
// fire-and-forget background runs
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers. Each subscriber runs on its
// own goroutine, so publishers return immediately.
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 0,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			return // No requeue
		}

		// Backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Orchestrator is the part of the agent service the subscriber needs
type Orchestrator interface {
	Orchestrate(req model.CampaignRequest) error
}

// StartCampaignRunSubscriber wires accepted requests into orchestration runs.
// Runs never retry here: a failure is logged for operators and the job row
// keeps whatever status the run reached.
func StartCampaignRunSubscriber(q Queue, agent Orchestrator) {
	go func() {
		err := q.Subscribe(TopicCampaignRuns, func(payload any) error {
			req, ok := payload.(model.CampaignRequest)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected model.CampaignRequest")
				return nil
			}

			log.Println("📩 Processing campaign run for company:", req.CompanyName)

			if err := agent.Orchestrate(req); err != nil {
				log.Println("⚠️ Campaign run failed:", err)
				return nil // no retry; failure already surfaced to the log
			}

			log.Println("✅ Campaign run completed for company:", req.CompanyName)
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for campaign_runs:", err)
		}
	}()
}
