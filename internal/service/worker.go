package service

import (
	"log"

	"github.com/unclebandit/campaign-agent-backend/internal/model"
)

// Worker drains campaign runs from a channel. Runs are independent; one
// failed run never blocks the next.
type Worker struct {
	JobChan <-chan model.CampaignRequest
	RunFunc func(req model.CampaignRequest) error
}

// Constructor
func NewWorker(jobChan <-chan model.CampaignRequest, runFunc func(model.CampaignRequest) error) *Worker {
	return &Worker{
		JobChan: jobChan,
		RunFunc: runFunc,
	}
}

// Start begins processing runs
func (w *Worker) Start() {
	for req := range w.JobChan {
		if err := w.RunFunc(req); err != nil {
			log.Println("Campaign run failed for", req.CompanyName, ":", err)
		}
	}
}
