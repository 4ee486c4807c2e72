package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskClothCreated routes "a new cloth was listed" notifications.
	TaskClothCreated = "cloth:created"
)

// ClothCreatedPayload is the JSON payload stored in Redis for TaskClothCreated.
type ClothCreatedPayload struct {
	To        string  `json:"to"`
	ClothID   string  `json:"cloth_id"`
	ClothName string  `json:"cloth_name"`
	Price     float64 `json:"price"`
}

// NewClothCreatedTask builds the task: 3 retries, default queue, 30s timeout.
func NewClothCreatedTask(p ClothCreatedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskClothCreated,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
