package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// ClothCreatedSender delivers the notification email. *email.Client
// satisfies it.
type ClothCreatedSender interface {
	SendClothCreatedEmail(to, clothID, clothName string, price float64) error
}

// handleClothCreatedTask decodes the payload and sends the email. A returned
// error makes asynq schedule a retry.
func (j *JobService) handleClothCreatedTask(ctx context.Context, t *asynq.Task) error {
	var p ClothCreatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal cloth created payload: %w", err)
	}

	j.logger.Info().
		Str("type", TaskClothCreated).
		Str("cloth_id", p.ClothID).
		Msg("Processing cloth created notification")

	if err := j.sender.SendClothCreatedEmail(p.To, p.ClothID, p.ClothName, p.Price); err != nil {
		j.logger.Error().
			Str("type", TaskClothCreated).
			Str("cloth_id", p.ClothID).
			Err(err).
			Msg("Failed to send cloth created notification")
		return err
	}

	j.logger.Info().
		Str("type", TaskClothCreated).
		Str("cloth_id", p.ClothID).
		Msg("Sent cloth created notification")

	return nil
}
