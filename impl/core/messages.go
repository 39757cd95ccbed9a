package core

import (
	"ChiwawaRelay/entity"
	"context"
	"fmt"
)

// SendMessage posts a message and waits for the platform's answer.
func (c *Core) SendMessage(ctx context.Context, msg *entity.HttpSendMsg) (*entity.SendStatus, error) {
	if c.chiwawa == nil {
		return nil, fmt.Errorf("chiwawa service not set")
	}

	select {
	case result := <-c.chiwawa.Send(ctx, msg.CompanyID, msg.GroupID, msg.Payload()):
		if result.Err != nil {
			return nil, fmt.Errorf("send message: %w", result.Err)
		}
		return &entity.SendStatus{
			ResponseStatus: result.Response.StatusCode,
			Body:           string(result.Body),
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Core) RecentDeliveries(ctx context.Context, companyID string, limit int64) ([]entity.Delivery, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("delivery journal is not enabled")
	}
	return c.repo.GetDeliveries(ctx, companyID, limit)
}
