package delivery

import (
	"ChiwawaRelay/entity"
	"context"
)

type Core interface {
	RecentDeliveries(ctx context.Context, companyID string, limit int64) ([]entity.Delivery, error)
}
