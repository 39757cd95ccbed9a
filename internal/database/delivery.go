package repository

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxDeliveriesLimit = 500

func (m *MongoDB) SaveDelivery(delivery *entity.Delivery) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(deliveriesCollection)
	_, err = collection.InsertOne(m.ctx, delivery)
	if err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}
	return nil
}

// GetDeliveries returns the most recent deliveries, newest first, optionally
// narrowed to one company.
func (m *MongoDB) GetDeliveries(ctx context.Context, companyID string, limit int64) ([]entity.Delivery, error) {
	if limit <= 0 || limit > maxDeliveriesLimit {
		limit = maxDeliveriesLimit
	}

	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(deliveriesCollection)
	filter := bson.D{}
	if companyID != "" {
		filter = bson.D{{Key: "company_id", Value: companyID}}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "time", Value: -1}}).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, m.findError(err)
	}
	defer cursor.Close(ctx)

	deliveries := make([]entity.Delivery, 0)
	if err = cursor.All(ctx, &deliveries); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}
	return deliveries, nil
}

// Observe journals a finished delivery.
func (m *MongoDB) Observe(delivery entity.Delivery) {
	if err := m.SaveDelivery(&delivery); err != nil {
		m.log.With(
			slog.String("delivery", delivery.ID),
			sl.Err(err),
		).Error("save delivery")
	}
}
