package entity

import "time"

// Delivery records the outcome of one outbound POST to the chat platform.
type Delivery struct {
	ID        string         `json:"id" bson:"id"`
	CompanyID string         `json:"company_id" bson:"company_id"`
	GroupID   string         `json:"group_id" bson:"group_id"`
	URL       string         `json:"url" bson:"url"`
	Status    int            `json:"status" bson:"status"`
	Error     string         `json:"error,omitempty" bson:"error,omitempty"`
	Payload   MessagePayload `json:"payload" bson:"payload"`
	Duration  float64        `json:"duration" bson:"duration"`
	Time      time.Time      `json:"time" bson:"time"`
}

func (d *Delivery) Succeeded() bool {
	return d.Error == "" && d.Status >= 200 && d.Status < 300
}
