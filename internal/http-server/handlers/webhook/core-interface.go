package webhook

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/service/chiwawa"
	"context"
)

type Core interface {
	IsValidRequest(req *entity.InboundRequest, responder chiwawa.Responder) bool
	Reply(ctx context.Context, req *entity.InboundRequest, responder chiwawa.Responder)
}
