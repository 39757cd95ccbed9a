package core

import (
	"ChiwawaRelay/entity"
	"ChiwawaRelay/internal/lib/sl"
	"ChiwawaRelay/internal/service/chiwawa"
	"context"
	"log/slog"
)

type Repository interface {
	GetDeliveries(ctx context.Context, companyID string, limit int64) ([]entity.Delivery, error)
}

type Validator interface {
	IsValidRequest(req *entity.InboundRequest, responder chiwawa.Responder) bool
}

type ChiwawaService interface {
	Send(ctx context.Context, companyID, groupID string, payload entity.MessagePayload) <-chan chiwawa.Result
	SendPayload(ctx context.Context, req *entity.InboundRequest, payload entity.MessagePayload, responder chiwawa.Responder) <-chan chiwawa.Result
}

type Core struct {
	repo      Repository
	validator Validator
	chiwawa   ChiwawaService
	reply     replySettings
	authKey   string
	log       *slog.Logger
}

type replySettings struct {
	mode   string
	prefix string
	title  string
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}

func (c *Core) SetValidator(v Validator) {
	c.validator = v
}

func (c *Core) SetChiwawaService(s ChiwawaService) {
	c.chiwawa = s
}

func (c *Core) SetReply(mode, prefix, title string) {
	c.reply = replySettings{
		mode:   mode,
		prefix: prefix,
		title:  title,
	}
}
